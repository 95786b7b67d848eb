package goofx

import "time"

// Status is an OFX <STATUS> aggregate.
type Status struct {
	Code     int
	Severity string  // INFO, WARN or ERROR.
	Message  *string // Optional server message.
}

// NewStatus assembles a Status from a <STATUS> element.
func NewStatus(e *Element) (*Status, error) {
	if err := e.AssertIsElement("STATUS"); err != nil {
		return nil, err
	}
	code, err := requireChildInt(e, "CODE")
	if err != nil {
		return nil, err
	}
	s := &Status{Code: code}
	if s.Severity, err = e.RequireChildText("SEVERITY"); err != nil {
		return nil, err
	}
	if err := readOptionalTexts(e, optionalText{"MESSAGE", &s.Message}); err != nil {
		return nil, err
	}
	return s, nil
}

// FinancialInstitution is the <FI> of a sign-on response.
type FinancialInstitution struct {
	Organization *string // ORG
	ID           *string // FID
}

// NewFinancialInstitution assembles a FinancialInstitution from a <FI> element of a <SONRS>.
func NewFinancialInstitution(e *Element) (*FinancialInstitution, error) {
	if err := e.AssertIsElement("FI", "SONRS"); err != nil {
		return nil, err
	}
	fi := &FinancialInstitution{}
	err := readOptionalTexts(e,
		optionalText{"ORG", &fi.Organization},
		optionalText{"FID", &fi.ID},
	)
	if err != nil {
		return nil, err
	}
	return fi, nil
}

// SignOn is the <SONRS> of the <SIGNONMSGSRSV1> message set.
type SignOn struct {
	Status Status
	// ServerTime is required, but an all-zero <DTSERVER> leaves it nil.
	ServerTime *time.Time
	// Language is the ISO-639 three letter code, e.g. ENG or POR.
	Language string

	Country            *string
	Institution        *FinancialInstitution
	ProfileLastUpdated *time.Time // DTPROFUP
	AccountLastUpdated *time.Time // DTACCTUP

	// Quicken extensions only present in QFX exports.
	IntuBankID *string // INTU.BID
	IntuUserID *string // INTU.USERID
}

// NewSignOn assembles a SignOn from a <SIGNONMSGSRSV1> element.
func NewSignOn(e *Element) (*SignOn, error) {
	if err := e.AssertIsElement("SIGNONMSGSRSV1"); err != nil {
		return nil, err
	}
	sonrs, err := e.RequireChild("SONRS")
	if err != nil {
		return nil, err
	}
	statusElement, err := sonrs.RequireChild("STATUS")
	if err != nil {
		return nil, err
	}
	status, err := NewStatus(statusElement)
	if err != nil {
		return nil, err
	}

	s := &SignOn{Status: *status}
	if s.ServerTime, err = requireChildDateTime(sonrs, "DTSERVER"); err != nil {
		return nil, err
	}
	if s.Language, err = sonrs.RequireChildText("LANGUAGE"); err != nil {
		return nil, err
	}
	err = readOptionalTexts(sonrs,
		optionalText{"COUNTRY", &s.Country},
		optionalText{"INTU.BID", &s.IntuBankID},
		optionalText{"INTU.USERID", &s.IntuUserID},
	)
	if err != nil {
		return nil, err
	}
	if s.ProfileLastUpdated, err = childDateTimeOrNil(sonrs, "DTPROFUP"); err != nil {
		return nil, err
	}
	if s.AccountLastUpdated, err = childDateTimeOrNil(sonrs, "DTACCTUP"); err != nil {
		return nil, err
	}

	fi, err := sonrs.ChildOrNil("FI")
	if err != nil {
		return nil, err
	}
	if fi != nil {
		if s.Institution, err = NewFinancialInstitution(fi); err != nil {
			return nil, err
		}
	}
	return s, nil
}
