package goofx

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a <STMTTRN> of a <BANKTRANLIST>.
type Transaction struct {
	Type TransactionType
	// Posted is required, but an all-zero <DTPOSTED> leaves it nil.
	Posted    *time.Time
	Initiated *time.Time // DTUSER
	Available *time.Time // DTAVAIL
	// Amount is signed independently of Type: a DEBIT is normally negative.
	Amount decimal.Decimal
	ID     string // FITID

	CorrectedID      *string // CORRECTFITID
	CorrectionAction *CorrectionAction
	ServerID         *string // SRVRTID
	CheckNumber      *string // CHECKNUM
	ReferenceNumber  *string // REFNUM
	SIC              *string
	PayeeID          *string
	Name             *string
	Memo             *string

	// Account is the BANKACCTTO or CCACCTTO of a transfer, nil otherwise.
	Account Account

	OriginalCurrency *string // ORIGCURRENCY
	Currency         *string // CURRENCY
	// DefaultCurrency is the statement's <CURDEF>.
	DefaultCurrency string
}

// EffectiveCurrency returns the first of Currency, OriginalCurrency and DefaultCurrency that
// is set.
func (t *Transaction) EffectiveCurrency() string {
	switch {
	case t.Currency != nil:
		return *t.Currency
	case t.OriginalCurrency != nil:
		return *t.OriginalCurrency
	default:
		return t.DefaultCurrency
	}
}

// NewTransaction assembles a Transaction from a <STMTTRN> element.
func NewTransaction(e *Element, defaultCurrency string) (*Transaction, error) {
	if err := e.AssertIsElement("STMTTRN", "BANKTRANLIST"); err != nil {
		return nil, err
	}

	t := &Transaction{DefaultCurrency: defaultCurrency}
	trnType, err := e.RequireChildText("TRNTYPE")
	if err != nil {
		return nil, err
	}
	if t.Type, err = ParseTransactionType(trnType); err != nil {
		return nil, withPath(err, e.Path()+"/TRNTYPE")
	}
	if t.Posted, err = requireChildDateTime(e, "DTPOSTED"); err != nil {
		return nil, err
	}
	if t.Initiated, err = childDateTimeOrNil(e, "DTUSER"); err != nil {
		return nil, err
	}
	if t.Available, err = childDateTimeOrNil(e, "DTAVAIL"); err != nil {
		return nil, err
	}
	if t.Amount, err = requireChildDecimal(e, "TRNAMT"); err != nil {
		return nil, err
	}
	if t.ID, err = e.RequireChildText("FITID"); err != nil {
		return nil, err
	}

	var action *string
	err = readOptionalTexts(e,
		optionalText{"CORRECTFITID", &t.CorrectedID},
		optionalText{"CORRECTACTION", &action},
		optionalText{"SRVRTID", &t.ServerID},
		optionalText{"CHECKNUM", &t.CheckNumber},
		optionalText{"REFNUM", &t.ReferenceNumber},
		optionalText{"SIC", &t.SIC},
		optionalText{"PAYEEID", &t.PayeeID},
		optionalText{"NAME", &t.Name},
		optionalText{"MEMO", &t.Memo},
		optionalText{"ORIGCURRENCY", &t.OriginalCurrency},
		optionalText{"CURRENCY", &t.Currency},
	)
	if err != nil {
		return nil, err
	}
	if action != nil {
		a, err := ParseCorrectionAction(*action)
		if err != nil {
			return nil, withPath(err, e.Path()+"/CORRECTACTION")
		}
		t.CorrectionAction = &a
	}

	if t.Account, err = transferAccount(e); err != nil {
		return nil, err
	}
	return t, nil
}

// transferAccount returns the BANKACCTTO, or failing that the CCACCTTO, of a transaction.
func transferAccount(e *Element) (Account, error) {
	for _, name := range []string{"BANKACCTTO", "CCACCTTO"} {
		a, err := e.ChildOrNil(name)
		if err != nil {
			return nil, err
		}
		if a != nil {
			return NewAccount(a)
		}
	}
	return nil, nil
}
