package goofx

// Account is one of *BankAccount, *CreditAccount, *InvestmentAccount or
// *BillPresentmentAccount. The variant is decided by the source element name alone: a line of
// credit reported under <BANKACCTFROM> stays a *BankAccount.
type Account interface {
	Common() AccountCommon
	isAccount()
}

// AccountCommon holds the fields every account aggregate shares.
type AccountCommon struct {
	ElementName string  // Source element, e.g. BANKACCTFROM or CCACCTTO.
	AccountID   *string // ACCTID
	AccountKey  *string // ACCTKEY
}

// Common returns the shared account fields.
func (c AccountCommon) Common() AccountCommon {
	return c
}

// BankAccount is a <BANKACCTFROM> or <BANKACCTTO>.
type BankAccount struct {
	AccountCommon
	BankID           *string
	BranchID         *string
	AccountType      BankAccountType
	AccountTypeValue string   // Raw ACCTTYPE.
	Extension        *Element // EXTBANKACCTTO, kept as parsed.
}

// CreditAccount is a <CCACCTFROM> or <CCACCTTO>.
type CreditAccount struct {
	AccountCommon
}

// InvestmentAccount is an <INVACCTFROM> or <INVACCTTO>.
type InvestmentAccount struct {
	AccountCommon
	BrokerID *string
}

// BillPresentmentAccount is a <PRESACCTFROM> or <PRESACCTTO>.
type BillPresentmentAccount struct {
	AccountCommon
	BillPublisher     *string // BILLPUB
	BillerID          *string // BILLERID
	BillerName        *string // BILLERNAME
	PresenterNameAddr *string // PRESNAMEADDRESS
	PresentmentUserID *string // USERID
}

func (*BankAccount) isAccount()            {}
func (*CreditAccount) isAccount()          {}
func (*InvestmentAccount) isAccount()      {}
func (*BillPresentmentAccount) isAccount() {}

// NewAccount assembles the account variant matching the element name.
func NewAccount(e *Element) (Account, error) {
	common := AccountCommon{ElementName: e.Name}
	err := readOptionalTexts(e,
		optionalText{"ACCTID", &common.AccountID},
		optionalText{"ACCTKEY", &common.AccountKey},
	)
	if err != nil {
		return nil, err
	}

	switch e.Name {
	case "BANKACCTFROM", "BANKACCTTO":
		return newBankAccount(e, common)
	case "CCACCTFROM", "CCACCTTO":
		return &CreditAccount{AccountCommon: common}, nil
	case "INVACCTFROM", "INVACCTTO":
		a := &InvestmentAccount{AccountCommon: common}
		if err := readOptionalTexts(e, optionalText{"BROKERID", &a.BrokerID}); err != nil {
			return nil, err
		}
		return a, nil
	case "PRESACCTFROM", "PRESACCTTO":
		a := &BillPresentmentAccount{AccountCommon: common}
		err := readOptionalTexts(e,
			optionalText{"BILLPUB", &a.BillPublisher},
			optionalText{"BILLERID", &a.BillerID},
			optionalText{"BILLERNAME", &a.BillerName},
			optionalText{"PRESNAMEADDRESS", &a.PresenterNameAddr},
			optionalText{"USERID", &a.PresentmentUserID},
		)
		if err != nil {
			return nil, err
		}
		return a, nil
	default:
		return nil, &SchemaViolation{Path: e.Path(), Element: e.Name, Reason: "not an account aggregate"}
	}
}

func newBankAccount(e *Element, common AccountCommon) (*BankAccount, error) {
	a := &BankAccount{AccountCommon: common}
	err := readOptionalTexts(e,
		optionalText{"BANKID", &a.BankID},
		optionalText{"BRANCHID", &a.BranchID},
	)
	if err != nil {
		return nil, err
	}
	if a.AccountTypeValue, err = e.RequireChildText("ACCTTYPE"); err != nil {
		return nil, err
	}
	if a.AccountType, err = ParseBankAccountType(a.AccountTypeValue); err != nil {
		return nil, withPath(err, e.Path()+"/ACCTTYPE")
	}
	if a.Extension, err = e.ChildOrNil("EXTBANKACCTTO"); err != nil {
		return nil, err
	}
	return a, nil
}
