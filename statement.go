package goofx

import (
	"time"
)

// StatementResponse is one statement transaction response set: a <STMTTRNRS> in the standard
// dialect or a <CCSTMTTRNRS> in the credit card dialect.
type StatementResponse struct {
	// TransactionUID is the <TRNUID>, stored verbatim. Exports reuse it across unrelated
	// statements, so it is not an identity.
	TransactionUID  string
	Status          Status
	DefaultCurrency string // CURDEF
	AccountFrom     Account

	TransactionsStart *time.Time // DTSTART
	TransactionsEnd   *time.Time // DTEND
	transactions      []*Transaction

	LedgerBalance    Balance
	AvailableBalance *Balance
}

// Transactions returns the statement's transactions in document order. It never returns nil.
func (s *StatementResponse) Transactions() []*Transaction {
	txns := make([]*Transaction, len(s.transactions))
	copy(txns, s.transactions)
	return txns
}

// statementTags names the elements a dialect reads a statement from.
type statementTags struct {
	wrapper     string // STMTTRNRS
	response    string // STMTRS
	accountFrom string // BANKACCTFROM
}

var (
	standardStatementTags = statementTags{"STMTTRNRS", "STMTRS", "BANKACCTFROM"}
	extendedStatementTags = statementTags{"CCSTMTTRNRS", "CCSTMTRS", "CCACCTFROM"}
)

// NewStatementResponse assembles a StatementResponse from a <STMTTRNRS> of a <BANKMSGSRSV1>.
func NewStatementResponse(e *Element) (*StatementResponse, error) {
	if err := e.AssertIsElement("STMTTRNRS", "BANKMSGSRSV1"); err != nil {
		return nil, err
	}
	return newStatementResponse(e, standardStatementTags)
}

// NewCreditCardStatementResponse assembles a StatementResponse from a <CCSTMTTRNRS> of a
// <CREDITCARDMSGSRSV1>.
func NewCreditCardStatementResponse(e *Element) (*StatementResponse, error) {
	if err := e.AssertIsElement("CCSTMTTRNRS", "CREDITCARDMSGSRSV1"); err != nil {
		return nil, err
	}
	return newStatementResponse(e, extendedStatementTags)
}

func newStatementResponse(e *Element, tags statementTags) (*StatementResponse, error) {
	s := &StatementResponse{}
	var err error
	if s.TransactionUID, err = e.RequireChildText("TRNUID"); err != nil {
		return nil, err
	}
	statusElement, err := e.RequireChild("STATUS")
	if err != nil {
		return nil, err
	}
	status, err := NewStatus(statusElement)
	if err != nil {
		return nil, err
	}
	s.Status = *status

	rs, err := e.RequireChild(tags.response)
	if err != nil {
		return nil, err
	}
	if s.DefaultCurrency, err = rs.RequireChildText("CURDEF"); err != nil {
		return nil, err
	}
	accountElement, err := rs.RequireChild(tags.accountFrom)
	if err != nil {
		return nil, err
	}
	if s.AccountFrom, err = NewAccount(accountElement); err != nil {
		return nil, err
	}

	list, err := rs.RequireChild("BANKTRANLIST")
	if err != nil {
		return nil, err
	}
	if s.TransactionsStart, err = requireChildDateTime(list, "DTSTART"); err != nil {
		return nil, err
	}
	if s.TransactionsEnd, err = requireChildDateTime(list, "DTEND"); err != nil {
		return nil, err
	}
	trns := list.ChildrenByName("STMTTRN")
	s.transactions = make([]*Transaction, 0, len(trns))
	for _, trn := range trns {
		t, err := NewTransaction(trn, s.DefaultCurrency)
		if err != nil {
			return nil, err
		}
		s.transactions = append(s.transactions, t)
	}

	ledger, err := rs.RequireChild("LEDGERBAL")
	if err != nil {
		return nil, err
	}
	ledgerBalance, err := NewBalance(ledger)
	if err != nil {
		return nil, err
	}
	s.LedgerBalance = *ledgerBalance

	available, err := rs.ChildOrNil("AVAILBAL")
	if err != nil {
		return nil, err
	}
	if available != nil {
		if s.AvailableBalance, err = NewBalance(available); err != nil {
			return nil, err
		}
	}
	return s, nil
}
