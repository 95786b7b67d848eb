package goofx

import (
	"time"

	"github.com/golang/glog"
	"github.com/shopspring/decimal"
)

// Document is a parsed OFX/QFX statement download.
// This does not implement the complete OFX spec, only bank and credit card statements.
type Document struct {
	Header  Header
	SignOn  SignOn
	Culture Culture // Numeric convention resolved from the sign-on language.
	Dialect Dialect // Assembly path the statements were read with.

	statements []*StatementResponse
}

// Statements returns the statement responses in document order. It never returns nil.
func (d *Document) Statements() []*StatementResponse {
	stmts := make([]*StatementResponse, len(d.statements))
	copy(stmts, d.statements)
	return stmts
}

// Transactions returns all transactions from the OFX document.
// These may belong to different accounts; callers that care should walk Statements instead.
func (d *Document) Transactions() []*Transaction {
	txns := make([]*Transaction, 0, d.TransactionCount())
	for _, s := range d.statements {
		txns = append(txns, s.transactions...)
	}
	return txns
}

// TransactionCount returns the number of transactions across all statements.
func (d *Document) TransactionCount() int {
	n := 0
	for _, s := range d.statements {
		n += len(s.transactions)
	}
	return n
}

// SingleStatementDocument is a flattened view of a Document holding exactly one statement.
type SingleStatementDocument struct {
	SignOn  SignOn
	Culture Culture

	TransactionUID    string
	Status            Status
	DefaultCurrency   string
	Account           Account
	TransactionsStart *time.Time
	TransactionsEnd   *time.Time
	Transactions      []*Transaction
	LedgerBalance     Balance
	AvailableBalance  *Balance
}

// Total returns the sum of the transaction amounts.
func (s *SingleStatementDocument) Total() decimal.Decimal {
	total := decimal.Zero
	for _, t := range s.Transactions {
		total = total.Add(t.Amount)
	}
	return total
}

// HasSingleStatement returns the flattened view and true when the document holds exactly one
// statement, and nil and false otherwise.
func (d *Document) HasSingleStatement() (*SingleStatementDocument, bool) {
	if len(d.statements) != 1 {
		return nil, false
	}
	s := d.statements[0]
	return &SingleStatementDocument{
		SignOn:            d.SignOn,
		Culture:           d.Culture,
		TransactionUID:    s.TransactionUID,
		Status:            s.Status,
		DefaultCurrency:   s.DefaultCurrency,
		Account:           s.AccountFrom,
		TransactionsStart: s.TransactionsStart,
		TransactionsEnd:   s.TransactionsEnd,
		Transactions:      s.Transactions(),
		LedgerBalance:     s.LedgerBalance,
		AvailableBalance:  s.AvailableBalance,
	}, true
}

// NewDocument assembles a Document from the <OFX> root, reading statements with the given
// dialect and resolving the culture from the sign-on language.
func NewDocument(root *Element, header Header, dialect Dialect, resolver CultureResolver) (*Document, error) {
	if err := root.AssertIsElement("OFX"); err != nil {
		return nil, err
	}
	signOnElement, err := root.RequireChild("SIGNONMSGSRSV1")
	if err != nil {
		return nil, err
	}
	signOn, err := NewSignOn(signOnElement)
	if err != nil {
		return nil, err
	}
	culture, err := resolveCulture(resolver, signOn.Language)
	if err != nil {
		return nil, err
	}

	d := &Document{Header: header, SignOn: *signOn, Culture: *culture, Dialect: dialect}
	switch dialect {
	case DialectStandard:
		err = d.readStandardStatements(root)
	case DialectExtended:
		err = d.readExtendedStatements(root)
	default:
		err = &ConfigurationContractViolation{Strategy: "dialect", Reason: "assembly requires a standard or extended dialect, got " + dialect.String()}
	}
	if err != nil {
		return nil, err
	}
	glog.V(2).Infof("document: %s dialect, %d statements, %d transactions", dialect, len(d.statements), d.TransactionCount())
	return d, nil
}

// readStandardStatements reads the <STMTTRNRS> of <BANKMSGSRSV1>. Sign-on only responses have
// no message set and yield no statements.
func (d *Document) readStandardStatements(root *Element) error {
	bank, err := root.ChildOrNil("BANKMSGSRSV1")
	if err != nil || bank == nil {
		d.statements = make([]*StatementResponse, 0)
		return err
	}
	wrappers := bank.ChildrenByName("STMTTRNRS")
	d.statements = make([]*StatementResponse, 0, len(wrappers))
	for _, w := range wrappers {
		s, err := NewStatementResponse(w)
		if err != nil {
			return err
		}
		d.statements = append(d.statements, s)
	}
	return nil
}

// readExtendedStatements reads the <CCSTMTTRNRS> of <CREDITCARDMSGSRSV1>.
func (d *Document) readExtendedStatements(root *Element) error {
	cc, err := root.RequireChild("CREDITCARDMSGSRSV1")
	if err != nil {
		return err
	}
	wrappers := cc.ChildrenByName("CCSTMTTRNRS")
	d.statements = make([]*StatementResponse, 0, len(wrappers))
	for _, w := range wrappers {
		s, err := NewCreditCardStatementResponse(w)
		if err != nil {
			return err
		}
		d.statements = append(d.statements, s)
	}
	return nil
}
