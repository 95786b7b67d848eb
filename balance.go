package goofx

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balance is a <LEDGERBAL> or <AVAILBAL>.
type Balance struct {
	Amount decimal.Decimal
	// AsOf is required by OFX but some institutions omit it or send zeroes, so it may be nil.
	AsOf *time.Time
}

// NewBalance assembles a Balance from a <LEDGERBAL> or <AVAILBAL> element.
func NewBalance(e *Element) (*Balance, error) {
	if err := e.AssertIsElementOneOf("LEDGERBAL", "AVAILBAL"); err != nil {
		return nil, err
	}
	amount, err := requireChildDecimal(e, "BALAMT")
	if err != nil {
		return nil, err
	}
	asOf, err := childDateTimeOrNil(e, "DTASOF")
	if err != nil {
		return nil, err
	}
	return &Balance{Amount: amount, AsOf: asOf}, nil
}
