package goofx

import "sync"

// DTD is the part of the OFX grammar the normalizer needs: which elements are aggregates.
// Aggregates always carry an explicit end tag and contain other elements, while data elements
// hold a single text value and may omit their end tag.
// A DTD is immutable once built and safe for concurrent use.
type DTD struct {
	aggregates map[string]struct{}
}

var (
	ofx160DTD     *DTD
	initOFX160DTD sync.Once
)

// ofx160Aggregates is the aggregate subset of the OFX 1.6 DTD for the signon, bank and credit
// card message sets, plus the account aggregates transactions may reference.
var ofx160Aggregates = []string{
	"OFX",
	"SIGNONMSGSRSV1", "SONRS", "STATUS", "FI",
	"BANKMSGSRSV1", "STMTTRNRS", "STMTRS",
	"CREDITCARDMSGSRSV1", "CCSTMTTRNRS", "CCSTMTRS",
	"BANKACCTFROM", "BANKACCTTO", "CCACCTFROM", "CCACCTTO",
	"INVACCTFROM", "INVACCTTO", "PRESACCTFROM", "PRESACCTTO", "EXTBANKACCTTO",
	"BANKTRANLIST", "STMTTRN", "PAYEE",
	"LEDGERBAL", "AVAILBAL", "BALLIST", "BAL",
}

// OFX160 returns the process-wide trimmed OFX 1.6 DTD. It is built once on first use.
func OFX160() *DTD {
	initOFX160DTD.Do(func() {
		ofx160DTD = NewDTD(ofx160Aggregates...)
	})
	return ofx160DTD
}

// NewDTD returns a DTD declaring the given aggregate element names.
func NewDTD(aggregates ...string) *DTD {
	d := &DTD{aggregates: make(map[string]struct{}, len(aggregates))}
	for _, a := range aggregates {
		d.aggregates[a] = struct{}{}
	}
	return d
}

// Extend returns a new DTD that also declares the given aggregates, e.g. proprietary
// extension aggregates of a specific institution. The receiver is left untouched.
func (d *DTD) Extend(aggregates ...string) *DTD {
	names := make([]string, 0, len(d.aggregates)+len(aggregates))
	for a := range d.aggregates {
		names = append(names, a)
	}
	return NewDTD(append(names, aggregates...)...)
}

// IsAggregate returns true if the given tag is a known aggregate tag.
func (d *DTD) IsAggregate(tag string) bool {
	_, found := d.aggregates[tag]
	return found
}
