package goofx

import "regexp"

// Repair is a one-off textual fix applied to the SGML body before normalization, for exports
// that are broken in ways the cleaner can not infer.
type Repair struct {
	Name    string
	Pattern *regexp.Regexp
	Replace string // Expansion template, see regexp.Regexp.Expand.
}

// Apply returns content with every match of the pattern replaced.
func (r Repair) Apply(content []byte) []byte {
	return r.Pattern.ReplaceAll(content, []byte(r.Replace))
}

// missingBankAccountFrom restores the <BANKACCTFROM> start tag that some exports drop right
// after the statement currency while keeping its end tag.
var missingBankAccountFrom = Repair{
	Name:    "missing BANKACCTFROM start tag",
	Pattern: regexp.MustCompile(`(</CURDEF>\s+)(<BANKID>)`),
	Replace: "$1<BANKACCTFROM>$2",
}

// DefaultRepairs returns the repairs applied when Options.Repairs is nil.
func DefaultRepairs() []Repair {
	return []Repair{missingBankAccountFrom}
}

func applyRepairs(content []byte, repairs []Repair) []byte {
	for _, r := range repairs {
		content = r.Apply(content)
	}
	return content
}
