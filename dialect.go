package goofx

import "fmt"

//go:generate mockgen -destination=mocks/mock_strategies.go -package=mocks github.com/rockstardevs/goofx/v2 DialectPolicy,CultureResolver,Normalizer

// Dialect selects which message set statements are assembled from.
type Dialect int

const (
	// DialectAmbiguous means the policy could not tell; Options decide what happens next.
	DialectAmbiguous Dialect = iota
	// DialectStandard reads <BANKMSGSRSV1><STMTTRNRS><STMTRS><BANKACCTFROM>.
	DialectStandard
	// DialectExtended reads <CREDITCARDMSGSRSV1><CCSTMTTRNRS><CCSTMTRS><CCACCTFROM>, as sent by
	// credit card only QFX exports.
	DialectExtended
)

func (d Dialect) String() string {
	switch d {
	case DialectAmbiguous:
		return "ambiguous"
	case DialectStandard:
		return "standard"
	case DialectExtended:
		return "extended"
	default:
		return fmt.Sprintf("Dialect(%d)", int(d))
	}
}

// ParseDialect returns the Dialect named by s, as printed by String.
func ParseDialect(s string) (Dialect, error) {
	for _, d := range []Dialect{DialectAmbiguous, DialectStandard, DialectExtended} {
		if d.String() == s {
			return d, nil
		}
	}
	return DialectAmbiguous, fmt.Errorf("error - unknown dialect %q", s)
}

// DialectPolicy inspects the header and the normalized tree to pick the assembly path.
type DialectPolicy interface {
	Classify(header Header, root *Element) Dialect
}

// DialectPolicyFunc adapts a function to a DialectPolicy.
type DialectPolicyFunc func(header Header, root *Element) Dialect

// Classify calls f.
func (f DialectPolicyFunc) Classify(header Header, root *Element) Dialect {
	return f(header, root)
}

// AmbiguousDialectPolicy never decides, leaving the choice to Options.Fallback.
type AmbiguousDialectPolicy struct{}

// Classify always returns DialectAmbiguous.
func (AmbiguousDialectPolicy) Classify(Header, *Element) Dialect {
	return DialectAmbiguous
}

// MessageSetDialectPolicy decides by the message sets present under the root: a lone
// <CREDITCARDMSGSRSV1> is extended, a lone <BANKMSGSRSV1> is standard, anything else is
// ambiguous.
type MessageSetDialectPolicy struct{}

// Classify counts the root's message sets.
func (MessageSetDialectPolicy) Classify(_ Header, root *Element) Dialect {
	credit := len(root.ChildrenByName("CREDITCARDMSGSRSV1"))
	bank := len(root.ChildrenByName("BANKMSGSRSV1"))
	switch {
	case credit == 1 && bank == 0:
		return DialectExtended
	case credit == 0 && bank == 1:
		return DialectStandard
	default:
		return DialectAmbiguous
	}
}

// resolveDialect asks the policy and applies the ambiguity rules of the options.
func resolveDialect(opts *Options, header Header, root *Element) (Dialect, error) {
	d := opts.DialectPolicy.Classify(header, root)
	switch d {
	case DialectStandard, DialectExtended:
		return d, nil
	case DialectAmbiguous:
	default:
		return DialectAmbiguous, &ConfigurationContractViolation{Strategy: "dialect policy", Reason: "returned undefined " + d.String()}
	}
	if opts.StrictDialect {
		return DialectAmbiguous, ErrAmbiguousDialect
	}
	switch opts.Fallback {
	case DialectStandard, DialectExtended:
		return opts.Fallback, nil
	default:
		return DialectAmbiguous, &ConfigurationContractViolation{Strategy: "options", Reason: "fallback dialect must be standard or extended, got " + opts.Fallback.String()}
	}
}
