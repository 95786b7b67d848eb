package goofx

import (
	"errors"
	"fmt"
)

var (
	// ErrNotImplemented is returned for inputs the decoders recognize but do not support yet.
	ErrNotImplemented = errors.New("error - not implemented")
	// ErrAmbiguousDialect is returned when the dialect policy can not decide and
	// Options.StrictDialect forbids falling back.
	ErrAmbiguousDialect = errors.New("error - ambiguous OFX dialect")
)

// HeaderFormatError is returned when the colon-delimited OFX header is malformed or never ends.
type HeaderFormatError struct {
	Line   string // The offending raw line, empty when the stream ended.
	Reason string
}

func (e *HeaderFormatError) Error() string {
	if e.Line == "" {
		return fmt.Sprintf("error - invalid OFX header, %s", e.Reason)
	}
	return fmt.Sprintf("error - invalid OFX header line %q, %s", e.Line, e.Reason)
}

// MarkupNormalizationError wraps a failure to turn the SGML body into an element tree.
type MarkupNormalizationError struct {
	Err error
}

func (e *MarkupNormalizationError) Error() string {
	return fmt.Sprintf("error - can not normalize OFX markup: %v", e.Err)
}

func (e *MarkupNormalizationError) Unwrap() error {
	return e.Err
}

// SchemaViolation is returned when an element is missing, duplicated, or misplaced.
type SchemaViolation struct {
	Path    string // Path of the element being inspected, e.g. OFX/SIGNONMSGSRSV1/SONRS.
	Element string // Name of the element that was expected or found.
	Reason  string
}

func (e *SchemaViolation) Error() string {
	return fmt.Sprintf("error - schema violation at %s <%s>: %s", e.Path, e.Element, e.Reason)
}

// ScalarFormatError is returned when a decimal, date-time, integer or enumeration value does
// not match its grammar.
type ScalarFormatError struct {
	Kind  string // decimal, date-time, integer or the enumeration name.
	Value string
	Path  string // Path of the source element, when known.
	Err   error
}

func (e *ScalarFormatError) Error() string {
	msg := fmt.Sprintf("error - can not parse %q as %s", e.Value, e.Kind)
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ScalarFormatError) Unwrap() error {
	return e.Err
}

// UnsupportedLocaleError is returned when no numeric convention is configured for the
// sign-on language.
type UnsupportedLocaleError struct {
	Language string
}

func (e *UnsupportedLocaleError) Error() string {
	if e.Language == "" {
		return "error - <SONRS><LANGUAGE> is missing or blank"
	}
	return fmt.Sprintf("error - <SONRS><LANGUAGE> %q is not a supported language", e.Language)
}

// ConfigurationContractViolation is returned when a caller supplied strategy answers with a
// value its contract forbids.
type ConfigurationContractViolation struct {
	Strategy string
	Reason   string
}

func (e *ConfigurationContractViolation) Error() string {
	return fmt.Sprintf("error - %s violated its contract: %s", e.Strategy, e.Reason)
}

// withPath returns err with the element path filled in when it is a scalar error without one.
func withPath(err error, path string) error {
	var sfe *ScalarFormatError
	if errors.As(err, &sfe) && sfe.Path == "" {
		sfe.Path = path
	}
	return err
}
