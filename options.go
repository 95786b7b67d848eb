package goofx

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
)

// Options configure a parse. A nil *Options, or a nil field, means the default.
type Options struct {
	// Encoding decodes the input bytes. Defaults to Windows-1252, the OFX 1.x CHARSET 1252.
	Encoding encoding.Encoding
	// DialectPolicy picks the assembly path. Defaults to AmbiguousDialectPolicy.
	DialectPolicy DialectPolicy
	// CultureResolver maps the sign-on language to a Culture. Defaults to
	// DefaultCultureResolver.
	CultureResolver CultureResolver
	// Fallback is used when the policy answers DialectAmbiguous. Defaults to DialectStandard.
	Fallback Dialect
	// StrictDialect fails with ErrAmbiguousDialect instead of using Fallback.
	StrictDialect bool
	// DTD lists the aggregates of the input. Defaults to OFX160.
	DTD *DTD
	// Normalizer turns the body into a tree. Defaults to NewNormalizer(DTD).
	Normalizer Normalizer
	// Repairs are applied to the body before normalization. Defaults to DefaultRepairs; use an
	// empty, non-nil slice to disable them.
	Repairs []Repair
}

// DefaultOptions returns fully populated default options.
func DefaultOptions() *Options {
	return (&Options{}).withDefaults()
}

// withDefaults returns a copy of o with unset fields populated.
func (o *Options) withDefaults() *Options {
	opts := Options{}
	if o != nil {
		opts = *o
	}
	if opts.Encoding == nil {
		opts.Encoding = charmap.Windows1252
	}
	if opts.DialectPolicy == nil {
		opts.DialectPolicy = AmbiguousDialectPolicy{}
	}
	if opts.CultureResolver == nil {
		opts.CultureResolver = DefaultCultureResolver()
	}
	if opts.Fallback == DialectAmbiguous {
		opts.Fallback = DialectStandard
	}
	if opts.DTD == nil {
		opts.DTD = OFX160()
	}
	if opts.Normalizer == nil {
		opts.Normalizer = NewNormalizer(opts.DTD)
	}
	if opts.Repairs == nil {
		opts.Repairs = DefaultRepairs()
	}
	return &opts
}

// EncodingByName returns the encoding for a WHATWG charset label such as windows-1252,
// iso-8859-1 or utf-8.
func EncodingByName(name string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("error - unknown charset %q: %v", name, err)
	}
	return enc, nil
}
