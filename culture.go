package goofx

import "strings"

// Culture is the numeric convention associated with a document's sign-on language. Amounts
// are decoded without it (see DecodeDecimal); it is recorded for callers formatting values back.
type Culture struct {
	Name       string
	RadixPoint rune
}

var (
	// CultureENUS uses a dot radix point.
	CultureENUS = Culture{Name: "en-US", RadixPoint: '.'}
	// CulturePTBR uses a comma radix point.
	CulturePTBR = Culture{Name: "pt-BR", RadixPoint: ','}
)

// CultureResolver maps a <SONRS><LANGUAGE> code to a Culture. It must return either a culture
// or an error.
type CultureResolver interface {
	ResolveCulture(language string) (*Culture, error)
}

// CultureResolverFunc adapts a function to a CultureResolver.
type CultureResolverFunc func(language string) (*Culture, error)

// ResolveCulture calls f.
func (f CultureResolverFunc) ResolveCulture(language string) (*Culture, error) {
	return f(language)
}

var defaultCultures = map[string]Culture{
	"ENG": CultureENUS,
	"POR": CulturePTBR,
}

// DefaultCultureResolver maps ENG to en-US and POR to pt-BR.
func DefaultCultureResolver() CultureResolver {
	return CultureResolverFunc(func(language string) (*Culture, error) {
		c, ok := defaultCultures[strings.TrimSpace(language)]
		if !ok {
			return nil, &UnsupportedLocaleError{Language: language}
		}
		return &c, nil
	})
}

func resolveCulture(resolver CultureResolver, language string) (*Culture, error) {
	c, err := resolver.ResolveCulture(language)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, &ConfigurationContractViolation{Strategy: "culture resolver", Reason: "returned no culture for language " + language}
	}
	return c, nil
}
