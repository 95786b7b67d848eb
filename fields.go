package goofx

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Typed accessors used by the assemblers. Scalar errors carry the path of the source element.

func requireChildDecimal(e *Element, name string) (decimal.Decimal, error) {
	text, err := e.RequireChildText(name)
	if err != nil {
		return decimal.Zero, err
	}
	d, err := DecodeDecimal(text)
	if err != nil {
		return decimal.Zero, withPath(err, e.Path()+"/"+name)
	}
	return d, nil
}

func requireChildInt(e *Element, name string) (int, error) {
	text, err := e.RequireChildText(name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, &ScalarFormatError{Kind: "integer", Value: text, Path: e.Path() + "/" + name, Err: err}
	}
	return n, nil
}

// requireChildDateTime requires the element but tolerates an all-zero value, returning nil.
func requireChildDateTime(e *Element, name string) (*time.Time, error) {
	text, err := e.RequireChildText(name)
	if err != nil {
		return nil, err
	}
	t, err := DecodeDateTime(text)
	return t, withPath(err, e.Path()+"/"+name)
}

func childDateTimeOrNil(e *Element, name string) (*time.Time, error) {
	text, err := e.ChildTextOrNil(name)
	if err != nil || text == nil {
		return nil, err
	}
	t, err := DecodeDateTime(*text)
	return t, withPath(err, e.Path()+"/"+name)
}

// optionalText binds an optional data element to the field it is read into.
type optionalText struct {
	name   string
	target **string
}

// readOptionalTexts reads the optional data elements in order, stopping at the first violation.
func readOptionalTexts(e *Element, fields ...optionalText) error {
	for _, f := range fields {
		text, err := e.ChildTextOrNil(f.name)
		if err != nil {
			return err
		}
		*f.target = text
	}
	return nil
}
