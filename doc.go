/*
Package goofx is an OFX library that can parse OFX/QFX bank and credit card statement downloads.

goofx attempts to parse OFX data files which deviate from the OFX spec by omitting
starting or ending tags, dropping the blank line after the header, or sending statements in
non conformant message sets.

Parsing runs in stages: ReadHeader splits the KEY:VALUE header from the SGML body, a Normalizer
turns the body into an Element tree, a DialectPolicy picks the message set to read and the
assemblers build the Document. Amounts are decimal.Decimal values decoded by DecodeDecimal,
which infers the radix point from each value rather than from the document language.

	d, err := goofx.ParseFile("statement.qfx", &goofx.Options{
		DialectPolicy: goofx.MessageSetDialectPolicy{},
	})
	if err != nil {
		return err
	}
	if s, ok := d.HasSingleStatement(); ok {
		fmt.Println(s.Total())
	}

*/
package goofx
