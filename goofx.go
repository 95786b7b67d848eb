package goofx

import (
	"bufio"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/golang/glog"
	"golang.org/x/text/transform"
)

// Parse decodes r with opts.Encoding and parses it into a Document.
func Parse(r io.Reader, opts *Options) (*Document, error) {
	opts = opts.withDefaults()
	return parse(transform.NewReader(r, opts.Encoding.NewDecoder()), opts)
}

// ParseString parses already decoded OFX text into a Document. opts.Encoding is ignored.
func ParseString(s string, opts *Options) (*Document, error) {
	return parse(strings.NewReader(s), opts.withDefaults())
}

// ParseFile opens and parses the file at path.
func ParseFile(path string, opts *Options) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, opts)
}

// parse runs the pipeline over decoded text: header, repairs, normalization, dialect and
// assembly.
func parse(r io.Reader, opts *Options) (*Document, error) {
	reader := bufio.NewReader(r)
	header, err := ReadHeader(reader)
	if err != nil {
		return nil, err
	}

	var body []byte
	if body, err = ioutil.ReadAll(reader); err != nil {
		return nil, err
	}
	body = applyRepairs(body, opts.Repairs)

	root, err := opts.Normalizer.Normalize(body)
	if err != nil {
		return nil, &MarkupNormalizationError{Err: err}
	}
	if root == nil {
		return nil, &ConfigurationContractViolation{Strategy: "normalizer", Reason: "returned no root element"}
	}
	if err := root.AssertIsElement("OFX"); err != nil {
		return nil, err
	}

	dialect, err := resolveDialect(opts, header, root)
	if err != nil {
		return nil, err
	}
	glog.V(2).Infof("dialect: %s", dialect)
	return NewDocument(root, header, dialect, opts.CultureResolver)
}
