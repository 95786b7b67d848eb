package goofx

import (
	"bufio"
	"io"
	"sort"
	"strings"

	"github.com/golang/glog"
)

// Header holds the colon-delimited KEY:VALUE fields preceding the SGML body, e.g.
// OFXHEADER:100 or OLDFILEUID:NONE. Keys are case-sensitive and values are kept verbatim.
type Header struct {
	fields map[string]string
}

// NewHeader returns a Header holding a copy of the given fields.
func NewHeader(fields map[string]string) Header {
	h := Header{fields: make(map[string]string, len(fields))}
	for k, v := range fields {
		h.fields[k] = v
	}
	return h
}

// Get returns the raw value for key.
func (h Header) Get(key string) (string, bool) {
	v, ok := h.fields[key]
	return v, ok
}

// Len returns the number of header fields.
func (h Header) Len() int {
	return len(h.fields)
}

// Keys returns the header keys in sorted order.
func (h Header) Keys() []string {
	keys := make([]string, 0, len(h.fields))
	for k := range h.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type headerState int

const (
	beforeHeader headerState = iota
	inHeader
)

// ReadHeader consumes the OFX header from r and leaves r positioned at the start of the
// markup. The header ends at the first blank line, or right before a line starting with '<'
// for exports that omit the blank separator.
func ReadHeader(r *bufio.Reader) (Header, error) {
	var (
		fields = make(map[string]string)
		state  = beforeHeader
	)
	for {
		// Either form of the boundary is detected before consuming the next line.
		if next, err := r.Peek(1); err == nil && next[0] == '<' {
			glog.V(2).Infof("header: %d fields, markup starts without blank line", len(fields))
			return Header{fields: fields}, nil
		}

		line, err := r.ReadString('\n')
		if err != nil && err != io.EOF {
			return Header{}, err
		}
		if line == "" && err == io.EOF {
			return Header{}, &HeaderFormatError{Reason: "reached end of file before the start of the OFX markup"}
		}
		line = strings.TrimRight(line, "\r\n")
		blank := strings.TrimSpace(line) == ""

		switch state {
		case beforeHeader:
			if blank {
				break
			}
			state = inHeader
			if err := addHeaderField(fields, line); err != nil {
				return Header{}, err
			}
		case inHeader:
			if blank {
				glog.V(2).Infof("header: %d fields", len(fields))
				return Header{fields: fields}, nil
			}
			if err := addHeaderField(fields, line); err != nil {
				return Header{}, err
			}
		}

		if err == io.EOF {
			return Header{}, &HeaderFormatError{Reason: "reached end of file before the start of the OFX markup"}
		}
	}
}

func addHeaderField(fields map[string]string, line string) error {
	switch strings.Count(line, ":") {
	case 1:
	case 0:
		return &HeaderFormatError{Line: line, Reason: "expected a colon separated KEY:VALUE pair"}
	default:
		return &HeaderFormatError{Line: line, Reason: "expected a single colon separating key and value"}
	}
	i := strings.IndexByte(line, ':')
	key, value := line[:i], line[i+1:]
	if _, dup := fields[key]; dup {
		return &HeaderFormatError{Line: line, Reason: "duplicate header key"}
	}
	fields[key] = value
	return nil
}
