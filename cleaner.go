package goofx

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/golang/glog"
)

// Cleaner turns OFX SGML, where data elements may omit their end tags, into well formed XML.
type Cleaner struct {
	dtd *DTD
}

// NewCleaner returns a Cleaner that uses the given DTD to tell aggregates from data elements.
// A nil DTD selects OFX160().
func NewCleaner(dtd *DTD) *Cleaner {
	if dtd == nil {
		dtd = OFX160()
	}
	return &Cleaner{dtd: dtd}
}

// CleanupXML returns cleaned XML from the given data, starting at its <OFX> tag.
func (c *Cleaner) CleanupXML(data []byte) (*bytes.Buffer, error) {
	var (
		xmlIndex    int               // Index for start of XML like data.
		tags        = NewStack()      // Open aggregates.
		lastData    string            // Holds the last parsed char data.
		lastElement *xml.StartElement // Last parsed data element start tag.
		cleanXML    bytes.Buffer      // Buffer to hold cleaned XML.
	)
	// Detect the start of XML like data.
	if xmlIndex = bytes.Index(data, []byte("<OFX>")); xmlIndex == -1 {
		return nil, errors.New("error - invalid file, OFX tag not found")
	}

	// Start a xml decoder on the context of source data that is XML like. SGML text routinely
	// carries bare ampersands (AT&T), so entity handling is lenient.
	decoder := xml.NewDecoder(bytes.NewReader(data[xmlIndex:]))
	decoder.Strict = false
	decoder.Entity = xml.HTMLEntity

	// Read parsed XML tokens from the XML decoder and re-assemble them into another buffer,
	// while adding any missing starting or closing tags and trimming spaces/newlines.
	for {
		token, err := decoder.RawToken()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}

		switch t := token.(type) {
		case xml.CharData:
			if text := strings.TrimSpace(string(t)); text != "" {
				lastData += text
				glog.V(3).Infof("case chardata (%s)", lastData)
			}
		case xml.StartElement:
			glog.V(3).Infof("case start element %s", t.Name.Local)
			// A start tag while data is pending means the previous data element was not closed.
			if lastData != "" {
				if lastElement == nil {
					return nil, fmt.Errorf("error - charData(%s) missing start and end tags", lastData)
				}
				writeElement(lastElement.Name, lastData, &cleanXML)
			}
			lastData, lastElement = "", nil

			start := t.Copy()
			if c.dtd.IsAggregate(t.Name.Local) {
				tags.Push(&start)
				writeStartTag(&start, &cleanXML)
			} else {
				// Data elements can't have nested tags; wait for their data.
				lastElement = &start
			}
			glog.V(3).Infof("stack: %v", tags.Dump())
		case xml.EndElement:
			glog.V(3).Infof("case end element %s", t.Name.Local)
			isAggregate := c.dtd.IsAggregate(t.Name.Local)
			if lastData != "" {
				// A data end tag that does not match the pending element can close either one.
				if lastElement != nil && t.Name.Local != lastElement.Name.Local && !isAggregate {
					return nil, fmt.Errorf("error - charData(%s) has ambiguous closing tags", lastData)
				}
				if lastElement == nil && isAggregate {
					return nil, fmt.Errorf("error - charData(%s) missing start and end tags", lastData)
				}
				if lastElement != nil {
					writeElement(lastElement.Name, lastData, &cleanXML)
				} else {
					// The start tag is missing but the end tag names the element.
					writeElement(t.Name, lastData, &cleanXML)
				}
			}
			lastData, lastElement = "", nil

			if !isAggregate {
				continue
			}
			if !tags.Contains(t.Name.Local) {
				glog.V(3).Infof("ignoring end tag %s, it was never opened", t.Name.Local)
				continue
			}
			// Close every open tag till the current closing tag is matched.
			for !tags.IsEmpty() {
				open, _ := tags.Pop()
				writeEndTag(open.Name, &cleanXML)
				if open.Name.Local == t.Name.Local {
					break
				}
			}
			glog.V(3).Infof("stack: %v", tags.Dump())
		}
	}

	if lastData != "" && !tags.IsEmpty() {
		if lastElement == nil {
			return nil, fmt.Errorf("error - charData(%s) missing start and end tags", lastData)
		}
		writeElement(lastElement.Name, lastData, &cleanXML)
	}
	// Truncated files leave aggregates open.
	for !tags.IsEmpty() {
		open, _ := tags.Pop()
		glog.V(2).Infof("closing %s at end of file", open.Name.Local)
		writeEndTag(open.Name, &cleanXML)
	}
	return &cleanXML, nil
}
