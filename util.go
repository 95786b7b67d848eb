package goofx

import (
	"bytes"
	"encoding/xml"

	"github.com/golang/glog"
)

// escapeString returns the XML escaped form of the plain text data s.
// Characters outside the XML character range are replaced with U+FFFD.
func escapeString(s string) string {
	var buff bytes.Buffer
	// EscapeText only fails when the writer does, and bytes.Buffer never does.
	_ = xml.EscapeText(&buff, []byte(s))
	return buff.String()
}

// writeStartTag writes the start tag for the given element to buff.
// OFX elements carry no namespaces; attributes are kept for SGML that uses them.
func writeStartTag(e *xml.StartElement, buff *bytes.Buffer) {
	glog.V(3).Infof("opened: %s", e.Name.Local)
	buff.WriteByte('<')
	buff.WriteString(e.Name.Local)
	for _, attr := range e.Attr {
		if attr.Name.Local == "" {
			continue
		}
		buff.WriteByte(' ')
		buff.WriteString(attr.Name.Local)
		buff.WriteString(`="`)
		buff.WriteString(escapeString(attr.Value))
		buff.WriteByte('"')
	}
	buff.WriteByte('>')
}

// writeEndTag writes the closing tag for the given name to buff.
func writeEndTag(name xml.Name, buff *bytes.Buffer) {
	glog.V(3).Infof("closed: %s", name.Local)
	buff.WriteString("</")
	buff.WriteString(name.Local)
	buff.WriteByte('>')
}

// writeElement writes a complete data element, start tag, escaped data and end tag, to buff.
func writeElement(name xml.Name, data string, buff *bytes.Buffer) {
	writeStartTag(&xml.StartElement{Name: name}, buff)
	buff.WriteString(escapeString(data))
	writeEndTag(name, buff)
}
