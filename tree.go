package goofx

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Element is a node of the normalized OFX tree: an aggregate with child elements, or a data
// element with a single text value. Trees are built once and only read afterwards.
type Element struct {
	Name     string
	Parent   *Element
	Children []*Element
	texts    []string
}

// BuildTree decodes well formed XML, as produced by Cleaner, into an element tree and returns
// its root.
func BuildTree(r io.Reader) (*Element, error) {
	var (
		root    *Element
		current *Element
		decoder = xml.NewDecoder(r)
	)
	for {
		token, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			e := &Element{Name: t.Name.Local, Parent: current}
			if current == nil {
				if root != nil {
					return nil, fmt.Errorf("error - second root element <%s> after <%s>", e.Name, root.Name)
				}
				root = e
			} else {
				current.Children = append(current.Children, e)
			}
			current = e
		case xml.EndElement:
			current = current.Parent
		case xml.CharData:
			if current == nil {
				continue
			}
			if text := strings.TrimSpace(string(t)); text != "" {
				current.texts = append(current.texts, text)
			}
		}
	}
	if root == nil {
		return nil, errors.New("error - no root element")
	}
	return root, nil
}

// Path returns the slash separated names from the root to e, e.g. OFX/SIGNONMSGSRSV1/SONRS.
func (e *Element) Path() string {
	if e.Parent == nil {
		return e.Name
	}
	return e.Parent.Path() + "/" + e.Name
}

// IsLeaf returns true if e has no child elements.
func (e *Element) IsLeaf() bool {
	return len(e.Children) == 0
}

func (e *Element) violation(element, format string, args ...interface{}) *SchemaViolation {
	return &SchemaViolation{Path: e.Path(), Element: element, Reason: fmt.Sprintf(format, args...)}
}

// AssertIsElement fails unless e is named name and, when parent is given, its parent is
// named parent. Names are compared exactly.
func (e *Element) AssertIsElement(name string, parent ...string) error {
	if e.Name != name {
		return e.violation(name, "expected <%s> but found <%s>", name, e.Name)
	}
	if len(parent) > 0 {
		if e.Parent == nil {
			return e.violation(name, "expected parent <%s> but element is the root", parent[0])
		}
		if e.Parent.Name != parent[0] {
			return e.violation(name, "expected parent <%s> but found <%s>", parent[0], e.Parent.Name)
		}
	}
	return nil
}

// AssertIsElementOneOf fails unless e is named one of names.
func (e *Element) AssertIsElementOneOf(names ...string) error {
	for _, n := range names {
		if e.Name == n {
			return nil
		}
	}
	return e.violation(e.Name, "expected one of <%s>", strings.Join(names, ">, <"))
}

// ChildrenByName returns all children named name in document order. It never returns nil.
func (e *Element) ChildrenByName(name string) []*Element {
	matches := make([]*Element, 0, 1)
	for _, c := range e.Children {
		if c.Name == name {
			matches = append(matches, c)
		}
	}
	return matches
}

// ChildOrNil returns the child named name, or nil when there is none. More than one match is
// a schema violation.
func (e *Element) ChildOrNil(name string) (*Element, error) {
	matches := e.ChildrenByName(name)
	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return matches[0], nil
	default:
		return nil, e.violation(name, "expected at most one child but found %d", len(matches))
	}
}

// RequireChild returns the single child named name.
func (e *Element) RequireChild(name string) (*Element, error) {
	child, err := e.ChildOrNil(name)
	if err != nil {
		return nil, err
	}
	if child == nil {
		return nil, e.violation(name, "required child is missing")
	}
	return child, nil
}

// Text returns the sole text value of a data element.
func (e *Element) Text() (string, error) {
	if !e.IsLeaf() {
		return "", &SchemaViolation{Path: e.Path(), Element: e.Name, Reason: "expected text content but found child elements"}
	}
	switch len(e.texts) {
	case 1:
		return e.texts[0], nil
	case 0:
		return "", &SchemaViolation{Path: e.Path(), Element: e.Name, Reason: "expected text content but element is empty"}
	default:
		return "", &SchemaViolation{Path: e.Path(), Element: e.Name, Reason: fmt.Sprintf("expected a single text value but found %d", len(e.texts))}
	}
}

// RequireChildText returns the text of the single child named name.
func (e *Element) RequireChildText(name string) (string, error) {
	child, err := e.RequireChild(name)
	if err != nil {
		return "", err
	}
	return child.Text()
}

// ChildTextOrNil returns the text of the child named name, or nil when there is no such child.
func (e *Element) ChildTextOrNil(name string) (*string, error) {
	child, err := e.ChildOrNil(name)
	if err != nil || child == nil {
		return nil, err
	}
	text, err := child.Text()
	if err != nil {
		return nil, err
	}
	return &text, nil
}

// CountDescendants returns the number of elements named name below e.
func (e *Element) CountDescendants(name string) int {
	n := 0
	for _, c := range e.Children {
		if c.Name == name {
			n++
		}
		n += c.CountDescendants(name)
	}
	return n
}

// String returns the subtree as compact XML, for debugging.
func (e *Element) String() string {
	var buff bytes.Buffer
	e.write(&buff)
	return buff.String()
}

func (e *Element) write(buff *bytes.Buffer) {
	name := xml.Name{Local: e.Name}
	writeStartTag(&xml.StartElement{Name: name}, buff)
	for _, t := range e.texts {
		buff.WriteString(escapeString(t))
	}
	for _, c := range e.Children {
		c.write(buff)
	}
	writeEndTag(name, buff)
}
