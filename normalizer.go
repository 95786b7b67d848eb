package goofx

import (
	"github.com/golang/glog"
)

// Normalizer turns the SGML body of an OFX file into an element tree rooted at <OFX>.
type Normalizer interface {
	Normalize(body []byte) (*Element, error)
}

// sgmlNormalizer cleans the SGML into XML with a DTD driven Cleaner and decodes the result.
type sgmlNormalizer struct {
	cleaner *Cleaner
}

// NewNormalizer returns the default Normalizer for the given DTD. A nil DTD selects OFX160().
func NewNormalizer(dtd *DTD) Normalizer {
	return &sgmlNormalizer{cleaner: NewCleaner(dtd)}
}

// Normalize returns the root of the normalized tree.
func (n *sgmlNormalizer) Normalize(body []byte) (*Element, error) {
	cleanXML, err := n.cleaner.CleanupXML(body)
	if err != nil {
		return nil, err
	}
	glog.V(3).Infof("cleanXML: %s", cleanXML.String())
	return BuildTree(cleanXML)
}
