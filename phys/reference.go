package phys

import (
	"fmt"

	"github.com/xraykit/xraykit/errors"
)

// Reference is a bibliographic source, keyed like a BibTeX entry. Identity
// is the key alone; the remaining fields are descriptive and optional.
type Reference struct {
	bibtexkey string

	Author       string
	Year         string
	Title        string
	Type         string
	Booktitle    string
	Editor       string
	Pages        string
	Edition      string
	Journal      string
	School       string
	Address      string
	URL          string
	Note         string
	Number       string
	Series       string
	Volume       string
	Publisher    string
	Organization string
	Chapter      string
	Howpublished string
	DOI          string
}

// NewReference validates the bibliographic key and returns a reference
// with no descriptive fields set.
func NewReference(bibtexkey string) (Reference, error) {
	if bibtexkey == "" {
		return Reference{}, errors.Validationf("bibtex key", "non-empty", bibtexkey)
	}
	return Reference{bibtexkey: bibtexkey}, nil
}

// Key returns the bibliographic key.
func (r Reference) Key() string { return r.bibtexkey }

// Equal compares references by key alone.
func (r Reference) Equal(other Reference) bool {
	return r.bibtexkey == other.bibtexkey
}

func (r Reference) String() string {
	return fmt.Sprintf("Reference(%s)", r.bibtexkey)
}
