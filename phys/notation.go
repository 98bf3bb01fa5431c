package phys

import (
	"fmt"
	"strings"

	"github.com/xraykit/xraykit/errors"
)

// Notation names a naming system for spectroscopic entities. Identity is
// case-insensitive; the stored name is always lower case.
type Notation struct {
	name string
}

// Well-known notation systems.
var (
	NotationIUPAC    = Notation{name: "iupac"}
	NotationSiegbahn = Notation{name: "siegbahn"}
	NotationOrbital  = Notation{name: "orbital"}
)

// NewNotation validates and lower-cases the naming-system label.
func NewNotation(name string) (Notation, error) {
	if name == "" {
		return Notation{}, errors.Validationf("notation name", "non-empty", name)
	}
	return Notation{name: strings.ToLower(name)}, nil
}

// Name returns the lower-cased naming-system label.
func (n Notation) Name() string { return n.name }

func (n Notation) String() string {
	return fmt.Sprintf("Notation(%s)", n.name)
}

// Language identifies a human language by its 2-3 character code.
type Language struct {
	code string
}

// NewLanguage validates and lower-cases a 2-3 character language code.
func NewLanguage(code string) (Language, error) {
	if len(code) < 2 || len(code) > 3 {
		return Language{}, errors.Validationf("language code", "between 2 and 3 characters", code)
	}
	return Language{code: strings.ToLower(code)}, nil
}

// Code returns the lower-cased language code.
func (l Language) Code() string { return l.code }

func (l Language) String() string {
	return fmt.Sprintf("Language(%s)", l.code)
}
