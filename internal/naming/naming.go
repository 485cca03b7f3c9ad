// Package naming derives the identifier variants used throughout generated text.
package naming

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Names holds the casing variants of a user-supplied resource name.
type Names struct {
	// Name is the name exactly as typed. It is used for file names,
	// collection bindings, URL mount paths and variable prefixes.
	Name string

	// Capitalized has only its first character upper-cased. It is used for
	// the schema/model identifier and nowhere else.
	Capitalized string
}

// Derive returns the casing variants of name.
func Derive(name string) Names {
	return Names{
		Name:        name,
		Capitalized: Capitalize(name),
	}
}

// Capitalize upper-cases the first character of s and leaves the rest unchanged.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Validate checks that name can be used as a resource name.
// Names must be non-empty and must resolve to a single path element.
func Validate(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}

	if name == "." || name == ".." {
		return fmt.Errorf("invalid name %q: must not be a relative path element", name)
	}

	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid name %q: must not contain path separators", name)
	}

	return nil
}
