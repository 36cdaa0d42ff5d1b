package templates

import (
	"maps"
	"regexp"
	"slices"
	"strings"
	"unicode"

	"github.com/diwise/template-broker/pkg/errors"
	"github.com/diwise/template-broker/pkg/types"
)

// A placeholder is written as [@reference], where reference is any run of
// characters other than ].
var placeholder = regexp.MustCompile(`\[@(?P<reference>[^\]]+)\]`)

var referenceIndex = placeholder.SubexpIndex("reference")

// Content is the raw text of a template.
type Content struct {
	text string
}

func NewContent(text string) Content {
	return Content{text: text}
}

func (c Content) String() string {
	return c.text
}

// References returns the distinct placeholder references found anywhere in
// the content.
func (c Content) References() map[string]struct{} {
	refs := map[string]struct{}{}

	for _, match := range placeholder.FindAllStringSubmatch(c.text, -1) {
		refs[match[referenceIndex]] = struct{}{}
	}

	return refs
}

// IsMatchingSchema succeeds only when the set of placeholder references in
// the content equals the set of attribute names of the object. On mismatch
// the error lists the attribute names that have no placeholder.
func IsMatchingSchema[V any](c Content, object *types.Object[V]) error {
	refs := c.References()
	names := object.EntityNames()

	equal := len(refs) == len(names)
	missing := []string{}

	for _, name := range names {
		if _, ok := refs[name]; !ok {
			equal = false
			missing = append(missing, name)
		}
	}

	if !equal {
		return errors.NewMissingEntitiesError(missing)
	}

	return nil
}

// cleanWord strips leading and trailing characters from a word unless they
// are alphanumeric or part of the placeholder syntax.
func cleanWord(word string) string {
	return strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '@' && r != '[' && r != ']'
	})
}

// reference returns the placeholder reference contained in a single word.
func reference(word string) (string, bool) {
	match := placeholder.FindStringSubmatch(cleanWord(word))
	if match == nil {
		return "", false
	}
	return match[referenceIndex], true
}

func sortedReferences(c Content) []string {
	return slices.Sorted(maps.Keys(c.References()))
}
