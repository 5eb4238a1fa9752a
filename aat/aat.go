// Package aat provides identifiers for Art & Architecture Thesaurus terms
// commonly referenced by Linked.Art documents.
//
// The Getty vocabularies publish AAT terms under http://vocab.getty.edu/aat/
// followed by a numeric term code. Linked.Art documents attach these
// identifiers to sub-objects through classified_as to state what a name,
// statement or representation is. The constants here cover the terms the
// projection helpers in package linkedart rely on; Lookup exposes the same
// table keyed by symbolic name for callers that configure classifications
// by name rather than by identifier.
//
// The table is static and read-only. Matching against it is purely
// syntactic; nothing in this package fetches term definitions.
package aat

import "sort"

// Base is the identifier prefix shared by all AAT terms.
const Base = "http://vocab.getty.edu/aat/"

// Classification terms.
const (
	// PreferredTerms ("preferred terms") marks the primary name of an entity.
	PreferredTerms = Base + "300404670"

	// AccessionNumbers ("accession numbers") marks institutional accession
	// identifiers.
	AccessionNumbers = Base + "300312355"

	// Culture ("culture") marks statements naming the originating culture.
	Culture = Base + "300055768"

	// Description ("description") marks general descriptive statements.
	Description = Base + "300411780"

	// DimensionsDescription ("dimensions description") marks human-readable
	// dimensions statements.
	DimensionsDescription = Base + "300435430"

	// MaterialsDescription ("materials description") marks medium and
	// materials statements.
	MaterialsDescription = Base + "300435429"

	// CreditLine ("acknowledgments") marks credit line statements.
	CreditLine = Base + "300026687"

	// ProvenanceStatement ("provenance statements") marks ownership history
	// statements.
	ProvenanceStatement = Base + "300435438"

	// TypeOfWork ("type of work") marks classifications that state what kind
	// of work an object is; it classifies other classifications.
	TypeOfWork = Base + "300435443"

	// DigitalImages ("digital images") marks digital image representations.
	DigitalImages = Base + "300215302"
)

// Language terms, used as canonical values by the default language lookup
// in package linkedart.
const (
	// LanguageEnglish ("English (language)").
	LanguageEnglish = Base + "300388277"

	// LanguageSpanish ("Spanish (language)").
	LanguageSpanish = Base + "300389311"

	// LanguageFrench ("French (language)").
	LanguageFrench = Base + "300388306"
)

// terms maps symbolic names to full AAT identifiers. Symbolic names follow
// the vocabulary convention used in Linked.Art tooling (upper snake case).
var terms = map[string]string{
	"PREFERRED_TERMS":        PreferredTerms,
	"ACCESSION_NUMBERS":      AccessionNumbers,
	"CULTURE":                Culture,
	"DESCRIPTION":            Description,
	"DIMENSIONS_DESCRIPTION": DimensionsDescription,
	"MATERIALS_DESCRIPTION":  MaterialsDescription,
	"CREDIT_LINE":            CreditLine,
	"PROVENANCE_STATEMENT":   ProvenanceStatement,
	"TYPE_OF_WORK":           TypeOfWork,
	"DIGITAL_IMAGES":         DigitalImages,
	"LANGUAGE_ENGLISH":       LanguageEnglish,
	"LANGUAGE_SPANISH":       LanguageSpanish,
	"LANGUAGE_FRENCH":        LanguageFrench,
}

// Term returns the full AAT identifier for a numeric term code.
func Term(code string) string {
	return Base + code
}

// Lookup resolves a symbolic term name to its AAT identifier.
func Lookup(symbol string) (string, bool) {
	id, ok := terms[symbol]
	return id, ok
}

// Symbols returns the known symbolic term names in sorted order.
func Symbols() []string {
	names := make([]string, 0, len(terms))
	for name := range terms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
