package linkedart

import (
	"github.com/geoknoesis/linkedart-go/aat"
)

// PrimaryName returns the object's name classified as a preferred term in
// the requested language, or the empty string when it carries none.
func PrimaryName(o Object, language string, opts *LanguageOptions) string {
	names := PrimaryNames(o, language, opts)
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

// PrimaryNames returns every name classified as a preferred term that
// satisfies the language constraint, in document order.
func PrimaryNames(o Object, language string, opts *LanguageOptions) []string {
	return stringValues(FieldValuesByClassifications(o, "identified_by", []string{aat.PreferredTerms}, language, opts))
}

// Names returns the contents of the identified_by entries of type Name
// that satisfy the language constraint, in document order.
func Names(o Object, language string, opts *LanguageOptions) []string {
	out := []string{}
	for _, n := range ofType(o.Slice("identified_by"), "Name") {
		if !LanguageMatches(n, language, opts) {
			continue
		}
		if c := n.Content(); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// Identifiers returns the contents of the identified_by entries of type
// Identifier.
func Identifiers(o Object) []string {
	out := []string{}
	for _, e := range ofType(o.Slice("identified_by"), "Identifier") {
		if c := e.Content(); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// AccessionNumbers returns the identifier values classified as accession
// numbers. Accession numbers carry no language, so none is requested.
func AccessionNumbers(o Object) []string {
	return stringValues(FieldValuesByClassifications(o, "identified_by", []string{aat.AccessionNumbers}, "", nil))
}

// CarriedOutBy returns the actor references of the production's
// carried_out_by, looking through one level of production parts. Works
// whether the production names its actors directly or splits the work
// across part activities.
func CarriedOutBy(o Object) []Object {
	return FieldPartSubfield(o, "produced_by", "carried_out_by")
}

// Cultures returns the culture statements on an object.
func Cultures(o Object, language string, opts *LanguageOptions) []string {
	return statements(o, aat.Culture, language, opts)
}

// MaterialStatements returns the materials description statements on an
// object.
func MaterialStatements(o Object, language string, opts *LanguageOptions) []string {
	return statements(o, aat.MaterialsDescription, language, opts)
}

// DimensionsDescriptions returns the dimensions description statements on
// an object.
func DimensionsDescriptions(o Object, language string, opts *LanguageOptions) []string {
	return statements(o, aat.DimensionsDescription, language, opts)
}

// Descriptions returns the description statements on an object.
func Descriptions(o Object, language string, opts *LanguageOptions) []string {
	return statements(o, aat.Description, language, opts)
}

// AcknowledgementStatements returns the credit line statements on an
// object.
func AcknowledgementStatements(o Object, language string, opts *LanguageOptions) []string {
	return statements(o, aat.CreditLine, language, opts)
}

// ProvenanceStatements returns the provenance statements on an object.
func ProvenanceStatements(o Object, language string, opts *LanguageOptions) []string {
	return statements(o, aat.ProvenanceStatement, language, opts)
}

// WorkTypes returns the object's classifications that are marked as a type
// of work, directly or through their own classifications.
func WorkTypes(o Object) []Object {
	return ClassifiedAsWithClassification(o.Classifications(), aat.TypeOfWork, "", nil)
}

// DigitalImages returns the URLs of the representations classified as
// digital images. A representation listing access points contributes each
// access point's id, otherwise its own id.
func DigitalImages(o Object) []string {
	images := ClassifiedAs(o.Slice("representation"), aat.DigitalImages, "", nil)
	out := []string{}
	for _, img := range images {
		points := img.Slice("access_point")
		if len(points) == 0 {
			if id := img.ID(); id != "" {
				out = append(out, id)
			}
			continue
		}
		for _, p := range points {
			if id := p.ID(); id != "" {
				out = append(out, id)
			}
		}
	}
	return out
}

// AttributedBy collects the values stored under field on the attributed_by
// attribute assignments of an object, flattened in document order. Passing
// "attributed" yields the assignment payloads.
func AttributedBy(o Object, field string) []Object {
	return assignmentValues(o.Slice("attributed_by"), field)
}

// AssignedBy collects the values stored under field on the assigned_by
// attribute assignments of an object, flattened in document order. Passing
// "assigned" yields the assignment payloads.
func AssignedBy(o Object, field string) []Object {
	return assignmentValues(o.Slice("assigned_by"), field)
}

// RemoveDuplicateIDs keeps the first entry carrying each id, preserving
// order. Entries without an id share the empty key and collapse the same
// way.
func RemoveDuplicateIDs(entries []Object) []Object {
	seen := make(map[string]struct{}, len(entries))
	out := make([]Object, 0, len(entries))
	for _, e := range entries {
		id := e.ID()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, e)
	}
	return out
}

// statements projects the referred_to_by entries carrying the given
// classification to their string contents.
func statements(o Object, classification string, language string, opts *LanguageOptions) []string {
	return stringValues(FieldValuesByClassifications(o, "referred_to_by", []string{classification}, language, opts))
}

// assignmentValues flattens the field values of the entries that are
// attribute assignments. Entries of any other type are skipped.
func assignmentValues(assignments []Object, field string) []Object {
	out := []Object{}
	for _, a := range assignments {
		if a.Type() != "AttributeAssignment" {
			continue
		}
		out = append(out, a.Slice(field)...)
	}
	return out
}

// ofType returns the entries whose type matches typ.
func ofType(entries []Object, typ string) []Object {
	out := make([]Object, 0, len(entries))
	for _, e := range entries {
		if e.Type() == typ {
			out = append(out, e)
		}
	}
	return out
}

// stringValues keeps the non-empty string payloads of a projection.
func stringValues(values []interface{}) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
