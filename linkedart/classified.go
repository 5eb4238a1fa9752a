package linkedart

import (
	"reflect"
	"strings"
)

// aatPrefix is the shorthand scheme accepted for AAT term identifiers.
const aatPrefix = "aat:"

// aatBase is the canonical form comparisons reduce AAT identifiers to.
const aatBase = "https://vocab.getty.edu/aat/"

// NormalizeAATID normalizes a vocabulary term identifier for comparison.
// The identifier is lowercased, http identifiers become https, and the
// "aat:" shorthand expands to the full Getty vocabulary URL. Both sides of
// every classification comparison pass through this, so documents and
// callers may mix shorthand, http and https forms freely.
func NormalizeAATID(id string) string {
	id = strings.ToLower(id)
	if strings.HasPrefix(id, "http://") {
		id = "https://" + strings.TrimPrefix(id, "http://")
	}
	if strings.HasPrefix(id, aatPrefix) {
		id = aatBase + strings.TrimPrefix(id, aatPrefix)
	}
	return id
}

// ClassifiedAs returns the entries carrying a classified_as reference whose
// id matches the requested classification, restricted to entries whose
// language satisfies LanguageMatches. A nil entries slice yields an empty
// result; so does a classification no entry carries.
func ClassifiedAs(entries []Object, classification string, language string, opts *LanguageOptions) []Object {
	return filterClassified(entries, "classified_as", []string{classification}, language, opts, false)
}

// ClassifiedAsAny is ClassifiedAs over several classifications at once: an
// entry matches when it carries any of them. Requiring two classifications
// on the same entry is composed by intersecting two single-classification
// calls; see IntersectByIdentity.
func ClassifiedAsAny(entries []Object, classifications []string, language string, opts *LanguageOptions) []Object {
	return filterClassified(entries, "classified_as", classifications, language, opts, false)
}

// ClassifiedBy is ClassifiedAs over the classified_by key some producers
// use in place of classified_as.
func ClassifiedBy(entries []Object, classification string, language string, opts *LanguageOptions) []Object {
	return filterClassified(entries, "classified_by", []string{classification}, language, opts, false)
}

// Classified filters entries by the classification ids they carry under an
// arbitrary classification key. Most callers want ClassifiedAs.
func Classified(entries []Object, field string, classifications []string, language string, opts *LanguageOptions) []Object {
	return filterClassified(entries, field, classifications, language, opts, false)
}

// ClassifiedAsWithClassification matches entries whose classified_as
// references match the requested classification either directly or through
// the reference's own classified_as, a classification that is itself
// classified. The indirection is exactly one level; deeper nesting is not
// followed.
func ClassifiedAsWithClassification(entries []Object, classification string, language string, opts *LanguageOptions) []Object {
	return filterClassified(entries, "classified_as", []string{classification}, language, opts, true)
}

// filterClassified is the matching core shared by the exported variants.
// nested additionally admits ids one level down, on a classification's own
// classified_as references.
func filterClassified(entries []Object, field string, classifications []string, language string, opts *LanguageOptions, nested bool) []Object {
	requested := make(map[string]struct{}, len(classifications))
	for _, id := range classifications {
		if id == "" {
			continue
		}
		requested[NormalizeAATID(id)] = struct{}{}
	}
	matched := make([]Object, 0, len(entries))
	if len(requested) == 0 {
		return matched
	}
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		if !LanguageMatches(entry, language, opts) {
			continue
		}
		for _, id := range classificationIDs(entry, field, nested) {
			if _, ok := requested[id]; ok {
				matched = append(matched, entry)
				break
			}
		}
	}
	return matched
}

// classificationIDs collects the normalized ids of an entry's classification
// references, and with nested set, the ids those references carry on their
// own classified_as, one level down.
func classificationIDs(entry Object, field string, nested bool) []string {
	refs := entry.Slice(field)
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		if id := ref.ID(); id != "" {
			ids = append(ids, NormalizeAATID(id))
		}
		if !nested {
			continue
		}
		for _, sub := range ref.Classifications() {
			if id := sub.ID(); id != "" {
				ids = append(ids, NormalizeAATID(id))
			}
		}
	}
	return ids
}

// ValueByClassification returns the first value or content payload among
// the entries matching the classification, or nil when no entry matches or
// none of the matches carries a payload.
func ValueByClassification(entries []Object, classification string, language string, opts *LanguageOptions) interface{} {
	for _, entry := range ClassifiedAs(entries, classification, language, opts) {
		if v := entry.ValueOrContent(); v != nil {
			return v
		}
	}
	return nil
}

// ValuesByClassification returns the value or content payloads of every
// entry matching the classification, preserving entry order. Matches
// without a payload are skipped; duplicates are preserved.
func ValuesByClassification(entries []Object, classification string, language string, opts *LanguageOptions) []interface{} {
	matched := ClassifiedAs(entries, classification, language, opts)
	out := make([]interface{}, 0, len(matched))
	for _, entry := range matched {
		if v := entry.ValueOrContent(); v != nil {
			out = append(out, v)
		}
	}
	return out
}

// FieldValuesByClassifications projects the payloads of the entries stored
// under a relationship key that match any of the classifications. This is
// the one-line building block the simple getters are made of.
func FieldValuesByClassifications(o Object, field string, classifications []string, language string, opts *LanguageOptions) []interface{} {
	matched := ClassifiedAsAny(o.Slice(field), classifications, language, opts)
	out := make([]interface{}, 0, len(matched))
	for _, entry := range matched {
		if v := entry.ValueOrContent(); v != nil {
			out = append(out, v)
		}
	}
	return out
}

// FieldWithParts returns the entries stored under a relationship key
// together with the entries nested one level down in each entry's part
// array, direct entries first.
func FieldWithParts(o Object, field string) []Object {
	entries := o.Slice(field)
	out := make([]Object, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry)
		out = append(out, entry.Slice("part")...)
	}
	return out
}

// FieldPartSubfield collects the subfield values found on a relationship's
// entries and on the entries of their part arrays. The result is always a
// flat, non-nil slice in discovery order: direct hits before part hits.
// An absent relationship yields an empty slice, and an empty subfield
// returns the entries themselves.
func FieldPartSubfield(o Object, field, subfield string) []Object {
	entries := FieldWithParts(o, field)
	if subfield == "" {
		return entries
	}
	result := []Object{}
	for _, entry := range entries {
		result = append(result, entry.Slice(subfield)...)
	}
	return result
}

// IntersectByIdentity returns the entries of a that also appear in b,
// compared by identity of the underlying object rather than by content.
// Combining two single-classification filter calls this way requires both
// classifications on the same entry.
func IntersectByIdentity(a, b []Object) []Object {
	inB := make(map[uintptr]struct{}, len(b))
	for _, o := range b {
		if o != nil {
			inB[reflect.ValueOf(o).Pointer()] = struct{}{}
		}
	}
	out := make([]Object, 0, len(a))
	for _, o := range a {
		if o == nil {
			continue
		}
		if _, ok := inB[reflect.ValueOf(o).Pointer()]; ok {
			out = append(out, o)
		}
	}
	return out
}
