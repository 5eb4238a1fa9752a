package linkedart

import (
	"strings"

	"github.com/geoknoesis/linkedart-go/aat"
)

// NoLanguage is the canonical value recorded for fragments that declare no
// language. It is reserved: no real language identifier normalizes to it,
// and normalizing it returns it unchanged.
const NoLanguage = "NO_LANGUAGE"

// DefaultLanguageLookup returns the built-in language code table mapping
// short codes to AAT language term identifiers. The map is a fresh copy on
// every call; callers may modify it freely before passing it back through
// LanguageOptions.Lookup.
func DefaultLanguageLookup() map[string]string {
	return map[string]string{
		"en": aat.LanguageEnglish,
		"es": aat.LanguageSpanish,
		"fr": aat.LanguageFrench,
	}
}

// LanguageOptions configures language normalization and matching.
// The zero value uses the default lookup table, no fallback, and includes
// fragments that declare no language.
type LanguageOptions struct {
	// Lookup replaces the default code table when non-nil. The replacement
	// is total: default entries are not merged in.
	Lookup map[string]string
	// Fallback is a secondary language accepted when the requested language
	// is not declared on a fragment.
	Fallback string
	// ExcludeNoLanguage excludes fragments that declare no language. By
	// default such fragments match every request.
	ExcludeNoLanguage bool
}

// activeLookup returns the lookup table in effect for opts.
func (opts *LanguageOptions) activeLookup() map[string]string {
	if opts != nil && opts.Lookup != nil {
		return opts.Lookup
	}
	return DefaultLanguageLookup()
}

// NormalizeLanguageID normalizes a raw language identifier to its canonical
// form. The empty identifier normalizes to NoLanguage. Otherwise the
// identifier is lowercased and, when it ends in a path segment made of
// letters only (a vocabulary URL whose final segment is the short code),
// reduced to that segment before lookup. A lookup hit returns the mapped
// canonical value; a miss returns the original identifier unchanged,
// original case included.
func NormalizeLanguageID(id string, opts *LanguageOptions) string {
	if id == "" {
		return NoLanguage
	}
	token := strings.ToLower(id)
	if tail, ok := trailingAlphaSegment(token); ok {
		token = tail
	}
	if canonical, ok := opts.activeLookup()[token]; ok {
		return canonical
	}
	return id
}

// LanguageIDs returns the set of canonical language identifiers declared on
// a fragment, in declaration order with duplicates removed. A nil fragment
// or one without a language field yields exactly [NoLanguage]. The language
// field may be a single identifier string, an object carrying an id, or an
// array mixing identifiers, objects and nulls; null entries stand for
// explicitly unlabeled members and contribute NoLanguage. Raw entries are
// deduplicated before normalization and the normalized values after, since
// normalization may collapse two distinct raw entries into one.
func LanguageIDs(o Object, opts *LanguageOptions) []string {
	if o == nil {
		return []string{NoLanguage}
	}
	raw, ok := o["language"]
	if !ok || raw == nil {
		return []string{NoLanguage}
	}
	var collected []string
	switch value := raw.(type) {
	case string:
		collected = []string{value}
	case map[string]interface{}:
		collected = []string{str(value["id"])}
	case Object:
		collected = []string{str(value["id"])}
	case []interface{}:
		collected = make([]string, 0, len(value))
		for _, entry := range value {
			switch item := entry.(type) {
			case string:
				collected = append(collected, item)
			case map[string]interface{}:
				collected = append(collected, str(item["id"]))
			case Object:
				collected = append(collected, str(item["id"]))
			default:
				collected = append(collected, NoLanguage)
			}
		}
	default:
		return []string{NoLanguage}
	}
	collected = uniqueStrings(collected)
	normalized := make([]string, 0, len(collected))
	for _, id := range collected {
		normalized = append(normalized, NormalizeLanguageID(id, opts))
	}
	normalized = uniqueStrings(normalized)
	if len(normalized) == 0 {
		return []string{NoLanguage}
	}
	return normalized
}

// LanguageMatches reports whether a fragment's declared languages satisfy a
// requested language. The branches are checked in a fixed order:
//
//  1. An empty requested language matches every fragment.
//  2. The fragment declares the normalized requested language.
//  3. The fragment declares the normalized fallback language, when one is
//     configured.
//  4. The fragment declares no language at all, which matches unless
//     ExcludeNoLanguage is set.
//
// The fallback is consulted before the no-language rule, and the
// no-language rule is the only branch that consults ExcludeNoLanguage.
func LanguageMatches(o Object, language string, opts *LanguageOptions) bool {
	if language == "" {
		return true
	}
	ids := LanguageIDs(o, opts)
	if containsString(ids, NormalizeLanguageID(language, opts)) {
		return true
	}
	if opts != nil && opts.Fallback != "" {
		if containsString(ids, NormalizeLanguageID(opts.Fallback, opts)) {
			return true
		}
	}
	if len(ids) == 0 || containsString(ids, NoLanguage) {
		if opts != nil && opts.ExcludeNoLanguage {
			return false
		}
		return true
	}
	return false
}

// trailingAlphaSegment extracts the final path segment of s when s contains
// a slash and everything after the last slash is ASCII letters.
func trailingAlphaSegment(s string) (string, bool) {
	slash := strings.LastIndexByte(s, '/')
	if slash < 0 || slash == len(s)-1 {
		return "", false
	}
	tail := s[slash+1:]
	for i := 0; i < len(tail); i++ {
		ch := tail[i]
		if (ch < 'a' || ch > 'z') && (ch < 'A' || ch > 'Z') {
			return "", false
		}
	}
	return tail, true
}

// uniqueStrings removes duplicates while preserving first-occurrence order.
func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
