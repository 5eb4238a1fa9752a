package linkedart

import (
	"sort"

	"golang.org/x/text/language"
)

// RequestedLanguage picks the best supported language for an HTTP
// Accept-Language header value. The supported languages are the keys of
// the active lookup table, so the result feeds straight into
// LanguageMatches and the getters. Returns the empty string when the
// header is empty, fails to parse or matches no supported language.
func RequestedLanguage(acceptLanguage string, opts *LanguageOptions) string {
	if acceptLanguage == "" {
		return ""
	}
	lookup := opts.activeLookup()
	codes := make([]string, 0, len(lookup))
	for code := range lookup {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	supported := make([]language.Tag, 0, len(codes))
	kept := make([]string, 0, len(codes))
	for _, code := range codes {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		supported = append(supported, tag)
		kept = append(kept, code)
	}
	if len(supported) == 0 {
		return ""
	}
	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return ""
	}
	_, index, confidence := language.NewMatcher(supported).Match(desired...)
	if confidence == language.No {
		return ""
	}
	return kept[index]
}
