// Package linkedart provides structured access to Linked Art JSON-LD documents.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// Linked Art is a JSON-LD profile of CIDOC-CRM used by museums to publish
// collection data. Its documents are deeply nested object graphs in which
// the meaning of an entry is carried by vocabulary references rather than
// by the key it sits under: a name, an accession number and a statement all
// live in the same arrays and are told apart by their classified_as terms.
// This package decodes such documents into a generic Object and answers
// questions about them in that vocabulary-driven way:
//   - Decode: Decode() and DecodeBytes() read a document into an Object.
//   - Language: NormalizeLanguageID(), LanguageIDs() and LanguageMatches()
//     resolve the many spellings of a language into canonical identifiers.
//   - Classification: ClassifiedAs() and friends filter entries by the
//     vocabulary terms they carry, with an optional language constraint.
//   - Getters: PrimaryName(), AccessionNumbers(), MaterialStatements() and
//     the other helpers package the common questions into one call each.
//   - JSON-LD: Expand(), Compact(), Flatten(), Frame(), Triples() and
//     Normalize() apply the standard algorithms with the Linked Art
//     context as the default.
//
// Field access never fails: absent and malformed fields degrade to empty
// results, so call chains need no error handling. Only Decode and the
// JSON-LD algorithms return errors.
//
// Example (reading an object's preferred title):
//
//	obj, err := linkedart.DecodeBytes(data)
//	if err != nil {
//	    // handle error
//	}
//	name := linkedart.PrimaryName(obj, "en", nil)
//
// Example (collecting statements in a requested language):
//
//	opts := &linkedart.LanguageOptions{Fallback: "en"}
//	lang := linkedart.RequestedLanguage(r.Header.Get("Accept-Language"), opts)
//	materials := linkedart.MaterialStatements(obj, lang, opts)
//
// Vocabulary term identifiers are compared after normalization, so
// documents and callers may mix the aat: shorthand with full http or https
// Getty URLs. The aat subpackage declares the terms this package relies on.
package linkedart
