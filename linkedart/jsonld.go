package linkedart

import (
	"context"
	"fmt"
	"sort"

	ld "github.com/piprate/json-gold/ld"
)

// Context is the Linked Art v1 JSON-LD context URL. Documents that follow
// the profile declare it as their @context.
const Context = "https://linked.art/ns/v1/linked-art.json"

// ProcessorOptions configures JSON-LD processing.
type ProcessorOptions struct {
	// BaseIRI resolves relative IRIs.
	BaseIRI string
	// ProcessingMode controls JSON-LD version semantics: "json-ld-1.0" or "json-ld-1.1".
	ProcessingMode string
	// CompactArrays controls compaction of single-element arrays.
	CompactArrays bool
	// SafeMode toggles strict JSON-LD error handling.
	SafeMode bool
	// DocumentLoader resolves remote contexts. Nil falls back to the
	// default loader, which fetches over HTTP.
	DocumentLoader DocumentLoader
}

// DocumentLoader resolves remote contexts/documents.
type DocumentLoader interface {
	LoadDocument(ctx context.Context, iri string) (RemoteDocument, error)
}

// RemoteDocument represents a fetched JSON-LD document.
type RemoteDocument struct {
	DocumentURL string
	Document    interface{}
	ContextURL  string
}

// Expand applies JSON-LD expansion to a document, replacing profile
// shorthand with full property and type IRIs.
func Expand(ctx context.Context, input interface{}, opts ProcessorOptions) (interface{}, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	proc := ld.NewJsonLdProcessor()
	return proc.Expand(input, newGoldOptions(ctx, opts))
}

// Compact compacts a document against a context. A nil context compacts
// against the Linked Art context URL, which restores the profile's
// shorthand keys on an expanded document.
func Compact(ctx context.Context, input interface{}, context interface{}, opts ProcessorOptions) (interface{}, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	if context == nil {
		context = Context
	}
	proc := ld.NewJsonLdProcessor()
	return proc.Compact(input, context, newGoldOptions(ctx, opts))
}

// Flatten flattens a document's node tree into a single @graph array,
// compacted against the given context. A nil context flattens against the
// Linked Art context URL.
func Flatten(ctx context.Context, input interface{}, context interface{}, opts ProcessorOptions) (interface{}, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	if context == nil {
		context = Context
	}
	proc := ld.NewJsonLdProcessor()
	return proc.Flatten(input, context, newGoldOptions(ctx, opts))
}

// Frame applies JSON-LD framing to a document, reshaping it to match the
// given frame.
func Frame(ctx context.Context, input interface{}, frame interface{}, opts ProcessorOptions) (interface{}, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	proc := ld.NewJsonLdProcessor()
	return proc.Frame(input, frame, newGoldOptions(ctx, opts))
}

// Triple carries one RDF statement of a document. Object holds the IRI,
// blank node label or literal lexical form; Language and Datatype are set
// for literals only.
type Triple struct {
	Subject   string
	Predicate string
	Object    string
	IsLiteral bool
	Language  string
	Datatype  string
}

// Triples converts a document to its RDF statements. Named graphs are
// flattened into the result, default graph first, remaining graphs in
// lexical graph name order.
func Triples(ctx context.Context, input interface{}, opts ProcessorOptions) ([]Triple, error) {
	dataset, err := toDataset(ctx, input, opts)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(dataset.Graphs))
	for name := range dataset.Graphs {
		names = append(names, name)
	}
	sort.Strings(names)
	var triples []Triple
	for _, name := range names {
		for _, quad := range dataset.Graphs[name] {
			if quad == nil {
				continue
			}
			t := Triple{
				Subject:   nodeValue(quad.Subject),
				Predicate: nodeValue(quad.Predicate),
			}
			if literal, ok := quad.Object.(ld.Literal); ok {
				t.Object = literal.Value
				t.IsLiteral = true
				t.Language = literal.Language
				t.Datatype = literal.Datatype
			} else {
				t.Object = nodeValue(quad.Object)
			}
			triples = append(triples, t)
		}
	}
	return triples, nil
}

// Normalize canonicalizes a document to URDNA2015 N-Quads. Two documents
// normalize to the same string exactly when they describe the same graph,
// which makes the result suitable for change detection and signing.
func Normalize(ctx context.Context, input interface{}, opts ProcessorOptions) (string, error) {
	dataset, err := toDataset(ctx, input, opts)
	if err != nil {
		return "", err
	}
	api := ld.NewJsonLdApi()
	goldOpts := ld.NewJsonLdOptions("")
	goldOpts.Format = "application/n-quads"
	goldOpts.Algorithm = ld.AlgorithmURDNA2015
	normalized, err := api.Normalize(dataset, goldOpts)
	if err != nil {
		return "", fmt.Errorf("linkedart: normalize document: %w", err)
	}
	value, ok := normalized.(string)
	if !ok {
		return "", fmt.Errorf("linkedart: unexpected normalization result %T", normalized)
	}
	return value, nil
}

func toDataset(ctx context.Context, input interface{}, opts ProcessorOptions) (*ld.RDFDataset, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	proc := ld.NewJsonLdProcessor()
	result, err := proc.ToRDF(input, newGoldOptions(ctx, opts))
	if err != nil {
		return nil, err
	}
	dataset, ok := result.(*ld.RDFDataset)
	if !ok {
		return nil, fmt.Errorf("linkedart: unexpected ToRDF result %T", result)
	}
	return dataset, nil
}

func nodeValue(node ld.Node) string {
	if node == nil {
		return ""
	}
	return node.GetValue()
}

type jsonGoldDocumentLoader struct {
	ctx   context.Context
	inner DocumentLoader
}

func (l jsonGoldDocumentLoader) LoadDocument(iri string) (*ld.RemoteDocument, error) {
	if l.inner == nil {
		return ld.NewDefaultDocumentLoader(nil).LoadDocument(iri)
	}
	remote, err := l.inner.LoadDocument(l.ctx, iri)
	if err != nil {
		return nil, err
	}
	return &ld.RemoteDocument{
		DocumentURL: remote.DocumentURL,
		Document:    remote.Document,
		ContextURL:  remote.ContextURL,
	}, nil
}

func newGoldOptions(ctx context.Context, opts ProcessorOptions) *ld.JsonLdOptions {
	goldOpts := ld.NewJsonLdOptions(opts.BaseIRI)
	if opts.ProcessingMode != "" {
		goldOpts.ProcessingMode = opts.ProcessingMode
	}
	if opts.CompactArrays {
		goldOpts.CompactArrays = opts.CompactArrays
	}
	goldOpts.SafeMode = opts.SafeMode
	if opts.DocumentLoader != nil {
		goldOpts.DocumentLoader = jsonGoldDocumentLoader{ctx: ctx, inner: opts.DocumentLoader}
	}
	return goldOpts
}
