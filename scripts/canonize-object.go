//go:build ignore

// Canonicalizes a Linked Art JSON-LD document to URDNA2015 N-Quads and
// writes them to stdout. Remote contexts are fetched over HTTP, so this
// needs network access for documents that declare the published Linked
// Art context.
//
// Usage: go run scripts/canonize-object.go object.json
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/geoknoesis/linkedart-go/linkedart"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <object.json>\n", os.Args[0])
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	nquads, err := linkedart.Normalize(context.Background(), doc, linkedart.ProcessorOptions{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Print(nquads)
}
