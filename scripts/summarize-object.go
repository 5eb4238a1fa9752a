//go:build ignore

// Prints a quick summary of a Linked Art object document.
//
// Usage: go run scripts/summarize-object.go [-lang code] object.json
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/geoknoesis/linkedart-go/linkedart"
)

func main() {
	lang := flag.String("lang", "en", "requested language code")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-lang code] <object.json>\n", os.Args[0])
		os.Exit(1)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	obj, err := linkedart.Decode(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	opts := &linkedart.LanguageOptions{Fallback: "en"}
	fmt.Printf("%-12s %s\n", "id:", obj.ID())
	fmt.Printf("%-12s %s\n", "type:", obj.Type())
	fmt.Printf("%-12s %s\n", "name:", linkedart.PrimaryName(obj, *lang, opts))

	if numbers := linkedart.AccessionNumbers(obj); len(numbers) > 0 {
		fmt.Printf("%-12s %s\n", "accession:", strings.Join(numbers, ", "))
	}
	for _, workType := range linkedart.WorkTypes(obj) {
		fmt.Printf("%-12s %s\n", "work type:", workType.Label())
	}
	for _, actor := range linkedart.CarriedOutBy(obj) {
		fmt.Printf("%-12s %s\n", "produced by:", actor.Label())
	}
	for _, statement := range linkedart.MaterialStatements(obj, *lang, opts) {
		fmt.Printf("%-12s %s\n", "materials:", statement)
	}
	for _, statement := range linkedart.Descriptions(obj, *lang, opts) {
		fmt.Printf("%-12s %s\n", "description:", statement)
	}
	for _, image := range linkedart.DigitalImages(obj) {
		fmt.Printf("%-12s %s\n", "image:", image)
	}
}
