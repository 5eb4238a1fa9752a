package linkedart

import (
	"errors"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	input := `{"id": "https://example.org/objects/1", "type": "HumanMadeObject"}`

	o, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.ID() != "https://example.org/objects/1" {
		t.Errorf("decoded id = %q", o.ID())
	}
	if o.Type() != "HumanMadeObject" {
		t.Errorf("decoded type = %q", o.Type())
	}
}

func TestDecode_TrailingData(t *testing.T) {
	input := `{"id": "a"} trailing garbage`

	o, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.ID() != "a" {
		t.Errorf("decoded id = %q", o.ID())
	}
}

func TestDecode_NotAnObject(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"array", `[{"id": "a"}]`},
		{"string", `"hello"`},
		{"number", `42`},
		{"null", `null`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			if !errors.Is(err, ErrInvalidDocument) {
				t.Errorf("Decode(%s) error = %v, want ErrInvalidDocument", tt.input, err)
			}
		})
	}
}

func TestDecode_MalformedJSON(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"id": `))
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	if errors.Is(err, ErrInvalidDocument) {
		t.Error("malformed JSON should not report ErrInvalidDocument")
	}
	if !strings.Contains(err.Error(), "linkedart:") {
		t.Errorf("error should carry the package prefix: %v", err)
	}
}

func TestDecodeBytes(t *testing.T) {
	o, err := DecodeBytes([]byte(`{"_label": "Vase"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Label() != "Vase" {
		t.Errorf("decoded label = %q", o.Label())
	}
}
