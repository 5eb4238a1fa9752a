package linkedart

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Decode reads one JSON document from r and returns it as an Object. The
// document must be a JSON object; arrays and scalars fail with
// ErrInvalidDocument. Decoding stops after the first document, so r may
// carry trailing data.
func Decode(r io.Reader) (Object, error) {
	var data interface{}
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("linkedart: decode document: %w", err)
	}
	obj, ok := data.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidDocument, data)
	}
	return Object(obj), nil
}

// DecodeBytes is Decode over an in-memory document.
func DecodeBytes(data []byte) (Object, error) {
	return Decode(bytes.NewReader(data))
}
