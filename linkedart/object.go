package linkedart

// Object is one decoded Linked.Art JSON-LD node: a document, or any nested
// sub-object reached through a relationship key. It is a plain view over
// caller-owned data; no method mutates the underlying map.
type Object map[string]interface{}

// ID returns the node's "id" value, or "" when absent or not a string.
func (o Object) ID() string {
	return str(o["id"])
}

// Type returns the node's "type" discriminator (e.g. "Name", "Identifier"),
// or "" when absent.
func (o Object) Type() string {
	return str(o["type"])
}

// Label returns the node's "_label" value, or "" when absent. Labels are
// human-readable only and ignored by all matching.
func (o Object) Label() string {
	return str(o["_label"])
}

// Content returns the node's "content" payload, or "" when absent or not a
// string.
func (o Object) Content() string {
	return str(o["content"])
}

// Value returns the node's "value" payload, or nil when absent.
func (o Object) Value() interface{} {
	if o == nil {
		return nil
	}
	return o["value"]
}

// ValueOrContent returns the node's "value" payload when present, else its
// "content" payload, else nil. Dimensions carry numeric values; names and
// statements carry textual content.
func (o Object) ValueOrContent() interface{} {
	if o == nil {
		return nil
	}
	if v, ok := o["value"]; ok && v != nil {
		return v
	}
	if c, ok := o["content"]; ok && c != nil {
		return c
	}
	return nil
}

// Slice returns the entries stored under key as a flat slice of objects,
// collapsing every shape the field may legally take: absent, a single
// object, a bare identifier string, or an array mixing both. A bare string
// becomes an object holding only that "id". Null entries and unrecognized
// shapes are dropped.
//
// This is the single normalization point for polymorphic relationship
// fields; all filtering builds on it.
func (o Object) Slice(key string) []Object {
	if o == nil {
		return nil
	}
	return asObjects(o[key])
}

// Classifications returns the node's classified_as entries.
func (o Object) Classifications() []Object {
	return o.Slice("classified_as")
}

// asObjects collapses a polymorphic field value into a slice of objects.
func asObjects(raw interface{}) []Object {
	switch value := raw.(type) {
	case nil:
		return nil
	case map[string]interface{}:
		return []Object{Object(value)}
	case Object:
		return []Object{value}
	case string:
		return []Object{{"id": value}}
	case []Object:
		return value
	case []interface{}:
		out := make([]Object, 0, len(value))
		for _, entry := range value {
			switch item := entry.(type) {
			case map[string]interface{}:
				out = append(out, Object(item))
			case Object:
				out = append(out, item)
			case string:
				out = append(out, Object{"id": item})
			}
		}
		return out
	default:
		return nil
	}
}

// str returns v as a string, or "" for anything else.
func str(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
