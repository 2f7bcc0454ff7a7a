package schema

import "encoding/json"

// Schema is message schema interface
type Schema interface {
	// String renders the schema as plain text for prompts and UI display
	String() string
}

// Stringify renders a schema as text, falling back to JSON for structured
// schemas without a natural text form.
func Stringify(s Schema) string {
	if v := s.String(); v != "" {
		return v
	}
	bs, _ := json.Marshal(s)
	return string(bs)
}

// ToBytes returns the rendered schema as bytes
func ToBytes(s Schema) []byte {
	return []byte(Stringify(s))
}
