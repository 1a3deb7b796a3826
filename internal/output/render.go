package output

import (
	"bytes"
	"encoding/json"
	"strings"
)

// formatValue pretty-prints JSON secret values with four-space indentation.
// Anything that does not parse as a single JSON document comes back
// verbatim. Numbers are decoded as json.Number so their stored literal
// form survives re-encoding.
func formatValue(raw string) string {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return raw
	}
	if dec.More() {
		// trailing content after the first document means it was never
		// a JSON secret to begin with
		return raw
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return raw
	}
	// Encode appends a trailing newline; the caller prints its own.
	return strings.TrimSuffix(buf.String(), "\n")
}
