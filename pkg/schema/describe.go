package schema

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Describe returns a short human-readable label for a schema document, for
// use in verbose output. It prefers the schema's title, falls back to the
// declared draft, and returns an empty string when neither is present.
func Describe(schema map[string]interface{}) string {
	jsonb, err := json.Marshal(schema)
	if err != nil {
		return ""
	}
	doc := gjson.ParseBytes(jsonb)

	if title := doc.Get("title"); title.Exists() {
		return title.String()
	}
	if draft := doc.Get("$schema"); draft.Exists() {
		return draft.String()
	}
	return ""
}
