package stub

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/search_filters.json
var searchFiltersSchema string

var searchSchema = jsonschema.MustCompileString("search_filters.json", searchFiltersSchema)

// validateSearchPayload checks a raw search body against the embedded
// schema before it is decoded, so malformed filter documents fail with a
// clear 400 instead of being silently zeroed by the JSON decoder.
func validateSearchPayload(raw []byte) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("body is not valid JSON: %w", err)
	}
	if err := searchSchema.Validate(doc); err != nil {
		return fmt.Errorf("filters rejected: %w", err)
	}
	return nil
}
