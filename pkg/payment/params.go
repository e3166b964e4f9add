package payment

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Params is a loose bag of request parameters, mirroring the JSON-ish
// dictionaries the payment service accepts. Nested maps and slices are
// supported by the query encoder.
type Params map[string]any

func sortedKeys(params map[string]any) []string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// structParams converts a tagged struct into Params via its JSON
// representation. Fields marked omitempty and left at their zero value are
// dropped, so only populated attributes reach the wire.
func structParams(v any) (Params, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode parameters: %w", err)
	}
	var params Params
	if err := json.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("failed to decode parameters: %w", err)
	}
	return params, nil
}
