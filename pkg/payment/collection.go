package payment

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Collection is the pagination envelope returned by list endpoints. The
// service answers either a bare JSON array (no pagination) or an object with
// a named array field plus a "meta" block; both shapes parse into the same
// Collection.
type Collection[T any] struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	TotalPages  int `json:"total_pages"`
	TotalCount  int `json:"total_count"`

	Items []T `json:"-"`
}

// MarshalJSON renders the collection with its items inlined under "items",
// next to the pagination fields.
func (c Collection[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		CurrentPage int `json:"current_page"`
		PerPage     int `json:"per_page"`
		TotalPages  int `json:"total_pages"`
		TotalCount  int `json:"total_count"`
		Items       []T `json:"items"`
	}{c.CurrentPage, c.PerPage, c.TotalPages, c.TotalCount, c.Items})
}

// parseCollection builds a Collection from a classified list payload. key
// names the array field inside an enveloped response. The Items slice is
// always non-nil, even for an empty or missing list.
func parseCollection[T any](raw json.RawMessage, key string) (*Collection[T], error) {
	col := &Collection[T]{Items: []T{}}
	if emptyPayload(raw) {
		return col, nil
	}

	trimmed := bytes.TrimSpace(raw)
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &col.Items); err != nil {
			return nil, fmt.Errorf("failed to decode list payload: %w", err)
		}
		if col.Items == nil {
			col.Items = []T{}
		}
		return col, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode list payload: %w", err)
	}
	if items, ok := envelope[key]; ok && !emptyPayload(items) {
		if err := json.Unmarshal(items, &col.Items); err != nil {
			return nil, fmt.Errorf("failed to decode %q items: %w", key, err)
		}
		if col.Items == nil {
			col.Items = []T{}
		}
	}
	if meta, ok := envelope["meta"]; ok && !emptyPayload(meta) {
		if err := json.Unmarshal(meta, col); err != nil {
			return nil, fmt.Errorf("failed to decode pagination meta: %w", err)
		}
	}
	return col, nil
}
