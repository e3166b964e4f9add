/**
 * @description
 * Response classification for the payment service. Every connector method
 * funnels its raw HTTP response through handleResponse, which implements the
 * service's status-code contract:
 *
 *   2xx   -> JSON payload (optionally unwrapped at a named root key)
 *   404   -> nil payload, no error
 *   422   -> *ValidationError carrying the body's "error" field
 *   other -> *RequestError naming verb, path and status
 */
package payment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// handleResponse reads and classifies a response. On success it returns the
// decoded payload as raw JSON; when rootKey is given the payload is the value
// under that key. A missing root key is not an error, it yields a nil payload
// the same way a 404 does.
func handleResponse(verb, path string, resp *http.Response, rootKey string) (json.RawMessage, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode <= 299:
		return handleSuccess(body, rootKey)
	case resp.StatusCode == http.StatusNotFound:
		return nil, nil
	case resp.StatusCode == http.StatusUnprocessableEntity:
		return nil, unprocessableEntityError(body)
	default:
		return nil, &RequestError{Verb: verb, Path: path, StatusCode: resp.StatusCode}
	}
}

func handleSuccess(body []byte, rootKey string) (json.RawMessage, error) {
	if rootKey == "" {
		return json.RawMessage(body), nil
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}
	return envelope[rootKey], nil
}

func unprocessableEntityError(body []byte) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return &ValidationError{Message: payload.Error}
	}
	return &ValidationError{Message: "request error"}
}

// emptyPayload reports whether a classified payload carries no value: a 404,
// a missing root key, or an explicit JSON null.
func emptyPayload(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// decodePayload unmarshals a non-empty payload into target. It is the shared
// tail of every typed connector method.
func decodePayload(raw json.RawMessage, target any) error {
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("failed to decode response payload: %w", err)
	}
	return nil
}
