package payment

import (
	"fmt"
	"strings"
)

// RequestError is returned when the service answers with a status code the
// client does not handle (anything outside 2xx, 404 and 422). It names the
// verb, path and status of the failed call.
type RequestError struct {
	Verb       string
	Path       string
	StatusCode int
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("payment: '%s %s' failed with status = %d", strings.ToUpper(e.Verb), e.Path, e.StatusCode)
}

// ValidationError is returned on HTTP 422. Message carries the service's
// "error" field when present, or a generic fallback.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "payment: " + e.Message
}

// ParameterError is raised locally, before any network call, when charge
// creation parameters are missing a required key or include an unknown one.
type ParameterError struct {
	Param   string
	Unknown bool
}

func (e *ParameterError) Error() string {
	if e.Unknown {
		return fmt.Sprintf("payment: unknown parameter %s passed in", e.Param)
	}
	return fmt.Sprintf("payment: parameter %s missing", e.Param)
}
