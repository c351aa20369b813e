package clients

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrMissingToken is returned when an authenticated endpoint is called
// without a session token. Callers treat it as a sign-in redirect.
var ErrMissingToken = errors.New("session token missing")

// RequestError is the generic upstream failure: a non-2xx status without a
// structured validation body. Body carries the raw response text.
type RequestError struct {
	Endpoint string
	Status   int
	Body     string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("back-office %s returned status %d", e.Endpoint, e.Status)
}

// ValidationError is the structured upstream failure: a non-2xx status whose
// body carried {errors: {field: [messages]}}. Callers inspect FieldErrors
// for known conflicts instead of probing response text.
type ValidationError struct {
	Status      int
	FieldErrors map[string][]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.FieldErrors))
	for field := range e.FieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fmt.Sprintf("back-office rejected request: %s", strings.Join(fields, ", "))
}

// Field returns the messages recorded against one field, if any.
func (e *ValidationError) Field(name string) []string {
	return e.FieldErrors[name]
}
