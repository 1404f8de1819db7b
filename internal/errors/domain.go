package errors

import (
	stderrors "errors"
	"net/http"
)

// DomainError is an error with a stable code and the HTTP status it maps to.
type DomainError struct {
	Code    string            `json:"code"`
	Message string            `json:"error"`
	Status  int               `json:"-"`
	Fields  map[string]string `json:"fields,omitempty"`
	cause   error
}

func (e *DomainError) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.cause
}

// Is matches on code so wrapped copies still compare equal to the sentinel.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

// Wrap returns a copy of e carrying cause.
func (e *DomainError) Wrap(cause error) *DomainError {
	cp := *e
	cp.cause = cause
	return &cp
}

// WithFields returns a copy of e carrying field level messages.
func (e *DomainError) WithFields(fields map[string]string) *DomainError {
	cp := *e
	cp.Fields = fields
	return &cp
}

// StatusOf returns the HTTP status for err, 500 when err is not a DomainError.
func StatusOf(err error) int {
	var de *DomainError
	if stderrors.As(err, &de) && de.Status != 0 {
		return de.Status
	}
	return http.StatusInternalServerError
}
