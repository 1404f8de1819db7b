package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var countryCodeRegex = regexp.MustCompile(`^[A-Z]{2}$`)

// Validator defines validation methods
type Validator struct {
	Errors map[string]string
}

// New creates a new validator
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid checks if there are any validation errors
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError adds an error to the validator. The first message per field is kept.
func (v *Validator) AddError(field, message string) {
	if _, exists := v.Errors[field]; exists {
		return
	}
	v.Errors[field] = message
}

// Check adds an error if the condition is false
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Required checks if a string is not empty
func (v *Validator) Required(field string, value interface{}) {
	if value == nil {
		v.AddError(field, "must not be nil")
		return
	}

	switch val := value.(type) {
	case string:
		trimmed := strings.TrimSpace(val)
		v.Check(trimmed != "", field, "must not be empty")
	case []string:
		v.Check(len(val) > 0, field, "must contain at least one item")
	case float64:
		v.Check(val != 0, field, "must not be zero")
	case int:
		v.Check(val != 0, field, "must not be zero")
	case uint:
		v.Check(val != 0, field, "must not be zero")
	}
}

// Positive checks that a number is strictly greater than zero
func (v *Validator) Positive(field string, value float64) {
	v.Check(value > 0, field, "must be greater than zero")
}

// NonNegative checks that a number is zero or greater
func (v *Validator) NonNegative(field string, value float64) {
	v.Check(value >= 0, field, "must not be negative")
}

// MaxLength checks if a string has at most n characters
func (v *Validator) MaxLength(field string, value string, n int) {
	v.Check(len(value) <= n, field, fmt.Sprintf("must not be more than %d characters long", n))
}

// Range checks if a number is between min and max
func (v *Validator) Range(field string, value float64, min, max float64) {
	v.Check(value >= min && value <= max, field, fmt.Sprintf("must be between %v and %v", min, max))
}

// CountryCode validates an ISO 3166-1 alpha-2 code (upper case).
func (v *Validator) CountryCode(field, code string) {
	v.Check(countryCodeRegex.MatchString(code), field, "must be a two-letter country code")
}

// Error renders the collected errors in a stable order.
func (v *Validator) Error() string {
	fields := make([]string, 0, len(v.Errors))
	for f := range v.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+v.Errors[f])
	}
	return strings.Join(parts, "; ")
}
