package errors

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ValidationError lists failed checks per field.
type ValidationError struct {
	Fields map[string][]string `json:"fields"`
}

func (v *ValidationError) Error() string {
	if len(v.Fields) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(v.Fields))
	for _, field := range slices.Sorted(maps.Keys(v.Fields)) {
		parts = append(parts, field+": "+strings.Join(v.Fields[field], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// meta renders Fields in a shape structpb accepts so the field list survives
// ToGRPCError.
func (v *ValidationError) meta() map[string]any {
	out := make(map[string]any, len(v.Fields))
	for field, messages := range v.Fields {
		list := make([]any, len(messages))
		for i, m := range messages {
			list[i] = m
		}
		out[field] = list
	}
	return out
}

// ValidationBuilder accumulates field errors and builds a single
// InvalidArgument error, or nil when everything passed.
type ValidationBuilder struct {
	fields map[string][]string
}

func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{fields: map[string][]string{}}
}

func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.fields[field] = append(vb.fields[field], message)
	return vb
}

func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// Build returns an InvalidArgument *Error carrying the field list under the
// "validation_errors" meta key, or nil.
func (vb *ValidationBuilder) Build() error {
	if len(vb.fields) == 0 {
		return nil
	}
	v := &ValidationError{Fields: maps.Clone(vb.fields)}
	return &Error{
		Code:    CodeInvalidArgument,
		Message: v.Error(),
		Meta:    map[string]any{"validation_errors": v.meta()},
	}
}

// ValidateRequired flags a blank string.
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateRange flags a value outside [minValue, maxValue].
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %d and %d", minValue, maxValue)
	}
}

// ValidateEnum flags a value not in allowed.
func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	if !slices.Contains(allowed, value) {
		vb.Fieldf(field, "must be one of: %s", strings.Join(allowed, ", "))
	}
}
