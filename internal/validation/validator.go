// Package validation provides strict decoding of host telemetry payloads.
//
// The write path of the collector only touches the registry after a payload
// has passed three checks:
//
//  1. JSON parsing - the body is a well-formed JSON object
//  2. Presence - every required field key is present in the object
//  3. Struct validation - decoded values satisfy field constraints
//
// Presence is checked against the raw object rather than against Go zero
// values, so a report carrying "cpu_usage": 0 is valid while one missing the
// cpu_usage key is not. The optional GPU fields are never required; their
// absence decodes to nil. Unknown fields are ignored.
package validation

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/fleetwatch/fleetwatch/models"
)

// requiredFields are the keys every host report must carry on the wire.
// The four gpu_* fields are deliberately absent from this list.
var requiredFields = []string{
	"hostname",
	"ip",
	"uptime",
	"cpu_usage",
	"cpu_frequency",
	"cpu_temperature",
	"memory_usage",
	"memory_max",
	"disks",
	"processes",
	"os_name",
	"os_version",
	"os_kernel",
	"os_architecture",
	"cpu_model",
}

// Validator handles host report payload validation.
type Validator struct {
	// structValidator validates Go struct constraints and tags
	structValidator *validator.Validate
}

// ValidationError represents a single validation error with field-level details.
type ValidationError struct {
	// Field is the name of the field that failed validation
	Field string `json:"field"`

	// Message describes why the validation failed
	Message string `json:"message"`
}

// ValidationResult represents the complete result of a validation operation.
type ValidationResult struct {
	// Valid is true if validation passed, false otherwise
	Valid bool `json:"valid"`

	// Errors contains all validation errors found (empty if Valid is true)
	Errors []ValidationError `json:"errors,omitempty"`
}

// New creates a new Validator instance.
func New() *Validator {
	return &Validator{
		structValidator: validator.New(),
	}
}

// ValidateReport decodes and validates a host report payload. On success the
// decoded report is returned alongside a valid result; on failure the report
// is nil and the result carries one entry per problem found.
func (v *Validator) ValidateReport(data []byte) (*models.HostReport, *ValidationResult) {
	// Parse into a raw object first so field presence can be checked
	// independently of Go zero values.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ValidationResult{
			Valid: false,
			Errors: []ValidationError{
				{
					Field:   "document",
					Message: fmt.Sprintf("Invalid JSON: %v", err),
				},
			},
		}
	}

	var errors []ValidationError

	for _, field := range requiredFields {
		if _, ok := raw[field]; !ok {
			errors = append(errors, ValidationError{
				Field:   field,
				Message: "Missing required field",
			})
		}
	}

	var report models.HostReport
	if err := json.Unmarshal(data, &report); err != nil {
		errors = append(errors, typeError(err))
	}

	// Struct-level constraints only make sense on a cleanly decoded report.
	if len(errors) == 0 {
		if err := v.structValidator.Struct(&report); err != nil {
			if fieldErrors, ok := err.(validator.ValidationErrors); ok {
				for _, fe := range fieldErrors {
					errors = append(errors, ValidationError{
						Field:   fe.Field(),
						Message: fmt.Sprintf("Failed on the '%s' constraint", fe.Tag()),
					})
				}
			} else {
				errors = append(errors, ValidationError{
					Field:   "document",
					Message: err.Error(),
				})
			}
		}
	}

	if len(errors) > 0 {
		return nil, &ValidationResult{Valid: false, Errors: errors}
	}

	return &report, &ValidationResult{Valid: true}
}

// typeError converts a json decode error into a field-level validation error.
func typeError(err error) ValidationError {
	if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
		field := typeErr.Field
		if field == "" {
			field = "document"
		}
		return ValidationError{
			Field:   field,
			Message: fmt.Sprintf("Expected %s, got %s", typeErr.Type, typeErr.Value),
		}
	}
	return ValidationError{
		Field:   "document",
		Message: fmt.Sprintf("Invalid JSON: %v", err),
	}
}
