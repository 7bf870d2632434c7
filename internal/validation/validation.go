// Package validation wraps go-playground/validator with the rules used by form payloads and
// converts failures into field-level violations a client can render.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/exec-consultation-api/internal/models"
	appErrors "github.com/noah-isme/exec-consultation-api/pkg/errors"
)

// FieldViolation names a rejected field and the constraint it broke.
type FieldViolation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// New returns a validator that reports JSON field names and knows the domain enumerations.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return field.Name
	})
	_ = v.RegisterValidation("inquiry_type", func(fl validator.FieldLevel) bool {
		return models.InquiryType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("consultation_status", func(fl validator.FieldLevel) bool {
		return models.ConsultationStatus(fl.Field().String()).Valid()
	})
	return v
}

// Check validates payload and returns a VALIDATION_ERROR carrying the violations, or nil.
func Check(v *validator.Validate, payload interface{}, message string) error {
	err := v.Struct(payload)
	if err == nil {
		return nil
	}
	violations := Violations(err)
	if len(violations) == 0 {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message)
	}
	return appErrors.WithDetails(appErrors.Clone(appErrors.ErrValidation, message), violations)
}

// Violations flattens validator errors; non-validation errors yield nil.
func Violations(err error) []FieldViolation {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldViolation{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Param:   fe.Param(),
			Message: describe(fe),
		})
	}
	return out
}

// ViolationsOf extracts the violations attached by Check.
func ViolationsOf(err error) []FieldViolation {
	var appErr *appErrors.Error
	if !errors.As(err, &appErr) {
		return nil
	}
	violations, _ := appErr.Details.([]FieldViolation)
	return violations
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "inquiry_type":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), joinEnum(models.InquiryTypes))
	case "consultation_status":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), joinEnum(models.ConsultationStatuses))
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

func joinEnum[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
