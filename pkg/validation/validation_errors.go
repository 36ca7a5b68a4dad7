package validation

import (
	"fmt"
	"strings"

	"talent-sift/internal/domain"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps form field names to user-facing labels
var FieldLabels = map[string]string{
	domain.FieldJobTitle:          "Job Title",
	domain.FieldMinExperience:     "Min Experience",
	domain.FieldMaxExperience:     "Max Experience",
	domain.FieldRequiredSkills:    "Key Skills",
	domain.FieldIndustry:          "Industry",
	domain.FieldYearsOfExperience: "Years of Experience",
	domain.FieldJobType:           "Job Type",
}

// RequiredMessages overrides the generic "<label> is required" message
var RequiredMessages = map[string]string{
	domain.FieldRequiredSkills: "Please enter one or more skills",
}

// FormatValidationErrors converts validator.ValidationErrors to a field -> message map
func FormatValidationErrors(err error) map[string]string {
	messages := map[string]string{}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		messages["form"] = err.Error()
		return messages
	}

	for _, e := range validationErrors {
		messages[e.Field()] = formatSingleError(e)
	}

	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	field := e.Field()
	label := getFieldLabel(field)

	switch e.Tag() {
	case "required", "jobtype":
		// Unknown job types are coerced to empty before validation,
		// so an invalid one reads the same as a missing one.
		if msg, ok := RequiredMessages[field]; ok {
			return msg
		}
		return fmt.Sprintf("%s is required", label)

	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(e.Param(), " ", ", "))

	default:
		return fmt.Sprintf("%s: validation failed (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(field string) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return formatCamelCase(field)
}

// formatCamelCase converts camelCase to spaced words with a leading capital
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i == 0 {
			result.WriteString(strings.ToUpper(string(r)))
			continue
		}
		if r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
