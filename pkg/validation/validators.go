package validation

import (
	"reflect"
	"strings"

	"talent-sift/internal/domain"

	"github.com/go-playground/validator/v10"
)

// New returns a validator that reports fields by their json name and
// knows the custom tags used by the job form
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("jobtype", ValidJobType)
}

// ValidJobType validates that a job type is one of the enumerated values.
// Empty values pass; combine with required when needed.
func ValidJobType(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return domain.JobType(val).Valid()
}

// ValidateForm runs presence checks on the fields required by the form's mode
func ValidateForm(v *validator.Validate, form *domain.JobRequestForm) domain.ValidationErrors {
	errs := domain.ValidationErrors{}
	if err := v.StructPartial(form, form.RequiredFields()...); err != nil {
		for field, msg := range FormatValidationErrors(err) {
			errs[field] = msg
		}
	}
	return errs
}
