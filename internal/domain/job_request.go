package domain

import "context"

// FormMode selects which variant of the job form a page works with
type FormMode string

const (
	ModeInterviewQuestions FormMode = "interview_questions"
	ModeJobDescription     FormMode = "job_description"
)

// Form field names, shared by HTML forms, JSON bodies and validation errors
const (
	FieldJobTitle          = "jobTitle"
	FieldMinExperience     = "minExperience"
	FieldMaxExperience     = "maxExperience"
	FieldRequiredSkills    = "requiredSkills"
	FieldIndustry          = "industry"
	FieldYearsOfExperience = "yearsOfExperience"
	FieldJobType           = "jobType"
)

// Experience bounds applied on every edit of an experience field
const (
	MinExperienceYears = 0
	MaxExperienceYears = 50
)

// JobType is the internal value of the job type select
type JobType string

const (
	JobTypeFullTime   JobType = "fulltime"
	JobTypePartTime   JobType = "parttime"
	JobTypeContract   JobType = "contract"
	JobTypeFreelance  JobType = "freelance"
	JobTypeInternship JobType = "internship"
)

// JobTypes lists the accepted job types in display order
var JobTypes = []JobType{
	JobTypeFullTime,
	JobTypePartTime,
	JobTypeContract,
	JobTypeFreelance,
	JobTypeInternship,
}

// JobTypeLabels maps the human-readable labels used in links to the internal value
var JobTypeLabels = map[string]JobType{
	"Full time":  JobTypeFullTime,
	"Part time":  JobTypePartTime,
	"Contract":   JobTypeContract,
	"Freelance":  JobTypeFreelance,
	"Internship": JobTypeInternship,
}

// Label returns the human-readable label of the job type, or "" if unknown
func (t JobType) Label() string {
	for label, value := range JobTypeLabels {
		if value == t {
			return label
		}
	}
	return ""
}

// Valid reports whether t is one of the enumerated job types
func (t JobType) Valid() bool {
	for _, v := range JobTypes {
		if v == t {
			return true
		}
	}
	return false
}

// JobRequestForm holds the recruiter's input for both form variants.
// Only the fields of the active Mode are validated and sent upstream.
type JobRequestForm struct {
	Mode              FormMode `json:"-" form:"-"`
	JobTitle          string   `json:"jobTitle" form:"jobTitle" validate:"required"`
	MinExperience     string   `json:"minExperience" form:"minExperience" validate:"required"`
	MaxExperience     string   `json:"maxExperience" form:"maxExperience" validate:"required"`
	RequiredSkills    string   `json:"requiredSkills" form:"requiredSkills" validate:"required"`
	Industry          string   `json:"industry" form:"industry" validate:"required"`
	YearsOfExperience string   `json:"yearsOfExperience" form:"yearsOfExperience" validate:"required"`
	JobType           JobType  `json:"jobType" form:"jobType" validate:"required,jobtype"`
}

// RequiredFields returns the struct field names validated for the form's mode
func (f *JobRequestForm) RequiredFields() []string {
	switch f.Mode {
	case ModeJobDescription:
		return []string{"JobTitle", "YearsOfExperience", "JobType", "RequiredSkills"}
	default:
		return []string{"JobTitle", "RequiredSkills", "MinExperience", "MaxExperience", "Industry"}
	}
}

// FieldNames returns the form field names editable in the form's mode, in display order
func (m FormMode) FieldNames() []string {
	if m == ModeJobDescription {
		return []string{FieldJobTitle, FieldYearsOfExperience, FieldJobType, FieldRequiredSkills}
	}
	return []string{FieldJobTitle, FieldRequiredSkills, FieldMinExperience, FieldMaxExperience, FieldIndustry}
}

// ValidationErrors maps a form field name to a human-readable message
type ValidationErrors map[string]string

// JobFormUsecase drives one submission of a job form
type JobFormUsecase interface {
	// Validate checks required fields for the form's mode
	Validate(form *JobRequestForm) ValidationErrors
	// BuildPayload turns a validated form into the upstream workflow payload
	BuildPayload(form *JobRequestForm) WorkflowPayload
	// Generate validates, submits and caches skills for the given session
	Generate(ctx context.Context, sessionID string, form *JobRequestForm) (WorkflowResult, error)
}
