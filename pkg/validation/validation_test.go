package validation_test

import (
	"testing"

	"talent-sift/internal/domain"
	"talent-sift/pkg/validation"

	"github.com/stretchr/testify/assert"
)

func TestValidateInterviewQuestionsForm(t *testing.T) {
	v := validation.New()

	t.Run("Should report every missing field of an empty form", func(t *testing.T) {
		form := &domain.JobRequestForm{Mode: domain.ModeInterviewQuestions}
		errs := validation.ValidateForm(v, form)
		assert.Equal(t, domain.ValidationErrors{
			"jobTitle":       "Job Title is required",
			"requiredSkills": "Please enter one or more skills",
			"minExperience":  "Min Experience is required",
			"maxExperience":  "Max Experience is required",
			"industry":       "Industry is required",
		}, errs)
	})

	t.Run("Should report only the missing fields", func(t *testing.T) {
		form := &domain.JobRequestForm{
			Mode:           domain.ModeInterviewQuestions,
			JobTitle:       "Backend Engineer",
			RequiredSkills: "Go, SQL",
			MinExperience:  "3",
		}
		errs := validation.ValidateForm(v, form)
		assert.Len(t, errs, 2)
		assert.Contains(t, errs, "maxExperience")
		assert.Contains(t, errs, "industry")
	})

	t.Run("Should ignore fields of the other variant", func(t *testing.T) {
		form := &domain.JobRequestForm{
			Mode:           domain.ModeInterviewQuestions,
			JobTitle:       "Backend Engineer",
			RequiredSkills: "Go, SQL",
			MinExperience:  "3",
			MaxExperience:  "6",
			Industry:       "Fintech",
		}
		assert.Empty(t, validation.ValidateForm(v, form))
	})

	t.Run("Should accept zero years as present", func(t *testing.T) {
		form := &domain.JobRequestForm{
			Mode:           domain.ModeInterviewQuestions,
			JobTitle:       "Intern",
			RequiredSkills: "Go",
			MinExperience:  "0",
			MaxExperience:  "0",
			Industry:       "Retail",
		}
		assert.Empty(t, validation.ValidateForm(v, form))
	})
}

func TestValidateJobDescriptionForm(t *testing.T) {
	v := validation.New()

	t.Run("Should report every missing field of an empty form", func(t *testing.T) {
		form := &domain.JobRequestForm{Mode: domain.ModeJobDescription}
		errs := validation.ValidateForm(v, form)
		assert.Equal(t, domain.ValidationErrors{
			"jobTitle":          "Job Title is required",
			"yearsOfExperience": "Years of Experience is required",
			"jobType":           "Job Type is required",
			"requiredSkills":    "Please enter one or more skills",
		}, errs)
	})

	t.Run("Should treat an unknown job type like a missing one", func(t *testing.T) {
		form := &domain.JobRequestForm{
			Mode:              domain.ModeJobDescription,
			JobTitle:          "Designer",
			YearsOfExperience: "4",
			JobType:           "gig",
			RequiredSkills:    "Figma",
		}
		assert.Equal(t, domain.ValidationErrors{"jobType": "Job Type is required"}, validation.ValidateForm(v, form))
	})

	t.Run("Should pass a complete form", func(t *testing.T) {
		form := &domain.JobRequestForm{
			Mode:              domain.ModeJobDescription,
			JobTitle:          "Designer",
			YearsOfExperience: "4",
			JobType:           domain.JobTypeContract,
			RequiredSkills:    "Figma",
		}
		assert.Empty(t, validation.ValidateForm(v, form))
	})
}
