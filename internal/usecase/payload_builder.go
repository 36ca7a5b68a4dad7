package usecase

import (
	"fmt"

	"talent-sift/internal/domain"
)

// PayloadConfig carries the fixed identifiers sent with every workflow call
type PayloadConfig struct {
	OrgID   int
	ExeName string
}

// DefaultPayloadConfig matches the organisation and execution name the API expects
func DefaultPayloadConfig() PayloadConfig {
	return PayloadConfig{OrgID: 1, ExeName: "run1"}
}

// Instruction keys read by each workflow
const (
	instructionKeyInterviewQuestions = "job_description"
	instructionKeyJobDescription     = "instraction"
)

const (
	interviewQuestionsTemplate = "Looking for %s with the %s skill of min experience of %s years and max experience %s years in %s domain."
	jobDescriptionTemplate     = "Looking for %s developer with %s years of experience for a %s role."
)

// BuildPayload turns a form into the workflow payload. User input is interpolated as-is.
func BuildPayload(cfg PayloadConfig, form *domain.JobRequestForm) domain.WorkflowPayload {
	payload := domain.WorkflowPayload{
		OrgID:   cfg.OrgID,
		ExeName: cfg.ExeName,
	}

	switch form.Mode {
	case domain.ModeJobDescription:
		payload.WorkflowID = domain.WorkflowJobDescription
		payload.InstructionKey = instructionKeyJobDescription
		payload.InstructionText = fmt.Sprintf(jobDescriptionTemplate,
			form.RequiredSkills, form.YearsOfExperience, form.JobType)
	default:
		payload.WorkflowID = domain.WorkflowInterviewQuestions
		payload.InstructionKey = instructionKeyInterviewQuestions
		payload.InstructionText = fmt.Sprintf(interviewQuestionsTemplate,
			form.JobTitle, form.RequiredSkills, form.MinExperience, form.MaxExperience, form.Industry)
	}

	return payload
}
