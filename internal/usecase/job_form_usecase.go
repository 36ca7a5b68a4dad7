package usecase

import (
	"context"
	"errors"

	"talent-sift/internal/domain"
	"talent-sift/pkg/apperror"
	"talent-sift/pkg/logger"
	"talent-sift/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type jobFormUsecase struct {
	client   domain.WorkflowClient
	skills   domain.SkillsStore
	validate *validator.Validate
	payload  PayloadConfig
}

// NewJobFormUsecase wires validation, payload building and the workflow client
func NewJobFormUsecase(client domain.WorkflowClient, skills domain.SkillsStore, validate *validator.Validate, payload PayloadConfig) domain.JobFormUsecase {
	return &jobFormUsecase{
		client:   client,
		skills:   skills,
		validate: validate,
		payload:  payload,
	}
}

func (uc *jobFormUsecase) Validate(form *domain.JobRequestForm) domain.ValidationErrors {
	return validation.ValidateForm(uc.validate, form)
}

func (uc *jobFormUsecase) BuildPayload(form *domain.JobRequestForm) domain.WorkflowPayload {
	return BuildPayload(uc.payload, form)
}

// Generate validates the form, submits it once and caches the parsed skills on success
func (uc *jobFormUsecase) Generate(ctx context.Context, sessionID string, form *domain.JobRequestForm) (domain.WorkflowResult, error) {
	if errs := uc.Validate(form); len(errs) > 0 {
		return domain.WorkflowResult{}, apperror.Validation(errs)
	}

	payload := uc.BuildPayload(form)
	logger.Log.Debug("Submitting workflow", "workflow_id", payload.WorkflowID, "session_id", sessionID)

	result, err := uc.client.Submit(ctx, payload)
	if err != nil {
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			err = apperror.RequestFailed(err.Error(), err)
		}
		return domain.WorkflowResult{}, err
	}

	if sessionID != "" {
		// the cache only feeds other pages; a failed write does not fail the submission
		if err := uc.skills.Save(ctx, sessionID, ParseSkills(form.RequiredSkills)); err != nil {
			logger.Log.Warn("Failed to cache skills", "session_id", sessionID, "error", err)
		}
	}

	return result, nil
}
