package v1

import (
	"net/http"

	"talent-sift/internal/delivery/http/middleware"
	"talent-sift/internal/delivery/http/response"
	"talent-sift/internal/delivery/http/web"
	"talent-sift/internal/domain"
	"talent-sift/internal/usecase"
	"talent-sift/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// GenerateRequest carries the raw field values of either form variant.
// Fields outside the requested workflow are ignored.
type GenerateRequest struct {
	JobTitle          string `json:"jobTitle" example:"Backend Engineer"`
	RequiredSkills    string `json:"requiredSkills" example:"Go, PostgreSQL"`
	MinExperience     string `json:"minExperience" example:"3"`
	MaxExperience     string `json:"maxExperience" example:"7"`
	Industry          string `json:"industry" example:"Fintech"`
	YearsOfExperience string `json:"yearsOfExperience" example:"5"`
	JobType           string `json:"jobType" example:"fulltime"`
}

func (r GenerateRequest) values() map[string]string {
	return map[string]string{
		domain.FieldJobTitle:          r.JobTitle,
		domain.FieldRequiredSkills:    r.RequiredSkills,
		domain.FieldMinExperience:     r.MinExperience,
		domain.FieldMaxExperience:     r.MaxExperience,
		domain.FieldIndustry:          r.Industry,
		domain.FieldYearsOfExperience: r.YearsOfExperience,
		domain.FieldJobType:           r.JobType,
	}
}

// GenerateResponse is the data of a successful generation
type GenerateResponse struct {
	WorkflowID string                `json:"workflow_id"`
	Result     domain.WorkflowResult `json:"result"`
	// Text is the result as the page would display it
	Text string `json:"text"`
}

type WorkflowHandler struct {
	jobFormUC domain.JobFormUsecase
}

// NewWorkflowHandler registers the JSON generation routes. submitGuard runs
// before every generation request.
func NewWorkflowHandler(r gin.IRouter, jobFormUC domain.JobFormUsecase, submitGuard ...gin.HandlerFunc) {
	handler := &WorkflowHandler{jobFormUC: jobFormUC}

	workflows := r.Group("/workflows")
	workflows.Use(submitGuard...)
	{
		workflows.POST("/interview-questions", handler.GenerateInterviewQuestions)
		workflows.POST("/job-descriptions", handler.GenerateJobDescription)
	}
}

// GenerateInterviewQuestions godoc
// @Summary      Generate Interview Questions
// @Description  Validates the interview form fields and runs the interview_questions workflow.
// @Tags         workflows
// @Accept       json
// @Produce      json
// @Param        request  body      GenerateRequest  true  "Job title, skills, experience range and industry"
// @Success      200      {object}  response.Response{data=GenerateResponse}
// @Failure      400      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Router       /workflows/interview-questions [post]
func (h *WorkflowHandler) GenerateInterviewQuestions(c *gin.Context) {
	h.generate(c, domain.ModeInterviewQuestions)
}

// GenerateJobDescription godoc
// @Summary      Generate Job Description
// @Description  Validates the job description form fields and runs the jd_maker workflow.
// @Tags         workflows
// @Accept       json
// @Produce      json
// @Param        request  body      GenerateRequest  true  "Job title, years of experience, job type and skills"
// @Success      200      {object}  response.Response{data=GenerateResponse}
// @Failure      400      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Router       /workflows/job-descriptions [post]
func (h *WorkflowHandler) GenerateJobDescription(c *gin.Context) {
	h.generate(c, domain.ModeJobDescription)
}

func (h *WorkflowHandler) generate(c *gin.Context, mode domain.FormMode) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	form := usecase.ApplyFields(domain.JobRequestForm{Mode: mode}, req.values())

	result, err := h.jobFormUC.Generate(c.Request.Context(), middleware.SessionID(c), &form)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, domain.DescSuccess, GenerateResponse{
		WorkflowID: h.jobFormUC.BuildPayload(&form).WorkflowID,
		Result:     result,
		Text:       web.PlainText(result),
	})
}
