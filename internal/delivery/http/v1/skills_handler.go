package v1

import (
	"net/http"

	"talent-sift/internal/delivery/http/middleware"
	"talent-sift/internal/delivery/http/response"
	"talent-sift/internal/domain"
	"talent-sift/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SkillsHandler struct {
	skills domain.SkillsStore
}

func NewSkillsHandler(r gin.IRouter, skills domain.SkillsStore) {
	handler := &SkillsHandler{skills: skills}

	r.GET("/skills", handler.GetSkills)
}

// GetSkills godoc
// @Summary      Get Cached Skills
// @Description  Returns the skills of the last successful submission in the current session.
// @Tags         skills
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /skills [get]
func (h *SkillsHandler) GetSkills(c *gin.Context) {
	skills, err := h.skills.Get(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "Skills retrieved", gin.H{"skills": skills})
}
