package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/hvacinsights/genie-dashboard/internal/knowledge"
	"github.com/hvacinsights/genie-dashboard/internal/session"
)

type Handler struct {
	KB        *knowledge.KnowledgeBase
	Sessions  *session.Registry
	Validator *validator.Validate
	Logger    zerolog.Logger
}

// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /healthz [get]
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"sessions": h.Sessions.Stats().Active,
	})
}

func writeError(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// bindJSON decodes and validates the body. An empty body is allowed when
// optional is set and leaves dst at its zero value.
func (h *Handler) bindJSON(c *gin.Context, dst any, optional bool) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if !(optional && errors.Is(err, io.EOF)) {
			writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Malformed JSON body", err.Error())
			return false
		}
	}
	if err := h.Validator.Struct(dst); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Request validation failed", validationDetails(err))
		return false
	}
	return true
}

func validationDetails(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fe.Field()+": "+fe.Tag())
	}
	return out
}
