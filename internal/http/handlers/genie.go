package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hvacinsights/genie-dashboard/internal/genie"
	"github.com/hvacinsights/genie-dashboard/internal/session"
)

type CreateSessionRequest struct {
	Variant string `json:"variant" validate:"omitempty,oneof=genie assistant"`
}

type SubmitRequest struct {
	Text string `json:"text"`
}

type OpenRequest struct {
	Open *bool `json:"open" validate:"required"`
}

type SessionResponse struct {
	ID     string             `json:"id"`
	Widget genie.WidgetConfig `json:"widget"`
	genie.Update
	Accepted *bool `json:"accepted,omitempty"`
}

func sessionResponse(s *session.Session, u genie.Update) SessionResponse {
	return SessionResponse{ID: s.ID, Widget: s.Widget, Update: u}
}

// @Summary Open a chat widget
// @Tags genie
// @Accept json
// @Produce json
// @Param body body CreateSessionRequest false "Widget variant"
// @Success 201 {object} SessionResponse
// @Failure 429 {object} map[string]any
// @Router /api/genie/sessions [post]
func (h *Handler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if !h.bindJSON(c, &req, true) {
		return
	}
	widget, err := genie.Widget(genie.Variant(req.Variant))
	if err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown widget variant", err.Error())
		return
	}
	s, err := h.Sessions.Create(widget)
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sessionResponse(s, s.Chat.Snapshot()))
}

// @Summary Conversation snapshot
// @Tags genie
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} map[string]any
// @Router /api/genie/sessions/{id} [get]
func (h *Handler) GetSession(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sessionResponse(s, s.Chat.Snapshot()))
}

// @Summary Submit a chat message
// @Description Blank messages are ignored and reported with accepted=false.
// @Tags genie
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body SubmitRequest true "Message"
// @Success 202 {object} SessionResponse
// @Router /api/genie/sessions/{id}/messages [post]
func (h *Handler) SubmitMessage(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	var req SubmitRequest
	if !h.bindJSON(c, &req, false) {
		return
	}
	accepted := s.Chat.Submit(req.Text)
	resp := sessionResponse(s, s.Chat.Snapshot())
	resp.Accepted = &accepted
	c.JSON(http.StatusAccepted, resp)
}

// @Summary Show or hide the widget
// @Tags genie
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body OpenRequest true "Visibility"
// @Success 200 {object} SessionResponse
// @Router /api/genie/sessions/{id}/open [put]
func (h *Handler) SetOpen(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	var req OpenRequest
	if !h.bindJSON(c, &req, false) {
		return
	}
	s.Chat.SetOpen(*req.Open)
	c.JSON(http.StatusOK, sessionResponse(s, s.Chat.Snapshot()))
}

// @Summary Close the widget and forget the conversation
// @Tags genie
// @Param id path string true "Session ID"
// @Success 204
// @Router /api/genie/sessions/{id} [delete]
func (h *Handler) DeleteSession(c *gin.Context) {
	if err := h.Sessions.Delete(c.Param("id")); err != nil {
		h.sessionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Conversation update stream
// @Description Server-Sent Events; every event carries the full snapshot.
// @Tags genie
// @Produce text/event-stream
// @Param id path string true "Session ID"
// @Router /api/genie/sessions/{id}/events [get]
func (h *Handler) SessionEvents(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	updates, cancel := s.Subscribe()
	defer cancel()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	c.SSEvent("update", sessionResponse(s, s.Chat.Snapshot()))
	c.Writer.Flush()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case u, ok := <-updates:
			if !ok {
				return false
			}
			c.SSEvent("update", sessionResponse(s, u))
			return true
		case <-ctx.Done():
			return false
		}
	})
}

// @Summary Active session stats
// @Tags admin
// @Produce json
// @Success 200 {object} session.Stats
// @Router /api/admin/sessions [get]
func (h *Handler) SessionStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.Sessions.Stats())
}

func (h *Handler) lookup(c *gin.Context) (*session.Session, bool) {
	s, err := h.Sessions.Get(c.Param("id"))
	if err != nil {
		h.sessionError(c, err)
		return nil, false
	}
	return s, true
}

func (h *Handler) sessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		writeError(c, http.StatusNotFound, "NOT_FOUND", "Session not found", nil)
	case errors.Is(err, session.ErrTooManySessions):
		writeError(c, http.StatusTooManyRequests, "TOO_MANY_SESSIONS", "Too many open chat sessions", nil)
	default:
		h.Logger.Error().Err(err).Msg("session error")
		writeError(c, http.StatusInternalServerError, "INTERNAL", "Session error", err.Error())
	}
}
