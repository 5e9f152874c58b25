package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/hvacinsights/genie-dashboard/internal/genie"
	"github.com/hvacinsights/genie-dashboard/internal/knowledge"
	"github.com/hvacinsights/genie-dashboard/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, opts session.Options) *gin.Engine {
	t.Helper()
	kb := knowledge.Default()
	opts.Logger = zerolog.Nop()
	h := &Handler{
		KB:        kb,
		Sessions:  session.NewRegistry(kb, opts),
		Validator: validator.New(),
		Logger:    zerolog.Nop(),
	}
	r := gin.New()
	r.GET("/healthz", h.Healthz)
	r.GET("/api/locations", h.LocationsList)
	r.GET("/api/locations/:slug", h.LocationDetails)
	r.GET("/api/trending-topics", h.TrendingTopics)
	r.GET("/api/brands", h.Brands)
	r.POST("/api/genie/sessions", h.CreateSession)
	r.GET("/api/genie/sessions/:id", h.GetSession)
	r.DELETE("/api/genie/sessions/:id", h.DeleteSession)
	r.POST("/api/genie/sessions/:id/messages", h.SubmitMessage)
	r.PUT("/api/genie/sessions/:id/open", h.SetOpen)
	r.GET("/api/admin/sessions", h.SessionStats)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req, _ := http.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeSession(t *testing.T, w *httptest.ResponseRecorder) SessionResponse {
	t.Helper()
	var resp SessionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v (%s)", err, w.Body.String())
	}
	return resp
}

func createSession(t *testing.T, r *gin.Engine, body string) SessionResponse {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/genie/sessions", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	return decodeSession(t, w)
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t, session.Options{})
	w := do(t, r, http.MethodGet, "/healthz", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestLocations(t *testing.T) {
	r := newTestRouter(t, session.Options{})

	w := do(t, r, http.MethodGet, "/api/locations", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var list struct {
		Items []knowledge.LocationRow `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list.Items) != 3 || !list.Items[0].HighMissedCalls {
		t.Fatalf("unexpected locations: %+v", list.Items)
	}

	w = do(t, r, http.MethodGet, "/api/locations/front-range", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "5.0 (188)") {
		t.Fatalf("unexpected detail response %d: %s", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodGet, "/api/locations/nowhere", "")
	if w.Code != http.StatusNotFound || !strings.Contains(w.Body.String(), "NOT_FOUND") {
		t.Fatalf("expected NOT_FOUND, got %d: %s", w.Code, w.Body.String())
	}
}

func TestTrendingTopics(t *testing.T) {
	r := newTestRouter(t, session.Options{})
	w := do(t, r, http.MethodGet, "/api/trending-topics", "")
	var summary knowledge.TrendingSummary
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if summary.MostDiscussed != "Heater Service" || summary.FastestGrowing != "HVAC Financing" {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestCreateSessionDefaultsToGenie(t *testing.T) {
	r := newTestRouter(t, session.Options{})
	resp := createSession(t, r, "")
	if resp.ID == "" || resp.Widget.Variant != genie.VariantGenie {
		t.Fatalf("unexpected session: %+v", resp)
	}
	if len(resp.Log) != 2 || resp.ScrollTo != 1 || !resp.Open {
		t.Fatalf("expected seeded open conversation, got %+v", resp.Update)
	}
}

func TestCreateSessionRejectsUnknownVariant(t *testing.T) {
	r := newTestRouter(t, session.Options{})
	w := do(t, r, http.MethodPost, "/api/genie/sessions", `{"variant":"sidebar"}`)
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "VALIDATION_ERROR") {
		t.Fatalf("expected validation error, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateSessionLimit(t *testing.T) {
	r := newTestRouter(t, session.Options{MaxSessions: 1})
	createSession(t, r, `{"variant":"assistant"}`)
	w := do(t, r, http.MethodPost, "/api/genie/sessions", "")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
}

func TestSubmitMessage(t *testing.T) {
	r := newTestRouter(t, session.Options{})
	created := createSession(t, r, `{"variant":"assistant"}`)
	path := "/api/genie/sessions/" + created.ID + "/messages"

	w := do(t, r, http.MethodPost, path, `{"text":"What brands are customers calling most about for service?"}`)
	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", w.Code, w.Body.String())
	}
	resp := decodeSession(t, w)
	if resp.Accepted == nil || !*resp.Accepted {
		t.Fatalf("expected accepted submission")
	}
	if len(resp.Log) != 4 {
		t.Fatalf("expected 4 turns, got %+v", resp.Log)
	}
	if !strings.HasPrefix(resp.Log[2].Text, "Based on our call data, Trane solutions") {
		t.Fatalf("unexpected reply: %s", resp.Log[2].Text)
	}
	if len(resp.Log[3].Options) != 2 {
		t.Fatalf("expected 2 remaining suggestions, got %v", resp.Log[3].Options)
	}

	w = do(t, r, http.MethodPost, path, `{"text":"   "}`)
	blank := decodeSession(t, w)
	if blank.Accepted == nil || *blank.Accepted {
		t.Fatalf("expected blank submission to be ignored")
	}
	if len(blank.Log) != 4 {
		t.Fatalf("blank submission changed the log: %+v", blank.Log)
	}

	w = do(t, r, http.MethodPost, path, `{"text":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", w.Code)
	}
}

func TestSessionLifecycle(t *testing.T) {
	r := newTestRouter(t, session.Options{})
	created := createSession(t, r, "")
	base := "/api/genie/sessions/" + created.ID

	do(t, r, http.MethodPost, base+"/messages", `{"text":"hello"}`)

	w := do(t, r, http.MethodPut, base+"/open", `{"open":false}`)
	closed := decodeSession(t, w)
	if closed.Open || len(closed.Log) != 0 {
		t.Fatalf("expected closed empty widget, got %+v", closed.Update)
	}

	w = do(t, r, http.MethodPut, base+"/open", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without open flag, got %d", w.Code)
	}

	w = do(t, r, http.MethodPut, base+"/open", `{"open":true}`)
	reopened := decodeSession(t, w)
	if !reopened.Open || len(reopened.Log) != 2 {
		t.Fatalf("expected fresh conversation, got %+v", reopened.Update)
	}

	w = do(t, r, http.MethodDelete, base, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	w = do(t, r, http.MethodGet, base, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
	w = do(t, r, http.MethodPost, base+"/messages", `{"text":"hello"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown session, got %d", w.Code)
	}
}

func TestSessionStats(t *testing.T) {
	r := newTestRouter(t, session.Options{})
	createSession(t, r, "")
	w := do(t, r, http.MethodGet, "/api/admin/sessions", "")
	var st session.Stats
	if err := json.Unmarshal(w.Body.Bytes(), &st); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if st.Active != 1 || st.Open != 1 {
		t.Fatalf("unexpected stats: %+v", st)
	}
}
