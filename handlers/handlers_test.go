package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"studyplanner/models"
	ai "studyplanner/services/intelligence"
	"studyplanner/services/quiz"
	"studyplanner/templates"
	"studyplanner/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.Logger = zap.NewNop()
}

type scriptedGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (g *scriptedGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return g.reply, g.err
}

func newTestRouter(t *testing.T, completer ai.Completer) *gin.Engine {
	t.Helper()
	tmpl, err := templates.Load()
	if err != nil {
		t.Fatalf("load templates: %v", err)
	}

	pages := NewPageHandler(completer)
	schedule := NewScheduleHandler(completer)
	schedule.Now = func() time.Time { return time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC) }
	aiHandler := NewDefaultAIHandler(completer)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.GET("/", pages.IndexHandler)
	r.GET("/chat", pages.ChatPageHandler)
	r.GET("/health", pages.HealthHandler)
	r.Match([]string{http.MethodGet, http.MethodPost}, "/schedule", schedule.GenerateSchedule)
	r.Match([]string{http.MethodGet, http.MethodPost}, "/quiz", aiHandler.HandleQuiz)
	r.POST("/api/chat", aiHandler.HandleChat)
	return r
}

func postForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	r := newTestRouter(t, ai.NewCompletionService(nil))

	for _, body := range []string{`{"message": ""}`, `{"message": "   "}`, `{}`, `not json`} {
		rec := postJSON(r, "/api/chat", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: status = %d, want 400", body, rec.Code)
		}
		var resp models.ChatResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Reply != "ask a question" {
			t.Fatalf("body %s: reply = %q", body, resp.Reply)
		}
	}
}

func TestChatOffline(t *testing.T) {
	r := newTestRouter(t, ai.NewCompletionService(nil))

	rec := postJSON(r, "/api/chat", `{"message": "Can you explain integrals?"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp models.ChatResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Reply != ai.OfflineExplainReply {
		t.Fatalf("reply = %q", resp.Reply)
	}
}

func TestChatOnlineWithStyleAndFailure(t *testing.T) {
	gen := &scriptedGenerator{reply: "Integrals add up slices."}
	r := newTestRouter(t, ai.NewCompletionService(gen))

	rec := postJSON(r, "/api/chat", `{"message": "What is an integral?", "style": "simple"}`)
	var resp models.ChatResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if rec.Code != http.StatusOK || resp.Reply != "Integrals add up slices." {
		t.Fatalf("got %d %q", rec.Code, resp.Reply)
	}
	if len(gen.prompts) != 1 || !strings.HasPrefix(gen.prompts[0], "Answer in a simple style.") ||
		!strings.HasSuffix(gen.prompts[0], "What is an integral?") {
		t.Fatalf("prompts = %q", gen.prompts)
	}

	gen.err = errors.New("model unavailable")
	rec = postJSON(r, "/api/chat", `{"message": "again"}`)
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if rec.Code != http.StatusOK {
		t.Fatalf("model failures must not fail the request, got %d", rec.Code)
	}
	if !strings.Contains(resp.Reply, "model unavailable") {
		t.Fatalf("reply = %q, want failure reason", resp.Reply)
	}
}

func TestScheduleDownload(t *testing.T) {
	r := newTestRouter(t, ai.NewCompletionService(nil))

	rec := postForm(r, "/schedule", url.Values{
		"subjects":   {"Physics, Math, Chemistry"},
		"hours":      {"4"},
		"days":       {"2"},
		"start_time": {"17:00"},
		"download":   {"1"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="study_schedule.txt"` {
		t.Fatalf("Content-Disposition = %q", got)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("Content-Type = %q", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"Generated: 2026-10-18 08:00",
		"  17:00 - 19:00  Physics",
		"  23:00 - 01:00  Physics",
		"Strategy\n--------\n" + ai.OfflineExplainReply,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("download missing %q:\n%s", want, body)
		}
	}
}

func TestScheduleDefaultsPage(t *testing.T) {
	r := newTestRouter(t, ai.NewCompletionService(nil))

	rec := get(r, "/schedule")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, "14 days") || !strings.Contains(body, "Day 14") {
		t.Fatalf("expected 14 default days in page")
	}
	if !strings.Contains(body, "17:00 – 18:30: Math") {
		t.Fatalf("expected default subjects starting at 17:00 with 1.5h blocks")
	}
	if rec.Header().Get("Content-Disposition") != "" {
		t.Fatal("page response should not be an attachment")
	}
}

func TestScheduleRejectsMalformedNumbers(t *testing.T) {
	r := newTestRouter(t, ai.NewCompletionService(nil))

	cases := []url.Values{
		{"hours": {"three"}},
		{"hours": {"NaN"}},
		{"hours": {"1e20"}},
		{"hours": {"24.5"}},
		{"days": {"2.5"}},
		{"days": {"100000"}},
		{"start_time": {"25:00"}},
	}
	for _, form := range cases {
		rec := postForm(r, "/schedule", form)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("form %v: status = %d, want 400", form, rec.Code)
		}
		var resp utils.ErrorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || resp.Message == "" {
			t.Fatalf("form %v: unexpected body %s", form, rec.Body.String())
		}
	}
}

func TestScheduleStrategyUsesModel(t *testing.T) {
	gen := &scriptedGenerator{reply: "Alternate hard and easy subjects."}
	r := newTestRouter(t, ai.NewCompletionService(gen))

	rec := postForm(r, "/schedule", url.Values{"subjects": {"Math"}, "days": {"1"}, "download": {"1"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Alternate hard and easy subjects.") {
		t.Fatalf("strategy missing:\n%s", rec.Body.String())
	}
	if len(gen.prompts) != 1 || !strings.Contains(gen.prompts[0], "Math") {
		t.Fatalf("prompts = %q", gen.prompts)
	}
}

func TestScheduleDownloadKeepsDisplayedStrategy(t *testing.T) {
	gen := &scriptedGenerator{reply: "Fresh strategy from the model."}
	r := newTestRouter(t, ai.NewCompletionService(gen))

	page := postForm(r, "/schedule", url.Values{"subjects": {"Math"}, "days": {"1"}})
	if !strings.Contains(page.Body.String(), `name="strategy" value="Fresh strategy from the model."`) {
		t.Fatalf("schedule page should carry the displayed strategy into the download form:\n%s", page.Body.String())
	}

	gen.reply = "A different strategy."
	rec := postForm(r, "/schedule", url.Values{
		"subjects": {"Math"},
		"days":     {"1"},
		"strategy": {"Fresh strategy from the model."},
		"download": {"1"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Strategy\n--------\nFresh strategy from the model.\n") {
		t.Fatalf("download should reuse the displayed strategy:\n%s", rec.Body.String())
	}
	if len(gen.prompts) != 1 {
		t.Fatalf("model called %d times, want 1", len(gen.prompts))
	}
}

func TestQuizOfflineIgnoresInput(t *testing.T) {
	r := newTestRouter(t, ai.NewCompletionService(nil))

	a := postForm(r, "/quiz", url.Values{"topic": {"Biology"}, "count": {"9"}, "level": {"hard"}})
	b := get(r, "/quiz")
	for _, rec := range []*httptest.ResponseRecorder{a, b} {
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Which planet is known as the Red Planet?") {
			t.Fatalf("offline quiz missing from page")
		}
	}
}

func TestQuizOnlineAndBadCount(t *testing.T) {
	gen := &scriptedGenerator{reply: "1. Question"}
	r := newTestRouter(t, ai.NewCompletionService(gen))

	rec := get(r, "/quiz?topic=Optics&count=3&level=hard")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	want := quiz.Prompt(models.QuizRequest{Topic: "Optics", Count: 3, Level: "hard"})
	if len(gen.prompts) != 1 || gen.prompts[0] != want {
		t.Fatalf("prompts = %q, want %q", gen.prompts, want)
	}

	rec = get(r, "/quiz?count=many")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad count status = %d, want 400", rec.Code)
	}
}

func TestPagesAndHealth(t *testing.T) {
	r := newTestRouter(t, ai.NewCompletionService(nil))

	for _, path := range []string{"/", "/chat"} {
		rec := get(r, path)
		if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "offline mode") {
			t.Fatalf("%s: status %d", path, rec.Code)
		}
	}

	rec := get(r, "/health")
	var health map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if health["status"] != "ok" || health["mode"] != "offline" {
		t.Fatalf("health = %v", health)
	}
}
