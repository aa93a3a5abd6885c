package ui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirescope/adapters/excel"
	"hirescope/adapters/llm/heuristic"
	"hirescope/adapters/report"
	"hirescope/app"
	"hirescope/internal/session"
	"hirescope/internal/testkit"
)

type fakeSpeech struct {
	mu     sync.Mutex
	spoken []string
}

func (f *fakeSpeech) Speak(ctx context.Context, text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.spoken = append(f.spoken, text)
}

func (f *fakeSpeech) spokenCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.spoken)
}

func (f *fakeSpeech) Transcribe(ctx context.Context, audio []byte) string {
	if len(audio) == 0 {
		return ""
	}
	return "transcribed answer"
}

func newTestApp(t *testing.T) (*App, *fakeSpeech) {
	t.Helper()
	store := testkit.NewInMemoryStore()
	factory := func() *app.Orchestrator {
		return app.NewOrchestrator(app.Deps{
			Bank:     testkit.FixtureBank(),
			Fallback: heuristic.NewScorer(),
		}, app.WithShuffleSeed(3))
	}
	speech := &fakeSpeech{}
	return NewApp(Config{
		Port:     "0",
		Sessions: session.NewManager(store, factory, nil),
		Renderer: report.NewRenderer(),
		Exporter: excel.NewExporter(store),
		Speech:   speech,
	}), speech
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func startInterview(t *testing.T, h http.Handler) string {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/api/interviews", startRequest{Role: "Software Engineer", Persona: "Formal HR"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		ID       string `json:"id"`
		Question string `json:"question"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Question)
	return resp.ID
}

func TestStartInterview(t *testing.T) {
	a, speech := newTestApp(t)
	id := startInterview(t, a.Router())
	assert.NotEmpty(t, id)
	// The first question is spoken aloud, off the request path.
	assert.Eventually(t, func() bool { return speech.spokenCount() == 1 },
		time.Second, 10*time.Millisecond)
}

func TestStartInterviewUnknownRole(t *testing.T) {
	a, _ := newTestApp(t)
	rec := doJSON(t, a.Router(), http.MethodPost, "/api/interviews", startRequest{Role: "Astronaut"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ROLE")
}

func TestStartInterviewMissingRole(t *testing.T) {
	a, _ := newTestApp(t)
	rec := doJSON(t, a.Router(), http.MethodPost, "/api/interviews", startRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitAnswerFlow(t *testing.T) {
	a, _ := newTestApp(t)
	id := startInterview(t, a.Router())

	rec := doJSON(t, a.Router(), http.MethodPost, "/api/interviews/"+id+"/answers",
		answerRequest{Answer: "I would design the API around caching and SQL indexes."})
	require.Equal(t, http.StatusOK, rec.Code)

	var out app.AnswerOutcome
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.True(t, out.Evaluation.Fallback)
	assert.NotEmpty(t, out.NextQuestion)
}

func TestSubmitAnswerUnknownSession(t *testing.T) {
	a, _ := newTestApp(t)
	rec := doJSON(t, a.Router(), http.MethodPost, "/api/interviews/11111111-2222-3333-4444-555555555555/answers",
		answerRequest{Answer: "hello"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitAnswerBadID(t *testing.T) {
	a, _ := newTestApp(t)
	rec := doJSON(t, a.Router(), http.MethodPost, "/api/interviews/not-a-uuid/answers",
		answerRequest{Answer: "hello"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEndInterviewAndReport(t *testing.T) {
	a, _ := newTestApp(t)
	id := startInterview(t, a.Router())

	rec := doJSON(t, a.Router(), http.MethodPost, "/api/interviews/"+id+"/answers",
		answerRequest{Answer: "I would design the API around caching and SQL indexes."})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, a.Router(), http.MethodPost, "/api/interviews/"+id+"/end", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "total_score")

	// Second end conflicts.
	rec = doJSON(t, a.Router(), http.MethodPost, "/api/interviews/"+id+"/end", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// HTML report stays available after ending.
	rec = doJSON(t, a.Router(), http.MethodGet, "/api/interviews/"+id+"/report", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "<!DOCTYPE html>"))
}

func TestGetInterview(t *testing.T) {
	a, _ := newTestApp(t)
	id := startInterview(t, a.Router())

	rec := doJSON(t, a.Router(), http.MethodGet, "/api/interviews/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Software Engineer")
	assert.Contains(t, rec.Body.String(), "transcript")
}

func TestListInterviews(t *testing.T) {
	a, _ := newTestApp(t)
	startInterview(t, a.Router())
	startInterview(t, a.Router())

	rec := doJSON(t, a.Router(), http.MethodGet, "/api/interviews", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var sessions []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sessions))
	assert.Len(t, sessions, 2)
}

func TestExport(t *testing.T) {
	a, _ := newTestApp(t)
	startInterview(t, a.Router())

	rec := doJSON(t, a.Router(), http.MethodGet, "/api/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "interviews.xlsx")
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestTranscribe(t *testing.T) {
	a, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", bytes.NewReader([]byte("audio-bytes")))
	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"text": %q}`, "transcribed answer"), rec.Body.String())
}
