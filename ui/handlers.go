package ui

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	apperrors "hirescope/internal/errors"
)

// maxAudioBytes bounds uploaded transcription payloads.
const maxAudioBytes = 16 << 20

type startRequest struct {
	Role    string `json:"role"`
	Persona string `json:"persona"`
}

type answerRequest struct {
	Answer string `json:"answer"`
}

func (a *App) handleStartInterview(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, apperrors.InvalidInput("invalid request body"))
		return
	}
	if req.Role == "" {
		a.writeError(w, apperrors.InvalidInput("role is required"))
		return
	}

	id, first, err := a.sessions.StartSession(r.Context(), req.Role, req.Persona)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.speakAsync(first)

	a.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":       id,
		"question": first,
	})
}

func (a *App) handleListInterviews(w http.ResponseWriter, r *http.Request) {
	sessions, err := a.sessions.List(r.Context())
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, sessions)
}

func (a *App) handleGetInterview(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		a.writeError(w, err)
		return
	}

	record, answers, err := a.sessions.Get(r.Context(), id)
	if err != nil {
		a.writeError(w, err)
		return
	}

	resp := map[string]interface{}{
		"session": record,
		"answers": answers,
	}
	if transcript, err := a.sessions.Transcript(id); err == nil {
		resp["transcript"] = transcript
	}
	a.writeJSON(w, http.StatusOK, resp)
}

func (a *App) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		a.writeError(w, err)
		return
	}

	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, apperrors.InvalidInput("invalid request body"))
		return
	}

	out, err := a.sessions.SubmitAnswer(r.Context(), id, req.Answer)
	if err != nil {
		a.writeError(w, err)
		return
	}

	if !out.Complete {
		a.speakAsync(out.NextQuestion)
	}

	a.writeJSON(w, http.StatusOK, out)
}

func (a *App) handleEndInterview(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		a.writeError(w, err)
		return
	}

	report, err := a.sessions.EndSession(r.Context(), id)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, report)
}

func (a *App) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		a.writeError(w, err)
		return
	}

	report, err := a.sessions.Report(id)
	if err != nil {
		a.writeError(w, err)
		return
	}

	doc, err := a.renderer.Render(report)
	if err != nil {
		a.writeError(w, apperrors.Wrap(err, "report rendering failed"))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(doc)
}

func (a *App) handleExport(w http.ResponseWriter, r *http.Request) {
	data, err := a.exporter.ExportAll(r.Context())
	if err != nil {
		a.writeError(w, apperrors.Wrap(err, "export failed"))
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="interviews.xlsx"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (a *App) handleTranscribe(w http.ResponseWriter, r *http.Request) {
	if a.speech == nil {
		a.writeJSON(w, http.StatusOK, map[string]string{"text": ""})
		return
	}

	audio, err := io.ReadAll(io.LimitReader(r.Body, maxAudioBytes))
	if err != nil {
		a.writeError(w, apperrors.InvalidInput("could not read audio body"))
		return
	}

	// Transcription never hard-fails; "" means retry or type.
	text := a.speech.Transcribe(r.Context(), audio)
	a.writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

// speakAsync voices a question without holding up the response. The
// request context would be cancelled on return, so speech gets its
// own.
func (a *App) speakAsync(text string) {
	if a.speech == nil {
		return
	}
	go a.speech.Speak(context.Background(), text)
}

func parseID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, apperrors.InvalidInput("invalid session id")
	}
	return id, nil
}

func (a *App) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.log.Error("response encoding failed: %v", err)
	}
}

// writeError maps application error codes onto HTTP statuses.
func (a *App) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch apperrors.GetCode(err) {
	case apperrors.CodeInvalidInput, apperrors.CodeInvalidRole:
		status = http.StatusBadRequest
	case apperrors.CodeNotFound:
		status = http.StatusNotFound
	case apperrors.CodeNotInProgress, apperrors.CodeAlreadyEnded:
		status = http.StatusConflict
	case apperrors.CodeDatabaseError:
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		a.log.Error("request failed: %v", err)
	}

	a.writeJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  apperrors.GetCode(err),
	})
}
