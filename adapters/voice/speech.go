// Package voice adapts OpenAI-compatible speech endpoints. Both
// directions degrade silently: the interview is text-first and audio
// is best-effort.
package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"hirescope/internal"
)

// Config holds speech endpoint settings.
type Config struct {
	APIKey          string
	BaseURL         string
	SpeechModel     string
	TranscribeModel string
	Voice           string
	Timeout         time.Duration
}

func (c Config) baseURL() string {
	if c.BaseURL == "" {
		return "https://api.openai.com/v1"
	}
	return c.BaseURL
}

// Speech implements ports.SpeechPort over HTTP.
type Speech struct {
	config Config
	client *http.Client
	log    *internal.Logger
}

// NewSpeech creates a speech adapter
func NewSpeech(config Config, log *internal.Logger) *Speech {
	if log == nil {
		log = internal.DefaultLogger
	}
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Speech{
		config: config,
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

// Speak synthesizes text. Fire and forget: every failure is swallowed
// after a debug log.
func (s *Speech) Speak(ctx context.Context, text string) {
	if s.config.APIKey == "" || text == "" {
		return
	}

	payload, err := json.Marshal(map[string]interface{}{
		"model": s.config.SpeechModel,
		"voice": s.config.Voice,
		"input": text,
	})
	if err != nil {
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.baseURL()+"/audio/speech", bytes.NewReader(payload))
	if err != nil {
		return
	}
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Debug("speech synthesis failed: %v", err)
		return
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
}

// Transcribe converts audio to text, returning "" on any failure.
func (s *Speech) Transcribe(ctx context.Context, audio []byte) string {
	if s.config.APIKey == "" || len(audio) == 0 {
		return ""
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "answer.wav")
	if err != nil {
		return ""
	}
	if _, err := part.Write(audio); err != nil {
		return ""
	}
	if err := writer.WriteField("model", s.config.TranscribeModel); err != nil {
		return ""
	}
	if err := writer.Close(); err != nil {
		return ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.baseURL()+"/audio/transcriptions", &body)
	if err != nil {
		return ""
	}
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Warn("transcription failed: %v", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.log.Warn("transcription failed: %s", resp.Status)
		return ""
	}

	var result struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		s.log.Warn("transcription decode failed: %v", err)
		return ""
	}
	return result.Text
}
