package voice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscribe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/audio/transcriptions", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1 << 20))
		assert.Equal(t, "whisper-1", r.FormValue("model"))
		w.Write([]byte(`{"text": "hello interviewer"}`))
	}))
	defer srv.Close()

	s := NewSpeech(Config{APIKey: "test", BaseURL: srv.URL, TranscribeModel: "whisper-1"}, nil)
	text := s.Transcribe(context.Background(), []byte("fake-wav-bytes"))
	assert.Equal(t, "hello interviewer", text)
}

func TestTranscribeFailureReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewSpeech(Config{APIKey: "test", BaseURL: srv.URL}, nil)
	assert.Equal(t, "", s.Transcribe(context.Background(), []byte("audio")))
}

func TestTranscribeWithoutKey(t *testing.T) {
	s := NewSpeech(Config{}, nil)
	assert.Equal(t, "", s.Transcribe(context.Background(), []byte("audio")))
}

func TestSpeakSwallowsFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	s := NewSpeech(Config{APIKey: "test", BaseURL: srv.URL, SpeechModel: "tts-1", Voice: "alloy"}, nil)
	s.Speak(context.Background(), "Welcome to the interview.")

	// Keyless speak is a no-op too.
	NewSpeech(Config{}, nil).Speak(context.Background(), "unused")
}
