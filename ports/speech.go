package ports

import "context"

// SpeechPort covers the optional voice transducers. Speak is
// fire-and-forget: failures are swallowed by the implementation.
// Transcribe returns "" on any failure, never an error; the caller
// decides whether to prompt for re-entry.
type SpeechPort interface {
	Speak(ctx context.Context, text string)
	Transcribe(ctx context.Context, audio []byte) string
}
