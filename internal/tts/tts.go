package tts

import (
	"context"
	"io"
	"time"
)

// Task statuses reported by the synthesis provider.
const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "inProgress"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// SynthesisTask is an asynchronous synthesis job owned by the provider.
type SynthesisTask struct {
	TaskID            string
	Status            string
	StatusReason      string
	OutputURI         string
	CreationTime      *time.Time
	RequestCharacters int
}

// Voice describes a voice offered by the provider. JSON keys keep the
// provider's field names because existing clients read them as-is.
type Voice struct {
	ID                      string   `json:"Id"`
	Name                    string   `json:"Name"`
	Gender                  string   `json:"Gender"`
	LanguageCode            string   `json:"LanguageCode"`
	LanguageName            string   `json:"LanguageName"`
	AdditionalLanguageCodes []string `json:"AdditionalLanguageCodes,omitempty"`
	SupportedEngines        []string `json:"SupportedEngines"`
}

// TaskRequest holds the parameters of an asynchronous synthesis task.
type TaskRequest struct {
	Text         string
	TextType     string
	VoiceID      string
	Engine       string
	OutputFormat string
	Bucket       string
}

// SpeechRequest holds the parameters of a synchronous synthesis call.
type SpeechRequest struct {
	Text         string
	TextType     string
	VoiceID      string
	Engine       string
	OutputFormat Format
}

// Speech is the result of a synchronous synthesis call. The caller owns
// Audio and must close it.
type Speech struct {
	Audio             io.ReadCloser
	ContentType       string
	RequestCharacters int
}

// VoiceFilter narrows a voice listing. Zero value lists everything.
type VoiceFilter struct {
	LanguageCode string
	Engine       string
}

// Provider defines the operations of a speech synthesis service.
type Provider interface {
	// StartTask submits an asynchronous synthesis task whose output lands in
	// the requested bucket.
	StartTask(ctx context.Context, req TaskRequest) (*SynthesisTask, error)

	// GetTask fetches the current state of a task from the provider.
	GetTask(ctx context.Context, taskID string) (*SynthesisTask, error)

	// Synthesize converts text to speech and returns the audio stream.
	Synthesize(ctx context.Context, req SpeechRequest) (*Speech, error)

	// ListVoices returns the provider's voices in provider order.
	ListVoices(ctx context.Context, filter VoiceFilter) ([]Voice, error)
}
