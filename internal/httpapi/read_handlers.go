package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/joedayz/aws-labs/internal/costs"
	"github.com/joedayz/aws-labs/internal/eventlog"
	"github.com/joedayz/aws-labs/internal/tts"
)

// Synchronous reads always use the neural engine.
const readEngine = "neural"

// handleRead synthesizes text synchronously and returns the audio bytes.
// The browser player points straight at this endpoint.
func (r *Router) handleRead(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()
	text := q.Get("text")
	if strings.TrimSpace(text) == "" {
		r.writeError(w, req, &ValidationError{Field: "text"})
		return
	}

	speechReq := tts.SpeechRequest{
		Text:         text,
		TextType:     q.Get("textType"),
		VoiceID:      orDefault(q.Get("voiceId"), r.cfg.DefaultVoiceID),
		Engine:       readEngine,
		OutputFormat: tts.ParseFormat(q.Get("outputFormat")),
	}

	ctx, cancel := r.providerContext(req)
	defer cancel()

	speech, err := r.speech.Synthesize(ctx, speechReq)
	if err != nil {
		r.writeError(w, req, &ProviderError{Op: "SynthesizeSpeech", Err: err})
		return
	}
	audio, err := io.ReadAll(speech.Audio)
	_ = speech.Audio.Close()
	if err != nil {
		r.writeError(w, req, &ProviderError{Op: "SynthesizeSpeech", Err: err})
		return
	}

	r.eventLog.Log(requestIDFrom(req.Context()), eventlog.EventSpeechStreamed, map[string]any{
		"voice_id":        speechReq.VoiceID,
		"output_format":   string(speechReq.OutputFormat),
		"bytes":           len(audio),
		"chars":           speech.RequestCharacters,
		"est_cost_micros": costs.SpeechCost(readEngine, speech.RequestCharacters),
	})

	w.Header().Set("Content-Type", speechReq.OutputFormat.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=speech.%s", speechReq.OutputFormat))
	w.Header().Set("Content-Length", strconv.Itoa(len(audio)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(audio)
}
