package httpapi

import (
	"net/http"

	"github.com/joedayz/aws-labs/internal/eventlog"
	"github.com/joedayz/aws-labs/internal/tts"
)

// handleListVoices returns the provider's voices wrapped as {"voices": [...]}
func (r *Router) handleListVoices(w http.ResponseWriter, req *http.Request) {
	voices, ok := r.listVoices(w, req)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"voices": voices,
	})
}

// handleListVoicesFlat returns the same voices as a bare array, the shape
// the web frontend consumes.
func (r *Router) handleListVoicesFlat(w http.ResponseWriter, req *http.Request) {
	voices, ok := r.listVoices(w, req)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, voices)
}

func (r *Router) listVoices(w http.ResponseWriter, req *http.Request) ([]tts.Voice, bool) {
	q := req.URL.Query()
	filter := tts.VoiceFilter{
		LanguageCode: q.Get("languageCode"),
		Engine:       q.Get("engine"),
	}

	ctx, cancel := r.providerContext(req)
	defer cancel()

	voices, err := r.speech.ListVoices(ctx, filter)
	if err != nil {
		r.writeError(w, req, &ProviderError{Op: "DescribeVoices", Err: err})
		return nil, false
	}
	if voices == nil {
		voices = []tts.Voice{}
	}

	r.eventLog.Log(requestIDFrom(req.Context()), eventlog.EventVoicesListed, map[string]any{
		"count":         len(voices),
		"language_code": filter.LanguageCode,
		"engine":        filter.Engine,
	})
	return voices, true
}
