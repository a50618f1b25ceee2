package httpapi

import (
	"net/http"
	"strings"

	"github.com/joedayz/aws-labs/internal/costs"
	"github.com/joedayz/aws-labs/internal/eventlog"
	"github.com/joedayz/aws-labs/internal/pii"
)

func (r *Router) handleDetectEntities(w http.ResponseWriter, req *http.Request) {
	var body struct {
		Text string `json:"text"`
	}
	if err := decodeJSON(w, req, &body); err != nil {
		r.writeError(w, req, err)
		return
	}

	if strings.TrimSpace(body.Text) == "" {
		r.writeError(w, req, &ValidationError{Field: "text"})
		return
	}

	ctx, cancel := r.providerContext(req)
	defer cancel()

	entities, err := r.detector.DetectEntities(ctx, body.Text)
	if err != nil {
		r.writeError(w, req, &ProviderError{Op: "DetectPiiEntities", Err: err})
		return
	}
	if entities == nil {
		entities = []pii.Entity{}
	}

	r.eventLog.Log(requestIDFrom(req.Context()), eventlog.EventEntitiesDetected, map[string]any{
		"count":           len(entities),
		"chars":           len([]rune(body.Text)),
		"est_cost_micros": costs.PIICost(body.Text),
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"entities": entities,
	})
}
