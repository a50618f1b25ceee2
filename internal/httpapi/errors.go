package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/joedayz/aws-labs/internal/eventlog"
)

// maxBodyBytes caps JSON request bodies. Async synthesis accepts up to
// 100k billed characters, so 1MB leaves room for SSML markup.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

// ValidationError reports a missing or malformed client field. Served as 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Field + " is required"
}

// ProviderError wraps a failed call to an external provider. Served as 500
// with the provider's message unchanged.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string { return e.Err.Error() }

func (e *ProviderError) Unwrap() error { return e.Err }

// writeError renders err as {"error": ...} with the status for its kind.
func (r *Router) writeError(w http.ResponseWriter, req *http.Request, err error) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: vErr.Error()})
		return
	}

	var pErr *ProviderError
	if errors.As(err, &pErr) {
		requestID := requestIDFrom(req.Context())
		r.logger.Errorw("provider call failed", "op", pErr.Op, "request_id", requestID, "error", pErr.Err)
		r.eventLog.Log(requestID, eventlog.EventProviderError, map[string]any{
			"op":    pErr.Op,
			"error": pErr.Err.Error(),
		})
		captureError(req, pErr.Err, pErr.Op)
	} else {
		r.logger.Errorw("request failed", "path", req.URL.Path, "error", err)
	}

	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

// decodeJSON reads a JSON request body into v. An empty body leaves v at
// its zero value so that required-field checks report the missing field.
func decodeJSON(w http.ResponseWriter, req *http.Request, v any) error {
	req.Body = http.MaxBytesReader(w, req.Body, maxBodyBytes)
	if err := json.NewDecoder(req.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return &ValidationError{Field: "body", Message: "request body too large"}
		}
		return &ValidationError{Field: "body", Message: "invalid request body"}
	}
	return nil
}
