package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	"github.com/joedayz/aws-labs/internal/eventlog"
	"github.com/joedayz/aws-labs/internal/pii"
	"github.com/joedayz/aws-labs/internal/tts"
)

type RouterConfig struct {
	// Synthesis defaults applied when a request leaves a field empty
	DefaultOutputBucket string
	DefaultVoiceID      string
	DefaultEngine       string

	// Upper bound for one provider call (0 = no bound)
	ProviderTimeout time.Duration

	// Directory with index.html and frontend assets. Empty serves the
	// bundled frontend.
	StaticDir string
}

type Router struct {
	cfg      RouterConfig
	logger   *zap.SugaredLogger
	speech   tts.Provider
	detector pii.Detector
	eventLog *eventlog.Logger
	mux      *http.ServeMux
}

func NewRouter(cfg RouterConfig, logger *zap.SugaredLogger, speech tts.Provider, detector pii.Detector, eventLog *eventlog.Logger) http.Handler {
	if cfg.DefaultVoiceID == "" {
		cfg.DefaultVoiceID = "Joanna"
	}
	if cfg.DefaultEngine == "" {
		cfg.DefaultEngine = "neural"
	}

	r := &Router{
		cfg:      cfg,
		logger:   logger,
		speech:   speech,
		detector: detector,
		eventLog: eventLog,
		mux:      http.NewServeMux(),
	}

	r.routes()
	return withSentryRecovery(withCORS(withRequestLog(logger, r.mux)))
}

func (r *Router) routes() {
	// Health check
	r.mux.HandleFunc("GET /healthz", r.handleHealthz)

	// Frontend
	r.mux.HandleFunc("GET /{$}", r.handleIndex)
	r.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(r.staticFS())))

	// Speech synthesis
	r.mux.HandleFunc("POST /api/synthesize", r.handleSynthesize)
	r.mux.HandleFunc("GET /api/task/{taskId}", r.handleGetTask)
	r.mux.HandleFunc("GET /read", r.handleRead)

	// Voices: wrapped for API clients, flat array for the web frontend
	r.mux.HandleFunc("GET /api/voices", r.handleListVoices)
	r.mux.HandleFunc("GET /voices", r.handleListVoicesFlat)

	// PII detection
	r.mux.HandleFunc("POST /detect-entities", r.handleDetectEntities)
}

func (r *Router) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// providerContext bounds a single provider call.
func (r *Router) providerContext(req *http.Request) (context.Context, context.CancelFunc) {
	if r.cfg.ProviderTimeout <= 0 {
		return context.WithCancel(req.Context())
	}
	return context.WithTimeout(req.Context(), r.cfg.ProviderTimeout)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func withSentryRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				hub := sentry.CurrentHub().Clone()
				hub.Scope().SetRequest(req)
				hub.RecoverWithContext(req.Context(), err)
				hub.Flush(2 * time.Second)
				writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
			}
		}()
		next.ServeHTTP(w, req)
	})
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type,X-Request-ID")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Disposition,X-Request-ID")
		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, req)
	})
}

// captureError sends an error to Sentry with request context
func captureError(req *http.Request, err error, msg string) {
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetRequest(req)
		scope.SetExtra("message", msg)
		sentry.CaptureException(err)
	})
}
