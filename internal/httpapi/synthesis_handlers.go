package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/joedayz/aws-labs/internal/costs"
	"github.com/joedayz/aws-labs/internal/eventlog"
	"github.com/joedayz/aws-labs/internal/tts"
)

type synthesizeRequest struct {
	Text         string `json:"text"`
	VoiceID      string `json:"voiceId"`
	Engine       string `json:"engine"`
	OutputFormat string `json:"outputFormat"`
	BucketName   string `json:"bucketName"`
	TextType     string `json:"textType"`
}

type synthesizeResponse struct {
	TaskID    string `json:"taskId"`
	OutputURI string `json:"outputUri"`
	Status    string `json:"status"`
}

type taskResponse struct {
	TaskID       string  `json:"taskId"`
	Status       string  `json:"status"`
	OutputURI    string  `json:"outputUri"`
	CreationTime *string `json:"creationTime"`
}

// handleSynthesize submits an asynchronous synthesis task whose audio is
// written to an S3 bucket by the provider.
func (r *Router) handleSynthesize(w http.ResponseWriter, req *http.Request) {
	var body synthesizeRequest
	if err := decodeJSON(w, req, &body); err != nil {
		r.writeError(w, req, err)
		return
	}

	if strings.TrimSpace(body.Text) == "" {
		r.writeError(w, req, &ValidationError{Field: "text"})
		return
	}

	task := tts.TaskRequest{
		Text:         body.Text,
		TextType:     orDefault(body.TextType, tts.TextTypePlain),
		VoiceID:      orDefault(body.VoiceID, r.cfg.DefaultVoiceID),
		Engine:       orDefault(body.Engine, r.cfg.DefaultEngine),
		OutputFormat: orDefault(body.OutputFormat, string(tts.FormatMP3)),
		Bucket:       orDefault(body.BucketName, r.cfg.DefaultOutputBucket),
	}
	if task.Bucket == "" {
		r.writeError(w, req, &ValidationError{Field: "bucketName"})
		return
	}

	ctx, cancel := r.providerContext(req)
	defer cancel()

	started, err := r.speech.StartTask(ctx, task)
	if err != nil {
		r.writeError(w, req, &ProviderError{Op: "StartSpeechSynthesisTask", Err: err})
		return
	}

	status := started.Status
	if status == "" {
		status = tts.StatusScheduled
	}

	r.eventLog.Log(requestIDFrom(req.Context()), eventlog.EventSynthesisTaskStarted, map[string]any{
		"task_id":         started.TaskID,
		"voice_id":        task.VoiceID,
		"engine":          task.Engine,
		"output_format":   task.OutputFormat,
		"bucket":          task.Bucket,
		"chars":           len([]rune(task.Text)),
		"est_cost_micros": costs.SpeechCost(task.Engine, len([]rune(task.Text))),
	})

	writeJSON(w, http.StatusOK, synthesizeResponse{
		TaskID:    started.TaskID,
		OutputURI: started.OutputURI,
		Status:    status,
	})
}

// handleGetTask re-fetches a synthesis task from the provider.
func (r *Router) handleGetTask(w http.ResponseWriter, req *http.Request) {
	taskID := req.PathValue("taskId")
	if taskID == "" {
		r.writeError(w, req, &ValidationError{Field: "taskId"})
		return
	}

	ctx, cancel := r.providerContext(req)
	defer cancel()

	task, err := r.speech.GetTask(ctx, taskID)
	if err != nil {
		r.writeError(w, req, &ProviderError{Op: "GetSpeechSynthesisTask", Err: err})
		return
	}

	r.eventLog.Log(requestIDFrom(req.Context()), eventlog.EventSynthesisTaskFetched, map[string]any{
		"task_id": task.TaskID,
		"status":  task.Status,
	})

	writeJSON(w, http.StatusOK, taskResponse{
		TaskID:       task.TaskID,
		Status:       task.Status,
		OutputURI:    task.OutputURI,
		CreationTime: formatTime(task.CreationTime),
	})
}

// formatTime renders t as an ISO-8601 string in UTC, or nil when unset.
func formatTime(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339Nano)
	return &s
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
