package httpapi

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/joedayz/aws-labs/internal/eventlog"
	"github.com/joedayz/aws-labs/internal/pii"
	"github.com/joedayz/aws-labs/internal/tts"
)

type fakeSpeech struct {
	task     *tts.SynthesisTask
	voices   []tts.Voice
	audio    []byte
	err      error
	blockCtx bool

	gotTask   tts.TaskRequest
	gotTaskID string
	gotSpeech tts.SpeechRequest
	gotFilter tts.VoiceFilter
	calls     int
}

func (f *fakeSpeech) StartTask(ctx context.Context, req tts.TaskRequest) (*tts.SynthesisTask, error) {
	f.calls++
	f.gotTask = req
	if f.blockCtx {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.task, nil
}

func (f *fakeSpeech) GetTask(_ context.Context, id string) (*tts.SynthesisTask, error) {
	f.calls++
	f.gotTaskID = id
	if f.err != nil {
		return nil, f.err
	}
	return f.task, nil
}

func (f *fakeSpeech) Synthesize(_ context.Context, req tts.SpeechRequest) (*tts.Speech, error) {
	f.calls++
	f.gotSpeech = req
	if f.err != nil {
		return nil, f.err
	}
	return &tts.Speech{
		Audio:             io.NopCloser(bytes.NewReader(f.audio)),
		ContentType:       req.OutputFormat.ContentType(),
		RequestCharacters: len([]rune(req.Text)),
	}, nil
}

func (f *fakeSpeech) ListVoices(_ context.Context, filter tts.VoiceFilter) ([]tts.Voice, error) {
	f.calls++
	f.gotFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.voices, nil
}

type fakeDetector struct {
	entities []pii.Entity
	err      error
	gotText  string
	calls    int
}

func (f *fakeDetector) DetectEntities(_ context.Context, text string) ([]pii.Entity, error) {
	f.calls++
	f.gotText = text
	if f.err != nil {
		return nil, f.err
	}
	return f.entities, nil
}

type testServer struct {
	handler  http.Handler
	speech   *fakeSpeech
	detector *fakeDetector
	logs     *observer.ObservedLogs
}

func newTestServer(t *testing.T, cfg RouterConfig) *testServer {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	if cfg.DefaultOutputBucket == "" {
		cfg.DefaultOutputBucket = "default-bucket"
	}
	if cfg.ProviderTimeout == 0 {
		cfg.ProviderTimeout = 5 * time.Second
	}

	s := &testServer{
		speech:   &fakeSpeech{},
		detector: &fakeDetector{},
		logs:     logs,
	}
	s.handler = NewRouter(cfg, logger.Sugar(), s.speech, s.detector, eventlog.New(logger))
	return s
}

func (s *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}
