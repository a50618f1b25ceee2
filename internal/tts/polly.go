package tts

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/polly"
	"github.com/aws/aws-sdk-go-v2/service/polly/types"
)

// pollyAPI is the subset of the Polly client used by PollyClient.
type pollyAPI interface {
	StartSpeechSynthesisTask(ctx context.Context, params *polly.StartSpeechSynthesisTaskInput, optFns ...func(*polly.Options)) (*polly.StartSpeechSynthesisTaskOutput, error)
	GetSpeechSynthesisTask(ctx context.Context, params *polly.GetSpeechSynthesisTaskInput, optFns ...func(*polly.Options)) (*polly.GetSpeechSynthesisTaskOutput, error)
	SynthesizeSpeech(ctx context.Context, params *polly.SynthesizeSpeechInput, optFns ...func(*polly.Options)) (*polly.SynthesizeSpeechOutput, error)
	DescribeVoices(ctx context.Context, params *polly.DescribeVoicesInput, optFns ...func(*polly.Options)) (*polly.DescribeVoicesOutput, error)
}

// PollyClient implements the Provider interface using Amazon Polly.
type PollyClient struct {
	api     pollyAPI
	voiceID string
	engine  string
}

// PollyConfig holds configuration for the Polly client.
type PollyConfig struct {
	VoiceID string // used when a request leaves the voice empty
	Engine  string // used when a request leaves the engine empty
}

// NewPollyClient creates a Polly-backed provider from a loaded AWS config.
func NewPollyClient(awsCfg aws.Config, cfg PollyConfig) *PollyClient {
	return newPollyClient(polly.NewFromConfig(awsCfg), cfg)
}

func newPollyClient(api pollyAPI, cfg PollyConfig) *PollyClient {
	voiceID := cfg.VoiceID
	if voiceID == "" {
		voiceID = "Joanna"
	}
	engine := cfg.Engine
	if engine == "" {
		engine = "neural"
	}
	return &PollyClient{
		api:     api,
		voiceID: voiceID,
		engine:  engine,
	}
}

// StartTask submits an asynchronous synthesis task.
func (c *PollyClient) StartTask(ctx context.Context, req TaskRequest) (*SynthesisTask, error) {
	out, err := c.api.StartSpeechSynthesisTask(ctx, &polly.StartSpeechSynthesisTaskInput{
		Text:               aws.String(req.Text),
		TextType:           types.TextType(DetectTextType(req.TextType, req.Text)),
		VoiceId:            types.VoiceId(c.voice(req.VoiceID)),
		Engine:             types.Engine(c.engineOr(req.Engine)),
		OutputFormat:       types.OutputFormat(req.OutputFormat),
		OutputS3BucketName: aws.String(req.Bucket),
	})
	if err != nil {
		return nil, err
	}
	if out.SynthesisTask == nil {
		return nil, errors.New("polly returned no synthesis task")
	}
	return taskFromPolly(out.SynthesisTask), nil
}

// GetTask fetches a task by ID.
func (c *PollyClient) GetTask(ctx context.Context, taskID string) (*SynthesisTask, error) {
	out, err := c.api.GetSpeechSynthesisTask(ctx, &polly.GetSpeechSynthesisTaskInput{
		TaskId: aws.String(taskID),
	})
	if err != nil {
		return nil, err
	}
	if out.SynthesisTask == nil {
		return nil, errors.New("polly returned no synthesis task")
	}
	return taskFromPolly(out.SynthesisTask), nil
}

// Synthesize converts text to speech and returns the provider's audio stream.
func (c *PollyClient) Synthesize(ctx context.Context, req SpeechRequest) (*Speech, error) {
	format := req.OutputFormat
	if format == "" {
		format = FormatMP3
	}

	out, err := c.api.SynthesizeSpeech(ctx, &polly.SynthesizeSpeechInput{
		Text:         aws.String(req.Text),
		TextType:     types.TextType(DetectTextType(req.TextType, req.Text)),
		VoiceId:      types.VoiceId(c.voice(req.VoiceID)),
		Engine:       types.Engine(c.engineOr(req.Engine)),
		OutputFormat: types.OutputFormat(format),
	})
	if err != nil {
		return nil, err
	}
	if out.AudioStream == nil {
		return nil, errors.New("polly returned no audio stream")
	}

	return &Speech{
		Audio:             out.AudioStream,
		ContentType:       format.ContentType(),
		RequestCharacters: int(out.RequestCharacters),
	}, nil
}

// ListVoices pages through DescribeVoices and returns voices in provider order.
func (c *PollyClient) ListVoices(ctx context.Context, filter VoiceFilter) ([]Voice, error) {
	in := &polly.DescribeVoicesInput{
		Engine:       types.Engine(filter.Engine),
		LanguageCode: types.LanguageCode(filter.LanguageCode),
	}

	voices := []Voice{}
	for {
		out, err := c.api.DescribeVoices(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, v := range out.Voices {
			voices = append(voices, voiceFromPolly(v))
		}
		if out.NextToken == nil || *out.NextToken == "" {
			return voices, nil
		}
		in.NextToken = out.NextToken
	}
}

func (c *PollyClient) voice(v string) string {
	if v == "" {
		return c.voiceID
	}
	return v
}

func (c *PollyClient) engineOr(e string) string {
	if e == "" {
		return c.engine
	}
	return e
}

func taskFromPolly(t *types.SynthesisTask) *SynthesisTask {
	return &SynthesisTask{
		TaskID:            aws.ToString(t.TaskId),
		Status:            string(t.TaskStatus),
		StatusReason:      aws.ToString(t.TaskStatusReason),
		OutputURI:         aws.ToString(t.OutputUri),
		CreationTime:      t.CreationTime,
		RequestCharacters: int(t.RequestCharacters),
	}
}

func voiceFromPolly(v types.Voice) Voice {
	voice := Voice{
		ID:               string(v.Id),
		Name:             aws.ToString(v.Name),
		Gender:           string(v.Gender),
		LanguageCode:     string(v.LanguageCode),
		LanguageName:     aws.ToString(v.LanguageName),
		SupportedEngines: make([]string, 0, len(v.SupportedEngines)),
	}
	for _, lc := range v.AdditionalLanguageCodes {
		voice.AdditionalLanguageCodes = append(voice.AdditionalLanguageCodes, string(lc))
	}
	for _, e := range v.SupportedEngines {
		voice.SupportedEngines = append(voice.SupportedEngines, string(e))
	}
	return voice
}
