package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"go.uber.org/zap"

	"github.com/joedayz/aws-labs/internal/eventlog"
	"github.com/joedayz/aws-labs/internal/httpapi"
	"github.com/joedayz/aws-labs/internal/pii"
	"github.com/joedayz/aws-labs/internal/tts"
)

type App struct {
	cfg      Config
	logger   *zap.Logger
	speech   tts.Provider
	detector pii.Detector
	eventLog *eventlog.Logger
}

func New(cfg Config, logger *zap.Logger) (*App, error) {
	if cfg.AWSRegion == "" {
		return nil, errors.New("AWS_REGION is required")
	}
	if cfg.AWSAccessKeyID != "" && cfg.AWSSecretAccessKey == "" {
		return nil, errors.New("AWS_SECRET_ACCESS_KEY is required when AWS_ACCESS_KEY_ID is set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	awsCfg, err := loadAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.HasStaticCredentials() {
		logger.Info("aws credentials from environment", zap.String("region", cfg.AWSRegion))
	} else {
		logger.Info("aws credentials from default chain", zap.String("region", cfg.AWSRegion))
	}
	if cfg.DefaultOutputBucket == "" {
		logger.Warn("DEFAULT_OUTPUT_BUCKET not set; synthesis tasks must name a bucket")
	}

	return &App{
		cfg:    cfg,
		logger: logger,
		speech: tts.NewPollyClient(awsCfg, tts.PollyConfig{
			VoiceID: cfg.DefaultVoiceID,
			Engine:  cfg.DefaultEngine,
		}),
		detector: pii.NewComprehendClient(awsCfg, pii.ComprehendConfig{
			LanguageCode: cfg.PIILanguageCode,
		}),
		eventLog: eventlog.New(logger),
	}, nil
}

func loadAWSConfig(ctx context.Context, cfg Config) (aws.Config, error) {
	// Shared HTTP client with connection pooling for both providers.
	// No client-wide timeout: audio bodies are read after the response
	// headers arrive, and each call is bounded by its own context.
	httpClient := &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   10,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   5 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithHTTPClient(httpClient),
	}
	if cfg.HasStaticCredentials() {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, cfg.AWSSessionToken),
		))
	}

	return awsconfig.LoadDefaultConfig(ctx, opts...)
}

func (a *App) Router() http.Handler {
	routerCfg := httpapi.RouterConfig{
		DefaultOutputBucket: a.cfg.DefaultOutputBucket,
		DefaultVoiceID:      a.cfg.DefaultVoiceID,
		DefaultEngine:       a.cfg.DefaultEngine,
		ProviderTimeout:     a.cfg.ProviderTimeout,
		StaticDir:           a.cfg.StaticDir,
	}
	return httpapi.NewRouter(routerCfg, a.logger.Sugar(), a.speech, a.detector, a.eventLog)
}
