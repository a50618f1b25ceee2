package pii

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/comprehend"
	"github.com/aws/aws-sdk-go-v2/service/comprehend/types"
)

type comprehendAPI interface {
	DetectPiiEntities(ctx context.Context, params *comprehend.DetectPiiEntitiesInput, optFns ...func(*comprehend.Options)) (*comprehend.DetectPiiEntitiesOutput, error)
}

// ComprehendClient implements the Detector interface using Amazon Comprehend.
type ComprehendClient struct {
	api          comprehendAPI
	languageCode string
}

// ComprehendConfig holds configuration for the Comprehend client.
type ComprehendConfig struct {
	LanguageCode string // e.g. "en"
}

// NewComprehendClient creates a Comprehend-backed detector from a loaded AWS config.
func NewComprehendClient(awsCfg aws.Config, cfg ComprehendConfig) *ComprehendClient {
	return newComprehendClient(comprehend.NewFromConfig(awsCfg), cfg)
}

func newComprehendClient(api comprehendAPI, cfg ComprehendConfig) *ComprehendClient {
	lang := cfg.LanguageCode
	if lang == "" {
		lang = string(types.LanguageCodeEn)
	}
	return &ComprehendClient{api: api, languageCode: lang}
}

// DetectEntities runs DetectPiiEntities on text.
func (c *ComprehendClient) DetectEntities(ctx context.Context, text string) ([]Entity, error) {
	out, err := c.api.DetectPiiEntities(ctx, &comprehend.DetectPiiEntitiesInput{
		Text:         aws.String(text),
		LanguageCode: types.LanguageCode(c.languageCode),
	})
	if err != nil {
		return nil, err
	}

	entities := make([]Entity, 0, len(out.Entities))
	for _, e := range out.Entities {
		begin := int(aws.ToInt32(e.BeginOffset))
		end := int(aws.ToInt32(e.EndOffset))
		entities = append(entities, Entity{
			Type:        string(e.Type),
			Score:       float64(aws.ToFloat32(e.Score)),
			BeginOffset: begin,
			EndOffset:   end,
			Text:        span(text, begin, end),
		})
	}
	return entities, nil
}
