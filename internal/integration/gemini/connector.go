package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/dongycare/checker-backend/internal/config"
	"github.com/dongycare/checker-backend/internal/entity"
	"github.com/dongycare/checker-backend/internal/integration/common"
	pkghttp "github.com/dongycare/checker-backend/pkg/http"
)

const apiKeyHeader = "x-goog-api-key"

type Connector struct {
	config    config.GeminiConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.GeminiConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger,
			pkghttp.WithHeaderAuth(apiKeyHeader, cfg.APIKey)),
		config: cfg,
		logger: logger,
	}
}

// GenerateAnalysis calls models.generateContent with the relayed system
// prompt, the content parts and the fixed response schema, and returns
// the first candidate's text verbatim. The text is the schema-shaped
// JSON document; no decoding happens here.
func (c *Connector) GenerateAnalysis(ctx context.Context, systemPrompt string, parts []entity.Part) (json.RawMessage, error) {
	if c.config.APIKey == "" {
		return nil, entity.ErrMissingCredential
	}

	ctxzap.Info(ctx, "requesting analysis from Gemini",
		zap.String("model", c.config.Model),
		zap.Int("part_count", len(parts)),
	)

	req := &entity.GenerateContentRequest{
		Contents: []entity.GeminiContent{{Parts: parts}},
		SystemInstruction: &entity.GeminiContent{
			Parts: []entity.Part{{Text: systemPrompt}},
		},
		GenerationConfig: &entity.GeminiGenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   ResponseSchema,
		},
	}

	endpoint := fmt.Sprintf("/v1beta/models/%s:generateContent", c.config.Model)

	var resp entity.GenerateContentResponse
	if err := c.connector.DoRequest(ctx, http.MethodPost, endpoint, req, &resp); err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	text := firstCandidateText(&resp)
	if text == "" {
		return nil, entity.ErrEmptyCandidate
	}

	ctxzap.Info(ctx, "analysis generated successfully", zap.Int("result_length", len(text)))

	return json.RawMessage(text), nil
}

func firstCandidateText(resp *entity.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			return part.Text
		}
	}
	return ""
}
