package analyze

import (
	"context"
	"encoding/json"

	"github.com/dongycare/checker-backend/internal/entity"
)

// GeminiConnector is the single external capability the relay depends
// on: a structured prompt in, a schema-shaped JSON document out.
type GeminiConnector interface {
	GenerateAnalysis(ctx context.Context, systemPrompt string, parts []entity.Part) (json.RawMessage, error)
}
