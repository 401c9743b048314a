package analyze

import (
	"context"
	"encoding/json"

	"github.com/dongycare/checker-backend/internal/entity"
)

// AnalyzeUsecase relays a request to the AI capability and returns the
// schema-shaped JSON document verbatim.
type AnalyzeUsecase interface {
	Analyze(ctx context.Context, req *entity.AnalyzeRequest) (json.RawMessage, error)
}
