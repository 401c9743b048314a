package analyze

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	cache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/dongycare/checker-backend/internal/entity"
	"github.com/dongycare/checker-backend/internal/metrics"
)

const (
	cacheTTL             = 15 * time.Minute
	cacheCleanupInterval = 30 * time.Minute
)

// Usecase relays analysis requests to the provider. It holds no
// cross-request state beyond an in-memory response cache; each
// invocation is otherwise independent.
type Usecase struct {
	provider GeminiConnector
	cache    *cache.Cache
	logger   *zap.Logger
}

func NewUsecase(provider GeminiConnector, logger *zap.Logger) *Usecase {
	return &Usecase{
		provider: provider,
		cache:    cache.New(cacheTTL, cacheCleanupInterval),
		logger:   logger,
	}
}

// Analyze forwards the request to the provider and returns its JSON
// document verbatim. Responses are cached by payload hash so an
// identical re-submission skips a paid model call.
func (u *Usecase) Analyze(ctx context.Context, req *entity.AnalyzeRequest) (json.RawMessage, error) {
	key := cacheKey(req)

	if key != "" {
		if cached, ok := u.cache.Get(key); ok {
			metrics.AnalysisTotal.WithLabelValues("cache_hit").Inc()
			ctxzap.Info(ctx, "analysis served from cache")
			return cached.(json.RawMessage), nil
		}
	}

	raw, err := u.provider.GenerateAnalysis(ctx, req.SystemPrompt, req.ContentParts)
	if err != nil {
		metrics.AnalysisTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.AnalysisTotal.WithLabelValues("provider").Inc()

	if key != "" {
		u.cache.Set(key, raw, cache.DefaultExpiration)
	}

	return raw, nil
}

func cacheKey(req *entity.AnalyzeRequest) string {
	payload, err := json.Marshal(req)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
