package validator

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dongycare/checker-backend/internal/entity"
)

// ValidateImage checks the declared size against the configured ceiling
// and sniffs the payload for an image MIME type, which it returns.
// The ceiling is exclusive: a payload of exactly the limit is rejected.
func (v *Validator) ValidateImage(data []byte, declaredSize int64) (string, error) {
	if declaredSize >= v.cfg.MaxImageSize {
		return "", fmt.Errorf("%w: %d bytes (max %d)", entity.ErrImageTooLarge, declaredSize, v.cfg.MaxImageSize)
	}

	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty payload", entity.ErrImageDecode)
	}

	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return "", fmt.Errorf("%w: detected content type %s", entity.ErrImageDecode, mimeType)
	}

	return mimeType, nil
}

// ValidateAnalyzeRequest checks the relay-side request invariants:
// a system prompt, at least one part, at most one inline image.
func (v *Validator) ValidateAnalyzeRequest(req *entity.AnalyzeRequest) error {
	if req.SystemPrompt == "" {
		return fmt.Errorf("%w: systemPrompt", entity.ErrMissingField)
	}
	if len(req.ContentParts) == 0 {
		return fmt.Errorf("%w: contentParts", entity.ErrMissingField)
	}

	images := 0
	for _, part := range req.ContentParts {
		if part.InlineData != nil {
			images++
		}
	}
	if images > 1 {
		return fmt.Errorf("%w: at most one inline image per request", entity.ErrInvalidFormat)
	}

	return nil
}
