package form

import (
	"encoding/json"
	"fmt"

	"github.com/dongycare/checker-backend/internal/entity"
)

// UnwrapResponse decodes the relay's analysis document. The model may
// nest the result under a "results" key or emit it at the top level;
// both shapes are accepted.
func UnwrapResponse(raw []byte) (*entity.AnalysisResult, error) {
	var envelope struct {
		Results *entity.AnalysisResult `json:"results"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrMalformedResponse, err)
	}
	if envelope.Results != nil {
		return envelope.Results, nil
	}

	var result entity.AnalysisResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrMalformedResponse, err)
	}

	return &result, nil
}
