package validator

import (
	"github.com/dongycare/checker-backend/internal/config"
)

// Validator validates analysis input before it reaches the network.
type Validator struct {
	cfg config.UploadConfig
}

func NewValidator(cfg config.UploadConfig) *Validator {
	return &Validator{cfg: cfg}
}
