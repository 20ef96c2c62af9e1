package generate

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/validate"
)

// GenerateInput holds parameters for generating card candidates.
// MaxCards 0 uses the configured default.
type GenerateInput struct {
	Text     string `json:"text"      validate:"notblank,max=50000"`
	MaxCards int    `json:"max_cards" validate:"gte=0,lte=100"`
}

// Validate checks all fields and collects all errors.
func (i GenerateInput) Validate() error {
	return validate.Struct(i)
}

// ImportInput holds parameters for generating and storing cards.
// Cards land in GroupID, or ungrouped when it is nil.
type ImportInput struct {
	Text     string
	MaxCards int
	GroupID  *uuid.UUID
}
