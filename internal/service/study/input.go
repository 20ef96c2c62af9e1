package study

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/validate"
)

// GetQueueInput holds the parameters for previewing a study queue.
type GetQueueInput struct {
	Filter domain.GroupFilter `json:"-"`
	Count  int                `json:"count" validate:"gte=0,lte=1000"`
}

// Validate checks all fields and collects all errors.
func (i *GetQueueInput) Validate() error {
	return validate.Struct(i)
}

// StartSessionInput holds the parameters for starting a study session.
// Count 0 uses the configured session size. OnComplete, when set, is called
// once each time the session reaches COMPLETE.
type StartSessionInput struct {
	Filter     domain.GroupFilter   `json:"-"`
	Count      int                  `json:"count" validate:"gte=0,lte=1000"`
	OnComplete func(SessionSummary) `json:"-"`
}

// Validate checks all fields and collects all errors.
func (i *StartSessionInput) Validate() error {
	return validate.Struct(i)
}

// CreateCardInput holds the parameters for creating a card.
type CreateCardInput struct {
	Front    string     `json:"front"    validate:"notblank,max=2000"`
	Back     string     `json:"back"     validate:"notblank,max=2000"`
	Category string     `json:"category" validate:"max=100"`
	GroupID  *uuid.UUID `json:"group_id"`
}

// Validate checks all fields and collects all errors.
func (i *CreateCardInput) Validate() error {
	return validate.Struct(i)
}

func (i *CreateCardInput) toDomain() domain.CardInput {
	return domain.CardInput{
		Front:    i.Front,
		Back:     i.Back,
		Category: i.Category,
		GroupID:  i.GroupID,
	}
}

// BatchCreateCardsInput holds the parameters for creating several cards.
// Items are validated individually so one bad card does not block the rest.
type BatchCreateCardsInput struct {
	Cards []CreateCardInput `json:"cards" validate:"required,min=1,max=500"`
}

// Validate checks the batch shape. Item contents are checked per item.
func (i *BatchCreateCardsInput) Validate() error {
	return validate.Struct(i)
}

// EditCardInput holds the parameters for editing a card's content.
// Nil fields are left unchanged.
type EditCardInput struct {
	CardID   uuid.UUID `json:"card_id"  validate:"required"`
	Front    *string   `json:"front"    validate:"omitnil,notblank,max=2000"`
	Back     *string   `json:"back"     validate:"omitnil,notblank,max=2000"`
	Category *string   `json:"category" validate:"omitnil,max=100"`
}

// Validate checks all fields and collects all errors.
func (i *EditCardInput) Validate() error {
	var extra []domain.FieldError
	if i.Front == nil && i.Back == nil && i.Category == nil {
		extra = append(extra, domain.FieldError{Field: "input", Message: "nothing to update"})
	}
	return validate.Struct(i, extra...)
}

func (i *EditCardInput) toPatch() domain.CardPatch {
	return domain.CardPatch{
		Front:    i.Front,
		Back:     i.Back,
		Category: i.Category,
	}
}

// DeleteCardInput holds the parameters for deleting a card.
type DeleteCardInput struct {
	CardID uuid.UUID `json:"card_id" validate:"required"`
}

// Validate checks all fields and collects all errors.
func (i *DeleteCardInput) Validate() error {
	return validate.Struct(i)
}

// MoveCardsInput holds the parameters for reassigning cards to a group.
// A nil GroupID moves the cards out of any group.
type MoveCardsInput struct {
	CardIDs []uuid.UUID `json:"card_ids" validate:"required,min=1,max=1000,dive,required"`
	GroupID *uuid.UUID  `json:"group_id"`
}

// Validate checks all fields and collects all errors.
func (i *MoveCardsInput) Validate() error {
	return validate.Struct(i)
}

// ListCardsInput holds the parameters for listing cards.
type ListCardsInput struct {
	Filter domain.GroupFilter
}

// RateCardInput holds the parameters for rating a card.
// An unrecognised Difficulty is not an error: the card is rescheduled for now.
type RateCardInput struct {
	CardID     uuid.UUID         `json:"card_id" validate:"required"`
	Difficulty domain.Difficulty `json:"difficulty"`
}

// Validate checks all fields and collects all errors.
func (i *RateCardInput) Validate() error {
	return validate.Struct(i)
}
