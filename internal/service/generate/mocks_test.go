package generate

import (
	"context"
	"sync"

	"github.com/heartmarshall/flashcards-backend/internal/service/study"
)

var _ cardGenerator = &cardGeneratorMock{}

type cardGeneratorMock struct {
	GenerateCardsFunc func(ctx context.Context, text string, maxCards int) (string, error)

	calls struct {
		GenerateCards []struct {
			Text     string
			MaxCards int
		}
	}
	lockGenerateCards sync.RWMutex
}

func (mock *cardGeneratorMock) GenerateCards(ctx context.Context, text string, maxCards int) (string, error) {
	if mock.GenerateCardsFunc == nil {
		panic("cardGeneratorMock.GenerateCardsFunc: method is nil but cardGenerator.GenerateCards was just called")
	}
	callInfo := struct {
		Text     string
		MaxCards int
	}{Text: text, MaxCards: maxCards}
	mock.lockGenerateCards.Lock()
	mock.calls.GenerateCards = append(mock.calls.GenerateCards, callInfo)
	mock.lockGenerateCards.Unlock()
	return mock.GenerateCardsFunc(ctx, text, maxCards)
}

func (mock *cardGeneratorMock) GenerateCardsCalls() []struct {
	Text     string
	MaxCards int
} {
	mock.lockGenerateCards.RLock()
	calls := mock.calls.GenerateCards
	mock.lockGenerateCards.RUnlock()
	return calls
}

var _ cardCreator = &cardCreatorMock{}

type cardCreatorMock struct {
	CreateCardsFunc func(ctx context.Context, input study.BatchCreateCardsInput) (study.BatchCreateResult, error)

	calls struct {
		CreateCards []struct {
			Input study.BatchCreateCardsInput
		}
	}
	lockCreateCards sync.RWMutex
}

func (mock *cardCreatorMock) CreateCards(ctx context.Context, input study.BatchCreateCardsInput) (study.BatchCreateResult, error) {
	if mock.CreateCardsFunc == nil {
		panic("cardCreatorMock.CreateCardsFunc: method is nil but cardCreator.CreateCards was just called")
	}
	callInfo := struct {
		Input study.BatchCreateCardsInput
	}{Input: input}
	mock.lockCreateCards.Lock()
	mock.calls.CreateCards = append(mock.calls.CreateCards, callInfo)
	mock.lockCreateCards.Unlock()
	return mock.CreateCardsFunc(ctx, input)
}

func (mock *cardCreatorMock) CreateCardsCalls() []struct {
	Input study.BatchCreateCardsInput
} {
	mock.lockCreateCards.RLock()
	calls := mock.calls.CreateCards
	mock.lockCreateCards.RUnlock()
	return calls
}
