package study

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

var _ cardStore = &cardStoreMock{}

type cardStoreMock struct {
	ListFunc     func(ctx context.Context, ownerID uuid.UUID, filter domain.GroupFilter) ([]domain.Card, error)
	CreateFunc   func(ctx context.Context, ownerID uuid.UUID, in domain.CardInput) (*domain.Card, error)
	UpdateFunc   func(ctx context.Context, ownerID, id uuid.UUID, patch domain.CardPatch) (*domain.Card, error)
	DeleteFunc   func(ctx context.Context, ownerID, id uuid.UUID) error
	MoveManyFunc func(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID, groupID *uuid.UUID) error

	calls struct {
		List []struct {
			OwnerID uuid.UUID
			Filter  domain.GroupFilter
		}
		Create []struct {
			OwnerID uuid.UUID
			In      domain.CardInput
		}
		Update []struct {
			OwnerID uuid.UUID
			ID      uuid.UUID
			Patch   domain.CardPatch
		}
		Delete []struct {
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
		MoveMany []struct {
			OwnerID uuid.UUID
			IDs     []uuid.UUID
			GroupID *uuid.UUID
		}
	}
	lockList     sync.RWMutex
	lockCreate   sync.RWMutex
	lockUpdate   sync.RWMutex
	lockDelete   sync.RWMutex
	lockMoveMany sync.RWMutex
}

func (mock *cardStoreMock) List(ctx context.Context, ownerID uuid.UUID, filter domain.GroupFilter) ([]domain.Card, error) {
	if mock.ListFunc == nil {
		panic("cardStoreMock.ListFunc: method is nil but cardStore.List was just called")
	}
	callInfo := struct {
		OwnerID uuid.UUID
		Filter  domain.GroupFilter
	}{OwnerID: ownerID, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, ownerID, filter)
}

func (mock *cardStoreMock) ListCalls() []struct {
	OwnerID uuid.UUID
	Filter  domain.GroupFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *cardStoreMock) Create(ctx context.Context, ownerID uuid.UUID, in domain.CardInput) (*domain.Card, error) {
	if mock.CreateFunc == nil {
		panic("cardStoreMock.CreateFunc: method is nil but cardStore.Create was just called")
	}
	callInfo := struct {
		OwnerID uuid.UUID
		In      domain.CardInput
	}{OwnerID: ownerID, In: in}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ownerID, in)
}

func (mock *cardStoreMock) CreateCalls() []struct {
	OwnerID uuid.UUID
	In      domain.CardInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *cardStoreMock) Update(ctx context.Context, ownerID, id uuid.UUID, patch domain.CardPatch) (*domain.Card, error) {
	if mock.UpdateFunc == nil {
		panic("cardStoreMock.UpdateFunc: method is nil but cardStore.Update was just called")
	}
	callInfo := struct {
		OwnerID uuid.UUID
		ID      uuid.UUID
		Patch   domain.CardPatch
	}{OwnerID: ownerID, ID: id, Patch: patch}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, ownerID, id, patch)
}

func (mock *cardStoreMock) UpdateCalls() []struct {
	OwnerID uuid.UUID
	ID      uuid.UUID
	Patch   domain.CardPatch
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *cardStoreMock) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("cardStoreMock.DeleteFunc: method is nil but cardStore.Delete was just called")
	}
	callInfo := struct {
		OwnerID uuid.UUID
		ID      uuid.UUID
	}{OwnerID: ownerID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, ownerID, id)
}

func (mock *cardStoreMock) DeleteCalls() []struct {
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *cardStoreMock) MoveMany(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID, groupID *uuid.UUID) error {
	if mock.MoveManyFunc == nil {
		panic("cardStoreMock.MoveManyFunc: method is nil but cardStore.MoveMany was just called")
	}
	callInfo := struct {
		OwnerID uuid.UUID
		IDs     []uuid.UUID
		GroupID *uuid.UUID
	}{OwnerID: ownerID, IDs: ids, GroupID: groupID}
	mock.lockMoveMany.Lock()
	mock.calls.MoveMany = append(mock.calls.MoveMany, callInfo)
	mock.lockMoveMany.Unlock()
	return mock.MoveManyFunc(ctx, ownerID, ids, groupID)
}

func (mock *cardStoreMock) MoveManyCalls() []struct {
	OwnerID uuid.UUID
	IDs     []uuid.UUID
	GroupID *uuid.UUID
} {
	mock.lockMoveMany.RLock()
	calls := mock.calls.MoveMany
	mock.lockMoveMany.RUnlock()
	return calls
}
