package client

import (
	"context"
	"fmt"

	"github.com/Alexnarea/brunet-lezine/gateway"
)

const testItemsPath = "/test-items"

// TestItemsService defines a public type used by the console core APIs.
//
// TestItemsService instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type TestItemsService struct {
	api *gateway.Client
}

// NewTestItemsService describes the newtestitemsservice operation and its observable behavior.
//
// NewTestItemsService does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewTestItemsService(api *gateway.Client) *TestItemsService {
	return &TestItemsService{api: api}
}

// List returns the full assessment checklist.
func (s *TestItemsService) List(ctx context.Context) ([]TestItem, error) {
	var out []TestItem
	if err := s.api.Get(ctx, testItemsPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create adds a checklist item.
func (s *TestItemsService) Create(ctx context.Context, payload TestItemPayload) (*TestItem, error) {
	var out TestItem
	if err := s.api.Post(ctx, testItemsPath, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update overwrites a checklist item.
func (s *TestItemsService) Update(ctx context.Context, id int64, payload TestItemPayload) (*TestItem, error) {
	var out TestItem
	if err := s.api.Put(ctx, fmt.Sprintf("%s/%d", testItemsPath, id), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a checklist item.
func (s *TestItemsService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("%s/%d", testItemsPath, id))
}
