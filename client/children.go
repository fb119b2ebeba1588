package client

import (
	"context"
	"fmt"

	"github.com/Alexnarea/brunet-lezine/gateway"
)

const childrenPath = "/children"

// ChildrenService defines a public type used by the console core APIs.
//
// ChildrenService instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type ChildrenService struct {
	api *gateway.Client
}

// NewChildrenService describes the newchildrenservice operation and its observable behavior.
//
// NewChildrenService does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewChildrenService(api *gateway.Client) *ChildrenService {
	return &ChildrenService{api: api}
}

// List returns every registered child.
func (s *ChildrenService) List(ctx context.Context) ([]Child, error) {
	var out []Child
	if err := s.api.Get(ctx, childrenPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one child by id.
func (s *ChildrenService) Get(ctx context.Context, id int64) (*Child, error) {
	var out Child
	if err := s.api.Get(ctx, fmt.Sprintf("%s/%d", childrenPath, id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create registers a new child.
func (s *ChildrenService) Create(ctx context.Context, payload ChildPayload) (*Child, error) {
	var out Child
	if err := s.api.Post(ctx, childrenPath, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update overwrites a child's registration data.
func (s *ChildrenService) Update(ctx context.Context, id int64, payload ChildPayload) (*Child, error) {
	var out Child
	if err := s.api.Put(ctx, fmt.Sprintf("%s/%d", childrenPath, id), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a child.
func (s *ChildrenService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("%s/%d", childrenPath, id))
}
