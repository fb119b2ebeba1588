package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Alexnarea/brunet-lezine/gateway"
)

const evaluatorsPath = "/evaluators"

// EvaluatorsService defines a public type used by the console core APIs.
//
// EvaluatorsService instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type EvaluatorsService struct {
	api *gateway.Client
}

// NewEvaluatorsService describes the newevaluatorsservice operation and its observable behavior.
//
// NewEvaluatorsService does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewEvaluatorsService(api *gateway.Client) *EvaluatorsService {
	return &EvaluatorsService{api: api}
}

// List returns every registered evaluator.
func (s *EvaluatorsService) List(ctx context.Context) ([]Evaluator, error) {
	var out []Evaluator
	if err := s.api.Get(ctx, evaluatorsPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByUserID returns the evaluator assigned to a console user.
func (s *EvaluatorsService) GetByUserID(ctx context.Context, userID int64) (*Evaluator, error) {
	var out Evaluator
	if err := s.api.Get(ctx, fmt.Sprintf("%s/by-user-id/%d", evaluatorsPath, userID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetByUsername returns the evaluator assigned to the given username.
func (s *EvaluatorsService) GetByUsername(ctx context.Context, username string) (*Evaluator, error) {
	var out Evaluator
	path := evaluatorsPath + "/by-username?username=" + url.QueryEscape(username)
	if err := s.api.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AvailableUsers lists console users not yet assigned to an evaluator.
func (s *EvaluatorsService) AvailableUsers(ctx context.Context) ([]User, error) {
	var out []User
	if err := s.api.Get(ctx, evaluatorsPath+"/available-users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create registers a new evaluator.
func (s *EvaluatorsService) Create(ctx context.Context, payload EvaluatorPayload) (*Evaluator, error) {
	var out Evaluator
	if err := s.api.Post(ctx, evaluatorsPath, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update overwrites an evaluator's data.
func (s *EvaluatorsService) Update(ctx context.Context, id int64, payload EvaluatorPayload) (*Evaluator, error) {
	var out Evaluator
	if err := s.api.Put(ctx, fmt.Sprintf("%s/%d", evaluatorsPath, id), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an evaluator.
func (s *EvaluatorsService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("%s/%d", evaluatorsPath, id))
}
