package client

import (
	"context"
	"fmt"

	"github.com/Alexnarea/brunet-lezine/gateway"
)

const evaluationsPath = "/evaluations"

// EvaluationsService defines a public type used by the console core APIs.
//
// EvaluationsService instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type EvaluationsService struct {
	api *gateway.Client
}

// NewEvaluationsService describes the newevaluationsservice operation and its observable behavior.
//
// NewEvaluationsService does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewEvaluationsService(api *gateway.Client) *EvaluationsService {
	return &EvaluationsService{api: api}
}

// List returns every stored evaluation.
func (s *EvaluationsService) List(ctx context.Context) ([]Evaluation, error) {
	var out []Evaluation
	if err := s.api.Get(ctx, evaluationsPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one evaluation by id.
func (s *EvaluationsService) Get(ctx context.Context, id int64) (*Evaluation, error) {
	var out Evaluation
	if err := s.api.Get(ctx, fmt.Sprintf("%s/%d", evaluationsPath, id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Detail returns the expanded evaluation view, items included.
func (s *EvaluationsService) Detail(ctx context.Context, id int64) (*Evaluation, error) {
	var out Evaluation
	if err := s.api.Get(ctx, fmt.Sprintf("%s/%d/detail", evaluationsPath, id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateWithResponses submits an evaluation with its pass/fail answers and
// returns the backend-computed result. The authoritative coefficient and
// classification come from this response, not from any client-side preview.
func (s *EvaluationsService) CreateWithResponses(ctx context.Context, req EvaluationRequest) (*EvaluationResult, error) {
	var out EvaluationResult
	if err := s.api.Post(ctx, evaluationsPath+"/create-with-responses", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update overwrites an evaluation's answers.
func (s *EvaluationsService) Update(ctx context.Context, id int64, req EvaluationRequest) (*Evaluation, error) {
	var out Evaluation
	if err := s.api.Put(ctx, fmt.Sprintf("%s/%d", evaluationsPath, id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an evaluation.
func (s *EvaluationsService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("%s/%d", evaluationsPath, id))
}
