package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Alexnarea/brunet-lezine/gateway"
)

const (
	reportsPath       = "/reports"
	globalResultsPath = "/global-results"
)

// ReportsService defines a public type used by the console core APIs.
//
// ReportsService instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type ReportsService struct {
	api *gateway.Client
}

// NewReportsService describes the newreportsservice operation and its observable behavior.
//
// NewReportsService does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewReportsService(api *gateway.Client) *ReportsService {
	return &ReportsService{api: api}
}

// FindByEvaluation returns the stored report for an evaluation, or nil when
// none has been generated yet. The backend signals "no report" either with
// a 404 or with an empty record.
func (s *ReportsService) FindByEvaluation(ctx context.Context, evaluationID int64) (*Report, error) {
	var out Report
	err := s.api.Get(ctx, fmt.Sprintf("%s/by-evaluation/%d", reportsPath, evaluationID), &out)
	if err != nil {
		var apiErr *gateway.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	if out.ID == 0 {
		return nil, nil
	}
	return &out, nil
}

// Generate asks the backend to build the report for an evaluation.
func (s *ReportsService) Generate(ctx context.Context, evaluationID int64) error {
	return s.api.Post(ctx, fmt.Sprintf("%s/generate/%d", reportsPath, evaluationID), nil, nil)
}

// Download fetches the evaluation's PDF report.
func (s *ReportsService) Download(ctx context.Context, evaluationID int64) ([]byte, error) {
	raw, _, err := s.api.GetRaw(ctx, fmt.Sprintf("%s/download/%d", reportsPath, evaluationID))
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// DownloadOrGenerate downloads the PDF, generating the report first when
// none exists yet.
func (s *ReportsService) DownloadOrGenerate(ctx context.Context, evaluationID int64) ([]byte, error) {
	existing, err := s.FindByEvaluation(ctx, evaluationID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		if err := s.Generate(ctx, evaluationID); err != nil {
			return nil, err
		}
	}
	return s.Download(ctx, evaluationID)
}

// Delete removes a stored report.
func (s *ReportsService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("%s/%d", reportsPath, id))
}

// GlobalResultsService defines a public type used by the console core APIs.
//
// GlobalResultsService instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type GlobalResultsService struct {
	api *gateway.Client
}

// NewGlobalResultsService describes the newglobalresultsservice operation and its observable behavior.
//
// NewGlobalResultsService does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewGlobalResultsService(api *gateway.Client) *GlobalResultsService {
	return &GlobalResultsService{api: api}
}

// List returns every stored global result.
func (s *GlobalResultsService) List(ctx context.Context) ([]GlobalResult, error) {
	var out []GlobalResult
	if err := s.api.Get(ctx, globalResultsPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one global result by id.
func (s *GlobalResultsService) Get(ctx context.Context, id int64) (*GlobalResult, error) {
	var out GlobalResult
	if err := s.api.Get(ctx, fmt.Sprintf("%s/%d", globalResultsPath, id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create stores a global result.
func (s *GlobalResultsService) Create(ctx context.Context, payload GlobalResultPayload) (*GlobalResult, error) {
	var out GlobalResult
	if err := s.api.Post(ctx, globalResultsPath, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update overwrites a global result.
func (s *GlobalResultsService) Update(ctx context.Context, id int64, payload GlobalResultPayload) (*GlobalResult, error) {
	var out GlobalResult
	if err := s.api.Put(ctx, fmt.Sprintf("%s/%d", globalResultsPath, id), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a global result.
func (s *GlobalResultsService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("%s/%d", globalResultsPath, id))
}
