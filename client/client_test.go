package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Alexnarea/brunet-lezine/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateway(t *testing.T, handler http.Handler) *gateway.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	api, err := gateway.NewClient(srv.URL, nil, nil)
	require.NoError(t, err)
	return api
}

func TestChildrenServiceCRUD(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/children", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			// List endpoint wraps its payload in the data envelope.
			_, _ = w.Write([]byte(`{"data":[{"id":1,"fullName":"Ana Pérez","nui":"0102030405","birthdate":"2021-03-04","gender":"F","creationDate":"2026-01-10"}]}`))
		case http.MethodPost:
			body, _ := io.ReadAll(r.Body)
			var payload ChildPayload
			require.NoError(t, json.Unmarshal(body, &payload))
			assert.Equal(t, "Luis Gómez", payload.FullName)
			_, _ = w.Write([]byte(`{"data":{"id":2,"fullName":"Luis Gómez","nui":"0607080910","birthdate":"2022-05-06","gender":"M","creationDate":"2026-02-11"}}`))
		}
	})
	mux.HandleFunc("/children/1", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`{"data":{"id":1,"fullName":"Ana Pérez","nui":"0102030405","birthdate":"2021-03-04","gender":"F","creationDate":"2026-01-10"}}`))
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	})

	svc := NewChildrenService(newGateway(t, mux))
	ctx := context.Background()

	children, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, "Ana Pérez", children[0].FullName)

	child, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), child.ID)
	assert.Equal(t, "2021-03-04", child.Birthdate)

	created, err := svc.Create(ctx, ChildPayload{
		FullName:  "Luis Gómez",
		NUI:       "0607080910",
		Birthdate: "2022-05-06",
		Gender:    "M",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)

	require.NoError(t, svc.Delete(ctx, 1))
}

func TestEvaluationsServiceSubmit(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/evaluations/create-with-responses", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var req EvaluationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(4), req.ChildrenID)
		assert.Equal(t, 36, req.ChronologicalAgeMonths)
		require.Len(t, req.Responses, 2)

		_ = json.NewEncoder(w).Encode(EvaluationResult{
			EvaluationID:        11,
			TotalMonthsApproved: 30,
			Coefficient:         83.33,
			Classification:      "Retraso leve",
			ResultYears:         "2 años, 6 meses",
		})
	})
	mux.HandleFunc("/evaluations/11/detail", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":11,"chronologicalAgeMonths":36,"childrenId":4,"evaluatorId":2,"items":[{"id":1,"task":"Construye una torre","domain":"Motricidad","completed":true,"referenceAgeMonths":30}],"creationDate":"2026-03-01"}`))
	})

	svc := NewEvaluationsService(newGateway(t, mux))
	ctx := context.Background()

	result, err := svc.CreateWithResponses(ctx, EvaluationRequest{
		ChildrenID:             4,
		ChronologicalAgeMonths: 36,
		Responses: []ItemResponse{
			{ItemID: 1, Passed: true},
			{ItemID: 2, Passed: false},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), result.EvaluationID)
	assert.Equal(t, "Retraso leve", result.Classification)

	detail, err := svc.Detail(ctx, 11)
	require.NoError(t, err)
	require.Len(t, detail.Items, 1)
	assert.True(t, detail.Items[0].Completed)
}

func TestEvaluatorsServiceLookups(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/evaluators/by-user-id/9", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"id":3,"fullName":"Dra. Salas","speciality":"Neuropediatría","userId":9}}`))
	})
	mux.HandleFunc("/evaluators/by-username", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "dsalas", r.URL.Query().Get("username"))
		_, _ = w.Write([]byte(`{"data":{"id":3,"fullName":"Dra. Salas","userId":9}}`))
	})
	mux.HandleFunc("/evaluators/available-users", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"id":12,"username":"nuevo","role":"ROLE_EVALUADOR"}]}`))
	})

	svc := NewEvaluatorsService(newGateway(t, mux))
	ctx := context.Background()

	byUser, err := svc.GetByUserID(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "Dra. Salas", byUser.FullName)

	byName, err := svc.GetByUsername(ctx, "dsalas")
	require.NoError(t, err)
	assert.Equal(t, int64(3), byName.ID)

	available, err := svc.AvailableUsers(ctx)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "nuevo", available[0].Username)
}

func TestUsersServicePartialUpdate(t *testing.T) {
	locked := true

	mux := http.NewServeMux()
	mux.HandleFunc("/users/5", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)

		body, _ := io.ReadAll(r.Body)
		var raw map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &raw))

		// Partial update: omitted optionals must not appear in the body.
		assert.Contains(t, raw, "locked")
		assert.NotContains(t, raw, "disabled")
		assert.NotContains(t, raw, "password")

		_, _ = w.Write([]byte(`{"id":5,"username":"mmora","email":"m@x.ec","locked":true,"role":"ROLE_EVALUADOR"}`))
	})

	svc := NewUsersService(newGateway(t, mux))

	updated, err := svc.Update(context.Background(), 5, UserPayload{
		Username: "mmora",
		Email:    "m@x.ec",
		Locked:   &locked,
		Role:     "ROLE_EVALUADOR",
	})
	require.NoError(t, err)
	assert.True(t, updated.Locked)
}

func TestReportsServiceDownloadOrGenerate(t *testing.T) {
	var generated bool

	mux := http.NewServeMux()
	mux.HandleFunc("/reports/by-evaluation/11", func(w http.ResponseWriter, _ *http.Request) {
		if generated {
			_, _ = w.Write([]byte(`{"data":{"id":2,"evaluationId":11,"coefficient":83.33}}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/reports/generate/11", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		generated = true
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("/reports/download/11", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4 report"))
	})

	svc := NewReportsService(newGateway(t, mux))
	ctx := context.Background()

	pdf, err := svc.DownloadOrGenerate(ctx, 11)
	require.NoError(t, err)
	assert.True(t, generated, "missing report should be generated before download")
	assert.Equal(t, "%PDF-1.4 report", string(pdf))

	// Second call finds the stored report and skips generation.
	generated = true
	report, err := svc.FindByEvaluation(ctx, 11)
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, int64(11), report.EvaluationID)
}

func TestGlobalResultsSnakeCaseLayout(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/global-results", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		body, _ := io.ReadAll(r.Body)
		var raw map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &raw))

		// This endpoint keeps the backend's snake_case quirk.
		assert.Contains(t, raw, "total_months_approved")
		assert.Contains(t, raw, "result_years")

		_, _ = w.Write([]byte(`{"id":8,"creationDate":"2026-03-02","total_months_approved":40.5,"coefficient":95.75,"result_years":"3 años, 6 meses","result_detail":"ok","classification":"Desarrollo adecuado"}`))
	})

	svc := NewGlobalResultsService(newGateway(t, mux))

	created, err := svc.Create(context.Background(), GlobalResultPayload{
		TotalMonthsApproved: 40.5,
		Coefficient:         95.75,
		ResultYears:         "3 años, 6 meses",
		ResultDetail:        "ok",
		Classification:      "Desarrollo adecuado",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(8), created.ID)
	assert.Equal(t, 95.75, created.Coefficient)
}
