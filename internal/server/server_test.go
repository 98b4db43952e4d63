package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/projection-calculator/internal/calculation"
	"github.com/rpgo/projection-calculator/internal/domain"
)

func newTestServer() *Server {
	return New(calculation.NewCalculationEngine(), nil)
}

func post(t *testing.T, srv *Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	srv := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestProjectEndpoint(t *testing.T) {
	rec := post(t, newTestServer(), "/api/v1/project", `{
		"initial_amount": "0",
		"base_contribution": "100",
		"annual_return_rate": 0,
		"target": "600",
		"horizon_years": 1,
		"contribute_at_start": true,
		"contribution_policy": {"kind": "constant"}
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var result domain.ProjectionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Len(t, result.Series, 13)
	require.NotNil(t, result.TargetReachedMonth)
	assert.Equal(t, 6, *result.TargetReachedMonth)
}

func TestPlanEndpoint(t *testing.T) {
	rec := post(t, newTestServer(), "/api/v1/plan", `{
		"base_contribution": "100",
		"target": "12000",
		"horizon_years": 10,
		"contribute_at_start": true,
		"contribution_policy": {"kind": "constant"}
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var plan domain.PlanSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plan))
	assert.Equal(t, 120, plan.HorizonMonths)
	assert.InEpsilon(t, 100, plan.RequiredContribution.InexactFloat64(), 1e-6)
	require.NotNil(t, plan.RequiredAnnualRate)
	assert.InDelta(t, 0, *plan.RequiredAnnualRate, 1e-4)
}

func TestSensitivityEndpoint(t *testing.T) {
	rec := post(t, newTestServer(), "/api/v1/sensitivity", `{
		"parameters": {
			"initial_amount": "10000",
			"base_contribution": "500",
			"annual_return_rate": 0.06,
			"target": "100000",
			"horizon_years": 10,
			"contribute_at_start": true,
			"contribution_policy": {"kind": "constant"}
		},
		"grid": {
			"rate_offsets": [-0.01, 0, 0.01],
			"contribution_scales": [1.0]
		}
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var grid domain.SensitivityGrid
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &grid))
	require.Len(t, grid.Cells, 3)
	assert.Len(t, grid.Cells[0], 1)
}

func TestMalformedBody(t *testing.T) {
	rec := post(t, newTestServer(), "/api/v1/project", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid JSON body")
}
