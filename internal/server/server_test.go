package server

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	stddec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap/zapcore"

	"github.com/rpgo/retirement-planner/internal/calculation"
	"github.com/rpgo/retirement-planner/internal/config"
	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/rpgo/retirement-planner/internal/store"
)

const referenceBody = `{"currentAge":35,"retirementAge":65,"lifeExpectancy":90,"currentSalary":75000,"currentSavings":150000,"monthlyContribution":1000,"riskTolerance":"moderate"}`

func init() {
	gin.SetMode(gin.TestMode)
}

type MockPlanner struct {
	mock.Mock
}

func (m *MockPlanner) Validate(p domain.FinancialProfile) domain.ValidationErrors {
	args := m.Called(p)
	errs, _ := args.Get(0).(domain.ValidationErrors)
	return errs
}

func (m *MockPlanner) RunPlan(ctx context.Context, p domain.FinancialProfile, id string) (*domain.PlanResult, error) {
	args := m.Called(ctx, p, id)
	result, _ := args.Get(0).(*domain.PlanResult)
	return result, args.Error(1)
}

func (m *MockPlanner) GenerateProjections(p domain.FinancialProfile, r, i stddec.Decimal) []domain.YearlyProjection {
	args := m.Called(p, r, i)
	rows, _ := args.Get(0).([]domain.YearlyProjection)
	return rows
}

type MockRunStore struct {
	mock.Mock
}

func (m *MockRunStore) SaveRun(ctx context.Context, result *domain.PlanResult) (string, error) {
	args := m.Called(ctx, result)
	return args.String(0), args.Error(1)
}

func (m *MockRunStore) GetRun(ctx context.Context, id string) (*store.Run, error) {
	args := m.Called(ctx, id)
	run, _ := args.Get(0).(*store.Run)
	return run, args.Error(1)
}

func (m *MockRunStore) ListRuns(ctx context.Context, limit int) ([]store.RunSummary, error) {
	args := m.Called(ctx, limit)
	runs, _ := args.Get(0).([]store.RunSummary)
	return runs, args.Error(1)
}

func newTestServer(planner Planner, opts ...Option) *gin.Engine {
	cfg := config.DefaultAppConfig().Server
	return New(planner, cfg, opts...).Router()
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func TestHealth(t *testing.T) {
	w := do(newTestServer(calculation.NewCalculationEngine()), http.MethodGet, "/api/retirement/health", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status    string    `json:"status"`
		Timestamp time.Time `json:"timestamp"`
	}
	decode(t, w, &body)
	assert.Equal(t, "healthy", body.Status)
	assert.WithinDuration(t, time.Now(), body.Timestamp, time.Minute)
}

func TestGenerateScenarios(t *testing.T) {
	w := do(newTestServer(calculation.NewCalculationEngine()), http.MethodPost, "/api/retirement/scenarios", referenceBody)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    []struct {
			ID           string                       `json:"id"`
			Label        string                       `json:"label"`
			FinalBalance string                       `json:"finalBalance"`
			SuccessRate  string                       `json:"successRate"`
			Projections  []map[string]json.RawMessage `json:"projections"`
		} `json:"data"`
		RunID *string `json:"runId"`
	}
	decode(t, w, &body)
	assert.True(t, body.Success)
	assert.Nil(t, body.RunID)
	require.Len(t, body.Data, 3)
	assert.Equal(t, []string{"conservative", "moderate", "aggressive"}, []string{body.Data[0].ID, body.Data[1].ID, body.Data[2].ID})
	assert.Equal(t, "5015579.6104078365861228186327261935", body.Data[1].FinalBalance)
	assert.Equal(t, "95", body.Data[1].SuccessRate)
	require.Len(t, body.Data[1].Projections, 55)
	assert.JSONEq(t, `"151874.999999999999999999999995"`, string(body.Data[1].Projections[0]["balance"]))
	assert.JSONEq(t, `"150000"`, string(body.Data[1].Projections[0]["openingBalance"]))
	assert.JSONEq(t, `"10499.99999999999999999999994"`, string(body.Data[1].Projections[0]["investment_return"]))
}

func TestGenerateScenarios_ValidationErrors(t *testing.T) {
	body := `{"currentAge":15,"retirementAge":65,"lifeExpectancy":90,"currentSalary":75000,"currentSavings":-1,"monthlyContribution":1000,"riskTolerance":"moderate"}`
	w := do(newTestServer(calculation.NewCalculationEngine()), http.MethodPost, "/api/retirement/scenarios", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	decode(t, w, &resp)
	assert.Equal(t, map[string]string{
		"currentAge":     "Current age must be at least 18.",
		"currentSavings": "Current savings cannot be negative.",
	}, resp.Errors)
}

func TestGenerateScenarios_MissingBody(t *testing.T) {
	r := newTestServer(calculation.NewCalculationEngine())
	for _, body := range []string{"", "null", "{not json", "   "} {
		w := do(r, http.MethodPost, "/api/retirement/scenarios", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
		assert.JSONEq(t, `{"error":"User financial data is required."}`, w.Body.String())
	}
}

func TestGenerateScenarios_RecordsRun(t *testing.T) {
	runs := new(MockRunStore)
	runs.On("SaveRun", mock.Anything, mock.AnythingOfType("*domain.PlanResult")).Return("run-1", nil).Once()

	w := do(newTestServer(calculation.NewCalculationEngine(), WithRunStore(runs)), http.MethodPost, "/api/retirement/scenarios", referenceBody)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		RunID string `json:"runId"`
	}
	decode(t, w, &body)
	assert.Equal(t, "run-1", body.RunID)
	runs.AssertExpectations(t)
}

func TestGenerateScenarios_StoreFailureIsNotFatal(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	runs := new(MockRunStore)
	runs.On("SaveRun", mock.Anything, mock.Anything).Return("", errors.New("disk full"))

	r := newTestServer(calculation.NewCalculationEngine(), WithRunStore(runs), WithLogger(zap.New(core)))
	w := do(r, http.MethodPost, "/api/retirement/scenarios", referenceBody)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "runId")
	assert.Equal(t, 1, logs.FilterMessage("failed to record run").Len())
}

func TestGenerateScenarios_InternalError(t *testing.T) {
	planner := new(MockPlanner)
	planner.On("RunPlan", mock.Anything, mock.Anything, "").Return(nil, errors.New("boom"))

	w := do(newTestServer(planner), http.MethodPost, "/api/retirement/scenarios", referenceBody)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"An error occurred while generating scenarios.","details":"boom"}`, w.Body.String())
}

func TestGenerateScenarios_Timeout(t *testing.T) {
	planner := new(MockPlanner)
	planner.On("RunPlan", mock.Anything, mock.Anything, "").
		Return(nil, errors.Join(errors.New("generate scenarios"), context.DeadlineExceeded))

	w := do(newTestServer(planner), http.MethodPost, "/api/retirement/scenarios", referenceBody)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGenerateProjections(t *testing.T) {
	body := `{"userFinancialData":` + referenceBody + `,"returnRate":7,"inflationRate":3}`
	w := do(newTestServer(calculation.NewCalculationEngine()), http.MethodPost, "/api/retirement/projections", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                      `json:"success"`
		Data    []domain.YearlyProjection `json:"data"`
	}
	decode(t, w, &resp)
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 55)
	assert.Equal(t, "2437445.6170798741162401617474687864", resp.Data[30].OpeningBalance.Exact())
	assert.Equal(t, "5015579.6104078365861228186327261935", resp.Data[54].Balance.Exact())
}

func TestGenerateProjections_BadRequests(t *testing.T) {
	r := newTestServer(calculation.NewCalculationEngine())

	w := do(r, http.MethodPost, "/api/retirement/projections", `{"returnRate":7,"inflationRate":3}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"User financial data is required."}`, w.Body.String())

	w = do(r, http.MethodPost, "/api/retirement/projections", `{"userFinancialData":{"currentAge":40,"retirementAge":30,"lifeExpectancy":90,"riskTolerance":"moderate"},"returnRate":7,"inflationRate":3}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Retirement age must be greater than current age.")
}

func TestDashboardMetrics(t *testing.T) {
	r := newTestServer(calculation.NewCalculationEngine())

	tests := []struct {
		query     string
		wantID    string
		wantFinal string
	}{
		{"", "moderate", "5015579.6104078365861228186327261935"},
		{"?scenario=aggressive", "aggressive", "17213801.5988855421187667127414360091"},
		{"?scenario=unknown", "moderate", "5015579.6104078365861228186327261935"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := do(r, http.MethodPost, "/api/retirement/metrics"+tt.query, referenceBody)
			require.Equal(t, http.StatusOK, w.Code)

			var resp struct {
				ScenarioID string                  `json:"scenarioId"`
				Data       domain.DashboardMetrics `json:"data"`
			}
			decode(t, w, &resp)
			assert.Equal(t, tt.wantID, resp.ScenarioID)
			assert.Equal(t, tt.wantFinal, resp.Data.ProjectedRetirementBalance.Exact())
			assert.Equal(t, 30, resp.Data.YearsToRetirement)
			assert.Equal(t, 25, resp.Data.RetirementDuration)
		})
	}
}

func TestRuns_NotRegisteredWithoutStore(t *testing.T) {
	w := do(newTestServer(calculation.NewCalculationEngine()), http.MethodGet, "/api/retirement/runs", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListRuns(t *testing.T) {
	runs := new(MockRunStore)
	runs.On("ListRuns", mock.Anything, 50).Return([]store.RunSummary{{ID: "a"}, {ID: "b"}}, nil).Once()
	runs.On("ListRuns", mock.Anything, 1).Return([]store.RunSummary{{ID: "a"}}, nil).Once()
	r := newTestServer(calculation.NewCalculationEngine(), WithRunStore(runs))

	w := do(r, http.MethodGet, "/api/retirement/runs", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []store.RunSummary `json:"data"`
	}
	decode(t, w, &resp)
	assert.Len(t, resp.Data, 2)

	w = do(r, http.MethodGet, "/api/retirement/runs?limit=1", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/retirement/runs?limit=-4", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	runs.AssertExpectations(t)
}

func TestGetRun(t *testing.T) {
	runs := new(MockRunStore)
	runs.On("GetRun", mock.Anything, "known").Return(&store.Run{ID: "known"}, nil)
	runs.On("GetRun", mock.Anything, "missing").Return(nil, store.ErrNotFound)
	runs.On("GetRun", mock.Anything, "broken").Return(nil, errors.New("database is locked"))
	r := newTestServer(calculation.NewCalculationEngine(), WithRunStore(runs))

	w := do(r, http.MethodGet, "/api/retirement/runs/known", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"known"`)

	w = do(r, http.MethodGet, "/api/retirement/runs/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Run not found."}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/retirement/runs/broken", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "database is locked")
}

func TestRunHistory_WithSQLiteStore(t *testing.T) {
	s, err := store.Open(t.TempDir() + "/runs.db")
	require.NoError(t, err)
	defer s.Close()
	r := newTestServer(calculation.NewCalculationEngine(), WithRunStore(s))

	w := do(r, http.MethodPost, "/api/retirement/scenarios", referenceBody)
	require.Equal(t, http.StatusOK, w.Code)
	var created struct {
		RunID string `json:"runId"`
	}
	decode(t, w, &created)
	require.NotEmpty(t, created.RunID)

	w = do(r, http.MethodGet, "/api/retirement/runs/"+created.RunID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var fetched struct {
		Data store.Run `json:"data"`
	}
	decode(t, w, &fetched)
	assert.Equal(t, created.RunID, fetched.Data.ID)
	require.Len(t, fetched.Data.Result.Scenarios, 3)
	assert.Equal(t, "5015579.6104078365861228186327261935", fetched.Data.Result.Scenarios[1].FinalBalance.Exact())
}
