package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	stddec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/retirement-planner/internal/calculation"
	"github.com/rpgo/retirement-planner/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func runPlan(t *testing.T, scenarioID string) *domain.PlanResult {
	t.Helper()
	result, err := calculation.NewCalculationEngine().RunPlan(context.Background(), domain.DefaultProfile(), scenarioID)
	require.NoError(t, err)
	return result
}

func TestSaveAndGetRun_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	plan := runPlan(t, "")

	id, err := s.SaveRun(ctx, plan)
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	require.NoError(t, err)

	run, err := s.GetRun(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, run.ID)
	assert.WithinDuration(t, time.Now(), run.CreatedAt, time.Minute)

	if diff := cmp.Diff(*plan, run.Result, cmp.Comparer(func(a, b stddec.Decimal) bool { return a.Equal(b) })); diff != "" {
		t.Errorf("stored run differs (-want +got):\n%s", diff)
	}
	// exact text survives storage
	assert.Equal(t, "151874.999999999999999999999995", run.Result.Scenarios[1].Projections[0].Balance.Exact())
	assert.Equal(t, "2.5", run.Result.Scenarios[0].InflationRate.String())
}

func TestGetRun_NotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.GetRun(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListRuns_NewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	var ids []string
	for i, scenario := range []string{domain.ScenarioConservative, domain.ScenarioModerate, domain.ScenarioAggressive} {
		at := base.Add(time.Duration(i) * time.Hour)
		s.now = func() time.Time { return at }
		id, err := s.SaveRun(ctx, runPlan(t, scenario))
		require.NoError(t, err)
		ids = append(ids, id)
	}

	runs, err := s.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, []string{ids[2], ids[1], ids[0]}, []string{runs[0].ID, runs[1].ID, runs[2].ID})
	assert.Equal(t, domain.ScenarioAggressive, runs[0].SelectedScenarioID)
	assert.Equal(t, "17213801.5988855421187667127414360091", runs[0].ProjectedRetirementBalance.Exact())
	assert.True(t, runs[0].CreatedAt.Equal(base.Add(2*time.Hour)))
	assert.Equal(t, 35, runs[0].Profile.CurrentAge)
	assert.Equal(t, "150000", runs[0].Profile.CurrentSavings.Exact())

	limited, err := s.ListRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestListRuns_Empty(t *testing.T) {
	runs, err := openTestStore(t).ListRuns(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, runs)
	assert.Empty(t, runs)
}

func TestSaveRun_CancelledContext(t *testing.T) {
	s := openTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.SaveRun(ctx, runPlan(t, ""))
	assert.Error(t, err)

	runs, err := s.ListRuns(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
