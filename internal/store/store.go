// Package store provides a SQLite-backed history of plan runs.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	stddec "github.com/shopspring/decimal"

	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/rpgo/retirement-planner/pkg/decimal"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrNotFound is returned when a run id is unknown.
var ErrNotFound = errors.New("run not found")

// timeLayout is fixed width so created_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Run is a stored plan result.
type Run struct {
	ID        string            `json:"id"`
	CreatedAt time.Time         `json:"createdAt"`
	Result    domain.PlanResult `json:"result"`
}

// RunSummary is the list view of a stored run.
type RunSummary struct {
	ID                         string                  `json:"id"`
	CreatedAt                  time.Time               `json:"createdAt"`
	Profile                    domain.FinancialProfile `json:"profile"`
	SelectedScenarioID         string                  `json:"selectedScenarioId"`
	ProjectedRetirementBalance decimal.Money           `json:"projectedRetirementBalance"`
	SuccessProbability         stddec.Decimal          `json:"successProbability"`
}

// Store persists plan runs in SQLite.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the run database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening store db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun stores a plan result with all its scenarios and yearly rows and
// returns the new run id.
func (s *Store) SaveRun(ctx context.Context, result *domain.PlanResult) (string, error) {
	id := uuid.NewString()
	createdAt := s.now().UTC().Format(timeLayout)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	p := result.Profile
	m := result.Metrics
	_, err = tx.ExecContext(ctx, `INSERT INTO runs
		(run_id, created_at, current_age, retirement_age, life_expectancy,
		 current_salary, current_savings, monthly_contribution, risk_tolerance,
		 selected_scenario, projected_balance, success_probability)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, createdAt, p.CurrentAge, p.RetirementAge, p.LifeExpectancy,
		p.CurrentSalary.Exact(), p.CurrentSavings.Exact(), p.MonthlyContribution.Exact(), string(p.RiskTolerance),
		result.SelectedScenarioID, m.ProjectedRetirementBalance.Exact(), m.SuccessProbability.String(),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	for pos, sc := range result.Scenarios {
		_, err = tx.ExecContext(ctx, `INSERT INTO run_scenarios
			(run_id, scenario_id, position, name, label, return_rate, inflation_rate, final_balance, success_rate)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, sc.ID, pos, sc.Name, sc.Label, sc.ReturnRate.String(), sc.InflationRate.String(),
			sc.FinalBalance.Exact(), sc.SuccessRate.String(),
		)
		if err != nil {
			return "", fmt.Errorf("insert scenario %s: %w", sc.ID, err)
		}

		for _, yr := range sc.Projections {
			_, err = tx.ExecContext(ctx, `INSERT INTO run_projections
				(run_id, scenario_id, year, age, opening_balance, balance, contribution, investment_return, withdrawal)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				id, sc.ID, yr.Year, yr.Age, yr.OpeningBalance.Exact(), yr.Balance.Exact(),
				yr.Contribution.Exact(), yr.InvestmentReturn.Exact(), yr.Withdrawal.Exact(),
			)
			if err != nil {
				return "", fmt.Errorf("insert projection %s/%d: %w", sc.ID, yr.Year, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

const runColumns = `run_id, created_at, current_age, retirement_age, life_expectancy,
	current_salary, current_savings, monthly_contribution, risk_tolerance,
	selected_scenario, projected_balance, success_probability`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRunSummary(row rowScanner) (RunSummary, error) {
	var rs RunSummary
	var createdAt, salary, savings, contribution, risk, projected, success string
	err := row.Scan(
		&rs.ID, &createdAt, &rs.Profile.CurrentAge, &rs.Profile.RetirementAge, &rs.Profile.LifeExpectancy,
		&salary, &savings, &contribution, &risk,
		&rs.SelectedScenarioID, &projected, &success,
	)
	if err != nil {
		return rs, err
	}

	if rs.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return rs, fmt.Errorf("run %s: created_at: %w", rs.ID, err)
	}
	rs.Profile.RiskTolerance = domain.RiskTolerance(risk)

	d := decoder{}
	rs.Profile.CurrentSalary = d.money(salary)
	rs.Profile.CurrentSavings = d.money(savings)
	rs.Profile.MonthlyContribution = d.money(contribution)
	rs.ProjectedRetirementBalance = d.money(projected)
	rs.SuccessProbability = d.decimal(success)
	if d.err != nil {
		return rs, fmt.Errorf("run %s: %w", rs.ID, d.err)
	}
	return rs, nil
}

// ListRuns returns the most recent runs first. A non-positive limit lists all runs.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+runColumns+` FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	runs := []RunSummary{}
	for rows.Next() {
		rs, err := scanRunSummary(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, rs)
	}
	return runs, rows.Err()
}

// GetRun loads a run with every scenario and yearly row. Unknown ids yield ErrNotFound.
func (s *Store) GetRun(ctx context.Context, id string) (*Run, error) {
	rs, err := scanRunSummary(s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE run_id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	scenarios, err := s.loadScenarios(ctx, id)
	if err != nil {
		return nil, err
	}

	p := rs.Profile
	return &Run{
		ID:        rs.ID,
		CreatedAt: rs.CreatedAt,
		Result: domain.PlanResult{
			Profile:            p,
			Scenarios:          scenarios,
			SelectedScenarioID: rs.SelectedScenarioID,
			Metrics: domain.DashboardMetrics{
				CurrentBalance:             p.CurrentSavings,
				MonthlyContribution:        p.MonthlyContribution,
				ProjectedRetirementBalance: rs.ProjectedRetirementBalance,
				YearsToRetirement:          p.YearsToRetirement(),
				RetirementDuration:         p.YearsInRetirement(),
				SuccessProbability:         rs.SuccessProbability,
			},
		},
	}, nil
}

func (s *Store) loadScenarios(ctx context.Context, runID string) ([]domain.Scenario, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT
		scenario_id, name, label, return_rate, inflation_rate, final_balance, success_rate
		FROM run_scenarios WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var scenarios []domain.Scenario
	index := make(map[string]int)
	for rows.Next() {
		var sc domain.Scenario
		var rate, inflation, final, success string
		if err := rows.Scan(&sc.ID, &sc.Name, &sc.Label, &rate, &inflation, &final, &success); err != nil {
			return nil, err
		}
		d := decoder{}
		sc.ReturnRate = d.decimal(rate)
		sc.InflationRate = d.decimal(inflation)
		sc.FinalBalance = d.money(final)
		sc.SuccessRate = d.decimal(success)
		if d.err != nil {
			return nil, fmt.Errorf("scenario %s: %w", sc.ID, d.err)
		}
		sc.Projections = []domain.YearlyProjection{}
		index[sc.ID] = len(scenarios)
		scenarios = append(scenarios, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	projRows, err := s.db.QueryContext(ctx, `SELECT
		scenario_id, year, age, opening_balance, balance, contribution, investment_return, withdrawal
		FROM run_projections WHERE run_id = ? ORDER BY scenario_id, year`, runID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = projRows.Close() }()

	for projRows.Next() {
		var scenarioID string
		var yr domain.YearlyProjection
		var opening, balance, contribution, ret, withdrawal string
		if err := projRows.Scan(&scenarioID, &yr.Year, &yr.Age, &opening, &balance, &contribution, &ret, &withdrawal); err != nil {
			return nil, err
		}
		d := decoder{}
		yr.OpeningBalance = d.money(opening)
		yr.Balance = d.money(balance)
		yr.Contribution = d.money(contribution)
		yr.InvestmentReturn = d.money(ret)
		yr.Withdrawal = d.money(withdrawal)
		if d.err != nil {
			return nil, fmt.Errorf("projection %s/%d: %w", scenarioID, yr.Year, d.err)
		}
		if i, ok := index[scenarioID]; ok {
			scenarios[i].Projections = append(scenarios[i].Projections, yr)
		}
	}
	return scenarios, projRows.Err()
}

// decoder parses TEXT columns, keeping the first error.
type decoder struct {
	err error
}

func (d *decoder) decimal(s string) stddec.Decimal {
	v, err := stddec.NewFromString(s)
	if err != nil && d.err == nil {
		d.err = err
	}
	return v
}

func (d *decoder) money(s string) decimal.Money {
	return decimal.NewMoneyFromDecimal(d.decimal(s))
}
