package store

// Amounts and rates are TEXT so decimals survive the round trip exactly.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
    run_id                 TEXT PRIMARY KEY,
    created_at             TEXT NOT NULL,
    current_age            INTEGER NOT NULL,
    retirement_age         INTEGER NOT NULL,
    life_expectancy        INTEGER NOT NULL,
    current_salary         TEXT NOT NULL,
    current_savings        TEXT NOT NULL,
    monthly_contribution   TEXT NOT NULL,
    risk_tolerance         TEXT NOT NULL,
    selected_scenario      TEXT NOT NULL,
    projected_balance      TEXT NOT NULL,
    success_probability    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS run_scenarios (
    run_id                 TEXT NOT NULL REFERENCES runs(run_id) ON DELETE CASCADE,
    scenario_id            TEXT NOT NULL,
    position               INTEGER NOT NULL,
    name                   TEXT NOT NULL,
    label                  TEXT NOT NULL,
    return_rate            TEXT NOT NULL,
    inflation_rate         TEXT NOT NULL,
    final_balance          TEXT NOT NULL,
    success_rate           TEXT NOT NULL,
    PRIMARY KEY (run_id, scenario_id)
);

CREATE TABLE IF NOT EXISTS run_projections (
    run_id                 TEXT NOT NULL,
    scenario_id            TEXT NOT NULL,
    year                   INTEGER NOT NULL,
    age                    INTEGER NOT NULL,
    opening_balance        TEXT NOT NULL,
    balance                TEXT NOT NULL,
    contribution           TEXT NOT NULL,
    investment_return      TEXT NOT NULL,
    withdrawal             TEXT NOT NULL,
    PRIMARY KEY (run_id, scenario_id, year),
    FOREIGN KEY (run_id, scenario_id) REFERENCES run_scenarios(run_id, scenario_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
`
