package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/retirement-planner/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "csv" }
func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(result *domain.PlanResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Label", "ReturnRate", "InflationRate", "Years", "BalanceAtRetirement", "FinalBalance", "SuccessRate", "Selected"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range result.Scenarios {
		row := []string{
			sc.ID,
			sc.Label,
			sc.ReturnRate.String(),
			sc.InflationRate.String(),
			intToString(len(sc.Projections)),
			balanceAtRetirement(result.Profile, sc).String(),
			sc.FinalBalance.String(),
			sc.SuccessRate.String(),
			boolToString(sc.ID == result.SelectedScenarioID),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
