package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/retirement-planner/internal/domain"
)

// CSVDetailedExporter provides raw annual projection detail per scenario/year.
// Amounts keep full precision so the file can be reconciled with the JSON output.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string      { return "detailed-csv" }
func (c CSVDetailedExporter) Extension() string { return "csv" }

func (c CSVDetailedExporter) Format(result *domain.PlanResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "Age", "OpeningBalance", "Contribution", "InvestmentReturn", "Withdrawal", "Balance", "IsRetired"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range result.Scenarios {
		for _, yr := range sc.Projections {
			row := []string{
				sc.ID,
				intToString(yr.Year),
				intToString(yr.Age),
				yr.OpeningBalance.Exact(),
				yr.Contribution.Exact(),
				yr.InvestmentReturn.Exact(),
				yr.Withdrawal.Exact(),
				yr.Balance.Exact(),
				boolToString(yr.Age >= result.Profile.RetirementAge),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
