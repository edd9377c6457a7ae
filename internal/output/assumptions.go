package output

import (
	"fmt"

	"github.com/rpgo/retirement-planner/internal/domain"
)

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Returns and inflation compound monthly",
	"Contributions stop at retirement",
	"Initial withdrawal: 4% of the projected retirement balance per year",
	"Withdrawals grow with inflation every month of retirement",
	"Yearly rows show the first month of each year scaled to twelve months",
}

// GenerateAssumptions appends one line per scenario describing its market assumptions.
func GenerateAssumptions(scenarios []domain.Scenario) []string {
	out := append([]string(nil), DefaultAssumptions...)
	for _, sc := range scenarios {
		out = append(out, fmt.Sprintf("%s: %s%% annual return, %s%% annual inflation",
			sc.Name, sc.ReturnRate.String(), sc.InflationRate.String()))
	}
	return out
}
