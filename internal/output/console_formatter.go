package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/retirement-planner/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console-lite" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(result *domain.PlanResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "RETIREMENT SCENARIO SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Current Savings: %s  Monthly Contribution: %s\n",
		FormatCurrency(result.Profile.CurrentSavings.Decimal),
		FormatCurrency(result.Profile.MonthlyContribution.Decimal))
	fmt.Fprintln(&buf)
	for _, a := range AnalyzeScenarios(result) {
		marker := " "
		if a.ScenarioID == result.SelectedScenarioID {
			marker = "*"
		}
		fmt.Fprintf(&buf, "%s %s: AtRetirement=%s Final=%s", marker, a.Label,
			FormatCurrency(a.BalanceAtRetirement.Decimal), FormatCurrency(a.FinalBalance.Decimal))
		if a.DepletionAge > 0 {
			fmt.Fprintf(&buf, " DepletedAt=%d", a.DepletionAge)
		}
		fmt.Fprintln(&buf)
	}
	m := result.Metrics
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Selected: %s  Success=%s  YearsToRetirement=%d  RetirementDuration=%d\n",
		result.SelectedScenarioID, FormatPercentage(m.SuccessProbability), m.YearsToRetirement, m.RetirementDuration)
	return buf.Bytes(), nil
}
