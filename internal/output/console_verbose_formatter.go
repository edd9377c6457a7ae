package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rpgo/retirement-planner/internal/domain"
)

// Theme colors
var (
	colorBorder = lipgloss.Color("#282726")
	colorText   = lipgloss.Color("#FFFCF0")
	colorMuted  = lipgloss.Color("#6F6E69")
	colorAccent = lipgloss.Color("#3AA99F")
	colorGreen  = lipgloss.Color("#879A39")
	colorRed    = lipgloss.Color("#D14D41")
)

// ConsoleVerboseFormatter renders the detailed console report: plan inputs,
// assumptions, a scenario comparison and the yearly table of every scenario.
// A nil Renderer uses lipgloss' default, which drops colors when the output
// is not a terminal.
type ConsoleVerboseFormatter struct {
	Renderer *lipgloss.Renderer
}

func (c ConsoleVerboseFormatter) Name() string      { return "console" }
func (c ConsoleVerboseFormatter) Extension() string { return "txt" }

func (c ConsoleVerboseFormatter) Format(result *domain.PlanResult) ([]byte, error) {
	r := c.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	title := r.NewStyle().
		Bold(true).
		Foreground(colorText).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)
	header := r.NewStyle().Bold(true).Foreground(colorAccent)
	muted := r.NewStyle().Foreground(colorMuted)
	good := r.NewStyle().Foreground(colorGreen)
	bad := r.NewStyle().Foreground(colorRed)

	var buf bytes.Buffer
	p := result.Profile

	fmt.Fprintln(&buf, title.Render("RETIREMENT PROJECTION REPORT"))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, header.Render("PROFILE"))
	fmt.Fprintf(&buf, "  Age %d, retiring at %d, planning to %d (%d working years, %d retired)\n",
		p.CurrentAge, p.RetirementAge, p.LifeExpectancy, p.YearsToRetirement(), p.YearsInRetirement())
	fmt.Fprintf(&buf, "  Salary:               %s\n", FormatCurrency(p.CurrentSalary.Decimal))
	fmt.Fprintf(&buf, "  Current savings:      %s\n", FormatCurrency(p.CurrentSavings.Decimal))
	fmt.Fprintf(&buf, "  Monthly contribution: %s\n", FormatCurrency(p.MonthlyContribution.Decimal))
	fmt.Fprintf(&buf, "  Risk tolerance:       %s\n", p.RiskTolerance)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, header.Render("KEY ASSUMPTIONS"))
	for _, a := range GenerateAssumptions(result.Scenarios) {
		fmt.Fprintf(&buf, "  • %s\n", a)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, header.Render("SCENARIO COMPARISON"))
	fmt.Fprintf(&buf, "  %-42s %18s %18s %18s\n", "Scenario", "At Retirement", "Final Balance", "vs Selected")
	fmt.Fprintf(&buf, "  %s\n", muted.Render(strings.Repeat("-", 99)))
	for _, a := range AnalyzeScenarios(result) {
		label := a.Label
		if a.ScenarioID == result.SelectedScenarioID {
			label += " *"
		}
		final := fmt.Sprintf("%18s", FormatCurrency(a.FinalBalance.Decimal))
		if a.FinalBalance.IsPositive() {
			final = good.Render(final)
		} else {
			final = bad.Render(final)
		}
		fmt.Fprintf(&buf, "  %-42s %18s %s %18s\n", label,
			FormatCurrency(a.BalanceAtRetirement.Decimal), final, FormatPercentage(a.PercentVsSelected))
		if a.DepletionAge > 0 {
			fmt.Fprintf(&buf, "  %s\n", bad.Render(fmt.Sprintf("    savings run out at age %d", a.DepletionAge)))
		}
	}
	fmt.Fprintln(&buf)

	m := result.Metrics
	fmt.Fprintln(&buf, header.Render("DASHBOARD"))
	fmt.Fprintf(&buf, "  Selected scenario:        %s\n", result.SelectedScenarioID)
	fmt.Fprintf(&buf, "  Projected final balance:  %s\n", FormatCurrency(m.ProjectedRetirementBalance.Decimal))
	fmt.Fprintf(&buf, "  Success probability:      %s\n", FormatPercentage(m.SuccessProbability))
	fmt.Fprintln(&buf)

	for i, sc := range result.Scenarios {
		fmt.Fprintln(&buf, header.Render(fmt.Sprintf("SCENARIO %d: %s", i+1, sc.Label)))
		fmt.Fprintf(&buf, "  %4s %4s %16s %14s %14s %14s %16s\n",
			"Year", "Age", "Opening", "Contribution", "Return", "Withdrawal", "Balance")
		for _, yr := range sc.Projections {
			fmt.Fprintf(&buf, "  %4d %4d %16s %14s %14s %14s %16s\n",
				yr.Year, yr.Age,
				FormatCurrency(yr.OpeningBalance.Decimal),
				FormatCurrency(yr.Contribution.Decimal),
				FormatCurrency(yr.InvestmentReturn.Decimal),
				FormatCurrency(yr.Withdrawal.Decimal),
				FormatCurrency(yr.Balance.Decimal))
		}
		fmt.Fprintln(&buf)
	}
	fmt.Fprintln(&buf, muted.Render("Yearly amounts are the first month of each year scaled to twelve months."))

	return buf.Bytes(), nil
}
