package output

import (
	"github.com/goccy/go-json"

	"github.com/rpgo/retirement-planner/internal/domain"
)

// JSONFormatter serializes the plan result as pretty-printed JSON. Money
// values keep full precision as quoted strings.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

func (j JSONFormatter) Format(result *domain.PlanResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
