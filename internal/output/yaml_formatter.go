package output

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/rpgo/retirement-planner/internal/domain"
)

// YAMLFormatter serializes the plan result using the same snake_case keys as
// profile input files.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string      { return "yaml" }
func (y YAMLFormatter) Extension() string { return "yaml" }

func (y YAMLFormatter) Format(result *domain.PlanResult) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(result); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
