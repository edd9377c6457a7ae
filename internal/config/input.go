package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rpgo/retirement-planner/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of financial profile files
type InputParser struct {
	validator ProfileValidator
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadProfileFromFile loads a financial profile from a YAML or JSON file and
// validates it. Validation failures are returned as domain.ValidationErrors.
func (ip *InputParser) LoadProfileFromFile(filename string) (*domain.FinancialProfile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	profile, err := ip.ParseProfile(data, formatFromExtension(filename))
	if err != nil {
		return nil, err
	}

	if errs := ip.ValidateProfile(profile); !errs.Valid() {
		return nil, fmt.Errorf("profile validation failed: %w", errs)
	}

	return profile, nil
}

// ParseProfile decodes a profile without validating it. format is "json" or
// "yaml"; anything else is treated as YAML.
func (ip *InputParser) ParseProfile(data []byte, format string) (*domain.FinancialProfile, error) {
	var profile domain.FinancialProfile
	if format == "json" {
		if err := json.Unmarshal(data, &profile); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		return &profile, nil
	}
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &profile, nil
}

// ValidateProfile validates the loaded profile
func (ip *InputParser) ValidateProfile(profile *domain.FinancialProfile) domain.ValidationErrors {
	if profile == nil {
		return domain.ValidationErrors{"profile": "User financial data is required."}
	}
	return ip.validator.Validate(*profile)
}

// CreateExampleProfile creates the starter profile written by `rpgo example`
func (ip *InputParser) CreateExampleProfile() *domain.FinancialProfile {
	p := domain.DefaultProfile()
	return &p
}

// SaveProfile writes a profile as YAML, or JSON when filename ends in .json
func (ip *InputParser) SaveProfile(profile *domain.FinancialProfile, filename string) error {
	var (
		b   []byte
		err error
	)
	if formatFromExtension(filename) == "json" {
		b, err = json.MarshalIndent(profile, "", "  ")
	} else {
		b, err = yaml.Marshal(profile)
	}
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	return os.WriteFile(filename, b, 0644)
}

func formatFromExtension(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return "json"
	case ".toml":
		return "toml"
	default:
		return "yaml"
	}
}
