package output

import (
	"fmt"
	"io"

	"github.com/rpgo/retirement-planner/internal/domain"
)

// GenerateReport renders result in the named format and writes it to w.
func GenerateReport(w io.Writer, result *domain.PlanResult, format string) error {
	f, err := LookupFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(result)
	if err != nil {
		return fmt.Errorf("format %s: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// ExportReport writes result to a timestamped file in dir. The format "all"
// writes the console, detailed CSV and JSON reports.
func ExportReport(result *domain.PlanResult, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, f := range []Formatter{ConsoleVerboseFormatter{}, CSVDetailedExporter{}, JSONFormatter{}} {
			name, err := WriteFormatted(f, result, dir)
			if err != nil {
				return files, err
			}
			files = append(files, name)
		}
		return files, nil
	}

	f, err := LookupFormatter(format)
	if err != nil {
		return nil, err
	}
	name, err := WriteFormatted(f, result, dir)
	if err != nil {
		return nil, err
	}
	return []string{name}, nil
}
