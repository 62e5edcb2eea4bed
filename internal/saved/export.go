package saved

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/spigell/resume-insight/internal/compare"
	"github.com/spigell/resume-insight/internal/report"
)

// Exporter writes rendered comparisons to files.
type Exporter struct {
	Registry *report.Registry
	Logger   *zap.Logger
	// Dir is where files are created. Empty means the system temp dir.
	Dir string
}

// Export renders c in format and writes it to a new file, returning its path.
// The selection must pass the export check.
func (e *Exporter) Export(sel compare.Selection, c report.Comparison, format string) (string, error) {
	if err := compare.Validate(sel, compare.ActionExport); err != nil {
		return "", err
	}

	registry := e.Registry
	if registry == nil {
		registry = report.NewRegistry()
	}

	f, err := registry.Lookup(format)
	if err != nil {
		return "", err
	}

	out, err := f.Format(c)
	if err != nil {
		return "", fmt.Errorf("rendering %s export: %w", format, err)
	}

	file, err := os.CreateTemp(e.Dir, "comparison_*."+f.Extension())
	if err != nil {
		return "", err
	}
	defer file.Close()

	if _, err := file.WriteString(out); err != nil {
		return "", err
	}

	if e.Logger != nil {
		e.Logger.Info("comparison exported",
			zap.String("path", file.Name()),
			zap.String("format", format),
			zap.Strings("resumes", sel.IDs()),
		)
	}

	return file.Name(), nil
}
