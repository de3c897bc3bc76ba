package reader

import (
	"encoding/json"
	"fmt"
	"os"
)

// Severity labels the static-analysis report uses.
const (
	SeverityError   = "ERROR"
	SeverityWarning = "WARNING"
)

// Alert is one static-analysis finding.
type Alert struct {
	Path     string `json:"path"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

type rawAlert struct {
	Path     *string `json:"path"`
	Message  *string `json:"message"`
	Severity *string `json:"severity"`
}

// ReadAlerts parses the static-analysis report at path. The report must be
// a JSON array; elements missing a field or of the wrong shape are skipped
// while their siblings are kept.
func ReadAlerts(path string) Result[[]Alert] {
	data, err := os.ReadFile(path)
	if err != nil {
		return Absent[[]Alert](fmt.Errorf("read alert report %s: %w", path, err))
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return Absent[[]Alert](fmt.Errorf("parse alert report: %w", err))
	}

	alerts := make([]Alert, 0, len(elems))
	for _, elem := range elems {
		var raw rawAlert
		if err := json.Unmarshal(elem, &raw); err != nil {
			continue
		}
		if raw.Path == nil || raw.Message == nil || raw.Severity == nil {
			continue
		}
		alerts = append(alerts, Alert{
			Path:     *raw.Path,
			Message:  *raw.Message,
			Severity: *raw.Severity,
		})
	}
	return Present(alerts)
}
