package monitor

import (
	"github.com/fabwise/equipment-mgmt/internal/pkg/infrastructure/repositories/database"
)

// Severity is the classification of a single metric value. It is distinct
// from the stored equipment status: severities exist only within a detection
// cycle, statuses live in the equipment table.
type Severity int

const (
	SeverityNormal Severity = iota
	SeverityWarning
	SeverityCritical
	SeverityEmergency
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	case SeverityEmergency:
		return "emergency"
	default:
		return "normal"
	}
}

// Status maps a detected severity onto the equipment status it drives the
// state machine towards. The mapping is total: anything unrecognized maps to
// the normal status.
func (s Severity) Status() string {
	switch s {
	case SeverityWarning:
		return database.StatusWarning
	case SeverityCritical:
		return database.StatusCritical
	case SeverityEmergency:
		return database.StatusEmergency
	default:
		return database.StatusNormal
	}
}
