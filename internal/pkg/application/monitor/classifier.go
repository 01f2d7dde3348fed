package monitor

import (
	"github.com/fabwise/equipment-mgmt/internal/pkg/infrastructure/repositories/database"
)

// Classify evaluates a metric value against its threshold bands. The tiers
// are checked independently and in fixed priority order, first match wins:
//
//  1. emergency: one-sided strict breach of the configured bound
//  2. critical: inclusive band membership, both bounds required
//  3. warning: inclusive band membership, both bounds required
//
// Bands come straight from domain experts and may overlap or leave gaps.
// The classifier makes no attempt to derive or repair a nested model from
// them. A tier with missing bounds never fires.
func Classify(value float64, t database.MetricThreshold) Severity {
	if t.EmergencyOp == ">" && t.EmergencyMax != nil && value > *t.EmergencyMax {
		return SeverityEmergency
	}

	if t.EmergencyOp == "<" && t.EmergencyMin != nil && value < *t.EmergencyMin {
		return SeverityEmergency
	}

	if t.CriticalMin != nil && t.CriticalMax != nil && value >= *t.CriticalMin && value <= *t.CriticalMax {
		return SeverityCritical
	}

	if t.WarningMin != nil && t.WarningMax != nil && value >= *t.WarningMin && value <= *t.WarningMax {
		return SeverityWarning
	}

	return SeverityNormal
}

// ThresholdSet is one cycle's view of the threshold configuration. It is
// rebuilt wholesale at the start of every cycle and never mutated after that.
type ThresholdSet struct {
	thresholds map[string]map[string]database.MetricThreshold
}

func NewThresholdSet(thresholds []database.MetricThreshold) ThresholdSet {
	set := ThresholdSet{
		thresholds: map[string]map[string]database.MetricThreshold{},
	}

	for _, t := range thresholds {
		byMetric, ok := set.thresholds[t.EquipmentType]
		if !ok {
			byMetric = map[string]database.MetricThreshold{}
			set.thresholds[t.EquipmentType] = byMetric
		}
		byMetric[t.MetricType] = t
	}

	return set
}

func (s ThresholdSet) Lookup(equipmentType, metricType string) (database.MetricThreshold, bool) {
	byMetric, ok := s.thresholds[equipmentType]
	if !ok {
		return database.MetricThreshold{}, false
	}

	t, ok := byMetric[metricType]
	return t, ok
}

func (s ThresholdSet) Size() int {
	n := 0
	for _, byMetric := range s.thresholds {
		n += len(byMetric)
	}
	return n
}
