package monitor

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fabwise/equipment-mgmt/internal/pkg/application/events"
	"github.com/fabwise/equipment-mgmt/internal/pkg/application/notification"
	"github.com/fabwise/equipment-mgmt/internal/pkg/infrastructure/logging"
	"github.com/fabwise/equipment-mgmt/internal/pkg/infrastructure/repositories/database"
	"github.com/fabwise/equipment-mgmt/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
)

//go:generate moq -rm -out monitor_mock.go . EquipmentMonitor

type EquipmentMonitor interface {
	CheckAllEquipment(ctx context.Context) error
}

type equipmentMonitor struct {
	repository database.EquipmentRepository
	notifier   notification.Router
	messenger  messaging.MsgContext
	sender     events.EventSender
	config     *Config

	// cycles must not overlap, regardless of who triggers them
	mu sync.Mutex
}

func New(repository database.EquipmentRepository, notifier notification.Router, messenger messaging.MsgContext, sender events.EventSender, config *Config) EquipmentMonitor {
	return &equipmentMonitor{
		repository: repository,
		notifier:   notifier,
		messenger:  messenger,
		sender:     sender,
		config:     config,
	}
}

// Finding is the per cycle classification of a single anomalous metric. It is
// never persisted as such, only used to build the alert message and history.
type Finding struct {
	MetricType  string
	Value       float64
	Unit        string
	Severity    Severity
	Timestamp   time.Time
	NormalValue *float64
}

// CheckAllEquipment runs one detection cycle over the fleet. Thresholds are
// reloaded wholesale before any equipment is evaluated, so configuration
// edits take effect on the next cycle without a restart. Units are processed
// sequentially and best effort: a failure on one unit is logged and the
// remaining units still run. Concurrent callers are serialized, so a
// manually triggered cycle can never interleave with a scheduled one.
func (m *equipmentMonitor) CheckAllEquipment(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	logger := logging.GetLoggerFromContext(ctx)

	thresholds, err := m.repository.GetThresholds(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("could not load metric thresholds, all metrics will classify as normal this cycle")
		thresholds = nil
	}

	thresholdSet := NewThresholdSet(thresholds)
	if thresholdSet.Size() == 0 {
		logger.Warn().Msg("no metric thresholds configured")
	}

	equipment, err := m.repository.GetMonitoredEquipment(ctx)
	if err != nil {
		return fmt.Errorf("could not list equipment: %w", err)
	}

	for _, e := range equipment {
		err := m.checkEquipment(ctx, e, thresholdSet)
		if err != nil {
			logger.Error().Err(err).Msgf("check failed for equipment %s (%s)", e.Name, e.EquipmentID)
		}
	}

	logger.Debug().Msgf("detection cycle done, checked %d equipment", len(equipment))

	return nil
}

func (m *equipmentMonitor) checkEquipment(ctx context.Context, equipment database.Equipment, thresholds ThresholdSet) error {
	notBefore := time.Now().UTC().Add(-m.config.SampleWindow())

	samples, err := m.repository.GetLatestMetrics(ctx, equipment.EquipmentID, notBefore)
	if err != nil {
		return fmt.Errorf("could not fetch metrics: %w", err)
	}

	allowed := m.config.MetricsFor(equipment.Type)

	findings := []Finding{}

	for _, sample := range samples {
		if _, ok := allowed[sample.MetricType]; !ok {
			continue
		}

		threshold, ok := thresholds.Lookup(equipment.Type, sample.MetricType)
		if !ok {
			continue
		}

		severity := Classify(sample.Value, threshold)
		if severity == SeverityNormal {
			continue
		}

		unit := sample.Unit
		if unit == "" {
			unit = threshold.Unit
		}

		findings = append(findings, Finding{
			MetricType:  sample.MetricType,
			Value:       sample.Value,
			Unit:        unit,
			Severity:    severity,
			Timestamp:   sample.Timestamp,
			NormalValue: threshold.NormalValue,
		})
	}

	if len(findings) == 0 {
		return m.recoverIfAnomalous(ctx, equipment)
	}

	return m.recordAnomalies(ctx, equipment, findings)
}

// recordAnomalies drives the status state machine for a unit with anomalous
// metrics. A transition writes the new status and one history row per finding
// in one unit of work; when the stored status already matches, the whole step
// is a no-op and no notification goes out.
func (m *equipmentMonitor) recordAnomalies(ctx context.Context, equipment database.Equipment, findings []Finding) error {
	logger := logging.GetLoggerFromContext(ctx)

	overall := Aggregate(findings)
	newStatus := overall.Status()

	history := make([]database.AlertHistory, 0, len(findings))
	for _, f := range findings {
		history = append(history, database.AlertHistory{
			AlertType:  database.AlertTypeStateChange,
			Severity:   f.Severity.String(),
			Message:    findingLine(f),
			IsResolved: false,
		})
	}

	changed, err := m.repository.UpdateStatus(ctx, equipment.EquipmentID, newStatus, history)
	if err != nil {
		return fmt.Errorf("could not update status to %s: %w", newStatus, err)
	}

	if !changed {
		return nil
	}

	message := composeMessage(equipment, overall, findings)

	logger.Info().Msgf("equipment %s (%s) changed status to %s", equipment.Name, equipment.EquipmentID, newStatus)

	statusChanged := &types.EquipmentStatusChanged{
		EquipmentID: equipment.EquipmentID,
		Status:      newStatus,
		Severity:    overall.String(),
		Message:     message,
		Timestamp:   time.Now().UTC(),
	}

	err = m.messenger.PublishOnTopic(ctx, statusChanged)
	if err != nil {
		logger.Error().Err(err).Msg("could not publish status changed event")
	}

	err = m.sender.Send(ctx, equipment.EquipmentID, statusChanged.Timestamp, statusChanged)
	if err != nil {
		logger.Error().Err(err).Msg("could not send status changed event to subscribers")
	}

	m.notifier.Notify(ctx, equipment, message, overall.String())

	return nil
}

// recoverIfAnomalous transitions a unit back to normal when no metric is
// anomalous and the stored status says otherwise. Already normal units are
// left alone.
func (m *equipmentMonitor) recoverIfAnomalous(ctx context.Context, equipment database.Equipment) error {
	if equipment.Status == database.StatusNormal || equipment.Status == database.StatusOffline {
		return nil
	}

	logger := logging.GetLoggerFromContext(ctx)

	now := time.Now().UTC()

	recovery := database.AlertHistory{
		AlertType:  database.AlertTypeRecovery,
		Severity:   database.StatusNormal,
		Message:    fmt.Sprintf("%s (%s) returned to normal", equipment.Name, equipment.EquipmentID),
		IsResolved: true,
		ResolvedAt: &now,
	}

	changed, err := m.repository.UpdateStatus(ctx, equipment.EquipmentID, database.StatusNormal, []database.AlertHistory{recovery})
	if err != nil {
		return fmt.Errorf("could not recover status: %w", err)
	}

	if !changed {
		return nil
	}

	logger.Info().Msgf("equipment %s (%s) returned to normal", equipment.Name, equipment.EquipmentID)

	recovered := &types.EquipmentRecovered{
		EquipmentID: equipment.EquipmentID,
		Timestamp:   now,
	}

	err = m.messenger.PublishOnTopic(ctx, recovered)
	if err != nil {
		logger.Error().Err(err).Msg("could not publish recovered event")
	}

	err = m.sender.Send(ctx, equipment.EquipmentID, now, recovered)
	if err != nil {
		logger.Error().Err(err).Msg("could not send recovered event to subscribers")
	}

	return nil
}

// Aggregate reduces a set of findings to the overall severity, the maximum
// rank across all findings. A non-empty set never ranks below warning.
func Aggregate(findings []Finding) Severity {
	if len(findings) == 0 {
		return SeverityNormal
	}

	overall := SeverityWarning
	for _, f := range findings {
		if f.Severity > overall {
			overall = f.Severity
		}
	}

	return overall
}

func composeMessage(equipment database.Equipment, overall Severity, findings []Finding) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (%s) at %s reports %d anomalous metric(s), status %s\n",
		equipment.Name, equipment.EquipmentID, equipment.Location, len(findings), overall.Status())

	for _, f := range findings {
		b.WriteString(findingLine(f))
		b.WriteByte('\n')
	}

	return strings.TrimRight(b.String(), "\n")
}

func findingLine(f Finding) string {
	var b strings.Builder

	fmt.Fprintf(&b, "- %s: %s %s [%s] at %s",
		f.MetricType, formatValue(f.Value), f.Unit, f.Severity, f.Timestamp.Format(time.RFC3339))

	if f.NormalValue != nil {
		fmt.Fprintf(&b, " (normal %s)", formatValue(*f.NormalValue))
	}

	return b.String()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
