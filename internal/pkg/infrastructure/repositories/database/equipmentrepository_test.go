package database

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func setup(t *testing.T) (*is.I, context.Context, EquipmentRepository) {
	is := is.New(t)

	r, err := New(NewSQLiteConnector(zerolog.Logger{}))
	is.NoErr(err)

	return is, context.Background(), r
}

func seedOne(is *is.I, ctx context.Context, r EquipmentRepository, status string) string {
	equipmentID := "DC-" + uuid.NewString()

	csv := fmt.Sprintf("equipmentID;name;type;location;status\n%s;Dicer A;dicer;Fab 1;%s\n", equipmentID, status)
	err := r.SeedEquipment(ctx, bytes.NewBufferString(csv))
	is.NoErr(err)

	return equipmentID
}

func TestSeedAndGetEquipment(t *testing.T) {
	is, ctx, r := setup(t)

	equipmentID := seedOne(is, ctx, r, "normal")

	equipment, err := r.GetEquipmentByID(ctx, equipmentID)
	is.NoErr(err)
	is.Equal("Dicer A", equipment.Name)
	is.Equal("dicer", equipment.Type)
	is.Equal(StatusNormal, equipment.Status)
}

func TestSeedEquipmentTwiceUpdatesInPlace(t *testing.T) {
	is, ctx, r := setup(t)

	equipmentID := seedOne(is, ctx, r, "normal")

	csv := fmt.Sprintf("equipmentID;name;type;location;status\n%s;Dicer A2;dicer;Fab 2;normal\n", equipmentID)
	err := r.SeedEquipment(ctx, bytes.NewBufferString(csv))
	is.NoErr(err)

	equipment, err := r.GetEquipmentByID(ctx, equipmentID)
	is.NoErr(err)
	is.Equal("Dicer A2", equipment.Name)
	is.Equal("Fab 2", equipment.Location)
}

func TestGetEquipmentByIDNotFound(t *testing.T) {
	is, ctx, r := setup(t)

	_, err := r.GetEquipmentByID(ctx, "no-such-equipment")
	is.Equal(ErrEquipmentNotFound, err)
}

func TestMonitoredEquipmentExcludesOffline(t *testing.T) {
	is, ctx, r := setup(t)

	onlineID := seedOne(is, ctx, r, "normal")
	offlineID := seedOne(is, ctx, r, "offline")

	monitored, err := r.GetMonitoredEquipment(ctx)
	is.NoErr(err)

	seen := map[string]bool{}
	for _, e := range monitored {
		seen[e.EquipmentID] = true
	}

	is.True(seen[onlineID])
	is.True(!seen[offlineID])
}

func TestUpdateStatusWritesHistoryAtomically(t *testing.T) {
	is, ctx, r := setup(t)

	equipmentID := seedOne(is, ctx, r, "normal")

	changed, err := r.UpdateStatus(ctx, equipmentID, StatusCritical, []AlertHistory{
		{AlertType: AlertTypeStateChange, Severity: "critical", Message: "rotation speed low"},
		{AlertType: AlertTypeStateChange, Severity: "warning", Message: "temperature high"},
	})
	is.NoErr(err)
	is.True(changed)

	equipment, err := r.GetEquipmentByID(ctx, equipmentID)
	is.NoErr(err)
	is.Equal(StatusCritical, equipment.Status)
	is.True(!equipment.StatusUpdatedAt.IsZero())

	alerts, err := r.GetAlertsByEquipmentID(ctx, equipmentID)
	is.NoErr(err)
	is.Equal(2, len(alerts))
	is.Equal(equipmentID, alerts[0].EquipmentID)
}

func TestUpdateStatusSelfTransitionIsNoOp(t *testing.T) {
	is, ctx, r := setup(t)

	equipmentID := seedOne(is, ctx, r, "normal")

	changed, err := r.UpdateStatus(ctx, equipmentID, StatusNormal, []AlertHistory{
		{AlertType: AlertTypeStateChange, Severity: "warning", Message: "should not be written"},
	})
	is.NoErr(err)
	is.True(!changed)

	alerts, err := r.GetAlertsByEquipmentID(ctx, equipmentID)
	is.NoErr(err)
	is.Equal(0, len(alerts))
}

func TestUpdateStatusUnknownEquipment(t *testing.T) {
	is, ctx, r := setup(t)

	_, err := r.UpdateStatus(ctx, "no-such-equipment", StatusCritical, nil)
	is.Equal(ErrEquipmentNotFound, err)
}

func TestLatestMetricsDeduplicatesPerType(t *testing.T) {
	is, ctx, r := setup(t)

	equipmentID := seedOne(is, ctx, r, "normal")
	now := time.Now().UTC()

	for i, value := range []float64{25000, 24000, 1500} {
		err := r.AddMetricSample(ctx, MetricSample{
			EquipmentID: equipmentID,
			MetricType:  "rotation speed",
			Value:       value,
			Unit:        "rpm",
			Timestamp:   now.Add(time.Duration(i-3) * time.Minute),
		})
		is.NoErr(err)
	}

	err := r.AddMetricSample(ctx, MetricSample{
		EquipmentID: equipmentID,
		MetricType:  "temperature",
		Value:       26.5,
		Unit:        "°C",
		Timestamp:   now.Add(-time.Minute),
	})
	is.NoErr(err)

	latest, err := r.GetLatestMetrics(ctx, equipmentID, now.Add(-30*time.Minute))
	is.NoErr(err)
	is.Equal(2, len(latest))

	byType := map[string]float64{}
	for _, sample := range latest {
		byType[sample.MetricType] = sample.Value
	}

	is.Equal(1500.0, byType["rotation speed"])
	is.Equal(26.5, byType["temperature"])
}

func TestLatestMetricsHonorsWindow(t *testing.T) {
	is, ctx, r := setup(t)

	equipmentID := seedOne(is, ctx, r, "normal")
	now := time.Now().UTC()

	err := r.AddMetricSample(ctx, MetricSample{
		EquipmentID: equipmentID,
		MetricType:  "rotation speed",
		Value:       1500,
		Timestamp:   now.Add(-45 * time.Minute),
	})
	is.NoErr(err)

	latest, err := r.GetLatestMetrics(ctx, equipmentID, now.Add(-30*time.Minute))
	is.NoErr(err)
	is.Equal(0, len(latest))
}

func TestSeedThresholdsParsesNullableBounds(t *testing.T) {
	is, ctx, r := setup(t)

	csv := "equipmentType;metricType;unit;normal;warningMin;warningMax;criticalMin;criticalMax;emergencyOp;emergencyMin;emergencyMax\n" +
		"dicer;rotation speed;rpm;30000;24000;27000;18000;24000;<;18000;\n" +
		"dicer;deformation(mm);mm;;0.01;0.05;0.05;0.1;>;;0.1\n"

	err := r.SeedThresholds(ctx, bytes.NewBufferString(csv))
	is.NoErr(err)

	thresholds, err := r.GetThresholds(ctx)
	is.NoErr(err)

	var rotation, deformation *MetricThreshold
	for i := range thresholds {
		switch thresholds[i].MetricType {
		case "rotation speed":
			rotation = &thresholds[i]
		case "deformation(mm)":
			deformation = &thresholds[i]
		}
	}

	is.True(rotation != nil)
	is.Equal("<", rotation.EmergencyOp)
	is.True(rotation.EmergencyMin != nil)
	is.Equal(18000.0, *rotation.EmergencyMin)
	is.True(rotation.EmergencyMax == nil)

	is.True(deformation != nil)
	is.True(deformation.NormalValue == nil)
	is.True(deformation.EmergencyMax != nil)
	is.Equal(0.1, *deformation.EmergencyMax)
}

func TestResolveAlert(t *testing.T) {
	is, ctx, r := setup(t)

	equipmentID := seedOne(is, ctx, r, "normal")

	changed, err := r.UpdateStatus(ctx, equipmentID, StatusWarning, []AlertHistory{
		{AlertType: AlertTypeStateChange, Severity: "warning", Message: "temperature high"},
	})
	is.NoErr(err)
	is.True(changed)

	alerts, err := r.GetAlertsByEquipmentID(ctx, equipmentID)
	is.NoErr(err)
	is.Equal(1, len(alerts))

	err = r.ResolveAlert(ctx, alerts[0].ID, "operator-7", "spindle cooling fixed")
	is.NoErr(err)

	alerts, err = r.GetAlertsByEquipmentID(ctx, equipmentID)
	is.NoErr(err)
	is.True(alerts[0].IsResolved)
	is.Equal("operator-7", alerts[0].ResolvedBy)
	is.True(alerts[0].ResolvedAt != nil)
}

func TestResolveAlertNotFound(t *testing.T) {
	is, ctx, r := setup(t)

	err := r.ResolveAlert(ctx, 4294967290, "operator-7", "")
	is.Equal(ErrAlertNotFound, err)
}

func TestSubscriptionsAndResponsibleUsers(t *testing.T) {
	is, ctx, r := setup(t)

	equipmentID := seedOne(is, ctx, r, "normal")
	userID := "U-" + uuid.NewString()
	equipmentType := "type-" + uuid.NewString()

	err := r.AddSubscription(ctx, Subscription{UserID: userID, EquipmentID: equipmentID, NotificationLevel: NotificationLevelAll})
	is.NoErr(err)

	// upsert on the same user and equipment
	err = r.AddSubscription(ctx, Subscription{UserID: userID, EquipmentID: equipmentID, NotificationLevel: NotificationLevelEmergency})
	is.NoErr(err)

	subscriptions, err := r.GetSubscriptions(ctx, equipmentID)
	is.NoErr(err)
	is.Equal(1, len(subscriptions))
	is.Equal(NotificationLevelEmergency, subscriptions[0].NotificationLevel)

	responsibleID := "U-" + uuid.NewString()
	err = r.AddUser(ctx, User{UserID: responsibleID, ResponsibleType: equipmentType})
	is.NoErr(err)

	users, err := r.GetResponsibleUsers(ctx, equipmentType)
	is.NoErr(err)

	seen := map[string]bool{}
	for _, u := range users {
		seen[u.UserID] = true
	}
	is.True(seen[responsibleID])

	err = r.RemoveSubscription(ctx, userID, equipmentID)
	is.NoErr(err)

	subscriptions, err = r.GetSubscriptions(ctx, equipmentID)
	is.NoErr(err)
	is.Equal(0, len(subscriptions))
}
