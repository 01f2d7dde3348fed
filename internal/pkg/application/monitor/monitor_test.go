package monitor

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/fabwise/equipment-mgmt/internal/pkg/application/events"
	"github.com/fabwise/equipment-mgmt/internal/pkg/application/notification"
	"github.com/fabwise/equipment-mgmt/internal/pkg/infrastructure/repositories/database"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/google/uuid"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

type recordingSender struct {
	mu       sync.Mutex
	messages []string
}

func (r *recordingSender) SendTextMessage(ctx context.Context, userID, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, text)
	return nil
}

func (r *recordingSender) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.messages)
}

func testConfig() *Config {
	return &Config{
		EquipmentTypes: []EquipmentTypeConfig{
			{
				Type: "dicer",
				Metrics: []MetricConfig{
					{Type: "rotation speed", Unit: "rpm"},
					{Type: "deformation(mm)", Unit: "mm"},
				},
			},
		},
	}
}

func testSetup(t *testing.T) (*is.I, context.Context, database.EquipmentRepository, EquipmentMonitor, *recordingSender) {
	is := is.New(t)
	ctx := context.Background()

	repository, err := database.New(database.NewSQLiteConnector(zerolog.Logger{}))
	is.NoErr(err)

	msgctx := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	sender := &recordingSender{}
	notifier := notification.New(repository, sender)

	return is, ctx, repository, New(repository, notifier, msgctx, events.New(nil), testConfig()), sender
}

func seedEquipment(is *is.I, ctx context.Context, r database.EquipmentRepository) string {
	equipmentID := "DC-" + uuid.NewString()

	csv := fmt.Sprintf("equipmentID;name;type;location;status\n%s;Dicer A;dicer;Fab 1;normal\n", equipmentID)
	err := r.SeedEquipment(ctx, bytes.NewBufferString(csv))
	is.NoErr(err)

	return equipmentID
}

func seedRotationSpeedThreshold(is *is.I, ctx context.Context, r database.EquipmentRepository) {
	csv := "equipmentType;metricType;unit;normal;warningMin;warningMax;criticalMin;criticalMax;emergencyOp;emergencyMin;emergencyMax\n" +
		"dicer;rotation speed;rpm;30000;24000;27000;18000;24000;<;18000;\n"
	err := r.SeedThresholds(ctx, bytes.NewBufferString(csv))
	is.NoErr(err)
}

func addSample(is *is.I, ctx context.Context, r database.EquipmentRepository, equipmentID, metricType string, value float64) {
	err := r.AddMetricSample(ctx, database.MetricSample{
		EquipmentID: equipmentID,
		MetricType:  metricType,
		Value:       value,
		Timestamp:   time.Now().UTC(),
	})
	is.NoErr(err)
}

func TestAnomalyCreatesAlertAndUpdatesStatus(t *testing.T) {
	is, ctx, r, svc, sender := testSetup(t)

	equipmentID := seedEquipment(is, ctx, r)
	seedRotationSpeedThreshold(is, ctx, r)
	addSample(is, ctx, r, equipmentID, "rotation speed", 1500)

	err := svc.CheckAllEquipment(ctx)
	is.NoErr(err)

	equipment, err := r.GetEquipmentByID(ctx, equipmentID)
	is.NoErr(err)
	is.Equal(database.StatusEmergency, equipment.Status)

	alerts, err := r.GetAlertsByEquipmentID(ctx, equipmentID)
	is.NoErr(err)
	is.Equal(1, len(alerts))
	is.Equal(database.AlertTypeStateChange, alerts[0].AlertType)
	is.Equal("emergency", alerts[0].Severity)
	is.True(!alerts[0].IsResolved)

	// the alert did not reach anyone, nobody subscribes to this unit
	is.Equal(0, sender.count())
}

func TestSecondCycleWithSameSamplesIsNoOp(t *testing.T) {
	is, ctx, r, svc, _ := testSetup(t)

	equipmentID := seedEquipment(is, ctx, r)
	seedRotationSpeedThreshold(is, ctx, r)
	addSample(is, ctx, r, equipmentID, "rotation speed", 20000)

	is.NoErr(svc.CheckAllEquipment(ctx))
	is.NoErr(svc.CheckAllEquipment(ctx))

	equipment, err := r.GetEquipmentByID(ctx, equipmentID)
	is.NoErr(err)
	is.Equal(database.StatusCritical, equipment.Status)

	alerts, err := r.GetAlertsByEquipmentID(ctx, equipmentID)
	is.NoErr(err)
	is.Equal(1, len(alerts))
}

func TestRecoveryRoundTrip(t *testing.T) {
	is, ctx, r, svc, _ := testSetup(t)

	equipmentID := seedEquipment(is, ctx, r)
	seedRotationSpeedThreshold(is, ctx, r)

	changed, err := r.UpdateStatus(ctx, equipmentID, database.StatusCritical, nil)
	is.NoErr(err)
	is.True(changed)

	// no samples in the window, the unit recovers
	err = svc.CheckAllEquipment(ctx)
	is.NoErr(err)

	equipment, err := r.GetEquipmentByID(ctx, equipmentID)
	is.NoErr(err)
	is.Equal(database.StatusNormal, equipment.Status)

	alerts, err := r.GetAlertsByEquipmentID(ctx, equipmentID)
	is.NoErr(err)
	is.Equal(1, len(alerts))
	is.Equal(database.AlertTypeRecovery, alerts[0].AlertType)
	is.True(alerts[0].IsResolved)

	// a second cycle leaves the recovered unit alone
	err = svc.CheckAllEquipment(ctx)
	is.NoErr(err)

	alerts, err = r.GetAlertsByEquipmentID(ctx, equipmentID)
	is.NoErr(err)
	is.Equal(1, len(alerts))
}

func TestUnconfiguredMetricTypesAreIgnored(t *testing.T) {
	is, ctx, r, svc, _ := testSetup(t)

	equipmentID := seedEquipment(is, ctx, r)
	seedRotationSpeedThreshold(is, ctx, r)

	// no threshold configured for tool crack, and not on the allow list
	addSample(is, ctx, r, equipmentID, "tool crack", 99999)
	// on the allow list but without threshold configuration
	addSample(is, ctx, r, equipmentID, "deformation(mm)", 99999)

	err := svc.CheckAllEquipment(ctx)
	is.NoErr(err)

	equipment, err := r.GetEquipmentByID(ctx, equipmentID)
	is.NoErr(err)
	is.Equal(database.StatusNormal, equipment.Status)

	alerts, err := r.GetAlertsByEquipmentID(ctx, equipmentID)
	is.NoErr(err)
	is.Equal(0, len(alerts))
}

func TestStaleSamplesAreAbsentData(t *testing.T) {
	is, ctx, r, svc, _ := testSetup(t)

	equipmentID := seedEquipment(is, ctx, r)
	seedRotationSpeedThreshold(is, ctx, r)

	err := r.AddMetricSample(ctx, database.MetricSample{
		EquipmentID: equipmentID,
		MetricType:  "rotation speed",
		Value:       1500,
		Timestamp:   time.Now().UTC().Add(-2 * time.Hour),
	})
	is.NoErr(err)

	err = svc.CheckAllEquipment(ctx)
	is.NoErr(err)

	equipment, err := r.GetEquipmentByID(ctx, equipmentID)
	is.NoErr(err)
	is.Equal(database.StatusNormal, equipment.Status)
}

func TestNotificationReachesSubscriber(t *testing.T) {
	is, ctx, r, svc, sender := testSetup(t)

	equipmentID := seedEquipment(is, ctx, r)
	seedRotationSpeedThreshold(is, ctx, r)
	addSample(is, ctx, r, equipmentID, "rotation speed", 1500)

	err := r.AddSubscription(ctx, database.Subscription{
		UserID:            "U-" + uuid.NewString(),
		EquipmentID:       equipmentID,
		NotificationLevel: database.NotificationLevelAll,
	})
	is.NoErr(err)

	err = svc.CheckAllEquipment(ctx)
	is.NoErr(err)

	is.Equal(1, sender.count())
}

func TestThresholdLoadFailureClassifiesNothing(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	repository := &database.EquipmentRepositoryMock{
		GetThresholdsFunc: func(ctx context.Context) ([]database.MetricThreshold, error) {
			return nil, fmt.Errorf("connection reset")
		},
		GetMonitoredEquipmentFunc: func(ctx context.Context) ([]database.Equipment, error) {
			return []database.Equipment{
				{EquipmentID: "DC-0101", Name: "Dicer A", Type: "dicer", Status: database.StatusNormal},
			}, nil
		},
		GetLatestMetricsFunc: func(ctx context.Context, equipmentID string, notBefore time.Time) ([]database.MetricSample, error) {
			return []database.MetricSample{
				{EquipmentID: equipmentID, MetricType: "rotation speed", Value: 1500, Unit: "rpm", Timestamp: time.Now().UTC()},
			}, nil
		},
		UpdateStatusFunc: func(ctx context.Context, equipmentID, newStatus string, history []database.AlertHistory) (bool, error) {
			return true, nil
		},
	}

	svc := newMockedMonitor(repository)

	err := svc.CheckAllEquipment(ctx)
	is.NoErr(err)

	// without thresholds the anomalous sample classifies as normal
	is.Equal(0, len(repository.UpdateStatusCalls()))
}

func TestOneFailingUnitDoesNotAbortTheBatch(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	broken := "DC-0101"
	healthy := "DC-0102"

	repository := &database.EquipmentRepositoryMock{
		GetThresholdsFunc: func(ctx context.Context) ([]database.MetricThreshold, error) {
			return []database.MetricThreshold{rotationSpeedThreshold()}, nil
		},
		GetMonitoredEquipmentFunc: func(ctx context.Context) ([]database.Equipment, error) {
			return []database.Equipment{
				{EquipmentID: broken, Name: "Dicer A", Type: "dicer", Status: database.StatusNormal},
				{EquipmentID: healthy, Name: "Dicer B", Type: "dicer", Status: database.StatusNormal},
			}, nil
		},
		GetLatestMetricsFunc: func(ctx context.Context, equipmentID string, notBefore time.Time) ([]database.MetricSample, error) {
			if equipmentID == broken {
				return nil, fmt.Errorf("connection reset")
			}
			return []database.MetricSample{
				{EquipmentID: equipmentID, MetricType: "rotation speed", Value: 1500, Unit: "rpm", Timestamp: time.Now().UTC()},
			}, nil
		},
		UpdateStatusFunc: func(ctx context.Context, equipmentID, newStatus string, history []database.AlertHistory) (bool, error) {
			return true, nil
		},
		GetSubscriptionsFunc: func(ctx context.Context, equipmentID string) ([]database.Subscription, error) {
			return nil, nil
		},
		GetResponsibleUsersFunc: func(ctx context.Context, equipmentType string) ([]database.User, error) {
			return nil, nil
		},
	}

	svc := newMockedMonitor(repository)

	err := svc.CheckAllEquipment(ctx)
	is.NoErr(err)

	calls := repository.UpdateStatusCalls()
	is.Equal(1, len(calls))
	is.Equal(healthy, calls[0].EquipmentID)
	is.Equal(database.StatusEmergency, calls[0].NewStatus)
}

func TestConcurrentChecksAreSerialized(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	var mu sync.Mutex
	active := 0
	maxActive := 0

	repository := &database.EquipmentRepositoryMock{
		GetThresholdsFunc: func(ctx context.Context) ([]database.MetricThreshold, error) {
			mu.Lock()
			active++
			if active > maxActive {
				maxActive = active
			}
			mu.Unlock()

			time.Sleep(50 * time.Millisecond)

			mu.Lock()
			active--
			mu.Unlock()

			return nil, nil
		},
		GetMonitoredEquipmentFunc: func(ctx context.Context) ([]database.Equipment, error) {
			return nil, nil
		},
	}

	svc := newMockedMonitor(repository)

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.CheckAllEquipment(ctx)
		}()
	}
	wg.Wait()

	is.Equal(1, maxActive)
}

func newMockedMonitor(repository database.EquipmentRepository) EquipmentMonitor {
	msgctx := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	notifier := notification.New(repository, &recordingSender{})

	return New(repository, notifier, msgctx, events.New(nil), testConfig())
}
