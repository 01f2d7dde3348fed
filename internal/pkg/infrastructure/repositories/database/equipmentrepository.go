package database

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

//go:generate moq -rm -out equipmentrepository_mock.go . EquipmentRepository

type EquipmentRepository interface {
	GetEquipment(ctx context.Context) ([]Equipment, error)
	GetMonitoredEquipment(ctx context.Context) ([]Equipment, error)
	GetEquipmentByID(ctx context.Context, equipmentID string) (Equipment, error)
	GetStatistics(ctx context.Context) ([]StatusStatistics, error)

	UpdateStatus(ctx context.Context, equipmentID, newStatus string, history []AlertHistory) (bool, error)

	GetThresholds(ctx context.Context) ([]MetricThreshold, error)

	AddMetricSample(ctx context.Context, sample MetricSample) error
	GetLatestMetrics(ctx context.Context, equipmentID string, notBefore time.Time) ([]MetricSample, error)

	GetAlerts(ctx context.Context, onlyUnresolved bool) ([]AlertHistory, error)
	GetAlertsByEquipmentID(ctx context.Context, equipmentID string) ([]AlertHistory, error)
	ResolveAlert(ctx context.Context, alertID uint, resolvedBy, notes string) error

	GetSubscriptions(ctx context.Context, equipmentID string) ([]Subscription, error)
	GetResponsibleUsers(ctx context.Context, equipmentType string) ([]User, error)

	AddSubscription(ctx context.Context, subscription Subscription) error
	RemoveSubscription(ctx context.Context, userID, equipmentID string) error
	AddUser(ctx context.Context, user User) error

	SeedEquipment(ctx context.Context, equipmentFile io.Reader) error
	SeedThresholds(ctx context.Context, thresholdFile io.Reader) error
}

var ErrEquipmentNotFound = fmt.Errorf("equipment not found")
var ErrAlertNotFound = fmt.Errorf("alert not found")
var ErrRepositoryError = fmt.Errorf("could not fetch data from repository")

type equipmentRepository struct {
	db *gorm.DB
}

func New(connect ConnectorFunc) (EquipmentRepository, error) {
	impl, _, err := connect()
	if err != nil {
		return nil, err
	}

	err = impl.AutoMigrate(&Equipment{}, &MetricThreshold{}, &MetricSample{}, &AlertHistory{}, &Subscription{}, &User{})
	if err != nil {
		return nil, err
	}

	return &equipmentRepository{
		db: impl,
	}, nil
}

func (d *equipmentRepository) GetEquipment(ctx context.Context) ([]Equipment, error) {
	var equipment []Equipment

	result := d.db.Order("equipment_id").Find(&equipment)

	return equipment, result.Error
}

func (d *equipmentRepository) GetMonitoredEquipment(ctx context.Context) ([]Equipment, error) {
	var equipment []Equipment

	result := d.db.Where("status <> ?", StatusOffline).Order("equipment_id").Find(&equipment)

	return equipment, result.Error
}

func (d *equipmentRepository) GetEquipmentByID(ctx context.Context, equipmentID string) (Equipment, error) {
	var equipment = Equipment{}

	result := d.db.Where(&Equipment{EquipmentID: equipmentID}).First(&equipment)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Equipment{}, ErrEquipmentNotFound
		}

		return Equipment{}, ErrRepositoryError
	}

	return equipment, nil
}

func (d *equipmentRepository) GetStatistics(ctx context.Context) ([]StatusStatistics, error) {
	var stats []StatusStatistics

	err := d.db.Model(&Equipment{}).
		Select(`type as equipment_type,
			count(*) as total,
			sum(case when status = 'normal' then 1 else 0 end) as normal_count,
			sum(case when status = 'warning' then 1 else 0 end) as warning_count,
			sum(case when status = 'critical' then 1 else 0 end) as critical_count,
			sum(case when status = 'emergency' then 1 else 0 end) as emergency_count,
			sum(case when status = 'offline' then 1 else 0 end) as offline_count`).
		Group("type").
		Scan(&stats).Error

	return stats, err
}

// UpdateStatus writes a new status together with its alert history rows in a
// single transaction. The write is skipped when the stored status already
// equals newStatus, in which case no history rows are created either.
func (d *equipmentRepository) UpdateStatus(ctx context.Context, equipmentID, newStatus string, history []AlertHistory) (bool, error) {
	changed := false

	err := d.db.Transaction(func(tx *gorm.DB) error {
		equipment := Equipment{}

		result := tx.Where(&Equipment{EquipmentID: equipmentID}).First(&equipment)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrEquipmentNotFound
			}
			return result.Error
		}

		if equipment.Status == newStatus {
			return nil
		}

		err := tx.Model(&equipment).Updates(map[string]interface{}{
			"status":            newStatus,
			"status_updated_at": time.Now().UTC(),
		}).Error
		if err != nil {
			return err
		}

		for i := range history {
			history[i].EquipmentID = equipmentID
		}

		if len(history) > 0 {
			err = tx.Create(&history).Error
			if err != nil {
				return err
			}
		}

		changed = true

		return nil
	})

	return changed, err
}

func (d *equipmentRepository) GetThresholds(ctx context.Context) ([]MetricThreshold, error) {
	var thresholds []MetricThreshold

	result := d.db.Find(&thresholds)

	return thresholds, result.Error
}

func (d *equipmentRepository) AddMetricSample(ctx context.Context, sample MetricSample) error {
	if sample.Timestamp.IsZero() {
		sample.Timestamp = time.Now().UTC()
	}

	return d.db.Create(&sample).Error
}

// GetLatestMetrics returns the most recent sample per metric type recorded at
// or after notBefore. Older samples are treated as absent data.
func (d *equipmentRepository) GetLatestMetrics(ctx context.Context, equipmentID string, notBefore time.Time) ([]MetricSample, error) {
	var samples []MetricSample

	result := d.db.
		Where("equipment_id = ? AND timestamp >= ?", equipmentID, notBefore).
		Order("timestamp desc").
		Find(&samples)

	if result.Error != nil {
		return nil, result.Error
	}

	latest := []MetricSample{}
	seen := map[string]bool{}

	for _, sample := range samples {
		if seen[sample.MetricType] {
			continue
		}
		seen[sample.MetricType] = true
		latest = append(latest, sample)
	}

	return latest, nil
}

func (d *equipmentRepository) GetAlerts(ctx context.Context, onlyUnresolved bool) ([]AlertHistory, error) {
	var alerts []AlertHistory

	query := d.db.Order("created_at desc")
	if onlyUnresolved {
		query = query.Where("is_resolved = ?", false)
	}

	result := query.Find(&alerts)

	return alerts, result.Error
}

func (d *equipmentRepository) GetAlertsByEquipmentID(ctx context.Context, equipmentID string) ([]AlertHistory, error) {
	var alerts []AlertHistory

	result := d.db.Where(&AlertHistory{EquipmentID: equipmentID}).Order("created_at desc").Find(&alerts)

	return alerts, result.Error
}

func (d *equipmentRepository) ResolveAlert(ctx context.Context, alertID uint, resolvedBy, notes string) error {
	alert := AlertHistory{}

	result := d.db.First(&alert, alertID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrAlertNotFound
		}
		return result.Error
	}

	now := time.Now().UTC()

	return d.db.Model(&alert).Updates(map[string]interface{}{
		"is_resolved":      true,
		"resolved_at":      &now,
		"resolved_by":      resolvedBy,
		"resolution_notes": notes,
	}).Error
}

func (d *equipmentRepository) GetSubscriptions(ctx context.Context, equipmentID string) ([]Subscription, error) {
	var subscriptions []Subscription

	result := d.db.Where(&Subscription{EquipmentID: equipmentID}).Find(&subscriptions)

	return subscriptions, result.Error
}

func (d *equipmentRepository) GetResponsibleUsers(ctx context.Context, equipmentType string) ([]User, error) {
	var users []User

	result := d.db.Where("responsible_type = ? OR is_admin = ?", equipmentType, true).Find(&users)

	return users, result.Error
}

// AddSubscription is called on behalf of the chat collaborator, the
// detection core itself only reads subscriptions.
func (d *equipmentRepository) AddSubscription(ctx context.Context, subscription Subscription) error {
	existing := Subscription{}

	result := d.db.Where(&Subscription{UserID: subscription.UserID, EquipmentID: subscription.EquipmentID}).First(&existing)
	if result.RowsAffected > 0 {
		return d.db.Model(&existing).Update("notification_level", subscription.NotificationLevel).Error
	}

	return d.db.Create(&subscription).Error
}

func (d *equipmentRepository) RemoveSubscription(ctx context.Context, userID, equipmentID string) error {
	return d.db.Where(&Subscription{UserID: userID, EquipmentID: equipmentID}).Delete(&Subscription{}).Error
}

func (d *equipmentRepository) AddUser(ctx context.Context, user User) error {
	existing := User{}

	result := d.db.Where(&User{UserID: user.UserID}).First(&existing)
	if result.RowsAffected > 0 {
		return d.db.Model(&existing).Updates(map[string]interface{}{
			"display_name":     user.DisplayName,
			"responsible_type": user.ResponsibleType,
			"is_admin":         user.IsAdmin,
		}).Error
	}

	return d.db.Create(&user).Error
}

// SeedEquipment creates or updates equipment from csv data
//
// equipmentID;name;type;location;status
func (d *equipmentRepository) SeedEquipment(ctx context.Context, equipmentFile io.Reader) error {
	r := csv.NewReader(equipmentFile)
	r.Comma = ';'

	rows, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read csv data: %s", err.Error())
	}

	for i, row := range rows {
		if i == 0 {
			continue
		}

		if len(row) < 5 {
			return fmt.Errorf("too few columns on line %d in equipment seed", i+1)
		}

		equipmentID := strings.TrimSpace(row[0])

		equipment := Equipment{}
		result := d.db.Where(&Equipment{EquipmentID: equipmentID}).First(&equipment)

		if result.RowsAffected > 0 {
			err = d.db.Model(&equipment).Updates(map[string]interface{}{
				"name":     row[1],
				"type":     row[2],
				"location": row[3],
			}).Error
			if err != nil {
				return err
			}
			continue
		}

		status := row[4]
		if status == "" {
			status = StatusNormal
		}

		err = d.db.Create(&Equipment{
			EquipmentID:     equipmentID,
			Name:            row[1],
			Type:            row[2],
			Location:        row[3],
			Status:          status,
			StatusUpdatedAt: time.Now().UTC(),
		}).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// SeedThresholds replaces the threshold configuration from csv data
//
// equipmentType;metricType;unit;normal;warningMin;warningMax;criticalMin;criticalMax;emergencyOp;emergencyMin;emergencyMax
func (d *equipmentRepository) SeedThresholds(ctx context.Context, thresholdFile io.Reader) error {
	r := csv.NewReader(thresholdFile)
	r.Comma = ';'

	rows, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read csv data: %s", err.Error())
	}

	strToF64 := func(s string) *float64 {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return &f
	}

	for i, row := range rows {
		if i == 0 {
			continue
		}

		if len(row) < 11 {
			return fmt.Errorf("too few columns on line %d in threshold seed", i+1)
		}

		threshold := MetricThreshold{
			EquipmentType: row[0],
			MetricType:    row[1],
			Unit:          row[2],
			NormalValue:   strToF64(row[3]),
			WarningMin:    strToF64(row[4]),
			WarningMax:    strToF64(row[5]),
			CriticalMin:   strToF64(row[6]),
			CriticalMax:   strToF64(row[7]),
			EmergencyOp:   strings.TrimSpace(row[8]),
			EmergencyMin:  strToF64(row[9]),
			EmergencyMax:  strToF64(row[10]),
		}

		existing := MetricThreshold{}
		result := d.db.Where(&MetricThreshold{EquipmentType: threshold.EquipmentType, MetricType: threshold.MetricType}).First(&existing)

		if result.RowsAffected > 0 {
			threshold.ID = existing.ID
			err = d.db.Save(&threshold).Error
		} else {
			err = d.db.Create(&threshold).Error
		}

		if err != nil {
			return err
		}
	}

	return nil
}
