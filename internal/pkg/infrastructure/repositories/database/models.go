package database

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusNormal    = "normal"
	StatusWarning   = "warning"
	StatusCritical  = "critical"
	StatusEmergency = "emergency"
	StatusOffline   = "offline"
)

const (
	NotificationLevelAll       = "all"
	NotificationLevelCritical  = "critical"
	NotificationLevelEmergency = "emergency"
)

const (
	AlertTypeStateChange = "state_change"
	AlertTypeRecovery    = "recovery"
)

type Equipment struct {
	gorm.Model `json:"-"`

	EquipmentID     string    `gorm:"uniqueIndex" json:"equipmentID"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	Location        string    `json:"location"`
	Status          string    `json:"status"`
	StatusUpdatedAt time.Time `json:"statusUpdatedAt"`
}

// MetricThreshold holds the severity bands for one metric type. Bands are
// supplied by domain experts and may overlap or leave gaps. A nil bound
// disables the tier it belongs to.
type MetricThreshold struct {
	gorm.Model `json:"-"`

	EquipmentType string `gorm:"uniqueIndex:idx_threshold_type_metric" json:"equipmentType"`
	MetricType    string `gorm:"uniqueIndex:idx_threshold_type_metric" json:"metricType"`
	Unit          string `json:"unit"`

	NormalValue *float64 `json:"normalValue"`

	WarningMin *float64 `json:"warningMin"`
	WarningMax *float64 `json:"warningMax"`

	CriticalMin *float64 `json:"criticalMin"`
	CriticalMax *float64 `json:"criticalMax"`

	EmergencyOp  string   `json:"emergencyOp"`
	EmergencyMin *float64 `json:"emergencyMin"`
	EmergencyMax *float64 `json:"emergencyMax"`
}

type MetricSample struct {
	ID uint `gorm:"primarykey" json:"-"`

	EquipmentID string    `gorm:"index" json:"equipmentID"`
	MetricType  string    `json:"metricType"`
	Value       float64   `json:"value"`
	Unit        string    `json:"unit"`
	Timestamp   time.Time `gorm:"index" json:"timestamp"`
}

type AlertHistory struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	EquipmentID string `gorm:"index" json:"equipmentID"`
	AlertType   string `json:"alertType"`
	Severity    string `json:"severity"`
	Message     string `json:"message"`
	IsResolved  bool   `json:"isResolved"`

	ResolvedAt      *time.Time `json:"resolvedAt,omitempty"`
	ResolvedBy      string     `json:"resolvedBy,omitempty"`
	ResolutionNotes string     `json:"resolutionNotes,omitempty"`
}

type Subscription struct {
	gorm.Model `json:"-"`

	UserID            string `gorm:"uniqueIndex:idx_subscription_user_equipment" json:"userID"`
	EquipmentID       string `gorm:"uniqueIndex:idx_subscription_user_equipment" json:"equipmentID"`
	NotificationLevel string `json:"notificationLevel"`
}

type User struct {
	gorm.Model `json:"-"`

	UserID          string `gorm:"uniqueIndex" json:"userID"`
	DisplayName     string `json:"displayName"`
	ResponsibleType string `json:"responsibleType"`
	IsAdmin         bool   `json:"isAdmin"`
}

type StatusStatistics struct {
	EquipmentType  string `json:"equipmentType"`
	Total          int64  `json:"total"`
	NormalCount    int64  `json:"normal"`
	WarningCount   int64  `json:"warning"`
	CriticalCount  int64  `json:"critical"`
	EmergencyCount int64  `json:"emergency"`
	OfflineCount   int64  `json:"offline"`
}
