package types

import "time"

type EquipmentStatusChanged struct {
	EquipmentID string    `json:"equipmentID"`
	Status      string    `json:"status"`
	Severity    string    `json:"severity"`
	Message     string    `json:"message,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

func (e *EquipmentStatusChanged) ContentType() string {
	return "application/json"
}
func (e *EquipmentStatusChanged) TopicName() string {
	return "equipment.statusChanged"
}

type EquipmentRecovered struct {
	EquipmentID string    `json:"equipmentID"`
	Timestamp   time.Time `json:"timestamp"`
}

func (e *EquipmentRecovered) ContentType() string {
	return "application/json"
}
func (e *EquipmentRecovered) TopicName() string {
	return "equipment.recovered"
}

type NotificationSend struct {
	UserID    string    `json:"userID"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func (n *NotificationSend) ContentType() string {
	return "application/json"
}
func (n *NotificationSend) TopicName() string {
	return "notification.send"
}

type EquipmentMetric struct {
	EquipmentID string    `json:"equipmentID"`
	MetricType  string    `json:"metricType"`
	Value       float64   `json:"value"`
	Unit        string    `json:"unit"`
	Timestamp   time.Time `json:"timestamp"`
}
