package models

import "time"

// AlertSeverity 告警级别
type AlertSeverity string

const (
	AlertSeverityCritical AlertSeverity = "critical"
	AlertSeverityHigh     AlertSeverity = "high"
	AlertSeverityMedium   AlertSeverity = "medium"
	AlertSeverityLow      AlertSeverity = "low"
)

// AlertStatus 告警状态
type AlertStatus string

const (
	AlertStatusActive       AlertStatus = "active"
	AlertStatusAcknowledged AlertStatus = "acknowledged"
	AlertStatusResolved     AlertStatus = "resolved"
)

// 告警类型标识
const (
	AlertTypeFallDetection  = "fall_detection"  // 跌倒检测
	AlertTypeWanderDetected = "wander_detected" // 徘徊检测
	AlertTypeCameraOffline  = "camera_offline"  // 摄像头离线
	AlertTypeIntrusion      = "intrusion"       // 周界入侵
)

// Alert 告警记录
type Alert struct {
	ID             string        `json:"id"`
	Type           string        `json:"type"`
	Severity       AlertSeverity `json:"severity"`
	Status         AlertStatus   `json:"status"`
	Title          string        `json:"title"`
	Description    string        `json:"description,omitempty"`
	Location       string        `json:"location"`
	RoomID         string        `json:"room_id"`
	Floor          string        `json:"floor,omitempty"`
	CameraID       string        `json:"camera_id,omitempty"`
	Timestamp      time.Time     `json:"timestamp"`
	AcknowledgedAt *time.Time    `json:"acknowledged_at,omitempty"`
	AcknowledgedBy string        `json:"acknowledged_by,omitempty"`
	ResolvedAt     *time.Time    `json:"resolved_at,omitempty"`
	ResolvedBy     string        `json:"resolved_by,omitempty"`
}
