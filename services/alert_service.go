package services

import (
	"errors"
	"sort"
	"sync"
	"time"

	"carewatch-http-service/config"
	"carewatch-http-service/models"

	"github.com/google/uuid"
)

// 告警服务错误
var (
	ErrAlertNotFound   = errors.New("告警不存在")
	ErrAlertValidation = errors.New("告警缺少必填字段: type, severity, title, location, room_id")
)

// AlertFilter 告警列表查询条件
type AlertFilter struct {
	Status   string `form:"status"`
	Severity string `form:"severity"`
	Floor    string `form:"floor"`
	Limit    int    `form:"limit"`
}

// AlertUpdate 告警字段级更新，nil字段不修改
type AlertUpdate struct {
	Type        *string               `json:"type,omitempty"`
	Severity    *models.AlertSeverity `json:"severity,omitempty"`
	Status      *models.AlertStatus   `json:"status,omitempty"`
	Title       *string               `json:"title,omitempty"`
	Description *string               `json:"description,omitempty"`
	Location    *string               `json:"location,omitempty"`
	RoomID      *string               `json:"room_id,omitempty"`
	Floor       *string               `json:"floor,omitempty"`
}

// InterfaceAlertService defines the alert service interface
type InterfaceAlertService interface {
	GetAlerts(filter AlertFilter) []models.Alert
	GetAlertByID(id string) (*models.Alert, error)
	CreateAlert(alert models.Alert) (*models.Alert, error)
	UpdateAlert(id string, updates AlertUpdate) (*models.Alert, error)
	AcknowledgeAlert(id, operator string) (*models.Alert, error)
	ResolveAlert(id, operator string) (*models.Alert, error)
	DeleteAlert(id string) error
}

// AlertService 提供告警相关的服务
// 告警只保存在内存列表中，进程重启后重新播种示例数据
type AlertService struct {
	Config *config.Config
	mu     sync.RWMutex
	alerts []models.Alert
}

// NewAlertService 创建一个新的告警服务并播种示例告警
func NewAlertService(cfg *config.Config) InterfaceAlertService {
	s := &AlertService{
		Config: cfg,
	}
	s.seedAlerts()
	return s
}

// seedAlerts 播种示例告警数据
func (s *AlertService) seedAlerts() {
	now := time.Now()
	s.alerts = []models.Alert{
		{
			ID:          uuid.New().String(),
			Type:        models.AlertTypeFallDetection,
			Severity:    models.AlertSeverityCritical,
			Status:      models.AlertStatusActive,
			Title:       "检测到跌倒",
			Description: "AI检测到住户疑似跌倒，请立即确认",
			Location:    "二楼东侧走廊",
			RoomID:      "corridor_2",
			Floor:       "2",
			CameraID:    "CAM-0002",
			Timestamp:   now.Add(-5 * time.Minute),
		},
		{
			ID:        uuid.New().String(),
			Type:      models.AlertTypeCameraOffline,
			Severity:  models.AlertSeverityMedium,
			Status:    models.AlertStatusActive,
			Title:     "摄像头离线",
			Location:  "一楼餐厅",
			RoomID:    "dining_hall_1",
			Floor:     "1",
			CameraID:  "CAM-0005",
			Timestamp: now.Add(-30 * time.Minute),
		},
		{
			ID:        uuid.New().String(),
			Type:      models.AlertTypeWanderDetected,
			Severity:  models.AlertSeverityHigh,
			Status:    models.AlertStatusAcknowledged,
			Title:     "夜间徘徊",
			Location:  "三楼公共活动区",
			RoomID:    "common_area_1",
			Floor:     "3",
			Timestamp: now.Add(-2 * time.Hour),
		},
	}
}

// 1 GetAlerts 按条件获取告警列表，时间倒序排列
func (s *AlertService) GetAlerts(filter AlertFilter) []models.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Alert, 0, len(s.alerts))
	for _, alert := range s.alerts {
		if filter.Status != "" && string(alert.Status) != filter.Status {
			continue
		}
		if filter.Severity != "" && string(alert.Severity) != filter.Severity {
			continue
		}
		if filter.Floor != "" && alert.Floor != filter.Floor {
			continue
		}
		result = append(result, alert)
	}

	// 最新的告警排在最前面
	sort.Slice(result, func(i, j int) bool {
		return result[i].Timestamp.After(result[j].Timestamp)
	})

	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result
}

// 2 GetAlertByID 根据ID获取告警
func (s *AlertService) GetAlertByID(id string) (*models.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	alert := s.findLocked(id)
	if alert == nil {
		return nil, ErrAlertNotFound
	}
	copied := *alert
	return &copied, nil
}

// 3 CreateAlert 创建新告警
// type、severity、title、location、room_id 为必填字段
func (s *AlertService) CreateAlert(alert models.Alert) (*models.Alert, error) {
	if alert.Type == "" || alert.Severity == "" || alert.Title == "" ||
		alert.Location == "" || alert.RoomID == "" {
		return nil, ErrAlertValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	alert.ID = uuid.New().String()
	if alert.Status == "" {
		alert.Status = models.AlertStatusActive
	}
	if alert.Timestamp.IsZero() {
		alert.Timestamp = time.Now()
	}

	s.alerts = append(s.alerts, alert)
	copied := alert
	return &copied, nil
}

// 4 UpdateAlert 更新告警信息
func (s *AlertService) UpdateAlert(id string, updates AlertUpdate) (*models.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	alert := s.findLocked(id)
	if alert == nil {
		return nil, ErrAlertNotFound
	}

	if updates.Type != nil {
		alert.Type = *updates.Type
	}
	if updates.Severity != nil {
		alert.Severity = *updates.Severity
	}
	if updates.Status != nil {
		alert.Status = *updates.Status
	}
	if updates.Title != nil {
		alert.Title = *updates.Title
	}
	if updates.Description != nil {
		alert.Description = *updates.Description
	}
	if updates.Location != nil {
		alert.Location = *updates.Location
	}
	if updates.RoomID != nil {
		alert.RoomID = *updates.RoomID
	}
	if updates.Floor != nil {
		alert.Floor = *updates.Floor
	}

	copied := *alert
	return &copied, nil
}

// 5 AcknowledgeAlert 确认告警
func (s *AlertService) AcknowledgeAlert(id, operator string) (*models.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	alert := s.findLocked(id)
	if alert == nil {
		return nil, ErrAlertNotFound
	}

	now := time.Now()
	alert.Status = models.AlertStatusAcknowledged
	alert.AcknowledgedAt = &now
	alert.AcknowledgedBy = operator

	copied := *alert
	return &copied, nil
}

// 6 ResolveAlert 解除告警
func (s *AlertService) ResolveAlert(id, operator string) (*models.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	alert := s.findLocked(id)
	if alert == nil {
		return nil, ErrAlertNotFound
	}

	now := time.Now()
	alert.Status = models.AlertStatusResolved
	alert.ResolvedAt = &now
	alert.ResolvedBy = operator

	copied := *alert
	return &copied, nil
}

// 7 DeleteAlert 删除告警
func (s *AlertService) DeleteAlert(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.alerts {
		if s.alerts[i].ID == id {
			s.alerts = append(s.alerts[:i], s.alerts[i+1:]...)
			return nil
		}
	}
	return ErrAlertNotFound
}

func (s *AlertService) findLocked(id string) *models.Alert {
	for i := range s.alerts {
		if s.alerts[i].ID == id {
			return &s.alerts[i]
		}
	}
	return nil
}
