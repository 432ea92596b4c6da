package services

import (
	"errors"
	"testing"
	"time"

	"carewatch-http-service/config"
	"carewatch-http-service/models"
)

// newTestAlertService 创建一个带示例数据的告警服务
func newTestAlertService() InterfaceAlertService {
	return NewAlertService(&config.Config{})
}

func TestGetAlertsSortedNewestFirst(t *testing.T) {
	s := newTestAlertService()

	alerts := s.GetAlerts(AlertFilter{})
	if len(alerts) != 3 {
		t.Fatalf("期望3条示例告警，实际 %d", len(alerts))
	}
	for i := 1; i < len(alerts); i++ {
		if alerts[i].Timestamp.After(alerts[i-1].Timestamp) {
			t.Errorf("告警未按时间倒序排列: %v 在 %v 之前", alerts[i].Timestamp, alerts[i-1].Timestamp)
		}
	}
}

func TestGetAlertsFilters(t *testing.T) {
	s := newTestAlertService()

	// 按状态过滤
	active := s.GetAlerts(AlertFilter{Status: string(models.AlertStatusActive)})
	for _, a := range active {
		if a.Status != models.AlertStatusActive {
			t.Errorf("状态过滤失效: %s", a.Status)
		}
	}
	if len(active) != 2 {
		t.Errorf("active 告警期望2条，实际 %d", len(active))
	}

	// 按级别过滤
	critical := s.GetAlerts(AlertFilter{Severity: string(models.AlertSeverityCritical)})
	if len(critical) != 1 || critical[0].Type != models.AlertTypeFallDetection {
		t.Errorf("级别过滤结果不符: %+v", critical)
	}

	// 按楼层过滤
	floor2 := s.GetAlerts(AlertFilter{Floor: "2"})
	if len(floor2) != 1 {
		t.Errorf("楼层过滤期望1条，实际 %d", len(floor2))
	}

	// 条数上限
	limited := s.GetAlerts(AlertFilter{Limit: 1})
	if len(limited) != 1 {
		t.Errorf("限制条数失效，实际 %d", len(limited))
	}

	// 组合过滤无匹配
	none := s.GetAlerts(AlertFilter{Status: string(models.AlertStatusResolved), Floor: "9"})
	if len(none) != 0 {
		t.Errorf("无匹配条件应返回空列表: %+v", none)
	}
}

func TestCreateAlert(t *testing.T) {
	s := newTestAlertService()

	created, err := s.CreateAlert(models.Alert{
		Type:     models.AlertTypeIntrusion,
		Severity: models.AlertSeverityHigh,
		Title:    "夜间出入口异常",
		Location: "一楼正门",
		RoomID:   "entrance_1",
	})
	if err != nil {
		t.Fatalf("创建告警失败: %v", err)
	}
	if created.ID == "" {
		t.Error("创建的告警应分配ID")
	}
	if created.Status != models.AlertStatusActive {
		t.Errorf("新告警状态应为 active，实际 %s", created.Status)
	}
	if created.Timestamp.IsZero() {
		t.Error("新告警应分配时间戳")
	}

	got, err := s.GetAlertByID(created.ID)
	if err != nil || got.Title != "夜间出入口异常" {
		t.Errorf("创建后查询不符: %+v %v", got, err)
	}
}

func TestCreateAlertValidation(t *testing.T) {
	s := newTestAlertService()

	// 缺少 location 和 room_id
	_, err := s.CreateAlert(models.Alert{
		Type:     models.AlertTypeFallDetection,
		Severity: models.AlertSeverityCritical,
		Title:    "不完整的告警",
	})
	if !errors.Is(err, ErrAlertValidation) {
		t.Errorf("缺少必填字段应返回验证错误，实际 %v", err)
	}
}

func TestAcknowledgeAndResolveAlert(t *testing.T) {
	s := newTestAlertService()
	created, _ := s.CreateAlert(models.Alert{
		Type:     models.AlertTypeFallDetection,
		Severity: models.AlertSeverityCritical,
		Title:    "检测到跌倒",
		Location: "住户房间 101",
		RoomID:   "resident_room_1",
	})

	acked, err := s.AcknowledgeAlert(created.ID, "值班护士-王敏")
	if err != nil {
		t.Fatalf("确认告警失败: %v", err)
	}
	if acked.Status != models.AlertStatusAcknowledged {
		t.Errorf("确认后状态期望 acknowledged，实际 %s", acked.Status)
	}
	if acked.AcknowledgedAt == nil || acked.AcknowledgedBy != "值班护士-王敏" {
		t.Errorf("确认信息未记录: %+v", acked)
	}

	resolved, err := s.ResolveAlert(created.ID, "值班护士-王敏")
	if err != nil {
		t.Fatalf("解除告警失败: %v", err)
	}
	if resolved.Status != models.AlertStatusResolved || resolved.ResolvedAt == nil {
		t.Errorf("解除信息未记录: %+v", resolved)
	}
	if time.Since(*resolved.ResolvedAt) > time.Minute {
		t.Errorf("解除时间异常: %v", resolved.ResolvedAt)
	}

	// 不存在的告警
	if _, err := s.AcknowledgeAlert("no-such-id", ""); !errors.Is(err, ErrAlertNotFound) {
		t.Errorf("不存在的告警应返回未找到错误，实际 %v", err)
	}
}

func TestUpdateAlert(t *testing.T) {
	s := newTestAlertService()
	created, _ := s.CreateAlert(models.Alert{
		Type:     models.AlertTypeCameraOffline,
		Severity: models.AlertSeverityMedium,
		Title:    "摄像头离线",
		Location: "一楼餐厅",
		RoomID:   "dining_hall_1",
	})

	severity := models.AlertSeverityLow
	desc := "设备重启中"
	updated, err := s.UpdateAlert(created.ID, AlertUpdate{
		Severity:    &severity,
		Description: &desc,
	})
	if err != nil {
		t.Fatalf("更新告警失败: %v", err)
	}
	if updated.Severity != severity || updated.Description != desc {
		t.Errorf("更新结果不符: %+v", updated)
	}
	// 未提供的字段保持不变
	if updated.Title != "摄像头离线" {
		t.Errorf("未更新的字段被修改: %s", updated.Title)
	}
}

func TestDeleteAlert(t *testing.T) {
	s := newTestAlertService()
	created, _ := s.CreateAlert(models.Alert{
		Type:     models.AlertTypeIntrusion,
		Severity: models.AlertSeverityHigh,
		Title:    "待删除",
		Location: "一楼正门",
		RoomID:   "entrance_1",
	})

	if err := s.DeleteAlert(created.ID); err != nil {
		t.Fatalf("删除告警失败: %v", err)
	}
	if _, err := s.GetAlertByID(created.ID); !errors.Is(err, ErrAlertNotFound) {
		t.Errorf("删除后查询应返回未找到错误，实际 %v", err)
	}
	if err := s.DeleteAlert(created.ID); !errors.Is(err, ErrAlertNotFound) {
		t.Errorf("重复删除应返回未找到错误，实际 %v", err)
	}
}
