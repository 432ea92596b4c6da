package services

import (
	"encoding/json"
	"testing"

	"carewatch-http-service/config"
	"carewatch-http-service/models"
	"carewatch-http-service/store"
)

// fakeMessage 实现 mqtt.Message 接口，用于离线测试状态上报处理
type fakeMessage struct {
	topic   string
	payload []byte
}

func (m *fakeMessage) Duplicate() bool   { return false }
func (m *fakeMessage) Qos() byte         { return 1 }
func (m *fakeMessage) Retained() bool    { return false }
func (m *fakeMessage) Topic() string     { return m.topic }
func (m *fakeMessage) MessageID() uint16 { return 0 }
func (m *fakeMessage) Payload() []byte   { return m.payload }
func (m *fakeMessage) Ack()              {}

// newStatusTestService 创建一个带内存存储的MQTT状态服务及其依赖
func newStatusTestService(t *testing.T) (*MQTTStatusService, InterfaceCameraService, InterfaceAlertService) {
	t.Helper()

	cfg := &config.Config{}
	st := store.New(nil)
	st.AddCameraProfile(models.CameraProfile{
		CameraID: "CAM-A",
		Name:     "走廊摄像头",
	})

	cameraService := NewCameraService(st, cfg)
	alertService := NewAlertService(cfg)
	service := NewMQTTStatusService(cfg, cameraService, alertService).(*MQTTStatusService)
	return service, cameraService, alertService
}

func statusPayload(t *testing.T, msg CameraStatusMessage) []byte {
	t.Helper()
	raw, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("序列化状态消息失败: %v", err)
	}
	return raw
}

func TestHandleCameraStatusOnline(t *testing.T) {
	service, cameraService, _ := newStatusTestService(t)

	service.handleCameraStatus(nil, &fakeMessage{
		topic:   "carewatch/camera/CAM-A/status",
		payload: statusPayload(t, CameraStatusMessage{Status: "online"}),
	})

	camera, _ := cameraService.GetCameraByID("CAM-A")
	if camera.Status != models.CameraStatusOnline || !camera.Online {
		t.Errorf("状态上报后摄像头应在线: %+v", camera)
	}
}

func TestHandleCameraStatusOfflineRaisesAlert(t *testing.T) {
	service, cameraService, alertService := newStatusTestService(t)
	before := len(alertService.GetAlerts(AlertFilter{}))

	service.handleCameraStatus(nil, &fakeMessage{
		topic:   "carewatch/camera/CAM-A/status",
		payload: statusPayload(t, CameraStatusMessage{Status: "offline"}),
	})

	camera, _ := cameraService.GetCameraByID("CAM-A")
	if camera.Status != models.CameraStatusOffline || camera.Online {
		t.Errorf("状态上报后摄像头应离线: %+v", camera)
	}

	alerts := alertService.GetAlerts(AlertFilter{})
	if len(alerts) != before+1 {
		t.Fatalf("掉线应生成一条告警，实际从 %d 变为 %d", before, len(alerts))
	}
	if alerts[0].Type != models.AlertTypeCameraOffline || alerts[0].CameraID != "CAM-A" {
		t.Errorf("告警内容不符: %+v", alerts[0])
	}
}

func TestHandleCameraStatusDeduplicatesByMessageID(t *testing.T) {
	service, _, alertService := newStatusTestService(t)
	before := len(alertService.GetAlerts(AlertFilter{}))

	msg := &fakeMessage{
		topic:   "carewatch/camera/CAM-A/status",
		payload: statusPayload(t, CameraStatusMessage{Status: "offline", MessageID: "msg-001"}),
	}
	service.handleCameraStatus(nil, msg)
	service.handleCameraStatus(nil, msg)

	// 相同消息ID只处理一次，只生成一条告警
	if got := len(alertService.GetAlerts(AlertFilter{})); got != before+1 {
		t.Errorf("重复消息应被去重: 期望 %d 条告警，实际 %d", before+1, got)
	}
}

func TestHandleCameraStatusInvalid(t *testing.T) {
	service, cameraService, _ := newStatusTestService(t)

	// 未知状态被忽略
	service.handleCameraStatus(nil, &fakeMessage{
		topic:   "carewatch/camera/CAM-A/status",
		payload: statusPayload(t, CameraStatusMessage{Status: "exploded"}),
	})
	camera, _ := cameraService.GetCameraByID("CAM-A")
	if camera.Status != models.CameraStatusOffline {
		t.Errorf("未知状态不应修改摄像头: %+v", camera)
	}

	// 非JSON载荷被忽略，不会崩溃
	service.handleCameraStatus(nil, &fakeMessage{
		topic:   "carewatch/camera/CAM-A/status",
		payload: []byte("not json"),
	})

	// 未注册的摄像头被拒绝，不生成告警
	service.handleCameraStatus(nil, &fakeMessage{
		topic:   "carewatch/camera/CAM-UNKNOWN/status",
		payload: statusPayload(t, CameraStatusMessage{Status: "offline"}),
	})
}

func TestCameraIDFromTopic(t *testing.T) {
	cases := []struct {
		topic string
		want  string
	}{
		{"carewatch/camera/CAM-A/status", "CAM-A"},
		{"carewatch/camera/CAM-001122/status", "CAM-001122"},
		{"carewatch/camera/status", ""},
		{"other/camera/CAM-A/status", ""},
		{"carewatch/camera/CAM-A/telemetry", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := cameraIDFromTopic(c.topic); got != c.want {
			t.Errorf("cameraIDFromTopic(%q) = %q，期望 %q", c.topic, got, c.want)
		}
	}
}
