package services

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"carewatch-http-service/config"
	"carewatch-http-service/models"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
)

// InterfaceMQTTStatusService 定义MQTT摄像头状态服务接口
type InterfaceMQTTStatusService interface {
	Connect() error
	Disconnect()
	SubscribeToTopics() error
	PublishSystemMessage(messageType string, message map[string]interface{}) error
	IsBrokerConnected() bool
}

// MQTTStatusService 通过MQTT接收摄像头状态上报，并向监控中心广播系统消息
type MQTTStatusService struct {
	Config         *config.Config
	CameraService  InterfaceCameraService
	AlertService   InterfaceAlertService
	Client         mqtt.Client
	IsConnected    bool
	connectedMutex sync.RWMutex // 保护IsConnected字段的读写
	TopicHandlers  map[string]mqtt.MessageHandler
	ProcessedMsgs  *sync.Map  // 用于记录已处理的消息，防止重复处理
	PublishMutex   sync.Mutex // 用于保护MQTT消息发布
}

// 主题常量
const (
	// 摄像头状态上报主题，通配符匹配摄像头ID
	TopicCameraStatus = "carewatch/camera/+/status"

	// 系统消息主题
	TopicSystemMessage = "carewatch/system"
)

// CameraStatusMessage 摄像头状态上报消息
type CameraStatusMessage struct {
	CameraID  string `json:"camera_id"`
	Status    string `json:"status"` // online/offline/maintenance/error
	Timestamp int64  `json:"timestamp"`
	MessageID string `json:"message_id,omitempty"`
}

// SystemMessage 系统消息
type SystemMessage struct {
	Type      string      `json:"type"`
	Level     string      `json:"level"` // info/warning/error
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// NewMQTTStatusService 创建一个新的MQTT摄像头状态服务
func NewMQTTStatusService(cfg *config.Config, cameraService InterfaceCameraService, alertService InterfaceAlertService) InterfaceMQTTStatusService {
	service := &MQTTStatusService{
		Config:        cfg,
		CameraService: cameraService,
		AlertService:  alertService,
		IsConnected:   false,
		ProcessedMsgs: &sync.Map{},
	}

	// 设置MQTT客户端
	service.setupMQTTClient()

	// 设置主题处理程序
	service.setupTopicHandlers()

	// 启动消息去重清理任务
	go service.startMsgCleanupTask()

	return service
}

// setupMQTTClient 设置MQTT客户端
func (s *MQTTStatusService) setupMQTTClient() {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(s.Config.MQTTBrokerURL)
	// 使用唯一的客户端ID，避免同一服务多实例冲突
	opts.SetClientID(fmt.Sprintf("%s-%s-%d", s.Config.MQTTClientID, uuid.New().String()[:8], time.Now().UnixNano()))
	opts.SetAutoReconnect(true)
	opts.SetMaxReconnectInterval(time.Second * 30)
	opts.SetKeepAlive(time.Second * 60)
	opts.SetPingTimeout(time.Second * 10)
	opts.SetCleanSession(true)

	opts.SetDefaultPublishHandler(func(client mqtt.Client, msg mqtt.Message) {
		log.Printf("[MQTT] 收到未处理的消息: topic=%s", msg.Topic())
	})

	// 添加用户名和密码
	if s.Config.MQTTUsername != "" {
		opts.SetUsername(s.Config.MQTTUsername)
		opts.SetPassword(s.Config.MQTTPassword)
	}

	// 设置连接丢失回调
	opts.SetConnectionLostHandler(func(client mqtt.Client, err error) {
		log.Printf("[MQTT] 连接丢失: %v", err)
		s.connectedMutex.Lock()
		s.IsConnected = false
		s.connectedMutex.Unlock()
	})

	// 设置连接建立回调，重连后重新订阅
	opts.SetOnConnectHandler(func(client mqtt.Client) {
		log.Println("[MQTT] 成功连接到", s.Config.MQTTBrokerURL)
		s.connectedMutex.Lock()
		s.IsConnected = true
		s.connectedMutex.Unlock()

		if err := s.SubscribeToTopics(); err != nil {
			log.Printf("[MQTT] 订阅主题失败: %v", err)
		}
	})

	opts.SetReconnectingHandler(func(client mqtt.Client, opts *mqtt.ClientOptions) {
		log.Println("[MQTT] 正在尝试重连...")
	})

	s.Client = mqtt.NewClient(opts)
}

// setupTopicHandlers 设置主题处理程序
func (s *MQTTStatusService) setupTopicHandlers() {
	s.TopicHandlers = map[string]mqtt.MessageHandler{
		TopicCameraStatus: s.handleCameraStatus,
	}
}

// Connect 连接到MQTT服务器，带有重试机制
func (s *MQTTStatusService) Connect() error {
	log.Printf("[MQTT] 正在连接到 %s...", s.Config.MQTTBrokerURL)

	s.PublishMutex.Lock()
	defer s.PublishMutex.Unlock()

	s.connectedMutex.RLock()
	isConnected := s.IsConnected && s.Client.IsConnected()
	s.connectedMutex.RUnlock()

	if isConnected {
		return nil
	}

	// 最大重试次数和指数退避策略
	maxRetries := 5
	var err error

	for i := 0; i < maxRetries; i++ {
		token := s.Client.Connect()
		if token.WaitTimeout(5*time.Second) && token.Error() == nil {
			s.connectedMutex.Lock()
			s.IsConnected = true
			s.connectedMutex.Unlock()
			log.Printf("[MQTT] 成功连接到 %s", s.Config.MQTTBrokerURL)
			return nil
		}

		err = token.Error()
		backoffTime := time.Duration(1<<uint(i)) * time.Second // 指数退避: 1s, 2s, 4s, 8s, 16s
		log.Printf("[MQTT] 连接尝试 %d/%d 失败: %v, 将在 %v 后重试", i+1, maxRetries, err, backoffTime)
		time.Sleep(backoffTime)
	}

	return fmt.Errorf("[MQTT] 连接失败，已尝试 %d 次: %v", maxRetries, err)
}

// Disconnect 断开与MQTT服务器的连接
func (s *MQTTStatusService) Disconnect() {
	if s.Client != nil && s.Client.IsConnected() {
		s.Client.Disconnect(250)
	}
}

// IsBrokerConnected 返回当前是否已连接到MQTT服务器
func (s *MQTTStatusService) IsBrokerConnected() bool {
	s.connectedMutex.RLock()
	defer s.connectedMutex.RUnlock()
	return s.IsConnected
}

// SubscribeToTopics 订阅相关主题
func (s *MQTTStatusService) SubscribeToTopics() error {
	// 使用QoS 1确保消息至少被传递一次
	qos := byte(1)

	for topic, handler := range s.TopicHandlers {
		if token := s.Client.Subscribe(topic, qos, handler); token.Wait() && token.Error() != nil {
			return fmt.Errorf("订阅主题失败 [%s]: %v", topic, token.Error())
		}
		log.Printf("[MQTT] 已订阅主题: %s", topic)
	}
	return nil
}

// handleCameraStatus 处理摄像头状态上报
func (s *MQTTStatusService) handleCameraStatus(client mqtt.Client, msg mqtt.Message) {
	var statusMsg CameraStatusMessage
	if err := json.Unmarshal(msg.Payload(), &statusMsg); err != nil {
		log.Printf("[MQTT] 解析状态消息失败: topic=%s, err=%v", msg.Topic(), err)
		return
	}

	// 消息体未携带摄像头ID时从主题提取
	if statusMsg.CameraID == "" {
		statusMsg.CameraID = cameraIDFromTopic(msg.Topic())
	}
	if statusMsg.CameraID == "" {
		log.Printf("[MQTT] 状态消息缺少摄像头ID: topic=%s", msg.Topic())
		return
	}

	// 消息去重
	if statusMsg.MessageID != "" {
		if _, processed := s.ProcessedMsgs.LoadOrStore(statusMsg.MessageID, time.Now()); processed {
			return
		}
	}

	status := models.CameraStatus(statusMsg.Status)
	switch status {
	case models.CameraStatusOnline, models.CameraStatusOffline,
		models.CameraStatusMaintenance, models.CameraStatusError:
	default:
		log.Printf("[MQTT] 未知的摄像头状态: %s", statusMsg.Status)
		return
	}

	result := s.CameraService.UpdateCameraStatus(statusMsg.CameraID, status)
	if !result.OK {
		log.Printf("[MQTT] 更新摄像头状态被拒绝: %s", result.Message())
		return
	}
	log.Printf("[MQTT] 摄像头 %s 状态更新为 %s", statusMsg.CameraID, status)

	// 摄像头掉线时生成告警并广播系统消息
	if status == models.CameraStatusOffline || status == models.CameraStatusError {
		s.raiseCameraAlert(statusMsg.CameraID, status)
	}
}

// raiseCameraAlert 为异常状态的摄像头生成告警并发布系统消息
func (s *MQTTStatusService) raiseCameraAlert(cameraID string, status models.CameraStatus) {
	camera, found := s.CameraService.GetCameraByID(cameraID)
	if !found {
		return
	}

	severity := models.AlertSeverityMedium
	if status == models.CameraStatusError {
		severity = models.AlertSeverityHigh
	}

	location := camera.InstallLocation
	if location == "" {
		location = camera.Name
	}

	if _, err := s.AlertService.CreateAlert(models.Alert{
		Type:        models.AlertTypeCameraOffline,
		Severity:    severity,
		Title:       fmt.Sprintf("摄像头 %s 状态异常", camera.Name),
		Description: fmt.Sprintf("摄像头 %s 上报状态 %s", cameraID, status),
		Location:    location,
		RoomID:      camera.RoomID,
		CameraID:    cameraID,
	}); err != nil {
		log.Printf("[MQTT] 生成摄像头告警失败: %v", err)
	}

	if err := s.PublishSystemMessage("camera_status", map[string]interface{}{
		"camera_id": cameraID,
		"status":    string(status),
	}); err != nil {
		log.Printf("[MQTT] 发布系统消息失败: %v", err)
	}
}

// PublishSystemMessage 向系统消息主题广播
func (s *MQTTStatusService) PublishSystemMessage(messageType string, message map[string]interface{}) error {
	s.PublishMutex.Lock()
	defer s.PublishMutex.Unlock()

	if !s.Client.IsConnected() {
		return fmt.Errorf("MQTT未连接")
	}

	payload, err := json.Marshal(SystemMessage{
		Type:      messageType,
		Level:     "warning",
		Message:   messageType,
		Data:      message,
		Timestamp: time.Now().UnixMilli(),
	})
	if err != nil {
		return err
	}

	token := s.Client.Publish(TopicSystemMessage, 1, false, payload)
	if token.WaitTimeout(3*time.Second) && token.Error() != nil {
		return token.Error()
	}
	return nil
}

// startMsgCleanupTask 定期清理过期的消息去重记录
func (s *MQTTStatusService) startMsgCleanupTask() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-30 * time.Minute)
		s.ProcessedMsgs.Range(func(key, value interface{}) bool {
			if ts, okTime := value.(time.Time); okTime && ts.Before(cutoff) {
				s.ProcessedMsgs.Delete(key)
			}
			return true
		})
	}
}

// cameraIDFromTopic 从 "carewatch/camera/{id}/status" 主题中提取摄像头ID
func cameraIDFromTopic(topic string) string {
	parts := strings.Split(topic, "/")
	if len(parts) == 4 && parts[0] == "carewatch" && parts[1] == "camera" && parts[3] == "status" {
		return parts[2]
	}
	return ""
}
