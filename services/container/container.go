package container

import (
	"log"
	"sync"

	"carewatch-http-service/config"
	"carewatch-http-service/services"
	"carewatch-http-service/store"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	config *config.Config
	store  *store.ConfigurationStore

	// 数据存储服务
	redisService *services.RedisService

	// MQTT摄像头状态服务
	mqttStatusService services.InterfaceMQTTStatusService

	// 业务服务
	facilityService     services.InterfaceFacilityService
	cameraService       services.InterfaceCameraService
	roomService         services.InterfaceRoomService
	cameraConfigService services.InterfaceCameraConfigService
	alertService        services.InterfaceAlertService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
// Redis不可用时降级为内存持久化，服务仍可启动
func NewServiceContainer(cfg *config.Config) *ServiceContainer {
	if cfg == nil {
		panic("配置为空")
	}

	container := &ServiceContainer{
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化Redis服务并测试连接
	c.redisService = services.NewRedisService(c.config)

	var persistence store.Persistence = c.redisService
	if err := c.redisService.Ping(); err != nil {
		log.Printf("Redis连接测试失败: %v，配置状态将只保存在内存中", err)
		persistence = store.NewMemoryPersistence()
	}

	// 初始化配置存储并从持久化槽位恢复
	c.store = store.New(persistence)
	if err := c.store.Restore(); err != nil {
		log.Printf("恢复配置状态失败: %v，使用默认状态启动", err)
	}

	// 首次启动时写入默认机构名称
	if profile := c.store.FacilityProfile(); profile.Name == "" && c.config.FacilityName != "" {
		profile.Name = c.config.FacilityName
		c.store.SetFacilityProfile(profile, false)
	}

	// 初始化业务服务
	c.facilityService = services.NewFacilityService(c.store, c.config)
	c.cameraService = services.NewCameraService(c.store, c.config)
	c.roomService = services.NewRoomService(c.store, c.config)
	c.cameraConfigService = services.NewCameraConfigService(c.store, c.config)
	c.alertService = services.NewAlertService(c.config)

	// 初始化MQTT摄像头状态服务
	c.mqttStatusService = services.NewMQTTStatusService(c.config, c.cameraService, c.alertService)

	// 连接MQTT服务器，失败不阻止启动；未配置Broker时跳过
	if c.config.MQTTBrokerURL != "" {
		if err := c.mqttStatusService.Connect(); err != nil {
			log.Printf("MQTT服务连接失败: %v", err)
		}
	}
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "store":
		return c.store
	case "redis":
		return c.redisService
	case "mqtt_status":
		return c.mqttStatusService
	case "facility":
		return c.facilityService
	case "camera":
		return c.cameraService
	case "room":
		return c.roomService
	case "camera_config":
		return c.cameraConfigService
	case "alert":
		return c.alertService
	default:
		return nil
	}
}

// GetStore 获取配置存储
func (c *ServiceContainer) GetStore() *store.ConfigurationStore {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store
}
