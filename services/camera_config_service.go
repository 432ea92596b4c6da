package services

import (
	"carewatch-http-service/config"
	"carewatch-http-service/models"
	"carewatch-http-service/store"
)

// InterfaceCameraConfigService defines the configuration snapshot service interface
type InterfaceCameraConfigService interface {
	GetConfigurations() []models.CameraConfiguration
	GetConfigurationByID(id string) (models.CameraConfiguration, bool)
	SaveConfiguration(name, description string) (models.CameraConfiguration, store.Result)
	UpdateConfiguration(id string, updates store.ConfigurationUpdate) (models.CameraConfiguration, store.Result)
	DeleteConfiguration(id string) store.Result
	ActivateConfiguration(id string) store.Result
}

// CameraConfigService 提供配置快照相关的服务
type CameraConfigService struct {
	Store  *store.ConfigurationStore
	Config *config.Config
}

// NewCameraConfigService 创建一个新的配置快照服务
func NewCameraConfigService(st *store.ConfigurationStore, cfg *config.Config) InterfaceCameraConfigService {
	return &CameraConfigService{
		Store:  st,
		Config: cfg,
	}
}

// 1 GetConfigurations 获取所有配置快照
func (s *CameraConfigService) GetConfigurations() []models.CameraConfiguration {
	return s.Store.CameraConfigurations()
}

// 2 GetConfigurationByID 根据ID获取配置快照
func (s *CameraConfigService) GetConfigurationByID(id string) (models.CameraConfiguration, bool) {
	return s.Store.CameraConfiguration(id)
}

// 3 SaveConfiguration 保存当前分配布局为命名快照
func (s *CameraConfigService) SaveConfiguration(name, description string) (models.CameraConfiguration, store.Result) {
	return s.Store.SaveCameraConfiguration(name, description)
}

// 4 UpdateConfiguration 更新配置快照的名称或描述
func (s *CameraConfigService) UpdateConfiguration(id string, updates store.ConfigurationUpdate) (models.CameraConfiguration, store.Result) {
	return s.Store.UpdateCameraConfiguration(id, updates)
}

// 5 DeleteConfiguration 删除配置快照
func (s *CameraConfigService) DeleteConfiguration(id string) store.Result {
	return s.Store.DeleteCameraConfiguration(id)
}

// 6 ActivateConfiguration 激活指定配置快照
func (s *CameraConfigService) ActivateConfiguration(id string) store.Result {
	return s.Store.SetActiveCameraConfiguration(id)
}
