package services

import (
	"time"

	"carewatch-http-service/config"
	"carewatch-http-service/models"
	"carewatch-http-service/store"
)

// InterfaceFacilityService defines the facility service interface
type InterfaceFacilityService interface {
	GetFacilityProfile() models.FacilityProfile
	SetFacilityProfile(profile models.FacilityProfile, preserveAssignments bool) store.Result
	SyncCameraCount() store.Result
	MarkAsConfigured() store.Result
	ResetConfiguration() store.Result
	GetSystemStatus() SystemStatus
}

// SystemStatus 配置向导展示的系统总览
type SystemStatus struct {
	IsConfigured     bool       `json:"is_configured"`
	DeployedAt       *time.Time `json:"deployed_at,omitempty"`
	CameraCount      int        `json:"camera_count"`
	RoomCount        int        `json:"room_count"`
	UnassignedCount  int        `json:"unassigned_count"`
	ConfigurationNum int        `json:"configuration_count"`
}

// FacilityService 提供机构档案相关的服务
type FacilityService struct {
	Store  *store.ConfigurationStore
	Config *config.Config
}

// NewFacilityService 创建一个新的机构档案服务
func NewFacilityService(st *store.ConfigurationStore, cfg *config.Config) InterfaceFacilityService {
	return &FacilityService{
		Store:  st,
		Config: cfg,
	}
}

// 1 GetFacilityProfile 获取机构档案
func (s *FacilityService) GetFacilityProfile() models.FacilityProfile {
	return s.Store.FacilityProfile()
}

// 2 SetFacilityProfile 整体替换机构档案
// preserveAssignments 为 true 时重新生成房间列表会尽量保留原有的摄像头绑定
func (s *FacilityService) SetFacilityProfile(profile models.FacilityProfile, preserveAssignments bool) store.Result {
	return s.Store.SetFacilityProfile(profile, preserveAssignments)
}

// 3 SyncCameraCount 重算机构档案的摄像头数量
func (s *FacilityService) SyncCameraCount() store.Result {
	return s.Store.SyncCameraCountWithFacility()
}

// 4 MarkAsConfigured 标记部署完成
func (s *FacilityService) MarkAsConfigured() store.Result {
	return s.Store.MarkAsConfigured()
}

// 5 ResetConfiguration 恢复出厂状态
func (s *FacilityService) ResetConfiguration() store.Result {
	return s.Store.ResetConfiguration()
}

// 6 GetSystemStatus 获取系统总览
func (s *FacilityService) GetSystemStatus() SystemStatus {
	profile := s.Store.FacilityProfile()
	return SystemStatus{
		IsConfigured:     s.Store.IsConfigured(),
		DeployedAt:       s.Store.DeployedAt(),
		CameraCount:      profile.CameraCount,
		RoomCount:        len(s.Store.RoomAssignments()),
		UnassignedCount:  len(s.Store.GetUnassignedCameras()),
		ConfigurationNum: len(s.Store.CameraConfigurations()),
	}
}
