package services

import (
	"carewatch-http-service/config"
	"carewatch-http-service/models"
	"carewatch-http-service/store"
)

// InterfaceCameraService defines the camera service interface
type InterfaceCameraService interface {
	GetAllCameras() []models.CameraProfile
	GetCameraByID(cameraID string) (models.CameraProfile, bool)
	CreateCamera(camera models.CameraProfile) (models.CameraProfile, store.Result)
	UpdateCamera(cameraID string, updates store.CameraUpdate) (models.CameraProfile, store.Result)
	UpdateCameraStatus(cameraID string, status models.CameraStatus) store.Result
	DeleteCamera(cameraID string) store.Result
	GetCamerasByRoom(roomID string) []models.CameraProfile
	GetUnassignedCameras() []models.CameraProfile
	GetCameraTemplates() []models.CameraTemplate
}

// CameraService 提供摄像头相关的服务
type CameraService struct {
	Store  *store.ConfigurationStore
	Config *config.Config
}

// NewCameraService 创建一个新的摄像头服务
func NewCameraService(st *store.ConfigurationStore, cfg *config.Config) InterfaceCameraService {
	return &CameraService{
		Store:  st,
		Config: cfg,
	}
}

// 1 GetAllCameras 获取所有摄像头列表
func (s *CameraService) GetAllCameras() []models.CameraProfile {
	return s.Store.CameraProfiles()
}

// 2 GetCameraByID 根据ID获取摄像头
func (s *CameraService) GetCameraByID(cameraID string) (models.CameraProfile, bool) {
	return s.Store.Camera(cameraID)
}

// 3 CreateCamera 创建新摄像头
func (s *CameraService) CreateCamera(camera models.CameraProfile) (models.CameraProfile, store.Result) {
	result := s.Store.AddCameraProfile(camera)
	if !result.OK {
		return models.CameraProfile{}, result
	}

	// 存储可能补全了ID和默认值，重新读取
	if camera.CameraID != "" {
		if created, found := s.Store.Camera(camera.CameraID); found {
			return created, result
		}
	}
	cameras := s.Store.CameraProfiles()
	return cameras[len(cameras)-1], result
}

// 4 UpdateCamera 更新摄像头信息
func (s *CameraService) UpdateCamera(cameraID string, updates store.CameraUpdate) (models.CameraProfile, store.Result) {
	result := s.Store.UpdateCameraProfile(cameraID, updates)
	if !result.OK {
		return models.CameraProfile{}, result
	}

	camera, _ := s.Store.Camera(cameraID)
	return camera, result
}

// 5 UpdateCameraStatus 更新摄像头运行状态
func (s *CameraService) UpdateCameraStatus(cameraID string, status models.CameraStatus) store.Result {
	return s.Store.UpdateCameraStatus(cameraID, status)
}

// 6 DeleteCamera 删除摄像头
func (s *CameraService) DeleteCamera(cameraID string) store.Result {
	return s.Store.DeleteCameraProfile(cameraID)
}

// 7 GetCamerasByRoom 获取指定房间分配的摄像头
func (s *CameraService) GetCamerasByRoom(roomID string) []models.CameraProfile {
	return s.Store.GetCamerasByRoom(roomID)
}

// 8 GetUnassignedCameras 获取所有未分配的摄像头
func (s *CameraService) GetUnassignedCameras() []models.CameraProfile {
	return s.Store.GetUnassignedCameras()
}

// 9 GetCameraTemplates 获取摄像头类型模板
func (s *CameraService) GetCameraTemplates() []models.CameraTemplate {
	return s.Store.CameraTemplates()
}
