package services

import (
	"carewatch-http-service/config"
	"carewatch-http-service/models"
	"carewatch-http-service/store"
)

// InterfaceRoomService defines the room assignment service interface
type InterfaceRoomService interface {
	GetRoomAssignments() []models.RoomAssignment
	GetRoomByID(roomID string) (models.RoomAssignment, bool)
	AssignCameraToRoom(cameraID, roomID string) store.Result
	UnassignCameraFromRoom(cameraID, roomID string) store.Result
	GenerateRoomAssignments(preserveAssignments bool) ([]models.RoomAssignment, store.Result)
}

// RoomService 提供房间分配相关的服务
type RoomService struct {
	Store  *store.ConfigurationStore
	Config *config.Config
}

// NewRoomService 创建一个新的房间分配服务
func NewRoomService(st *store.ConfigurationStore, cfg *config.Config) InterfaceRoomService {
	return &RoomService{
		Store:  st,
		Config: cfg,
	}
}

// 1 GetRoomAssignments 获取所有房间分配记录
func (s *RoomService) GetRoomAssignments() []models.RoomAssignment {
	return s.Store.RoomAssignments()
}

// 2 GetRoomByID 根据房间ID获取分配记录
func (s *RoomService) GetRoomByID(roomID string) (models.RoomAssignment, bool) {
	return s.Store.Room(roomID)
}

// 3 AssignCameraToRoom 将摄像头分配到房间
func (s *RoomService) AssignCameraToRoom(cameraID, roomID string) store.Result {
	return s.Store.AssignCameraToRoom(cameraID, roomID)
}

// 4 UnassignCameraFromRoom 将摄像头从房间移除
func (s *RoomService) UnassignCameraFromRoom(cameraID, roomID string) store.Result {
	return s.Store.UnassignCameraFromRoom(cameraID, roomID)
}

// 5 GenerateRoomAssignments 根据机构档案重新生成房间分配列表
func (s *RoomService) GenerateRoomAssignments(preserveAssignments bool) ([]models.RoomAssignment, store.Result) {
	result := s.Store.GenerateRoomAssignmentsFromFacility(preserveAssignments)
	if !result.OK {
		return nil, result
	}
	return s.Store.RoomAssignments(), result
}
