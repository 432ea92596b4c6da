package controllers

import (
	"carewatch-http-service/internal/error/code"
	"carewatch-http-service/internal/error/response"
	"carewatch-http-service/services"
	"carewatch-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceRoomController 定义房间控制器接口
type InterfaceRoomController interface {
	GetRooms()
	GetRoom()
	GetRoomCameras()
	AssignCamera()
	UnassignCamera()
	GenerateRooms()
}

// RoomController 处理房间分配相关的请求
type RoomController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewRoomController 创建一个新的房间控制器
func NewRoomController(ctx *gin.Context, container *container.ServiceContainer) *RoomController {
	return &RoomController{
		Ctx:       ctx,
		Container: container,
	}
}

// AssignCameraRequest 摄像头分配请求
type AssignCameraRequest struct {
	CameraID string `json:"camera_id" binding:"required" example:"CAM-0001"`
}

// GenerateRoomsRequest 房间重新生成请求
type GenerateRoomsRequest struct {
	PreserveAssignments bool `json:"preserve_assignments" example:"true"`
}

// HandleRoomFunc 返回一个处理房间请求的Gin处理函数
func HandleRoomFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewRoomController(ctx, container)

		switch method {
		case "getRooms":
			controller.GetRooms()
		case "getRoom":
			controller.GetRoom()
		case "getRoomCameras":
			controller.GetRoomCameras()
		case "assignCamera":
			controller.AssignCamera()
		case "unassignCamera":
			controller.UnassignCamera()
		case "generateRooms":
			controller.GenerateRooms()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetRooms 获取所有房间分配
// @Summary 获取所有房间分配
// @Description 获取所有房间及其摄像头分配情况
// @Tags Room
// @Accept json
// @Produce json
// @Success 200 {array} models.RoomAssignment
// @Router /rooms [get]
func (c *RoomController) GetRooms() {
	roomService := c.Container.GetService("room").(services.InterfaceRoomService)
	response.Success(c.Ctx, roomService.GetRoomAssignments())
}

// 2. GetRoom 获取单个房间详情
// @Summary 获取单个房间
// @Description 根据ID获取房间分配信息
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "房间ID"
// @Success 200 {object} models.RoomAssignment
// @Failure 404 {object} ErrorResponse
// @Router /rooms/{id} [get]
func (c *RoomController) GetRoom() {
	id := c.Ctx.Param("id")

	roomService := c.Container.GetService("room").(services.InterfaceRoomService)
	room, found := roomService.GetRoomByID(id)
	if !found {
		response.Fail(c.Ctx, code.ErrRoomNotFound, nil)
		return
	}
	response.Success(c.Ctx, room)
}

// 3. GetRoomCameras 获取房间内的摄像头
// @Summary 获取房间内的摄像头
// @Description 获取分配到指定房间的所有摄像头
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "房间ID"
// @Success 200 {array} models.CameraProfile
// @Failure 404 {object} ErrorResponse
// @Router /rooms/{id}/cameras [get]
func (c *RoomController) GetRoomCameras() {
	id := c.Ctx.Param("id")

	roomService := c.Container.GetService("room").(services.InterfaceRoomService)
	if _, found := roomService.GetRoomByID(id); !found {
		response.Fail(c.Ctx, code.ErrRoomNotFound, nil)
		return
	}

	cameraService := c.Container.GetService("camera").(services.InterfaceCameraService)
	response.Success(c.Ctx, cameraService.GetCamerasByRoom(id))
}

// 4. AssignCamera 分配摄像头到房间
// @Summary 分配摄像头到房间
// @Description 将摄像头分配到指定房间。摄像头已在其他房间时自动迁移；
// @Description 房间已满或重复分配时请求被拒绝
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "房间ID"
// @Param request body AssignCameraRequest true "摄像头分配请求"
// @Success 200 {object} models.RoomAssignment
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /rooms/{id}/cameras [post]
func (c *RoomController) AssignCamera() {
	roomID := c.Ctx.Param("id")

	var req AssignCameraRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	roomService := c.Container.GetService("room").(services.InterfaceRoomService)
	if result := roomService.AssignCameraToRoom(req.CameraID, roomID); !result.OK {
		failFromResult(c.Ctx, result)
		return
	}

	room, _ := roomService.GetRoomByID(roomID)
	response.Success(c.Ctx, room)
}

// 5. UnassignCamera 从房间移除摄像头
// @Summary 从房间移除摄像头
// @Description 将摄像头从指定房间移除，摄像头回到未分配状态
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "房间ID"
// @Param camera_id path string true "摄像头ID"
// @Success 200 {object} models.RoomAssignment
// @Failure 404 {object} ErrorResponse
// @Router /rooms/{id}/cameras/{camera_id} [delete]
func (c *RoomController) UnassignCamera() {
	roomID := c.Ctx.Param("id")
	cameraID := c.Ctx.Param("camera_id")

	roomService := c.Container.GetService("room").(services.InterfaceRoomService)
	if result := roomService.UnassignCameraFromRoom(cameraID, roomID); !result.OK {
		failFromResult(c.Ctx, result)
		return
	}

	room, _ := roomService.GetRoomByID(roomID)
	response.Success(c.Ctx, room)
}

// 6. GenerateRooms 重新生成房间分配
// @Summary 重新生成房间分配
// @Description 根据机构的房间类型配置重新生成房间列表。
// @Description preserve_assignments 为 true 时保留仍然存在的房间的摄像头绑定
// @Tags Room
// @Accept json
// @Produce json
// @Param request body GenerateRoomsRequest false "房间重新生成请求"
// @Success 200 {array} models.RoomAssignment
// @Failure 400 {object} ErrorResponse
// @Router /rooms/generate [post]
func (c *RoomController) GenerateRooms() {
	var req GenerateRoomsRequest
	// 空请求体等同于不保留分配
	_ = c.Ctx.ShouldBindJSON(&req)

	roomService := c.Container.GetService("room").(services.InterfaceRoomService)
	rooms, result := roomService.GenerateRoomAssignments(req.PreserveAssignments)
	if !result.OK {
		failFromResult(c.Ctx, result)
		return
	}

	response.Success(c.Ctx, rooms)
}
