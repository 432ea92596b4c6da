package controllers

import (
	"carewatch-http-service/internal/error/code"
	"carewatch-http-service/internal/error/response"
	"carewatch-http-service/models"
	"carewatch-http-service/services"
	"carewatch-http-service/services/container"
	"carewatch-http-service/store"

	"github.com/gin-gonic/gin"
)

// InterfaceCameraController 定义摄像头控制器接口
type InterfaceCameraController interface {
	GetCameras()
	GetCamera()
	CreateCamera()
	UpdateCamera()
	DeleteCamera()
	GetUnassignedCameras()
	GetCameraTemplates()
	ReportCameraStatus()
}

// CameraController 处理摄像头相关的请求
type CameraController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewCameraController 创建一个新的摄像头控制器
func NewCameraController(ctx *gin.Context, container *container.ServiceContainer) *CameraController {
	return &CameraController{
		Ctx:       ctx,
		Container: container,
	}
}

// CameraRequest 表示创建摄像头的请求
type CameraRequest struct {
	CameraID         string   `json:"camera_id" example:"CAM-0001"`
	Name             string   `json:"name" binding:"required" example:"住户房间1号机"`
	RoomID           string   `json:"room_id" example:"resident_room_1"` // 可选，未分配时省略
	RoomType         string   `json:"room_type" example:"resident_room"`
	CameraType       string   `json:"camera_type" example:"dome_indoor"`
	AICapable        bool     `json:"ai_capable" example:"true"`
	AIFeatures       []string `json:"ai_features" example:"fall_detection,motion_detection"`
	InstallLocation  string   `json:"install_location" example:"房间东北角天花板"`
	StreamURL        string   `json:"stream_url" example:"rtsp://192.168.1.64/stream1"`
	RecordingEnabled bool     `json:"recording_enabled" example:"true"`
}

// CameraStatusRequest 摄像头状态上报请求
type CameraStatusRequest struct {
	CameraID string `json:"camera_id" binding:"required" example:"CAM-0001"`
	Status   string `json:"status" binding:"required" example:"online"` // online, offline, maintenance, error
}

// HandleCameraFunc 返回一个处理摄像头请求的Gin处理函数
func HandleCameraFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewCameraController(ctx, container)

		switch method {
		case "getCameras":
			controller.GetCameras()
		case "getCamera":
			controller.GetCamera()
		case "createCamera":
			controller.CreateCamera()
		case "updateCamera":
			controller.UpdateCamera()
		case "deleteCamera":
			controller.DeleteCamera()
		case "getUnassignedCameras":
			controller.GetUnassignedCameras()
		case "getCameraTemplates":
			controller.GetCameraTemplates()
		case "reportCameraStatus":
			controller.ReportCameraStatus()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetCameras 获取所有摄像头列表
// @Summary 获取所有摄像头
// @Description 获取所有摄像头的列表
// @Tags Camera
// @Accept json
// @Produce json
// @Success 200 {array} models.CameraProfile
// @Router /cameras [get]
func (c *CameraController) GetCameras() {
	cameraService := c.Container.GetService("camera").(services.InterfaceCameraService)
	response.Success(c.Ctx, cameraService.GetAllCameras())
}

// 2. GetCamera 获取单个摄像头详情
// @Summary 获取单个摄像头
// @Description 根据ID获取摄像头信息
// @Tags Camera
// @Accept json
// @Produce json
// @Param id path string true "摄像头ID"
// @Success 200 {object} models.CameraProfile
// @Failure 404 {object} ErrorResponse
// @Router /cameras/{id} [get]
func (c *CameraController) GetCamera() {
	id := c.Ctx.Param("id")

	cameraService := c.Container.GetService("camera").(services.InterfaceCameraService)
	camera, found := cameraService.GetCameraByID(id)
	if !found {
		response.Fail(c.Ctx, code.ErrCameraNotFound, nil)
		return
	}
	response.Success(c.Ctx, camera)
}

// 3. CreateCamera 创建新摄像头
// @Summary 创建新摄像头
// @Description 创建一个新的摄像头档案。room_id 指向的房间存在且未满时同步写入分配列表；
// @Description 房间尚未生成时摄像头仍会被添加，等待后续房间生成
// @Tags Camera
// @Accept json
// @Produce json
// @Param camera body CameraRequest true "摄像头信息：名称(必填)、类型、AI能力、安装位置等"
// @Success 201 {object} models.CameraProfile
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /cameras [post]
func (c *CameraController) CreateCamera() {
	var req CameraRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	camera := models.CameraProfile{
		CameraID:         req.CameraID,
		Name:             req.Name,
		RoomID:           req.RoomID,
		RoomType:         req.RoomType,
		CameraType:       req.CameraType,
		AICapable:        req.AICapable,
		AIFeatures:       req.AIFeatures,
		InstallLocation:  req.InstallLocation,
		StreamURL:        req.StreamURL,
		RecordingEnabled: req.RecordingEnabled,
	}

	cameraService := c.Container.GetService("camera").(services.InterfaceCameraService)
	created, result := cameraService.CreateCamera(camera)
	if !result.OK {
		failFromResult(c.Ctx, result)
		return
	}

	response.Created(c.Ctx, created)
}

// 4. UpdateCamera 更新摄像头信息
// @Summary 更新摄像头信息
// @Description 字段级合并更新摄像头记录。room_id 变化时同步维护新旧房间的分配列表，
// @Description 目标房间已满时整个更新被拒绝
// @Tags Camera
// @Accept json
// @Produce json
// @Param id path string true "摄像头ID"
// @Param camera body store.CameraUpdate true "需要更新的字段，省略的字段不变"
// @Success 200 {object} models.CameraProfile
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /cameras/{id} [put]
func (c *CameraController) UpdateCamera() {
	id := c.Ctx.Param("id")

	var updates store.CameraUpdate
	if err := c.Ctx.ShouldBindJSON(&updates); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	cameraService := c.Container.GetService("camera").(services.InterfaceCameraService)
	camera, result := cameraService.UpdateCamera(id, updates)
	if !result.OK {
		failFromResult(c.Ctx, result)
		return
	}

	response.Success(c.Ctx, camera)
}

// 5. DeleteCamera 删除摄像头
// @Summary 删除摄像头
// @Description 删除摄像头，并从所有房间的分配列表中清除其ID
// @Tags Camera
// @Accept json
// @Produce json
// @Param id path string true "摄像头ID"
// @Success 200 {object} nil
// @Failure 404 {object} ErrorResponse
// @Router /cameras/{id} [delete]
func (c *CameraController) DeleteCamera() {
	id := c.Ctx.Param("id")

	cameraService := c.Container.GetService("camera").(services.InterfaceCameraService)
	if result := cameraService.DeleteCamera(id); !result.OK {
		failFromResult(c.Ctx, result)
		return
	}

	response.Success(c.Ctx, nil)
}

// 6. GetUnassignedCameras 获取未分配的摄像头
// @Summary 获取未分配的摄像头
// @Description 获取所有尚未分配房间的摄像头
// @Tags Camera
// @Accept json
// @Produce json
// @Success 200 {array} models.CameraProfile
// @Router /cameras/unassigned [get]
func (c *CameraController) GetUnassignedCameras() {
	cameraService := c.Container.GetService("camera").(services.InterfaceCameraService)
	response.Success(c.Ctx, cameraService.GetUnassignedCameras())
}

// 7. GetCameraTemplates 获取摄像头类型模板
// @Summary 获取摄像头类型模板
// @Description 获取配置向导使用的摄像头类型模板列表
// @Tags Camera
// @Accept json
// @Produce json
// @Success 200 {array} models.CameraTemplate
// @Router /cameras/templates [get]
func (c *CameraController) GetCameraTemplates() {
	cameraService := c.Container.GetService("camera").(services.InterfaceCameraService)
	response.Success(c.Ctx, cameraService.GetCameraTemplates())
}

// 8. ReportCameraStatus 摄像头状态上报
// @Summary 摄像头状态上报
// @Description 摄像头通过HTTP报告运行状态的接口，与MQTT状态上报等效
// @Tags Camera
// @Accept json
// @Produce json
// @Param request body CameraStatusRequest true "摄像头状态上报请求"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /camera/status [post]
func (c *CameraController) ReportCameraStatus() {
	var req CameraStatusRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	status := models.CameraStatus(req.Status)
	switch status {
	case models.CameraStatusOnline, models.CameraStatusOffline,
		models.CameraStatusMaintenance, models.CameraStatusError:
	default:
		response.FailWithMessage(c.Ctx, code.ErrValidation, "无效的摄像头状态: "+req.Status, nil)
		return
	}

	cameraService := c.Container.GetService("camera").(services.InterfaceCameraService)
	if result := cameraService.UpdateCameraStatus(req.CameraID, status); !result.OK {
		failFromResult(c.Ctx, result)
		return
	}

	response.Success(c.Ctx, gin.H{
		"camera_id": req.CameraID,
		"status":    req.Status,
		"timestamp": models.CurrentTime(),
	})
}
