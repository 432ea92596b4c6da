package controllers

import (
	"carewatch-http-service/internal/error/code"
	"carewatch-http-service/internal/error/response"
	"carewatch-http-service/models"
	"carewatch-http-service/services"
	"carewatch-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceFacilityController 定义机构档案控制器接口
type InterfaceFacilityController interface {
	GetFacility()
	SetFacility()
	GetSystemStatus()
	Deploy()
	ResetConfiguration()
	SyncCameraCount()
}

// FacilityController 处理机构档案相关的请求
type FacilityController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewFacilityController 创建一个新的机构档案控制器
func NewFacilityController(ctx *gin.Context, container *container.ServiceContainer) *FacilityController {
	return &FacilityController{
		Ctx:       ctx,
		Container: container,
	}
}

// FacilityRequest 表示机构档案请求
type FacilityRequest struct {
	Name      string         `json:"name" binding:"required" example:"夕阳红养老院"`
	Type      string         `json:"type" example:"nursing_home"` // nursing_home, assisted_living, memory_care, rehabilitation
	TotalBeds int            `json:"total_beds" example:"120"`
	Units     []string       `json:"units" example:"A栋,B栋"`
	RoomTypes map[string]int `json:"room_types"` // 房间类型 -> 数量
}

// HandleFacilityFunc 返回一个处理机构档案请求的Gin处理函数
func HandleFacilityFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewFacilityController(ctx, container)

		switch method {
		case "getFacility":
			controller.GetFacility()
		case "setFacility":
			controller.SetFacility()
		case "getSystemStatus":
			controller.GetSystemStatus()
		case "deploy":
			controller.Deploy()
		case "resetConfiguration":
			controller.ResetConfiguration()
		case "syncCameraCount":
			controller.SyncCameraCount()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetFacility 获取机构档案
// @Summary 获取机构档案
// @Description 获取当前机构档案，包括房间类型计数和派生的摄像头数量
// @Tags Facility
// @Accept json
// @Produce json
// @Success 200 {object} models.FacilityProfile
// @Failure 500 {object} ErrorResponse
// @Router /facility [get]
func (c *FacilityController) GetFacility() {
	facilityService := c.Container.GetService("facility").(services.InterfaceFacilityService)
	response.Success(c.Ctx, facilityService.GetFacilityProfile())
}

// 2. SetFacility 保存机构档案
// @Summary 保存机构档案
// @Description 整体替换机构档案；房间类型计数非空时会重新生成房间分配列表。
// @Description 默认丢弃现有的摄像头绑定，preserve_assignments=true 时尽量保留
// @Tags Facility
// @Accept json
// @Produce json
// @Param preserve_assignments query bool false "重新生成房间时保留现有摄像头绑定"
// @Param facility body FacilityRequest true "机构档案：名称(必填)、类型、床位数、房间类型计数等"
// @Success 200 {object} models.FacilityProfile
// @Failure 400 {object} ErrorResponse
// @Router /facility [put]
func (c *FacilityController) SetFacility() {
	var req FacilityRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	preserve := c.Ctx.Query("preserve_assignments") == "true"

	profile := models.FacilityProfile{
		Name:      req.Name,
		Type:      models.FacilityType(req.Type),
		TotalBeds: req.TotalBeds,
		Units:     req.Units,
		RoomTypes: req.RoomTypes,
	}

	facilityService := c.Container.GetService("facility").(services.InterfaceFacilityService)
	if result := facilityService.SetFacilityProfile(profile, preserve); !result.OK {
		failFromResult(c.Ctx, result)
		return
	}

	response.Success(c.Ctx, facilityService.GetFacilityProfile())
}

// 3. GetSystemStatus 获取系统总览
// @Summary 获取系统总览
// @Description 获取配置向导展示的系统总览：部署状态、摄像头/房间/快照统计
// @Tags Facility
// @Accept json
// @Produce json
// @Success 200 {object} services.SystemStatus
// @Router /system/status [get]
func (c *FacilityController) GetSystemStatus() {
	facilityService := c.Container.GetService("facility").(services.InterfaceFacilityService)
	response.Success(c.Ctx, facilityService.GetSystemStatus())
}

// 4. Deploy 标记部署完成
// @Summary 标记部署完成
// @Description 进入已配置状态并记录部署时间；只有恢复出厂状态能回到未配置状态
// @Tags Facility
// @Accept json
// @Produce json
// @Success 200 {object} services.SystemStatus
// @Router /system/deploy [post]
func (c *FacilityController) Deploy() {
	facilityService := c.Container.GetService("facility").(services.InterfaceFacilityService)
	if result := facilityService.MarkAsConfigured(); !result.OK {
		failFromResult(c.Ctx, result)
		return
	}
	response.Success(c.Ctx, facilityService.GetSystemStatus())
}

// 5. ResetConfiguration 恢复出厂状态
// @Summary 恢复出厂状态
// @Description 清空所有集合并清除已配置标记
// @Tags Facility
// @Accept json
// @Produce json
// @Success 200 {object} services.SystemStatus
// @Router /system/reset [post]
func (c *FacilityController) ResetConfiguration() {
	facilityService := c.Container.GetService("facility").(services.InterfaceFacilityService)
	if result := facilityService.ResetConfiguration(); !result.OK {
		failFromResult(c.Ctx, result)
		return
	}
	response.Success(c.Ctx, facilityService.GetSystemStatus())
}

// 6. SyncCameraCount 重算摄像头数量
// @Summary 重算机构档案的摄像头数量
// @Description 根据摄像头列表重新计算机构档案的摄像头数量，幂等操作
// @Tags Facility
// @Accept json
// @Produce json
// @Success 200 {object} models.FacilityProfile
// @Router /system/sync-camera-count [post]
func (c *FacilityController) SyncCameraCount() {
	facilityService := c.Container.GetService("facility").(services.InterfaceFacilityService)
	if result := facilityService.SyncCameraCount(); !result.OK {
		failFromResult(c.Ctx, result)
		return
	}
	response.Success(c.Ctx, facilityService.GetFacilityProfile())
}
