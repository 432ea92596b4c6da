package controllers

import (
	"carewatch-http-service/internal/error/code"
	"carewatch-http-service/internal/error/response"
	"carewatch-http-service/services"
	"carewatch-http-service/services/container"
	"carewatch-http-service/store"

	"github.com/gin-gonic/gin"
)

// InterfaceCameraConfigController 定义配置快照控制器接口
type InterfaceCameraConfigController interface {
	GetConfigurations()
	GetConfiguration()
	SaveConfiguration()
	UpdateConfiguration()
	DeleteConfiguration()
	ActivateConfiguration()
}

// CameraConfigController 处理配置快照相关的请求
type CameraConfigController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewCameraConfigController 创建一个新的配置快照控制器
func NewCameraConfigController(ctx *gin.Context, container *container.ServiceContainer) *CameraConfigController {
	return &CameraConfigController{
		Ctx:       ctx,
		Container: container,
	}
}

// SaveConfigurationRequest 保存配置快照的请求
type SaveConfigurationRequest struct {
	Name        string `json:"name" binding:"required" example:"夜间值班配置"`
	Description string `json:"description" example:"夜间减少公共区域监控的配置方案"`
}

// HandleCameraConfigFunc 返回一个处理配置快照请求的Gin处理函数
func HandleCameraConfigFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewCameraConfigController(ctx, container)

		switch method {
		case "getConfigurations":
			controller.GetConfigurations()
		case "getConfiguration":
			controller.GetConfiguration()
		case "saveConfiguration":
			controller.SaveConfiguration()
		case "updateConfiguration":
			controller.UpdateConfiguration()
		case "deleteConfiguration":
			controller.DeleteConfiguration()
		case "activateConfiguration":
			controller.ActivateConfiguration()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetConfigurations 获取所有配置快照
// @Summary 获取所有配置快照
// @Description 获取保存的全部摄像头配置快照
// @Tags Configuration
// @Accept json
// @Produce json
// @Success 200 {array} models.CameraConfiguration
// @Router /configurations [get]
func (c *CameraConfigController) GetConfigurations() {
	configService := c.Container.GetService("camera_config").(services.InterfaceCameraConfigService)
	response.Success(c.Ctx, configService.GetConfigurations())
}

// 2. GetConfiguration 获取单个配置快照
// @Summary 获取单个配置快照
// @Description 根据ID获取配置快照详情
// @Tags Configuration
// @Accept json
// @Produce json
// @Param id path string true "配置快照ID"
// @Success 200 {object} models.CameraConfiguration
// @Failure 404 {object} ErrorResponse
// @Router /configurations/{id} [get]
func (c *CameraConfigController) GetConfiguration() {
	id := c.Ctx.Param("id")

	configService := c.Container.GetService("camera_config").(services.InterfaceCameraConfigService)
	configuration, found := configService.GetConfigurationByID(id)
	if !found {
		response.Fail(c.Ctx, code.ErrConfigNotFound, nil)
		return
	}
	response.Success(c.Ctx, configuration)
}

// 3. SaveConfiguration 保存当前配置为快照
// @Summary 保存配置快照
// @Description 把当前的机构档案与房间分配保存为命名快照
// @Tags Configuration
// @Accept json
// @Produce json
// @Param request body SaveConfigurationRequest true "快照名称与描述"
// @Success 201 {object} models.CameraConfiguration
// @Failure 400 {object} ErrorResponse
// @Router /configurations [post]
func (c *CameraConfigController) SaveConfiguration() {
	var req SaveConfigurationRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	configService := c.Container.GetService("camera_config").(services.InterfaceCameraConfigService)
	configuration, result := configService.SaveConfiguration(req.Name, req.Description)
	if !result.OK {
		failFromResult(c.Ctx, result)
		return
	}

	response.Created(c.Ctx, configuration)
}

// 4. UpdateConfiguration 更新配置快照
// @Summary 更新配置快照
// @Description 更新快照的名称或描述，省略的字段不变
// @Tags Configuration
// @Accept json
// @Produce json
// @Param id path string true "配置快照ID"
// @Param request body store.ConfigurationUpdate true "需要更新的字段"
// @Success 200 {object} models.CameraConfiguration
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /configurations/{id} [put]
func (c *CameraConfigController) UpdateConfiguration() {
	id := c.Ctx.Param("id")

	var updates store.ConfigurationUpdate
	if err := c.Ctx.ShouldBindJSON(&updates); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	configService := c.Container.GetService("camera_config").(services.InterfaceCameraConfigService)
	configuration, result := configService.UpdateConfiguration(id, updates)
	if !result.OK {
		failFromResult(c.Ctx, result)
		return
	}

	response.Success(c.Ctx, configuration)
}

// 5. DeleteConfiguration 删除配置快照
// @Summary 删除配置快照
// @Description 删除指定的配置快照，删除当前激活的快照会同时清除激活标记
// @Tags Configuration
// @Accept json
// @Produce json
// @Param id path string true "配置快照ID"
// @Success 200 {object} nil
// @Failure 404 {object} ErrorResponse
// @Router /configurations/{id} [delete]
func (c *CameraConfigController) DeleteConfiguration() {
	id := c.Ctx.Param("id")

	configService := c.Container.GetService("camera_config").(services.InterfaceCameraConfigService)
	if result := configService.DeleteConfiguration(id); !result.OK {
		failFromResult(c.Ctx, result)
		return
	}

	response.Success(c.Ctx, nil)
}

// 6. ActivateConfiguration 激活配置快照
// @Summary 激活配置快照
// @Description 将指定快照标记为当前激活配置，同一时间只有一个激活快照
// @Tags Configuration
// @Accept json
// @Produce json
// @Param id path string true "配置快照ID"
// @Success 200 {object} models.CameraConfiguration
// @Failure 404 {object} ErrorResponse
// @Router /configurations/{id}/activate [put]
func (c *CameraConfigController) ActivateConfiguration() {
	id := c.Ctx.Param("id")

	configService := c.Container.GetService("camera_config").(services.InterfaceCameraConfigService)
	if result := configService.ActivateConfiguration(id); !result.OK {
		failFromResult(c.Ctx, result)
		return
	}

	configuration, _ := configService.GetConfigurationByID(id)
	response.Success(c.Ctx, configuration)
}
