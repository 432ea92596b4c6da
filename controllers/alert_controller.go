package controllers

import (
	"errors"

	"carewatch-http-service/internal/error/code"
	"carewatch-http-service/internal/error/response"
	"carewatch-http-service/models"
	"carewatch-http-service/services"
	"carewatch-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceAlertController 定义告警控制器接口
type InterfaceAlertController interface {
	GetAlerts()
	GetAlert()
	CreateAlert()
	UpdateAlert()
	AcknowledgeAlert()
	ResolveAlert()
	DeleteAlert()
}

// AlertController 处理告警相关的请求
type AlertController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAlertController 创建一个新的告警控制器
func NewAlertController(ctx *gin.Context, container *container.ServiceContainer) *AlertController {
	return &AlertController{
		Ctx:       ctx,
		Container: container,
	}
}

// AlertRequest 创建告警的请求
type AlertRequest struct {
	Type        string `json:"type" binding:"required" example:"fall_detection"`
	Severity    string `json:"severity" binding:"required" example:"critical"`
	Title       string `json:"title" binding:"required" example:"检测到跌倒"`
	Description string `json:"description" example:"住户房间1号检测到疑似跌倒事件"`
	Location    string `json:"location" binding:"required" example:"住户房间 101"`
	RoomID      string `json:"room_id" binding:"required" example:"resident_room_1"`
	Floor       string `json:"floor" example:"1"`
}

// OperatorRequest 确认/解决告警时的操作人信息
type OperatorRequest struct {
	Operator string `json:"operator" example:"值班护士-王敏"`
}

// HandleAlertFunc 返回一个处理告警请求的Gin处理函数
func HandleAlertFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAlertController(ctx, container)

		switch method {
		case "getAlerts":
			controller.GetAlerts()
		case "getAlert":
			controller.GetAlert()
		case "createAlert":
			controller.CreateAlert()
		case "updateAlert":
			controller.UpdateAlert()
		case "acknowledgeAlert":
			controller.AcknowledgeAlert()
		case "resolveAlert":
			controller.ResolveAlert()
		case "deleteAlert":
			controller.DeleteAlert()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// failFromAlertError 将告警服务错误映射为对应的错误响应
func failFromAlertError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAlertNotFound):
		response.Fail(ctx, code.ErrAlertNotFound, nil)
	case errors.Is(err, services.ErrAlertValidation):
		response.FailWithMessage(ctx, code.ErrAlertValidation, err.Error(), nil)
	default:
		response.ServerError(ctx, err)
	}
}

// 1. GetAlerts 获取告警列表
// @Summary 获取告警列表
// @Description 获取告警列表，支持按状态、级别、楼层过滤，按创建时间倒序返回
// @Tags Alert
// @Accept json
// @Produce json
// @Param status query string false "告警状态: active, acknowledged, resolved"
// @Param severity query string false "告警级别: critical, high, medium, low"
// @Param floor query string false "楼层"
// @Param limit query int false "返回条数上限"
// @Success 200 {array} models.Alert
// @Router /alerts [get]
func (c *AlertController) GetAlerts() {
	var filter services.AlertFilter
	if err := c.Ctx.ShouldBindQuery(&filter); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的查询参数: "+err.Error(), nil)
		return
	}

	alertService := c.Container.GetService("alert").(services.InterfaceAlertService)
	response.Success(c.Ctx, alertService.GetAlerts(filter))
}

// 2. GetAlert 获取单个告警
// @Summary 获取单个告警
// @Description 根据ID获取告警详情
// @Tags Alert
// @Accept json
// @Produce json
// @Param id path string true "告警ID"
// @Success 200 {object} models.Alert
// @Failure 404 {object} ErrorResponse
// @Router /alerts/{id} [get]
func (c *AlertController) GetAlert() {
	id := c.Ctx.Param("id")

	alertService := c.Container.GetService("alert").(services.InterfaceAlertService)
	alert, err := alertService.GetAlertByID(id)
	if err != nil {
		failFromAlertError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, alert)
}

// 3. CreateAlert 创建新告警
// @Summary 创建新告警
// @Description 创建一条新告警，初始状态为 active
// @Tags Alert
// @Accept json
// @Produce json
// @Param alert body AlertRequest true "告警信息"
// @Success 201 {object} models.Alert
// @Failure 400 {object} ErrorResponse
// @Router /alerts [post]
func (c *AlertController) CreateAlert() {
	var req AlertRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	alert := models.Alert{
		Type:        req.Type,
		Severity:    models.AlertSeverity(req.Severity),
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		RoomID:      req.RoomID,
		Floor:       req.Floor,
	}

	alertService := c.Container.GetService("alert").(services.InterfaceAlertService)
	created, err := alertService.CreateAlert(alert)
	if err != nil {
		failFromAlertError(c.Ctx, err)
		return
	}

	response.Created(c.Ctx, created)
}

// 4. UpdateAlert 更新告警
// @Summary 更新告警
// @Description 字段级合并更新告警记录，省略的字段不变
// @Tags Alert
// @Accept json
// @Produce json
// @Param id path string true "告警ID"
// @Param alert body services.AlertUpdate true "需要更新的字段"
// @Success 200 {object} models.Alert
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /alerts/{id} [put]
func (c *AlertController) UpdateAlert() {
	id := c.Ctx.Param("id")

	var updates services.AlertUpdate
	if err := c.Ctx.ShouldBindJSON(&updates); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	alertService := c.Container.GetService("alert").(services.InterfaceAlertService)
	alert, err := alertService.UpdateAlert(id, updates)
	if err != nil {
		failFromAlertError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, alert)
}

// 5. AcknowledgeAlert 确认告警
// @Summary 确认告警
// @Description 将告警标记为已确认，并记录操作人和时间
// @Tags Alert
// @Accept json
// @Produce json
// @Param id path string true "告警ID"
// @Param request body OperatorRequest false "操作人信息"
// @Success 200 {object} models.Alert
// @Failure 404 {object} ErrorResponse
// @Router /alerts/{id}/acknowledge [put]
func (c *AlertController) AcknowledgeAlert() {
	id := c.Ctx.Param("id")

	var req OperatorRequest
	_ = c.Ctx.ShouldBindJSON(&req)

	alertService := c.Container.GetService("alert").(services.InterfaceAlertService)
	alert, err := alertService.AcknowledgeAlert(id, req.Operator)
	if err != nil {
		failFromAlertError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, alert)
}

// 6. ResolveAlert 解决告警
// @Summary 解决告警
// @Description 将告警标记为已解决，并记录操作人和时间
// @Tags Alert
// @Accept json
// @Produce json
// @Param id path string true "告警ID"
// @Param request body OperatorRequest false "操作人信息"
// @Success 200 {object} models.Alert
// @Failure 404 {object} ErrorResponse
// @Router /alerts/{id}/resolve [put]
func (c *AlertController) ResolveAlert() {
	id := c.Ctx.Param("id")

	var req OperatorRequest
	_ = c.Ctx.ShouldBindJSON(&req)

	alertService := c.Container.GetService("alert").(services.InterfaceAlertService)
	alert, err := alertService.ResolveAlert(id, req.Operator)
	if err != nil {
		failFromAlertError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, alert)
}

// 7. DeleteAlert 删除告警
// @Summary 删除告警
// @Description 删除指定的告警记录
// @Tags Alert
// @Accept json
// @Produce json
// @Param id path string true "告警ID"
// @Success 200 {object} nil
// @Failure 404 {object} ErrorResponse
// @Router /alerts/{id} [delete]
func (c *AlertController) DeleteAlert() {
	id := c.Ctx.Param("id")

	alertService := c.Container.GetService("alert").(services.InterfaceAlertService)
	if err := alertService.DeleteAlert(id); err != nil {
		failFromAlertError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, nil)
}
