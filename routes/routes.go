package routes

import (
	"carewatch-http-service/controllers"
	"carewatch-http-service/internal/app/middleware"
	"carewatch-http-service/services/container"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(serviceContainer *container.ServiceContainer) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// 设置正确的Content-Type，确保UTF-8编码
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})
	// 全局限流
	r.Use(middleware.IPRateLimiter(50, 100))

	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API 路由根路径
	api := r.Group("/api")
	// 读多写少的配置接口走响应缓存
	api.Use(middleware.Cache())

	// 健康检查
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// 机构档案路由
	api.GET("/facility", controllers.HandleFacilityFunc(container, "getFacility"))
	api.PUT("/facility", controllers.HandleFacilityFunc(container, "setFacility"))

	// 系统状态路由
	api.GET("/system/status", controllers.HandleFacilityFunc(container, "getSystemStatus"))
	api.POST("/system/deploy", controllers.HandleFacilityFunc(container, "deploy"))
	api.POST("/system/reset", controllers.HandleFacilityFunc(container, "resetConfiguration"))
	api.POST("/system/sync-camera-count", controllers.HandleFacilityFunc(container, "syncCameraCount"))

	// 摄像头路由
	api.GET("/cameras", controllers.HandleCameraFunc(container, "getCameras"))
	api.POST("/cameras", controllers.HandleCameraFunc(container, "createCamera"))
	api.GET("/cameras/unassigned", controllers.HandleCameraFunc(container, "getUnassignedCameras"))
	api.GET("/cameras/templates", controllers.HandleCameraFunc(container, "getCameraTemplates"))
	api.GET("/cameras/:id", controllers.HandleCameraFunc(container, "getCamera"))
	api.PUT("/cameras/:id", controllers.HandleCameraFunc(container, "updateCamera"))
	api.DELETE("/cameras/:id", controllers.HandleCameraFunc(container, "deleteCamera"))
	// 摄像头状态上报，与MQTT状态上报等效
	api.POST("/camera/status", controllers.HandleCameraFunc(container, "reportCameraStatus"))

	// 房间分配路由
	api.GET("/rooms", controllers.HandleRoomFunc(container, "getRooms"))
	api.POST("/rooms/generate", controllers.HandleRoomFunc(container, "generateRooms"))
	api.GET("/rooms/:id", controllers.HandleRoomFunc(container, "getRoom"))
	api.GET("/rooms/:id/cameras", controllers.HandleRoomFunc(container, "getRoomCameras"))
	api.POST("/rooms/:id/cameras", controllers.HandleRoomFunc(container, "assignCamera"))
	api.DELETE("/rooms/:id/cameras/:camera_id", controllers.HandleRoomFunc(container, "unassignCamera"))

	// 配置快照路由
	api.GET("/configurations", controllers.HandleCameraConfigFunc(container, "getConfigurations"))
	api.POST("/configurations", controllers.HandleCameraConfigFunc(container, "saveConfiguration"))
	api.GET("/configurations/:id", controllers.HandleCameraConfigFunc(container, "getConfiguration"))
	api.PUT("/configurations/:id", controllers.HandleCameraConfigFunc(container, "updateConfiguration"))
	api.DELETE("/configurations/:id", controllers.HandleCameraConfigFunc(container, "deleteConfiguration"))
	api.PUT("/configurations/:id/activate", controllers.HandleCameraConfigFunc(container, "activateConfiguration"))

	// 告警路由
	api.GET("/alerts", controllers.HandleAlertFunc(container, "getAlerts"))
	api.POST("/alerts", controllers.HandleAlertFunc(container, "createAlert"))
	api.GET("/alerts/:id", controllers.HandleAlertFunc(container, "getAlert"))
	api.PUT("/alerts/:id", controllers.HandleAlertFunc(container, "updateAlert"))
	api.DELETE("/alerts/:id", controllers.HandleAlertFunc(container, "deleteAlert"))
	api.PUT("/alerts/:id/acknowledge", controllers.HandleAlertFunc(container, "acknowledgeAlert"))
	api.PUT("/alerts/:id/resolve", controllers.HandleAlertFunc(container, "resolveAlert"))
}
