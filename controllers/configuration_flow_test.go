package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"carewatch-http-service/config"
	"carewatch-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// newConfigTestRouter 创建一个注册了完整配置路由的测试路由器
func newConfigTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	serviceContainer := container.NewServiceContainer(&config.Config{})

	r := gin.New()
	api := r.Group("/api")

	api.GET("/facility", HandleFacilityFunc(serviceContainer, "getFacility"))
	api.PUT("/facility", HandleFacilityFunc(serviceContainer, "setFacility"))
	api.GET("/system/status", HandleFacilityFunc(serviceContainer, "getSystemStatus"))
	api.POST("/system/deploy", HandleFacilityFunc(serviceContainer, "deploy"))
	api.POST("/system/reset", HandleFacilityFunc(serviceContainer, "resetConfiguration"))

	api.GET("/cameras", HandleCameraFunc(serviceContainer, "getCameras"))
	api.POST("/cameras", HandleCameraFunc(serviceContainer, "createCamera"))
	api.GET("/cameras/unassigned", HandleCameraFunc(serviceContainer, "getUnassignedCameras"))
	api.GET("/cameras/:id", HandleCameraFunc(serviceContainer, "getCamera"))
	api.DELETE("/cameras/:id", HandleCameraFunc(serviceContainer, "deleteCamera"))

	api.GET("/rooms", HandleRoomFunc(serviceContainer, "getRooms"))
	api.POST("/rooms/:id/cameras", HandleRoomFunc(serviceContainer, "assignCamera"))
	api.DELETE("/rooms/:id/cameras/:camera_id", HandleRoomFunc(serviceContainer, "unassignCamera"))

	api.GET("/configurations", HandleCameraConfigFunc(serviceContainer, "getConfigurations"))
	api.POST("/configurations", HandleCameraConfigFunc(serviceContainer, "saveConfiguration"))
	api.PUT("/configurations/:id/activate", HandleCameraConfigFunc(serviceContainer, "activateConfiguration"))

	return r
}

// TestConfigurationWizardFlow 配置向导的完整流程：
// 建档 -> 生成房间 -> 添加摄像头 -> 分配 -> 保存快照 -> 部署 -> 重置
func TestConfigurationWizardFlow(t *testing.T) {
	r := newConfigTestRouter(t)

	// 保存机构档案，房间类型计数触发房间生成
	w, env := doRequest(t, r, http.MethodPut, "/api/facility", map[string]interface{}{
		"name":       "夕阳红养老院",
		"type":       "nursing_home",
		"total_beds": 60,
		"room_types": map[string]int{
			"resident_room": 2,
			"bathroom":      1,
		},
	})
	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("保存机构档案期望200，实际 %d %+v", w.Code, env)
	}

	// 房间按类型计数生成
	_, env = doRequest(t, r, http.MethodGet, "/api/rooms", nil)
	var rooms []map[string]interface{}
	json.Unmarshal(env.Data, &rooms)
	if len(rooms) != 3 {
		t.Fatalf("期望生成3个房间，实际 %d", len(rooms))
	}

	// 添加摄像头
	w, env = doRequest(t, r, http.MethodPost, "/api/cameras", map[string]interface{}{
		"camera_id":   "CAM-A",
		"name":        "住户房间1号机",
		"camera_type": "dome_indoor",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("创建摄像头期望201，实际 %d", w.Code)
	}
	doRequest(t, r, http.MethodPost, "/api/cameras", map[string]interface{}{
		"camera_id": "CAM-B",
		"name":      "卫生间1号机",
	})

	// 新摄像头在未分配列表中
	_, env = doRequest(t, r, http.MethodGet, "/api/cameras/unassigned", nil)
	var unassigned []map[string]interface{}
	json.Unmarshal(env.Data, &unassigned)
	if len(unassigned) != 2 {
		t.Fatalf("未分配摄像头期望2台，实际 %d", len(unassigned))
	}

	// 分配到房间
	w, env = doRequest(t, r, http.MethodPost, "/api/rooms/bathroom_1/cameras", map[string]interface{}{
		"camera_id": "CAM-A",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("分配摄像头期望200，实际 %d", w.Code)
	}

	// 卫生间容量为1，第二台被拒绝并返回409
	w, env = doRequest(t, r, http.MethodPost, "/api/rooms/bathroom_1/cameras", map[string]interface{}{
		"camera_id": "CAM-B",
	})
	if w.Code != http.StatusConflict || env.Success {
		t.Fatalf("满容量房间期望409，实际 %d %+v", w.Code, env)
	}

	// 不存在的房间返回404
	w, _ = doRequest(t, r, http.MethodPost, "/api/rooms/no_such_room/cameras", map[string]interface{}{
		"camera_id": "CAM-B",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("不存在的房间期望404，实际 %d", w.Code)
	}

	// 保存并激活配置快照
	w, env = doRequest(t, r, http.MethodPost, "/api/configurations", map[string]interface{}{
		"name":        "开业配置",
		"description": "初始监控方案",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("保存快照期望201，实际 %d", w.Code)
	}
	var snapshot struct {
		ID string `json:"id"`
	}
	json.Unmarshal(env.Data, &snapshot)

	w, env = doRequest(t, r, http.MethodPut, "/api/configurations/"+snapshot.ID+"/activate", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("激活快照期望200，实际 %d", w.Code)
	}
	var activated map[string]interface{}
	json.Unmarshal(env.Data, &activated)
	if activated["is_active"] != true {
		t.Errorf("激活后的快照应带激活标记: %+v", activated)
	}

	// 部署并检查系统状态
	doRequest(t, r, http.MethodPost, "/api/system/deploy", nil)
	_, env = doRequest(t, r, http.MethodGet, "/api/system/status", nil)
	var status map[string]interface{}
	json.Unmarshal(env.Data, &status)
	if status["is_configured"] != true {
		t.Errorf("部署后系统状态应为已配置: %+v", status)
	}
	if status["camera_count"] != float64(2) {
		t.Errorf("系统状态摄像头数量期望2，实际 %v", status["camera_count"])
	}

	// 重置回到未配置状态
	doRequest(t, r, http.MethodPost, "/api/system/reset", nil)
	_, env = doRequest(t, r, http.MethodGet, "/api/system/status", nil)
	json.Unmarshal(env.Data, &status)
	if status["is_configured"] != false {
		t.Errorf("重置后系统状态应为未配置: %+v", status)
	}
}

// TestDeleteCameraCleansRoom 删除摄像头后房间分配列表同步清理
func TestDeleteCameraCleansRoom(t *testing.T) {
	r := newConfigTestRouter(t)

	doRequest(t, r, http.MethodPut, "/api/facility", map[string]interface{}{
		"name":       "测试机构",
		"room_types": map[string]int{"nurse_station": 1},
	})
	doRequest(t, r, http.MethodPost, "/api/cameras", map[string]interface{}{
		"camera_id": "CAM-A",
		"name":      "护士站摄像头",
	})
	doRequest(t, r, http.MethodPost, "/api/rooms/nurse_station_1/cameras", map[string]interface{}{
		"camera_id": "CAM-A",
	})

	w, _ := doRequest(t, r, http.MethodDelete, "/api/cameras/CAM-A", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("删除摄像头期望200，实际 %d", w.Code)
	}

	_, env := doRequest(t, r, http.MethodGet, "/api/rooms", nil)
	var rooms []struct {
		RoomID          string   `json:"room_id"`
		AssignedCameras []string `json:"assigned_cameras"`
	}
	json.Unmarshal(env.Data, &rooms)
	if len(rooms) != 1 || len(rooms[0].AssignedCameras) != 0 {
		t.Errorf("删除后房间分配列表应为空: %+v", rooms)
	}

	w, _ = doRequest(t, r, http.MethodGet, "/api/cameras/CAM-A", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("删除后查询摄像头期望404，实际 %d", w.Code)
	}
}
