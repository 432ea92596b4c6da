package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"carewatch-http-service/config"
	"carewatch-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// newTestRouter 创建一个注册了告警路由的测试路由器
// 空配置下Redis不可用自动降级为内存持久化，MQTT被跳过
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	serviceContainer := container.NewServiceContainer(&config.Config{})

	r := gin.New()
	api := r.Group("/api")
	api.GET("/alerts", HandleAlertFunc(serviceContainer, "getAlerts"))
	api.POST("/alerts", HandleAlertFunc(serviceContainer, "createAlert"))
	api.GET("/alerts/:id", HandleAlertFunc(serviceContainer, "getAlert"))
	api.PUT("/alerts/:id", HandleAlertFunc(serviceContainer, "updateAlert"))
	api.DELETE("/alerts/:id", HandleAlertFunc(serviceContainer, "deleteAlert"))
	api.PUT("/alerts/:id/acknowledge", HandleAlertFunc(serviceContainer, "acknowledgeAlert"))
	api.PUT("/alerts/:id/resolve", HandleAlertFunc(serviceContainer, "resolveAlert"))
	return r
}

// envelope 统一响应格式
type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// doRequest 执行请求并解析响应体
func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("序列化请求体失败: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("解析响应体失败: %v (body=%s)", err, w.Body.String())
	}
	return w, env
}

func TestGetAlertsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w, env := doRequest(t, r, http.MethodGet, "/api/alerts", nil)
	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("期望200成功响应，实际 %d %+v", w.Code, env)
	}

	var alerts []map[string]interface{}
	if err := json.Unmarshal(env.Data, &alerts); err != nil {
		t.Fatalf("解析告警列表失败: %v", err)
	}
	if len(alerts) != 3 {
		t.Errorf("期望3条示例告警，实际 %d", len(alerts))
	}

	// 状态过滤
	_, env = doRequest(t, r, http.MethodGet, "/api/alerts?status=acknowledged", nil)
	json.Unmarshal(env.Data, &alerts)
	if len(alerts) != 1 {
		t.Errorf("acknowledged 过滤期望1条，实际 %d", len(alerts))
	}
}

func TestCreateAlertEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w, env := doRequest(t, r, http.MethodPost, "/api/alerts", map[string]interface{}{
		"type":     "intrusion",
		"severity": "high",
		"title":    "夜间出入口异常",
		"location": "一楼正门",
		"room_id":  "entrance_1",
	})
	if w.Code != http.StatusCreated || !env.Success {
		t.Fatalf("期望201成功响应，实际 %d %+v", w.Code, env)
	}

	var created map[string]interface{}
	json.Unmarshal(env.Data, &created)
	if created["id"] == "" || created["status"] != "active" {
		t.Errorf("创建结果不符: %+v", created)
	}
}

func TestCreateAlertMissingFields(t *testing.T) {
	r := newTestRouter(t)

	// 缺少必填字段，绑定校验直接拒绝
	w, env := doRequest(t, r, http.MethodPost, "/api/alerts", map[string]interface{}{
		"type": "intrusion",
	})
	if w.Code != http.StatusBadRequest || env.Success {
		t.Fatalf("缺少必填字段期望400，实际 %d %+v", w.Code, env)
	}
}

func TestAlertLifecycleEndpoints(t *testing.T) {
	r := newTestRouter(t)

	_, env := doRequest(t, r, http.MethodPost, "/api/alerts", map[string]interface{}{
		"type":     "fall_detection",
		"severity": "critical",
		"title":    "检测到跌倒",
		"location": "住户房间 101",
		"room_id":  "resident_room_1",
	})
	var created struct {
		ID string `json:"id"`
	}
	json.Unmarshal(env.Data, &created)

	// 确认
	w, env := doRequest(t, r, http.MethodPut, "/api/alerts/"+created.ID+"/acknowledge", map[string]interface{}{
		"operator": "值班护士-王敏",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("确认告警期望200，实际 %d", w.Code)
	}
	var acked map[string]interface{}
	json.Unmarshal(env.Data, &acked)
	if acked["status"] != "acknowledged" || acked["acknowledged_by"] != "值班护士-王敏" {
		t.Errorf("确认结果不符: %+v", acked)
	}

	// 解除
	w, env = doRequest(t, r, http.MethodPut, "/api/alerts/"+created.ID+"/resolve", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("解除告警期望200，实际 %d", w.Code)
	}
	var resolved map[string]interface{}
	json.Unmarshal(env.Data, &resolved)
	if resolved["status"] != "resolved" {
		t.Errorf("解除结果不符: %+v", resolved)
	}

	// 删除后查询返回404
	w, _ = doRequest(t, r, http.MethodDelete, "/api/alerts/"+created.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("删除告警期望200，实际 %d", w.Code)
	}
	w, _ = doRequest(t, r, http.MethodGet, "/api/alerts/"+created.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("删除后查询期望404，实际 %d", w.Code)
	}
}

func TestGetAlertNotFound(t *testing.T) {
	r := newTestRouter(t)

	w, env := doRequest(t, r, http.MethodGet, "/api/alerts/no-such-id", nil)
	if w.Code != http.StatusNotFound || env.Success {
		t.Errorf("不存在的告警期望404，实际 %d %+v", w.Code, env)
	}
}
