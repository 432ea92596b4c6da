package models

import "time"

// CameraStatus represents the status of a surveillance camera
type CameraStatus string

const (
	CameraStatusOnline      CameraStatus = "online"
	CameraStatusOffline     CameraStatus = "offline"
	CameraStatusMaintenance CameraStatus = "maintenance"
	CameraStatusError       CameraStatus = "error"
)

// RoomUnassigned 摄像头未分配到任何房间时的哨兵值
const RoomUnassigned = "unassigned"

// 摄像头类型标识
const (
	CameraTypeDomeIndoor    = "dome_indoor"
	CameraTypeCovertIndoor  = "covert_indoor"
	CameraTypePTZOutdoor    = "ptz_outdoor"
	CameraTypeBulletOutdoor = "bullet_outdoor"
)

// CameraProfile 摄像头档案
type CameraProfile struct {
	CameraID         string       `json:"camera_id"`
	Name             string       `json:"name"`
	RoomID           string       `json:"room_id"` // 未分配时为 "unassigned"
	RoomType         string       `json:"room_type"`
	Online           bool         `json:"online"`
	AICapable        bool         `json:"ai_capable"`
	AIFeatures       []string     `json:"ai_features"`
	LastActivity     time.Time    `json:"last_activity"`
	CameraType       string       `json:"camera_type"`
	InstallLocation  string       `json:"install_location"`
	InstalledAt      time.Time    `json:"installed_at"`
	Status           CameraStatus `json:"status"`
	StreamURL        string       `json:"stream_url,omitempty"`
	RecordingEnabled bool         `json:"recording_enabled"`
}

// CameraTemplate 摄像头类型模板，配置向导据此创建摄像头
type CameraTemplate struct {
	Type              string   `json:"type"`
	Name              string   `json:"name"`
	AICapable         bool     `json:"ai_capable"`
	DefaultAIFeatures []string `json:"default_ai_features"`
}

// DefaultCameraTemplates 返回默认的摄像头类型模板列表
func DefaultCameraTemplates() []CameraTemplate {
	return []CameraTemplate{
		{
			Type:              CameraTypeDomeIndoor,
			Name:              "室内半球摄像头",
			AICapable:         true,
			DefaultAIFeatures: []string{"fall_detection", "motion_detection"},
		},
		{
			Type:              CameraTypeCovertIndoor,
			Name:              "室内隐蔽摄像头",
			AICapable:         true,
			DefaultAIFeatures: []string{"fall_detection"},
		},
		{
			Type:              CameraTypePTZOutdoor,
			Name:              "室外云台摄像头",
			AICapable:         true,
			DefaultAIFeatures: []string{"motion_detection", "perimeter_detection"},
		},
		{
			Type:              CameraTypeBulletOutdoor,
			Name:              "室外枪型摄像头",
			AICapable:         false,
			DefaultAIFeatures: nil,
		},
	}
}
