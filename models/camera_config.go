package models

import "time"

// CameraConfiguration 摄像头配置快照
// 保存某一时刻的完整房间分配布局，以及保存时机构档案的非规范化副本
type CameraConfiguration struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Assignments []RoomAssignment `json:"assignments"`
	Facility    FacilityProfile  `json:"facility"`
	IsActive    bool             `json:"is_active"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
