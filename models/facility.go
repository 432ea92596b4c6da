package models

// FacilityType 养老机构类型
type FacilityType string

const (
	FacilityTypeNursingHome    FacilityType = "nursing_home"    // 养老院
	FacilityTypeAssistedLiving FacilityType = "assisted_living" // 协助生活机构
	FacilityTypeMemoryCare     FacilityType = "memory_care"     // 记忆照护机构
	FacilityTypeRehabilitation FacilityType = "rehabilitation"  // 康复中心
)

// FacilityProfile 机构档案
// CameraCount 是派生字段，始终由摄像头列表重新计算，不信任调用方传入的值
type FacilityProfile struct {
	Name        string         `json:"name"`
	Type        FacilityType   `json:"type"`
	TotalBeds   int            `json:"total_beds"`
	Units       []string       `json:"units"`
	CameraCount int            `json:"camera_count"`
	RoomTypes   map[string]int `json:"room_types"` // 房间类型 -> 数量
}

// HasRoomTypes 检查机构档案是否包含房间类型配置
func (p *FacilityProfile) HasRoomTypes() bool {
	return len(p.RoomTypes) > 0
}
