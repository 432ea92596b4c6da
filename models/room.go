package models

// RoomAssignment 房间与摄像头的绑定记录
// RoomID 模式为 "{roomType}_{index}"，索引从1开始
type RoomAssignment struct {
	RoomID                 string   `json:"room_id"`
	RoomType               string   `json:"room_type"`
	Name                   string   `json:"name"`
	AssignedCameras        []string `json:"assigned_cameras"` // 顺序即分配顺序
	RecommendedCameraTypes []string `json:"recommended_camera_types"`
	MaxCameras             int      `json:"max_cameras"`
}

// RoomTypeSpec 房间类型规格：推荐摄像头类型和最大容量
type RoomTypeSpec struct {
	DisplayName            string
	RecommendedCameraTypes []string
	MaxCameras             int
}

// 房间类型规格表，固定查找表
var roomTypeSpecs = map[string]RoomTypeSpec{
	"resident_room": {
		DisplayName:            "住户房间",
		RecommendedCameraTypes: []string{CameraTypeDomeIndoor, CameraTypeCovertIndoor},
		MaxCameras:             2,
	},
	"bathroom": {
		DisplayName:            "卫生间",
		RecommendedCameraTypes: []string{CameraTypeCovertIndoor},
		MaxCameras:             1,
	},
	"dining_hall": {
		DisplayName:            "餐厅",
		RecommendedCameraTypes: []string{CameraTypePTZOutdoor, CameraTypeDomeIndoor},
		MaxCameras:             4,
	},
	"corridor": {
		DisplayName:            "走廊",
		RecommendedCameraTypes: []string{CameraTypeDomeIndoor},
		MaxCameras:             2,
	},
	"common_area": {
		DisplayName:            "公共活动区",
		RecommendedCameraTypes: []string{CameraTypeDomeIndoor, CameraTypePTZOutdoor},
		MaxCameras:             3,
	},
	"nurse_station": {
		DisplayName:            "护士站",
		RecommendedCameraTypes: []string{CameraTypeDomeIndoor},
		MaxCameras:             1,
	},
	"entrance": {
		DisplayName:            "出入口",
		RecommendedCameraTypes: []string{CameraTypeBulletOutdoor},
		MaxCameras:             2,
	},
}

// LookupRoomTypeSpec 查找房间类型规格，未知类型返回默认规格
func LookupRoomTypeSpec(roomType string) RoomTypeSpec {
	if spec, ok := roomTypeSpecs[roomType]; ok {
		return spec
	}
	return RoomTypeSpec{
		DisplayName:            roomType,
		RecommendedCameraTypes: []string{CameraTypeDomeIndoor},
		MaxCameras:             1,
	}
}

// HasCamera 检查房间是否已分配指定摄像头
func (r *RoomAssignment) HasCamera(cameraID string) bool {
	for _, id := range r.AssignedCameras {
		if id == cameraID {
			return true
		}
	}
	return false
}

// IsFull 检查房间是否已达到摄像头容量上限
func (r *RoomAssignment) IsFull() bool {
	return len(r.AssignedCameras) >= r.MaxCameras
}
