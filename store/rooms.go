package store

import (
	"fmt"
	"sort"

	"carewatch-http-service/models"
)

// generateRooms 根据机构档案的房间类型计数生成完整的房间分配列表
// 房间ID模式为 "{roomType}_{index}"，索引从1开始；
// 房间类型按字典序排列，保证重复生成结果一致
func generateRooms(profile models.FacilityProfile) []models.RoomAssignment {
	roomTypes := make([]string, 0, len(profile.RoomTypes))
	for rt := range profile.RoomTypes {
		roomTypes = append(roomTypes, rt)
	}
	sort.Strings(roomTypes)

	var rooms []models.RoomAssignment
	for _, rt := range roomTypes {
		count := profile.RoomTypes[rt]
		spec := models.LookupRoomTypeSpec(rt)
		for i := 1; i <= count; i++ {
			rooms = append(rooms, models.RoomAssignment{
				RoomID:                 fmt.Sprintf("%s_%d", rt, i),
				RoomType:               rt,
				Name:                   fmt.Sprintf("%s %d", spec.DisplayName, i),
				AssignedCameras:        []string{},
				RecommendedCameraTypes: append([]string(nil), spec.RecommendedCameraTypes...),
				MaxCameras:             spec.MaxCameras,
			})
		}
	}
	return rooms
}
