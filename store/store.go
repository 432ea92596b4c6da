package store

import (
	"log"
	"sync"
	"time"

	"carewatch-http-service/models"
	"carewatch-http-service/utils"

	"github.com/google/uuid"
)

// State 配置存储的全部状态，按单一槽位整体持久化
type State struct {
	FacilityProfile       models.FacilityProfile       `json:"facility_profile"`
	CameraProfiles        []models.CameraProfile       `json:"camera_profiles"`
	RoomAssignments       []models.RoomAssignment      `json:"room_assignments"`
	CameraConfigurations  []models.CameraConfiguration `json:"camera_configurations"`
	CameraTemplates       []models.CameraTemplate      `json:"camera_templates"`
	ActiveConfigurationID string                       `json:"active_configuration_id,omitempty"`
	IsConfigured          bool                         `json:"is_configured"`
	DeployedAt            *time.Time                   `json:"deployed_at,omitempty"`
}

// ConfigurationStore 机构配置与摄像头/房间分配状态的唯一可信来源
// 显式构造、通过服务容器注入，不使用包级单例；
// Gin处理器并发调用，所有操作在同一把锁下原子执行
type ConfigurationStore struct {
	mu          sync.RWMutex
	state       State
	persistence Persistence
}

// CameraUpdate 摄像头字段级更新，nil字段不修改
type CameraUpdate struct {
	Name             *string              `json:"name,omitempty"`
	RoomID           *string              `json:"room_id,omitempty"`
	RoomType         *string              `json:"room_type,omitempty"`
	Online           *bool                `json:"online,omitempty"`
	AICapable        *bool                `json:"ai_capable,omitempty"`
	AIFeatures       *[]string            `json:"ai_features,omitempty"`
	CameraType       *string              `json:"camera_type,omitempty"`
	InstallLocation  *string              `json:"install_location,omitempty"`
	Status           *models.CameraStatus `json:"status,omitempty"`
	StreamURL        *string              `json:"stream_url,omitempty"`
	RecordingEnabled *bool                `json:"recording_enabled,omitempty"`
}

// ConfigurationUpdate 配置快照的字段级更新
type ConfigurationUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// New 创建一个新的配置存储
// persistence 可以为 nil（仅内存，不持久化）
func New(persistence Persistence) *ConfigurationStore {
	return &ConfigurationStore{
		state:       defaultState(),
		persistence: persistence,
	}
}

// defaultState 返回未配置状态的默认值
func defaultState() State {
	return State{
		FacilityProfile: models.FacilityProfile{
			RoomTypes: map[string]int{},
		},
		CameraProfiles:       []models.CameraProfile{},
		RoomAssignments:      []models.RoomAssignment{},
		CameraConfigurations: []models.CameraConfiguration{},
		CameraTemplates:      models.DefaultCameraTemplates(),
		IsConfigured:         false,
	}
}

// Restore 从持久化槽位加载状态，必要时执行版本迁移
// 槽位为空时保持默认状态，不算错误
func (s *ConfigurationStore) Restore() error {
	if s.persistence == nil {
		return nil
	}

	snap, err := s.persistence.Load()
	if err != nil {
		return err
	}
	if snap == nil {
		return nil
	}

	if snap.Version < CurrentVersion {
		log.Printf("[store] 持久化状态版本 %d 低于当前版本 %d，执行迁移", snap.Version, CurrentVersion)
		Migrate(snap)
	}

	s.mu.Lock()
	s.state = snap.State
	s.normalizeLocked()
	s.mu.Unlock()
	return nil
}

// normalizeLocked 恢复加载后修复派生字段，需持有写锁
func (s *ConfigurationStore) normalizeLocked() {
	if s.state.FacilityProfile.RoomTypes == nil {
		s.state.FacilityProfile.RoomTypes = map[string]int{}
	}
	if s.state.CameraProfiles == nil {
		s.state.CameraProfiles = []models.CameraProfile{}
	}
	if s.state.RoomAssignments == nil {
		s.state.RoomAssignments = []models.RoomAssignment{}
	}
	if s.state.CameraConfigurations == nil {
		s.state.CameraConfigurations = []models.CameraConfiguration{}
	}
	if len(s.state.CameraTemplates) == 0 {
		s.state.CameraTemplates = models.DefaultCameraTemplates()
	}
	s.state.FacilityProfile.CameraCount = len(s.state.CameraProfiles)
}

// persistLocked 将当前状态整体写入持久化槽位，需持有写锁
// 写入失败只记录日志，内存中的状态仍然是权威状态
func (s *ConfigurationStore) persistLocked() {
	if s.persistence == nil {
		return
	}
	snap := &Snapshot{State: s.state, Version: CurrentVersion}
	if err := s.persistence.Save(snap); err != nil {
		log.Printf("[store] 持久化配置状态失败: %v", err)
	}
}

// ---- 机构档案 ----

// SetFacilityProfile 整体替换机构档案
// CameraCount 始终由摄像头列表重新计算，忽略传入值；
// RoomTypes 非空时从头重新生成房间分配列表。preserveAssignments 为 true 时，
// 新列表中仍然存在的房间ID会保留原有的摄像头绑定，否则所有绑定被丢弃
func (s *ConfigurationStore) SetFacilityProfile(profile models.FacilityProfile, preserveAssignments bool) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if profile.RoomTypes == nil {
		profile.RoomTypes = map[string]int{}
	}
	profile.CameraCount = len(s.state.CameraProfiles)
	s.state.FacilityProfile = profile

	if profile.HasRoomTypes() {
		s.regenerateRoomsLocked(preserveAssignments)
	}

	s.persistLocked()
	return ok()
}

// FacilityProfile 返回当前机构档案
func (s *ConfigurationStore) FacilityProfile() models.FacilityProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneFacility(s.state.FacilityProfile)
}

// SyncCameraCountWithFacility 根据摄像头列表重新计算机构档案的摄像头数量，幂等
func (s *ConfigurationStore) SyncCameraCountWithFacility() Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.FacilityProfile.CameraCount = len(s.state.CameraProfiles)
	s.persistLocked()
	return ok()
}

// ---- 房间分配生成 ----

// GenerateRoomAssignmentsFromFacility 根据当前机构档案重新生成房间分配列表
// preserveAssignments 为 true 时，仍然存在的房间保留容量以内的摄像头绑定
func (s *ConfigurationStore) GenerateRoomAssignmentsFromFacility(preserveAssignments bool) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.regenerateRoomsLocked(preserveAssignments)
	s.persistLocked()
	return ok()
}

// regenerateRoomsLocked 房间列表重建，需持有写锁
func (s *ConfigurationStore) regenerateRoomsLocked(preserveAssignments bool) {
	oldRooms := make(map[string]*models.RoomAssignment, len(s.state.RoomAssignments))
	for i := range s.state.RoomAssignments {
		oldRooms[s.state.RoomAssignments[i].RoomID] = &s.state.RoomAssignments[i]
	}

	rooms := generateRooms(s.state.FacilityProfile)

	kept := map[string]string{} // cameraID -> roomID
	if preserveAssignments {
		for i := range rooms {
			old, exists := oldRooms[rooms[i].RoomID]
			if !exists {
				continue
			}
			for _, camID := range old.AssignedCameras {
				if len(rooms[i].AssignedCameras) >= rooms[i].MaxCameras {
					log.Printf("[store] 房间 %s 容量不足，摄像头 %s 在重建时被重置为未分配", rooms[i].RoomID, camID)
					break
				}
				if s.findCameraLocked(camID) == nil {
					continue
				}
				rooms[i].AssignedCameras = append(rooms[i].AssignedCameras, camID)
				kept[camID] = rooms[i].RoomID
			}
		}
	}

	// 未被保留的摄像头重置为未分配
	for i := range s.state.CameraProfiles {
		cam := &s.state.CameraProfiles[i]
		if roomID, stillAssigned := kept[cam.CameraID]; stillAssigned {
			cam.RoomID = roomID
		} else if cam.RoomID != models.RoomUnassigned {
			cam.RoomID = models.RoomUnassigned
		}
	}

	s.state.RoomAssignments = rooms
}

// RoomAssignments 返回全部房间分配记录
func (s *ConfigurationStore) RoomAssignments() []models.RoomAssignment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRooms(s.state.RoomAssignments)
}

// Room 按房间ID查找房间分配记录
func (s *ConfigurationStore) Room(roomID string) (models.RoomAssignment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room := s.findRoomLocked(roomID)
	if room == nil {
		return models.RoomAssignment{}, false
	}
	return cloneRoom(*room), true
}

// ---- 摄像头 ----

// AddCameraProfile 追加一个新摄像头
// RoomID 指向的房间存在且未满时同步写入房间的分配列表；
// 房间不存在时摄像头仍会被添加（记录警告）并保留悬空引用，等待房间生成；
// 房间已满时 RoomID 重置为未分配，摄像头始终可通过未分配列表查询到
func (s *ConfigurationStore) AddCameraProfile(camera models.CameraProfile) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if camera.CameraID == "" {
		camera.CameraID = utils.RandomCameraID()
		for s.findCameraLocked(camera.CameraID) != nil {
			camera.CameraID = utils.RandomCameraID()
		}
	} else if s.findCameraLocked(camera.CameraID) != nil {
		return rejected(RejectCameraExists, "摄像头 %s 已存在", camera.CameraID)
	}
	if camera.RoomID == "" {
		camera.RoomID = models.RoomUnassigned
	}
	if camera.Status == "" {
		camera.Status = models.CameraStatusOffline
	}
	if camera.AIFeatures == nil {
		camera.AIFeatures = []string{}
	}
	camera.LastActivity = time.Now()

	if camera.RoomID != models.RoomUnassigned {
		room := s.findRoomLocked(camera.RoomID)
		switch {
		case room == nil:
			log.Printf("[store] 摄像头 %s 指向不存在的房间 %s，先行添加，等待房间生成", camera.CameraID, camera.RoomID)
		case room.IsFull():
			log.Printf("[store] 房间 %s 已满，摄像头 %s 重置为未分配", camera.RoomID, camera.CameraID)
			camera.RoomID = models.RoomUnassigned
		case !room.HasCamera(camera.CameraID):
			room.AssignedCameras = append(room.AssignedCameras, camera.CameraID)
		}
	}

	s.state.CameraProfiles = append(s.state.CameraProfiles, camera)
	s.state.FacilityProfile.CameraCount = len(s.state.CameraProfiles)
	s.persistLocked()
	return ok()
}

// UpdateCameraProfile 将非空字段合并进摄像头记录并刷新最后活动时间
// RoomID 变化时同步维护新旧房间的分配列表；目标房间已满时整个更新被拒绝
//（与 AssignCameraToRoom 一致地检查容量）；目标房间不存在时仅记录警告，
// 保留悬空的 RoomID，与添加路径的容错行为一致
func (s *ConfigurationStore) UpdateCameraProfile(cameraID string, updates CameraUpdate) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	camera := s.findCameraLocked(cameraID)
	if camera == nil {
		return rejected(RejectCameraNotFound, "摄像头 %s 不存在", cameraID)
	}

	if updates.RoomID != nil && *updates.RoomID != camera.RoomID {
		newRoomID := *updates.RoomID
		if newRoomID == "" {
			newRoomID = models.RoomUnassigned
		}

		if newRoomID != models.RoomUnassigned {
			newRoom := s.findRoomLocked(newRoomID)
			if newRoom != nil && newRoom.IsFull() && !newRoom.HasCamera(cameraID) {
				return rejected(RejectRoomFull, "房间 %s 已达容量上限 %d", newRoomID, newRoom.MaxCameras)
			}
		}

		// 从旧房间移除（旧房间为 unassigned 时不做任何事）
		s.removeCameraFromAllRoomsLocked(cameraID)

		if newRoomID != models.RoomUnassigned {
			newRoom := s.findRoomLocked(newRoomID)
			if newRoom == nil {
				log.Printf("[store] 摄像头 %s 更新指向不存在的房间 %s", cameraID, newRoomID)
			} else if !newRoom.HasCamera(cameraID) {
				newRoom.AssignedCameras = append(newRoom.AssignedCameras, cameraID)
			}
		}
		camera.RoomID = newRoomID
	}

	applyCameraUpdate(camera, updates)
	camera.LastActivity = time.Now()
	s.persistLocked()
	return ok()
}

// applyCameraUpdate 合并除 RoomID 以外的字段，RoomID 由调用方单独处理
func applyCameraUpdate(camera *models.CameraProfile, u CameraUpdate) {
	if u.Name != nil {
		camera.Name = *u.Name
	}
	if u.RoomType != nil {
		camera.RoomType = *u.RoomType
	}
	if u.Online != nil {
		camera.Online = *u.Online
	}
	if u.AICapable != nil {
		camera.AICapable = *u.AICapable
	}
	if u.AIFeatures != nil {
		camera.AIFeatures = append([]string(nil), (*u.AIFeatures)...)
	}
	if u.CameraType != nil {
		camera.CameraType = *u.CameraType
	}
	if u.InstallLocation != nil {
		camera.InstallLocation = *u.InstallLocation
	}
	if u.Status != nil {
		camera.Status = *u.Status
	}
	if u.StreamURL != nil {
		camera.StreamURL = *u.StreamURL
	}
	if u.RecordingEnabled != nil {
		camera.RecordingEnabled = *u.RecordingEnabled
	}
}

// UpdateCameraStatus 更新摄像头的运行状态（MQTT状态上报入口）
func (s *ConfigurationStore) UpdateCameraStatus(cameraID string, status models.CameraStatus) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	camera := s.findCameraLocked(cameraID)
	if camera == nil {
		return rejected(RejectCameraNotFound, "摄像头 %s 不存在", cameraID)
	}

	camera.Status = status
	camera.Online = status == models.CameraStatusOnline
	camera.LastActivity = time.Now()
	s.persistLocked()
	return ok()
}

// DeleteCameraProfile 删除摄像头，并从所有房间的分配列表中清除其ID
func (s *ConfigurationStore) DeleteCameraProfile(cameraID string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.state.CameraProfiles {
		if s.state.CameraProfiles[i].CameraID == cameraID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return rejected(RejectCameraNotFound, "摄像头 %s 不存在", cameraID)
	}

	s.state.CameraProfiles = append(s.state.CameraProfiles[:idx], s.state.CameraProfiles[idx+1:]...)
	s.removeCameraFromAllRoomsLocked(cameraID)
	s.state.FacilityProfile.CameraCount = len(s.state.CameraProfiles)
	s.persistLocked()
	return ok()
}

// CameraProfiles 返回全部摄像头
func (s *ConfigurationStore) CameraProfiles() []models.CameraProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneCameras(s.state.CameraProfiles)
}

// Camera 按ID查找摄像头
func (s *ConfigurationStore) Camera(cameraID string) (models.CameraProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	camera := s.findCameraLocked(cameraID)
	if camera == nil {
		return models.CameraProfile{}, false
	}
	return cloneCamera(*camera), true
}

// GetCamerasByRoom 返回指定房间分配列表中的摄像头，纯读操作
func (s *ConfigurationStore) GetCamerasByRoom(roomID string) []models.CameraProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room := s.findRoomLocked(roomID)
	if room == nil {
		return []models.CameraProfile{}
	}

	cameras := make([]models.CameraProfile, 0, len(room.AssignedCameras))
	for _, camID := range room.AssignedCameras {
		if cam := s.findCameraLocked(camID); cam != nil {
			cameras = append(cameras, cloneCamera(*cam))
		}
	}
	return cameras
}

// GetUnassignedCameras 返回所有未分配房间的摄像头，纯读操作
func (s *ConfigurationStore) GetUnassignedCameras() []models.CameraProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var cameras []models.CameraProfile
	for i := range s.state.CameraProfiles {
		if s.state.CameraProfiles[i].RoomID == models.RoomUnassigned {
			cameras = append(cameras, cloneCamera(s.state.CameraProfiles[i]))
		}
	}
	if cameras == nil {
		cameras = []models.CameraProfile{}
	}
	return cameras
}

// CameraTemplates 返回摄像头类型模板列表
func (s *ConfigurationStore) CameraTemplates() []models.CameraTemplate {
	s.mu.RLock()
	defer s.mu.RUnlock()

	templates := make([]models.CameraTemplate, len(s.state.CameraTemplates))
	copy(templates, s.state.CameraTemplates)
	return templates
}

// ---- 分配 ----

// AssignCameraToRoom 将摄像头分配到指定房间
// 摄像头不存在、房间不存在、房间已满、重复分配时拒绝且状态不变；
// 成功时先从所有其他房间移除该摄像头（同一时刻只属于一个房间），
// 再写入目标房间并更新摄像头自身的 RoomID
func (s *ConfigurationStore) AssignCameraToRoom(cameraID, roomID string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	camera := s.findCameraLocked(cameraID)
	if camera == nil {
		return rejected(RejectCameraNotFound, "摄像头 %s 不存在", cameraID)
	}
	room := s.findRoomLocked(roomID)
	if room == nil {
		return rejected(RejectRoomNotFound, "房间 %s 不存在", roomID)
	}
	if room.HasCamera(cameraID) {
		return rejected(RejectDuplicateAssignment, "摄像头 %s 已分配到房间 %s", cameraID, roomID)
	}
	if room.IsFull() {
		return rejected(RejectRoomFull, "房间 %s 已达容量上限 %d", roomID, room.MaxCameras)
	}

	s.removeCameraFromAllRoomsLocked(cameraID)
	room.AssignedCameras = append(room.AssignedCameras, cameraID)
	camera.RoomID = roomID
	camera.RoomType = room.RoomType
	s.persistLocked()
	return ok()
}

// UnassignCameraFromRoom 将摄像头从指定房间移除，并重置其 RoomID 为未分配
func (s *ConfigurationStore) UnassignCameraFromRoom(cameraID, roomID string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	room := s.findRoomLocked(roomID)
	if room == nil {
		return rejected(RejectRoomNotFound, "房间 %s 不存在", roomID)
	}

	room.AssignedCameras = removeString(room.AssignedCameras, cameraID)
	if camera := s.findCameraLocked(cameraID); camera != nil {
		camera.RoomID = models.RoomUnassigned
	}
	s.persistLocked()
	return ok()
}

// ---- 配置快照 ----

// SaveCameraConfiguration 保存当前分配布局为命名快照
// ID和时间戳由存储分配，调用方只提供名称和描述；
// 快照内容是保存时刻房间分配和机构档案的非规范化副本
func (s *ConfigurationStore) SaveCameraConfiguration(name, description string) (models.CameraConfiguration, Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	cfg := models.CameraConfiguration{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Assignments: cloneRooms(s.state.RoomAssignments),
		Facility:    cloneFacility(s.state.FacilityProfile),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.state.CameraConfigurations = append(s.state.CameraConfigurations, cfg)
	s.persistLocked()
	return cfg, ok()
}

// UpdateCameraConfiguration 原地更新配置快照的名称或描述
func (s *ConfigurationStore) UpdateCameraConfiguration(id string, updates ConfigurationUpdate) (models.CameraConfiguration, Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.findConfigLocked(id)
	if cfg == nil {
		return models.CameraConfiguration{}, rejected(RejectConfigNotFound, "配置快照 %s 不存在", id)
	}

	if updates.Name != nil {
		cfg.Name = *updates.Name
	}
	if updates.Description != nil {
		cfg.Description = *updates.Description
	}
	cfg.UpdatedAt = time.Now()
	s.persistLocked()
	return *cfg, ok()
}

// DeleteCameraConfiguration 删除配置快照，如被删除的快照处于激活状态则清除激活标记
func (s *ConfigurationStore) DeleteCameraConfiguration(id string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.state.CameraConfigurations {
		if s.state.CameraConfigurations[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return rejected(RejectConfigNotFound, "配置快照 %s 不存在", id)
	}

	s.state.CameraConfigurations = append(s.state.CameraConfigurations[:idx], s.state.CameraConfigurations[idx+1:]...)
	if s.state.ActiveConfigurationID == id {
		s.state.ActiveConfigurationID = ""
	}
	s.persistLocked()
	return ok()
}

// SetActiveCameraConfiguration 将指定快照标记为激活，同一时刻最多一个激活快照
func (s *ConfigurationStore) SetActiveCameraConfiguration(id string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.findConfigLocked(id)
	if target == nil {
		return rejected(RejectConfigNotFound, "配置快照 %s 不存在", id)
	}

	for i := range s.state.CameraConfigurations {
		s.state.CameraConfigurations[i].IsActive = s.state.CameraConfigurations[i].ID == id
	}
	s.state.ActiveConfigurationID = id
	s.persistLocked()
	return ok()
}

// CameraConfigurations 返回全部配置快照
func (s *ConfigurationStore) CameraConfigurations() []models.CameraConfiguration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	configs := make([]models.CameraConfiguration, 0, len(s.state.CameraConfigurations))
	for i := range s.state.CameraConfigurations {
		configs = append(configs, cloneConfig(s.state.CameraConfigurations[i]))
	}
	return configs
}

// CameraConfiguration 按ID查找配置快照
func (s *ConfigurationStore) CameraConfiguration(id string) (models.CameraConfiguration, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg := s.findConfigLocked(id)
	if cfg == nil {
		return models.CameraConfiguration{}, false
	}
	return cloneConfig(*cfg), true
}

// ---- 部署状态 ----

// MarkAsConfigured 进入已配置状态并记录部署时间
// 除 ResetConfiguration 外没有回到未配置状态的途径
func (s *ConfigurationStore) MarkAsConfigured() Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.state.IsConfigured = true
	s.state.DeployedAt = &now
	s.persistLocked()
	return ok()
}

// IsConfigured 返回当前是否处于已配置状态
func (s *ConfigurationStore) IsConfigured() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsConfigured
}

// DeployedAt 返回部署时间，未部署时为 nil
func (s *ConfigurationStore) DeployedAt() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state.DeployedAt == nil {
		return nil
	}
	t := *s.state.DeployedAt
	return &t
}

// ResetConfiguration 将所有集合恢复为空的默认状态并清除已配置标记
func (s *ConfigurationStore) ResetConfiguration() Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = defaultState()
	s.persistLocked()
	return ok()
}

// ---- 内部查找与复制工具 ----

func (s *ConfigurationStore) findCameraLocked(cameraID string) *models.CameraProfile {
	for i := range s.state.CameraProfiles {
		if s.state.CameraProfiles[i].CameraID == cameraID {
			return &s.state.CameraProfiles[i]
		}
	}
	return nil
}

func (s *ConfigurationStore) findRoomLocked(roomID string) *models.RoomAssignment {
	for i := range s.state.RoomAssignments {
		if s.state.RoomAssignments[i].RoomID == roomID {
			return &s.state.RoomAssignments[i]
		}
	}
	return nil
}

func (s *ConfigurationStore) findConfigLocked(id string) *models.CameraConfiguration {
	for i := range s.state.CameraConfigurations {
		if s.state.CameraConfigurations[i].ID == id {
			return &s.state.CameraConfigurations[i]
		}
	}
	return nil
}

func (s *ConfigurationStore) removeCameraFromAllRoomsLocked(cameraID string) {
	for i := range s.state.RoomAssignments {
		s.state.RoomAssignments[i].AssignedCameras = removeString(s.state.RoomAssignments[i].AssignedCameras, cameraID)
	}
}

func removeString(list []string, target string) []string {
	out := list[:0]
	for _, v := range list {
		if v != target {
			out = append(out, v)
		}
	}
	return out
}

func cloneFacility(p models.FacilityProfile) models.FacilityProfile {
	out := p
	out.Units = append([]string(nil), p.Units...)
	out.RoomTypes = make(map[string]int, len(p.RoomTypes))
	for k, v := range p.RoomTypes {
		out.RoomTypes[k] = v
	}
	return out
}

func cloneCamera(c models.CameraProfile) models.CameraProfile {
	out := c
	out.AIFeatures = append([]string(nil), c.AIFeatures...)
	return out
}

func cloneCameras(cameras []models.CameraProfile) []models.CameraProfile {
	out := make([]models.CameraProfile, 0, len(cameras))
	for i := range cameras {
		out = append(out, cloneCamera(cameras[i]))
	}
	return out
}

func cloneRoom(r models.RoomAssignment) models.RoomAssignment {
	out := r
	out.AssignedCameras = append([]string(nil), r.AssignedCameras...)
	out.RecommendedCameraTypes = append([]string(nil), r.RecommendedCameraTypes...)
	return out
}

func cloneRooms(rooms []models.RoomAssignment) []models.RoomAssignment {
	out := make([]models.RoomAssignment, 0, len(rooms))
	for i := range rooms {
		out = append(out, cloneRoom(rooms[i]))
	}
	return out
}

func cloneConfig(c models.CameraConfiguration) models.CameraConfiguration {
	out := c
	out.Assignments = cloneRooms(c.Assignments)
	out.Facility = cloneFacility(c.Facility)
	return out
}
