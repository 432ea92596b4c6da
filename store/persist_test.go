package store

import (
	"testing"

	"carewatch-http-service/models"
)

func TestRestoreFromEmptySlot(t *testing.T) {
	s := New(NewMemoryPersistence())
	if err := s.Restore(); err != nil {
		t.Fatalf("空槽位恢复不应报错: %v", err)
	}

	// 保持默认状态
	if s.IsConfigured() {
		t.Error("空槽位恢复后不应是已配置状态")
	}
	if len(s.CameraTemplates()) == 0 {
		t.Error("默认状态应包含摄像头模板")
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	persistence := NewMemoryPersistence()

	// 第一个存储实例写入状态
	s1 := New(persistence)
	s1.SetFacilityProfile(models.FacilityProfile{
		Name:      "夕阳红养老院",
		Type:      models.FacilityTypeNursingHome,
		RoomTypes: map[string]int{"resident_room": 2},
	}, false)
	s1.AddCameraProfile(models.CameraProfile{CameraID: "CAM-A", Name: "一号机"})
	s1.AssignCameraToRoom("CAM-A", "resident_room_1")
	s1.MarkAsConfigured()

	// 第二个实例从同一槽位恢复
	s2 := New(persistence)
	if err := s2.Restore(); err != nil {
		t.Fatalf("恢复失败: %v", err)
	}

	if s2.FacilityProfile().Name != "夕阳红养老院" {
		t.Errorf("机构档案未恢复: %+v", s2.FacilityProfile())
	}
	camera, found := s2.Camera("CAM-A")
	if !found || camera.RoomID != "resident_room_1" {
		t.Errorf("摄像头分配未恢复: %+v", camera)
	}
	room, _ := s2.Room("resident_room_1")
	if !room.HasCamera("CAM-A") {
		t.Error("房间分配列表未恢复")
	}
	if !s2.IsConfigured() {
		t.Error("已配置标记未恢复")
	}
}

func TestMigrateFromVersion1(t *testing.T) {
	persistence := NewMemoryPersistence()

	// 模拟早期版本的持久化状态：无 RoomTypes、无模板
	persistence.Seed(&Snapshot{
		Version: 1,
		State: State{
			FacilityProfile: models.FacilityProfile{
				Name:        "老版本机构",
				CameraCount: 42, // 过期的派生值
			},
			CameraProfiles: []models.CameraProfile{
				{CameraID: "CAM-A", Name: "一号机", RoomID: models.RoomUnassigned},
			},
		},
	})

	s := New(persistence)
	if err := s.Restore(); err != nil {
		t.Fatalf("恢复失败: %v", err)
	}

	profile := s.FacilityProfile()
	if profile.RoomTypes == nil {
		t.Error("迁移应补齐 RoomTypes 映射")
	}
	if profile.CameraCount != 1 {
		t.Errorf("迁移应重算摄像头数量，期望1实际 %d", profile.CameraCount)
	}
	if len(s.CameraTemplates()) == 0 {
		t.Error("迁移应恢复默认摄像头模板")
	}
}

func TestMigrateFromVersion2(t *testing.T) {
	persistence := NewMemoryPersistence()

	// 版本2的快照：RoomTypes 可能仍为 nil，模板为空
	persistence.Seed(&Snapshot{
		Version: 2,
		State: State{
			FacilityProfile: models.FacilityProfile{Name: "二版机构"},
		},
	})

	s := New(persistence)
	if err := s.Restore(); err != nil {
		t.Fatalf("恢复失败: %v", err)
	}

	profile := s.FacilityProfile()
	if profile.RoomTypes == nil {
		t.Error("加载后 RoomTypes 应为空映射而非 nil")
	}
	if len(profile.RoomTypes) != 0 {
		t.Errorf("RoomTypes 应为空映射，实际 %v", profile.RoomTypes)
	}
	if len(s.CameraTemplates()) == 0 {
		t.Error("加载后应恢复默认摄像头模板")
	}
	if profile.CameraCount != 0 {
		t.Errorf("摄像头数量应重算为0，实际 %d", profile.CameraCount)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	snap := &Snapshot{
		Version: 1,
		State: State{
			FacilityProfile: models.FacilityProfile{Name: "测试"},
		},
	}

	Migrate(snap)
	if snap.Version != CurrentVersion {
		t.Fatalf("迁移后版本期望 %d，实际 %d", CurrentVersion, snap.Version)
	}
	templatesAfterFirst := len(snap.State.CameraTemplates)

	// 重复执行无副作用
	Migrate(snap)
	if snap.Version != CurrentVersion {
		t.Errorf("重复迁移改变了版本: %d", snap.Version)
	}
	if len(snap.State.CameraTemplates) != templatesAfterFirst {
		t.Error("重复迁移改变了模板列表")
	}
}

func TestPersistAfterEveryMutation(t *testing.T) {
	persistence := NewMemoryPersistence()
	s := New(persistence)

	s.SetFacilityProfile(models.FacilityProfile{
		Name:      "写穿测试",
		RoomTypes: map[string]int{"bathroom": 1},
	}, false)

	snap, err := persistence.Load()
	if err != nil || snap == nil {
		t.Fatalf("变更后槽位应有内容: %v", err)
	}
	if snap.Version != CurrentVersion {
		t.Errorf("写入的快照版本期望 %d，实际 %d", CurrentVersion, snap.Version)
	}
	if snap.State.FacilityProfile.Name != "写穿测试" {
		t.Errorf("写入的快照内容不符: %+v", snap.State.FacilityProfile)
	}

	s.AddCameraProfile(models.CameraProfile{CameraID: "CAM-A", Name: "一号机"})
	snap, _ = persistence.Load()
	if len(snap.State.CameraProfiles) != 1 {
		t.Errorf("摄像头变更未写入槽位: %d", len(snap.State.CameraProfiles))
	}
}
