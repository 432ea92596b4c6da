package store

import (
	"log"
	"sync"

	"carewatch-http-service/models"
)

// CurrentVersion 持久化状态的当前模式版本
const CurrentVersion = 3

// SlotKey 配置状态持久化槽位的固定命名键
const SlotKey = "carewatch:configuration_store"

// Snapshot 持久化槽位中的完整内容：{state, version}
type Snapshot struct {
	State   State `json:"state"`
	Version int   `json:"version"`
}

// Persistence 配置状态的持久化抽象
// Load 返回 (nil, nil) 表示槽位为空
type Persistence interface {
	Save(snap *Snapshot) error
	Load() (*Snapshot, error)
}

// migration 单步前向迁移，按版本号排列，每步幂等
type migration struct {
	to    int
	apply func(*State)
}

var migrations = []migration{
	{to: 2, apply: migrateBackfillRoomTypes},
	{to: 3, apply: migrateRestoreDefaults},
}

// Migrate 将快照逐步迁移到当前版本
// 仅支持旧到新的单向迁移，重复执行无副作用
func Migrate(snap *Snapshot) {
	for _, m := range migrations {
		if snap.Version < m.to {
			log.Printf("[store] 迁移持久化状态: v%d -> v%d", snap.Version, m.to)
			m.apply(&snap.State)
			snap.Version = m.to
		}
	}
}

// migrateBackfillRoomTypes 补齐早期版本缺失的房间类型计数映射
func migrateBackfillRoomTypes(state *State) {
	if state.FacilityProfile.RoomTypes == nil {
		state.FacilityProfile.RoomTypes = map[string]int{}
	}
}

// migrateRestoreDefaults 恢复空的摄像头模板列表并重算派生的摄像头数量
func migrateRestoreDefaults(state *State) {
	if len(state.CameraTemplates) == 0 {
		state.CameraTemplates = models.DefaultCameraTemplates()
	}
	state.FacilityProfile.CameraCount = len(state.CameraProfiles)
}

// MemoryPersistence 内存持久化实现
// 用于测试，也作为Redis不可用时的降级方案
type MemoryPersistence struct {
	mu   sync.Mutex
	snap *Snapshot
}

// NewMemoryPersistence 创建内存持久化实例
func NewMemoryPersistence() *MemoryPersistence {
	return &MemoryPersistence{}
}

// Save 保存快照的副本
func (p *MemoryPersistence) Save(snap *Snapshot) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	copied := *snap
	p.snap = &copied
	return nil
}

// Load 返回最近保存的快照
func (p *MemoryPersistence) Load() (*Snapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.snap == nil {
		return nil, nil
	}
	copied := *p.snap
	return &copied, nil
}

// Seed 预置一个快照，供迁移测试使用
func (p *MemoryPersistence) Seed(snap *Snapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.snap = snap
}
