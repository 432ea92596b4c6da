package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"carewatch-http-service/config"
	"carewatch-http-service/store"

	"github.com/go-redis/redis/v8"
)

// RedisService handles Redis operations
// 同时实现 store.Persistence，配置状态整体序列化到固定槽位
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) *RedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx := context.Background()

	return &RedisService{
		Client: client,
		Ctx:    ctx,
	}
}

// Ping 测试Redis连接
func (s *RedisService) Ping() error {
	ctx, cancel := context.WithTimeout(s.Ctx, 5*time.Second)
	defer cancel()
	return s.Client.Ping(ctx).Err()
}

// Set sets a key-value pair in Redis with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// Get gets a value from Redis by key
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(val), dest)
}

// Delete deletes a key from Redis
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// Save 将配置状态快照写入固定槽位（store.Persistence 实现）
// 配置状态不过期
func (s *RedisService) Save(snap *store.Snapshot) error {
	return s.Set(store.SlotKey, snap, 0)
}

// Load 从固定槽位读取配置状态快照，槽位为空时返回 (nil, nil)
func (s *RedisService) Load() (*store.Snapshot, error) {
	var snap store.Snapshot
	err := s.Get(store.SlotKey, &snap)
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &snap, nil
}
