package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shucheng-next/internal/config"

	"github.com/redis/go-redis/v9"
)

// RedisStore Redis 会话存储，多实例部署时替代内存后端
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore 创建 Redis 会话存储
func NewRedisStore(cfg config.RedisConfig, ttl time.Duration) *RedisStore {
	prefix := strings.TrimSpace(cfg.Prefix)
	if prefix == "" {
		prefix = "sc"
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisStore) buildKey(sessionID, key string) string {
	return fmt.Sprintf("%s:session:%s:%s", s.prefix, sessionID, key)
}

// Get 读取会话键值
func (s *RedisStore) Get(ctx context.Context, sessionID, key string) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, s.buildKey(sessionID, key)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// Set 写入会话键值并刷新过期时间
func (s *RedisStore) Set(ctx context.Context, sessionID, key string, value []byte) error {
	return s.client.Set(ctx, s.buildKey(sessionID, key), value, s.ttl).Err()
}

// Delete 删除会话键值
func (s *RedisStore) Delete(ctx context.Context, sessionID, key string) error {
	return s.client.Del(ctx, s.buildKey(sessionID, key)).Err()
}
