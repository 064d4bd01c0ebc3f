package session

import (
	"context"
	"sync"
)

// Store 会话键值存储接口
//
// 购物车等会话态数据按 (sessionID, key) 存取。
// 同一会话的并发写是 last-write-wins，上层不加锁。
type Store interface {
	Get(ctx context.Context, sessionID, key string) ([]byte, bool, error)
	Set(ctx context.Context, sessionID, key string, value []byte) error
	Delete(ctx context.Context, sessionID, key string) error
}

// MemoryStore 进程内会话存储（默认后端）
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]map[string][]byte
}

// NewMemoryStore 创建内存会话存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]map[string][]byte)}
}

// Get 读取会话键值
func (s *MemoryStore) Get(ctx context.Context, sessionID, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	values, ok := s.sessions[sessionID]
	if !ok {
		return nil, false, nil
	}
	value, ok := values[key]
	if !ok {
		return nil, false, nil
	}
	// 返回副本，避免调用方改动存储内的切片
	copied := make([]byte, len(value))
	copy(copied, value)
	return copied, true, nil
}

// Set 写入会话键值
func (s *MemoryStore) Set(ctx context.Context, sessionID, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, ok := s.sessions[sessionID]
	if !ok {
		values = make(map[string][]byte)
		s.sessions[sessionID] = values
	}
	copied := make([]byte, len(value))
	copy(copied, value)
	values[key] = copied
	return nil
}

// Delete 删除会话键值
func (s *MemoryStore) Delete(ctx context.Context, sessionID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if values, ok := s.sessions[sessionID]; ok {
		delete(values, key)
	}
	return nil
}
