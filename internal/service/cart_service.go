package service

import (
	"context"
	"encoding/json"

	"github.com/shucheng-next/internal/constants"
	"github.com/shucheng-next/internal/session"
)

// CartLine 购物车行：一个 (书籍ID, 数量) 对，结账前只存在于会话中
type CartLine struct {
	BookID   uint `json:"book_id"`
	Quantity int  `json:"num"`
}

// CartService 购物车服务
//
// 购物车整体以 JSON 存在会话存储的一个键下，读出-改-写回。
// 同一会话并发请求互相覆盖（last-write-wins），属已知风险。
type CartService struct {
	store session.Store
}

// NewCartService 创建购物车服务
func NewCartService(store session.Store) *CartService {
	return &CartService{store: store}
}

// List 返回当前会话的购物车行，保持加入顺序
func (s *CartService) List(ctx context.Context, sessionID string) ([]CartLine, error) {
	return s.load(ctx, sessionID)
}

// AddOrIncrement 加入购物车：已有同一本书则数量加一，否则追加数量为 1 的新行
func (s *CartService) AddOrIncrement(ctx context.Context, sessionID string, bookID uint) error {
	lines, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	found := false
	for i := range lines {
		if lines[i].BookID == bookID {
			lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, CartLine{BookID: bookID, Quantity: 1})
	}
	return s.save(ctx, sessionID, lines)
}

// Remove 从购物车删除指定书籍，不存在则不做任何事
func (s *CartService) Remove(ctx context.Context, sessionID string, bookID uint) error {
	lines, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	for i := range lines {
		if lines[i].BookID == bookID {
			lines = append(lines[:i], lines[i+1:]...)
			return s.save(ctx, sessionID, lines)
		}
	}
	return nil
}

// Clear 清空购物车，只在下单成功后调用
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID, constants.CartSessionKey)
}

func (s *CartService) load(ctx context.Context, sessionID string) ([]CartLine, error) {
	raw, ok, err := s.store.Get(ctx, sessionID, constants.CartSessionKey)
	if err != nil {
		return nil, err
	}
	if !ok || len(raw) == 0 {
		return []CartLine{}, nil
	}
	var lines []CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *CartService) save(ctx context.Context, sessionID string, lines []CartLine) error {
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, sessionID, constants.CartSessionKey, raw)
}
