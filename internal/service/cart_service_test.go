package service

import (
	"context"
	"testing"

	"github.com/shucheng-next/internal/session"
)

func newCartService() *CartService {
	return NewCartService(session.NewMemoryStore())
}

func TestCartAddOrIncrement(t *testing.T) {
	cart := newCartService()
	ctx := context.Background()

	if err := cart.AddOrIncrement(ctx, "s1", 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	// 同一本书再加一次：数量加一，不产生新行
	if err := cart.AddOrIncrement(ctx, "s1", 2); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	lines, err := cart.List(ctx, "s1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].BookID != 2 || lines[0].Quantity != 2 {
		t.Fatalf("expected book 2 qty 2, got book %d qty %d", lines[0].BookID, lines[0].Quantity)
	}
}

func TestCartPreservesInsertionOrder(t *testing.T) {
	cart := newCartService()
	ctx := context.Background()

	for _, id := range []uint{5, 2, 9} {
		if err := cart.AddOrIncrement(ctx, "s1", id); err != nil {
			t.Fatalf("add %d failed: %v", id, err)
		}
	}
	if err := cart.AddOrIncrement(ctx, "s1", 2); err != nil {
		t.Fatalf("increment failed: %v", err)
	}

	lines, err := cart.List(ctx, "s1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	expected := []uint{5, 2, 9}
	for i, id := range expected {
		if lines[i].BookID != id {
			t.Fatalf("expected book %d at position %d, got %d", id, i, lines[i].BookID)
		}
	}
	if lines[1].Quantity != 2 {
		t.Fatalf("expected book 2 qty 2, got %d", lines[1].Quantity)
	}
}

func TestCartRemove(t *testing.T) {
	cart := newCartService()
	ctx := context.Background()

	// 空购物车删除是 no-op，不报错
	if err := cart.Remove(ctx, "s1", 2); err != nil {
		t.Fatalf("remove from empty cart failed: %v", err)
	}

	for _, id := range []uint{1, 2, 3} {
		if err := cart.AddOrIncrement(ctx, "s1", id); err != nil {
			t.Fatalf("add %d failed: %v", id, err)
		}
	}
	if err := cart.Remove(ctx, "s1", 2); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	lines, err := cart.List(ctx, "s1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].BookID != 1 || lines[1].BookID != 3 {
		t.Fatalf("unexpected lines after remove: %+v", lines)
	}

	// 删除不存在的书不影响现有行
	if err := cart.Remove(ctx, "s1", 42); err != nil {
		t.Fatalf("remove missing book failed: %v", err)
	}
	lines, _ = cart.List(ctx, "s1")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines after no-op remove, got %d", len(lines))
	}
}

func TestCartClear(t *testing.T) {
	cart := newCartService()
	ctx := context.Background()

	if err := cart.AddOrIncrement(ctx, "s1", 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := cart.Clear(ctx, "s1"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	lines, err := cart.List(ctx, "s1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty cart after clear, got %d lines", len(lines))
	}
}

func TestCartSessionsAreIsolated(t *testing.T) {
	cart := newCartService()
	ctx := context.Background()

	if err := cart.AddOrIncrement(ctx, "s1", 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	lines, err := cart.List(ctx, "s2")
	if err != nil {
		t.Fatalf("list other session failed: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty cart for other session, got %d lines", len(lines))
	}
}
