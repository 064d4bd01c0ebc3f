package repository

import (
	"testing"
	"time"

	"github.com/shucheng-next/internal/models"

	"github.com/shopspring/decimal"
)

func TestOrderRepositoryCreateAndList(t *testing.T) {
	repo := NewOrderRepository(newTestDB(t))

	orderTime := time.Date(2026, 3, 5, 7, 4, 9, 0, time.Local)
	affected, err := repo.CreateHeader(&models.Order{
		OrderNo:    "20260305070409123",
		TotalMoney: models.NewMoneyFromDecimal(decimal.RequireFromString("41.50")),
		Addr:       "上海",
		Phone:      "183",
		OrderTime:  orderTime,
	})
	if err != nil {
		t.Fatalf("create header failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 header row affected, got %d", affected)
	}

	affected, err = repo.CreateItems([]models.OrderItem{
		{OrderNo: "20260305070409123", BookID: 2, Quantity: 1},
		{OrderNo: "20260305070409123", BookID: 4, Quantity: 1},
	})
	if err != nil {
		t.Fatalf("create items failed: %v", err)
	}
	if affected != 2 {
		t.Fatalf("expected 2 item rows affected, got %d", affected)
	}

	orders, err := repo.ListAll()
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	if orders[0].OrderNo != "20260305070409123" {
		t.Fatalf("unexpected order no: %s", orders[0].OrderNo)
	}
	if !orders[0].OrderTime.Equal(orderTime) {
		t.Fatalf("unexpected order time: %v", orders[0].OrderTime)
	}

	items, err := repo.ListItemsByOrderNo("20260305070409123")
	if err != nil {
		t.Fatalf("list items failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].BookID != 2 || items[1].BookID != 4 {
		t.Fatalf("unexpected item book ids: %d, %d", items[0].BookID, items[1].BookID)
	}
}

func TestOrderRepositoryCreateItemsEmpty(t *testing.T) {
	repo := NewOrderRepository(newTestDB(t))

	affected, err := repo.CreateItems(nil)
	if err != nil {
		t.Fatalf("create empty items failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("expected 0 rows affected for empty items, got %d", affected)
	}
}

func TestOrderRepositoryListItemsUnknownOrder(t *testing.T) {
	repo := NewOrderRepository(newTestDB(t))

	items, err := repo.ListItemsByOrderNo("nope")
	if err != nil {
		t.Fatalf("list unknown order items failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
}
