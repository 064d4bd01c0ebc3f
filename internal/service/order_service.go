package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/shucheng-next/internal/constants"
	"github.com/shucheng-next/internal/logger"
	"github.com/shucheng-next/internal/models"
	"github.com/shucheng-next/internal/repository"
)

// PlaceOrderInput 下单输入
type PlaceOrderInput struct {
	Lines      []CartLine
	Addr       string
	Phone      string
	TotalMoney models.Money
}

// OrderView 订单列表展示行，下单时间已格式化
type OrderView struct {
	OrderNo    string
	TotalMoney models.Money
	Addr       string
	Phone      string
	OrderTime  string
}

// OrderDetail 订单明细与对应书籍，按书籍 ID 配对
type OrderDetail struct {
	OrderNo string
	Items   []models.OrderItem
	Books   map[uint]models.Book
}

// OrderService 订单服务
type OrderService struct {
	orderRepo repository.OrderRepository
	bookRepo  repository.BookRepository
	now       func() time.Time
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, bookRepo repository.BookRepository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		bookRepo:  bookRepo,
		now:       time.Now,
	}
}

// PlaceOrder 下单：先写订单头，成功后批量写订单明细，返回订单号。
//
// 订单头写入未影响任何行时直接失败，不再写明细；
// 明细写入失败时订单头保持为孤儿行，两次写入之间没有事务。
// 购物车由调用方在成功后清空。
func (s *OrderService) PlaceOrder(input PlaceOrderInput) (string, error) {
	if len(input.Lines) == 0 {
		return "", ErrCartEmpty
	}
	addr := strings.TrimSpace(input.Addr)
	phone := strings.TrimSpace(input.Phone)

	orderTime := s.now()
	orderNo := generateOrderNo(orderTime)

	affected, err := s.orderRepo.CreateHeader(&models.Order{
		OrderNo:    orderNo,
		TotalMoney: input.TotalMoney,
		Addr:       addr,
		Phone:      phone,
		OrderTime:  orderTime,
	})
	if err != nil {
		return "", err
	}
	if affected == 0 {
		return "", ErrOrderInsertFailed
	}

	items := make([]models.OrderItem, 0, len(input.Lines))
	for _, line := range input.Lines {
		items = append(items, models.OrderItem{
			OrderNo:  orderNo,
			BookID:   line.BookID,
			Quantity: line.Quantity,
		})
	}
	affected, err = s.orderRepo.CreateItems(items)
	if err != nil {
		return "", err
	}
	if affected == 0 {
		logger.Warnw("order_items_insert_empty", "order_no", orderNo)
		return "", ErrOrderInsertFailed
	}
	return orderNo, nil
}

// ListOrders 返回全部订单，下单时间格式化为 YYYY-MM-DD HH:MM:SS
func (s *OrderService) ListOrders() ([]OrderView, error) {
	orders, err := s.orderRepo.ListAll()
	if err != nil {
		return nil, err
	}
	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, OrderView{
			OrderNo:    order.OrderNo,
			TotalMoney: order.TotalMoney,
			Addr:       order.Addr,
			Phone:      order.Phone,
			OrderTime:  order.OrderTime.Format(constants.OrderTimeLayout),
		})
	}
	return views, nil
}

// GetOrderDetail 获取订单明细，并把明细里的书籍 ID 解析成完整书籍记录
func (s *OrderService) GetOrderDetail(orderNo string) (*OrderDetail, error) {
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" {
		return nil, ErrOrderNotFound
	}
	items, err := s.orderRepo.ListItemsByOrderNo(orderNo)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrOrderNotFound
	}

	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.BookID)
	}
	books, err := s.bookRepo.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	bookMap := make(map[uint]models.Book, len(books))
	for _, book := range books {
		bookMap[book.ID] = book
	}
	return &OrderDetail{
		OrderNo: orderNo,
		Items:   items,
		Books:   bookMap,
	}, nil
}

// generateOrderNo 生成订单号：秒级时间戳加 [0,1000) 的随机数。
// 同一秒内随机数相同即碰撞，属已知弱点，这里不加固。
func generateOrderNo(t time.Time) string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000))
	suffix := int64(0)
	if err == nil {
		suffix = n.Int64()
	}
	return fmt.Sprintf("%s%d", t.Format(constants.OrderNoTimeLayout), suffix)
}
