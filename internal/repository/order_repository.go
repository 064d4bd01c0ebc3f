package repository

import (
	"github.com/shucheng-next/internal/models"

	"gorm.io/gorm"
)

// OrderRepository 订单数据访问接口
//
// 订单头与明细是两次独立写入，受影响行数返回给上层做成败判断；
// 两次写入之间没有事务，明细写入失败时订单头成为孤儿行。
type OrderRepository interface {
	CreateHeader(order *models.Order) (int64, error)
	CreateItems(items []models.OrderItem) (int64, error)
	ListAll() ([]models.Order, error)
	ListItemsByOrderNo(orderNo string) ([]models.OrderItem, error)
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// CreateHeader 写入订单头，返回受影响行数
func (r *GormOrderRepository) CreateHeader(order *models.Order) (int64, error) {
	tx := r.db.Create(order)
	return tx.RowsAffected, tx.Error
}

// CreateItems 批量写入订单明细，返回受影响行数
func (r *GormOrderRepository) CreateItems(items []models.OrderItem) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}
	tx := r.db.Create(&items)
	return tx.RowsAffected, tx.Error
}

// ListAll 获取全部订单头，按下单时间正序
func (r *GormOrderRepository) ListAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Order("order_time ASC, id ASC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListItemsByOrderNo 按订单号获取订单明细
func (r *GormOrderRepository) ListItemsByOrderNo(orderNo string) ([]models.OrderItem, error) {
	var items []models.OrderItem
	if err := r.db.Where("order_no = ?", orderNo).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
