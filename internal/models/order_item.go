package models

import "time"

// OrderItem 订单明细表，一条购物车行对应一行
type OrderItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                            // 主键
	OrderNo   string    `gorm:"type:varchar(32);index;not null" json:"order_no"` // 所属订单号
	BookID    uint      `gorm:"index;not null" json:"book_id"`                   // 书籍ID
	Quantity  int       `gorm:"not null" json:"num"`                             // 数量
	CreatedAt time.Time `json:"created_at"`
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
