package models

import "time"

// Order 订单表（订单头）
//
// OrderNo 为时间戳加随机后缀拼接的字符串，秒级并发下可能碰撞，
// 属已知弱点，不做唯一索引加固。
// 订单是一次性写入的，没有更新或删除路径。
type Order struct {
	ID         uint      `gorm:"primarykey" json:"id"`                          // 主键
	OrderNo    string    `gorm:"type:varchar(32);index;not null" json:"order_no"` // 订单号
	TotalMoney Money     `gorm:"type:decimal(20,2);not null;default:0" json:"total_money"`
	Addr       string    `gorm:"type:varchar(200);not null" json:"addr"`  // 收货地址
	Phone      string    `gorm:"type:varchar(32);not null" json:"phone"`  // 联系电话
	OrderTime  time.Time `gorm:"index;not null" json:"order_time"`        // 下单时间
	CreatedAt  time.Time `json:"created_at"`
}

// TableName 指定表名
func (Order) TableName() string {
	return "book_orders"
}
