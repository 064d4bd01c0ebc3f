package models

import "time"

// Book 书籍表
//
// Sn 的唯一性由写前查重保证，而不是数据库唯一约束；
// 并发写入存在查重竞态，属已知限制。
type Book struct {
	ID        uint      `gorm:"primarykey" json:"book_id"`                 // 主键
	Sn        string    `gorm:"type:varchar(64);index;not null" json:"sn"` // 书籍唯一编号（人工分配）
	Name      string    `gorm:"type:varchar(200);not null" json:"name"`    // 书名
	Price     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	Remark    *string   `gorm:"type:varchar(500)" json:"remark,omitempty"` // 备注，空字符串入库前归一为 NULL
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 指定表名
func (Book) TableName() string {
	return "books"
}
