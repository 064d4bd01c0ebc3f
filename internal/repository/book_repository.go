package repository

import (
	"errors"

	"github.com/shucheng-next/internal/models"

	"gorm.io/gorm"
)

// BookRepository 书籍数据访问接口
type BookRepository interface {
	List(page, pageSize int) ([]models.Book, int64, error)
	GetByID(id uint) (*models.Book, error)
	ListByIDs(ids []uint) ([]models.Book, error)
	CountBySn(sn string, excludeID *uint) (int64, error)
	Create(book *models.Book) error
	Update(book *models.Book) error
	Delete(id uint) (int64, error)
}

// GormBookRepository GORM 实现
type GormBookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建书籍仓库
func NewBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

// List 分页查询书籍，同时返回总数用于计算总页数。
// 超出范围的页码不报错，返回空切片。
func (r *GormBookRepository) List(page, pageSize int) ([]models.Book, int64, error) {
	var books []models.Book

	query := r.db.Model(&models.Book{})
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, page, pageSize)
	if err := query.Order("id ASC").Find(&books).Error; err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

// GetByID 根据 ID 获取书籍，未找到返回 nil
func (r *GormBookRepository) GetByID(id uint) (*models.Book, error) {
	var book models.Book
	if err := r.db.First(&book, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &book, nil
}

// ListByIDs 批量查询书籍。空 ID 列表直接返回空结果，不发 SQL。
func (r *GormBookRepository) ListByIDs(ids []uint) ([]models.Book, error) {
	if len(ids) == 0 {
		return []models.Book{}, nil
	}
	var books []models.Book
	if err := r.db.Where("id IN ?", ids).Order("id ASC").Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

// CountBySn 统计指定编号的书籍数量，excludeID 非空时排除该书自身。
// 写前查重用，不依赖数据库唯一约束。
func (r *GormBookRepository) CountBySn(sn string, excludeID *uint) (int64, error) {
	query := r.db.Model(&models.Book{}).Where("sn = ?", sn)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create 新增书籍
func (r *GormBookRepository) Create(book *models.Book) error {
	return r.db.Create(book).Error
}

// Update 按 ID 更新书籍的全部可编辑字段。
// Updates 用 map 以保证 Remark 为 nil 时也会写成 NULL。
func (r *GormBookRepository) Update(book *models.Book) error {
	return r.db.Model(&models.Book{}).Where("id = ?", book.ID).Updates(map[string]interface{}{
		"sn":     book.Sn,
		"name":   book.Name,
		"price":  book.Price,
		"remark": book.Remark,
	}).Error
}

// Delete 按 ID 删除书籍，返回受影响行数供调用方判断目标是否存在
func (r *GormBookRepository) Delete(id uint) (int64, error) {
	tx := r.db.Delete(&models.Book{}, id)
	return tx.RowsAffected, tx.Error
}
