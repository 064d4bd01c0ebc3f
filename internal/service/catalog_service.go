package service

import (
	"strconv"
	"strings"

	"github.com/shucheng-next/internal/models"
	"github.com/shucheng-next/internal/repository"
)

// CatalogPage 书城目录页数据
type CatalogPage struct {
	Books   []models.Book // 当前页书籍
	Page    int           // 当前页码（1 起）
	SumPage int           // 总页数
	Total   int64         // 书籍总数
}

// BookInput 书籍写入输入
type BookInput struct {
	ID     uint
	Sn     string
	Name   string
	Price  models.Money
	Remark string
}

// CatalogService 书籍目录服务
type CatalogService struct {
	bookRepo repository.BookRepository
	pageSize int
}

// NewCatalogService 创建目录服务
func NewCatalogService(bookRepo repository.BookRepository, pageSize int) *CatalogService {
	if pageSize <= 0 {
		pageSize = 4
	}
	return &CatalogService{bookRepo: bookRepo, pageSize: pageSize}
}

// ParsePage 解析页码参数：非数字或非正数一律当第 1 页
func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// ListPage 获取目录第 page 页。
// 超出总页数的页码不拒绝，返回空切片；总页数 = ceil(总数 / 每页数)。
func (s *CatalogService) ListPage(page int) (*CatalogPage, error) {
	if page < 1 {
		page = 1
	}
	books, total, err := s.bookRepo.List(page, s.pageSize)
	if err != nil {
		return nil, err
	}
	sumPage := int((total + int64(s.pageSize) - 1) / int64(s.pageSize))
	return &CatalogPage{
		Books:   books,
		Page:    page,
		SumPage: sumPage,
		Total:   total,
	}, nil
}

// GetByID 按 ID 获取书籍
func (s *CatalogService) GetByID(id uint) (*models.Book, error) {
	book, err := s.bookRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	return book, nil
}

// ListByIDs 按 ID 列表批量获取书籍，空列表返回空结果
func (s *CatalogService) ListByIDs(ids []uint) ([]models.Book, error) {
	return s.bookRepo.ListByIDs(ids)
}

// Create 新增书籍。编号重复返回 ErrBookSnDuplicate。
func (s *CatalogService) Create(input BookInput) (*models.Book, error) {
	sn := strings.TrimSpace(input.Sn)
	name := strings.TrimSpace(input.Name)
	if sn == "" || name == "" {
		return nil, ErrBookInvalid
	}
	count, err := s.bookRepo.CountBySn(sn, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrBookSnDuplicate
	}
	book := &models.Book{
		Sn:     sn,
		Name:   name,
		Price:  input.Price,
		Remark: normalizeRemark(input.Remark),
	}
	if err := s.bookRepo.Create(book); err != nil {
		return nil, err
	}
	return book, nil
}

// Update 更新书籍。编号查重时排除自身。
func (s *CatalogService) Update(input BookInput) error {
	sn := strings.TrimSpace(input.Sn)
	name := strings.TrimSpace(input.Name)
	if input.ID == 0 || sn == "" || name == "" {
		return ErrBookInvalid
	}
	count, err := s.bookRepo.CountBySn(sn, &input.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrBookSnDuplicate
	}
	return s.bookRepo.Update(&models.Book{
		ID:     input.ID,
		Sn:     sn,
		Name:   name,
		Price:  input.Price,
		Remark: normalizeRemark(input.Remark),
	})
}

// Delete 按 ID 删除书籍。目标不存在返回 ErrBookNotFound。
func (s *CatalogService) Delete(id uint) error {
	affected, err := s.bookRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrBookNotFound
	}
	return nil
}

// normalizeRemark 空备注入库前归一为 NULL
func normalizeRemark(remark string) *string {
	trimmed := strings.TrimSpace(remark)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
