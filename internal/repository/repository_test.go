package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shucheng-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// newTestDB 打开测试用内存数据库，按测试名隔离
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Book{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func seedBooks(t *testing.T, repo BookRepository, count int) {
	t.Helper()
	for i := 1; i <= count; i++ {
		book := models.Book{
			Sn:   fmt.Sprintf("B%03d", i),
			Name: fmt.Sprintf("book-%d", i),
		}
		if err := repo.Create(&book); err != nil {
			t.Fatalf("seed book %d failed: %v", i, err)
		}
	}
}
