package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shucheng-next/internal/repository"
)

func TestParsePage(t *testing.T) {
	cases := []struct {
		raw      string
		expected int
	}{
		{"", 1},
		{"abc", 1},
		{"0", 1},
		{"-3", 1},
		{"1.5", 1},
		{"1", 1},
		{"2", 2},
		{" 3 ", 3},
	}
	for _, tc := range cases {
		if got := ParsePage(tc.raw); got != tc.expected {
			t.Fatalf("ParsePage(%q) = %d, expected %d", tc.raw, got, tc.expected)
		}
	}
}

func TestCatalogSumPage(t *testing.T) {
	// 总页数 = ceil(总数 / 4)
	cases := map[int]int{
		0: 0,
		1: 1,
		4: 1,
		5: 2,
		8: 2,
		9: 3,
	}
	for total, expected := range cases {
		total, expected := total, expected
		t.Run(fmt.Sprintf("total_%d", total), func(t *testing.T) {
			repo := repository.NewBookRepository(newTestDB(t))
			seedBooks(t, repo, total)
			catalog := NewCatalogService(repo, 4)

			page, err := catalog.ListPage(1)
			if err != nil {
				t.Fatalf("list page failed: %v", err)
			}
			if page.SumPage != expected {
				t.Fatalf("expected sum page %d for %d books, got %d", expected, total, page.SumPage)
			}
		})
	}
}

func TestCatalogListPageSlices(t *testing.T) {
	repo := repository.NewBookRepository(newTestDB(t))
	seedBooks(t, repo, 9)
	catalog := NewCatalogService(repo, 4)

	// 9 本书每页 4 本：第 3 页剩 1 本，总页数 3
	page, err := catalog.ListPage(3)
	if err != nil {
		t.Fatalf("list page 3 failed: %v", err)
	}
	if len(page.Books) != 1 {
		t.Fatalf("expected 1 book on page 3, got %d", len(page.Books))
	}
	if page.SumPage != 3 {
		t.Fatalf("expected sum page 3, got %d", page.SumPage)
	}

	// 非正页码当第 1 页处理
	page, err = catalog.ListPage(-2)
	if err != nil {
		t.Fatalf("list page -2 failed: %v", err)
	}
	if page.Page != 1 || len(page.Books) != 4 {
		t.Fatalf("expected page 1 with 4 books, got page %d with %d", page.Page, len(page.Books))
	}

	// 超出范围返回空切片
	page, err = catalog.ListPage(4)
	if err != nil {
		t.Fatalf("list page 4 failed: %v", err)
	}
	if len(page.Books) != 0 {
		t.Fatalf("expected empty page 4, got %d books", len(page.Books))
	}
}

func TestCatalogCreateDuplicateSn(t *testing.T) {
	repo := repository.NewBookRepository(newTestDB(t))
	catalog := NewCatalogService(repo, 4)

	if _, err := catalog.Create(BookInput{Sn: "B001", Name: "first"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	_, err := catalog.Create(BookInput{Sn: "B001", Name: "second"})
	if !errors.Is(err, ErrBookSnDuplicate) {
		t.Fatalf("expected ErrBookSnDuplicate, got %v", err)
	}
}

func TestCatalogUpdateDuplicateSnExcludesSelf(t *testing.T) {
	repo := repository.NewBookRepository(newTestDB(t))
	catalog := NewCatalogService(repo, 4)

	first, err := catalog.Create(BookInput{Sn: "B001", Name: "first"})
	if err != nil {
		t.Fatalf("create first failed: %v", err)
	}
	second, err := catalog.Create(BookInput{Sn: "B002", Name: "second"})
	if err != nil {
		t.Fatalf("create second failed: %v", err)
	}

	// 保留自己的编号不算重复
	if err := catalog.Update(BookInput{ID: first.ID, Sn: "B001", Name: "first-renamed"}); err != nil {
		t.Fatalf("update keeping own sn failed: %v", err)
	}

	// 改成别人的编号要被拒绝
	err = catalog.Update(BookInput{ID: second.ID, Sn: "B001", Name: "second"})
	if !errors.Is(err, ErrBookSnDuplicate) {
		t.Fatalf("expected ErrBookSnDuplicate, got %v", err)
	}
}

func TestCatalogCreateNormalizesEmptyRemark(t *testing.T) {
	repo := repository.NewBookRepository(newTestDB(t))
	catalog := NewCatalogService(repo, 4)

	book, err := catalog.Create(BookInput{Sn: "B001", Name: "first", Remark: "   "})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if book.Remark != nil {
		t.Fatalf("expected nil remark, got %q", *book.Remark)
	}

	withRemark, err := catalog.Create(BookInput{Sn: "B002", Name: "second", Remark: "科幻"})
	if err != nil {
		t.Fatalf("create with remark failed: %v", err)
	}
	if withRemark.Remark == nil || *withRemark.Remark != "科幻" {
		t.Fatalf("expected remark kept, got %v", withRemark.Remark)
	}
}

func TestCatalogDeleteNotFound(t *testing.T) {
	repo := repository.NewBookRepository(newTestDB(t))
	catalog := NewCatalogService(repo, 4)

	err := catalog.Delete(42)
	if !errors.Is(err, ErrBookNotFound) {
		t.Fatalf("expected ErrBookNotFound, got %v", err)
	}
}

func TestCatalogListByIDsEmpty(t *testing.T) {
	repo := repository.NewBookRepository(newTestDB(t))
	catalog := NewCatalogService(repo, 4)

	books, err := catalog.ListByIDs(nil)
	if err != nil {
		t.Fatalf("list by empty ids failed: %v", err)
	}
	if len(books) != 0 {
		t.Fatalf("expected empty result, got %d", len(books))
	}
}
