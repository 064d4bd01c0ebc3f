package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/shucheng-next/internal/models"
	"github.com/shucheng-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ListBooks 渲染书城首页（分页目录）
func (h *Handler) ListBooks(c *gin.Context) {
	page := service.ParsePage(c.Query("page"))
	catalogPage, err := h.CatalogService.ListPage(page)
	if err != nil {
		renderServerError(c, "catalog_list", err)
		return
	}
	pages := make([]int, 0, catalogPage.SumPage)
	for i := 1; i <= catalogPage.SumPage; i++ {
		pages = append(pages, i)
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Books":   catalogPage.Books,
		"Page":    catalogPage.Page,
		"SumPage": catalogPage.SumPage,
		"Total":   catalogPage.Total,
		"Pages":   pages,
	})
}

// ShowAddBook 渲染增加新书页面
func (h *Handler) ShowAddBook(c *gin.Context) {
	c.HTML(http.StatusOK, "add.html", nil)
}

// AddBook 处理增加新书请求
func (h *Handler) AddBook(c *gin.Context) {
	input, ok := bindBookInput(c)
	if !ok {
		return
	}
	if _, err := h.CatalogService.Create(input); err != nil {
		switch {
		case errors.Is(err, service.ErrBookSnDuplicate):
			renderMessage(c, "图书编号必须唯一", "/book/add")
		case errors.Is(err, service.ErrBookInvalid):
			renderMessage(c, "书籍编号和书名不能为空", "/book/add")
		default:
			renderServerError(c, "book_add", err)
		}
		return
	}
	c.Redirect(http.StatusFound, "/book")
}

// ShowEditBook 渲染编辑书籍页面，携带来源页码以便保存后跳回
func (h *Handler) ShowEditBook(c *gin.Context) {
	bookID, ok := parseUintParam(c, c.Query("book_id"))
	if !ok {
		return
	}
	book, err := h.CatalogService.GetByID(bookID)
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			renderMessage(c, "编辑的图书不存在", "/book")
			return
		}
		renderServerError(c, "book_edit_form", err)
		return
	}
	c.HTML(http.StatusOK, "edit.html", gin.H{
		"Book": book,
		"Page": service.ParsePage(c.Query("page")),
	})
}

// EditBook 处理编辑书籍请求，成功后跳回来源页
func (h *Handler) EditBook(c *gin.Context) {
	bookID, ok := parseUintParam(c, c.PostForm("book_id"))
	if !ok {
		return
	}
	page := service.ParsePage(c.PostForm("page"))
	input, ok := bindBookInput(c)
	if !ok {
		return
	}
	input.ID = bookID

	if err := h.CatalogService.Update(input); err != nil {
		switch {
		case errors.Is(err, service.ErrBookSnDuplicate):
			renderMessage(c, "图书编号必须唯一", fmt.Sprintf("/book/edit?book_id=%d&page=%d", bookID, page))
		case errors.Is(err, service.ErrBookInvalid):
			renderMessage(c, "书籍编号和书名不能为空", fmt.Sprintf("/book/edit?book_id=%d&page=%d", bookID, page))
		default:
			renderServerError(c, "book_edit", err)
		}
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/book?page=%d", page))
}

// DeleteBook 删除图书，目标不存在时提示而不是报错
func (h *Handler) DeleteBook(c *gin.Context) {
	bookID, ok := parseUintParam(c, c.Query("book_id"))
	if !ok {
		return
	}
	if err := h.CatalogService.Delete(bookID); err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			renderMessage(c, "删除的图书不存在", "/book")
			return
		}
		renderServerError(c, "book_delete", err)
		return
	}
	c.Redirect(http.StatusFound, "/book")
}

// bindBookInput 从表单提取书籍字段，价格不合法时直接渲染提示页
func bindBookInput(c *gin.Context) (service.BookInput, bool) {
	price, err := models.NewMoneyFromString(c.PostForm("price"))
	if err != nil {
		renderMessage(c, "价格格式不正确", "/book")
		return service.BookInput{}, false
	}
	return service.BookInput{
		Sn:     c.PostForm("sn"),
		Name:   c.PostForm("name"),
		Price:  price,
		Remark: c.PostForm("remark"),
	}, true
}

// parseUintParam 解析正整数参数，不合法时渲染提示页
func parseUintParam(c *gin.Context, raw string) (uint, bool) {
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		renderMessage(c, "参数不合法", "/book")
		return 0, false
	}
	return uint(value), true
}
