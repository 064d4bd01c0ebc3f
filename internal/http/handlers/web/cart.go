package web

import (
	"errors"
	"net/http"

	"github.com/shucheng-next/internal/models"
	"github.com/shucheng-next/internal/service"
	"github.com/shucheng-next/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CartLineView 购物车页面展示行
type CartLineView struct {
	Book     models.Book
	Quantity int
	Subtotal models.Money
}

// ShowCart 渲染购物车页面，空购物车渲染提示页
func (h *Handler) ShowCart(c *gin.Context) {
	sessionID := session.ID(c)
	lines, err := h.CartService.List(c.Request.Context(), sessionID)
	if err != nil {
		renderServerError(c, "cart_list", err)
		return
	}
	if len(lines) == 0 {
		renderMessage(c, "购物车为空", "/book")
		return
	}

	ids := make([]uint, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.BookID)
	}
	books, err := h.CatalogService.ListByIDs(ids)
	if err != nil {
		renderServerError(c, "cart_books", err)
		return
	}
	bookMap := make(map[uint]models.Book, len(books))
	for _, book := range books {
		bookMap[book.ID] = book
	}

	views := make([]CartLineView, 0, len(lines))
	total := decimal.Zero
	for _, line := range lines {
		book, ok := bookMap[line.BookID]
		if !ok {
			// 书已被删除，购物车行照常展示不了，跳过
			continue
		}
		subtotal := book.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		total = total.Add(subtotal)
		views = append(views, CartLineView{
			Book:     book,
			Quantity: line.Quantity,
			Subtotal: models.NewMoneyFromDecimal(subtotal),
		})
	}

	c.HTML(http.StatusOK, "shopping_cart.html", gin.H{
		"Lines": views,
		"Total": models.NewMoneyFromDecimal(total),
	})
}

// AddToCart 加入购物车后跳转到购物车页
func (h *Handler) AddToCart(c *gin.Context) {
	bookID, ok := parseUintParam(c, c.Query("book_id"))
	if !ok {
		return
	}
	if err := h.CartService.AddOrIncrement(c.Request.Context(), session.ID(c), bookID); err != nil {
		renderServerError(c, "cart_add", err)
		return
	}
	c.Redirect(http.StatusFound, "/cart")
}

// RemoveFromCart 从购物车删除商品后跳转到购物车页
func (h *Handler) RemoveFromCart(c *gin.Context) {
	bookID, ok := parseUintParam(c, c.Query("book_id"))
	if !ok {
		return
	}
	if err := h.CartService.Remove(c.Request.Context(), session.ID(c), bookID); err != nil {
		renderServerError(c, "cart_remove", err)
		return
	}
	c.Redirect(http.StatusFound, "/cart")
}

// PlaceOrder 处理提交订单请求。
// 表单携带并列的 arr_book_id / arr_num 数组以及地址、电话、总额，
// 两次写入都成功后清空购物车并跳转到订单列表。
func (h *Handler) PlaceOrder(c *gin.Context) {
	bookIDs := c.PostFormArray("arr_book_id")
	nums := c.PostFormArray("arr_num")
	if len(bookIDs) == 0 || len(bookIDs) != len(nums) {
		renderMessage(c, "订单数据不完整", "/cart")
		return
	}

	lines := make([]service.CartLine, 0, len(bookIDs))
	for i := range bookIDs {
		bookID, ok := parseUintParam(c, bookIDs[i])
		if !ok {
			return
		}
		quantity, ok := parseUintParam(c, nums[i])
		if !ok {
			return
		}
		lines = append(lines, service.CartLine{BookID: bookID, Quantity: int(quantity)})
	}

	totalMoney, err := models.NewMoneyFromString(c.PostForm("money"))
	if err != nil {
		renderMessage(c, "金额格式不正确", "/cart")
		return
	}

	_, err = h.OrderService.PlaceOrder(service.PlaceOrderInput{
		Lines:      lines,
		Addr:       c.PostForm("addr"),
		Phone:      c.PostForm("phone"),
		TotalMoney: totalMoney,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCartEmpty):
			renderMessage(c, "购物车为空", "/book")
		case errors.Is(err, service.ErrOrderInsertFailed):
			renderMessage(c, "插入失败", "/cart")
		default:
			renderServerError(c, "order_place", err)
		}
		return
	}

	// 两次写入都成功才清空购物车
	if err := h.CartService.Clear(c.Request.Context(), session.ID(c)); err != nil {
		renderServerError(c, "cart_clear", err)
		return
	}
	c.Redirect(http.StatusFound, "/order_list")
}
