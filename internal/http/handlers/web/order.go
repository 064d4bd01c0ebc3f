package web

import (
	"errors"
	"net/http"

	"github.com/shucheng-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ListOrders 渲染订单列表页面
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.OrderService.ListOrders()
	if err != nil {
		renderServerError(c, "order_list", err)
		return
	}
	c.HTML(http.StatusOK, "order_list.html", gin.H{
		"Orders": orders,
	})
}

// OrderDetail 渲染订单明细页面，明细行与书籍记录按书籍 ID 配对
func (h *Handler) OrderDetail(c *gin.Context) {
	detail, err := h.OrderService.GetOrderDetail(c.Query("order_id"))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			renderMessage(c, "订单不存在", "/order_list")
			return
		}
		renderServerError(c, "order_detail", err)
		return
	}
	c.HTML(http.StatusOK, "order_item.html", gin.H{
		"OrderNo": detail.OrderNo,
		"Items":   detail.Items,
		"Books":   detail.Books,
	})
}
