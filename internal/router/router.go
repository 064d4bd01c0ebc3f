package router

import (
	"github.com/shucheng-next/internal/config"
	webhandlers "github.com/shucheng-next/internal/http/handlers/web"
	"github.com/shucheng-next/internal/logger"
	"github.com/shucheng-next/internal/provider"
	"github.com/shucheng-next/internal/session"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(session.Middleware(cfg.Session.CookieName, cfg.Session.MaxAgeSeconds))

	// 页面模板
	r.LoadHTMLGlob(cfg.Server.TemplatesGlob)

	handler := webhandlers.New(c)

	// 书籍目录与管理
	r.GET("/book", handler.ListBooks)
	r.GET("/book/add", handler.ShowAddBook)
	r.POST("/book/add", handler.AddBook)
	r.GET("/book/edit", handler.ShowEditBook)
	r.POST("/book/edit", handler.EditBook)
	r.GET("/book/del", handler.DeleteBook)

	// 购物车
	r.GET("/cart", handler.ShowCart)
	r.GET("/book/add_cart", handler.AddToCart)
	r.GET("/cart/del", handler.RemoveFromCart)
	r.POST("/cart", handler.PlaceOrder)

	// 订单
	r.GET("/order_list", handler.ListOrders)
	r.GET("/order_item", handler.OrderDetail)

	return r
}
