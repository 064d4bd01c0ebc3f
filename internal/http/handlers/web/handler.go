package web

import "github.com/shucheng-next/internal/provider"

// Handler 书城页面处理器入口
// 说明：全部页面走服务端渲染，处理器只编排服务调用并渲染模板或重定向。
type Handler struct {
	*provider.Container
}

// New 创建页面处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
