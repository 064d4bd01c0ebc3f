package web

import (
	"net/http"

	"github.com/shucheng-next/internal/logger"

	"github.com/gin-gonic/gin"
)

// renderMessage 渲染业务提示页：一句话加返回链接，HTTP 200。
// 重复编号、删除目标不存在这类业务错误都走这里。
func renderMessage(c *gin.Context, text, backURL string) {
	c.HTML(http.StatusOK, "message.html", gin.H{
		"Text":    text,
		"BackURL": backURL,
	})
}

// renderServerError 渲染服务端错误页并记录结构化日志。
// 基础设施错误（数据库不可用等）统一映射成 500 加通用提示。
func renderServerError(c *gin.Context, scene string, err error) {
	logger.Errorw("server_error", "scene", scene, "path", c.Request.URL.Path, "error", err)
	c.HTML(http.StatusInternalServerError, "message.html", gin.H{
		"Text":    "服务器开小差了，请稍后再试",
		"BackURL": "/book",
	})
}
