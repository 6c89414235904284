// Package middleware 提供 daemon 观测服务器的 gin 中间件.
package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/profieldmanager/mediavault/pkg/configs"
)

// Default 返回观测服务器的默认中间件链.
func Default(cfg configs.ServerConfig) []gin.HandlerFunc {
	return []gin.HandlerFunc{
		gin.Recovery(),
		GinLoggerMiddleware(),
		CORSMiddleware(cfg),
		PrometheusMiddleware(),
	}
}
