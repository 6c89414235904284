// Package router 管理 daemon 观测服务器的路由配置.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/profieldmanager/mediavault/pkg/internal/handle"
)

// Register 将观测路由绑定到 gin 引擎：
//
//	GET /healthz            存活检查
//	GET /health/s3|mq|kv    各依赖的健康检查
//	GET /jobs               调度器任务列表
//	GET /jobs/:name         单个任务信息
//	POST /jobs/:name/run    立即触发任务
//
// /metrics 由 metrics.StartMetricsServer 单独注册.
func Register(e *gin.Engine) {
	e.GET("/healthz", handle.Healthz)

	RegisterHealthCheckRoute(e.Group(""))
	RegisterJobRoutes(e.Group(""))
}
