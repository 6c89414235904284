package router

import (
	"github.com/gin-gonic/gin"

	"github.com/profieldmanager/mediavault/pkg/internal/handle"
)

// RegisterJobRoutes 注册调度器相关路由.
func RegisterJobRoutes(g *gin.RouterGroup) {
	g.GET("/jobs", handle.SchedulerJobs)

	g.GET("/jobs/:name", handle.SchedulerJobByName)

	g.POST("/jobs/:name/run", handle.SchedulerRunJob)
}
