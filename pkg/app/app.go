// Package app 提供 daemon 模式的初始化和装配：配置、追踪、监控、
// 存储资源、调度器与观测路由.
package app

import (
	contextPkg "context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/profieldmanager/mediavault/pkg/configs"
	"github.com/profieldmanager/mediavault/pkg/internal/client"
	"github.com/profieldmanager/mediavault/pkg/internal/jobs"
	"github.com/profieldmanager/mediavault/pkg/internal/router"
	"github.com/profieldmanager/mediavault/pkg/internal/storage"
	"github.com/profieldmanager/mediavault/pkg/log"
	"github.com/profieldmanager/mediavault/pkg/metrics"
	"github.com/profieldmanager/mediavault/pkg/middleware"
	"github.com/profieldmanager/mediavault/pkg/scheduler"
	"github.com/profieldmanager/mediavault/pkg/tracing"
)

type App struct {
	Engine    *gin.Engine
	Scheduler *scheduler.Scheduler
	config    *configs.AppConfig
}

func NewApp(configPath string) *App {
	ctx := contextPkg.Background()
	engine := gin.New()

	// 初始化配置
	if err := configs.InitConfig(configPath); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	// 初始化追踪
	config := configs.GetConfig()
	if err := tracing.InitTracer(config.Tracing); err != nil {
		fmt.Printf("Error initializing tracing: %v\n", err)
		os.Exit(1)
	}

	// 初始化监控
	if err := metrics.InitMetrics(config.Metrics); err != nil {
		fmt.Printf("Error initializing metrics: %v\n", err)
		os.Exit(1)
	}

	// 备份启用时才连接 S3
	manager, err := storage.Init(ctx, storage.Options{WithS3: config.Backup.Enabled})
	if err != nil {
		fmt.Printf("Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	// 调度器与备份任务
	sched, err := scheduler.NewScheduler()
	if err != nil {
		fmt.Printf("Error initializing scheduler: %v\n", err)
		os.Exit(1)
	}

	api := client.New(&config.API)

	if err := jobs.RegisterCronJobs(sched, manager, api); err != nil {
		fmt.Printf("Error registering cron jobs: %v\n", err)
		os.Exit(1)
	}

	l := log.Logger()
	gin.DefaultWriter = log.NewGinWriter(l, zerolog.InfoLevel)
	gin.DefaultErrorWriter = log.NewGinWriter(l, zerolog.ErrorLevel)

	engine.Use(
		gin.Recovery(),
		middleware.GinLoggerMiddleware(),
		middleware.CORSMiddleware(config.Server),
		middleware.TracingMiddleware(),
		middleware.PrometheusMiddleware(),
		middleware.StorageMiddleware(manager),
		middleware.SchedulerMiddleware(sched),
	)

	router.Register(engine)

	if config.Metrics.Enabled {
		_ = metrics.StartMetricsServer(config.Metrics, engine)
	}

	return &App{
		Engine:    engine,
		Scheduler: sched,
		config:    config,
	}
}

func (a *App) Run() error {
	a.Scheduler.Start()
	defer func() {
		if err := a.Scheduler.Stop(); err != nil {
			log.Logger().Error().Err(err).Msg("stop scheduler")
		}
	}()

	return a.Engine.Run(fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port))
}
