// Package metrics 提供监控指标功能.
// 支持Prometheus标准，收集变更网关、查询缓存与备份任务的指标.
//
// Example:
//
//	import "github.com/profieldmanager/mediavault/pkg/metrics"
//
//	err := metrics.InitMetrics(config.Metrics)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// 记录指标
//	metrics.MutationCounter.WithLabelValues("delete", "success").Inc()
package metrics

import (
	"net/http"
	_ "net/http/pprof" // 自动注册pprof端点

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/profieldmanager/mediavault/pkg/configs"
)

// 全局指标变量.
var (
	// RequestCounter HTTP请求计数器（守护进程观测面）.
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint"},
	)

	// RequestDuration HTTP请求持续时间.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// MutationCounter 变更网关请求计数，按操作与结果分类.
	MutationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mutation_requests_total",
			Help: "Total number of mutation gateway requests",
		},
		[]string{"operation", "result"},
	)

	// MutationDuration 变更请求耗时.
	MutationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mutation_duration_seconds",
			Help:    "Mutation request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// CacheInvalidations 查询缓存失效次数.
	CacheInvalidations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "query_cache_invalidations_total",
			Help: "Total number of query cache invalidations",
		},
		[]string{"reason"},
	)

	// BackupObjects 最近一次备份镜像的对象数.
	BackupObjects = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "backup_last_objects",
			Help: "Number of objects mirrored in the last backup run",
		},
	)

	// BackupBytes 最近一次备份镜像的字节数.
	BackupBytes = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "backup_last_bytes",
			Help: "Number of bytes mirrored in the last backup run",
		},
	)

	// registry Prometheus注册表.
	registry = prometheus.NewRegistry()
)

// InitMetrics 初始化Metrics.
func InitMetrics(config configs.MetricsConfig) error {
	if !config.Enabled {
		return nil
	}

	// 注册标准收集器
	if config.RuntimeMetrics {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	// 注册自定义指标
	registry.MustRegister(
		RequestCounter, RequestDuration,
		MutationCounter, MutationDuration,
		CacheInvalidations,
		BackupObjects, BackupBytes,
	)

	return nil
}

// StartMetricsServer 启动Metrics HTTP服务器.
func StartMetricsServer(config configs.MetricsConfig, debugEngine *gin.Engine) error {
	if !config.Enabled {
		return nil
	}

	debugEngine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// 如果启用pprof，注册pprof端点
	if config.Pprof {
		debugEngine.GET("/debug/pprof/*any", gin.WrapH(http.DefaultServeMux))
	}

	return nil
}

// GetRegistry 获取Prometheus注册表.
func GetRegistry() *prometheus.Registry {
	return registry
}
