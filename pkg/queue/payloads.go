package queue

import "time"

// EventHeader 定义所有事件的通用头部元数据.
// 建议在发布消息时填充 TraceID、OccurredAt、Producer 等，便于追踪链路与审计.
type EventHeader struct {
	// Topic 冗余记录消息主题，便于离线处理或转储后定位来源主题.
	Topic string `json:"topic"`
	// TraceID 分布式追踪/关联 ID，可来自中间件或业务生成.
	TraceID string `json:"trace_id,omitempty"`
	// Producer 生产者服务名或节点标识.
	Producer string `json:"producer,omitempty"`
	// OccurredAt 事件发生时间（UTC，RFC3339）.
	OccurredAt time.Time `json:"occurred_at"`
	// Version 事件负载版本，便于向后兼容演进.
	Version string `json:"version,omitempty"`
}

// Message 是统一的消息封装，Header + Payload.
// T 即不同主题对应的负载结构体.
type Message[T any] struct {
	Header  EventHeader `json:"header"`
	Payload T           `json:"payload"`
}

// -------------------------- 文件列表缓存领域 --------------------------

// FileListInvalidatedPayload 文件列表缓存键失效.
// Key 的形状与协作方约定一致：/api/projects/{projectID}/files.
type FileListInvalidatedPayload struct {
	ProjectID int64  `json:"project_id"`
	Key       string `json:"key"`
	// Reason 失效原因，如 delete/annotate/upload/manual.
	Reason string `json:"reason,omitempty"`
}

// FileListRefetchedPayload 失效后的重新拉取完成.
type FileListRefetchedPayload struct {
	ProjectID int64  `json:"project_id"`
	Key       string `json:"key"`
	Count     int    `json:"count"` // 新列表的文件数
}

// -------------------------- 变更网关领域 --------------------------

// MutationPayload 单次变更请求的结果.
type MutationPayload struct {
	Operation string `json:"operation"` // delete / annotate / upload
	ProjectID int64  `json:"project_id,omitempty"`
	FileID    int64  `json:"file_id,omitempty"`
	Error     string `json:"error,omitempty"` // 失败时的展示信息
}

// -------------------------- 备份任务领域 --------------------------

// BackupStartedPayload 备份任务开始.
type BackupStartedPayload struct {
	ProjectID int64  `json:"project_id"`
	Bucket    string `json:"bucket"`
}

// BackupCompletedPayload 备份任务完成.
type BackupCompletedPayload struct {
	ProjectID int64  `json:"project_id"`
	Bucket    string `json:"bucket"`
	Objects   int    `json:"objects"`
	Bytes     int64  `json:"bytes"`
	Skipped   int    `json:"skipped,omitempty"` // 无法取回内容而跳过的文件数
}

// BackupFailedPayload 备份任务失败.
type BackupFailedPayload struct {
	ProjectID int64  `json:"project_id"`
	Error     string `json:"error"`
}
