// Package gateway 实现变更网关：删除、标注、上传三类变更的唯一出口.
//
// 变更请求单发不重试；成功后使项目文件列表缓存失效并广播事件，
// 失败时把归一化后的展示信息交给 Notifier. 不做乐观更新，界面状态
// 始终以重取后的服务端数据为准.
package gateway

import (
	"errors"

	"github.com/profieldmanager/mediavault/pkg/internal/client"
	"github.com/profieldmanager/mediavault/pkg/log"
)

// NotifyKind 通知级别.
type NotifyKind string

const (
	NotifySuccess NotifyKind = "success"
	NotifyError   NotifyKind = "error"
)

// Notifier 把变更结果反馈给用户的出口. 替代隐式的全局 toast：
// 网关只依赖该接口，由装配方决定落到终端、日志还是测试桩.
type Notifier interface {
	Notify(kind NotifyKind, title, message string)
}

// LogNotifier 缺省实现，把通知写入结构化日志.
type LogNotifier struct{}

// Notify 实现 Notifier.
func (LogNotifier) Notify(kind NotifyKind, title, message string) {
	evt := log.Logger().Info()
	if kind == NotifyError {
		evt = log.Logger().Error()
	}

	evt.Str("title", title).Str("message", message).Msg("notify")
}

// displayMessage 把任意错误归一化为展示信息：
// 协作方给出的 message 优先，否则使用操作自身的兜底文案.
func displayMessage(err error, fallback string) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	return fallback
}
