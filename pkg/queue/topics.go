// Package queue 定义消息主题常量与通配模式，供发布/订阅使用.
package queue

// 主题命名规范：mv.<域>.<动作>[.<状态>]，尽量稳定且向后兼容.
// 域：filelist(文件列表缓存)、mutation(变更网关)、backup(备份任务)
// 状态：完成(completed/succeeded)、失败(failed)

const (
	// 文件列表缓存领域.
	TopicFileListInvalidated = "mv.filelist.invalidated" // 文件列表缓存键失效（变更成功或外部触发后）
	TopicFileListRefetched   = "mv.filelist.refetched"   // 失效后的重新拉取完成，观察者可读取新数据

	// 变更网关领域.
	TopicMutationSucceeded = "mv.mutation.succeeded" // 删除/标注/上传请求成功
	TopicMutationFailed    = "mv.mutation.failed"    // 变更请求失败（传输错误或非 2xx 响应）

	// 备份任务领域.
	TopicBackupStarted   = "mv.backup.started"   // 项目备份任务开始
	TopicBackupCompleted = "mv.backup.completed" // 项目备份任务完成
	TopicBackupFailed    = "mv.backup.failed"    // 项目备份任务失败
)

// 主题分组，用于批量订阅或调试输出.
var (
	// 文件列表相关主题集合.
	FileListTopics = []string{
		TopicFileListInvalidated, TopicFileListRefetched,
	}

	// 变更网关相关主题集合.
	MutationTopics = []string{
		TopicMutationSucceeded, TopicMutationFailed,
	}

	// 备份任务相关主题集合.
	BackupTopics = []string{
		TopicBackupStarted, TopicBackupCompleted, TopicBackupFailed,
	}
)
