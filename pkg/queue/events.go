package queue

import "github.com/ThreeDotsLabs/watermill/message"

// -------------------------- 基于业务封装 events --------------------------

// PublishFileListInvalidated 发布 mv.filelist.invalidated 事件。
// 变更网关在请求成功后调用，通知所有观察同一项目文件列表的组件刷新。
// 可通过可选项 opts 注入 TraceID、Producer 等头部信息。
func PublishFileListInvalidated(pub message.Publisher, payload FileListInvalidatedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicFileListInvalidated, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicFileListInvalidated, msg)
}

// ParseFileListInvalidated 将 Watermill 消息解析为强类型 Envelope（FileListInvalidatedPayload）。
func ParseFileListInvalidated(msg *message.Message) (Message[FileListInvalidatedPayload], error) {
	return ParseWatermillMessage[FileListInvalidatedPayload](msg)
}

// PublishFileListRefetched 发布 mv.filelist.refetched 事件。
func PublishFileListRefetched(pub message.Publisher, payload FileListRefetchedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicFileListRefetched, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicFileListRefetched, msg)
}

// PublishMutationResult 按结果发布 mv.mutation.succeeded 或 mv.mutation.failed。
func PublishMutationResult(pub message.Publisher, payload MutationPayload, opts ...func(*EventHeader)) error {
	topic := TopicMutationSucceeded
	if payload.Error != "" {
		topic = TopicMutationFailed
	}

	msg, err := NewWatermillMessage(topic, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(topic, msg)
}

// PublishBackupStarted 发布 mv.backup.started 事件。
func PublishBackupStarted(pub message.Publisher, payload BackupStartedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicBackupStarted, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicBackupStarted, msg)
}

// PublishBackupCompleted 发布 mv.backup.completed 事件。
func PublishBackupCompleted(pub message.Publisher, payload BackupCompletedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicBackupCompleted, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicBackupCompleted, msg)
}

// PublishBackupFailed 发布 mv.backup.failed 事件。
func PublishBackupFailed(pub message.Publisher, payload BackupFailedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicBackupFailed, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicBackupFailed, msg)
}
