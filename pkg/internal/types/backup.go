package types

// TriggerBackupRequest 触发服务端备份请求（POST /api/backup/trigger）.
type TriggerBackupRequest struct {
	ProjectID int64 `json:"projectId,omitempty" rule:"min=0"`
}

// TriggerBackupResponse 触发结果.
type TriggerBackupResponse struct {
	JobID   int64  `json:"jobId"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
