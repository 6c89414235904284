package model

import "time"

// BackupJob 服务端备份任务记录（/api/backup/jobs）.
type BackupJob struct {
	ID         int64     `json:"id"`
	ProjectID  int64     `json:"projectId,omitempty"`
	Status     string    `json:"status"` // pending / running / completed / failed
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt,omitempty"`
	Error      string    `json:"error,omitempty"`
	Objects    int       `json:"objects,omitempty"`
	Bytes      int64     `json:"bytes,omitempty"`
}
