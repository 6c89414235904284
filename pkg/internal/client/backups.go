package client

import (
	"context"
	"net/http"

	"github.com/profieldmanager/mediavault/pkg/internal/model"
	"github.com/profieldmanager/mediavault/pkg/internal/types"
)

// ListBackupJobs 列出服务端备份任务.
func (c *Client) ListBackupJobs(ctx context.Context) ([]model.BackupJob, error) {
	var jobs []model.BackupJob
	if err := c.doJSON(ctx, http.MethodGet, "/api/backup/jobs", nil, &jobs); err != nil {
		return nil, err
	}

	return jobs, nil
}

// TriggerBackup 触发一次服务端备份.
func (c *Client) TriggerBackup(ctx context.Context, req types.TriggerBackupRequest) (*types.TriggerBackupResponse, error) {
	var resp types.TriggerBackupResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/backup/trigger", req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
