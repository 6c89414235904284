// Package jobs 负责注册与实现业务定时任务（基于 scheduler）。
package jobs

import (
	"context"
	"fmt"
	"io"

	"github.com/profieldmanager/mediavault/pkg/configs"
	"github.com/profieldmanager/mediavault/pkg/internal/backup"
	"github.com/profieldmanager/mediavault/pkg/internal/client"
	"github.com/profieldmanager/mediavault/pkg/internal/storage"
	s3c "github.com/profieldmanager/mediavault/pkg/internal/storage/s3"
	"github.com/profieldmanager/mediavault/pkg/log"
	"github.com/profieldmanager/mediavault/pkg/scheduler"
)

// S3Sink 把 S3 客户端适配为备份镜像的写入端.
type S3Sink struct {
	Cli *s3c.Client
}

func (s S3Sink) Put(ctx context.Context, objectKey, contentType string, r io.Reader, size int64) error {
	_, err := s.Cli.Put(ctx, objectKey, contentType, r, size)

	return err
}

// RegisterCronJobs 配置业务定时任务：按 backup.cron 定期把各项目的
// 文件镜像到备份桶. backup.enabled 为 false 或无项目可备份时不注册.
func RegisterCronJobs(sched *scheduler.Scheduler, mgr *storage.Manager, api *client.Client) error {
	if sched == nil {
		return fmt.Errorf("scheduler is nil")
	}

	if mgr == nil {
		return fmt.Errorf("storage manager is nil")
	}

	cfg := configs.GetConfig()
	if !cfg.Backup.Enabled {
		return nil
	}

	if mgr.GetS3Client() == nil {
		return fmt.Errorf("backup enabled but s3 not initialized")
	}

	projects := cfg.Backup.ProjectIDs(&cfg.API)
	if len(projects) == 0 {
		log.Logger().Warn().Msg("backup enabled but no projects configured")

		return nil
	}

	mirror := backup.NewMirror(
		api,
		S3Sink{Cli: mgr.GetS3Client()},
		mgr.GetMQClient().Publisher(),
		cfg.S3.BucketName,
		cfg.Backup.Prefix,
	)

	return sched.AddCron(JobBackupMirrorNightly, cfg.Backup.Cron, func(ctx context.Context) {
		runBackupMirror(ctx, mirror, projects)
	}, context.Background())
}

// runBackupMirror 依次镜像各项目并记录结果.
func runBackupMirror(ctx context.Context, mirror *backup.Mirror, projects []int64) {
	l := log.Logger().With().Str("job", JobBackupMirrorNightly).Logger()

	for _, res := range mirror.RunAll(ctx, projects) {
		l.Info().
			Int64("project_id", res.ProjectID).
			Int("objects", res.Objects).
			Int64("bytes", res.Bytes).
			Int("skipped", res.Skipped).
			Msg("project mirrored")
	}
}
