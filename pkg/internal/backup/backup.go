// Package backup 把项目文件镜像到 S3/MinIO 备份桶.
//
// 镜像是单向的：按项目拉取文件列表，逐个取回内容写入备份桶，
// 对象键为 {prefix}/{projectID}/{fileID}_{fileName}. 单个文件
// 取回失败只记 skipped，不中断整个任务.
package backup

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/profieldmanager/mediavault/pkg/internal/model"
	"github.com/profieldmanager/mediavault/pkg/log"
	"github.com/profieldmanager/mediavault/pkg/metrics"
	"github.com/profieldmanager/mediavault/pkg/queue"
)

// Source 备份数据来源：项目文件列表与文件内容.
type Source interface {
	ListProjectFiles(ctx context.Context, projectID int64) ([]model.MediaFile, error)
	FetchFileContent(ctx context.Context, filePath string) (io.ReadCloser, int64, string, error)
}

// Sink 备份数据去向，由 S3 客户端实现.
type Sink interface {
	Put(ctx context.Context, objectKey, contentType string, r io.Reader, size int64) error
}

// Result 一次镜像任务的统计.
type Result struct {
	ProjectID int64
	Objects   int
	Bytes     int64
	Skipped   int
}

// Mirror 项目文件备份镜像器.
type Mirror struct {
	src    Source
	sink   Sink
	pub    message.Publisher
	bucket string
	prefix string
}

// NewMirror 创建镜像器. pub 可为 nil（不广播事件）.
func NewMirror(src Source, sink Sink, pub message.Publisher, bucket, prefix string) *Mirror {
	return &Mirror{
		src:    src,
		sink:   sink,
		pub:    pub,
		bucket: bucket,
		prefix: prefix,
	}
}

// Run 执行一次项目镜像.
func (m *Mirror) Run(ctx context.Context, projectID int64) (*Result, error) {
	if m.pub != nil {
		_ = queue.PublishBackupStarted(m.pub, queue.BackupStartedPayload{
			ProjectID: projectID,
			Bucket:    m.bucket,
		})
	}

	files, err := m.src.ListProjectFiles(ctx, projectID)
	if err != nil {
		m.fail(projectID, err)

		return nil, fmt.Errorf("list project %d files: %w", projectID, err)
	}

	res := &Result{ProjectID: projectID}

	for i := range files {
		f := &files[i]

		n, err := m.mirrorOne(ctx, projectID, f)
		if err != nil {
			// 单个文件失败不终止任务
			res.Skipped++

			log.Logger().Warn().Err(err).
				Int64("file_id", f.ID).
				Str("file", f.FileName).
				Msg("skip file during backup")

			continue
		}

		res.Objects++
		res.Bytes += n
	}

	metrics.BackupObjects.Set(float64(res.Objects))
	metrics.BackupBytes.Set(float64(res.Bytes))

	if m.pub != nil {
		_ = queue.PublishBackupCompleted(m.pub, queue.BackupCompletedPayload{
			ProjectID: projectID,
			Bucket:    m.bucket,
			Objects:   res.Objects,
			Bytes:     res.Bytes,
			Skipped:   res.Skipped,
		})
	}

	log.Logger().Info().
		Int64("project_id", projectID).
		Int("objects", res.Objects).
		Int64("bytes", res.Bytes).
		Int("skipped", res.Skipped).
		Msg("backup mirror completed")

	return res, nil
}

// RunAll 依次镜像多个项目，单个项目失败不影响其余项目.
func (m *Mirror) RunAll(ctx context.Context, projectIDs []int64) []Result {
	results := make([]Result, 0, len(projectIDs))

	for _, id := range projectIDs {
		res, err := m.Run(ctx, id)
		if err != nil {
			results = append(results, Result{ProjectID: id})

			continue
		}

		results = append(results, *res)
	}

	return results
}

// mirrorOne 取回单个文件并写入备份桶，返回写入的字节数.
func (m *Mirror) mirrorOne(ctx context.Context, projectID int64, f *model.MediaFile) (int64, error) {
	body, size, contentType, err := m.src.FetchFileContent(ctx, f.FilePath)
	if err != nil {
		return 0, err
	}
	defer body.Close()

	if contentType == "" {
		contentType = f.MimeType
	}

	key := m.objectKey(projectID, f)

	if err := m.sink.Put(ctx, key, contentType, body, size); err != nil {
		return 0, fmt.Errorf("put %s: %w", key, err)
	}

	if size < 0 {
		size = f.FileSize
	}

	return size, nil
}

// objectKey 生成备份对象键：{prefix}/{projectID}/{fileID}_{fileName}.
// fileID 前缀保证同名文件不互相覆盖.
func (m *Mirror) objectKey(projectID int64, f *model.MediaFile) string {
	return path.Join(m.prefix, fmt.Sprintf("%d", projectID), fmt.Sprintf("%d_%s", f.ID, f.FileName))
}

// fail 广播失败事件.
func (m *Mirror) fail(projectID int64, err error) {
	if m.pub == nil {
		return
	}

	_ = queue.PublishBackupFailed(m.pub, queue.BackupFailedPayload{
		ProjectID: projectID,
		Error:     err.Error(),
	})
}
