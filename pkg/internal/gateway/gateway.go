package gateway

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/profieldmanager/mediavault/pkg/cache"
	"github.com/profieldmanager/mediavault/pkg/internal/client"
	"github.com/profieldmanager/mediavault/pkg/internal/model"
	"github.com/profieldmanager/mediavault/pkg/internal/types"
	"github.com/profieldmanager/mediavault/pkg/log"
	"github.com/profieldmanager/mediavault/pkg/metrics"
	"github.com/profieldmanager/mediavault/pkg/queue"
	"github.com/profieldmanager/mediavault/pkg/rule"
)

// 兜底展示文案，协作方未给出 message 时使用.
const (
	msgDeleteFailed   = "Failed to delete file"
	msgAnnotateFailed = "Failed to save annotation"
	msgUploadFailed   = "Upload failed"
)

// API 网关依赖的协作方操作子集.
type API interface {
	DeleteFile(ctx context.Context, fileID int64) error
	SaveAnnotation(ctx context.Context, req types.SaveAnnotationRequest) error
	UploadPhoto(ctx context.Context, projectID int64, content io.Reader, req types.UploadPhotoRequest) (*model.MediaFile, error)
}

// Gateway 单个项目的变更网关.
type Gateway struct {
	api       API
	cache     *cache.QueryCache
	pub       message.Publisher
	notifier  Notifier
	projectID int64
}

// New 创建变更网关. pub 可为 nil（不广播事件），notifier 为 nil 时落到日志.
func New(api API, qc *cache.QueryCache, pub message.Publisher, notifier Notifier, projectID int64) *Gateway {
	if notifier == nil {
		notifier = LogNotifier{}
	}

	return &Gateway{
		api:       api,
		cache:     qc,
		pub:       pub,
		notifier:  notifier,
		projectID: projectID,
	}
}

// ProjectID 返回网关绑定的项目.
func (g *Gateway) ProjectID() int64 {
	return g.projectID
}

// DeleteFile 删除文件. 成功后使文件列表缓存失效，失败时通知用户.
func (g *Gateway) DeleteFile(ctx context.Context, fileID int64) error {
	start := time.Now()

	err := g.api.DeleteFile(ctx, fileID)

	metrics.MutationDuration.WithLabelValues("delete").Observe(time.Since(start).Seconds())

	if err != nil {
		g.fail("delete", fileID, err, msgDeleteFailed)

		return err
	}

	g.succeed(ctx, "delete", fileID)

	return nil
}

// SaveAnnotation 保存标注. 请求体先过本地校验，不合法时不发请求.
func (g *Gateway) SaveAnnotation(ctx context.Context, req types.SaveAnnotationRequest) error {
	if err := rule.ValidateStruct(&req); err != nil {
		err = fmt.Errorf("validate annotation request: %w", err)
		g.fail("annotate", req.FileID, err, msgAnnotateFailed)

		return err
	}

	start := time.Now()

	err := g.api.SaveAnnotation(ctx, req)

	metrics.MutationDuration.WithLabelValues("annotate").Observe(time.Since(start).Seconds())

	if err != nil {
		g.fail("annotate", req.FileID, err, msgAnnotateFailed)

		return err
	}

	g.succeed(ctx, "annotate", req.FileID)

	return nil
}

// UploadPhoto 上传照片. 成功后使文件列表缓存失效并返回新建记录.
func (g *Gateway) UploadPhoto(ctx context.Context, content io.Reader, req types.UploadPhotoRequest) (*model.MediaFile, error) {
	if err := rule.ValidateStruct(&req); err != nil {
		err = fmt.Errorf("validate upload request: %w", err)
		g.fail("upload", 0, err, msgUploadFailed)

		return nil, err
	}

	start := time.Now()

	created, err := g.api.UploadPhoto(ctx, g.projectID, content, req)

	metrics.MutationDuration.WithLabelValues("upload").Observe(time.Since(start).Seconds())

	if err != nil {
		g.fail("upload", 0, err, msgUploadFailed)

		return nil, err
	}

	g.succeed(ctx, "upload", created.ID)

	return created, nil
}

// succeed 成功收尾：失效缓存、广播事件、记指标.
func (g *Gateway) succeed(ctx context.Context, operation string, fileID int64) {
	metrics.MutationCounter.WithLabelValues(operation, "success").Inc()

	key := client.ProjectFilesPath(g.projectID)
	refetched := false

	if g.cache != nil {
		metrics.CacheInvalidations.WithLabelValues(operation).Inc()

		if err := g.cache.Invalidate(ctx, key); err != nil {
			// 失效后的重取失败不影响变更本身的结果，下一次读取会重试
			log.Logger().Warn().Err(err).Str("key", key).Msg("refetch after invalidation failed")
		} else {
			refetched = true
		}
	}

	if g.pub != nil {
		if err := queue.PublishFileListInvalidated(g.pub, queue.FileListInvalidatedPayload{
			ProjectID: g.projectID,
			Key:       key,
			Reason:    operation,
		}); err != nil {
			log.Logger().Warn().Err(err).Msg("publish invalidation event failed")
		}

		if refetched {
			if files, ok := cache.Lookup[[]model.MediaFile](ctx, g.cache, key); ok {
				_ = queue.PublishFileListRefetched(g.pub, queue.FileListRefetchedPayload{
					ProjectID: g.projectID,
					Key:       key,
					Count:     len(files),
				})
			}
		}

		if err := queue.PublishMutationResult(g.pub, queue.MutationPayload{
			Operation: operation,
			ProjectID: g.projectID,
			FileID:    fileID,
		}); err != nil {
			log.Logger().Warn().Err(err).Msg("publish mutation event failed")
		}
	}

	log.Logger().Info().
		Str("operation", operation).
		Int64("project_id", g.projectID).
		Int64("file_id", fileID).
		Msg("mutation succeeded")
}

// fail 失败收尾：归一化展示信息、通知用户、广播事件、记指标.
func (g *Gateway) fail(operation string, fileID int64, err error, fallback string) {
	metrics.MutationCounter.WithLabelValues(operation, "failure").Inc()

	display := displayMessage(err, fallback)

	g.notifier.Notify(NotifyError, "Error", display)

	if g.pub != nil {
		if pubErr := queue.PublishMutationResult(g.pub, queue.MutationPayload{
			Operation: operation,
			ProjectID: g.projectID,
			FileID:    fileID,
			Error:     display,
		}); pubErr != nil {
			log.Logger().Warn().Err(pubErr).Msg("publish mutation event failed")
		}
	}

	log.Logger().Error().Err(err).
		Str("operation", operation).
		Int64("project_id", g.projectID).
		Int64("file_id", fileID).
		Msg("mutation failed")
}
