// Package storage 聚合本地运行时资源：事件总线、键值缓存存储与备份目标 S3.
//
// Example:
//
// 初始化
//
//	 ctx := context.Background()
//	 mgr, err := storage.Init(ctx)
//
//		if err != nil {
//		    // 处理错误
//		}
//
// 获取存储客户端
//
//	s3Client := mgr.GetS3Client()
//	kvClient := mgr.GetKVClient()
package storage

import (
	"context"
	"sync"

	"github.com/profieldmanager/mediavault/pkg/configs"
	kvc "github.com/profieldmanager/mediavault/pkg/internal/storage/kv"
	mqc "github.com/profieldmanager/mediavault/pkg/internal/storage/mq"
	s3c "github.com/profieldmanager/mediavault/pkg/internal/storage/s3"
	nlog "github.com/profieldmanager/mediavault/pkg/log"
)

// Manager 聚合所有存储资源.
type Manager struct {
	S3 *s3c.Client
	KV *kvc.Client
	MQ *mqc.Client
}

// Options 控制哪些资源需要初始化. CLI 的纯查询命令不需要 S3.
type Options struct {
	WithS3 bool
}

var (
	mgr     *Manager
	mgrOnce sync.Once
)

// Init 初始化默认存储，使用全局配置. 重复调用只返回已初始化实例.
func Init(ctx context.Context, opts Options) (*Manager, error) {
	var err error

	mgrOnce.Do(func() {
		m := &Manager{}

		// KV
		if kvi, e := kvc.NewKVClient(ctx); e != nil {
			err = e

			return
		} else {
			m.KV = kvi
		}

		// MQ（进程内总线）
		if mqi, e := mqc.New(ctx); e != nil {
			err = e

			return
		} else {
			m.MQ = mqi
		}

		// S3 仅在备份相关路径需要
		if opts.WithS3 {
			if s3i, e := s3c.New(ctx); e != nil {
				err = e

				return
			} else {
				m.S3 = s3i
			}
		}

		mgr = m

		nlog.Logger().Info().Bool("s3", opts.WithS3).Str("kv", configs.GetConfig().KV.Type).Msg("storage manager initialized")
	})

	return mgr, err
}

// GetS3Client 获取 S3 客户端.
func (m *Manager) GetS3Client() *s3c.Client {
	return m.S3
}

// GetKVClient 获取 KV 客户端.
func (m *Manager) GetKVClient() *kvc.Client {
	return m.KV
}

// GetMQClient 获取事件总线客户端.
func (m *Manager) GetMQClient() *mqc.Client {
	return m.MQ
}
