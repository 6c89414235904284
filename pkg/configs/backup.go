package configs

import (
	"github.com/spf13/viper"
)

const (
	DefaultBackupEnabled = false       // 是否启用定时备份
	DefaultBackupCron    = "0 3 * * *" // 默认每天 03:00 执行
	DefaultBackupPrefix  = "projects"  // 对象键前缀
)

type (
	// BackupConfig 项目文件备份调度配置.
	// Projects 为需要镜像备份的项目 ID 列表；为空时回退到 api.project_id.
	BackupConfig struct {
		Enabled  bool    `mapstructure:"enabled"`
		Cron     string  `mapstructure:"cron"`
		Projects []int64 `mapstructure:"projects"`
		Prefix   string  `mapstructure:"prefix"`
	}
)

// ProjectIDs 返回待备份项目列表，空配置时回退到 API 默认项目.
func (b *BackupConfig) ProjectIDs(api *APIConfig) []int64 {
	if len(b.Projects) > 0 {
		return b.Projects
	}

	if api != nil && api.ProjectID > 0 {
		return []int64{api.ProjectID}
	}

	return nil
}

// setDefaults 设置备份配置的默认值.
func (b *BackupConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("backup.enabled", DefaultBackupEnabled)
	v.SetDefault("backup.cron", DefaultBackupCron)
	v.SetDefault("backup.projects", []int64{})
	v.SetDefault("backup.prefix", DefaultBackupPrefix)
}
