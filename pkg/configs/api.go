package configs

import (
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultAPIBaseURL = "http://localhost:3000" // 默认文件管理 API 地址
	DefaultAPITimeout = 30                      // 请求超时时间，单位秒
	DefaultProjectID  = 0                       // 默认项目 ID（0 表示未设置，需要命令行传入）
)

type (
	// APIConfig 文件管理 API（外部协作方）的客户端配置.
	APIConfig struct {
		BaseURL   string `mapstructure:"base_url"   rule:"required,url"`
		Token     string `mapstructure:"token"`
		Timeout   int    `mapstructure:"timeout"    rule:"min=1,max=300"`
		ProjectID int64  `mapstructure:"project_id" rule:"min=0"`
	}
)

// GetTimeoutDuration 返回请求超时时间作为 time.Duration.
func (a *APIConfig) GetTimeoutDuration() time.Duration {
	return time.Duration(a.Timeout) * time.Second
}

// setDefaults 设置 API 配置的默认值.
func (a *APIConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", DefaultAPIBaseURL)
	v.SetDefault("api.token", "")
	v.SetDefault("api.timeout", DefaultAPITimeout)
	v.SetDefault("api.project_id", DefaultProjectID)
}
