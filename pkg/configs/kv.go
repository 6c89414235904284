package configs

import (
	"github.com/spf13/viper"
)

const (
	// DefaultKVType 默认键值存储类型，单进程客户端用内存实现即可.
	DefaultKVType = "memory"
)

// KVConfig 本地键值存储配置，用于查询缓存的底层存储.
type KVConfig struct {
	Type string `mapstructure:"type"`
}

// setDefaults 设置 KV 配置的默认值.
func (k *KVConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("kv.type", DefaultKVType)
}
