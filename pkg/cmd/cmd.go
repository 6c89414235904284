// Package cmd contains the command line applications for the project.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/profieldmanager/mediavault/pkg/cache"
	"github.com/profieldmanager/mediavault/pkg/configs"
	"github.com/profieldmanager/mediavault/pkg/gallery"
	"github.com/profieldmanager/mediavault/pkg/internal/client"
	"github.com/profieldmanager/mediavault/pkg/internal/storage"
	"github.com/profieldmanager/mediavault/pkg/log"
)

var (
	cfgFile   string
	debug     bool
	projectID int64

	rootCmd = &cobra.Command{
		Use:   "mediavault",
		Short: "A command line tool for managing project media galleries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", ".", "config file or directory")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().Int64VarP(&projectID, "project", "p", 0, "project id (overrides api.project_id)")

	registerConfigsCommands()
	registerFilesCommands()
	registerSettingsCommands()
	registerBackupCommands()
	registerDaemonCommand()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setup 初始化配置、日志与存储资源，返回聚合后的运行时依赖.
func setup(cmd *cobra.Command, withS3 bool) (*storage.Manager, *client.Client, error) {
	if err := configs.InitConfig(cfgFile); err != nil {
		return nil, nil, err
	}

	log.Init()

	mgr, err := storage.Init(cmd.Context(), storage.Options{WithS3: withS3})
	if err != nil {
		return nil, nil, fmt.Errorf("init storage: %w", err)
	}

	return mgr, client.New(&configs.GetConfig().API), nil
}

// resolveProject 返回命令行指定的项目 id，缺省回退到配置.
func resolveProject() (int64, error) {
	if projectID > 0 {
		return projectID, nil
	}

	if id := configs.GetConfig().API.ProjectID; id > 0 {
		return id, nil
	}

	return 0, fmt.Errorf("no project id: pass --project or set api.project_id")
}

// newQueryCache 基于 KV 存储构造查询缓存.
func newQueryCache(mgr *storage.Manager) *cache.QueryCache {
	return cache.NewQueryCache(cache.NewCache(mgr.GetKVClient()), 0)
}

// newSession 装配单个项目的画廊会话.
func newSession(mgr *storage.Manager, api *client.Client, project int64) *gallery.Session {
	return gallery.NewSession(api, newQueryCache(mgr), mgr.GetMQClient().Publisher(), nil, project)
}
