package cmd

import (
	"github.com/spf13/cobra"

	"github.com/profieldmanager/mediavault/pkg/app"
)

var (
	daemonCmd = &cobra.Command{
		Use:     "daemon",
		Short:   "run the observability daemon (health, jobs, metrics) with scheduled backups",
		Aliases: []string{"serve", "d"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.NewApp(cfgFile).Run()
		},
	}
)

// registerDaemonCommand 注册 daemon 命令.
func registerDaemonCommand() {
	rootCmd.AddCommand(daemonCmd)
}
