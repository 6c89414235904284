package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/profieldmanager/mediavault/pkg/configs"
	"github.com/profieldmanager/mediavault/pkg/internal/backup"
	"github.com/profieldmanager/mediavault/pkg/internal/jobs"
	"github.com/profieldmanager/mediavault/pkg/internal/types"
)

var (
	backupCmd = &cobra.Command{
		Use:     "backup",
		Short:   "Backup mirror and server-side backup commands",
		Aliases: []string{"bk"},
	}

	// 本地镜像：把项目文件拷贝到 S3 备份桶.
	backupRunCmd = &cobra.Command{
		Use:   "run",
		Short: "mirror project files to the backup bucket now",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, api, err := setup(cmd, true)
			if err != nil {
				return err
			}

			project, err := resolveProject()
			if err != nil {
				return err
			}

			cfg := configs.GetConfig()

			mirror := backup.NewMirror(
				api,
				jobs.S3Sink{Cli: mgr.GetS3Client()},
				mgr.GetMQClient().Publisher(),
				cfg.S3.BucketName,
				cfg.Backup.Prefix,
			)

			res, err := mirror.Run(cmd.Context(), project)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "mirrored %d objects (%d bytes), skipped %d\n",
				res.Objects, res.Bytes, res.Skipped)

			return nil
		},
	}

	// 服务端备份任务.
	backupJobsCmd = &cobra.Command{
		Use:     "jobs",
		Short:   "list server-side backup jobs",
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, api, err := setup(cmd, false)
			if err != nil {
				return err
			}

			jobs, err := api.ListBackupJobs(cmd.Context())
			if err != nil {
				return err
			}

			return printJSON(cmd, jobs)
		},
	}

	backupTriggerCmd = &cobra.Command{
		Use:   "trigger",
		Short: "trigger a server-side backup",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, api, err := setup(cmd, false)
			if err != nil {
				return err
			}

			req := types.TriggerBackupRequest{}
			if projectID > 0 {
				req.ProjectID = projectID
			}

			resp, err := api.TriggerBackup(cmd.Context(), req)
			if err != nil {
				return err
			}

			return printJSON(cmd, resp)
		},
	}
)

// registerBackupCommands 注册备份相关命令.
func registerBackupCommands() {
	backupCmd.AddCommand(backupRunCmd)
	backupCmd.AddCommand(backupJobsCmd)
	backupCmd.AddCommand(backupTriggerCmd)

	rootCmd.AddCommand(backupCmd)
}
