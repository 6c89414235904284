package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/profieldmanager/mediavault/pkg/internal/model"
)

var (
	settingsInputFile string

	settingsCmd = &cobra.Command{
		Use:   "settings",
		Short: "Company and dispatch settings commands",
	}

	companyCmd = &cobra.Command{
		Use:   "company",
		Short: "company settings",
	}

	companyGetCmd = &cobra.Command{
		Use:   "get",
		Short: "print company settings as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, api, err := setup(cmd, false)
			if err != nil {
				return err
			}

			s, err := api.GetCompanySettings(cmd.Context())
			if err != nil {
				return err
			}

			return printJSON(cmd, s)
		},
	}

	companySetCmd = &cobra.Command{
		Use:   "set",
		Short: "update company settings from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var s model.CompanySettings
			if err := readJSONFile(settingsInputFile, &s); err != nil {
				return err
			}

			_, api, err := setup(cmd, false)
			if err != nil {
				return err
			}

			// 校验在客户端内完成，不合法时不发请求
			if err := api.UpdateCompanySettings(cmd.Context(), &s); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "company settings updated")

			return nil
		},
	}

	dispatchCmd = &cobra.Command{
		Use:   "dispatch",
		Short: "dispatch routing preferences",
	}

	dispatchGetCmd = &cobra.Command{
		Use:   "get",
		Short: "print dispatch settings as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, api, err := setup(cmd, false)
			if err != nil {
				return err
			}

			s, err := api.GetDispatchSettings(cmd.Context())
			if err != nil {
				return err
			}

			return printJSON(cmd, s)
		},
	}

	dispatchSetCmd = &cobra.Command{
		Use:   "set",
		Short: "update dispatch settings from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var s model.DispatchSettings
			if err := readJSONFile(settingsInputFile, &s); err != nil {
				return err
			}

			_, api, err := setup(cmd, false)
			if err != nil {
				return err
			}

			if err := api.UpdateDispatchSettings(cmd.Context(), &s); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "dispatch settings updated")

			return nil
		},
	}
)

// printJSON 以缩进 JSON 打印任意值.
func printJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(b))

	return nil
}

// readJSONFile 从文件读取 JSON 到目标结构.
func readJSONFile(path string, v any) error {
	if path == "" {
		return fmt.Errorf("missing --file")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, v)
}

// registerSettingsCommands 注册设置相关命令.
func registerSettingsCommands() {
	companySetCmd.Flags().StringVarP(&settingsInputFile, "file", "f", "", "JSON file with settings")
	dispatchSetCmd.Flags().StringVarP(&settingsInputFile, "file", "f", "", "JSON file with settings")

	companyCmd.AddCommand(companyGetCmd, companySetCmd)
	dispatchCmd.AddCommand(dispatchGetCmd, dispatchSetCmd)

	settingsCmd.AddCommand(companyCmd, dispatchCmd)
	rootCmd.AddCommand(settingsCmd)
}
