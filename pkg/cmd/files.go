package cmd

import (
	"encoding/json"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/profieldmanager/mediavault/pkg/internal/types"
)

var (
	uploadDescription string
	annotationsFile   string
	annotatedImageURL string

	filesCmd = &cobra.Command{
		Use:     "files",
		Short:   "Project media gallery commands",
		Aliases: []string{"file", "f"},
	}

	filesListCmd = &cobra.Command{
		Use:     "list",
		Short:   "list project files grouped by kind",
		Aliases: []string{"ls", "l"},
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, api, err := setup(cmd, false)
			if err != nil {
				return err
			}

			project, err := resolveProject()
			if err != nil {
				return err
			}

			sess := newSession(mgr, api, project)

			c, err := sess.Classify(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "images (%d):\n", len(c.Images))
			for _, f := range c.Images {
				fmt.Fprintf(out, "  %6d  %s  (%d bytes)\n", f.ID, f.FileName, f.FileSize)
			}

			fmt.Fprintf(out, "videos (%d):\n", len(c.Videos))
			for _, f := range c.Videos {
				fmt.Fprintf(out, "  %6d  %s  (%d bytes)\n", f.ID, f.FileName, f.FileSize)
			}

			fmt.Fprintf(out, "documents (%d):\n", len(c.Documents))
			for _, f := range c.Documents {
				fmt.Fprintf(out, "  %6d  %s  [%s]\n", f.ID, f.FileName, f.FileType)
			}

			return nil
		},
	}

	filesDeleteCmd = &cobra.Command{
		Use:     "delete <file-id>",
		Short:   "delete a file",
		Aliases: []string{"rm", "del"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid file id %q", args[0])
			}

			mgr, api, err := setup(cmd, false)
			if err != nil {
				return err
			}

			project, err := resolveProject()
			if err != nil {
				return err
			}

			if err := newSession(mgr, api, project).Delete(cmd.Context(), fileID); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted file %d\n", fileID)

			return nil
		},
	}

	filesAnnotateCmd = &cobra.Command{
		Use:   "annotate <file-id>",
		Short: "save annotations for a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid file id %q", args[0])
			}

			req := types.SaveAnnotationRequest{
				FileID:            fileID,
				AnnotatedImageURL: annotatedImageURL,
			}

			if annotationsFile != "" {
				data, err := os.ReadFile(annotationsFile)
				if err != nil {
					return fmt.Errorf("read annotations file: %w", err)
				}

				if err := json.Unmarshal(data, &req.Annotations); err != nil {
					return fmt.Errorf("annotations file must be a JSON array: %w", err)
				}
			}

			mgr, api, err := setup(cmd, false)
			if err != nil {
				return err
			}

			project, err := resolveProject()
			if err != nil {
				return err
			}

			if err := newSession(mgr, api, project).SaveAnnotation(cmd.Context(), req); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "saved annotations for file %d\n", fileID)

			return nil
		},
	}

	filesUploadCmd = &cobra.Command{
		Use:     "upload <path>",
		Short:   "upload a photo to the project",
		Aliases: []string{"up"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			mgr, api, err := setup(cmd, false)
			if err != nil {
				return err
			}

			project, err := resolveProject()
			if err != nil {
				return err
			}

			req := types.UploadPhotoRequest{
				FileName:    filepath.Base(args[0]),
				Description: uploadDescription,
				ContentType: mime.TypeByExtension(filepath.Ext(args[0])),
			}

			created, err := newSession(mgr, api, project).Upload(cmd.Context(), f, req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "uploaded %s as file %d\n", created.FileName, created.ID)

			return nil
		},
	}
)

// registerFilesCommands 注册文件相关命令.
func registerFilesCommands() {
	filesAnnotateCmd.Flags().StringVar(&annotationsFile, "annotations", "", "path to a JSON array of annotation objects")
	filesAnnotateCmd.Flags().StringVar(&annotatedImageURL, "image-url", "", "URL of the annotated image rendering")
	filesUploadCmd.Flags().StringVarP(&uploadDescription, "description", "d", "", "file description")

	filesCmd.AddCommand(filesListCmd)
	filesCmd.AddCommand(filesDeleteCmd)
	filesCmd.AddCommand(filesAnnotateCmd)
	filesCmd.AddCommand(filesUploadCmd)

	rootCmd.AddCommand(filesCmd)
}
