package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keepmark/keep-to-markdown/internal/app/exporter"
	"github.com/keepmark/keep-to-markdown/internal/ui"
)

func newExportCmd() *cobra.Command {
	exp := exporter.Exporter{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a Keep dump as markdown notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := exp.Run()
			if err != nil {
				return err
			}
			msg := fmt.Sprintf("exported %d notes and %d media files", stats.Notes, stats.Media)
			if stats.Skipped > 0 {
				msg += fmt.Sprintf(" (%d skipped)", stats.Skipped)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Success(msg))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&exp.InputDir, "input", "i", envDefault("KTM_INPUT_PATH", "./Keep"), "path to the Keep dump directory")
	flags.StringVarP(&exp.OutputDir, "output", "o", envDefault("KTM_EXPORT_PATH", "./export"), "path to the markdown output directory")
	flags.StringVar(&exp.MediaDir, "media-dir", envDefault("KTM_MEDIA_PATH", "media"), "attachment subdirectory under the output directory")
	flags.StringVar(&exp.FragmentsDir, "fragments-dir", envDefault("KTM_FRAGMENTS_PATH", "fragments"), "subdirectory for notes without a folder label")
	flags.StringSliceVarP(&exp.Labels, "label", "l", nil, "export only notes carrying one of these labels (repeatable)")
	flags.BoolVar(&exp.IncludeArchived, "archived", false, "export archived notes too")

	return cmd
}
