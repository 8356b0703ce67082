package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keepmark/keep-to-markdown/internal/app/importer"
	"github.com/keepmark/keep-to-markdown/internal/infra/keepjson"
	"github.com/keepmark/keep-to-markdown/internal/ui"
)

func newImportCmd() *cobra.Command {
	imp := importer.Importer{}
	var outputDir string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import markdown files as new notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := imp.Run(keepjson.Store{Dir: outputDir})
			if err != nil {
				return err
			}
			msg := fmt.Sprintf("imported %d notes", stats.Notes)
			if stats.Skipped > 0 {
				msg += fmt.Sprintf(" (%d skipped)", stats.Skipped)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Success(msg))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&imp.InputDir, "input", "i", envDefault("KTM_IMPORT_PATH", "./import"), "directory scanned recursively for *.md files")
	flags.StringVarP(&outputDir, "output", "o", envDefault("KTM_INPUT_PATH", "./Keep"), "dump directory the created notes are written to")
	flags.StringSliceVarP(&imp.Labels, "label", "l", splitLabels(envDefault("KTM_IMPORT_LABELS", "")), "labels attached to every imported note (repeatable)")

	return cmd
}

func splitLabels(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
