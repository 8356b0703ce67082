package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keep-to-markdown",
		Short: "Convert Keep notes to markdown files and back",
		Long: "keep-to-markdown exports a Keep note dump into individual markdown\n" +
			"files with YAML front matter, and can re-import markdown files as new\n" +
			"note records.",
		SilenceUsage: true,
	}

	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newImportCmd())

	return cmd
}

// envDefault returns the value of an environment variable, or fallback when
// it is unset or empty. Every flag default can be preset via KTM_* vars.
func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
