// Package main provides the entry point for the keep-to-markdown CLI.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

// version is set via ldflags at release time.
var version = "dev"

func main() {
	cmd := newRootCmd()
	if err := fang.Execute(context.Background(), cmd, fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}
