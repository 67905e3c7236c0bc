// Package main is the entry point for the rnsetup CLI.
//
// rnsetup scaffolds a React Native project: it asks for a project name and a
// set of optional add-ons, runs the community generator, installs the chosen
// packages and prints how to run the app.
//
// Commands: init, features, doctor, version.
//
// For detailed usage information, run:
//
//	rnsetup --help
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/imamik/rnsetup/cmd/rnsetup/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := commands.Root().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
