// Package main is the entry point for the adbvnet CLI.
//
// adbvnet provisions an Azure Databricks workspace injected into a customer
// virtual network, wires its private endpoints and DNS zones, grants the
// workspace-managed identity access to an ADLS Gen2 storage account, and
// submits Spark JAR jobs to the workspace.
//
// Commands: network, storage, endpoint, job, apply, destroy, plan, version.
//
// For detailed usage information, run:
//
//	adbvnet --help
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/imamik/adbvnet/cmd/adbvnet/commands"
)

// Version information set at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := commands.SignalContext(context.Background())
	defer stop()

	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
