/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voedger/idfspace/pkg/goutils/cobrau"
)

//go:embed version
var version string

func main() {
	if err := cobrau.ExecCommandAndCatchInterrupt(newRootCmd(os.Args, version)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(args []string, ver string) *cobra.Command {
	return cobrau.PrepareRootCmd(
		"idfctl",
		"validate, format, merge and archive IDF files",
		args,
		ver,
		newValidateCmd(),
		newFmtCmd(),
		newMergeCmd(),
		newStatsCmd(),
		newStoreCmd(),
	)
}
