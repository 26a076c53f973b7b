/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/voedger/idfspace/pkg/workspace"
)

func newStatsCmd() *cobra.Command {
	params := idfctlParams{}
	cmd := &cobra.Command{
		Use:   "stats file",
		Short: "print number of records by type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setUp(cmd, params, true)
			if err != nil {
				return err
			}
			ws, err := e.loadAsIs(args[0])
			if err != nil {
				return err
			}
			printStats(ws, cmd.OutOrStdout())
			return nil
		},
	}
	initGlobalFlags(cmd, &params)
	return cmd
}

func printStats(ws *workspace.Workspace, w io.Writer) {
	counts := make(map[string]int)
	for _, o := range ws.Objects(false) {
		counts[o.TypeName()]++
	}
	names := maps.Keys(counts)
	slices.Sort(names)
	fmt.Fprintf(w, "version %s, %d records\n", ws.Version(), ws.NumObjects())
	for _, n := range names {
		fmt.Fprintf(w, "%-40s %d\n", n, counts[n])
	}
}
