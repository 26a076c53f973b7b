/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package main

import (
	"github.com/spf13/cobra"
)

func newFmtCmd() *cobra.Command {
	params := idfctlParams{}
	out := ""
	cmd := &cobra.Command{
		Use:   "fmt file",
		Short: "print IDF file in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setUp(cmd, params, true)
			if err != nil {
				return err
			}
			ws, err := e.load(args[0])
			if err != nil {
				return err
			}
			return output(ws, out, cmd.OutOrStdout())
		},
	}
	initGlobalFlags(cmd, &params)
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file, standard output by default")
	return cmd
}
