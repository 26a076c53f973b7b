/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voedger/idfspace/pkg/goutils/logger"
)

func newMergeCmd() *cobra.Command {
	params := idfctlParams{}
	into, out := "", ""
	cmd := &cobra.Command{
		Use:   "merge --into target [files...]",
		Short: "add records of files to target file, conflicting names are resolved",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setUp(cmd, params, true)
			if err != nil {
				return err
			}
			target, err := e.load(into)
			if err != nil {
				return err
			}
			for _, path := range args {
				src, err := e.loadAsIs(path)
				if err != nil {
					return err
				}
				added, err := target.AddObjects(src.ToIdfFile().Objects(), false)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				logger.Info(len(added), "records of", path, "merged")
			}
			return output(target, out, cmd.OutOrStdout())
		},
	}
	initGlobalFlags(cmd, &params)
	cmd.Flags().StringVar(&into, "into", "", "target file")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file, standard output by default")
	_ = cmd.MarkFlagRequired("into")
	return cmd
}
