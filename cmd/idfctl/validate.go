/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/voedger/idfspace/pkg/goutils/logger"
	"github.com/voedger/idfspace/pkg/validity"
)

func newValidateCmd() *cobra.Command {
	params := idfctlParams{}
	level := ""
	cmd := &cobra.Command{
		Use:   "validate [files...]",
		Short: "check validity of IDF files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setUp(cmd, params, true)
			if err != nil {
				return err
			}
			lvl := e.cfg.Strictness
			if level != "" {
				if lvl, err = validity.ParseLevel(level); err != nil {
					return err
				}
			}
			reports, err := validate(cmd.Context(), e, args, lvl)
			if err != nil {
				return err
			}
			invalid := 0
			for i, r := range reports {
				if r.Valid() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: valid at %s level\n", args[i], lvl)
					continue
				}
				invalid++
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[i], r)
			}
			if invalid > 0 {
				return fmt.Errorf("%w: %d of %d", ErrInvalidFiles, invalid, len(reports))
			}
			return nil
		},
	}
	initGlobalFlags(cmd, &params)
	cmd.Flags().StringVarP(&level, "level", "l", "", "strictness level: None, Minimal, Draft or Final")
	return cmd
}

// Loads files concurrently and returns their validity reports in order of paths
func validate(ctx context.Context, e *env, paths []string, level validity.StrictnessLevel) ([]*validity.Report, error) {
	reports := make([]*validity.Report, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ctx := logger.WithContextAttrs(ctx, logger.LogAttr_File, path)
			ws, err := e.loadAsIs(path)
			if err != nil {
				return err
			}
			reports[i] = ws.ValidityReport(level)
			logger.VerboseCtx(ctx, "validated at ", level, " level, ", reports[i].NumErrors(), " error(s)")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
