/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/voedger/idfspace/pkg/goutils/logger"
	"github.com/voedger/idfspace/pkg/wsstore"
)

type storeParams struct {
	idfctlParams
	StorePath string
}

func newStoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "archive of named workspace snapshots",
	}
	cmd.AddCommand(
		newStorePutCmd(),
		newStoreGetCmd(),
		newStoreListCmd(),
		newStoreDeleteCmd(),
	)
	return cmd
}

func initStoreFlags(cmd *cobra.Command, params *storeParams) {
	initGlobalFlags(cmd, &params.idfctlParams)
	cmd.Flags().StringVar(&params.StorePath, "store", "", "store file, overrides store_path of configuration")
}

// Opens store of configuration and runs f. Schema is loaded if withSchema
func withStore(cmd *cobra.Command, params storeParams, withSchema bool, f func(*env, wsstore.IStore) error) error {
	e, err := setUp(cmd, params.idfctlParams, withSchema)
	if err != nil {
		return err
	}
	path := e.cfg.StorePath
	if params.StorePath != "" {
		path = params.StorePath
	}
	s, err := wsstore.Open(path)
	if err != nil {
		return fmt.Errorf("store %s: %w", path, err)
	}
	defer s.Close()
	ctx := logger.WithContextAttrs(cmd.Context(), logger.LogAttr_Cmd, cmd.Name())
	ctx = logger.WithContextAttrs(ctx, logger.LogAttr_Store, path)
	if err := f(e, s); err != nil {
		logger.VerboseCtx(ctx, "failed: ", err)
		return err
	}
	logger.VerboseCtx(ctx, "done")
	return nil
}

func newStorePutCmd() *cobra.Command {
	params := storeParams{}
	cmd := &cobra.Command{
		Use:   "put name file",
		Short: "save IDF file as snapshot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, params, true, func(e *env, s wsstore.IStore) error {
				ws, err := e.load(args[1])
				if err != nil {
					return err
				}
				info, err := s.Put(args[0], ws)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d records saved\n", info.Name, info.NumObjects)
				return nil
			})
		},
	}
	initStoreFlags(cmd, &params)
	return cmd
}

func newStoreGetCmd() *cobra.Command {
	params := storeParams{}
	out := ""
	cmd := &cobra.Command{
		Use:   "get name",
		Short: "print snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, params, true, func(e *env, s wsstore.IStore) error {
				opts, err := e.cfg.WorkspaceOptions(e.schema)
				if err != nil {
					return err
				}
				ws, err := s.Get(args[0], e.schema, opts...)
				if err != nil {
					return err
				}
				return output(ws, out, cmd.OutOrStdout())
			})
		},
	}
	initStoreFlags(cmd, &params)
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file, standard output by default")
	return cmd
}

func newStoreListCmd() *cobra.Command {
	params := storeParams{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "list snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, params, false, func(_ *env, s wsstore.IStore) error {
				infos, err := s.List()
				if err != nil {
					return err
				}
				for _, i := range infos {
					fmt.Fprintf(cmd.OutOrStdout(), "%-30s %s %6d records, version %s\n",
						i.Name, i.SavedAt.Format(time.DateTime), i.NumObjects, i.Version)
				}
				return nil
			})
		},
	}
	initStoreFlags(cmd, &params)
	return cmd
}

func newStoreDeleteCmd() *cobra.Command {
	params := storeParams{}
	cmd := &cobra.Command{
		Use:   "delete name",
		Short: "delete snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, params, false, func(_ *env, s wsstore.IStore) error {
				ok, err := s.Delete(args[0])
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("%w: «%s»", wsstore.ErrSnapshotNotFound, args[0])
				}
				return nil
			})
		},
	}
	initStoreFlags(cmd, &params)
	return cmd
}
