/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/voedger/idfspace/pkg/goutils/cobrau"
	"github.com/voedger/idfspace/pkg/goutils/logger"
	"github.com/voedger/idfspace/pkg/idd"
	"github.com/voedger/idfspace/pkg/iddparser"
	"github.com/voedger/idfspace/pkg/validity"
	"github.com/voedger/idfspace/pkg/workspace"
	"github.com/voedger/idfspace/pkg/wsconfig"
)

type idfctlParams struct {
	ConfigPath string
	SchemaPath string
}

func initGlobalFlags(cmd *cobra.Command, params *idfctlParams) {
	cmd.Flags().StringVar(&params.ConfigPath, "config", "", "HCL configuration file")
	cmd.Flags().StringVar(&params.SchemaPath, "idd", "", "IDD schema file, overrides schema_path of configuration")
}

// Configuration and schema of command
type env struct {
	cfg    wsconfig.Config
	schema idd.ISchema
}

// Loads configuration and, if withSchema, schema
func setUp(cmd *cobra.Command, params idfctlParams, withSchema bool) (*env, error) {
	cfg := wsconfig.Default()
	if params.ConfigPath != "" {
		c, err := wsconfig.LoadFile(params.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = c
		if _, ok := cobrau.FlagsLogLevel(cmd); !ok {
			logger.SetLogLevel(cfg.LogLevel)
		}
	}
	if params.SchemaPath != "" {
		cfg.SchemaPath = params.SchemaPath
	}
	if !withSchema {
		return &env{cfg: cfg}, nil
	}
	if cfg.SchemaPath == "" {
		return nil, ErrNoSchema
	}
	schema, err := iddparser.ParseFile(cfg.SchemaPath)
	if err != nil {
		return nil, err
	}
	logger.Verbose("schema", cfg.SchemaPath, "version", schema.Version(), "loaded")
	return &env{cfg: cfg, schema: schema}, nil
}

// Loads workspace with options of configuration
func (e *env) load(path string) (*workspace.Workspace, error) {
	opts, err := e.cfg.WorkspaceOptions(e.schema)
	if err != nil {
		return nil, err
	}
	return workspace.LoadFile(path, e.schema, opts...)
}

// Loads workspace without validation. Files with records of unknown types
// can not be loaded at stricter levels
func (e *env) loadAsIs(path string) (*workspace.Workspace, error) {
	c := e.cfg
	c.Strictness = validity.None
	opts, err := c.WorkspaceOptions(e.schema)
	if err != nil {
		return nil, err
	}
	return workspace.LoadFile(path, e.schema, opts...)
}

// Prints workspace to output file or to out
func output(ws *workspace.Workspace, path string, out io.Writer) error {
	if path != "" {
		return ws.Save(path)
	}
	return ws.Print(out)
}
