/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

// Package wsconfig holds settings of workspaces and of the command line tool.
//
// Settings are read from HCL file like
//
//	strictness     = "Final"
//	fill_name_gaps = true
//	order          = "type"
//	type_order     = ["Version", "Building", "Zone"]
//	log_level      = "verbose"
//	schema_path    = "Energy+.idd"
package wsconfig

import (
	"fmt"

	"github.com/voedger/idfspace/pkg/goutils/logger"
	"github.com/voedger/idfspace/pkg/idd"
	"github.com/voedger/idfspace/pkg/validity"
	"github.com/voedger/idfspace/pkg/workspace"
)

type Config struct {
	Strictness   validity.StrictnessLevel
	FastNaming   bool
	FillNameGaps bool
	Order        workspace.OrderKind

	// schema object names, used by type order
	TypeOrder []string

	LogLevel   logger.TLogLevel
	StorePath  string
	SchemaPath string
}

func Default() Config {
	return Config{
		Strictness: workspace.DefaultStrictness,
		Order:      workspace.OrderKind_Insertion,
		LogLevel:   DefaultLogLevel,
		StorePath:  DefaultStorePath,
	}
}

// Returns options of workspaces of the schema. Fails if type order names
// unknown schema objects
func (c Config) WorkspaceOptions(schema idd.ISchema) ([]workspace.Option, error) {
	opts := []workspace.Option{
		workspace.WithStrictness(c.Strictness),
		workspace.WithFastNaming(c.FastNaming),
		workspace.WithFillNameGaps(c.FillNameGaps),
	}
	switch c.Order {
	case workspace.OrderKind_Type:
		types := make([]idd.ObjectType, 0, len(c.TypeOrder))
		for _, name := range c.TypeOrder {
			o := schema.ObjectByName(name)
			if o == nil {
				return nil, fmt.Errorf("%w: type order: «%s»", ErrUnknownType, name)
			}
			types = append(types, o.Type())
		}
		opts = append(opts, workspace.WithTypeOrder(types...))
	case workspace.OrderKind_Direct:
		opts = append(opts, workspace.WithDirectOrder())
	}
	return opts, nil
}
