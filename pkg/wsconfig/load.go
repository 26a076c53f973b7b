/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package wsconfig

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/voedger/idfspace/pkg/goutils/logger"
	"github.com/voedger/idfspace/pkg/validity"
	"github.com/voedger/idfspace/pkg/workspace"
)

// Body of HCL file. Absent attributes keep values of Default
type file struct {
	Strictness   string   `hcl:"strictness,optional"`
	FastNaming   bool     `hcl:"fast_naming,optional"`
	FillNameGaps bool     `hcl:"fill_name_gaps,optional"`
	Order        string   `hcl:"order,optional"`
	TypeOrder    []string `hcl:"type_order,optional"`
	LogLevel     string   `hcl:"log_level,optional"`
	StorePath    string   `hcl:"store_path,optional"`
	SchemaPath   string   `hcl:"schema_path,optional"`
}

// Loads configuration from HCL file
func LoadFile(path string) (Config, error) {
	f, diags := hclparse.NewParser().ParseHCLFile(path)
	return decode(path, f, diags)
}

// Parses configuration from HCL text, name is used in messages
func Parse(name string, src []byte) (Config, error) {
	f, diags := hclparse.NewParser().ParseHCL(src, name)
	return decode(name, f, diags)
}

func decode(name string, f *hcl.File, diags hcl.Diagnostics) (Config, error) {
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("%w: %s: %s", ErrConfig, name, diags.Error())
	}
	d := Default()
	body := file{
		Strictness:   d.Strictness.String(),
		FastNaming:   d.FastNaming,
		FillNameGaps: d.FillNameGaps,
		Order:        d.Order.String(),
		LogLevel:     d.LogLevel.String(),
		StorePath:    d.StorePath,
	}
	if diags := gohcl.DecodeBody(f.Body, nil, &body); diags.HasErrors() {
		return Config{}, fmt.Errorf("%w: %s: %s", ErrConfig, name, diags.Error())
	}

	c, err := body.config()
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrConfig, name, err)
	}
	if logger.IsVerbose() {
		logger.Verbose("configuration loaded from", name)
	}
	return c, nil
}

func (f file) config() (c Config, err error) {
	c = Config{
		FastNaming:   f.FastNaming,
		FillNameGaps: f.FillNameGaps,
		TypeOrder:    f.TypeOrder,
		StorePath:    f.StorePath,
		SchemaPath:   f.SchemaPath,
	}
	var errs []error
	if c.Strictness, err = validity.ParseLevel(f.Strictness); err != nil {
		errs = append(errs, err)
	}
	if c.Order, err = workspace.ParseOrderKind(f.Order); err != nil {
		errs = append(errs, err)
	}
	if c.LogLevel, err = logger.ParseLevel(f.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if len(c.TypeOrder) > 0 && c.Order != workspace.OrderKind_Type {
		logger.Warning("type order is ignored for", c.Order, "order")
	}
	return c, errors.Join(errs...)
}
