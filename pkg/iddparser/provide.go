/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package iddparser

import (
	"fmt"
	"os"

	"github.com/voedger/idfspace/pkg/idd"
)

// Parses IDD text. Name is used in error positions
func Parse(name, text string) (*idd.File, error) {
	return parse(name, text)
}

// Reads and parses IDD file
func ParseFile(path string) (*idd.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read IDD: %w", err)
	}
	return parse(path, string(data))
}

// Parses IDD text and panics on error. Useful in tests
func MustParse(name, text string) *idd.File {
	f, err := parse(name, text)
	if err != nil {
		panic(err)
	}
	return f
}
