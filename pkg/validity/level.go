/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package validity

import (
	"fmt"
	"strings"
)

// Depth of validity checks. Each level checks everything lower levels check
type StrictnessLevel uint8

const (
	// No checks
	None StrictnessLevel = iota

	// Records of unknown types
	Minimal

	// Field value types, numeric bounds, choice keys, name conflicts
	Draft

	// Required fields, number of fields, required and unique objects
	Final
)

var levelNames = [...]string{
	None:    "None",
	Minimal: "Minimal",
	Draft:   "Draft",
	Final:   "Final",
}

func (l StrictnessLevel) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return fmt.Sprintf("StrictnessLevel(%d)", uint8(l))
}

// Parses level name, case insensitive
func ParseLevel(s string) (StrictnessLevel, error) {
	for l, n := range levelNames {
		if strings.EqualFold(n, strings.TrimSpace(s)) {
			return StrictnessLevel(l), nil
		}
	}
	return None, fmt.Errorf("%w: «%s»", ErrUnknownLevel, s)
}

func (l StrictnessLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *StrictnessLevel) UnmarshalText(text []byte) (err error) {
	*l, err = ParseLevel(string(text))
	return err
}
