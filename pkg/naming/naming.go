/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

// Package naming holds the rules of record names: case insensitive keys and
// numbered name series like "Zone 1", "Zone 2", "Zone_3".
package naming

import (
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

const (
	spaceSpacer      = " "
	underscoreSpacer = "_"
	defaultSpacer    = spaceSpacer
)

// Fold returns case folded form of s, used as key of name lookups
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Equal reports whether names are equal ignoring case
func Equal(a, b string) bool {
	return a == b || Fold(a) == Fold(b)
}

// splits name at the last space or underscore, whichever is later
func split(name string) (base, suffix, spacer string, ok bool) {
	i := strings.LastIndexAny(name, spaceSpacer+underscoreSpacer)
	if i < 0 {
		return name, "", "", false
	}
	return name[:i], name[i+1:], name[i : i+1], true
}

// Suffix returns positive integer suffix of the name and the spacer before it.
//
//	Suffix("Zone 12")   // 12, " ", true
//	Suffix("Zone_3")    // 3, "_", true
//	Suffix("Zone 1_a")  // 0, " ", false
func Suffix(name string) (suffix int, spacer string, ok bool) {
	_, s, sp, found := split(name)
	if !found || s == "" {
		return 0, defaultSpacer, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, defaultSpacer, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, defaultSpacer, false
	}
	return n, sp, true
}

// BaseName returns name without its numeric suffix
func BaseName(name string) string {
	if _, _, ok := Suffix(name); ok {
		base, _, _, _ := split(name)
		return base
	}
	return name
}

// BaseNamesMatch reports whether name belongs to the series of base name
func BaseNamesMatch(baseName, name string) bool {
	return Equal(baseName, BaseName(name))
}

// Next returns the next free name of the series of name.
//
// Series members are taken names with base name matching the base name of name.
// If fillIn is true, the smallest free suffix is used, else the maximum used
// suffix plus one. Spacer is the one of the last taken name with a suffix.
func Next(name string, taken []string, fillIn bool) string {
	base := BaseName(name)
	spacer := defaultSpacer
	used := make([]int, 0, len(taken))
	for _, t := range taken {
		if !BaseNamesMatch(base, t) {
			continue
		}
		if n, sp, ok := Suffix(t); ok {
			used = append(used, n)
			spacer = sp
		}
	}
	sort.Ints(used)

	next := 1
	if fillIn {
		for _, n := range used {
			if n == next {
				next++
			} else if n > next {
				break
			}
		}
	} else if len(used) > 0 {
		next = used[len(used)-1] + 1
	}
	return base + spacer + strconv.Itoa(next)
}

// Unique returns a name which is unique without any check, a braced UUID
func Unique() string {
	return "{" + uuid.NewString() + "}"
}

// IsUnique reports whether name looks like a name returned by Unique
func IsUnique(name string) bool {
	if len(name) < 2 || name[0] != '{' || name[len(name)-1] != '}' {
		return false
	}
	_, err := uuid.Parse(name[1 : len(name)-1])
	return err == nil
}

// FromSchemaName converts schema object name to default record name.
//
//	FromSchemaName("OS:ThermalZone")  // "ThermalZone"
//	FromSchemaName("Shading:Zone:Detailed")  // "Shading Zone Detailed"
func FromSchemaName(schemaName string) string {
	s := strings.TrimPrefix(schemaName, "OS:")
	return strings.ReplaceAll(s, ":", " ")
}
