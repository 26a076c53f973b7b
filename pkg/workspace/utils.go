/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package workspace

import "github.com/voedger/idfspace/pkg/naming"

// Returns reference lists presented in both a and b, case insensitive
func intersectRefs(a, b []string) []string {
	var res []string
	for _, x := range a {
		if containsRef(b, x) {
			res = append(res, x)
		}
	}
	return res
}

func containsRef(refs []string, ref string) bool {
	for _, r := range refs {
		if naming.Equal(r, ref) {
			return true
		}
	}
	return false
}
