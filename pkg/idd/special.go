/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package idd

import "github.com/voedger/idfspace/pkg/naming"

// Objects which names must not contain spaces, spaces are replaced by underscores
var underscoreNameObjects = func() map[string]bool {
	names := []string{
		"Actuator",
		"ConstructionIndexVariable",
		"CurveOrTableIndexVariable",
		"GlobalVariable",
		"InternalVariable",
		"Program",
		"Sensor",
		"Subroutine",
		"TrendVariable",
	}
	m := make(map[string]bool, len(names)*2)
	for _, n := range names {
		m[naming.Fold("EnergyManagementSystem:"+n)] = true
		m[naming.Fold("OS:EnergyManagementSystem:"+n)] = true
	}
	return m
}()

// Reference lists of objects which have no name field but are still pointed to
var implicitReferences = map[string][]string{
	naming.Fold("OS:Connection"): {"ConnectionNames"},
	naming.Fold("OS:PortList"):   {"PortListNames"},
}
