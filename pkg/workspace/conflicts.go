/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package workspace

import (
	"strings"

	"github.com/voedger/idfspace/pkg/goutils/logger"
	"github.com/voedger/idfspace/pkg/idd"
	"github.com/voedger/idfspace/pkg/idf"
	"github.com/voedger/idfspace/pkg/naming"
)

// Returns next free name of the series of name, like "Zone 3" for "Zone 1"
// if "Zone 1" and "Zone 2" are taken. If fillIn, the smallest free suffix
// is used. With fast naming returns unique placeholder
func (ws *Workspace) NextName(name string, fillIn bool) string {
	return ws.nextNameAmong(name, nil, fillIn)
}

// Returns next free name of records of type, like "Zone 1"
func (ws *Workspace) NextNameForType(t idd.ObjectType, fillIn bool) string {
	if ws.fastNaming {
		return naming.Unique()
	}
	o := ws.schema.Object(t)
	if o == nil {
		return ""
	}
	base := o.DefaultRecordName()
	return naming.Next(base, namesOf(ws.ObjectsByTypeAndName(t, base)), fillIn)
}

// returns next name of type series filling gaps, names of extra are taken too
func (ws *Workspace) nextNameForTypeAmong(o *idd.Object, extra []string) string {
	base := o.DefaultRecordName()
	name := naming.Next(base, append(namesOf(ws.ObjectsByTypeAndName(o.Type(), base)), extra...), true)
	if o.UnderscoreName() {
		name = strings.ReplaceAll(name, " ", "_")
	}
	return name
}

// returns next free name of the series of name, names of extra are taken too
func (ws *Workspace) nextNameAmong(name string, extra []string, fillIn bool) string {
	if ws.fastNaming {
		return naming.Unique()
	}
	taken := append(namesOf(ws.ObjectsByName(name, false)), extra...)
	return naming.Next(name, taken, fillIn)
}

func namesOf(objects []*Object) []string {
	res := make([]string, 0, len(objects))
	for _, o := range objects {
		res = append(res, o.NameOrEmpty())
	}
	return res
}

// Returns would record of schema object named name conflict with some record
// of workspace: the same name and the same type or common reference lists
func (ws *Workspace) PotentialNameConflict(name string, iddObject *idd.Object) bool {
	for _, o := range ws.ObjectsByName(name, true) {
		if o.IddObject() == iddObject {
			return true
		}
		if len(intersectRefs(o.IddObject().References(), iddObject.References())) > 0 {
			return true
		}
	}
	return false
}

// Returns groups of candidates with the same name, case insensitive. Groups
// and their members follow the order of candidates
func (ws *Workspace) NameConflicts(candidates []*Object) [][]*Object {
	groups := make(map[string]int)
	var res [][]*Object
	first := make(map[string]*Object)
	for _, c := range candidates {
		name, ok := c.Name()
		if !ok {
			continue
		}
		key := naming.Fold(name)
		f, seen := first[key]
		if !seen {
			first[key] = c
			continue
		}
		if g, ok := groups[key]; ok {
			res[g] = append(res[g], c)
			continue
		}
		groups[key] = len(res)
		res = append(res, []*Object{f, c})
	}
	return res
}

// Renames records of other workspace which names conflict with records of
// this workspace or with each other. Returns true if any record is renamed.
// Renamed records take names free in both workspaces
func (ws *Workspace) ResolvePotentialNameConflicts(other *Workspace) bool {
	objects := other.Objects(false)
	batch := make([]*idf.Object, len(objects))
	for i, o := range objects {
		batch[i] = o.Object
	}
	return ws.resolveNames(batch, nil, other == ws)
}

// Renames records of batch. A record is renamed if its name conflicts with
// workspace record, unless batch is the workspace itself, or with earlier
// record of batch having common reference lists. Records of ignored indexes
// keep their names
func (ws *Workspace) resolveNames(batch []*idf.Object, ignore map[int]bool, same bool) bool {
	seen := make(map[string][]*idf.Object)
	var toRename []*idf.Object
	for i, o := range batch {
		if ignore[i] {
			continue
		}
		name, ok := o.Name()
		if !ok || name == "" {
			continue
		}
		if !same && ws.PotentialNameConflict(name, o.IddObject()) {
			toRename = append(toRename, o)
			continue
		}
		key := naming.Fold(name)
		for _, p := range seen[key] {
			if len(intersectRefs(p.IddObject().References(), o.IddObject().References())) > 0 {
				toRename = append(toRename, o)
				break
			}
		}
		seen[key] = append(seen[key], o)
	}

	taken := make([]string, 0, len(batch))
	for _, o := range batch {
		taken = append(taken, o.NameOrEmpty())
	}
	for _, o := range toRename {
		description := o.BriefDescription()
		newName, ok := o.SetName(ws.nextNameAmong(o.NameOrEmpty(), taken, ws.fillNameGaps))
		if !ok {
			logger.Warning("can not rename", description, "to avoid name conflict")
			continue
		}
		taken = append(taken, newName)
		logger.Info("renamed", description, "to «"+newName+"» to avoid name conflict")
	}
	return len(toRename) > 0
}
