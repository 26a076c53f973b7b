/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package iddparser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/voedger/idfspace/pkg/goutils/logger"
	"github.com/voedger/idfspace/pkg/idd"
)

func parse(name, text string) (*idd.File, error) {
	ast, err := iddParser.ParseString(name, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntaxError, err)
	}

	b := idd.NewBuilder().SetHeader(header(text))
	if m := versionRx.FindStringSubmatch(text); m != nil {
		b.SetVersion(m[1])
	}

	var errs []error
	group := ""
	for _, e := range ast.Entries {
		if e.Group != nil {
			group = strings.TrimSpace(strings.TrimPrefix(*e.Group, groupPrefix))
			continue
		}
		if err := buildObject(b.AddObject(e.Object.Name).SetGroup(group), e.Object); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	f, err := b.Build()
	if err != nil {
		return nil, err
	}
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("%s parsed: %v", name, f))
	}
	return f, nil
}

// Leading comment lines
func header(text string) string {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimSpace(l)
		if !strings.HasPrefix(l, "!") {
			break
		}
		lines = append(lines, l)
	}
	return strings.Join(lines, "\n")
}

type property struct {
	name     string
	modifier string
	value    string
}

func splitProperty(s string) (p property, ok bool) {
	m := propertyRx.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return p, false
	}
	return property{name: strings.ToLower(m[1]), modifier: m[2], value: strings.TrimSpace(m[3])}, true
}

func buildObject(ob *idd.ObjectBuilder, o *objectAST) error {
	var errs []error
	for _, s := range o.Props {
		p, ok := splitProperty(s)
		if !ok {
			continue
		}
		switch p.name {
		case "memo":
			ob.SetMemo(p.value)
		case "unique-object":
			ob.SetUnique()
		case "required-object":
			ob.SetRequired()
		case "obsolete":
			ob.SetObsolete()
		case "format":
			ob.SetFormat(p.value)
		case "min-fields":
			n, err := strconv.Atoi(p.value)
			if err != nil {
				errs = append(errs, errProperty(o.Pos, p.name, p.value))
				continue
			}
			ob.SetMinFields(n)
		case "max-fields":
			n, err := strconv.Atoi(p.value)
			if err != nil {
				errs = append(errs, errProperty(o.Pos, p.name, p.value))
				continue
			}
			ob.SetMaxFields(n)
		case "extensible":
			n, err := strconv.Atoi(strings.TrimPrefix(p.modifier, ":"))
			if err != nil {
				errs = append(errs, errProperty(o.Pos, p.name, p.modifier))
				continue
			}
			ob.SetExtensible(n)
		}
	}

	for _, fa := range o.Fields {
		f, err := buildField(fa)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		ob.AddField(f)
	}
	return errors.Join(errs...)
}

func buildField(fa *fieldAST) (idd.Field, error) {
	id := strings.TrimRight(fa.ID, " \t,;")
	f := idd.Field{ID: strings.ToUpper(id)}
	var errs []error
	for _, s := range fa.Props {
		p, ok := splitProperty(s)
		if !ok {
			continue
		}
		switch p.name {
		case "field":
			f.Name = p.value
		case "type":
			t, err := idd.ParseFieldType(p.value)
			if err != nil {
				errs = append(errs, errProperty(fa.Pos, p.name, p.value))
				continue
			}
			f.Type = t
		case "required-field":
			f.Required = true
		case "key":
			f.Keys = append(f.Keys, p.value)
		case "default":
			f.Default, f.HasDefault = p.value, true
		case "minimum", "maximum":
			v, err := strconv.ParseFloat(p.value, 64)
			if err != nil {
				errs = append(errs, errProperty(fa.Pos, p.name+p.modifier, p.value))
				continue
			}
			b := &idd.Bound{Value: v, Exclusive: p.modifier == ">" || p.modifier == "<"}
			if p.name == "minimum" {
				f.Min = b
			} else {
				f.Max = b
			}
		case "autosizable":
			f.Autosizable = true
		case "autocalculatable":
			f.Autocalculatable = true
		case "retaincase":
			f.RetainCase = true
		case "begin-extensible":
			f.BeginExtensible = true
		case "reference":
			f.References = append(f.References, p.value)
		case "object-list":
			f.ObjectLists = append(f.ObjectLists, p.value)
		case "units":
			f.Units = p.value
		case "note":
			if f.Note != "" {
				f.Note += "\n"
			}
			f.Note += p.value
		}
	}
	if f.Name == "" {
		f.Name = f.ID
	}
	return f, errors.Join(errs...)
}
