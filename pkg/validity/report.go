/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package validity

import (
	"errors"
	"fmt"
	"strings"
)

// Validity report, ordered list of data errors found at a strictness level
type Report struct {
	level  StrictnessLevel
	errors []DataError
}

func NewReport(level StrictnessLevel) *Report {
	return &Report{level: level}
}

func (r *Report) Level() StrictnessLevel { return r.level }

// Adds error. Equal errors are reported once
func (r *Report) Insert(e DataError) {
	for _, x := range r.errors {
		if x == e {
			return
		}
	}
	r.errors = append(r.errors, e)
}

// Adds errors of other report
func (r *Report) Merge(other *Report) {
	for _, e := range other.errors {
		r.Insert(e)
	}
}

func (r *Report) Errors() []DataError { return r.errors }

func (r *Report) NumErrors() int { return len(r.errors) }

// Returns is report has no errors
func (r *Report) Valid() bool { return len(r.errors) == 0 }

// Returns errors of the kind
func (r *Report) ErrorsOfKind(k Kind) []DataError {
	var res []DataError
	for _, e := range r.errors {
		if e.Kind == k {
			res = append(res, e)
		}
	}
	return res
}

// Returns all errors joined, nil if report has no errors
func (r *Report) Err() error {
	if len(r.errors) == 0 {
		return nil
	}
	errs := make([]error, len(r.errors))
	for i, e := range r.errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}

func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "validity report at %s level: %d error(s)", r.level, len(r.errors))
	for _, e := range r.errors {
		b.WriteString("\n  ")
		b.WriteString(e.Error())
	}
	return b.String()
}
