// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects every violation
// of a request before returning a single [apperr.AppError].
//
// # Architecture
//
// This package is used exclusively in the service layer, never in handlers or
// storage. It ensures that business logic only operates on semantically valid data.
//
// # Evaluation Order
//
//  1. Local rules (null, empty, ranges, list shape) run immediately and never
//     stop at the first failure.
//  2. Reference rules check their id locally first. Only ids that pass are
//     queued for an existence lookup.
//  3. [Validator.Validate] resolves the queued lookups and reports the full list.
package validate

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/taibuivan/catalog/internal/platform/apperr"
	"github.com/taibuivan/catalog/internal/platform/constants"
	"github.com/taibuivan/catalog/internal/platform/errcode"
	"github.com/taibuivan/catalog/internal/platform/existence"
)

var (
	// uuidRegex matches a UUIDv4 or UUIDv7 string.
	uuidRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.BadRequest("Invalid JSON payload")
)

// pendingRef is a reference that passed its local checks and awaits a lookup.
type pendingRef struct {
	field   string
	ref     existence.Ref
	missing errcode.Def
}

// Validator collects violations via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs  []apperr.FieldError
	refs  []pendingRef
	clock func() time.Time
}

// New constructs a [Validator] using the wall clock for year bounds.
func New() *Validator {
	return &Validator{clock: time.Now}
}

// WithClock overrides the clock used to compute the current year.
func (v *Validator) WithClock(clock func() time.Time) *Validator {
	v.clock = clock
	return v
}

// # Scalar Rules

// NotNull fails with NULL if isNil is true.
func (v *Validator) NotNull(f errcode.Field, isNil bool) *Validator {
	if isNil {
		v.Add(f.Null(), f.JSON)
	}
	return v
}

// NotEmptyString fails with NULL for a nil value and EMPTY for a blank one.
func (v *Validator) NotEmptyString(f errcode.Field, value *string) *Validator {
	switch {
	case value == nil:
		v.Add(f.Null(), f.JSON)
	case strings.TrimSpace(*value) == "":
		v.Add(f.Empty(), f.JSON)
	}
	return v
}

// Range fails with NOT_VALID if value is outside [min, max] (inclusive).
func (v *Validator) Range(f errcode.Field, value, min, max int) *Validator {
	if value < min || value > max {
		v.Add(f.NotValid(min, max), f.JSON)
	}
	return v
}

// Year checks value against [constants.MinYear, current year].
func (v *Validator) Year(f errcode.Field, value int) *Validator {
	return v.Range(f, value, constants.MinYear, v.currentYear())
}

// Positive fails with NOT_POSITIVE for zero and negative values.
func (v *Validator) Positive(f errcode.Field, value int) *Validator {
	if value <= 0 {
		v.Add(f.NotPositive(), f.JSON)
	}
	return v
}

// NonNegative fails with NEGATIVE for negative values. Zero is allowed.
func (v *Validator) NonNegative(f errcode.Field, value int) *Validator {
	if value < 0 {
		v.Add(f.Negative(), f.JSON)
	}
	return v
}

// Imdb accepts [errcode.ImdbNone] or a code within [errcode.ImdbMin, errcode.ImdbMax].
// The divider value is rejected even though it lies inside the outer range.
func (v *Validator) Imdb(f errcode.Field, value int) *Validator {
	if value < errcode.ImdbNone || value > errcode.ImdbMax || value == errcode.ImdbDivider {
		v.Add(f.ImdbNotValid(), f.JSON)
	}
	return v
}

// Years fails with YEARS_NOT_VALID if start is after end.
func (v *Validator) Years(entity errcode.Entity, start, end int) *Validator {
	if start > end {
		v.Add(entity.YearsNotValid(), "")
	}
	return v
}

// # List Rules

// Strings checks a list of strings: the list itself, null elements and blank elements.
//
// Each element defect is reported once per list, not once per element.
func (v *Validator) Strings(f errcode.Field, values []*string) *Validator {
	if values == nil {
		v.Add(f.Null(), f.JSON)
		return v
	}

	hasNull, hasEmpty := false, false
	for _, value := range values {
		switch {
		case value == nil:
			hasNull = true
		case strings.TrimSpace(*value) == "":
			hasEmpty = true
		}
	}

	if hasNull {
		v.Add(f.ContainNull(), f.JSON)
	}
	if hasEmpty {
		v.Add(f.ContainEmpty(), f.JSON)
	}
	return v
}

// Elements checks a list of nested objects for nil and nil elements.
//
// It returns the non-nil elements so that callers can validate them further.
func Elements[T any](v *Validator, f errcode.Field, values []*T) []*T {
	if values == nil {
		v.Add(f.Null(), f.JSON)
		return nil
	}

	present := make([]*T, 0, len(values))
	for _, value := range values {
		if value != nil {
			present = append(present, value)
		}
	}

	if len(present) != len(values) {
		v.Add(f.ContainNull(), f.JSON)
	}
	return present
}

// # Reference Rules

// Reference checks a single optional or mandatory reference.
//
// A nil id fails with NULL when required and is skipped otherwise. A malformed
// id fails with NOT_UUID. Neither is looked up.
func (v *Validator) Reference(f errcode.Field, kind existence.Kind, id *string, required bool, missing errcode.Def) *Validator {
	if id == nil {
		if required {
			v.Add(f.Null(), f.JSON)
		}
		return v
	}

	if !IsUUID(*id) {
		v.Add(f.NotUUID(), f.JSON)
		return v
	}

	v.refs = append(v.refs, pendingRef{field: f.JSON, ref: existence.Ref{Kind: kind, ID: strings.ToLower(*id)}, missing: missing})
	return v
}

// References checks a list of references. List-level defects are reported as
// for [Validator.Strings]; only well-formed elements are looked up.
func (v *Validator) References(f errcode.Field, kind existence.Kind, ids []*string, missing errcode.Def) *Validator {
	if ids == nil {
		v.Add(f.Null(), f.JSON)
		return v
	}

	hasNull, hasMalformed := false, false
	for _, id := range ids {
		switch {
		case id == nil:
			hasNull = true
		case !IsUUID(*id):
			hasMalformed = true
		default:
			v.refs = append(v.refs, pendingRef{field: f.JSON, ref: existence.Ref{Kind: kind, ID: strings.ToLower(*id)}, missing: missing})
		}
	}

	if hasNull {
		v.Add(f.ContainNull(), f.JSON)
	}
	if hasMalformed {
		v.Add(f.NotUUID(), f.JSON)
	}
	return v
}

// RegisterValue checks an enumerated register key (e.g. a game format).
//
// The key is looked up as "<register>:<key>" under [existence.KindRegister].
func (v *Validator) RegisterValue(f errcode.Field, register string, key *string) *Validator {
	if !v.localKey(f, key) {
		return v
	}

	v.queueRegister(f.JSON, register, *key)
	return v
}

// RegisterValues checks a list of register keys (e.g. languages).
func (v *Validator) RegisterValues(f errcode.Field, register string, keys []*string) *Validator {
	v.Strings(f, keys)

	for _, key := range keys {
		if key != nil && strings.TrimSpace(*key) != "" {
			v.queueRegister(f.JSON, register, *key)
		}
	}
	return v
}

// localKey runs the NULL / EMPTY checks for a register key.
func (v *Validator) localKey(f errcode.Field, key *string) bool {
	before := len(v.errs)
	v.NotEmptyString(f, key)
	return len(v.errs) == before
}

func (v *Validator) queueRegister(field, register, key string) {
	v.refs = append(v.refs, pendingRef{
		field:   field,
		ref:     existence.Ref{Kind: existence.KindRegister, ID: register + ":" + strings.ToUpper(strings.TrimSpace(key))},
		missing: errcode.RegisterValueNotExist,
	})
}

// # Generic Rules

// Check adds def reported on field if failed is true.
//
// # Example
//
//	v.Check(cheatEntity.AlreadyExist(), "", game.Cheat != nil)
func (v *Validator) Check(def errcode.Def, field string, failed bool) *Validator {
	if failed {
		v.Add(def, field)
	}
	return v
}

// Paging checks the page and limit of a search filter.
func (v *Validator) Paging(page, limit int) *Validator {
	v.Check(errcode.PageNotPositive, "page", page < 1)
	v.Check(errcode.LimitNotPositive, "limit", limit < 1)
	return v
}

// Add appends a violation unconditionally.
func (v *Validator) Add(def errcode.Def, field string) {
	v.errs = append(v.errs, def.Violation(field))
}

// # Output

// Validate resolves the queued references and returns a VALIDATION_ERROR
// carrying every violation, or nil if the request is valid.
//
// Lookups are deduplicated per call. A resolver failure is fatal and returned
// as an internal error; it is not reported as a violation.
func (v *Validator) Validate(ctx context.Context, resolver existence.Resolver) error {
	seen := make(map[existence.Ref]bool, len(v.refs))
	reported := make(map[pendingRef]bool)

	for _, pending := range v.refs {
		found, checked := seen[pending.ref]
		if !checked {
			ok, err := resolver.Exists(ctx, pending.ref.Kind, pending.ref.ID)
			if err != nil {
				return apperr.Internal(err)
			}
			found = ok
			seen[pending.ref] = ok
		}

		if !found && !reported[pending] {
			reported[pending] = true
			v.Add(pending.missing, pending.field)
		}
	}

	v.refs = nil
	return v.Err()
}

// Err returns the accumulated violations as a single error, or nil.
//
// Queued reference lookups are not evaluated; use [Validator.Validate] for
// requests holding references.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationFailed(v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// Violations returns the ordered violations collected so far.
func (v *Validator) Violations() []apperr.FieldError {
	return v.errs
}

// Pending returns how many reference lookups are queued.
func (v *Validator) Pending() int {
	return len(v.refs)
}

// # Helpers

// IsUUID reports whether value is a UUID string (case-insensitive).
func IsUUID(value string) bool {
	return uuidRegex.MatchString(strings.ToLower(value))
}

func (v *Validator) currentYear() int {
	if v.clock == nil {
		return time.Now().Year()
	}
	return v.clock().Year()
}
