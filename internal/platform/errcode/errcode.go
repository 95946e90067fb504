// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package errcode is the violation contract of the catalog API.

Every code follows the pattern <ENTITY>_<FIELD>_<REASON> and maps to exactly one
human-readable message and one HTTP status. Clients match on these codes, so the
messages and statuses produced here must never drift.

Usage:

	movie := errcode.NewEntity("MOVIE", "Movie")
	name := movie.Field("czech_name", "Czech name")

	name.Null()        // MOVIE_CZECH_NAME_NULL   "Czech name mustn't be null."   422
	movie.NotExist()   // MOVIE_NOT_EXIST         "Movie doesn't exist."          404
*/
package errcode

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/taibuivan/catalog/internal/platform/apperr"
)

// # Definitions

// Def binds a code to its fixed message and status.
type Def struct {
	Code    string
	Message string
	Status  int
}

// Violation returns the [apperr.FieldError] for this definition reported on field.
func (d Def) Violation(field string) apperr.FieldError {
	return apperr.FieldError{
		Field:      field,
		Code:       d.Code,
		Message:    d.Message,
		HTTPStatus: d.Status,
	}
}

// Err returns a VALIDATION_ERROR carrying this single violation.
func (d Def) Err() *apperr.AppError {
	return apperr.ValidationFailed(d.Violation(""))
}

// # Entities

// Entity names an aggregate or child node in codes and messages.
type Entity struct {
	// Code is the upper-case code prefix, e.g. "SEASON".
	Code string
	// Label is the capitalised display name, e.g. "Season".
	Label string
}

// NewEntity constructs an [Entity].
func NewEntity(code, label string) Entity {
	return Entity{Code: code, Label: label}
}

// NotExist is reported when a uuid does not resolve to an entity of this kind.
func (e Entity) NotExist() Def {
	return Def{Code: e.Code + "_NOT_EXIST", Message: e.Label + " doesn't exist.", Status: http.StatusNotFound}
}

// AlreadyExist is reported on uniqueness conflicts.
func (e Entity) AlreadyExist() Def {
	return Def{Code: e.Code + "_ALREADY_EXIST", Message: e.Label + " already exists.", Status: http.StatusUnprocessableEntity}
}

// YearsNotValid is reported when a starting year is after the ending year.
func (e Entity) YearsNotValid() Def {
	return Def{
		Code:    e.Code + "_YEARS_NOT_VALID",
		Message: "Starting year mustn't be greater than ending year.",
		Status:  http.StatusUnprocessableEntity,
	}
}

// Field constructs a [Field] of this entity from its JSON name.
func (e Entity) Field(jsonName, label string) Field {
	return Field{
		Code:  e.Code + "_" + strings.ToUpper(jsonName),
		JSON:  jsonName,
		Label: label,
	}
}

// # Fields

// Field names one validated attribute of an entity.
type Field struct {
	// Code is the code prefix, e.g. "MOVIE_CZECH_NAME".
	Code string
	// JSON is the request field name reported in violations.
	JSON string
	// Label starts every message for this field, e.g. "Czech name".
	Label string
}

func (f Field) def(reason, message string, status int) Def {
	return Def{Code: f.Code + "_" + reason, Message: message, Status: status}
}

// Null is reported for missing values.
func (f Field) Null() Def {
	return f.def("NULL", f.Label+" mustn't be null.", http.StatusUnprocessableEntity)
}

// Empty is reported for blank strings.
func (f Field) Empty() Def {
	return f.def("EMPTY", f.Label+" mustn't be empty string.", http.StatusUnprocessableEntity)
}

// ContainNull is reported for lists holding a null element.
func (f Field) ContainNull() Def {
	return f.def("CONTAIN_NULL", f.Label+" mustn't contain null value.", http.StatusUnprocessableEntity)
}

// ContainEmpty is reported for lists holding a blank string.
func (f Field) ContainEmpty() Def {
	return f.def("CONTAIN_EMPTY", f.Label+" mustn't contain empty string.", http.StatusUnprocessableEntity)
}

// NotPositive is reported for zero or negative counts.
func (f Field) NotPositive() Def {
	return f.def("NOT_POSITIVE", f.Label+" must be positive number.", http.StatusUnprocessableEntity)
}

// Negative is reported for negative lengths.
func (f Field) Negative() Def {
	return f.def("NEGATIVE", f.Label+" mustn't be negative number.", http.StatusUnprocessableEntity)
}

// NotValid is reported for values outside the inclusive range [min, max].
func (f Field) NotValid(min, max int) Def {
	return f.def("NOT_VALID", fmt.Sprintf("%s must be between %d and %d.", f.Label, min, max), http.StatusUnprocessableEntity)
}

// ImdbNotValid is reported for IMDB codes outside the accepted range.
func (f Field) ImdbNotValid() Def {
	return f.def("NOT_VALID", fmt.Sprintf("IMDB code must be between %d and %d or %d.", ImdbMin, ImdbMax, ImdbNone), http.StatusUnprocessableEntity)
}

// NotUUID is reported for references that are not UUID-shaped.
func (f Field) NotUUID() Def {
	return f.def("NOT_UUID", f.Label+" must be valid UUID.", http.StatusBadRequest)
}

// # Shared Definitions

// IMDB code bounds. ImdbNone marks a title without an IMDB entry; the
// divider 0 lies inside the range but is never a valid code.
const (
	ImdbNone    = -1
	ImdbMin     = 1
	ImdbMax     = 9999999
	ImdbDivider = 0
)

var (
	// RegisterValueNotExist is reported when an enumerated register key is unknown.
	RegisterValueNotExist = Def{
		Code:    "REGISTER_VALUE_NOT_EXIST",
		Message: "Register value doesn't exist.",
		Status:  http.StatusNotFound,
	}

	// PageNotPositive is reported for paging filters with page < 1.
	PageNotPositive = Def{Code: "PAGE_NOT_POSITIVE", Message: "Page must be positive number.", Status: http.StatusBadRequest}

	// LimitNotPositive is reported for paging filters with limit < 1.
	LimitNotPositive = Def{Code: "LIMIT_NOT_POSITIVE", Message: "Limit must be positive number.", Status: http.StatusBadRequest}
)
