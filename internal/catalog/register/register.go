// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package register holds the enumerated lookup values of the catalog.

A register value is validated by existence rather than by shape: a movie
language is valid because "LANGUAGE:CZ" is listed here, not because it is a
two-letter string. The table is static and read-only.
*/
package register

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"github.com/taibuivan/catalog/internal/platform/apperr"
)

// Register names.
const (
	Language   = "LANGUAGE"
	GameFormat = "GAME_FORMAT"
	BookFormat = "BOOK_FORMAT"
)

// ErrRegisterNotExist is returned when listing an unknown register.
var ErrRegisterNotExist = &apperr.AppError{
	Code:       "REGISTER_NOT_EXIST",
	Message:    "Register doesn't exist.",
	HTTPStatus: http.StatusNotFound,
}

// Value is one enumerated key of a register.
type Value struct {
	Register string `json:"register"`
	Key      string `json:"key"`
	Label    string `json:"label"`
}

// Table is an immutable set of registers.
type Table struct {
	values map[string][]Value
	index  map[string]Value
}

// NewTable builds a [Table] from values. Registers and keys are upper-cased.
func NewTable(values ...Value) *Table {
	table := &Table{values: make(map[string][]Value), index: make(map[string]Value)}

	for _, value := range values {
		value.Register = strings.ToUpper(value.Register)
		value.Key = strings.ToUpper(value.Key)

		table.values[value.Register] = append(table.values[value.Register], value)
		table.index[id(value.Register, value.Key)] = value
	}
	return table
}

// Default returns the registers the catalog ships with.
func Default() *Table {
	return NewTable(
		Value{Language, "CZ", "Czech"},
		Value{Language, "EN", "English"},
		Value{Language, "FR", "French"},
		Value{Language, "JP", "Japanese"},
		Value{Language, "SK", "Slovak"},

		Value{GameFormat, "STEAM", "Steam"},
		Value{GameFormat, "BATTLE_NET", "Battle.net"},
		Value{GameFormat, "ORIGIN", "Origin"},
		Value{GameFormat, "GOG", "GOG"},
		Value{GameFormat, "ISO", "ISO image"},
		Value{GameFormat, "BINARY", "Binary"},

		Value{BookFormat, "PAPER", "Paper"},
		Value{BookFormat, "EBOOK", "E-book"},
		Value{BookFormat, "AUDIO_BOOK", "Audio book"},
	)
}

/*
Exists reports whether a register value exists.

Parameters:
  - context: context.Context
  - id: string ("<REGISTER>:<KEY>", e.g. "LANGUAGE:CZ")
*/
func (table *Table) Exists(context context.Context, id string) (bool, error) {
	_, ok := table.index[strings.ToUpper(id)]
	return ok, nil
}

// Registers returns the register names in alphabetical order.
func (table *Table) Registers() []string {
	names := make([]string, 0, len(table.values))
	for name := range table.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Values returns the values of a register, optionally restricted to keys.
func (table *Table) Values(register string, keys []string) ([]Value, error) {
	values, ok := table.values[strings.ToUpper(register)]
	if !ok {
		return nil, ErrRegisterNotExist
	}

	if len(keys) == 0 {
		return values, nil
	}

	wanted := make(map[string]bool, len(keys))
	for _, key := range keys {
		wanted[strings.ToUpper(key)] = true
	}

	filtered := make([]Value, 0, len(keys))
	for _, value := range values {
		if wanted[value.Key] {
			filtered = append(filtered, value)
		}
	}
	return filtered, nil
}

func id(register, key string) string {
	return register + ":" + key
}
