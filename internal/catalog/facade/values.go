// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package facade

import (
	"strings"

	"github.com/taibuivan/catalog/internal/platform/duplicate"
	"github.com/taibuivan/catalog/internal/platform/errcode"
	"github.com/taibuivan/catalog/internal/platform/existence"
	"github.com/taibuivan/catalog/pkg/pointer"
	"github.com/taibuivan/catalog/pkg/slice"
)

// # Request Values

// Text returns the trimmed value of a validated string, or "" for nil.
func Text(value *string) string {
	return strings.TrimSpace(pointer.Val(value))
}

// Keys normalizes validated register keys: trimmed and upper-cased.
func Keys(values []*string) []string {
	return slice.Map(slice.Deref(values), func(key string) string {
		return strings.ToUpper(strings.TrimSpace(key))
	})
}

// IDs normalizes validated uuid references to lower case.
func IDs(values []*string) []string {
	return slice.Map(slice.Deref(values), strings.ToLower)
}

// ID normalizes an optional uuid reference to lower case.
func ID(value *string) *string {
	if value == nil {
		return nil
	}
	return pointer.To(strings.ToLower(*value))
}

// # Shared References

// References lists ids of one kind as shared references of a node.
func References(kind existence.Kind, field string, missing errcode.Def, ids ...string) []duplicate.Reference {
	references := make([]duplicate.Reference, 0, len(ids))
	for _, id := range ids {
		references = append(references, duplicate.Reference{
			Ref:     existence.Ref{Kind: kind, ID: id},
			Field:   field,
			Missing: missing,
		})
	}
	return references
}

// RegisterReferences lists register keys as shared references of a node.
func RegisterReferences(register, field string, keys ...string) []duplicate.Reference {
	ids := slice.Map(keys, func(key string) string { return register + ":" + key })
	return References(existence.KindRegister, field, errcode.RegisterValueNotExist, ids...)
}
