// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package genre

import (
	"github.com/taibuivan/catalog/internal/platform/duplicate"
	"github.com/taibuivan/catalog/internal/platform/entity"
	"github.com/taibuivan/catalog/internal/platform/errcode"
)

// Kind is the store kind of genres.
const Kind = "genre"

// Genre is a shared classification referenced by movies and shows.
type Genre struct {
	entity.Base
	Name string `json:"name"`
}

// Request is the payload of add and update.
type Request struct {
	Name *string `json:"name"`
}

// Filter holds the parameters of a paged genre search.
type Filter struct {
	Name  string
	Page  int
	Limit int
}

// Violations
var (
	Entity    = errcode.NewEntity("GENRE", "Genre")
	FieldName = Entity.Field("name", "Name")
)

// # Document

func (genre *Genre) Descendants() []*entity.Base { return nil }

func (genre *Genre) Facets() map[string]string {
	return map[string]string{"name": genre.Name}
}

// # Duplication

func (genre *Genre) Copy() duplicate.Node        { return &Genre{Name: genre.Name} }
func (genre *Genre) Children() []duplicate.Node { return nil }
func (genre *Genre) Adopt(duplicate.Node)       {}
