// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"strings"

	"github.com/taibuivan/catalog/internal/platform/duplicate"
	"github.com/taibuivan/catalog/internal/platform/entity"
	"github.com/taibuivan/catalog/internal/platform/errcode"
	"github.com/taibuivan/catalog/pkg/pointer"
)

// Kind is the store kind of authors.
const Kind = "author"

// Author is a shared writer referenced by books.
type Author struct {
	entity.Base
	FirstName  string  `json:"first_name"`
	MiddleName *string `json:"middle_name"`
	LastName   string  `json:"last_name"`
}

// Request is the payload of add and update.
type Request struct {
	FirstName  *string `json:"first_name"`
	MiddleName *string `json:"middle_name"`
	LastName   *string `json:"last_name"`
}

// Filter holds the parameters of a paged author search.
type Filter struct {
	Name  string // Matched against the full name
	Page  int
	Limit int
}

// Violations
var (
	Entity          = errcode.NewEntity("AUTHOR", "Author")
	FieldFirstName  = Entity.Field("first_name", "First name")
	FieldMiddleName = Entity.Field("middle_name", "Middle name")
	FieldLastName   = Entity.Field("last_name", "Last name")
)

// FullName joins the present name parts with single spaces.
func (author *Author) FullName() string {
	parts := []string{author.FirstName}
	if author.MiddleName != nil {
		parts = append(parts, *author.MiddleName)
	}
	parts = append(parts, author.LastName)
	return strings.Join(parts, " ")
}

func (author *Author) Descendants() []*entity.Base { return nil }

func (author *Author) Facets() map[string]string {
	return map[string]string{"name": author.FullName(), "last_name": author.LastName}
}

func (author *Author) Copy() duplicate.Node {
	copied := *author
	copied.Base = entity.Base{}
	copied.MiddleName = pointer.Clone(author.MiddleName)
	return &copied
}

func (author *Author) Children() []duplicate.Node { return nil }
func (author *Author) Adopt(duplicate.Node)       {}
