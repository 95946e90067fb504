// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"github.com/taibuivan/catalog/internal/catalog/author"
	"github.com/taibuivan/catalog/internal/catalog/facade"
	"github.com/taibuivan/catalog/internal/catalog/register"
	"github.com/taibuivan/catalog/internal/platform/duplicate"
	"github.com/taibuivan/catalog/internal/platform/entity"
	"github.com/taibuivan/catalog/internal/platform/errcode"
	"github.com/taibuivan/catalog/internal/platform/existence"
)

// Kind is the store kind of books.
const Kind = "book"

// Book is an aggregate root owning its items (physical or digital copies).
type Book struct {
	entity.Base
	CzechName    string   `json:"czech_name"`
	OriginalName string   `json:"original_name"`
	Authors      []string `json:"authors"`
	Note         string   `json:"note"`
	Items        []*Item  `json:"items"`
}

// Item is one copy of a book.
type Item struct {
	entity.Base
	Languages []string `json:"languages"`
	Format    string   `json:"format"`
	Note      string   `json:"note"`
}

type Request struct {
	CzechName    *string   `json:"czech_name"`
	OriginalName *string   `json:"original_name"`
	Authors      []*string `json:"authors"`
	Note         *string   `json:"note"`
}

type ItemRequest struct {
	Languages []*string `json:"languages"`
	Format    *string   `json:"format"`
	Note      *string   `json:"note"`
}

// Filter holds the parameters of a paged book search.
type Filter struct {
	Name   string
	Author string // Author uuid
	Page   int
	Limit  int
}

// # Violations

var (
	Entity = errcode.NewEntity("BOOK", "Book")

	FieldCzechName    = Entity.Field("czech_name", "Czech name")
	FieldOriginalName = Entity.Field("original_name", "Original name")
	FieldAuthors      = Entity.Field("authors", "Authors")
	FieldNote         = Entity.Field("note", "Note")

	ItemEntity = errcode.NewEntity("BOOK_ITEM", "Book item")

	FieldItemLanguages = ItemEntity.Field("languages", "Languages")
	FieldItemFormat    = ItemEntity.Field("format", "Format")
	FieldItemNote      = ItemEntity.Field("note", "Note")
)

// # Document

func (book *Book) Descendants() []*entity.Base {
	nodes := make([]*entity.Base, 0, len(book.Items))
	for _, item := range book.Items {
		nodes = append(nodes, &item.Base)
	}
	return nodes
}

// Facets indexes the name and every author, so that a search can match one
// author exactly and removing an author finds its books.
func (book *Book) Facets() map[string]string {
	facets := map[string]string{"name": book.CzechName + " " + book.OriginalName}
	facade.MarkReferences(facets, existence.KindAuthor, book.Authors...)
	return facets
}

// # Duplication

func (book *Book) Copy() duplicate.Node {
	copied := *book
	copied.Base = entity.Base{}
	copied.Authors = append([]string(nil), book.Authors...)
	copied.Items = nil
	return &copied
}

func (book *Book) Children() []duplicate.Node {
	children := make([]duplicate.Node, 0, len(book.Items))
	for _, item := range book.Items {
		children = append(children, item)
	}
	return children
}

func (book *Book) Adopt(child duplicate.Node) { book.Items = append(book.Items, child.(*Item)) }

func (book *Book) References() []duplicate.Reference {
	return facade.References(existence.KindAuthor, FieldAuthors.JSON, author.Entity.NotExist(), book.Authors...)
}

func (item *Item) Copy() duplicate.Node {
	copied := *item
	copied.Base = entity.Base{}
	copied.Languages = append([]string(nil), item.Languages...)
	return &copied
}

func (item *Item) Children() []duplicate.Node { return nil }
func (item *Item) Adopt(duplicate.Node)       {}

func (item *Item) References() []duplicate.Reference {
	references := facade.RegisterReferences(register.Language, FieldItemLanguages.JSON, item.Languages...)
	return append(references, facade.RegisterReferences(register.BookFormat, FieldItemFormat.JSON, item.Format)...)
}
