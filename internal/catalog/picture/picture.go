// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package picture

import (
	"github.com/taibuivan/catalog/internal/platform/duplicate"
	"github.com/taibuivan/catalog/internal/platform/entity"
	"github.com/taibuivan/catalog/internal/platform/errcode"
)

// Kind is the store kind of pictures.
const Kind = "picture"

// Picture is a shared image referenced by movies and shows.
// Content is encoded as base64 in JSON.
type Picture struct {
	entity.Base
	Content []byte `json:"content"`
}

// Request is the payload of add and update.
type Request struct {
	Content []byte `json:"content"`
}

// Filter holds the paging of a picture listing. Pictures have no predicates.
type Filter struct {
	Page  int
	Limit int
}

// Violations
var (
	Entity       = errcode.NewEntity("PICTURE", "Picture")
	FieldContent = Entity.Field("content", "Content")
)

func (picture *Picture) Descendants() []*entity.Base { return nil }
func (picture *Picture) Facets() map[string]string  { return nil }

func (picture *Picture) Copy() duplicate.Node {
	return &Picture{Content: append([]byte(nil), picture.Content...)}
}

func (picture *Picture) Children() []duplicate.Node { return nil }
func (picture *Picture) Adopt(duplicate.Node)       {}
