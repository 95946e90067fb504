// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package duplicate_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/catalog/internal/platform/apperr"
	"github.com/taibuivan/catalog/internal/platform/ctxutil"
	"github.com/taibuivan/catalog/internal/platform/duplicate"
	"github.com/taibuivan/catalog/internal/platform/entity"
	"github.com/taibuivan/catalog/internal/platform/errcode"
	"github.com/taibuivan/catalog/internal/platform/existence"
	"github.com/taibuivan/catalog/internal/platform/identity"
	"github.com/taibuivan/catalog/internal/platform/sec"
	"github.com/taibuivan/catalog/pkg/uuid"
)

var tagEntity = errcode.NewEntity("TAG", "Tag")

// series -> parts -> chapters, with shared tags on the root.
type chapter struct {
	entity.Base
	Title string
}

func (c *chapter) Copy() duplicate.Node { return &chapter{Title: c.Title} }
func (c *chapter) Children() []duplicate.Node { return nil }
func (c *chapter) Adopt(duplicate.Node) {}

type part struct {
	entity.Base
	Number   int
	Chapters []*chapter
}

func (p *part) Copy() duplicate.Node { return &part{Number: p.Number} }
func (p *part) Children() []duplicate.Node {
	nodes := make([]duplicate.Node, 0, len(p.Chapters))
	for _, c := range p.Chapters {
		nodes = append(nodes, c)
	}
	return nodes
}
func (p *part) Adopt(child duplicate.Node) { p.Chapters = append(p.Chapters, child.(*chapter)) }

type series struct {
	entity.Base
	Name  string
	Tags  []string
	Parts []*part
}

func (s *series) Copy() duplicate.Node { return &series{Name: s.Name, Tags: append([]string(nil), s.Tags...)} }
func (s *series) Children() []duplicate.Node {
	nodes := make([]duplicate.Node, 0, len(s.Parts))
	for _, p := range s.Parts {
		nodes = append(nodes, p)
	}
	return nodes
}
func (s *series) Adopt(child duplicate.Node) { s.Parts = append(s.Parts, child.(*part)) }
func (s *series) References() []duplicate.Reference {
	refs := make([]duplicate.Reference, 0, len(s.Tags))
	for _, tag := range s.Tags {
		refs = append(refs, duplicate.Reference{
			Ref:     existence.Ref{Kind: existence.KindGenre, ID: tag},
			Field:   "tags",
			Missing: tagEntity.NotExist(),
		})
	}
	return refs
}

func newSeries(tags []string, parts, chapters int) *series {
	s := &series{Base: entity.Base{ID: 1, UUID: uuid.New()}, Name: "Source", Tags: tags}
	id := int64(2)
	for p := range parts {
		pt := &part{Base: entity.Base{ID: id, UUID: uuid.New(), ParentID: 1}, Number: p + 1}
		id++
		for c := range chapters {
			pt.Chapters = append(pt.Chapters, &chapter{Base: entity.Base{ID: id, UUID: uuid.New(), ParentID: pt.ID}, Title: string(rune('a' + c))})
			id++
		}
		s.Parts = append(s.Parts, pt)
	}
	return s
}

type recorder struct {
	kind  string
	nodes int
}

func (r *recorder) Duplicated(kind string, nodes int) { r.kind, r.nodes = kind, nodes }

func resolver(existing ...string) existence.Resolver {
	known := make(map[string]bool)
	for _, id := range existing {
		known[id] = true
	}
	return existence.NewRegistry().Register(existence.KindGenre, func(_ context.Context, id string) (bool, error) {
		return known[id], nil
	})
}

/*
TestEngine_CopiesOwnedTree verifies fresh identity, pre-order ids, audit stamps and parent links.
*/
func TestEngine_CopiesOwnedTree(t *testing.T) {
	tag := uuid.New()
	source := newSeries([]string{tag}, 2, 3)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	observer := &recorder{}

	engine := duplicate.NewEngine(identity.NewMemorySequence(100), resolver(tag), observer).
		WithClock(func() time.Time { return now })

	ctx := ctxutil.WithAuthUser(context.Background(), &sec.AuthClaims{Username: "editor"})
	copied, err := duplicate.Copy(ctx, engine, "series", source)
	require.NoError(t, err)

	// 1 series + 2 parts + 6 chapters
	assert.Equal(t, 9, duplicate.Count(copied))
	assert.Equal(t, "series", observer.kind)
	assert.Equal(t, 9, observer.nodes)

	// Pre-order ids from one contiguous block
	assert.Equal(t, int64(100), copied.ID)
	assert.Equal(t, int64(101), copied.Parts[0].ID)
	assert.Equal(t, int64(102), copied.Parts[0].Chapters[0].ID)
	assert.Equal(t, int64(105), copied.Parts[1].ID)
	assert.Equal(t, int64(108), copied.Parts[1].Chapters[2].ID)

	// Fresh uuids, back-references to copied parents, creation stamps
	uuids := map[string]bool{copied.UUID: true}
	for i, p := range copied.Parts {
		assert.Equal(t, copied.ID, p.ParentID)
		assert.Equal(t, source.Parts[i].Number, p.Number)
		uuids[p.UUID] = true
		for j, c := range p.Chapters {
			assert.Equal(t, p.ID, c.ParentID)
			assert.Equal(t, source.Parts[i].Chapters[j].Title, c.Title)
			assert.Equal(t, "editor", c.CreatedBy)
			assert.Equal(t, now, c.UpdatedAt)
			uuids[c.UUID] = true
		}
	}
	assert.Len(t, uuids, 9)
	assert.NotContains(t, uuids, source.UUID)

	assert.Zero(t, copied.ParentID)
	assert.Equal(t, "editor", copied.CreatedBy)
	assert.Equal(t, copied.CreatedAt, copied.UpdatedAt)
	assert.Equal(t, copied.CreatedBy, copied.UpdatedBy)
}

/*
TestEngine_Isolation ensures that source and copy share only references.
*/
func TestEngine_Isolation(t *testing.T) {
	tag := uuid.New()
	source := newSeries([]string{tag}, 1, 1)
	engine := duplicate.NewEngine(identity.NewMemorySequence(1), resolver(tag), nil)

	copied, err := duplicate.Copy(context.Background(), engine, "series", source)
	require.NoError(t, err)

	assert.Equal(t, source.Tags, copied.Tags)
	assert.Equal(t, "anonymous", copied.CreatedBy)

	copied.Name = "Changed"
	copied.Parts[0].Chapters[0].Title = "Changed"
	copied.Tags[0] = "other"

	assert.Equal(t, "Source", source.Name)
	assert.Equal(t, "a", source.Parts[0].Chapters[0].Title)
	assert.Equal(t, tag, source.Tags[0])
	assert.Equal(t, int64(1), source.ID)
}

/*
TestEngine_MissingReference verifies that a vanished shared reference aborts the copy.
*/
func TestEngine_MissingReference(t *testing.T) {
	kept, gone := uuid.New(), uuid.New()
	source := newSeries([]string{kept, gone, gone}, 1, 1)
	sequence := identity.NewMemorySequence(1)
	engine := duplicate.NewEngine(sequence, resolver(kept), nil)

	_, err := duplicate.Copy(context.Background(), engine, "series", source)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
	assert.Equal(t, []string{"TAG_NOT_EXIST"}, ae.Codes())

	// No ids were consumed by the failed copy
	first, err := sequence.Reserve(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)
}

/*
TestEngine_IdentifyNewTree verifies identity assignment for trees created by add operations.
*/
func TestEngine_IdentifyNewTree(t *testing.T) {
	engine := duplicate.NewEngine(identity.NewMemorySequence(50), resolver(), nil)

	fresh := &part{Number: 1, Chapters: []*chapter{{Title: "x"}, {Title: "y"}}}
	require.NoError(t, engine.Identify(context.Background(), fresh, 7))

	assert.Equal(t, int64(50), fresh.ID)
	assert.Equal(t, int64(7), fresh.ParentID)
	assert.Equal(t, int64(51), fresh.Chapters[0].ID)
	assert.Equal(t, int64(50), fresh.Chapters[1].ParentID)
	assert.NotEqual(t, fresh.Chapters[0].UUID, fresh.Chapters[1].UUID)
	assert.Equal(t, "anonymous", fresh.Chapters[1].CreatedBy)
}
