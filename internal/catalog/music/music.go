// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package music

import (
	"github.com/taibuivan/catalog/internal/platform/duplicate"
	"github.com/taibuivan/catalog/internal/platform/entity"
	"github.com/taibuivan/catalog/internal/platform/errcode"
)

// Kind is the store kind of music.
const Kind = "music"

// Music is an aggregate root (an album) owning its songs.
type Music struct {
	entity.Base
	Name       string  `json:"name"`
	WikiEn     string  `json:"wiki_en"`
	WikiCz     string  `json:"wiki_cz"`
	MediaCount int     `json:"media_count"`
	Note       string  `json:"note"`
	Songs      []*Song `json:"songs"`
}

// Song belongs to exactly one music.
type Song struct {
	entity.Base
	Name   string `json:"name"`
	Length int    `json:"length"` // Seconds
	Note   string `json:"note"`
}

type Request struct {
	Name       *string `json:"name"`
	WikiEn     *string `json:"wiki_en"`
	WikiCz     *string `json:"wiki_cz"`
	MediaCount int     `json:"media_count"`
	Note       *string `json:"note"`
}

type SongRequest struct {
	Name   *string `json:"name"`
	Length int     `json:"length"`
	Note   *string `json:"note"`
}

// Filter holds the parameters of a paged music search.
type Filter struct {
	Name  string
	Page  int
	Limit int
}

// # Violations

var (
	Entity = errcode.NewEntity("MUSIC", "Music")

	FieldName       = Entity.Field("name", "Name")
	FieldWikiEn     = Entity.Field("wiki_en", "URL to english Wikipedia page about music")
	FieldWikiCz     = Entity.Field("wiki_cz", "URL to czech Wikipedia page about music")
	FieldMediaCount = Entity.Field("media_count", "Count of media")
	FieldNote       = Entity.Field("note", "Note")

	SongEntity = errcode.NewEntity("SONG", "Song")

	FieldSongName   = SongEntity.Field("name", "Name")
	FieldSongLength = SongEntity.Field("length", "Length of song")
	FieldSongNote   = SongEntity.Field("note", "Note")
)

func (music *Music) Descendants() []*entity.Base {
	nodes := make([]*entity.Base, 0, len(music.Songs))
	for _, song := range music.Songs {
		nodes = append(nodes, &song.Base)
	}
	return nodes
}

func (music *Music) Facets() map[string]string {
	return map[string]string{"name": music.Name}
}

// Length sums the length of every song.
func (music *Music) Length() int {
	length := 0
	for _, song := range music.Songs {
		length += song.Length
	}
	return length
}

func (music *Music) Copy() duplicate.Node {
	copied := *music
	copied.Base = entity.Base{}
	copied.Songs = nil
	return &copied
}

func (music *Music) Children() []duplicate.Node {
	children := make([]duplicate.Node, 0, len(music.Songs))
	for _, song := range music.Songs {
		children = append(children, song)
	}
	return children
}

func (music *Music) Adopt(child duplicate.Node) { music.Songs = append(music.Songs, child.(*Song)) }

func (song *Song) Copy() duplicate.Node {
	return &Song{Name: song.Name, Length: song.Length, Note: song.Note}
}

func (song *Song) Children() []duplicate.Node { return nil }
func (song *Song) Adopt(duplicate.Node)       {}
