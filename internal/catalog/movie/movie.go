// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"strconv"

	"github.com/taibuivan/catalog/internal/catalog/facade"
	"github.com/taibuivan/catalog/internal/catalog/genre"
	"github.com/taibuivan/catalog/internal/catalog/picture"
	"github.com/taibuivan/catalog/internal/catalog/register"
	"github.com/taibuivan/catalog/internal/platform/duplicate"
	"github.com/taibuivan/catalog/internal/platform/entity"
	"github.com/taibuivan/catalog/internal/platform/errcode"
	"github.com/taibuivan/catalog/internal/platform/existence"
	"github.com/taibuivan/catalog/pkg/pointer"
)

// Kind is the store kind of movies.
const Kind = "movie"

// Movie is an aggregate root owning its media.
type Movie struct {
	entity.Base
	CzechName    string    `json:"czech_name"`
	OriginalName string    `json:"original_name"`
	Year         int       `json:"year"`
	Languages    []string  `json:"languages"`
	Subtitles    []string  `json:"subtitles"`
	Media        []*Medium `json:"media"`
	Csfd         string    `json:"csfd"`
	ImdbCode     int       `json:"imdb_code"`
	WikiEn       string    `json:"wiki_en"`
	WikiCz       string    `json:"wiki_cz"`
	Picture      *string   `json:"picture"`
	Note         string    `json:"note"`
	Genres       []string  `json:"genres"`
}

// Medium is one physical medium of a movie, owned by it.
type Medium struct {
	entity.Base
	Length int `json:"length"` // Minutes
}

// Request is the payload of add and update.
type Request struct {
	CzechName    *string   `json:"czech_name"`
	OriginalName *string   `json:"original_name"`
	Year         *int      `json:"year"`
	Languages    []*string `json:"languages"`
	Subtitles    []*string `json:"subtitles"`
	Media        []*int    `json:"media"`
	Csfd         *string   `json:"csfd"`
	ImdbCode     int       `json:"imdb_code"`
	WikiEn       *string   `json:"wiki_en"`
	WikiCz       *string   `json:"wiki_cz"`
	Picture      *string   `json:"picture"`
	Note         *string   `json:"note"`
	Genres       []*string `json:"genres"`
}

// Filter holds the parameters of a paged movie search.
type Filter struct {
	Name  string // Matched against the czech and original name
	Year  *int
	Page  int
	Limit int
}

// Violations
var (
	Entity = errcode.NewEntity("MOVIE", "Movie")

	FieldCzechName    = Entity.Field("czech_name", "Czech name")
	FieldOriginalName = Entity.Field("original_name", "Original name")
	FieldYear         = Entity.Field("year", "Year")
	FieldLanguages    = Entity.Field("languages", "Languages")
	FieldSubtitles    = Entity.Field("subtitles", "Subtitles")
	FieldMedia        = Entity.Field("media", "Media")
	FieldCsfd         = Entity.Field("csfd", "URL to ČSFD page about movie")
	FieldImdbCode     = Entity.Field("imdb_code", "IMDB code")
	FieldWikiEn       = Entity.Field("wiki_en", "URL to english Wikipedia page about movie")
	FieldWikiCz       = Entity.Field("wiki_cz", "URL to czech Wikipedia page about movie")
	FieldPicture      = Entity.Field("picture", "Picture")
	FieldNote         = Entity.Field("note", "Note")
	FieldGenres       = Entity.Field("genres", "Genres")
)

// # Document

func (movie *Movie) Descendants() []*entity.Base {
	nodes := make([]*entity.Base, 0, len(movie.Media))
	for _, medium := range movie.Media {
		nodes = append(nodes, &medium.Base)
	}
	return nodes
}

// Facets indexes the name, the year and every shared reference.
func (movie *Movie) Facets() map[string]string {
	facets := map[string]string{
		"name": movie.CzechName + " " + movie.OriginalName,
		"year": strconv.Itoa(movie.Year),
	}
	facade.MarkReferences(facets, existence.KindGenre, movie.Genres...)
	if movie.Picture != nil {
		facade.MarkReferences(facets, existence.KindPicture, *movie.Picture)
	}
	return facets
}

// # Duplication

func (movie *Movie) Copy() duplicate.Node {
	copied := *movie
	copied.Base = entity.Base{}
	copied.Languages = append([]string(nil), movie.Languages...)
	copied.Subtitles = append([]string(nil), movie.Subtitles...)
	copied.Genres = append([]string(nil), movie.Genres...)
	copied.Picture = pointer.Clone(movie.Picture)
	copied.Media = nil
	return &copied
}

func (movie *Movie) Children() []duplicate.Node {
	children := make([]duplicate.Node, 0, len(movie.Media))
	for _, medium := range movie.Media {
		children = append(children, medium)
	}
	return children
}

func (movie *Movie) Adopt(child duplicate.Node) { movie.Media = append(movie.Media, child.(*Medium)) }

func (movie *Movie) References() []duplicate.Reference {
	references := facade.References(existence.KindGenre, FieldGenres.JSON, genre.Entity.NotExist(), movie.Genres...)
	if movie.Picture != nil {
		references = append(references, facade.References(existence.KindPicture, FieldPicture.JSON, picture.Entity.NotExist(), *movie.Picture)...)
	}
	references = append(references, facade.RegisterReferences(register.Language, FieldLanguages.JSON, movie.Languages...)...)
	return append(references, facade.RegisterReferences(register.Language, FieldSubtitles.JSON, movie.Subtitles...)...)
}

func (medium *Medium) Copy() duplicate.Node        { return &Medium{Length: medium.Length} }
func (medium *Medium) Children() []duplicate.Node { return nil }
func (medium *Medium) Adopt(duplicate.Node)       {}
