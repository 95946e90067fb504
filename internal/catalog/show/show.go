// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package show

import (
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

// Store and metric kinds.
const (
	Kind        = "show"
	KindSeason  = "season"
	KindEpisode = "episode"
)

// Show is an aggregate root owning seasons, each owning episodes.
type Show struct {
	entity.Base
	CzechName    string    `json:"czech_name"`
	OriginalName string    `json:"original_name"`
	Csfd         string    `json:"csfd"`
	ImdbCode     int       `json:"imdb_code"`
	WikiEn       string    `json:"wiki_en"`
	WikiCz       string    `json:"wiki_cz"`
	Picture      *string   `json:"picture"`
	Note         string    `json:"note"`
	Genres       []string  `json:"genres"`
	Seasons      []*Season `json:"seasons"`
}

// Season belongs to exactly one show.
type Season struct {
	entity.Base
	Number    int        `json:"number"`
	StartYear int        `json:"start_year"`
	EndYear   int        `json:"end_year"`
	Language  string     `json:"language"`
	Subtitles []string   `json:"subtitles"`
	Note      string     `json:"note"`
	Episodes  []*Episode `json:"episodes"`
}

// Episode belongs to exactly one season.
type Episode struct {
	entity.Base
	Number int    `json:"number"`
	Name   string `json:"name"`
	Length int    `json:"length"` // Minutes
	Note   string `json:"note"`
}

// # Requests

type Request struct {
	CzechName    *string   `json:"czech_name"`
	OriginalName *string   `json:"original_name"`
	Csfd         *string   `json:"csfd"`
	ImdbCode     int       `json:"imdb_code"`
	WikiEn       *string   `json:"wiki_en"`
	WikiCz       *string   `json:"wiki_cz"`
	Picture      *string   `json:"picture"`
	Note         *string   `json:"note"`
	Genres       []*string `json:"genres"`
}

type SeasonRequest struct {
	Number    int       `json:"number"`
	StartYear int       `json:"start_year"`
	EndYear   int       `json:"end_year"`
	Language  *string   `json:"language"`
	Subtitles []*string `json:"subtitles"`
	Note      *string   `json:"note"`
}

type EpisodeRequest struct {
	Number int     `json:"number"`
	Name   *string `json:"name"`
	Length int     `json:"length"`
	Note   *string `json:"note"`
}

// Filter holds the parameters of a paged show search.
type Filter struct {
	Name  string
	Page  int
	Limit int
}

// Statistics summarizes one show.
type Statistics struct {
	Seasons  int `json:"seasons_count"`
	Episodes int `json:"episodes_count"`
	Length   int `json:"length"`
}

// # Violations

var (
	Entity = errcode.NewEntity("SHOW", "Show")

	FieldCzechName    = Entity.Field("czech_name", "Czech name")
	FieldOriginalName = Entity.Field("original_name", "Original name")
	FieldCsfd         = Entity.Field("csfd", "URL to ČSFD page about show")
	FieldImdbCode     = Entity.Field("imdb_code", "IMDB code")
	FieldWikiEn       = Entity.Field("wiki_en", "URL to english Wikipedia page about show")
	FieldWikiCz       = Entity.Field("wiki_cz", "URL to czech Wikipedia page about show")
	FieldPicture      = Entity.Field("picture", "Picture")
	FieldNote         = Entity.Field("note", "Note")
	FieldGenres       = Entity.Field("genres", "Genres")

	SeasonEntity = errcode.NewEntity("SEASON", "Season")

	FieldSeasonNumber    = SeasonEntity.Field("number", "Number of season")
	FieldSeasonStartYear = SeasonEntity.Field("start_year", "Starting year")
	FieldSeasonEndYear   = SeasonEntity.Field("end_year", "Ending year")
	FieldSeasonLanguage  = SeasonEntity.Field("language", "Language")
	FieldSeasonSubtitles = SeasonEntity.Field("subtitles", "Subtitles")
	FieldSeasonNote      = SeasonEntity.Field("note", "Note")

	EpisodeEntity = errcode.NewEntity("EPISODE", "Episode")

	FieldEpisodeNumber = EpisodeEntity.Field("number", "Number of episode")
	FieldEpisodeName   = EpisodeEntity.Field("name", "Name")
	FieldEpisodeLength = EpisodeEntity.Field("length", "Length of episode")
	FieldEpisodeNote   = EpisodeEntity.Field("note", "Note")
)

// # Document

func (show *Show) Descendants() []*entity.Base {
	var nodes []*entity.Base
	for _, season := range show.Seasons {
		nodes = append(nodes, &season.Base)
		for _, episode := range season.Episodes {
			nodes = append(nodes, &episode.Base)
		}
	}
	return nodes
}

// Facets indexes the name and every shared reference of the show itself.
func (show *Show) Facets() map[string]string {
	facets := map[string]string{"name": show.CzechName + " " + show.OriginalName}
	facade.MarkReferences(facets, existence.KindGenre, show.Genres...)
	if show.Picture != nil {
		facade.MarkReferences(facets, existence.KindPicture, *show.Picture)
	}
	return facets
}

// Season returns the season with the given uuid and its index, or nil.
func (show *Show) Season(uuid string) (*Season, int) {
	return entity.Find(show.Seasons, uuid)
}

// Episode returns the episode with the given uuid, its season and its index.
func (show *Show) Episode(uuid string) (*Episode, *Season, int) {
	for _, season := range show.Seasons {
		if episode, index := entity.Find(season.Episodes, uuid); episode != nil {
			return episode, season, index
		}
	}
	return nil, nil, -1
}

// Statistics counts seasons and episodes and sums the episode lengths.
func (show *Show) Statistics() Statistics {
	statistics := Statistics{Seasons: len(show.Seasons)}
	for _, season := range show.Seasons {
		statistics.Episodes += len(season.Episodes)
		for _, episode := range season.Episodes {
			statistics.Length += episode.Length
		}
	}
	return statistics
}

// # Duplication

func (show *Show) Copy() duplicate.Node {
	copied := *show
	copied.Base = entity.Base{}
	copied.Genres = append([]string(nil), show.Genres...)
	copied.Picture = pointer.Clone(show.Picture)
	copied.Seasons = nil
	return &copied
}

func (show *Show) Children() []duplicate.Node {
	children := make([]duplicate.Node, 0, len(show.Seasons))
	for _, season := range show.Seasons {
		children = append(children, season)
	}
	return children
}

func (show *Show) Adopt(child duplicate.Node) { show.Seasons = append(show.Seasons, child.(*Season)) }

func (show *Show) References() []duplicate.Reference {
	references := facade.References(existence.KindGenre, FieldGenres.JSON, genre.Entity.NotExist(), show.Genres...)
	if show.Picture != nil {
		references = append(references, facade.References(existence.KindPicture, FieldPicture.JSON, picture.Entity.NotExist(), *show.Picture)...)
	}
	return references
}

func (season *Season) Copy() duplicate.Node {
	copied := *season
	copied.Base = entity.Base{}
	copied.Subtitles = append([]string(nil), season.Subtitles...)
	copied.Episodes = nil
	return &copied
}

func (season *Season) Children() []duplicate.Node {
	children := make([]duplicate.Node, 0, len(season.Episodes))
	for _, episode := range season.Episodes {
		children = append(children, episode)
	}
	return children
}

func (season *Season) Adopt(child duplicate.Node) {
	season.Episodes = append(season.Episodes, child.(*Episode))
}

func (season *Season) References() []duplicate.Reference {
	references := facade.RegisterReferences(register.Language, FieldSeasonLanguage.JSON, season.Language)
	return append(references, facade.RegisterReferences(register.Language, FieldSeasonSubtitles.JSON, season.Subtitles...)...)
}

func (episode *Episode) Copy() duplicate.Node {
	copied := *episode
	copied.Base = entity.Base{}
	return &copied
}

func (episode *Episode) Children() []duplicate.Node { return nil }
func (episode *Episode) Adopt(duplicate.Node)       {}
