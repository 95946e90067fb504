// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"context"
	"log/slog"
	"slices"
	"strconv"

	"github.com/taibuivan/catalog/internal/catalog/facade"
	"github.com/taibuivan/catalog/internal/catalog/genre"
	"github.com/taibuivan/catalog/internal/catalog/picture"
	"github.com/taibuivan/catalog/internal/catalog/register"
	"github.com/taibuivan/catalog/internal/platform/existence"
	"github.com/taibuivan/catalog/internal/platform/store"
	"github.com/taibuivan/catalog/internal/platform/validate"
	"github.com/taibuivan/catalog/pkg/pagination"
)

// NewRepository binds movies to a store backend.
func NewRepository(backend store.Backend) *store.Repository[*Movie] {
	return store.NewRepository(backend, Kind, func() *Movie { return &Movie{} })
}

type Service struct {
	repo *store.Repository[*Movie]
	deps facade.Deps
}

func NewService(repo *store.Repository[*Movie], deps facade.Deps) *Service {
	return &Service{repo: repo, deps: deps}
}

func (service *Service) Get(context context.Context, uuid string) (*Movie, error) {
	return facade.Load(context, service.repo, uuid, Entity)
}

func (service *Service) Search(context context.Context, filter Filter) (pagination.Result[*Movie], error) {
	criteria := store.Criteria{Contains: map[string]string{}, Equals: map[string]string{}}
	if filter.Name != "" {
		criteria.Contains["name"] = filter.Name
	}
	if filter.Year != nil {
		criteria.Equals["year"] = strconv.Itoa(*filter.Year)
	}
	return facade.Search(context, service.repo, criteria, filter.Page, filter.Limit)
}

/*
Add validates request and stores a new movie with its media.

Returns:
  - *Movie: The stored movie
  - error: VALIDATION_ERROR carrying every violation of request
*/
func (service *Service) Add(context context.Context, request Request) (*Movie, error) {
	if err := service.validate(request).Validate(context, service.deps.Resolver); err != nil {
		return nil, err
	}

	movie := &Movie{}
	apply(movie, request)
	for _, length := range request.Media {
		movie.Media = append(movie.Media, &Medium{Length: *length})
	}

	if err := facade.Create(context, service.deps, service.repo, movie); err != nil {
		return nil, err
	}

	service.deps.Logger.Info("movie_created",
		slog.String("uuid", movie.UUID),
		slog.String("czech_name", movie.CzechName),
		slog.Int("media", len(movie.Media)),
	)
	return movie, nil
}

/*
Update overwrites the mutable fields of a movie.

Media are matched by position: existing media keep their identity and take
the new length, surplus media are dropped and extra lengths become new media.
*/
func (service *Service) Update(context context.Context, uuid string, request Request) (*Movie, error) {
	movie, err := service.Get(context, uuid)
	found, err := facade.Found(err, Entity)
	if err != nil {
		return nil, err
	}

	if err := facade.Settle(context, service.deps, service.validate(request), Entity, found); err != nil {
		return nil, err
	}

	apply(movie, request)
	service.deps.Stamper.Updated(context, movie)

	media := make([]*Medium, 0, len(request.Media))
	for index, length := range request.Media {
		if index < len(movie.Media) {
			medium := movie.Media[index]
			if medium.Length != *length {
				medium.Length = *length
				service.deps.Stamper.Updated(context, medium)
			}
			media = append(media, medium)
			continue
		}

		medium := &Medium{Length: *length}
		if err := facade.Attach(context, service.deps, movie, medium); err != nil {
			return nil, err
		}
		media = append(media, medium)
	}
	movie.Media = media

	if err := service.repo.Save(context, movie); err != nil {
		return nil, err
	}

	service.deps.Logger.Info("movie_updated", slog.String("uuid", movie.UUID))
	return movie, nil
}

func (service *Service) Remove(context context.Context, uuid string) error {
	if err := facade.Remove(context, service.repo, uuid, Entity); err != nil {
		return err
	}

	service.deps.Logger.Warn("movie_deleted", slog.String("uuid", uuid))
	return nil
}

func (service *Service) Duplicate(context context.Context, uuid string) (*Movie, error) {
	movie, err := facade.Duplicate(context, service.deps, service.repo, uuid, Entity)
	if err != nil {
		return nil, err
	}

	service.deps.Logger.Info("movie_duplicated", slog.String("source", uuid), slog.String("uuid", movie.UUID))
	return movie, nil
}

// Unlink drops a removed genre or picture from every movie referencing it.
func (service *Service) Unlink(context context.Context, kind existence.Kind, uuid string) (int, error) {
	return facade.Unreference(context, service.deps, service.repo, kind, uuid, func(movie *Movie) {
		switch kind {
		case existence.KindGenre:
			movie.Genres = slices.DeleteFunc(movie.Genres, func(id string) bool { return id == uuid })
		case existence.KindPicture:
			movie.Picture = nil
		}
	})
}

// Count returns the number of stored movies.
func (service *Service) Count(context context.Context) (int, error) {
	return service.repo.Count(context)
}

// TotalLength returns the summed length of the media of every movie.
func (service *Service) TotalLength(context context.Context) (int, error) {
	total, err := service.repo.Count(context)
	if err != nil || total == 0 {
		return 0, err
	}

	movies, _, err := service.repo.Search(context, store.Criteria{}, total, 0)
	if err != nil {
		return 0, err
	}

	length := 0
	for _, movie := range movies {
		for _, medium := range movie.Media {
			length += medium.Length
		}
	}
	return length, nil
}

// validate queues every rule of request. References are resolved by the caller.
func (service *Service) validate(request Request) *validate.Validator {
	validator := service.deps.Validator()

	validator.NotEmptyString(FieldCzechName, request.CzechName).
		NotEmptyString(FieldOriginalName, request.OriginalName).
		NotNull(FieldYear, request.Year == nil)

	if request.Year != nil {
		validator.Year(FieldYear, *request.Year)
	}

	validator.RegisterValues(FieldLanguages, register.Language, request.Languages).
		RegisterValues(FieldSubtitles, register.Language, request.Subtitles)

	media := validate.Elements(validator, FieldMedia, request.Media)
	negative := false
	for _, length := range media {
		negative = negative || *length < 0
	}

	validator.Check(FieldMedia.Negative(), FieldMedia.JSON, negative).
		NotNull(FieldCsfd, request.Csfd == nil).
		Imdb(FieldImdbCode, request.ImdbCode).
		NotNull(FieldWikiEn, request.WikiEn == nil).
		NotNull(FieldWikiCz, request.WikiCz == nil).
		Reference(FieldPicture, existence.KindPicture, request.Picture, false, picture.Entity.NotExist()).
		NotNull(FieldNote, request.Note == nil).
		References(FieldGenres, existence.KindGenre, request.Genres, genre.Entity.NotExist())

	return validator
}

func apply(movie *Movie, request Request) {
	movie.CzechName = facade.Text(request.CzechName)
	movie.OriginalName = facade.Text(request.OriginalName)
	movie.Year = *request.Year
	movie.Languages = facade.Keys(request.Languages)
	movie.Subtitles = facade.Keys(request.Subtitles)
	movie.Csfd = facade.Text(request.Csfd)
	movie.ImdbCode = request.ImdbCode
	movie.WikiEn = facade.Text(request.WikiEn)
	movie.WikiCz = facade.Text(request.WikiCz)
	movie.Picture = facade.ID(request.Picture)
	movie.Note = facade.Text(request.Note)
	movie.Genres = facade.IDs(request.Genres)
}
