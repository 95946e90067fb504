// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package show

import (
	"context"
	"log/slog"
	"slices"

	"github.com/taibuivan/catalog/internal/catalog/facade"
	"github.com/taibuivan/catalog/internal/catalog/genre"
	"github.com/taibuivan/catalog/internal/catalog/picture"
	"github.com/taibuivan/catalog/internal/platform/existence"
	"github.com/taibuivan/catalog/internal/platform/store"
	"github.com/taibuivan/catalog/internal/platform/validate"
	"github.com/taibuivan/catalog/pkg/pagination"
)

// NewRepository binds shows to a store backend.
func NewRepository(backend store.Backend) *store.Repository[*Show] {
	return store.NewRepository(backend, Kind, func() *Show { return &Show{} })
}

// Service manages shows and their owned seasons and episodes.
// Every child operation loads and saves the whole show.
type Service struct {
	repo *store.Repository[*Show]
	deps facade.Deps
}

func NewService(repo *store.Repository[*Show], deps facade.Deps) *Service {
	return &Service{repo: repo, deps: deps}
}

func (service *Service) Get(context context.Context, uuid string) (*Show, error) {
	return facade.Load(context, service.repo, uuid, Entity)
}

func (service *Service) Search(context context.Context, filter Filter) (pagination.Result[*Show], error) {
	criteria := store.Criteria{}
	if filter.Name != "" {
		criteria.Contains = map[string]string{"name": filter.Name}
	}
	return facade.Search(context, service.repo, criteria, filter.Page, filter.Limit)
}

func (service *Service) Add(context context.Context, request Request) (*Show, error) {
	if err := service.validate(request).Validate(context, service.deps.Resolver); err != nil {
		return nil, err
	}

	show := &Show{}
	apply(show, request)

	if err := facade.Create(context, service.deps, service.repo, show); err != nil {
		return nil, err
	}

	service.deps.Logger.Info("show_created", slog.String("uuid", show.UUID), slog.String("czech_name", show.CzechName))
	return show, nil
}

// Update overwrites the fields of the show. Seasons are left untouched.
func (service *Service) Update(context context.Context, uuid string, request Request) (*Show, error) {
	show, err := service.Get(context, uuid)
	found, err := facade.Found(err, Entity)
	if err != nil {
		return nil, err
	}

	if err := facade.Settle(context, service.deps, service.validate(request), Entity, found); err != nil {
		return nil, err
	}

	apply(show, request)
	service.deps.Stamper.Updated(context, show)

	if err := service.repo.Save(context, show); err != nil {
		return nil, err
	}

	service.deps.Logger.Info("show_updated", slog.String("uuid", show.UUID))
	return show, nil
}

// Remove deletes the show with all its seasons and episodes.
func (service *Service) Remove(context context.Context, uuid string) error {
	if err := facade.Remove(context, service.repo, uuid, Entity); err != nil {
		return err
	}

	service.deps.Logger.Warn("show_deleted", slog.String("uuid", uuid))
	return nil
}

/*
Duplicate deep-copies a show with all its seasons and episodes.

Returns:
  - *Show: The persisted copy, fresh identities throughout
  - error: SHOW_NOT_EXIST (404) or a missing shared reference (404)
*/
func (service *Service) Duplicate(context context.Context, uuid string) (*Show, error) {
	show, err := facade.Duplicate(context, service.deps, service.repo, uuid, Entity)
	if err != nil {
		return nil, err
	}

	statistics := show.Statistics()
	service.deps.Logger.Info("show_duplicated",
		slog.String("source", uuid),
		slog.String("uuid", show.UUID),
		slog.Int("seasons", statistics.Seasons),
		slog.Int("episodes", statistics.Episodes),
	)
	return show, nil
}

// Unlink drops a removed genre or picture from every show referencing it.
func (service *Service) Unlink(context context.Context, kind existence.Kind, uuid string) (int, error) {
	return facade.Unreference(context, service.deps, service.repo, kind, uuid, func(show *Show) {
		switch kind {
		case existence.KindGenre:
			show.Genres = slices.DeleteFunc(show.Genres, func(id string) bool { return id == uuid })
		case existence.KindPicture:
			show.Picture = nil
		}
	})
}

// Count returns the number of stored shows.
func (service *Service) Count(context context.Context) (int, error) {
	return service.repo.Count(context)
}

// Statistics summarizes the show with the given uuid.
func (service *Service) Statistics(context context.Context, uuid string) (Statistics, error) {
	show, err := service.Get(context, uuid)
	if err != nil {
		return Statistics{}, err
	}
	return show.Statistics(), nil
}

func (service *Service) validate(request Request) *validate.Validator {
	validator := service.deps.Validator()

	validator.NotEmptyString(FieldCzechName, request.CzechName).
		NotEmptyString(FieldOriginalName, request.OriginalName).
		NotNull(FieldCsfd, request.Csfd == nil).
		Imdb(FieldImdbCode, request.ImdbCode).
		NotNull(FieldWikiEn, request.WikiEn == nil).
		NotNull(FieldWikiCz, request.WikiCz == nil).
		Reference(FieldPicture, existence.KindPicture, request.Picture, false, picture.Entity.NotExist()).
		NotNull(FieldNote, request.Note == nil).
		References(FieldGenres, existence.KindGenre, request.Genres, genre.Entity.NotExist())

	return validator
}

func apply(show *Show, request Request) {
	show.CzechName = facade.Text(request.CzechName)
	show.OriginalName = facade.Text(request.OriginalName)
	show.Csfd = facade.Text(request.Csfd)
	show.ImdbCode = request.ImdbCode
	show.WikiEn = facade.Text(request.WikiEn)
	show.WikiCz = facade.Text(request.WikiCz)
	show.Picture = facade.ID(request.Picture)
	show.Note = facade.Text(request.Note)
	show.Genres = facade.IDs(request.Genres)
}
