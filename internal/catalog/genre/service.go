// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package genre

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/catalog/internal/catalog/facade"
	"github.com/taibuivan/catalog/internal/platform/existence"
	"github.com/taibuivan/catalog/internal/platform/store"
	"github.com/taibuivan/catalog/internal/platform/validate"
	"github.com/taibuivan/catalog/pkg/pagination"
)

// NewRepository binds genres to a store backend.
func NewRepository(backend store.Backend) *store.Repository[*Genre] {
	return store.NewRepository(backend, Kind, func() *Genre { return &Genre{} })
}

type Service struct {
	repo *store.Repository[*Genre]
	deps facade.Deps
}

func NewService(repo *store.Repository[*Genre], deps facade.Deps) *Service {
	return &Service{repo: repo, deps: deps}
}

func (service *Service) Get(context context.Context, uuid string) (*Genre, error) {
	return facade.Load(context, service.repo, uuid, Entity)
}

func (service *Service) Search(context context.Context, filter Filter) (pagination.Result[*Genre], error) {
	criteria := store.Criteria{}
	if filter.Name != "" {
		criteria.Contains = map[string]string{"name": filter.Name}
	}
	return facade.Search(context, service.repo, criteria, filter.Page, filter.Limit)
}

func (service *Service) Add(context context.Context, request Request) (*Genre, error) {
	if err := service.validate(request).Err(); err != nil {
		return nil, err
	}

	genre := &Genre{Name: strings.TrimSpace(*request.Name)}
	if err := facade.Create(context, service.deps, service.repo, genre); err != nil {
		return nil, err
	}

	service.deps.Logger.Info("genre_created", slog.String("uuid", genre.UUID), slog.String("name", genre.Name))
	return genre, nil
}

func (service *Service) Update(context context.Context, uuid string, request Request) (*Genre, error) {
	genre, err := service.Get(context, uuid)
	found, err := facade.Found(err, Entity)
	if err != nil {
		return nil, err
	}

	if err := facade.Settle(context, service.deps, service.validate(request), Entity, found); err != nil {
		return nil, err
	}

	genre.Name = strings.TrimSpace(*request.Name)
	service.deps.Stamper.Updated(context, genre)

	if err := service.repo.Save(context, genre); err != nil {
		return nil, err
	}

	service.deps.Logger.Info("genre_updated", slog.String("uuid", genre.UUID))
	return genre, nil
}

// Remove deletes the genre after dropping it from every aggregate that references it.
func (service *Service) Remove(context context.Context, uuid string) error {
	unlinked, err := facade.RemoveShared(context, service.deps, service.repo, uuid, Entity, existence.KindGenre)
	if err != nil {
		return err
	}

	service.deps.Logger.Warn("genre_deleted", slog.String("uuid", uuid), slog.Int("unlinked", unlinked))
	return nil
}

func (service *Service) Duplicate(context context.Context, uuid string) (*Genre, error) {
	genre, err := facade.Duplicate(context, service.deps, service.repo, uuid, Entity)
	if err != nil {
		return nil, err
	}

	service.deps.Logger.Info("genre_duplicated", slog.String("source", uuid), slog.String("uuid", genre.UUID))
	return genre, nil
}

// Count returns the number of stored genres.
func (service *Service) Count(context context.Context) (int, error) {
	return service.repo.Count(context)
}

func (service *Service) validate(request Request) *validate.Validator {
	return service.deps.Validator().NotEmptyString(FieldName, request.Name)
}
