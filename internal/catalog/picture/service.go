// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package picture

import (
	"context"
	"log/slog"

	"github.com/taibuivan/catalog/internal/catalog/facade"
	"github.com/taibuivan/catalog/internal/platform/existence"
	"github.com/taibuivan/catalog/internal/platform/store"
	"github.com/taibuivan/catalog/internal/platform/validate"
	"github.com/taibuivan/catalog/pkg/pagination"
)

// NewRepository binds pictures to a store backend.
func NewRepository(backend store.Backend) *store.Repository[*Picture] {
	return store.NewRepository(backend, Kind, func() *Picture { return &Picture{} })
}

type Service struct {
	repo *store.Repository[*Picture]
	deps facade.Deps
}

func NewService(repo *store.Repository[*Picture], deps facade.Deps) *Service {
	return &Service{repo: repo, deps: deps}
}

func (service *Service) Get(context context.Context, uuid string) (*Picture, error) {
	return facade.Load(context, service.repo, uuid, Entity)
}

func (service *Service) Search(context context.Context, filter Filter) (pagination.Result[*Picture], error) {
	return facade.Search(context, service.repo, store.Criteria{}, filter.Page, filter.Limit)
}

func (service *Service) Add(context context.Context, request Request) (*Picture, error) {
	if err := service.validate(request).Err(); err != nil {
		return nil, err
	}

	picture := &Picture{Content: request.Content}
	if err := facade.Create(context, service.deps, service.repo, picture); err != nil {
		return nil, err
	}

	service.deps.Logger.Info("picture_created", slog.String("uuid", picture.UUID), slog.Int("size", len(picture.Content)))
	return picture, nil
}

func (service *Service) Update(context context.Context, uuid string, request Request) (*Picture, error) {
	picture, err := service.Get(context, uuid)
	found, err := facade.Found(err, Entity)
	if err != nil {
		return nil, err
	}

	if err := facade.Settle(context, service.deps, service.validate(request), Entity, found); err != nil {
		return nil, err
	}

	picture.Content = request.Content
	service.deps.Stamper.Updated(context, picture)

	if err := service.repo.Save(context, picture); err != nil {
		return nil, err
	}

	service.deps.Logger.Info("picture_updated", slog.String("uuid", picture.UUID))
	return picture, nil
}

// Remove deletes the picture after dropping it from every aggregate that references it.
func (service *Service) Remove(context context.Context, uuid string) error {
	unlinked, err := facade.RemoveShared(context, service.deps, service.repo, uuid, Entity, existence.KindPicture)
	if err != nil {
		return err
	}

	service.deps.Logger.Warn("picture_deleted", slog.String("uuid", uuid), slog.Int("unlinked", unlinked))
	return nil
}

func (service *Service) Duplicate(context context.Context, uuid string) (*Picture, error) {
	picture, err := facade.Duplicate(context, service.deps, service.repo, uuid, Entity)
	if err != nil {
		return nil, err
	}

	service.deps.Logger.Info("picture_duplicated", slog.String("source", uuid), slog.String("uuid", picture.UUID))
	return picture, nil
}

// Count returns the number of stored pictures.
func (service *Service) Count(context context.Context) (int, error) {
	return service.repo.Count(context)
}

func (service *Service) validate(request Request) *validate.Validator {
	return service.deps.Validator().NotNull(FieldContent, request.Content == nil)
}
