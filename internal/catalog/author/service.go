// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

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

// NewRepository binds authors to a store backend.
func NewRepository(backend store.Backend) *store.Repository[*Author] {
	return store.NewRepository(backend, Kind, func() *Author { return &Author{} })
}

type Service struct {
	repo *store.Repository[*Author]
	deps facade.Deps
}

func NewService(repo *store.Repository[*Author], deps facade.Deps) *Service {
	return &Service{repo: repo, deps: deps}
}

func (service *Service) Get(context context.Context, uuid string) (*Author, error) {
	return facade.Load(context, service.repo, uuid, Entity)
}

func (service *Service) Search(context context.Context, filter Filter) (pagination.Result[*Author], error) {
	criteria := store.Criteria{}
	if filter.Name != "" {
		criteria.Contains = map[string]string{"name": filter.Name}
	}
	return facade.Search(context, service.repo, criteria, filter.Page, filter.Limit)
}

func (service *Service) Add(context context.Context, request Request) (*Author, error) {
	if err := service.validate(request).Err(); err != nil {
		return nil, err
	}

	author := &Author{}
	apply(author, request)

	if err := facade.Create(context, service.deps, service.repo, author); err != nil {
		return nil, err
	}

	service.deps.Logger.Info("author_created", slog.String("uuid", author.UUID), slog.String("name", author.FullName()))
	return author, nil
}

func (service *Service) Update(context context.Context, uuid string, request Request) (*Author, error) {
	author, err := service.Get(context, uuid)
	found, err := facade.Found(err, Entity)
	if err != nil {
		return nil, err
	}

	if err := facade.Settle(context, service.deps, service.validate(request), Entity, found); err != nil {
		return nil, err
	}

	apply(author, request)
	service.deps.Stamper.Updated(context, author)

	if err := service.repo.Save(context, author); err != nil {
		return nil, err
	}

	service.deps.Logger.Info("author_updated", slog.String("uuid", author.UUID))
	return author, nil
}

// Remove deletes the author after dropping it from every aggregate that references it.
func (service *Service) Remove(context context.Context, uuid string) error {
	unlinked, err := facade.RemoveShared(context, service.deps, service.repo, uuid, Entity, existence.KindAuthor)
	if err != nil {
		return err
	}

	service.deps.Logger.Warn("author_deleted", slog.String("uuid", uuid), slog.Int("unlinked", unlinked))
	return nil
}

func (service *Service) Duplicate(context context.Context, uuid string) (*Author, error) {
	author, err := facade.Duplicate(context, service.deps, service.repo, uuid, Entity)
	if err != nil {
		return nil, err
	}

	service.deps.Logger.Info("author_duplicated", slog.String("source", uuid), slog.String("uuid", author.UUID))
	return author, nil
}

// Count returns the number of stored authors.
func (service *Service) Count(context context.Context) (int, error) {
	return service.repo.Count(context)
}

func (service *Service) validate(request Request) *validate.Validator {
	validator := service.deps.Validator()

	validator.NotEmptyString(FieldFirstName, request.FirstName).
		NotEmptyString(FieldLastName, request.LastName)

	if request.MiddleName != nil {
		validator.NotEmptyString(FieldMiddleName, request.MiddleName)
	}
	return validator
}

func apply(author *Author, request Request) {
	author.FirstName = strings.TrimSpace(*request.FirstName)
	author.LastName = strings.TrimSpace(*request.LastName)

	author.MiddleName = nil
	if request.MiddleName != nil {
		middle := strings.TrimSpace(*request.MiddleName)
		author.MiddleName = &middle
	}
}
