// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/taibuivan/catalog/internal/catalog/author"
	"github.com/taibuivan/catalog/internal/catalog/facade"
	"github.com/taibuivan/catalog/internal/platform/existence"
	"github.com/taibuivan/catalog/internal/platform/store"
	"github.com/taibuivan/catalog/internal/platform/validate"
	"github.com/taibuivan/catalog/pkg/pagination"
)

// NewRepository binds books to a store backend.
func NewRepository(backend store.Backend) *store.Repository[*Book] {
	return store.NewRepository(backend, Kind, func() *Book { return &Book{} })
}

type Service struct {
	repo *store.Repository[*Book]
	deps facade.Deps
}

func NewService(repo *store.Repository[*Book], deps facade.Deps) *Service {
	return &Service{repo: repo, deps: deps}
}

func (service *Service) Get(context context.Context, uuid string) (*Book, error) {
	return facade.Load(context, service.repo, uuid, Entity)
}

func (service *Service) Search(context context.Context, filter Filter) (pagination.Result[*Book], error) {
	criteria := store.Criteria{Contains: map[string]string{}, Equals: map[string]string{}}
	if filter.Name != "" {
		criteria.Contains["name"] = filter.Name
	}
	if filter.Author != "" {
		criteria.Equals[facade.ReferenceFacet(existence.KindAuthor, strings.ToLower(filter.Author))] = facade.ReferenceMark
	}
	return facade.Search(context, service.repo, criteria, filter.Page, filter.Limit)
}

func (service *Service) Add(context context.Context, request Request) (*Book, error) {
	if err := service.validate(request).Validate(context, service.deps.Resolver); err != nil {
		return nil, err
	}

	book := &Book{}
	apply(book, request)

	if err := facade.Create(context, service.deps, service.repo, book); err != nil {
		return nil, err
	}

	service.deps.Logger.Info("book_created", slog.String("uuid", book.UUID), slog.String("czech_name", book.CzechName))
	return book, nil
}

// Update overwrites the fields of the book. Items are left untouched.
func (service *Service) Update(context context.Context, uuid string, request Request) (*Book, error) {
	book, err := service.Get(context, uuid)
	found, err := facade.Found(err, Entity)
	if err != nil {
		return nil, err
	}

	if err := facade.Settle(context, service.deps, service.validate(request), Entity, found); err != nil {
		return nil, err
	}

	apply(book, request)
	service.deps.Stamper.Updated(context, book)

	if err := service.repo.Save(context, book); err != nil {
		return nil, err
	}

	service.deps.Logger.Info("book_updated", slog.String("uuid", book.UUID))
	return book, nil
}

func (service *Service) Remove(context context.Context, uuid string) error {
	if err := facade.Remove(context, service.repo, uuid, Entity); err != nil {
		return err
	}

	service.deps.Logger.Warn("book_deleted", slog.String("uuid", uuid))
	return nil
}

func (service *Service) Duplicate(context context.Context, uuid string) (*Book, error) {
	book, err := facade.Duplicate(context, service.deps, service.repo, uuid, Entity)
	if err != nil {
		return nil, err
	}

	service.deps.Logger.Info("book_duplicated", slog.String("source", uuid), slog.String("uuid", book.UUID), slog.Int("items", len(book.Items)))
	return book, nil
}

// Unlink drops a removed author from every book referencing it.
func (service *Service) Unlink(context context.Context, kind existence.Kind, uuid string) (int, error) {
	return facade.Unreference(context, service.deps, service.repo, kind, uuid, func(book *Book) {
		book.Authors = slices.DeleteFunc(book.Authors, func(id string) bool { return id == uuid })
	})
}

// Count returns the number of stored books.
func (service *Service) Count(context context.Context) (int, error) {
	return service.repo.Count(context)
}

func (service *Service) validate(request Request) *validate.Validator {
	validator := service.deps.Validator()

	validator.NotEmptyString(FieldCzechName, request.CzechName).
		NotEmptyString(FieldOriginalName, request.OriginalName).
		References(FieldAuthors, existence.KindAuthor, request.Authors, author.Entity.NotExist()).
		NotNull(FieldNote, request.Note == nil)

	return validator
}

func apply(book *Book, request Request) {
	book.CzechName = facade.Text(request.CzechName)
	book.OriginalName = facade.Text(request.OriginalName)
	book.Authors = facade.IDs(request.Authors)
	book.Note = facade.Text(request.Note)
}
