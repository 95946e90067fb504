// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/catalog/internal/catalog/facade"
	"github.com/taibuivan/catalog/internal/catalog/register"
	"github.com/taibuivan/catalog/internal/platform/entity"
	"github.com/taibuivan/catalog/internal/platform/validate"
)

// # Items

func (service *Service) GetItem(context context.Context, uuid string) (*Item, error) {
	_, item, err := service.loadItem(context, uuid)
	return item, err
}

// ListItems returns the items of a book in order.
func (service *Service) ListItems(context context.Context, bookUUID string) ([]*Item, error) {
	book, err := service.Get(context, bookUUID)
	if err != nil {
		return nil, err
	}
	return book.Items, nil
}

func (service *Service) AddItem(context context.Context, bookUUID string, request ItemRequest) (*Item, error) {
	book, err := service.Get(context, bookUUID)
	found, err := facade.Found(err, Entity)
	if err != nil {
		return nil, err
	}

	if err := facade.Settle(context, service.deps, service.validateItem(request), Entity, found); err != nil {
		return nil, err
	}

	item := &Item{}
	applyItem(item, request)

	if err := facade.Attach(context, service.deps, book, item); err != nil {
		return nil, err
	}
	book.Items = append(book.Items, item)

	if err := service.repo.Save(context, book); err != nil {
		return nil, err
	}

	service.deps.Logger.Info("book_item_created", slog.String("book", book.UUID), slog.String("uuid", item.UUID))
	return item, nil
}

func (service *Service) UpdateItem(context context.Context, uuid string, request ItemRequest) (*Item, error) {
	book, item, err := service.loadItem(context, uuid)
	found, err := facade.Found(err, ItemEntity)
	if err != nil {
		return nil, err
	}

	if err := facade.Settle(context, service.deps, service.validateItem(request), ItemEntity, found); err != nil {
		return nil, err
	}

	applyItem(item, request)
	service.deps.Stamper.Updated(context, item)

	if err := service.repo.Save(context, book); err != nil {
		return nil, err
	}

	service.deps.Logger.Info("book_item_updated", slog.String("uuid", item.UUID))
	return item, nil
}

func (service *Service) RemoveItem(context context.Context, uuid string) error {
	book, item, err := service.loadItem(context, uuid)
	if err != nil {
		return err
	}

	_, index := entity.Find(book.Items, item.UUID)
	book.Items = entity.Remove(book.Items, index)

	if err := service.repo.Save(context, book); err != nil {
		return err
	}

	service.deps.Logger.Warn("book_item_deleted", slog.String("uuid", item.UUID))
	return nil
}

func (service *Service) loadItem(context context.Context, uuid string) (*Book, *Item, error) {
	book, err := facade.LoadByNode(context, service.repo, uuid, ItemEntity)
	if err != nil {
		return nil, nil, err
	}

	item, _ := entity.Find(book.Items, strings.ToLower(uuid))
	if item == nil {
		return nil, nil, ItemEntity.NotExist().Err()
	}
	return book, item, nil
}

func (service *Service) validateItem(request ItemRequest) *validate.Validator {
	validator := service.deps.Validator()

	validator.RegisterValues(FieldItemLanguages, register.Language, request.Languages).
		RegisterValue(FieldItemFormat, register.BookFormat, request.Format).
		NotNull(FieldItemNote, request.Note == nil)

	return validator
}

func applyItem(item *Item, request ItemRequest) {
	item.Languages = facade.Keys(request.Languages)
	item.Format = strings.ToUpper(facade.Text(request.Format))
	item.Note = facade.Text(request.Note)
}
