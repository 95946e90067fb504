// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package game

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/catalog/internal/catalog/facade"
	"github.com/taibuivan/catalog/internal/catalog/register"
	"github.com/taibuivan/catalog/internal/platform/store"
	"github.com/taibuivan/catalog/internal/platform/validate"
	"github.com/taibuivan/catalog/pkg/pagination"
)

// NewRepository binds games to a store backend.
func NewRepository(backend store.Backend) *store.Repository[*Game] {
	return store.NewRepository(backend, Kind, func() *Game { return &Game{} })
}

type Service struct {
	repo *store.Repository[*Game]
	deps facade.Deps
}

func NewService(repo *store.Repository[*Game], deps facade.Deps) *Service {
	return &Service{repo: repo, deps: deps}
}

func (service *Service) Get(context context.Context, uuid string) (*Game, error) {
	return facade.Load(context, service.repo, uuid, Entity)
}

func (service *Service) Search(context context.Context, filter Filter) (pagination.Result[*Game], error) {
	criteria := store.Criteria{Contains: map[string]string{}, Equals: map[string]string{}}
	if filter.Name != "" {
		criteria.Contains["name"] = filter.Name
	}
	if filter.Format != "" {
		criteria.Equals["format"] = filter.Format
	}
	return facade.Search(context, service.repo, criteria, filter.Page, filter.Limit)
}

func (service *Service) Add(context context.Context, request Request) (*Game, error) {
	if err := service.validate(request).Validate(context, service.deps.Resolver); err != nil {
		return nil, err
	}

	game := &Game{}
	apply(game, request)

	if err := facade.Create(context, service.deps, service.repo, game); err != nil {
		return nil, err
	}

	service.deps.Logger.Info("game_created", slog.String("uuid", game.UUID), slog.String("name", game.Name))
	return game, nil
}

// Update overwrites the fields of the game. The cheat is left untouched.
func (service *Service) Update(context context.Context, uuid string, request Request) (*Game, error) {
	game, err := service.Get(context, uuid)
	found, err := facade.Found(err, Entity)
	if err != nil {
		return nil, err
	}

	if err := facade.Settle(context, service.deps, service.validate(request), Entity, found); err != nil {
		return nil, err
	}

	apply(game, request)
	service.deps.Stamper.Updated(context, game)

	if err := service.repo.Save(context, game); err != nil {
		return nil, err
	}

	service.deps.Logger.Info("game_updated", slog.String("uuid", game.UUID))
	return game, nil
}

// Remove deletes the game with its cheat.
func (service *Service) Remove(context context.Context, uuid string) error {
	if err := facade.Remove(context, service.repo, uuid, Entity); err != nil {
		return err
	}

	service.deps.Logger.Warn("game_deleted", slog.String("uuid", uuid))
	return nil
}

func (service *Service) Duplicate(context context.Context, uuid string) (*Game, error) {
	game, err := facade.Duplicate(context, service.deps, service.repo, uuid, Entity)
	if err != nil {
		return nil, err
	}

	service.deps.Logger.Info("game_duplicated", slog.String("source", uuid), slog.String("uuid", game.UUID))
	return game, nil
}

// Count returns the number of stored games.
func (service *Service) Count(context context.Context) (int, error) {
	return service.repo.Count(context)
}

// TotalMediaCount returns the summed media count of every game.
func (service *Service) TotalMediaCount(context context.Context) (int, error) {
	total, err := service.repo.Count(context)
	if err != nil || total == 0 {
		return 0, err
	}

	games, _, err := service.repo.Search(context, store.Criteria{}, total, 0)
	if err != nil {
		return 0, err
	}

	media := 0
	for _, game := range games {
		media += game.MediaCount
	}
	return media, nil
}

func (service *Service) validate(request Request) *validate.Validator {
	validator := service.deps.Validator()

	validator.NotEmptyString(FieldName, request.Name).
		NotNull(FieldWikiEn, request.WikiEn == nil).
		NotNull(FieldWikiCz, request.WikiCz == nil).
		Positive(FieldMediaCount, request.MediaCount).
		RegisterValue(FieldFormat, register.GameFormat, request.Format).
		NotNull(FieldOtherData, request.OtherData == nil).
		NotNull(FieldNote, request.Note == nil)

	return validator
}

func apply(game *Game, request Request) {
	game.Name = facade.Text(request.Name)
	game.WikiEn = facade.Text(request.WikiEn)
	game.WikiCz = facade.Text(request.WikiCz)
	game.MediaCount = request.MediaCount
	game.Format = strings.ToUpper(facade.Text(request.Format))
	game.Crack = request.Crack
	game.SerialKey = request.SerialKey
	game.Patch = request.Patch
	game.Trainer = request.Trainer
	game.TrainerData = request.TrainerData
	game.ModifiedFiles = request.ModifiedFiles
	game.Saves = request.Saves
	game.OtherData = facade.Text(request.OtherData)
	game.Note = facade.Text(request.Note)
}
