// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package show

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/catalog/internal/catalog/facade"
	"github.com/taibuivan/catalog/internal/catalog/register"
	"github.com/taibuivan/catalog/internal/platform/duplicate"
	"github.com/taibuivan/catalog/internal/platform/entity"
	"github.com/taibuivan/catalog/internal/platform/validate"
)

// # Seasons

func (service *Service) GetSeason(context context.Context, uuid string) (*Season, error) {
	_, season, err := service.loadSeason(context, uuid)
	return season, err
}

// ListSeasons returns the seasons of a show in order.
func (service *Service) ListSeasons(context context.Context, showUUID string) ([]*Season, error) {
	show, err := service.Get(context, showUUID)
	if err != nil {
		return nil, err
	}
	return show.Seasons, nil
}

// AddSeason appends a new season to the show.
func (service *Service) AddSeason(context context.Context, showUUID string, request SeasonRequest) (*Season, error) {
	show, err := service.Get(context, showUUID)
	found, err := facade.Found(err, Entity)
	if err != nil {
		return nil, err
	}

	if err := facade.Settle(context, service.deps, service.validateSeason(request), Entity, found); err != nil {
		return nil, err
	}

	season := &Season{}
	applySeason(season, request)

	if err := facade.Attach(context, service.deps, show, season); err != nil {
		return nil, err
	}
	show.Seasons = append(show.Seasons, season)

	if err := service.repo.Save(context, show); err != nil {
		return nil, err
	}

	service.deps.Logger.Info("season_created", slog.String("show", show.UUID), slog.String("uuid", season.UUID))
	return season, nil
}

func (service *Service) UpdateSeason(context context.Context, uuid string, request SeasonRequest) (*Season, error) {
	show, season, err := service.loadSeason(context, uuid)
	found, err := facade.Found(err, SeasonEntity)
	if err != nil {
		return nil, err
	}

	if err := facade.Settle(context, service.deps, service.validateSeason(request), SeasonEntity, found); err != nil {
		return nil, err
	}

	applySeason(season, request)
	service.deps.Stamper.Updated(context, season)

	if err := service.repo.Save(context, show); err != nil {
		return nil, err
	}

	service.deps.Logger.Info("season_updated", slog.String("uuid", season.UUID))
	return season, nil
}

// RemoveSeason deletes the season and its episodes.
func (service *Service) RemoveSeason(context context.Context, uuid string) error {
	show, season, err := service.loadSeason(context, uuid)
	if err != nil {
		return err
	}

	_, index := show.Season(season.UUID)
	show.Seasons = entity.Remove(show.Seasons, index)

	if err := service.repo.Save(context, show); err != nil {
		return err
	}

	service.deps.Logger.Warn("season_deleted", slog.String("uuid", season.UUID), slog.Int("episodes", len(season.Episodes)))
	return nil
}

// DuplicateSeason copies the season and its episodes into the same show.
// The copy is appended after the last season.
func (service *Service) DuplicateSeason(context context.Context, uuid string) (*Season, error) {
	show, season, err := service.loadSeason(context, uuid)
	if err != nil {
		return nil, err
	}

	copied, err := duplicate.Copy(context, service.deps.Engine, KindSeason, season)
	if err != nil {
		return nil, err
	}
	show.Seasons = append(show.Seasons, copied)

	if err := service.repo.Save(context, show); err != nil {
		return nil, err
	}

	service.deps.Logger.Info("season_duplicated", slog.String("source", season.UUID), slog.String("uuid", copied.UUID))
	return copied, nil
}

func (service *Service) loadSeason(context context.Context, uuid string) (*Show, *Season, error) {
	show, err := facade.LoadByNode(context, service.repo, uuid, SeasonEntity)
	if err != nil {
		return nil, nil, err
	}

	season, _ := show.Season(strings.ToLower(uuid))
	if season == nil {
		return nil, nil, SeasonEntity.NotExist().Err()
	}
	return show, season, nil
}

func (service *Service) validateSeason(request SeasonRequest) *validate.Validator {
	validator := service.deps.Validator()

	validator.Positive(FieldSeasonNumber, request.Number).
		Year(FieldSeasonStartYear, request.StartYear).
		Year(FieldSeasonEndYear, request.EndYear).
		Years(SeasonEntity, request.StartYear, request.EndYear).
		RegisterValue(FieldSeasonLanguage, register.Language, request.Language).
		RegisterValues(FieldSeasonSubtitles, register.Language, request.Subtitles).
		NotNull(FieldSeasonNote, request.Note == nil)

	return validator
}

func applySeason(season *Season, request SeasonRequest) {
	season.Number = request.Number
	season.StartYear = request.StartYear
	season.EndYear = request.EndYear
	season.Language = strings.ToUpper(facade.Text(request.Language))
	season.Subtitles = facade.Keys(request.Subtitles)
	season.Note = facade.Text(request.Note)
}
