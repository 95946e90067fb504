// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package show

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/catalog/internal/catalog/facade"
	"github.com/taibuivan/catalog/internal/platform/duplicate"
	"github.com/taibuivan/catalog/internal/platform/entity"
	"github.com/taibuivan/catalog/internal/platform/validate"
)

// # Episodes

func (service *Service) GetEpisode(context context.Context, uuid string) (*Episode, error) {
	_, episode, _, err := service.loadEpisode(context, uuid)
	return episode, err
}

// ListEpisodes returns the episodes of a season in order.
func (service *Service) ListEpisodes(context context.Context, seasonUUID string) ([]*Episode, error) {
	season, err := service.GetSeason(context, seasonUUID)
	if err != nil {
		return nil, err
	}
	return season.Episodes, nil
}

// AddEpisode appends a new episode to the season.
func (service *Service) AddEpisode(context context.Context, seasonUUID string, request EpisodeRequest) (*Episode, error) {
	show, season, err := service.loadSeason(context, seasonUUID)
	found, err := facade.Found(err, SeasonEntity)
	if err != nil {
		return nil, err
	}

	if err := facade.Settle(context, service.deps, service.validateEpisode(request), SeasonEntity, found); err != nil {
		return nil, err
	}

	episode := &Episode{}
	applyEpisode(episode, request)

	if err := facade.Attach(context, service.deps, season, episode); err != nil {
		return nil, err
	}
	season.Episodes = append(season.Episodes, episode)

	if err := service.repo.Save(context, show); err != nil {
		return nil, err
	}

	service.deps.Logger.Info("episode_created", slog.String("season", season.UUID), slog.String("uuid", episode.UUID))
	return episode, nil
}

func (service *Service) UpdateEpisode(context context.Context, uuid string, request EpisodeRequest) (*Episode, error) {
	show, episode, _, err := service.loadEpisode(context, uuid)
	found, err := facade.Found(err, EpisodeEntity)
	if err != nil {
		return nil, err
	}

	if err := facade.Settle(context, service.deps, service.validateEpisode(request), EpisodeEntity, found); err != nil {
		return nil, err
	}

	applyEpisode(episode, request)
	service.deps.Stamper.Updated(context, episode)

	if err := service.repo.Save(context, show); err != nil {
		return nil, err
	}

	service.deps.Logger.Info("episode_updated", slog.String("uuid", episode.UUID))
	return episode, nil
}

func (service *Service) RemoveEpisode(context context.Context, uuid string) error {
	show, episode, season, err := service.loadEpisode(context, uuid)
	if err != nil {
		return err
	}

	_, index := entity.Find(season.Episodes, episode.UUID)
	season.Episodes = entity.Remove(season.Episodes, index)

	if err := service.repo.Save(context, show); err != nil {
		return err
	}

	service.deps.Logger.Warn("episode_deleted", slog.String("uuid", episode.UUID))
	return nil
}

// DuplicateEpisode copies the episode into the same season, after the last episode.
func (service *Service) DuplicateEpisode(context context.Context, uuid string) (*Episode, error) {
	show, episode, season, err := service.loadEpisode(context, uuid)
	if err != nil {
		return nil, err
	}

	copied, err := duplicate.Copy(context, service.deps.Engine, KindEpisode, episode)
	if err != nil {
		return nil, err
	}
	season.Episodes = append(season.Episodes, copied)

	if err := service.repo.Save(context, show); err != nil {
		return nil, err
	}

	service.deps.Logger.Info("episode_duplicated", slog.String("source", episode.UUID), slog.String("uuid", copied.UUID))
	return copied, nil
}

func (service *Service) loadEpisode(context context.Context, uuid string) (*Show, *Episode, *Season, error) {
	show, err := facade.LoadByNode(context, service.repo, uuid, EpisodeEntity)
	if err != nil {
		return nil, nil, nil, err
	}

	episode, season, _ := show.Episode(strings.ToLower(uuid))
	if episode == nil {
		return nil, nil, nil, EpisodeEntity.NotExist().Err()
	}
	return show, episode, season, nil
}

func (service *Service) validateEpisode(request EpisodeRequest) *validate.Validator {
	validator := service.deps.Validator()

	validator.Positive(FieldEpisodeNumber, request.Number).
		NotEmptyString(FieldEpisodeName, request.Name).
		NonNegative(FieldEpisodeLength, request.Length).
		NotNull(FieldEpisodeNote, request.Note == nil)

	return validator
}

func applyEpisode(episode *Episode, request EpisodeRequest) {
	episode.Number = request.Number
	episode.Name = facade.Text(request.Name)
	episode.Length = request.Length
	episode.Note = facade.Text(request.Note)
}
