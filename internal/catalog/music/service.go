// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package music

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/catalog/internal/catalog/facade"
	"github.com/taibuivan/catalog/internal/platform/entity"
	"github.com/taibuivan/catalog/internal/platform/store"
	"github.com/taibuivan/catalog/internal/platform/validate"
	"github.com/taibuivan/catalog/pkg/pagination"
)

// NewRepository binds music to a store backend.
func NewRepository(backend store.Backend) *store.Repository[*Music] {
	return store.NewRepository(backend, Kind, func() *Music { return &Music{} })
}

type Service struct {
	repo *store.Repository[*Music]
	deps facade.Deps
}

func NewService(repo *store.Repository[*Music], deps facade.Deps) *Service {
	return &Service{repo: repo, deps: deps}
}

func (service *Service) Get(context context.Context, uuid string) (*Music, error) {
	return facade.Load(context, service.repo, uuid, Entity)
}

func (service *Service) Search(context context.Context, filter Filter) (pagination.Result[*Music], error) {
	criteria := store.Criteria{}
	if filter.Name != "" {
		criteria.Contains = map[string]string{"name": filter.Name}
	}
	return facade.Search(context, service.repo, criteria, filter.Page, filter.Limit)
}

func (service *Service) Add(context context.Context, request Request) (*Music, error) {
	if err := service.validate(request).Err(); err != nil {
		return nil, err
	}

	music := &Music{}
	apply(music, request)

	if err := facade.Create(context, service.deps, service.repo, music); err != nil {
		return nil, err
	}

	service.deps.Logger.Info("music_created", slog.String("uuid", music.UUID), slog.String("name", music.Name))
	return music, nil
}

// Update overwrites the fields of the music. Songs are left untouched.
func (service *Service) Update(context context.Context, uuid string, request Request) (*Music, error) {
	music, err := service.Get(context, uuid)
	found, err := facade.Found(err, Entity)
	if err != nil {
		return nil, err
	}

	if err := facade.Settle(context, service.deps, service.validate(request), Entity, found); err != nil {
		return nil, err
	}

	apply(music, request)
	service.deps.Stamper.Updated(context, music)

	if err := service.repo.Save(context, music); err != nil {
		return nil, err
	}

	service.deps.Logger.Info("music_updated", slog.String("uuid", music.UUID))
	return music, nil
}

func (service *Service) Remove(context context.Context, uuid string) error {
	if err := facade.Remove(context, service.repo, uuid, Entity); err != nil {
		return err
	}

	service.deps.Logger.Warn("music_deleted", slog.String("uuid", uuid))
	return nil
}

func (service *Service) Duplicate(context context.Context, uuid string) (*Music, error) {
	music, err := facade.Duplicate(context, service.deps, service.repo, uuid, Entity)
	if err != nil {
		return nil, err
	}

	service.deps.Logger.Info("music_duplicated", slog.String("source", uuid), slog.String("uuid", music.UUID), slog.Int("songs", len(music.Songs)), slog.Int("length", music.Length()))
	return music, nil
}

// Count returns the number of stored music.
func (service *Service) Count(context context.Context) (int, error) {
	return service.repo.Count(context)
}

// # Songs

func (service *Service) GetSong(context context.Context, uuid string) (*Song, error) {
	_, song, err := service.loadSong(context, uuid)
	return song, err
}

// ListSongs returns the songs of a music in order.
func (service *Service) ListSongs(context context.Context, musicUUID string) ([]*Song, error) {
	music, err := service.Get(context, musicUUID)
	if err != nil {
		return nil, err
	}
	return music.Songs, nil
}

func (service *Service) AddSong(context context.Context, musicUUID string, request SongRequest) (*Song, error) {
	music, err := service.Get(context, musicUUID)
	found, err := facade.Found(err, Entity)
	if err != nil {
		return nil, err
	}

	if err := facade.Settle(context, service.deps, service.validateSong(request), Entity, found); err != nil {
		return nil, err
	}

	song := &Song{}
	applySong(song, request)

	if err := facade.Attach(context, service.deps, music, song); err != nil {
		return nil, err
	}
	music.Songs = append(music.Songs, song)

	if err := service.repo.Save(context, music); err != nil {
		return nil, err
	}

	service.deps.Logger.Info("song_created", slog.String("music", music.UUID), slog.String("uuid", song.UUID))
	return song, nil
}

func (service *Service) UpdateSong(context context.Context, uuid string, request SongRequest) (*Song, error) {
	music, song, err := service.loadSong(context, uuid)
	found, err := facade.Found(err, SongEntity)
	if err != nil {
		return nil, err
	}

	if err := facade.Settle(context, service.deps, service.validateSong(request), SongEntity, found); err != nil {
		return nil, err
	}

	applySong(song, request)
	service.deps.Stamper.Updated(context, song)

	if err := service.repo.Save(context, music); err != nil {
		return nil, err
	}

	service.deps.Logger.Info("song_updated", slog.String("uuid", song.UUID))
	return song, nil
}

func (service *Service) RemoveSong(context context.Context, uuid string) error {
	music, song, err := service.loadSong(context, uuid)
	if err != nil {
		return err
	}

	_, index := entity.Find(music.Songs, song.UUID)
	music.Songs = entity.Remove(music.Songs, index)

	if err := service.repo.Save(context, music); err != nil {
		return err
	}

	service.deps.Logger.Warn("song_deleted", slog.String("uuid", song.UUID))
	return nil
}

func (service *Service) loadSong(context context.Context, uuid string) (*Music, *Song, error) {
	music, err := facade.LoadByNode(context, service.repo, uuid, SongEntity)
	if err != nil {
		return nil, nil, err
	}

	song, _ := entity.Find(music.Songs, strings.ToLower(uuid))
	if song == nil {
		return nil, nil, SongEntity.NotExist().Err()
	}
	return music, song, nil
}

// # Validation

func (service *Service) validate(request Request) *validate.Validator {
	validator := service.deps.Validator()

	validator.NotEmptyString(FieldName, request.Name).
		NotNull(FieldWikiEn, request.WikiEn == nil).
		NotNull(FieldWikiCz, request.WikiCz == nil).
		Positive(FieldMediaCount, request.MediaCount).
		NotNull(FieldNote, request.Note == nil)

	return validator
}

func (service *Service) validateSong(request SongRequest) *validate.Validator {
	validator := service.deps.Validator()

	validator.NotEmptyString(FieldSongName, request.Name).
		NonNegative(FieldSongLength, request.Length).
		NotNull(FieldSongNote, request.Note == nil)

	return validator
}

func apply(music *Music, request Request) {
	music.Name = facade.Text(request.Name)
	music.WikiEn = facade.Text(request.WikiEn)
	music.WikiCz = facade.Text(request.WikiCz)
	music.MediaCount = request.MediaCount
	music.Note = facade.Text(request.Note)
}

func applySong(song *Song, request SongRequest) {
	song.Name = facade.Text(request.Name)
	song.Length = request.Length
	song.Note = facade.Text(request.Note)
}
