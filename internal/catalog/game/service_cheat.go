// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package game

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/catalog/internal/catalog/facade"
	"github.com/taibuivan/catalog/internal/platform/errcode"
	"github.com/taibuivan/catalog/internal/platform/validate"
)

// # Cheats

func (service *Service) GetCheat(context context.Context, uuid string) (*Cheat, error) {
	_, cheat, err := service.loadCheat(context, uuid)
	return cheat, err
}

// FindCheat returns the cheat of the game, or CHEAT_NOT_EXIST if it has none.
func (service *Service) FindCheat(context context.Context, gameUUID string) (*Cheat, error) {
	game, err := service.Get(context, gameUUID)
	if err != nil {
		return nil, err
	}

	if game.Cheat == nil {
		return nil, CheatEntity.NotExist().Err()
	}
	return game.Cheat, nil
}

/*
AddCheat attaches a new cheat to a game.

Returns:
  - *Cheat: The stored cheat with its data
  - error: CHEAT_ALREADY_EXIST (422) if the game already has a cheat,
    GAME_NOT_EXIST (404) reported together with the cheat violations
*/
func (service *Service) AddCheat(context context.Context, gameUUID string, request CheatRequest) (*Cheat, error) {
	game, err := service.Get(context, gameUUID)
	found, err := facade.Found(err, Entity)
	if err != nil {
		return nil, err
	}

	validator := service.validateCheat(request).
		Check(CheatEntity.AlreadyExist(), "", found && game.Cheat != nil)
	if err := facade.Settle(context, service.deps, validator, Entity, found); err != nil {
		return nil, err
	}

	cheat := &Cheat{}
	applyCheat(cheat, request)
	for _, data := range request.Data {
		cheat.Data = append(cheat.Data, &CheatData{Action: facade.Text(data.Action), Description: facade.Text(data.Description)})
	}

	if err := facade.Attach(context, service.deps, game, cheat); err != nil {
		return nil, err
	}
	game.Cheat = cheat

	if err := service.repo.Save(context, game); err != nil {
		return nil, err
	}

	service.deps.Logger.Info("cheat_created", slog.String("game", game.UUID), slog.String("uuid", cheat.UUID), slog.Int("data", len(cheat.Data)))
	return cheat, nil
}

// UpdateCheat overwrites the settings and data of a cheat.
// Data lines are matched by position like movie media.
func (service *Service) UpdateCheat(context context.Context, uuid string, request CheatRequest) (*Cheat, error) {
	game, cheat, err := service.loadCheat(context, uuid)
	found, err := facade.Found(err, CheatEntity)
	if err != nil {
		return nil, err
	}

	if err := facade.Settle(context, service.deps, service.validateCheat(request), CheatEntity, found); err != nil {
		return nil, err
	}

	applyCheat(cheat, request)
	service.deps.Stamper.Updated(context, cheat)

	lines := make([]*CheatData, 0, len(request.Data))
	for index, line := range request.Data {
		action, description := facade.Text(line.Action), facade.Text(line.Description)

		if index < len(cheat.Data) {
			data := cheat.Data[index]
			if data.Action != action || data.Description != description {
				data.Action, data.Description = action, description
				service.deps.Stamper.Updated(context, data)
			}
			lines = append(lines, data)
			continue
		}

		data := &CheatData{Action: action, Description: description}
		if err := facade.Attach(context, service.deps, cheat, data); err != nil {
			return nil, err
		}
		lines = append(lines, data)
	}
	cheat.Data = lines

	if err := service.repo.Save(context, game); err != nil {
		return nil, err
	}

	service.deps.Logger.Info("cheat_updated", slog.String("uuid", cheat.UUID))
	return cheat, nil
}

func (service *Service) RemoveCheat(context context.Context, uuid string) error {
	game, cheat, err := service.loadCheat(context, uuid)
	if err != nil {
		return err
	}

	game.Cheat = nil
	if err := service.repo.Save(context, game); err != nil {
		return err
	}

	service.deps.Logger.Warn("cheat_deleted", slog.String("uuid", cheat.UUID))
	return nil
}

func (service *Service) loadCheat(context context.Context, uuid string) (*Game, *Cheat, error) {
	game, err := facade.LoadByNode(context, service.repo, uuid, CheatEntity)
	if err != nil {
		return nil, nil, err
	}

	if game.Cheat == nil || game.Cheat.UUID != strings.ToLower(uuid) {
		return nil, nil, CheatEntity.NotExist().Err()
	}
	return game, game.Cheat, nil
}

// validateCheat runs the local cheat rules. Data line defects are reported
// once per kind, not once per line.
func (service *Service) validateCheat(request CheatRequest) *validate.Validator {
	validator := service.deps.Validator()

	validator.NotNull(FieldGameSetting, request.GameSetting == nil).
		NotNull(FieldCheatSetting, request.CheatSetting == nil)

	actions := make([]*string, 0, len(request.Data))
	descriptions := make([]*string, 0, len(request.Data))
	for _, line := range validate.Elements(validator, FieldData, request.Data) {
		actions = append(actions, line.Action)
		descriptions = append(descriptions, line.Description)
	}

	lineRule(validator, FieldAction, actions)
	lineRule(validator, FieldDescription, descriptions)
	return validator
}

func lineRule(validator *validate.Validator, field errcode.Field, values []*string) {
	null, empty := false, false
	for _, value := range values {
		null = null || value == nil
		empty = empty || (value != nil && strings.TrimSpace(*value) == "")
	}

	validator.Check(field.Null(), field.JSON, null).
		Check(field.Empty(), field.JSON, empty)
}

func applyCheat(cheat *Cheat, request CheatRequest) {
	cheat.GameSetting = facade.Text(request.GameSetting)
	cheat.CheatSetting = facade.Text(request.CheatSetting)
}
