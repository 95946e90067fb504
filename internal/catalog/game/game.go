// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package game

import (
	"github.com/taibuivan/catalog/internal/catalog/facade"
	"github.com/taibuivan/catalog/internal/catalog/register"
	"github.com/taibuivan/catalog/internal/platform/duplicate"
	"github.com/taibuivan/catalog/internal/platform/entity"
	"github.com/taibuivan/catalog/internal/platform/errcode"
)

// Store and metric kinds.
const (
	Kind      = "game"
	KindCheat = "cheat"
)

// Game is an aggregate root owning at most one cheat.
type Game struct {
	entity.Base
	Name          string `json:"name"`
	WikiEn        string `json:"wiki_en"`
	WikiCz        string `json:"wiki_cz"`
	MediaCount    int    `json:"media_count"`
	Format        string `json:"format"`
	Crack         bool   `json:"crack"`
	SerialKey     bool   `json:"serial_key"`
	Patch         bool   `json:"patch"`
	Trainer       bool   `json:"trainer"`
	TrainerData   bool   `json:"trainer_data"`
	ModifiedFiles bool   `json:"modified_files"`
	Saves         bool   `json:"saves"`
	OtherData     string `json:"other_data"`
	Note          string `json:"note"`
	Cheat         *Cheat `json:"cheat"`
}

// Cheat belongs to exactly one game and owns its data lines.
type Cheat struct {
	entity.Base
	GameSetting  string       `json:"game_setting"`
	CheatSetting string       `json:"cheat_setting"`
	Data         []*CheatData `json:"data"`
}

// CheatData is one action of a cheat.
type CheatData struct {
	entity.Base
	Action      string `json:"action"`
	Description string `json:"description"`
}

// # Requests

type Request struct {
	Name          *string `json:"name"`
	WikiEn        *string `json:"wiki_en"`
	WikiCz        *string `json:"wiki_cz"`
	MediaCount    int     `json:"media_count"`
	Format        *string `json:"format"`
	Crack         bool    `json:"crack"`
	SerialKey     bool    `json:"serial_key"`
	Patch         bool    `json:"patch"`
	Trainer       bool    `json:"trainer"`
	TrainerData   bool    `json:"trainer_data"`
	ModifiedFiles bool    `json:"modified_files"`
	Saves         bool    `json:"saves"`
	OtherData     *string `json:"other_data"`
	Note          *string `json:"note"`
}

type CheatRequest struct {
	GameSetting  *string             `json:"game_setting"`
	CheatSetting *string             `json:"cheat_setting"`
	Data         []*CheatDataRequest `json:"data"`
}

type CheatDataRequest struct {
	Action      *string `json:"action"`
	Description *string `json:"description"`
}

// Filter holds the parameters of a paged game search.
type Filter struct {
	Name   string
	Format string
	Page   int
	Limit  int
}

// # Violations

var (
	Entity = errcode.NewEntity("GAME", "Game")

	FieldName       = Entity.Field("name", "Name")
	FieldWikiEn     = Entity.Field("wiki_en", "URL to english Wikipedia page about game")
	FieldWikiCz     = Entity.Field("wiki_cz", "URL to czech Wikipedia page about game")
	FieldMediaCount = Entity.Field("media_count", "Count of media")
	FieldFormat     = Entity.Field("format", "Format")
	FieldOtherData  = Entity.Field("other_data", "Other data")
	FieldNote       = Entity.Field("note", "Note")

	CheatEntity = errcode.NewEntity("CHEAT", "Cheat")

	FieldGameSetting  = CheatEntity.Field("game_setting", "Setting for game")
	FieldCheatSetting = CheatEntity.Field("cheat_setting", "Setting for cheat")
	FieldData         = CheatEntity.Field("data", "Data")

	CheatDataEntity = errcode.NewEntity("CHEAT_DATA", "Cheat's data")

	FieldAction      = CheatDataEntity.Field("action", "Action")
	FieldDescription = CheatDataEntity.Field("description", "Description")
)

// # Document

func (game *Game) Descendants() []*entity.Base {
	if game.Cheat == nil {
		return nil
	}

	nodes := []*entity.Base{&game.Cheat.Base}
	for _, data := range game.Cheat.Data {
		nodes = append(nodes, &data.Base)
	}
	return nodes
}

func (game *Game) Facets() map[string]string {
	return map[string]string{"name": game.Name, "format": game.Format}
}

// # Duplication

func (game *Game) Copy() duplicate.Node {
	copied := *game
	copied.Base = entity.Base{}
	copied.Cheat = nil
	return &copied
}

func (game *Game) Children() []duplicate.Node {
	if game.Cheat == nil {
		return nil
	}
	return []duplicate.Node{game.Cheat}
}

func (game *Game) Adopt(child duplicate.Node) { game.Cheat = child.(*Cheat) }

func (game *Game) References() []duplicate.Reference {
	return facade.RegisterReferences(register.GameFormat, FieldFormat.JSON, game.Format)
}

func (cheat *Cheat) Copy() duplicate.Node {
	return &Cheat{GameSetting: cheat.GameSetting, CheatSetting: cheat.CheatSetting}
}

func (cheat *Cheat) Children() []duplicate.Node {
	children := make([]duplicate.Node, 0, len(cheat.Data))
	for _, data := range cheat.Data {
		children = append(children, data)
	}
	return children
}

func (cheat *Cheat) Adopt(child duplicate.Node) { cheat.Data = append(cheat.Data, child.(*CheatData)) }

func (data *CheatData) Copy() duplicate.Node {
	return &CheatData{Action: data.Action, Description: data.Description}
}

func (data *CheatData) Children() []duplicate.Node { return nil }
func (data *CheatData) Adopt(duplicate.Node)       {}
