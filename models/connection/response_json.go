package connection

import (
	mb "github.com/saeidalz13/battleship-board/models/battleship"
)

type RespCreateGame struct {
	GameUuid string `json:"game_uuid"`
	Ships    int    `json:"ships"`
}

type RespFire struct {
	Row            int              `json:"row"`
	Column         int              `json:"column"`
	Outcome        mb.Outcome       `json:"outcome"`
	IsGameOver     bool             `json:"is_game_over"`
	SunkShipCoords []mb.Coordinates `json:"sunk_ship_coords,omitempty"`
}

func NewRespFire(result mb.ShotResult) RespFire {
	return RespFire{
		Row:            result.Location.Row,
		Column:         result.Location.Column,
		Outcome:        result.Outcome,
		IsGameOver:     result.IsGameOver,
		SunkShipCoords: result.SunkShipCells,
	}
}

type RespRender struct {
	GameUuid string   `json:"game_uuid"`
	Rows     []string `json:"rows"`
}

type RespStats struct {
	GameUuid string `json:"game_uuid"`
	mb.Stats
}

type RespEndGame struct {
	GameUuid string `json:"game_uuid"`
	Shots    int    `json:"shots"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
