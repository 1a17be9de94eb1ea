package connection

import (
	mb "github.com/saeidalz13/battleship-board/models/battleship"
)

type ReqCreateGame struct {
	Ships []mb.Placement `json:"ships"`
}

type ReqFire struct {
	GameUuid string `json:"game_uuid"`
	Row      int    `json:"row"`
	Column   int    `json:"column"`
}

// Used by render, stats and terminate requests
type ReqGame struct {
	GameUuid string `json:"game_uuid"`
}
