package api

import (
	"encoding/json"
	"strings"

	cerr "github.com/saeidalz13/battleship-board/internal/error"
	mb "github.com/saeidalz13/battleship-board/models/battleship"
	mc "github.com/saeidalz13/battleship-board/models/connection"
)

// Every incoming valid request will have this structure
// The request then is handled based on its signal code
type Request struct {
	payload []byte
}

func NewRequest(payload ...[]byte) Request {
	if len(payload) > 1 {
		panic("cannot accept more than one payload")
	}

	req := Request{}
	if len(payload) != 0 {
		req.payload = payload[0]
	}
	return req
}

func (r Request) HandleCreateGame(gameManager mb.GameManager) (*mb.Game, mc.Message[mc.RespCreateGame]) {
	resp := mc.NewMessage[mc.RespCreateGame](mc.CodeCreateGame)

	var reqCreateGame mc.Message[mc.ReqCreateGame]
	if err := json.Unmarshal(r.payload, &reqCreateGame); err != nil {
		resp.AddError(err.Error(), cerr.ErrNilPayload().Error())
		return nil, resp
	}

	game, err := gameManager.CreateGame(reqCreateGame.Payload.Ships)
	if err != nil {
		resp.AddError(err.Error(), "fleet rejected")
		return nil, resp
	}

	resp.AddPayload(mc.RespCreateGame{GameUuid: game.Uuid(), Ships: len(reqCreateGame.Payload.Ships)})
	return game, resp
}

func (r Request) HandleFire(gameManager mb.GameManager) (*mb.Game, mc.Message[mc.RespFire]) {
	resp := mc.NewMessage[mc.RespFire](mc.CodeFire)

	var reqFire mc.Message[mc.ReqFire]
	if err := json.Unmarshal(r.payload, &reqFire); err != nil {
		resp.AddError(err.Error(), cerr.ErrNilPayload().Error())
		return nil, resp
	}

	game, err := gameManager.FetchGame(reqFire.Payload.GameUuid)
	if err != nil {
		resp.AddError(err.Error(), "")
		return nil, resp
	}

	result, err := game.Fire(mb.NewCoordinates(reqFire.Payload.Row, reqFire.Payload.Column))
	if err != nil {
		resp.AddError(err.Error(), "")
		return game, resp
	}

	resp.AddPayload(mc.NewRespFire(result))
	return game, resp
}

func (r Request) HandleRender(gameManager mb.GameManager) mc.Message[mc.RespRender] {
	resp := mc.NewMessage[mc.RespRender](mc.CodeRender)

	game, err := r.fetchGame(gameManager)
	if err != nil {
		resp.AddError(err.Error(), "")
		return resp
	}

	var sb strings.Builder
	if err := game.Render(&sb); err != nil {
		resp.AddError(err.Error(), "")
		return resp
	}

	resp.AddPayload(mc.RespRender{
		GameUuid: game.Uuid(),
		Rows:     strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n"),
	})
	return resp
}

func (r Request) HandleStats(gameManager mb.GameManager) mc.Message[mc.RespStats] {
	resp := mc.NewMessage[mc.RespStats](mc.CodeStats)

	game, err := r.fetchGame(gameManager)
	if err != nil {
		resp.AddError(err.Error(), "")
		return resp
	}

	resp.AddPayload(mc.RespStats{GameUuid: game.Uuid(), Stats: game.Stats()})
	return resp
}

func (r Request) HandleTerminateGame(gameManager mb.GameManager) mc.Message[mc.NoPayload] {
	resp := mc.NewMessage[mc.NoPayload](mc.CodeTerminateGame)

	game, err := r.fetchGame(gameManager)
	if err != nil {
		resp.AddError(err.Error(), "")
		return resp
	}

	gameManager.TerminateGame(game.Uuid())
	return resp
}

func (r Request) fetchGame(gameManager mb.GameManager) (*mb.Game, error) {
	var reqGame mc.Message[mc.ReqGame]
	if err := json.Unmarshal(r.payload, &reqGame); err != nil {
		return nil, cerr.ErrNilPayload()
	}

	return gameManager.FetchGame(reqGame.Payload.GameUuid)
}
