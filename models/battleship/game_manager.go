package battleship

import (
	"errors"
	"log"
	"sync"

	cerr "github.com/saeidalz13/battleship-board/internal/error"
	"github.com/saeidalz13/battleship-board/internal/metrics"
)

type GameManager interface {
	CreateGame(placements []Placement) (*Game, error)
	FetchGame(gameUuid string) (*Game, error)
	TerminateGame(gameUuid string)
}

type BattleshipGameManager struct {
	games map[string]*Game
	mu    sync.RWMutex
}

var _ GameManager = (*BattleshipGameManager)(nil)

func NewBattleshipGameManager() *BattleshipGameManager {
	return &BattleshipGameManager{
		games: make(map[string]*Game, 10),
	}
}

// The board is validated once here; a game is only
// registered when its fleet is legal.
func (bgm *BattleshipGameManager) CreateGame(placements []Placement) (*Game, error) {
	if len(placements) == 0 {
		return nil, cerr.ErrEmptyPlacements()
	}

	board := NewBoard(placements)
	if err := board.ValidateField(); err != nil {
		recordValidationFailure(err)
		log.Println("invalid fleet:", err)
		return nil, err
	}

	game := newGame(board)

	bgm.mu.Lock()
	bgm.games[game.uuid] = game
	bgm.mu.Unlock()

	metrics.RecordGameCreated()
	log.Printf("game created: %s\n", game.uuid)
	return game, nil
}

func (bgm *BattleshipGameManager) FetchGame(gameUuid string) (*Game, error) {
	bgm.mu.RLock()
	game, prs := bgm.games[gameUuid]
	bgm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrGameNotExists(gameUuid)
	}

	return game, nil
}

func (bgm *BattleshipGameManager) TerminateGame(gameUuid string) {
	bgm.mu.Lock()
	defer bgm.mu.Unlock()

	if _, prs := bgm.games[gameUuid]; prs {
		delete(bgm.games, gameUuid)
		log.Printf("game terminated: %s\n", gameUuid)
	}
}

func recordValidationFailure(err error) {
	var sizeErr *cerr.FleetSizeError
	if errors.As(err, &sizeErr) {
		metrics.RecordValidationFailure(metrics.ValidationReasonFleetSize)
		return
	}
	metrics.RecordValidationFailure(metrics.ValidationReasonFleetComposition)
}
