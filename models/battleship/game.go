package battleship

import (
	"io"
	"log"
	"sync"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-board/internal/error"
	"github.com/saeidalz13/battleship-board/internal/metrics"
)

type ShotResult struct {
	Location Coordinates
	Outcome  Outcome
	// Cells of the ship that this shot drowned
	SunkShipCells []Coordinates
	IsGameOver    bool
}

type Stats struct {
	Shots     int `json:"shots"`
	Hits      int `json:"hits"`
	Misses    int `json:"misses"`
	ShipsSunk int `json:"ships_sunk"`
	ShipsLeft int `json:"ships_left"`
}

type Game struct {
	uuid       string
	isFinished bool
	board      *Board
	shots      []ShotResult
	mu         sync.Mutex
}

func newGame(board *Board) *Game {
	return &Game{
		uuid:       uuid.NewString()[:6],
		isFinished: false,
		board:      board,
		shots:      make([]ShotResult, 0, GridSize*GridSize),
	}
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) IsFinished() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.isFinished
}

// One shot is one exclusive section: the outcome depends
// on reading and writing the same ship's decks.
func (g *Game) Fire(location Coordinates) (ShotResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.isFinished {
		return ShotResult{}, cerr.ErrGameFinished(g.uuid)
	}

	result := ShotResult{
		Location: location,
		Outcome:  g.board.Fire(location),
	}
	metrics.RecordShot(string(result.Outcome))

	if result.Outcome == OutcomeSunk {
		ship, _ := g.board.ShipAt(location)
		result.SunkShipCells = ship.Cells()

		// repeated shots at a sunk ship report Sunk! again
		if !g.alreadySunk(location) {
			metrics.RecordShipSunk()
		}
	}

	if g.board.FleetDestroyed() {
		g.isFinished = true
		result.IsGameOver = true
		log.Printf("fleet destroyed, game: %s\tshots: %d\n", g.uuid, len(g.shots)+1)
	}

	g.shots = append(g.shots, result)
	return result, nil
}

func (g *Game) alreadySunk(location Coordinates) bool {
	ship, ok := g.board.ShipAt(location)
	if !ok {
		return false
	}

	for _, shot := range g.shots {
		if shot.Outcome != OutcomeSunk {
			continue
		}
		if other, _ := g.board.ShipAt(shot.Location); other == ship {
			return true
		}
	}
	return false
}

func (g *Game) Shots() []ShotResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	shots := make([]ShotResult, len(g.shots))
	copy(shots, g.shots)
	return shots
}

func (g *Game) Stats() Stats {
	g.mu.Lock()
	defer g.mu.Unlock()

	stats := Stats{Shots: len(g.shots)}
	for _, shot := range g.shots {
		if shot.Outcome == OutcomeMiss {
			stats.Misses++
		} else {
			stats.Hits++
		}
	}

	for _, idx := range g.board.fieldShips() {
		if g.board.ships[idx].IsDrowned() {
			stats.ShipsSunk++
		} else {
			stats.ShipsLeft++
		}
	}
	return stats
}

func (g *Game) Field() Grid {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.board.Field()
}

func (g *Game) Render(w io.Writer) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.board.Render(w)
}

func (g *Game) FinishGame() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.isFinished = true
}
