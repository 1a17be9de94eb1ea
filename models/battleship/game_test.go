package battleship

import (
	"bytes"
	"sync"
	"testing"

	cerr "github.com/saeidalz13/battleship-board/internal/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameManagerCreateGame(t *testing.T) {
	tests := []struct {
		name        string
		placements  []Placement
		expectedErr error
	}{
		{
			name:       "legal fleet",
			placements: legalFleet(),
		},
		{
			name:        "no placements",
			placements:  nil,
			expectedErr: cerr.ErrEmptyPlacements(),
		},
		{
			name:        "nine ships",
			placements:  legalFleet()[:9],
			expectedErr: cerr.ErrFleetSize(RequiredFleetSize, 9),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			bgm := NewBattleshipGameManager()

			game, err := bgm.CreateGame(test.placements)
			if test.expectedErr != nil {
				require.Error(t, err)
				assert.Equal(t, test.expectedErr.Error(), err.Error())
				assert.Nil(t, game)
				return
			}

			require.NoError(t, err)
			assert.Len(t, game.Uuid(), 6)

			fetched, err := bgm.FetchGame(game.Uuid())
			require.NoError(t, err)
			assert.Same(t, game, fetched)
		})
	}
}

func TestGameManagerTerminateGame(t *testing.T) {
	bgm := NewBattleshipGameManager()
	game, err := bgm.CreateGame(legalFleet())
	require.NoError(t, err)

	bgm.TerminateGame(game.Uuid())

	_, err = bgm.FetchGame(game.Uuid())
	assert.EqualError(t, err, cerr.ErrGameNotExists(game.Uuid()).Error())

	// terminating twice is harmless
	bgm.TerminateGame(game.Uuid())
}

func TestGameFire(t *testing.T) {
	game := newGame(NewBoard(legalFleet()))

	result, err := game.Fire(NewCoordinates(9, 9))
	require.NoError(t, err)
	assert.Equal(t, OutcomeMiss, result.Outcome)
	assert.Empty(t, result.SunkShipCells)

	result, err = game.Fire(NewCoordinates(0, 5))
	require.NoError(t, err)
	assert.Equal(t, OutcomeHit, result.Outcome)

	result, err = game.Fire(NewCoordinates(0, 6))
	require.NoError(t, err)
	assert.Equal(t, OutcomeSunk, result.Outcome)
	assert.Equal(t, []Coordinates{{0, 5}, {0, 6}}, result.SunkShipCells)
	assert.False(t, result.IsGameOver)

	stats := game.Stats()
	assert.Equal(t, Stats{Shots: 3, Hits: 2, Misses: 1, ShipsSunk: 1, ShipsLeft: 9}, stats)
	assert.Len(t, game.Shots(), 3)
}

func TestGameFireUntilFleetDestroyed(t *testing.T) {
	board := NewBoard(legalFleet())
	game := newGame(board)

	var last ShotResult
	for _, ship := range board.Ships() {
		for _, cell := range ship.Cells() {
			var err error
			last, err = game.Fire(cell)
			require.NoError(t, err)
		}
	}

	assert.True(t, last.IsGameOver)
	assert.Equal(t, OutcomeSunk, last.Outcome)
	assert.True(t, game.IsFinished())

	_, err := game.Fire(NewCoordinates(9, 9))
	assert.EqualError(t, err, cerr.ErrGameFinished(game.Uuid()).Error())

	stats := game.Stats()
	assert.Equal(t, 20, stats.Shots)
	assert.Equal(t, RequiredFleetSize, stats.ShipsSunk)
	assert.Zero(t, stats.ShipsLeft)
}

func TestGameRender(t *testing.T) {
	game := newGame(NewBoard([]Placement{placement(0, 0, 0, 0)}))
	_, err := game.Fire(NewCoordinates(0, 0))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, game.Render(&buf))
	assert.Equal(t, GlyphSunk, game.Field()[0][0])
	assert.Contains(t, buf.String(), GlyphSunk)
}

func TestGameConcurrentFire(t *testing.T) {
	board := NewBoard(legalFleet())
	game := newGame(board)

	cells := make([]Coordinates, 0, 20)
	for _, ship := range board.Ships() {
		cells = append(cells, ship.Cells()...)
	}

	var wg sync.WaitGroup
	for _, cell := range cells {
		wg.Add(1)
		go func(c Coordinates) {
			defer wg.Done()
			if _, err := game.Fire(c); err != nil {
				t.Error(err)
			}
		}(cell)
	}
	wg.Wait()

	assert.True(t, game.IsFinished())
	assert.Equal(t, RequiredFleetSize, game.Stats().ShipsSunk)
}
