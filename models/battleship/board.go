package battleship

import (
	"fmt"
	"io"
	"strings"

	cerr "github.com/saeidalz13/battleship-board/internal/error"
)

type Outcome string

const (
	OutcomeMiss Outcome = "Miss!"
	OutcomeHit  Outcome = "Hit!"
	OutcomeSunk Outcome = "Sunk!"
)

const RequiredFleetSize = 10

// Number of ships required per deck count
func RequiredFleet() map[int]int {
	return map[int]int{1: 4, 2: 3, 3: 2, 4: 1}
}

// Board owns the ships. The field index maps every occupied
// cell to the position of its ship in ships; on overlap the
// ship placed last owns the cell.
type Board struct {
	ships []Ship
	field map[Coordinates]int
}

func NewBoard(placements []Placement) *Board {
	board := &Board{
		ships: make([]Ship, 0, len(placements)),
		field: make(map[Coordinates]int, len(placements)*2),
	}

	for _, p := range placements {
		board.ships = append(board.ships, *NewShip(p))
	}

	for idx := range board.ships {
		for _, deck := range board.ships[idx].decks {
			board.field[deck.Coordinates()] = idx
		}
	}
	return board
}

// Indices of the ships that still own at least one cell in the field
func (b *Board) fieldShips() []int {
	indices := make([]int, 0, len(b.ships))

	for idx := range b.ships {
		for _, deck := range b.ships[idx].decks {
			if b.field[deck.Coordinates()] == idx {
				indices = append(indices, idx)
				break
			}
		}
	}
	return indices
}

// Deck count -> number of ships, over the ships reachable through the field
func (b *Board) DeckCounts() map[int]int {
	counts := make(map[int]int, 4)
	for _, idx := range b.fieldShips() {
		counts[b.ships[idx].Len()]++
	}
	return counts
}

func (b *Board) ValidateField() error {
	indices := b.fieldShips()
	if len(indices) != RequiredFleetSize {
		return cerr.ErrFleetSize(RequiredFleetSize, len(indices))
	}

	required := RequiredFleet()
	counts := b.DeckCounts()
	if len(counts) != len(required) {
		return cerr.ErrFleetComposition(required, counts)
	}
	for decks, ships := range required {
		if counts[decks] != ships {
			return cerr.ErrFleetComposition(required, counts)
		}
	}
	return nil
}

// Firing at an empty or off-grid cell is a miss. Repeated shots
// at a dead deck report Hit! (or Sunk!) again.
func (b *Board) Fire(location Coordinates) Outcome {
	idx, prs := b.field[location]
	if !prs {
		return OutcomeMiss
	}

	ship := &b.ships[idx]
	if err := ship.Fire(location.Row, location.Column); err != nil {
		// field and decks are built from the same ranges
		panic(fmt.Sprintf("board index out of sync with ship decks: %s", err))
	}

	if ship.IsDrowned() {
		return OutcomeSunk
	}
	return OutcomeHit
}

func (b *Board) ShipAt(location Coordinates) (*Ship, bool) {
	idx, prs := b.field[location]
	if !prs {
		return nil, false
	}
	return &b.ships[idx], true
}

// Ships in input order, including ones shadowed by overlap
func (b *Board) Ships() []*Ship {
	ships := make([]*Ship, len(b.ships))
	for i := range b.ships {
		ships[i] = &b.ships[i]
	}
	return ships
}

func (b *Board) FleetDestroyed() bool {
	for _, idx := range b.fieldShips() {
		if !b.ships[idx].IsDrowned() {
			return false
		}
	}
	return true
}

func (b *Board) Field() Grid {
	grid := NewGrid(GridSize)

	for loc := range b.field {
		if loc.InGrid() {
			grid[loc.Row][loc.Column] = GlyphShip
		}
	}

	for _, idx := range b.fieldShips() {
		ship := &b.ships[idx]
		for _, deck := range ship.decks {
			loc := deck.Coordinates()
			if !loc.InGrid() {
				continue
			}

			switch {
			case ship.IsDrowned():
				grid[loc.Row][loc.Column] = GlyphSunk
			case !deck.IsAlive():
				grid[loc.Row][loc.Column] = GlyphDamaged
			}
		}
	}
	return grid
}

// Writes the grid one row per line, every cell left-aligned in a
// fixed-width column and separated by a single space.
func (b *Board) Render(w io.Writer) error {
	for _, row := range b.Field() {
		cells := make([]string, len(row))
		for i, glyph := range row {
			cells[i] = fmt.Sprintf("%-*s", cellWidth, glyph)
		}

		if _, err := fmt.Fprintln(w, strings.Join(cells, " ")); err != nil {
			return err
		}
	}
	return nil
}
