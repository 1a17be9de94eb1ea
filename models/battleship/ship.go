package battleship

import (
	cerr "github.com/saeidalz13/battleship-board/internal/error"
)

const (
	ShipIntact uint8 = iota
	ShipDamaged
	ShipDrowned
)

// Placement is the input for one ship: the two endpoint
// cells of its run, both inclusive.
type Placement struct {
	Start     Coordinates `json:"start" mapstructure:"start"`
	End       Coordinates `json:"end" mapstructure:"end"`
	IsDrowned bool        `json:"is_drowned,omitempty" mapstructure:"is_drowned"`
}

func NewPlacement(start, end Coordinates) Placement {
	return Placement{Start: start, End: end}
}

type Ship struct {
	Start     Coordinates
	End       Coordinates
	isDrowned bool
	decks     []Deck
}

// Decks cover every cell between start and end in
// row-major order. The shape is not checked here.
func NewShip(p Placement) *Ship {
	ship := &Ship{
		Start:     p.Start,
		End:       p.End,
		isDrowned: p.IsDrowned,
	}

	rows := p.End.Row - p.Start.Row + 1
	cols := p.End.Column - p.Start.Column + 1
	if rows > 0 && cols > 0 {
		ship.decks = make([]Deck, 0, rows*cols)
	}

	for row := p.Start.Row; row <= p.End.Row; row++ {
		for col := p.Start.Column; col <= p.End.Column; col++ {
			ship.decks = append(ship.decks, newDeck(row, col))
		}
	}
	return ship
}

// Returns the deck at this exact position, if the ship has one.
func (sh *Ship) Deck(row, column int) (*Deck, bool) {
	for i := range sh.decks {
		if sh.decks[i].row == row && sh.decks[i].column == column {
			return &sh.decks[i], true
		}
	}
	return nil, false
}

func (sh *Ship) Fire(row, column int) error {
	deck, ok := sh.Deck(row, column)
	if !ok {
		return cerr.ErrDeckNotFound(row, column)
	}
	deck.hit()

	for i := range sh.decks {
		if sh.decks[i].isAlive {
			return nil
		}
	}
	sh.isDrowned = true
	return nil
}

func (sh *Ship) IsDrowned() bool {
	return sh.isDrowned
}

func (sh *Ship) Len() int {
	return len(sh.decks)
}

// Copy of the decks; changing it does not affect the ship.
func (sh *Ship) Decks() []Deck {
	decks := make([]Deck, len(sh.decks))
	copy(decks, sh.decks)
	return decks
}

func (sh *Ship) Cells() []Coordinates {
	cells := make([]Coordinates, 0, len(sh.decks))
	for i := range sh.decks {
		cells = append(cells, sh.decks[i].Coordinates())
	}
	return cells
}

func (sh *Ship) State() uint8 {
	if sh.isDrowned {
		return ShipDrowned
	}
	for i := range sh.decks {
		if !sh.decks[i].isAlive {
			return ShipDamaged
		}
	}
	return ShipIntact
}
