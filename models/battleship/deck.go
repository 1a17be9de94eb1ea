package battleship

// One grid cell of a ship. Once a deck is hit
// it stays dead for the rest of the game.
type Deck struct {
	row     int
	column  int
	isAlive bool
}

func newDeck(row, column int) Deck {
	return Deck{row: row, column: column, isAlive: true}
}

func (d *Deck) Row() int {
	return d.row
}

func (d *Deck) Column() int {
	return d.column
}

func (d *Deck) Coordinates() Coordinates {
	return NewCoordinates(d.row, d.column)
}

func (d *Deck) IsAlive() bool {
	return d.isAlive
}

func (d *Deck) hit() {
	d.isAlive = false
}
