package battleship

const (
	GridSize        int = 10
	ValidLowerBound int = 0
	ValidUpperBound int = GridSize - 1
)

// Cell glyphs used when rendering the board
const (
	GlyphWater   = "~"
	GlyphShip    = "□"
	GlyphDamaged = "*"
	GlyphSunk    = "X"
)

// Fixed-width column for every rendered cell
const cellWidth = 3

type Coordinates struct {
	Row    int `json:"row" mapstructure:"row" validate:"min=0,max=9"`
	Column int `json:"column" mapstructure:"column" validate:"min=0,max=9"`
}

func NewCoordinates(row, column int) Coordinates {
	return Coordinates{Row: row, Column: column}
}

func (c Coordinates) InGrid() bool {
	return c.Row >= ValidLowerBound && c.Row <= ValidUpperBound &&
		c.Column >= ValidLowerBound && c.Column <= ValidUpperBound
}

type Grid [][]string

// Creates a new grid of water glyphs
func NewGrid(gridSize int) Grid {
	grid := make(Grid, gridSize)

	for i := 0; i < gridSize; i++ {
		grid[i] = make([]string, gridSize)
		for j := range grid[i] {
			grid[i][j] = GlyphWater
		}
	}
	return grid
}
