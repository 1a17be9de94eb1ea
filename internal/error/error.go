package error

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Every fleet that fails ValidateField wraps this sentinel,
// so callers can check for either error kind at once.
var ErrInvalidFleet = errors.New("invalid fleet")

// Wrong number of distinct ships reachable through the board index.
type FleetSizeError struct {
	Expected int
	Count    int
}

func (e *FleetSizeError) Error() string {
	return fmt.Sprintf("the total number of ships should be %d\tgot: %d", e.Expected, e.Count)
}

func (e *FleetSizeError) Is(target error) bool {
	return target == ErrInvalidFleet
}

func ErrFleetSize(expected, count int) error {
	return &FleetSizeError{Expected: expected, Count: count}
}

// Deck-count distribution does not match the required fleet.
// Maps are keyed by deck count and hold the number of ships.
type FleetCompositionError struct {
	Expected map[int]int
	Got      map[int]int
}

func (e *FleetCompositionError) Error() string {
	return fmt.Sprintf("there should be exactly: %s\tgot: %s", formatDeckCounts(e.Expected), formatDeckCounts(e.Got))
}

func (e *FleetCompositionError) Is(target error) bool {
	return target == ErrInvalidFleet
}

func ErrFleetComposition(expected, got map[int]int) error {
	return &FleetCompositionError{Expected: expected, Got: got}
}

func formatDeckCounts(counts map[int]int) string {
	decks := make([]int, 0, len(counts))
	for d := range counts {
		decks = append(decks, d)
	}
	sort.Ints(decks)

	parts := make([]string, 0, len(decks))
	for _, d := range decks {
		parts = append(parts, fmt.Sprintf("%d x %d-deck", counts[d], d))
	}
	return strings.Join(parts, ", ")
}

func ErrDeckNotFound(row, column int) error {
	return fmt.Errorf("ship does not occupy this position\trow: %d\tcolumn: %d", row, column)
}

func ErrGameNotExists(gameUuid string) error {
	return fmt.Errorf("game with this uuid does not exist, uuid: %s", gameUuid)
}

func ErrGameFinished(gameUuid string) error {
	return fmt.Errorf("game is already finished, uuid: %s", gameUuid)
}

func ErrNilPayload() error {
	return fmt.Errorf("the payload is nil or could not be decoded")
}

func ErrEmptyPlacements() error {
	return fmt.Errorf("at least one ship placement is required")
}

func ErrInvalidShot(raw string) error {
	return fmt.Errorf("shot must be formatted as row,column: %q", raw)
}
