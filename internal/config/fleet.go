package config

import (
	"fmt"

	"github.com/spf13/viper"

	cerr "github.com/saeidalz13/battleship-board/internal/error"
	mb "github.com/saeidalz13/battleship-board/models/battleship"
)

type fleetFile struct {
	Ships []mb.Placement `mapstructure:"ships" validate:"dive"`
}

// LoadPlacements reads the "ships" list of a fleet file. The file
// type follows its extension (yaml, yml or json).
//
//	ships:
//	  - start: {row: 0, column: 0}
//	    end: {row: 0, column: 3}
func LoadPlacements(path string) ([]mb.Placement, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read fleet file: %w", err)
	}

	var fleet fleetFile
	if err := v.Unmarshal(&fleet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fleet file: %w", err)
	}

	if len(fleet.Ships) == 0 {
		return nil, cerr.ErrEmptyPlacements()
	}

	// Coordinates outside the grid are rejected here; the
	// board itself accepts whatever it is given.
	if err := NewValidator().Validate(&fleet); err != nil {
		return nil, fmt.Errorf("invalid fleet file: %w", err)
	}

	return fleet.Ships, nil
}
