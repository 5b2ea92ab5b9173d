// Package config provides configuration for the rules engine and its drivers.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// DefaultSquarePixelSize is the logical pixel size of one board square.
const DefaultSquarePixelSize = 80

// Verbosity levels for the log file.
const (
	Silent     = 0 // nothing
	Results    = 1 // game results and resets
	Commentary = 2 // every commit, revert and promotion
)

// BoardConfig holds the pixel geometry used to map pointer coordinates to
// squares.
type BoardConfig struct {
	// SquarePixelSize is the side of one square in pointer pixels.
	SquarePixelSize int
}

// NewBoardConfig creates a BoardConfig with default values.
func NewBoardConfig() *BoardConfig {
	return &BoardConfig{SquarePixelSize: DefaultSquarePixelSize}
}

// HalfSquare returns half the square size, the offset of a square's centre.
func (b *BoardConfig) HalfSquare() int {
	return b.SquarePixelSize / 2
}

// Validate checks that the board configuration is valid.
func (b *BoardConfig) Validate() error {
	if b.SquarePixelSize <= 0 {
		return fmt.Errorf("square pixel size (%d) must be positive: %w",
			b.SquarePixelSize, errors.ErrInvalidConfig)
	}
	return nil
}

// Config holds all engine configuration.
type Config struct {
	Board *BoardConfig

	Verbosity int // 0=nothing, 1=game results, 2=running commentary

	// LogFile receives log lines at the configured verbosity.
	LogFile io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Board:     NewBoardConfig(),
		Verbosity: Results,
		LogFile:   os.Stderr,
	}
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if c.Board == nil {
		return fmt.Errorf("missing board configuration: %w", errors.ErrInvalidConfig)
	}
	if err := c.Board.Validate(); err != nil {
		return err
	}
	if c.Verbosity < Silent {
		return fmt.Errorf("verbosity (%d) must not be negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes a line to the log file when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
