// Package config holds the options that are set according to the
// command line. A Config is built once by the cli package and passed
// explicitly to whatever needs it.
package config

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/replit/autoloanc/internal/loan"
)

// Output formats accepted by --format.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Config is the set of runtime options for one invocation.
type Config struct {
	// Verbosity is the number of times --verbose was given.
	Verbosity int `validate:"gte=0"`

	// Format is one of FormatTable, FormatJSON or FormatYAML.
	Format string `validate:"oneof=table json yaml"`

	// Step is the number of months between schedule rows.
	Step int `validate:"gt=0"`

	// Summary prints the loan amount and rate above the table. It is
	// only valid with FormatTable.
	Summary bool

	// Pager sends wide tables through less when stdout is a terminal.
	Pager bool
}

// Default returns the options used when no flags are given.
func Default() Config {
	return Config{
		Format: FormatTable,
		Step:   loan.DefaultStep,
	}
}

var validate = validator.New()

var ErrSummaryNeedsTable = errors.New("--summary can only be used with --format=table")

// Validate reports the first invalid option.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Summary && c.Format != FormatTable {
		return ErrSummaryNeedsTable
	}
	return nil
}
