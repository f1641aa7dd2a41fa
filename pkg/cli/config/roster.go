package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"
)

// Roster holds input/output file configuration
type Roster struct {
	Input  string
	Output string
}

// Flags returns CLI flags for Roster configuration
func (r *Roster) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Path to the assignment roster CSV",
			Category:    "Roster",
			Required:    true,
			Sources:     cli.EnvVars("ASSIGNCTL_INPUT"),
			Destination: &r.Input,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Path for the report CSV (default: timestamped file beside the input)",
			Category:    "Roster",
			Sources:     cli.EnvVars("ASSIGNCTL_OUTPUT"),
			Destination: &r.Output,
		},
	}
}

// LogValue returns structured log value
func (r Roster) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("input", r.Input),
		slog.String("output", r.Output),
	)
}
