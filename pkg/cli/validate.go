package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"
	"github.com/vdi-ops/assignctl/pkg/service/roster"
)

// cmdValidate checks the roster without touching the broker: header columns
// plus per-record required fields
func cmdValidate() *cli.Command {
	var input string

	return &cli.Command{
		Name:  "validate",
		Usage: "Check a roster file without contacting the broker",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       "Path to the assignment roster CSV",
				Category:    "Roster",
				Required:    true,
				Sources:     cli.EnvVars("ASSIGNCTL_INPUT"),
				Destination: &input,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			requests, err := roster.Load(input)
			if err != nil {
				return err
			}

			incomplete := 0
			for i, req := range requests {
				if missing := req.MissingFields(); len(missing) > 0 {
					incomplete++
					// Row numbers are 1-based and count the header.
					logger.Warn("record is missing required fields",
						slog.Int("row", i+2),
						slog.Any("fields", missing),
					)
				}
			}

			logger.Info("Validation complete",
				slog.Int("records", len(requests)),
				slog.Int("incomplete", incomplete),
			)
			fmt.Fprintf(c.Root().Writer, "validated %d records: %d with missing fields\n", len(requests), incomplete)
			return nil
		},
	}
}
