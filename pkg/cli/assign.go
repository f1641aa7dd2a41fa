package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"
	"github.com/vdi-ops/assignctl/pkg/cli/config"
	"github.com/vdi-ops/assignctl/pkg/domain/model"
	"github.com/vdi-ops/assignctl/pkg/service/report"
	"github.com/vdi-ops/assignctl/pkg/service/roster"
	"github.com/vdi-ops/assignctl/pkg/usecase"
)

func cmdAssign() *cli.Command {
	var (
		rosterCfg config.Roster
		brokerCfg config.Broker
	)

	flags := joinFlags(
		rosterCfg.Flags(),
		brokerCfg.Flags(),
	)

	return &cli.Command{
		Name:  "assign",
		Usage: "Reconcile the roster against the broker and write a report",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting assignment run",
				slog.Any("roster", rosterCfg),
				slog.Any("broker", brokerCfg),
			)

			// Precondition failures (unreadable roster, missing columns,
			// broker configuration) abort here, before any record is touched.
			requests, err := roster.Load(rosterCfg.Input)
			if err != nil {
				return err
			}

			brokerClient, err := brokerCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer brokerClient.Close()

			outcomes := usecase.NewAssign(brokerClient).Process(ctx, requests)

			outputPath := rosterCfg.Output
			if outputPath == "" {
				outputPath = report.DefaultPath(rosterCfg.Input, time.Now())
			}
			if err := report.Save(outputPath, outcomes); err != nil {
				return err
			}

			summary := model.Summarize(outcomes)
			logger.Info("Assignment run complete",
				slog.Any("summary", summary),
				slog.String("report", outputPath),
			)
			fmt.Fprintln(c.Root().Writer, summary.String())
			return nil
		},
	}
}
