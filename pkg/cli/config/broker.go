package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/vdi-ops/assignctl/pkg/broker"
	"github.com/vdi-ops/assignctl/pkg/domain/interfaces"
)

// Broker holds broker connection configuration
type Broker struct {
	URL      string
	Token    string
	SeedFile string
}

// Flags returns CLI flags for Broker configuration
func (b *Broker) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "broker-url",
			Usage:       "Base URL of the broker admin API",
			Category:    "Broker",
			Sources:     cli.EnvVars("ASSIGNCTL_BROKER_URL"),
			Destination: &b.URL,
		},
		&cli.StringFlag{
			Name:        "broker-token",
			Usage:       "Bearer token for the broker admin API",
			Category:    "Broker",
			Sources:     cli.EnvVars("ASSIGNCTL_BROKER_TOKEN"),
			Destination: &b.Token,
		},
		&cli.StringFlag{
			Name:        "broker-seed",
			Usage:       "YAML seed file for the in-memory broker (testing/offline runs)",
			Category:    "Broker",
			Sources:     cli.EnvVars("ASSIGNCTL_BROKER_SEED"),
			Destination: &b.SeedFile,
		},
	}
}

// Configure creates the broker client. Without a broker URL the in-memory
// broker is used, optionally pre-populated from the seed file.
func (b *Broker) Configure(ctx context.Context) (interfaces.BrokerClient, error) {
	logger := ctxlog.From(ctx)

	if !b.IsConfigured() {
		logger.Warn("Using in-memory broker instead of a broker connection. Assignments will not reach any real machine")

		if b.SeedFile == "" {
			return broker.NewMemory(), nil
		}

		seed, err := broker.LoadSeed(b.SeedFile)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to load broker seed", goerr.V("path", b.SeedFile))
		}
		mem, err := broker.NewMemoryFromSeed(seed)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to build broker from seed", goerr.V("path", b.SeedFile))
		}
		return mem, nil
	}

	if b.SeedFile != "" {
		return nil, goerr.New("broker-seed cannot be combined with broker-url")
	}

	client := broker.NewREST(b.URL, b.Token)
	if err := client.Ping(ctx); err != nil {
		return nil, goerr.Wrap(err, "broker connection check failed", goerr.V("url", b.URL))
	}
	return client, nil
}

// IsConfigured checks if a real broker connection is configured
func (b *Broker) IsConfigured() bool {
	return b.URL != ""
}

// LogValue returns structured log value. The token is never logged.
func (b Broker) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("url", b.URL),
		slog.Bool("has_token", b.Token != ""),
		slog.String("seed", b.SeedFile),
	)
}
