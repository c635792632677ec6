package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/feedgate/feed"
	"github.com/dmitrymomot/feedgate/pkg/config"
	"github.com/dmitrymomot/feedgate/pkg/logger"
)

// lintConfig carries environment defaults for flag values, so CI
// pipelines can configure feedlint without repeating flags.
type lintConfig struct {
	Workers   int    `env:"FEEDLINT_WORKERS" envDefault:"0"`
	Output    string `env:"FEEDLINT_OUTPUT" envDefault:"text"`
	Strict    bool   `env:"FEEDLINT_STRICT" envDefault:"false"`
	LogFormat string `env:"FEEDLINT_LOG_FORMAT" envDefault:"text"`
}

func validateCmd() *cli.Command {
	var cfg lintConfig
	config.MustLoad(&cfg)

	return &cli.Command{
		Name:  "validate",
		Usage: "Validate a feed file and report every violation per record",
		Description: `Reads a JSON or YAML array of feed records, validates each record
against the full schema, and prints a per-record report. Every
violation in a record is reported in one pass; records are validated
concurrently and results keep input order.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "Path to the feed file (JSON or YAML array of records)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Input format: json or yaml (default: inferred from extension)",
			},
			&cli.StringFlag{
				Name:  "output",
				Value: cfg.Output,
				Usage: "Report format: text or json",
			},
			&cli.IntFlag{
				Name:  "workers",
				Value: int64(cfg.Workers),
				Usage: "Concurrent validation workers (0 = number of CPUs)",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Value: cfg.Strict,
				Usage: "Exit non-zero when any record is invalid",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.New(
				logger.WithFormat(logger.Format(cfg.LogFormat)),
				logger.WithAttr(slog.String("run_id", uuid.NewString())),
			)

			path := cmd.String("file")
			records, err := loadRecords(path, cmd.String("format"))
			if err != nil {
				return fmt.Errorf("failed to load feed from %q: %w", path, err)
			}
			log.Info("feed loaded", slog.String("file", path), slog.Int("records", len(records)))

			results, err := feed.ValidateBatch(ctx, records, int(cmd.Int("workers")))
			if err != nil {
				return fmt.Errorf("validation aborted: %w", err)
			}

			invalid := 0
			for _, r := range results {
				if !r.Valid() {
					invalid++
				}
			}
			log.Info("validation finished",
				slog.Int("valid", len(results)-invalid),
				slog.Int("invalid", invalid),
			)

			switch cmd.String("output") {
			case "json":
				if err := renderJSON(os.Stdout, results); err != nil {
					return err
				}
			case "text":
				renderText(os.Stdout, results)
			default:
				return fmt.Errorf("unknown output format: %q", cmd.String("output"))
			}

			if cmd.Bool("strict") && invalid > 0 {
				return cli.Exit(fmt.Sprintf("%d of %d records invalid", invalid, len(results)), 1)
			}
			return nil
		},
	}
}
