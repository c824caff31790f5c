// Command seed-ref creates the reference taxonomy rows (wilayas, business
// lines, announcement types) in the configured database. Safe to run twice:
// already-populated tables are left alone.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dzadsearch/ads-ingest/internal/common"
	"github.com/dzadsearch/ads-ingest/internal/repository"
)

func main() {
	inmem := flag.Bool("inmem", false, "seed an in-memory SQLite store (smoke test only)")
	sqlitePath := flag.String("sqlite", "", "seed a file-backed SQLite store at this path instead of Postgres")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	switch {
	case *inmem:
		client, err := repository.OpenSQLite(ctx, "", logger)
		if err != nil {
			printError("open in-memory store: %v", err)
			os.Exit(1)
		}
		defer client.Close()
		seed(ctx, repository.NewTaxonomyRepository(client, logger))
	case *sqlitePath != "":
		client, err := repository.OpenSQLite(ctx, "file:"+*sqlitePath+"?_pragma=foreign_keys(1)", logger)
		if err != nil {
			printError("open sqlite store: %v", err)
			os.Exit(1)
		}
		defer client.Close()
		seed(ctx, repository.NewTaxonomyRepository(client, logger))
	default:
		if cfg.Database.DSN == "" {
			printError("DB_URL is not set; pass -inmem or -sqlite for a local store")
			os.Exit(2)
		}
		client, pool, err := repository.Open(ctx, repository.Config(cfg.Database), logger)
		if err != nil {
			printError("connect to database: %v", err)
			os.Exit(1)
		}
		defer repository.Close(client, pool, logger)
		if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
			printError("database health check: %v", err)
			os.Exit(1)
		}
		seed(ctx, repository.NewTaxonomyRepository(client, logger))
	}
}

func seed(ctx context.Context, repo repository.TaxonomyRepository) {
	if err := repo.Seed(ctx); err != nil {
		printError("seed reference tables: %v", err)
		os.Exit(1)
	}

	wilayas, err := repo.LoadWilayas(ctx)
	if err != nil {
		printError("verify wilayas: %v", err)
		os.Exit(1)
	}
	lines, err := repo.LoadBusinessLines(ctx)
	if err != nil {
		printError("verify business lines: %v", err)
		os.Exit(1)
	}
	types, err := repo.LoadAnnouncementTypes(ctx)
	if err != nil {
		printError("verify announcement types: %v", err)
		os.Exit(1)
	}
	fmt.Printf("Reference tables ready: %d wilayas, %d business lines, %d announcement types\n",
		len(wilayas.Entries()), len(lines.Entries()), len(types.Entries()))
}

func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
