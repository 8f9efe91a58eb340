package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/trottparts/garage-api/internal/config"
	"github.com/trottparts/garage-api/internal/database/schema"
	"github.com/trottparts/garage-api/migrations"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: migrate <up|down|status|init>")
	fmt.Fprintln(os.Stderr, "  up      apply all pending migrations")
	fmt.Fprintln(os.Stderr, "  down    roll back the latest migration")
	fmt.Fprintln(os.Stderr, "  status  print migration status")
	fmt.Fprintln(os.Stderr, "  init    apply the full schema to a fresh development database")
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := sql.Open("pgx", cfg.GetDBConnString())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := run(ctx, db, os.Args[1]); err != nil {
		log.Fatalf("migrate %s: %v", os.Args[1], err)
	}
}

func run(ctx context.Context, db *sql.DB, command string) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	switch command {
	case "up":
		return goose.UpContext(ctx, db, ".")
	case "down":
		return goose.DownContext(ctx, db, ".")
	case "status":
		return goose.StatusContext(ctx, db, ".")
	case "init":
		// Fresh databases can skip migration replay and load the schema directly.
		_, err := db.ExecContext(ctx, schema.SchemaSQL)
		return err
	default:
		usage()
		return nil
	}
}
