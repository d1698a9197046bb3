// Command migrate applies the embedded SQL migrations with goose.
//
// Usage:
//
//	migrate [-config path] [up|down|status|version]
//
// The database is taken from DATABASE_URL, CONFIG_PATH or -config. The
// default command is up.
package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/inkhouse/publishing-backend/internal/app"
	"github.com/inkhouse/publishing-backend/internal/config"
	"github.com/inkhouse/publishing-backend/migrations"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	flag.Parse()

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath, true)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		logger.Error("set dialect", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := goose.RunContext(ctx, command, db, "."); err != nil {
		logger.Error("migrate failed", slog.String("command", command), slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("migrate completed", slog.String("command", command))
}
