package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/oakmont-ms/library-volunteers/backend/internal/config"
	"github.com/oakmont-ms/library-volunteers/backend/internal/repository"
	"github.com/oakmont-ms/library-volunteers/backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "operation (1: insert random monitors, 2: insert default periods, 3: insert random shifts, 4: insert sample calendar, 5: issue check-in code)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("failed to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("failed to connect to database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 0:
		slog.Error("no operation given")
	case 1:
		if n <= 0 {
			slog.Error("invalid monitor count")
			return
		}
		cnt := 0
		for i := 0; i < n; i++ {
			monitor, err := seed.GenerateRandomMonitor(cfg.Seed.MonitorPassword)
			if err != nil {
				slog.Error("failed to generate monitor", slog.String("error", err.Error()))
				continue
			}
			if err := repo.CreateUser(monitor); err != nil {
				slog.Error("failed to insert monitor", slog.String("error", err.Error()))
				continue
			}
			cnt++
		}
		slog.Info("monitors inserted", slog.Int("count", cnt))
	case 2:
		if err := repo.ReplacePeriodDefinitions(seed.DefaultPeriodDefinitions()); err != nil {
			slog.Error("failed to insert period definitions", slog.String("error", err.Error()))
			return
		}
		slog.Info("default period definitions inserted")
	case 3:
		summaries, err := repo.GetMonitorSummaries()
		if err != nil {
			slog.Error("failed to list monitors", slog.String("error", err.Error()))
			return
		}
		ids := make([]int64, 0, len(summaries))
		for id := range summaries {
			ids = append(ids, id)
		}
		created, err := seed.SeedShifts(repo, ids, n)
		if err != nil {
			slog.Error("failed to insert shifts", slog.String("error", err.Error()))
			return
		}
		slog.Info("shifts inserted", slog.Int("count", created))
	case 4:
		if err := seed.SeedCalendar(repo); err != nil {
			slog.Error("failed to insert sample calendar", slog.String("error", err.Error()))
			return
		}
		slog.Info("sample calendar inserted")
	case 5:
		code, err := seed.SeedCheckinCode(repo, time.Duration(cfg.CheckinCode.Expiration)*time.Second)
		if err != nil {
			slog.Error("failed to issue check-in code", slog.String("error", err.Error()))
			return
		}
		slog.Info("check-in code issued", slog.String("code", code.Code))
	default:
		slog.Error("unknown operation", slog.Int("op", op))
	}
}
