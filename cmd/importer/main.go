package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/workclock/attendance-core-go/internal/config"
	"github.com/workclock/attendance-core-go/internal/pkg/cron"
	"github.com/workclock/attendance-core-go/internal/pkg/database"
	"github.com/workclock/attendance-core-go/internal/pkg/i18n"
	"github.com/workclock/attendance-core-go/internal/repository/mongodb"
	attendanceService "github.com/workclock/attendance-core-go/internal/service/attendance"
	holidayService "github.com/workclock/attendance-core-go/internal/service/holiday"
	importerService "github.com/workclock/attendance-core-go/internal/service/importer"
)

func main() {
	once := flag.Bool("once", false, "run a single folder scan and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.App.LogLevel)

	if err := i18n.Init(cfg.App.DefaultLocale); err != nil {
		slog.Error("Failed to initialize i18n", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	loc := cfg.Location()

	db, err := database.NewMongoDB(ctx, cfg.Database.URI, cfg.Database.Name)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			slog.Error("Failed to close database", "error", err)
		}
	}()

	attendanceRepo, err := mongodb.NewAttendanceRepository(ctx, db)
	if err != nil {
		slog.Error("Failed to init attendance repository", "error", err)
		os.Exit(1)
	}
	employeeRepo, err := mongodb.NewEmployeeRepository(ctx, db)
	if err != nil {
		slog.Error("Failed to init employee repository", "error", err)
		os.Exit(1)
	}
	holidayRepo, err := mongodb.NewHolidayRepository(ctx, db)
	if err != nil {
		slog.Error("Failed to init holiday repository", "error", err)
		os.Exit(1)
	}
	importFileRepo, err := mongodb.NewImportFileRepository(ctx, db)
	if err != nil {
		slog.Error("Failed to init import file repository", "error", err)
		os.Exit(1)
	}

	holidaySvc := holidayService.NewHolidayService(holidayRepo, loc)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, holidaySvc, loc)
	importerSvc := importerService.NewImporterService(attendanceSvc, importFileRepo, cfg.Importer.LogDir, loc)

	jobs := cron.NewImporterJobs(importerSvc, attendanceSvc, cfg.Importer.LogDir, cfg.Importer.ScanInterval, loc)

	scheduler := cron.NewScheduler()
	jobs.RegisterJobs(scheduler)

	if *once {
		scheduler.RunOnce(ctx)
		return
	}

	scheduler.Start()
	defer scheduler.Stop()

	slog.Info("Importer daemon running",
		"log_dir", cfg.Importer.LogDir,
		"scan_interval", cfg.Importer.ScanInterval,
		"timezone", cfg.App.Timezone)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	slog.Info("Shutting down")
}

func setupLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
