package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/coursehub/coursehub-backend/internal/config"
	"github.com/coursehub/coursehub-backend/internal/database"
	"github.com/coursehub/coursehub-backend/internal/logger"
	"github.com/coursehub/coursehub-backend/internal/report"
	"github.com/coursehub/coursehub-backend/internal/repository"
	"github.com/coursehub/coursehub-backend/internal/service"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "Validate the sheet without writing students")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: seed-students [flags] <students.xlsx>")
		fmt.Fprintln(os.Stderr, "The first sheet needs the columns index_number, first_name, last_name and optionally email.")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	file, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open sheet")
	}
	defer file.Close()

	students, rep, err := report.ParseStudents(file)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read students")
	}

	fmt.Printf("=== %d rows, %d valid ===\n", rep.TotalRows, rep.ValidRows)
	for _, e := range rep.Errors {
		fmt.Printf("  row %d %s: %s\n", e.Row, e.IndexNumber, e.Error)
	}
	if *dryRun || len(students) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	studentService := service.NewStudentService(repository.NewStudentRepository(pool), log)

	written, err := studentService.Import(ctx, students)
	if err != nil {
		log.Fatal().Err(err).Int("written", written).Msg("Import stopped")
	}
	fmt.Printf("Imported %d students\n", written)
}
