package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/unigrade/unigrade-api/internal/config"
	"github.com/unigrade/unigrade-api/internal/database"
	"github.com/unigrade/unigrade-api/internal/grading"
	"github.com/unigrade/unigrade-api/internal/handler"
	"github.com/unigrade/unigrade-api/internal/middleware"
	"github.com/unigrade/unigrade-api/internal/models"
	"github.com/unigrade/unigrade-api/internal/repository"
	"github.com/unigrade/unigrade-api/internal/router"
	"github.com/unigrade/unigrade-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Department{},
		&models.Student{},
		&models.Course{},
		&models.Mark{},
		&models.Result{},
		&models.GradeBand{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	ctx := context.Background()

	gradeBandRepo := repository.NewGradeBandRepository(db)
	if err := gradeBandRepo.SeedIfEmpty(ctx, grading.DefaultBands()); err != nil {
		log.Fatalf("failed to seed grading scale: %v", err)
	}

	// The scale is loaded once; editing grade_bands takes effect on the
	// next start and never recomputes already stored results.
	bands, err := gradeBandRepo.List(ctx)
	if err != nil {
		log.Fatalf("failed to load grading scale: %v", err)
	}
	scale := grading.NewScale(bands)

	validate := validator.New(validator.WithRequiredStructEnabled())

	studentRepo := repository.NewStudentRepository(db)
	markRepo := repository.NewMarkRepository(db)
	resultRepo := repository.NewResultRepository(db)

	resultService := service.NewResultService(studentRepo, markRepo, resultRepo, scale, logger)
	rankService := service.NewRankService(resultRepo, logger)

	resultHandler := handler.NewResultHandler(resultService, validate, logger)
	rankHandler := handler.NewRankHandler(rankService, validate, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		ResultHandler: resultHandler,
		RankHandler:   rankHandler,
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
