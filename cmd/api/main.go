package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/stowlog/backoffice-api/internal/application/usecase"
	"github.com/stowlog/backoffice-api/internal/infrastructure/memory"
	httpRouter "github.com/stowlog/backoffice-api/internal/interfaces/http"
	"github.com/stowlog/backoffice-api/pkg/config"
	"github.com/stowlog/backoffice-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Todo el estado vive en memoria: cada arranque parte de las tres
	// colecciones sembradas, sin persistencia entre reinicios.
	facilityRepo := memory.NewFacilityRepository()
	billingRepo := memory.NewBillingRepository()
	adminRepo := memory.NewAdminRepository()
	sessionRepo := memory.NewSessionRepository()

	if err := memory.Seed(facilityRepo, billingRepo, adminRepo); err != nil {
		log.Fatal().Err(err).Msg("siembra inicial")
	}
	if cfg.Seed.DemoFacilities > 0 {
		if err := memory.SeedDemo(facilityRepo, billingRepo, cfg.Seed.DemoFacilities); err != nil {
			log.Fatal().Err(err).Msg("siembra demo")
		}
		log.Info().Int("count", cfg.Seed.DemoFacilities).Msg("instalaciones demo sembradas")
	}

	facilityUC := usecase.NewFacilityUseCase(facilityRepo, billingRepo, adminRepo, sessionRepo)
	billingUC := usecase.NewBillingUseCase(billingRepo, facilityRepo)
	adminUC := usecase.NewAdminUseCase(adminRepo, facilityRepo)
	configUC := usecase.NewModuleConfigUseCase(sessionRepo, facilityRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stowlog Backoffice API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		FacilityUC: facilityUC,
		BillingUC:  billingUC,
		AdminUC:    adminUC,
		ConfigUC:   configUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
