package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/inventario-client/internal/application/feedback"
	"github.com/jhoicas/inventario-client/internal/application/report"
	"github.com/jhoicas/inventario-client/internal/application/session"
	"github.com/jhoicas/inventario-client/internal/application/store"
	"github.com/jhoicas/inventario-client/internal/infrastructure/localstore"
	infrapdf "github.com/jhoicas/inventario-client/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-client/internal/infrastructure/restapi"
	"github.com/jhoicas/inventario-client/internal/infrastructure/sessionfile"
	httpRouter "github.com/jhoicas/inventario-client/internal/interfaces/http"
	"github.com/jhoicas/inventario-client/pkg/config"
	"github.com/jhoicas/inventario-client/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Storage.Backend).
		Msg("iniciando aplicación")

	secret := cfg.Session.Secret
	if secret == "" {
		if cfg.App.Env != "development" {
			log.Fatal().Msg("SESSION_SECRET es obligatorio fuera de development")
		}
		secret = "inventario-dev-secret"
		log.Warn().Msg("SESSION_SECRET vacío, usando secreto de desarrollo")
	}

	// Backend de cuentas y productos: colaborador REST o archivo local
	var accounts session.AccountService
	var productsSvc store.ProductService
	switch cfg.Storage.Backend {
	case "local":
		ls, err := localstore.Open(
			filepath.Join(cfg.Storage.DataDir, "inventario.json"),
			cfg.Storage.MaxLocalBytes, log,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("abrir almacenamiento local")
		}
		accounts, productsSvc = ls, ls
	default:
		api := restapi.New(cfg.API.BaseURL, log)
		accounts, productsSvc = api, api
	}

	records := sessionfile.New(
		filepath.Join(cfg.Storage.DataDir, "session.jwt"),
		secret, cfg.Session.Issuer,
		time.Duration(cfg.Session.TTLHours)*time.Hour,
	)

	productStore := store.New(productsSvc, log)
	sessions := session.NewManager(accounts, records, productStore, log)
	productStore.SetIdentity(sessions) // dependencia mutua, se enlaza al final

	fb := feedback.New(0)
	reports := report.NewUseCase(infrapdf.NewMarotoReportRenderer())

	// Restaurar sesión persistida y disparar el primer fetch
	sessions.Restore(context.Background())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Sessions: sessions,
		Store:    productStore,
		Reports:  reports,
		Feedback: fb,
		DataDir:  cfg.Storage.DataDir,
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
