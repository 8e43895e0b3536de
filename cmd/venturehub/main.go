package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
	"github.com/terraincognita07/venturehub/internal/api"
	"github.com/terraincognita07/venturehub/internal/cli"
	"github.com/terraincognita07/venturehub/internal/config"
	"github.com/terraincognita07/venturehub/internal/db"
	"github.com/terraincognita07/venturehub/internal/i18n"
	"github.com/terraincognita07/venturehub/internal/logging"
	"github.com/terraincognita07/venturehub/internal/services"
	"github.com/terraincognita07/venturehub/internal/store"
)

const usage = `usage: venturehub [command] [flags]

commands:
  serve                            run the HTTP server (default)
  clear-data --yes                 wipe every collection
  import-storage <file>            load a JSON storage dump
  export-storage <file>            write every collection to a JSON file
  create-admin --email [--name]    add an administrator (prompts for a password)
  reset-password --email           print a temporary password for an account
`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	command := "serve"
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}
	switch command {
	case "serve", "clear-data", "import-storage", "export-storage", "create-admin", "reset-password":
	case "help", "-h", "--help":
		fmt.Fprint(out, usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q\n%s", command, usage)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if command == "serve" {
		if err := cfg.ValidateServer(); err != nil {
			return err
		}
	}
	logger := logging.New(cfg.LogLevel, cfg.IsDevelopment())

	database, err := db.OpenSQLite(cfg.DBPath, logger)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer func() {
		if err := db.Close(database); err != nil {
			logger.Warn().Err(err).Msg("close database")
		}
	}()
	st := store.New(db.NewCollectionBackend(database))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	auth := services.NewAuthService(st, store.NewRepositories(st))
	switch command {
	case "clear-data":
		return cli.RunClearDataCommand(ctx, st, args, out)
	case "import-storage":
		return cli.RunImportStorageCommand(ctx, st, args, out)
	case "export-storage":
		return cli.RunExportStorageCommand(ctx, st, args, out)
	case "create-admin":
		return cli.RunCreateAdminCommand(ctx, auth, args, out)
	case "reset-password":
		return cli.RunResetPasswordCommand(ctx, auth, args, out)
	default:
		return serve(ctx, cfg, st, logger)
	}
}

func serve(ctx context.Context, cfg config.Config, st *store.Store, logger zerolog.Logger) error {
	i18nManager, err := i18n.NewManager(cfg.DefaultLanguage)
	if err != nil {
		return fmt.Errorf("i18n init failed: %w", err)
	}

	handler, err := api.NewHandler(st, cfg.SecretKey, i18nManager, logger, cfg.CookieSecure)
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	if cfg.HasFirstAdmin() {
		created, err := handler.AuthService().SeedFirstAdmin(ctx, cfg.FirstAdminName, cfg.FirstAdminEmail, cfg.FirstAdminPassword, time.Now())
		if err != nil {
			return fmt.Errorf("seed first admin: %w", err)
		}
		if created {
			logger.Info().Str("email", cfg.FirstAdminEmail).Msg("first administrator created")
		}
	}

	app := newApp(handler, logger)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	logger.Info().Str("port", cfg.Port).Str("db", cfg.DBPath).Msg("VentureHub listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

func newApp(handler *api.Handler, logger zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "VentureHub",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(api.RequestLogger(logger))
	app.Use(compress.New())
	app.Use(handler.LanguageMiddleware)

	api.RegisterRoutes(app, handler)
	return app
}
