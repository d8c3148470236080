package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/remedywhisper/internal/api"
	"github.com/terraincognita07/remedywhisper/internal/cli"
	"github.com/terraincognita07/remedywhisper/internal/config"
	"github.com/terraincognita07/remedywhisper/internal/db"
	"github.com/terraincognita07/remedywhisper/internal/security"
	"github.com/terraincognita07/remedywhisper/internal/services"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "remedywhisper",
		Short:        "Natural remedy lookup and symptom tracking service",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCommand(), newCheckCommand(), newExportCommand(), newResetProfileCommand())
	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the reminder dispatcher",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.Logging.Level)
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, logger)
		},
	}
}

func newCheckCommand() *cobra.Command {
	var allergies []string
	var conditions []string

	command := &cobra.Command{
		Use:   "check <symptom>...",
		Short: "Match symptoms against the condition catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunCheckCommand(args, allergies, conditions, cmd.OutOrStdout())
		},
	}
	command.Flags().StringSliceVar(&allergies, "allergy", nil, "allergy to check remedies against (repeatable)")
	command.Flags().StringSliceVar(&conditions, "condition", nil, "pre-existing condition (repeatable)")
	return command
}

func newExportCommand() *cobra.Command {
	var profileID string

	command := &cobra.Command{
		Use:   "export",
		Short: "Print a stored profile as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadOffline()
			if err != nil {
				return err
			}
			return cli.RunExportProfileCommand(cfg.Database.Path, profileID, cmd.OutOrStdout(), time.Now().In(cfg.Location))
		},
	}
	command.Flags().StringVar(&profileID, "profile", "", "profile id")
	_ = command.MarkFlagRequired("profile")
	return command
}

func newResetProfileCommand() *cobra.Command {
	var profileID string

	command := &cobra.Command{
		Use:   "reset-profile",
		Short: "Delete everything stored for a profile (stop the server first)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadOffline()
			if err != nil {
				return err
			}
			return cli.RunResetProfileCommand(cfg.Database.Path, profileID, cmd.OutOrStdout())
		},
	}
	command.Flags().StringVar(&profileID, "profile", "", "profile id")
	_ = command.MarkFlagRequired("profile")
	return command
}

func newLogger(level string) (*zap.Logger, error) {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}
	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = atomicLevel
	return loggerConfig.Build()
}

func serve(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	time.Local = cfg.Location

	database, err := db.OpenSQLite(cfg.Database.Path, logger)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer func() {
		if err := db.Close(database); err != nil {
			logger.Warn("close database failed", zap.Error(err))
		}
	}()

	sessionTTL, err := cfg.SessionTTL()
	if err != nil {
		return err
	}
	sessions, err := security.NewSessionSigner(cfg.Server.SecretKey, sessionTTL)
	if err != nil {
		return fmt.Errorf("session init failed: %w", err)
	}

	chatService, err := buildChatService(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("chat init failed: %w", err)
	}

	directory := services.NewProfileDirectory(db.NewStateRepository(database), logger.Named("profiles"))
	handler, err := api.NewHandler(api.Dependencies{
		Directory:    directory,
		Chat:         chatService,
		Sessions:     sessions,
		Location:     cfg.Location,
		CookieSecure: cfg.Server.CookieSecure,
		Logger:       logger.Named("api"),
	})
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	senders, err := buildReminderSenders(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("reminder senders init failed: %w", err)
	}
	dispatcher := services.NewReminderDispatcher(directory, senders, cfg.Location, logger.Named("reminders"))

	app := newApp(handler)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info("remedywhisper listening",
			zap.String("port", cfg.Server.Port),
			zap.String("db", cfg.Database.Path),
			zap.String("tz", cfg.Location.String()),
			zap.Bool("chat", chatService.Configured()),
			zap.Bool("reminders", dispatcher.Enabled()),
		)
		return app.Listen(":" + cfg.Server.Port)
	})
	group.Go(func() error {
		return dispatcher.Run(groupCtx)
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Warn("server shutdown failed", zap.Error(err))
		}
		return nil
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

func newApp(handler *api.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Remedy Whisper",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{
		AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Content-Type",
		ExposeHeaders:    "Content-Disposition,X-Chat-Remaining",
		AllowCredentials: false,
	}))

	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}

func buildChatService(ctx context.Context, cfg config.Config, logger *zap.Logger) (*services.ChatService, error) {
	provider, err := cfg.ResolvedChatProvider()
	if err != nil {
		return nil, err
	}
	timeout, err := cfg.ChatTimeout()
	if err != nil {
		return nil, err
	}

	chatLogger := logger.Named("chat")
	switch provider {
	case config.ChatProviderOpenRouter:
		openRouter, err := services.NewOpenRouterProvider(services.OpenRouterConfig{
			APIKey:      cfg.Chat.OpenRouterKey,
			Endpoint:    cfg.Chat.OpenRouterURL,
			Model:       cfg.Chat.OpenRouterModel,
			SiteURL:     cfg.Chat.SiteURL,
			SiteName:    cfg.Chat.SiteName,
			Temperature: cfg.Chat.Temperature,
			MaxTokens:   cfg.Chat.MaxTokens,
			Timeout:     timeout,
		}, &http.Client{Timeout: timeout})
		if err != nil {
			return nil, err
		}
		return services.NewChatService(openRouter, cfg.Chat.DailyLimit, chatLogger), nil
	case config.ChatProviderGemini:
		gemini, err := services.NewGeminiProvider(ctx, cfg.Chat.GeminiKey, cfg.Chat.GeminiModel)
		if err != nil {
			return nil, err
		}
		return services.NewChatService(gemini, cfg.Chat.DailyLimit, chatLogger), nil
	default:
		return services.NewChatService(nil, cfg.Chat.DailyLimit, chatLogger), nil
	}
}

// buildReminderSenders returns one sender per configured channel. An empty
// result disables the dispatcher.
func buildReminderSenders(ctx context.Context, cfg config.Config, logger *zap.Logger) ([]services.ReminderSender, error) {
	senders := make([]services.ReminderSender, 0, 3)

	if cfg.Reminders.TelegramBotToken != "" || cfg.Reminders.TelegramChatID != "" {
		telegram, err := services.NewTelegramSender(cfg.Reminders.TelegramBotToken, cfg.Reminders.TelegramChatID, nil)
		if err != nil {
			return nil, err
		}
		senders = append(senders, telegram)
	}
	if cfg.Reminders.SESFromEmail != "" || cfg.Reminders.SESToEmail != "" {
		email, err := services.NewEmailSender(ctx, cfg.Reminders.AWSRegion, cfg.Reminders.SESFromEmail, cfg.Reminders.SESToEmail)
		if err != nil {
			return nil, err
		}
		senders = append(senders, email)
	}
	if cfg.Reminders.LogOnly {
		senders = append(senders, services.NewLogSender(logger.Named("reminders")))
	}
	return senders, nil
}
