package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ess-chatbot/config"
	_ "ess-chatbot/docs" // Swagger docs
	"ess-chatbot/internal/adminmail"
	"ess-chatbot/internal/auth"
	"ess-chatbot/internal/chat"
	chatUC "ess-chatbot/internal/chat/usecase"
	jsonfileRepo "ess-chatbot/internal/employee/repository/jsonfile"
	"ess-chatbot/internal/httpserver"
	"ess-chatbot/internal/intent"
	"ess-chatbot/pkg/gemini"
	"ess-chatbot/pkg/gmail"
	"ess-chatbot/pkg/log"
	"ess-chatbot/pkg/voyage"
)

// @title       ESS Chatbot API
// @description Internal HR self-service chatbot: embedding-based intent routing with a stateful admin mail flow.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting ESS Chatbot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Embedding client + intent detector
	embedder, err := voyage.New(cfg.Voyage.APIKey, voyage.WithModel(cfg.Voyage.Model))
	if err != nil {
		logger.Error(ctx, "Failed to initialize Voyage client: ", err)
		return
	}

	catalog, err := intent.LoadCatalog(cfg.Intent.CatalogPath)
	if err != nil {
		logger.Error(ctx, "Failed to load intent catalog: ", err)
		return
	}

	detector, err := intent.New(ctx, logger, embedder, catalog, cfg.Intent.CacheSize, cfg.Intent.CacheTTL)
	if err != nil {
		logger.Error(ctx, "Failed to initialize intent detector: ", err)
		return
	}
	logger.Infof(ctx, "Intent catalog loaded: %d general, %d private",
		len(detector.GeneralIntents()), len(detector.PrivateIntents()))

	// 4. Employee directory + auth
	directory, err := jsonfileRepo.New(logger, cfg.Directory.EmployeesPath)
	if err != nil {
		logger.Error(ctx, "Failed to load employee directory: ", err)
		return
	}
	authManager := auth.New(logger, directory)

	// 5. Gmail delivery
	mailClient, err := gmail.NewClientFromCredentialsFile(ctx, cfg.Gmail.CredentialsPath)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Gmail client: ", err)
		logger.Warn(ctx, "→ Run `go run scripts/gmail-auth/main.go` to generate token.json")
		return
	}
	logger.Info(ctx, "✅ Gmail delivery initialized")

	// 6. Admin mail flow
	pendingStore := adminmail.NewPendingStore()
	adminMail := adminmail.New(logger, directory, mailClient, pendingStore, cfg.Chat.MailSubject, cfg.Gmail.FromAddress)

	// 7. LLM responder (optional)
	var responder *gemini.Client
	if cfg.Gemini.APIKey != "" {
		responder = gemini.NewClient(cfg.Gemini.APIKey, gemini.WithModel(cfg.Gemini.Model))
		logger.Info(ctx, "✅ Gemini responder initialized")
	} else {
		logger.Warn(ctx, "GEMINI_API_KEY missing, falling back to canned replies")
	}

	// 8. Chat orchestrator
	chatUseCase := chatUC.New(logger, detector, cfg.Intent.Threshold, authManager, adminMail, responderOrNil(responder))

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ChatUseCase:     chatUseCase,
		RateLimitPerMin: cfg.Chat.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// responderOrNil keeps a missing Gemini client an untyped nil so the
// orchestrator's nil check works.
func responderOrNil(c *gemini.Client) chat.Responder {
	if c == nil {
		return nil
	}
	return c
}
