package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/adarshvish/portfolio-api/internal/chat"
	"github.com/adarshvish/portfolio-api/internal/chatbot"
	"github.com/adarshvish/portfolio-api/internal/config"
	"github.com/adarshvish/portfolio-api/internal/llm"
	"github.com/adarshvish/portfolio-api/internal/logger"
	"github.com/adarshvish/portfolio-api/internal/mailer"
	"github.com/adarshvish/portfolio-api/internal/ratelimit"
	"github.com/adarshvish/portfolio-api/internal/web"
)

func main() {
	// 1. Load .env and config
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// 2. Initialize logger
	if err := logger.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		panic("failed to init logger: " + err.Error())
	}
	log := logger.Get()
	log.Info().Str("env", cfg.AppEnv).Int("port", cfg.Port).Msg("starting portfolio api server")

	// 3. Setup context with graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info().Msg("received shutdown signal")
		cancel()
	}()

	// 4. Initialize mail service
	transport := mailer.NewSMTPTransport(cfg.SMTPHost, cfg.SMTPPort, cfg.GmailUser, cfg.GmailAppPassword)
	mailService := mailer.New(mailer.Config{
		Account:     cfg.GmailUser,
		AppPassword: cfg.GmailAppPassword,
		Recipient:   cfg.ContactEmail,
		SendTimeout: time.Duration(cfg.SendTimeoutSec) * time.Second,
	}, transport, log)

	if err := mailService.Initialize(); err != nil {
		// contact form stays down but the rest of the site still serves
		log.Error().Err(err).Msg("mail service initialization failed")
		if cfg.IsProduction() {
			log.Fatal().Msg("refusing to start in production without a working mail service")
		}
	}

	// 5. Load the chatbot knowledge base
	kb := chatbot.Default()
	if cfg.KnowledgeFile != "" {
		loaded, err := chatbot.Load(cfg.KnowledgeFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.KnowledgeFile).Msg("failed to load knowledge file")
		}
		kb = loaded
	}

	// 6. Initialize the chat service, local-only when no API key is set
	var completer chat.Completer
	if cfg.OpenAIAPIKey != "" {
		completer = llm.NewClient(llm.Config{
			Model:       cfg.OpenAIModel,
			APIKey:      cfg.OpenAIAPIKey,
			MaxTokens:   cfg.OpenAIMaxTokens,
			Temperature: float32(cfg.OpenAITemperature),
			Timeout:     time.Duration(cfg.OpenAITimeoutSec) * time.Second,
		})
	} else {
		log.Warn().Msg("OPENAI_API_KEY not set, chat answers locally from the knowledge base")
	}
	chatService := chat.NewService(completer, kb, log)

	// 7. Rate limiter for contact submissions
	limiter := ratelimit.New(cfg.RateLimitMax, time.Duration(cfg.RateLimitWindowMins)*time.Minute)

	// 8. Start the HTTP server
	handler := web.NewHandler(mailService, chatService, limiter, log, cfg.IsProduction())
	server := web.NewServer(&web.Config{Port: cfg.Port, StaticDir: cfg.StaticDir}, handler)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()
	log.Info().Str("url", server.BaseURL()).Msg("http server listening")

	// 9. Wait for shutdown
	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
