// Package main is the entry point for the API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/supportdesk-ai/ticket-chat-platform/internal/audit"
	"github.com/supportdesk-ai/ticket-chat-platform/internal/bot"
	"github.com/supportdesk-ai/ticket-chat-platform/internal/config"
	"github.com/supportdesk-ai/ticket-chat-platform/internal/handler"
	"github.com/supportdesk-ai/ticket-chat-platform/internal/middleware"
	natsclient "github.com/supportdesk-ai/ticket-chat-platform/internal/nats"
	"github.com/supportdesk-ai/ticket-chat-platform/internal/seed"
	"github.com/supportdesk-ai/ticket-chat-platform/internal/sentiment"
	"github.com/supportdesk-ai/ticket-chat-platform/internal/service"
	"github.com/supportdesk-ai/ticket-chat-platform/internal/store"
	"github.com/supportdesk-ai/ticket-chat-platform/internal/transcript"
	"github.com/supportdesk-ai/ticket-chat-platform/internal/translate"
	"github.com/supportdesk-ai/ticket-chat-platform/pkg/logger"
	"github.com/supportdesk-ai/ticket-chat-platform/pkg/tracing"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	logger.SetGlobal(log)

	log.Info("starting API server")

	// Initialize tracing if enabled
	ctx := context.Background()
	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(ctx, "ticket-chat-platform", cfg.TracingEndpoint)
		if err != nil {
			log.Warn("failed to initialize tracing", zap.Error(err))
		} else {
			defer tracing.Shutdown(ctx, tp)
		}
	}

	// Audit sinks: always the CSV file, plus the NATS audit stream when
	// configured.
	auditLog := audit.NewMultiSink(log)

	csvSink, err := audit.NewCSVSink(cfg.AuditLogFile)
	if err != nil {
		log.Error("failed to open audit log", zap.Error(err))
		os.Exit(1)
	}
	defer csvSink.Close()
	auditLog.Add("csv", csvSink)

	var natsClient *natsclient.Client
	if cfg.NATSURL != "" {
		natsClient, err = natsclient.Connect(natsclient.Config{
			URL:      cfg.NATSURL,
			CAFile:   cfg.NATSCAFile,
			CertFile: cfg.NATSCertFile,
			KeyFile:  cfg.NATSKeyFile,
			Token:    cfg.NATSToken,
		}, log)
		if err != nil {
			log.Error("failed to connect to NATS", zap.Error(err))
			os.Exit(1)
		}
		defer natsClient.Close()

		streamManager := natsclient.NewStreamManager(natsClient)
		if err := streamManager.EnsureStream(ctx); err != nil {
			log.Error("failed to ensure audit stream", zap.Error(err))
			os.Exit(1)
		}
		auditLog.Add("nats", audit.NewStreamSink(streamManager))
	}

	// Translator
	var translator translate.Translator = translate.Disabled{}
	if cfg.OpenAIAPIKey != "" {
		translator, err = translate.NewOpenAITranslator(cfg.OpenAIAPIKey, cfg.TranslateTimeout)
		if err != nil {
			log.Warn("failed to create translator, translation disabled", zap.Error(err))
			translator = translate.Disabled{}
		}
	}

	// Core components
	ticketStore := store.New()
	if cfg.DemoSeed {
		seed.DemoTickets(ticketStore)
		log.Info("demo tickets seeded", zap.Int("count", ticketStore.Count()))
	}

	conversationSvc := service.NewConversationService(
		ticketStore,
		bot.NewDispatcher(),
		sentiment.NewPolarityClassifier(),
		translator,
		transcript.NewPDFRenderer(),
		auditLog,
		log,
	)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(natsClient)
	chatHandler := handler.NewChatHandler(conversationSvc, log)
	ticketHandler := handler.NewTicketHandler(conversationSvc, log)
	translateHandler := handler.NewTranslateHandler(conversationSvc, log)

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Correlation-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health endpoints
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	// Metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))

		r.Post("/chat", chatHandler.Chat)
		r.Get("/get_ticket/{id}", ticketHandler.Get)
		r.Get("/tickets", ticketHandler.List)
		r.Get("/transcript/{id}", ticketHandler.Transcript)
		r.Post("/translate", translateHandler.Translate)
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("server listening", zap.String("port", cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}
