// Inquest server — provides the HTTP API, runs the investigation
// engine, and manages the report generation worker pool.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/caseops/inquest/pkg/api"
	"github.com/caseops/inquest/pkg/cleanup"
	"github.com/caseops/inquest/pkg/config"
	"github.com/caseops/inquest/pkg/database"
	"github.com/caseops/inquest/pkg/engine"
	"github.com/caseops/inquest/pkg/events"
	"github.com/caseops/inquest/pkg/investigation"
	"github.com/caseops/inquest/pkg/llm"
	"github.com/caseops/inquest/pkg/queue"
	"github.com/caseops/inquest/pkg/report"
	"github.com/caseops/inquest/pkg/services"
	"github.com/caseops/inquest/pkg/storage"
	"github.com/caseops/inquest/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	podID := resolvePodID()
	slog.Info("Starting Inquest",
		"version", version.Full(),
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan requeue: report jobs this pod was
	// generating when it last died go back to pending.
	if err := queue.RequeueStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to requeue startup orphans", "error", err)
		// Non-fatal — the periodic orphan scan will catch them
	}

	// 4. Storage layer
	caseRepo := storage.NewEntCaseRepository(dbClient.Client)
	reportStore := storage.NewEntReportStore(dbClient.Client)
	evidenceStore := storage.NewEntEvidenceStore(dbClient.Client)

	fileStore, err := storage.NewLocalFileStore(cfg.Storage.EvidenceDir)
	if err != nil {
		slog.Error("Failed to initialize evidence file store",
			"dir", cfg.Storage.EvidenceDir, "error", err)
		os.Exit(1)
	}

	// 5. LLM client. Optional: without it the engine answers from
	// templates and reports skip enhancement.
	// Note: grpc.NewClient uses lazy dialing; actual connection happens
	// on first RPC call.
	var llmClient llm.Client
	var summarizer *llm.Summarizer
	if cfg.LLM.Enabled() {
		grpcClient, err := llm.NewGRPCClient(cfg.LLM.Addr, cfg.LLM.Model)
		if err != nil {
			slog.Error("Failed to initialize LLM client", "addr", cfg.LLM.Addr, "error", err)
			os.Exit(1)
		}
		llmClient = llm.NewRetryingClient(grpcClient, llm.RetryPolicy{
			MaxAttempts:    cfg.LLM.MaxAttempts,
			PerCallTimeout: cfg.LLM.PerCallTimeout,
			BaseBackoff:    cfg.LLM.BaseBackoff,
			MaxBackoff:     cfg.LLM.MaxBackoff,
		})
		summarizer = llm.NewSummarizer(llmClient)
		defer func() {
			if err := llmClient.Close(); err != nil {
				slog.Error("Error closing LLM client", "error", err)
			}
		}()
		slog.Info("LLM client initialized", "addr", cfg.LLM.Addr, "model", cfg.LLM.Model)
	} else {
		slog.Warn("No LLM service configured, running in degraded template-only mode")
	}

	// 6. Streaming infrastructure: NOTIFY publisher, dedicated LISTEN
	// connection, and the in-process dispatcher for SSE fan-out.
	publisher := events.NewNotifyPublisher(dbClient.DB())
	dispatcher := events.NewDispatcher()

	notifyListener := events.NewNotifyListener(dbConfig.DSN(), dispatcher)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	dispatcher.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 7. Engine and domain services
	settings := cfg.Engine.Settings()
	var summarizerPort investigation.Summarizer
	if summarizer != nil {
		summarizerPort = summarizer
	}
	eng := engine.New(caseRepo, llmClient, publisher, summarizerPort, settings, nil)

	caseService := services.NewCaseService(caseRepo, nil)
	investigationService := services.NewInvestigationService(caseRepo, eng, settings, nil)
	evidenceService := services.NewEvidenceService(caseRepo, evidenceStore, fileStore, cfg.Storage.MaxUploadBytes, nil)
	reportGenerator := report.NewGenerator(reportStore, llmClient, nil)
	slog.Info("Services initialized")

	// 8. Start worker pool (before HTTP server)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, reportGenerator, caseRepo, publisher)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 9. Retention cleanup
	cleanupService := cleanup.NewService(cfg.Retention, caseRepo)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 10. HTTP server
	server := api.NewServer(dbClient, caseService, investigationService, evidenceService, reportGenerator, workerPool, dispatcher)
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      server.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Inquest started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown: drain the worker pool first, then the HTTP
	// server.
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete report jobs will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
