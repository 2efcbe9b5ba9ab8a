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

	"shopify-sync/internal/adapters/journal"
	"shopify-sync/internal/adapters/shopify"
	"shopify-sync/internal/api"
	"shopify-sync/internal/api/handlers"
	"shopify-sync/internal/app/usecases"
	"shopify-sync/internal/config"
	infrahttp "shopify-sync/internal/infra/http"
	"shopify-sync/internal/infra/mysql"
	"shopify-sync/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	httpClient := infrahttp.NewClient(cfg.Shopify.Timeout)
	notifier := logging.NewTelegramNotifier(cfg.TelegramBot, httpClient)
	logger, err := logging.NewLogger(cfg.LogLevel, notifier)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}

	shopifyClient := shopify.NewClient(cfg.Shopify, httpClient)
	directory := usecases.NewMarketDirectory(shopifyClient, logger)
	location, err := usecases.NewLocationResolver(shopifyClient, cfg.Shopify.LocationID, logger)
	if err != nil {
		logger.LogError("location resolver init failed", err)
		os.Exit(1)
	}
	reconciler := usecases.NewReconciler(
		shopifyClient,
		shopifyClient,
		shopifyClient,
		shopifyClient,
		directory,
		location,
		logger,
	)

	var syncJournal journal.Service
	if cfg.Mysql.Enabled() {
		db, err := mysql.New(cfg.Mysql)
		if err != nil {
			logger.LogError("mysql init failed", err)
			os.Exit(1)
		}
		defer db.Close()

		mysqlJournal := journal.NewMySQL(db, logger)
		if err := mysqlJournal.EnsureSchema(context.Background()); err != nil {
			logger.LogError("journal schema init failed", err)
			os.Exit(1)
		}
		syncJournal = mysqlJournal
	}

	syncHandler := handlers.NewSyncHandler(reconciler, syncJournal, logger)
	router := api.SetupRouter(syncHandler, logger, cfg.Webhook.Secret)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Log("sync server listening on port " + cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.LogError("server error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.LogError("shutdown error", err)
	}
	logger.Log("sync server stopped")
}
