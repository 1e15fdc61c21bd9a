package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	authclient "max.ks1230/expense-tracker/internal/clients/auth"
	expensesclient "max.ks1230/expense-tracker/internal/clients/expenses"
	"max.ks1230/expense-tracker/internal/clients/tg"
	"max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/auth"
	"max.ks1230/expense-tracker/internal/model/expenses"
	"max.ks1230/expense-tracker/internal/model/messages"
	"max.ks1230/expense-tracker/internal/model/storage"
	"max.ks1230/expense-tracker/internal/tracing"
)

const shutdownTimeout = 5 * time.Second

func main() {
	defer logger.Sync()
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger.Info("Bot init - start")

	conf, err := config.New(ctx)
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	closer, err := tracing.Init(conf.Tracing())
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer closer.Close()

	sessions, err := storage.NewSessionStorage(ctx, conf)
	if err != nil {
		logger.Fatal("failed to init session storage:", zap.Error(err))
	}

	authClient, err := authclient.New(conf.Auth())
	if err != nil {
		logger.Fatal("failed to init auth client:", zap.Error(err))
	}
	expensesClient, err := expensesclient.New(conf.Expenses())
	if err != nil {
		logger.Fatal("failed to init expenses client:", zap.Error(err))
	}

	client, err := tg.New(conf.Telegram(), conf.App().MessageTimeout())
	if err != nil {
		logger.Fatal("failed to init client:", zap.Error(err))
	}

	msgService, err := messages.NewService(
		client,
		auth.NewAuthenticator(authClient, sessions),
		expenses.NewSync(sessions, expensesClient),
		conf.App(),
	)
	if err != nil {
		logger.Fatal("failed to init message service:", zap.Error(err))
	}

	metricsServer := &http.Server{
		Addr:              conf.Metrics().Addr(),
		Handler:           promhttp.Handler(),
		ReadHeaderTimeout: shutdownTimeout,
	}

	logger.Info("Bot init - end")

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("metrics server listening", zap.String("addr", metricsServer.Addr))
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		return metricsServer.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		client.ListenUpdates(gCtx, msgService)
		return nil
	})

	if err = g.Wait(); err != nil {
		logger.Error("bot stopped with error", zap.Error(err))
	}
}
