package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	authclient "max.ks1230/expense-tracker/internal/clients/auth"
	"max.ks1230/expense-tracker/internal/clients/console"
	expensesclient "max.ks1230/expense-tracker/internal/clients/expenses"
	"max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/auth"
	"max.ks1230/expense-tracker/internal/model/expenses"
	"max.ks1230/expense-tracker/internal/model/messages"
	"max.ks1230/expense-tracker/internal/model/storage"
	"max.ks1230/expense-tracker/internal/tracing"
)

func main() {
	defer logger.Sync()
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

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

	client := console.New(os.Stdin, os.Stdout)
	msgService, err := messages.NewService(
		client,
		auth.NewAuthenticator(authClient, sessions),
		expenses.NewSync(sessions, expensesClient),
		conf.App(),
	)
	if err != nil {
		logger.Fatal("failed to init message service:", zap.Error(err))
	}

	if err = client.ListenInput(ctx, msgService); err != nil {
		logger.Error("console stopped with error", zap.Error(err))
	}
}
