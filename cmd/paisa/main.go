package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/google/subcommands"

	"paisa/internal/assistant"
	"paisa/internal/cli"
	"paisa/internal/config"
	"paisa/internal/currency"
	"paisa/internal/logger"
	"paisa/internal/services"
	"paisa/internal/session"
	"paisa/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Env)
	defer logger.Sync()

	sess := session.Load(cfg.TokenFile)
	httpClient := &http.Client{Timeout: cfg.RequestTimeout}

	client := store.NewClient(store.Config{
		BaseURL:       cfg.APIURL,
		RetryAttempts: cfg.RetryAttempts,
		RetryDelay:    cfg.RetryDelay,
	}, httpClient, sess, sess.Clear)

	fmtr := currency.NewFormatter(cfg.Currency)
	engine := assistant.NewEngine(fmtr)
	service := services.NewExpenseService(client, assistant.NewConversation(engine))

	app := &cli.App{
		Config:  cfg,
		Session: sess,
		Store:   client,
		Service: service,
		Format:  fmtr,
		Out:     os.Stdout,
		In:      os.Stdin,
	}

	commander := subcommands.NewCommander(flag.CommandLine, "paisa")
	cli.Register(commander, app)
	flag.Parse()

	os.Exit(int(commander.Execute(context.Background())))
}
