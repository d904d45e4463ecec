package main

import (
	"context"
	"os"

	"restaurant/cmd"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/labstack/gommon/log"
)

func main() {
	logger := log.New("order-manager")
	logger.SetOutput(os.Stderr)

	config, err := cmd.LoadConfig(".env")
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	logger.SetLevel(config.LogLevel)

	session := kernel.NewUUID()
	logger.Infof("session %s started, data dir %s", session, config.DataDir)

	if err = os.MkdirAll(config.DataDir, 0o755); err != nil {
		logger.Fatalf("create data dir %s: %v", config.DataDir, err)
	}

	ctx := context.Background()

	app := cmd.NewCompositionRoot(ctx, config, logger)
	if err = app.CreateMenu(os.Stdin, os.Stdout).Run(ctx); err != nil {
		logger.Errorf("session %s: %v", session, err)
		os.Exit(1)
	}

	logger.Infof("session %s finished", session)
}
