package main

import (
	"os"

	"github.com/juninatt/trader-journal/internal/logger"
)

func main() {
	env := os.Getenv("ENV")
	if env != "production" {
		env = "cli"
	}
	logger.Init(env)
	defer logger.Sync()

	if err := newRootCmd(&app{}).Execute(); err != nil {
		os.Exit(1)
	}
}
