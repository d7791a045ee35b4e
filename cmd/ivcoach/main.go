package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/pthm/ivcoach/internal/cmd"
)

func main() {
	// Optional .env for local development (emotion service URL etc.)
	_ = godotenv.Load()

	if err := fang.Execute(context.Background(), cmd.RootCmd); err != nil {
		os.Exit(1)
	}
}
