package main

import (
	"log/slog"
	"os"
	"sylcal/src-server/cli"
	"sylcal/src-server/utils"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

func init() {
	utils.LogLevel.Set(slog.LevelDebug)
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      utils.LogLevel,
			TimeFormat: time.RFC1123Z,
		}),
	))
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env loaded", "error", err)
	}
}

func main() {
	os.Exit(cli.Execute())
}
