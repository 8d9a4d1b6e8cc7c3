package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/camt-convert/cmd/batch"
	"fjacquet/camt-convert/cmd/convert"
	"fjacquet/camt-convert/cmd/report"
	"fjacquet/camt-convert/cmd/root"
	"fjacquet/camt-convert/cmd/validate"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// Load environment variables silently first, then set the global log
	// level before any logger is created.
	loadEnvSilently()
	logrus.SetLevel(parseLogLevel())

	root.Init()

	root.Cmd.AddCommand(convert.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(validate.Cmd)
	root.Cmd.AddCommand(report.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

func parseLogLevel() logrus.Level {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}
	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
