package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/mtlprog/turnaround/internal/config"
	"github.com/mtlprog/turnaround/internal/logger"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	globalFlags := []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Aliases: []string{"l"},
			Value:   config.DefaultLogLevel,
			Usage:   "Log level (debug, info, warn, error)",
			EnvVars: []string{"LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "log-format",
			Value:   config.DefaultLogFormat,
			Usage:   "Log format (json, text)",
			EnvVars: []string{"LOG_FORMAT"},
		},
		&cli.StringFlag{
			Name:    "env-file",
			Value:   ".env",
			Usage:   "Optional dotenv file loaded before reading environment variables",
			EnvVars: []string{"ENV_FILE"},
		},
	}

	return &cli.App{
		Name:  "turnaround",
		Usage: "Calculate due dates in working hours (Mon-Fri, 09:00-17:00)",
		Flags: append(globalFlags, serveFlags()...),
		Before: func(c *cli.Context) error {
			loadEnvFile(c)
			logger.Setup(
				logger.ParseLevel(c.String("log-level")),
				logger.ParseFormat(c.String("log-format")),
			)
			return nil
		},
		Commands: []*cli.Command{
			dueCommand(),
			checkCommand(),
			nextDayCommand(),
			batchCommand(),
			serveCommand(),
		},
		Action: runServe,
	}
}

// loadEnvFile loads the dotenv file and re-applies environment values to
// flags the user did not set explicitly, since flag parsing already happened.
func loadEnvFile(c *cli.Context) {
	path := c.String("env-file")
	if path == "" {
		return
	}

	if err := godotenv.Load(path); err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("could not load env file", "path", path, "error", err)
		}
		return
	}

	for flag, env := range map[string]string{
		"log-level":      "LOG_LEVEL",
		"log-format":     "LOG_FORMAT",
		"port":           "PORT",
		"rate-limit":     "RATE_LIMIT_RPS",
		"rate-burst":     "RATE_LIMIT_BURST",
		"max-batch-size": "MAX_BATCH_SIZE",
	} {
		if c.IsSet(flag) {
			continue
		}
		if v, ok := os.LookupEnv(env); ok {
			_ = c.Set(flag, v)
		}
	}
}
