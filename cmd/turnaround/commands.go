package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mtlprog/turnaround/internal/batch"
	"github.com/mtlprog/turnaround/internal/config"
	"github.com/mtlprog/turnaround/internal/domain"
	"github.com/mtlprog/turnaround/internal/handler"
	"github.com/mtlprog/turnaround/internal/middleware"
	"github.com/mtlprog/turnaround/internal/service"
)

func newService() *service.DueDateService {
	return service.NewDueDateService(domain.DefaultCalendar(), config.DefaultMaxBatchSize)
}

func dueCommand() *cli.Command {
	return &cli.Command{
		Name:  "due",
		Usage: "Print the due date for a submission",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "submitted-at",
				Aliases:  []string{"s"},
				Usage:    "Submission time, e.g. 2024-07-12T16:59 (local time) or RFC 3339",
				Required: true,
			},
			&cli.IntFlag{
				Name:     "hours",
				Aliases:  []string{"H"},
				Usage:    "Turnaround in working hours",
				Required: true,
			},
		},
		Action: runDue,
	}
}

func runDue(c *cli.Context) error {
	submittedAt, err := domain.ParseTimestamp(c.String("submitted-at"), time.Local)
	if err != nil {
		return err
	}

	dueDate, err := newService().Calculate(c.Context, domain.DueDateRequest{
		SubmittedAt:     submittedAt,
		TurnaroundHours: c.Int("hours"),
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, domain.FormatTimestamp(dueDate.DueAt))
	return err
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Report whether a moment is a working day and a working hour",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "at",
				Usage:    "Timestamp to check",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			at, err := domain.ParseTimestamp(c.String("at"), time.Local)
			if err != nil {
				return err
			}

			wt := newService().Inspect(at)
			_, err = fmt.Fprintf(c.App.Writer, "%s working_day=%t working_hour=%t\n",
				domain.FormatTimestamp(wt.At), wt.IsWorkingDay, wt.IsWorkingHour)
			return err
		},
	}
}

func nextDayCommand() *cli.Command {
	return &cli.Command{
		Name:  "next-day",
		Usage: "Print the start of the next working day",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "at",
				Usage:    "Timestamp to advance from",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "minute",
				Usage: "Minute to keep on the new day (defaults to the minute of --at)",
			},
		},
		Action: func(c *cli.Context) error {
			at, err := domain.ParseTimestamp(c.String("at"), time.Local)
			if err != nil {
				return err
			}

			minute := at.Minute()
			if c.IsSet("minute") {
				minute = c.Int("minute")
			}

			next, err := newService().NextWorkingDay(at, minute)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(c.App.Writer, domain.FormatTimestamp(next))
			return err
		},
	}
}

func batchCommand() *cli.Command {
	return &cli.Command{
		Name:  "batch",
		Usage: "Calculate due dates for every submission in a YAML file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "Path to the batch YAML file",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   config.DefaultOutputFormat,
				Usage:   "Output format (yaml, json)",
			},
		},
		Action: runBatch,
	}
}

func runBatch(c *cli.Context) error {
	file, err := batch.Load(c.String("file"))
	if err != nil {
		return err
	}

	results, err := batch.Process(c.Context, newService(), file, time.Local)
	if err != nil {
		return err
	}

	return batch.Encode(c.App.Writer, results, c.String("output"))
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Start the HTTP API",
		Flags:  serveFlags(),
		Action: runServe,
	}
}

// serveFlags are declared on both the app and the serve command, since
// running without a subcommand also starts the server.
func serveFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "port",
			Aliases: []string{"p"},
			Value:   config.DefaultPort,
			Usage:   "HTTP server port",
			EnvVars: []string{"PORT"},
		},
		&cli.Float64Flag{
			Name:    "rate-limit",
			Value:   config.DefaultRateLimitRPS,
			Usage:   "Sustained requests per second (0 disables)",
			EnvVars: []string{"RATE_LIMIT_RPS"},
		},
		&cli.IntFlag{
			Name:    "rate-burst",
			Value:   config.DefaultRateLimitBurst,
			Usage:   "Rate limit burst size",
			EnvVars: []string{"RATE_LIMIT_BURST"},
		},
		&cli.IntFlag{
			Name:    "max-batch-size",
			Value:   config.DefaultMaxBatchSize,
			Usage:   "Maximum submissions per batch request",
			EnvVars: []string{"MAX_BATCH_SIZE"},
		},
	}
}

// serveConfig holds the resolved HTTP server settings.
type serveConfig struct {
	Port         string
	RateLimitRPS float64
	RateBurst    int
	MaxBatchSize int
}

func newServeConfig(c *cli.Context) serveConfig {
	cfg := serveConfig{
		Port:         c.String("port"),
		RateLimitRPS: c.Float64("rate-limit"),
		RateBurst:    c.Int("rate-burst"),
		MaxBatchSize: c.Int("max-batch-size"),
	}
	if cfg.Port == "" {
		cfg.Port = config.DefaultPort
	}
	if cfg.RateBurst == 0 {
		cfg.RateBurst = config.DefaultRateLimitBurst
	}
	if cfg.MaxBatchSize <= 0 {
		cfg.MaxBatchSize = config.DefaultMaxBatchSize
	}
	return cfg
}

func runServe(c *cli.Context) error {
	ctx := c.Context
	cfg := newServeConfig(c)

	svc := service.NewDueDateService(domain.DefaultCalendar(), cfg.MaxBatchSize)
	h := handler.New(svc, time.Local)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateBurst)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           middleware.Chain(mux, middleware.RequestID, middleware.Logging, limiter.Limit),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server",
			"server_addr", "http://localhost:"+cfg.Port,
			"rate_limit_rps", cfg.RateLimitRPS,
			"rate_limit_burst", cfg.RateBurst,
			"max_batch_size", cfg.MaxBatchSize,
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-done:
		slog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
