package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/fantasy-draft/internal/app"
	"github.com/riskibarqy/fantasy-draft/internal/config"
	"github.com/riskibarqy/fantasy-draft/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-draft/internal/observability"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
)

func main() {
	asJSON := flag.Bool("json", false, "print the full report as JSON")
	users := flag.String("users", "", "comma separated user ids (defaults to the seeded users)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewJSON(cfg.LogLevel, cfg.ServiceName)
	logging.SetDefault(logger)

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}
	stopProfiling, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, cfg, logger, parseUsers(*users), *asJSON)
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Warn("shutdown uptrace failed", "error", err)
	}
	if err := stopProfiling(); err != nil {
		logger.Warn("stop pyroscope failed", "error", err)
	}
	cancel()
	_ = logger.Sync()
	os.Exit(code)
}

func run(ctx context.Context, cfg config.Config, logger *logging.Logger, userIDs []string, asJSON bool) int {
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		return 1
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warn("close app failed", "error", err)
		}
	}()

	report, err := a.RunDemo(ctx, userIDs)
	if err != nil {
		logger.Error("simulation failed", "error", err)
		return 1
	}

	if asJSON {
		raw, err := report.JSON()
		if err != nil {
			logger.Error("encode report", "error", err)
			return 1
		}
		fmt.Println(string(raw))
		return 0
	}
	fmt.Print(report.Table())
	return 0
}

func parseUsers(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return memory.SeedUsers()
	}
	out := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			out = append(out, id)
		}
	}
	return out
}
