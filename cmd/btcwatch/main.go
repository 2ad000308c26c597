package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabapcia/btcwatch/internal/config"
	"github.com/gabapcia/btcwatch/internal/handlers/cli"
	"github.com/gabapcia/btcwatch/internal/infra/blockchain/blockchaininfo"
	"github.com/gabapcia/btcwatch/internal/infra/storage/redis"
	"github.com/gabapcia/btcwatch/internal/pkg/logger"
	"github.com/gabapcia/btcwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/btcwatch/internal/pkg/telemetry"
	httpclient "github.com/gabapcia/btcwatch/internal/pkg/transport/http"
	"github.com/gabapcia/btcwatch/internal/pkg/transport/rest"
	"github.com/gabapcia/btcwatch/internal/transferfeed"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		// The logger may not be initialized yet.
		fmt.Fprintln(os.Stderr, "btcwatch:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(ctx, cfg.Telemetry.ServiceName, version)
		if err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := shutdown(ctx); err != nil {
				fmt.Fprintln(os.Stderr, "btcwatch: telemetry shutdown:", err)
			}
		}()
	}

	// Results go to stdout, so logs go to stderr.
	err = logger.Init(
		logger.WithLevel(cfg.LogLevel),
		logger.WithOutput(os.Stderr),
		logger.WithLoggerProvider(telemetry.LoggerProvider()),
	)
	if err != nil {
		return err
	}
	defer logger.Sync()

	httpClient := httpclient.NewClient(
		httpclient.WithTimeout(cfg.API.Timeout),
		httpclient.WithRetryMax(cfg.API.RetryMax),
		httpclient.WithRetryWaitMin(cfg.API.RetryWaitMin),
		httpclient.WithRetryWaitMax(cfg.API.RetryWaitMax),
		httpclient.WithLogger(logger.Leveled()),
	)

	explorer := blockchaininfo.NewClient(rest.NewClient(httpClient, cfg.API.BaseURL))

	var feedOpts []transferfeed.Option
	if cfg.Redis.Addr != "" {
		storage, err := redis.NewClient(ctx,
			cfg.Redis.Addr,
			cfg.Redis.Username,
			cfg.Redis.Password,
			cfg.Redis.DB,
			retry.New(retry.WithOnRetry(func(attempt uint, err error) {
				logger.Warn(ctx, "redis not reachable yet", "attempt", attempt, "error", err)
			})),
		)
		if err != nil {
			return err
		}
		defer storage.Close()

		feedOpts = append(feedOpts, transferfeed.WithSeenStorage(storage))
	}

	return cli.Run(ctx, explorer, explorer, transferfeed.New(explorer, feedOpts...))
}
