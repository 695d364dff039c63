package config

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/redis/go-redis/v9"
)

type Dependencies struct {
	Redis      *redis.Client
	HTTPClient *http.Client
	Logger     *slog.Logger
}

type Option func(context.Context, *Dependencies) error

func (d *Dependencies) Close() {
	if d == nil {
		return
	}

	if d.Redis != nil {
		d.Redis.Close()
	}
}

func NewDependencies(ctx context.Context, opts ...Option) (deps *Dependencies, err error) {
	defer func() {
		if err != nil {
			deps.Close()
		}
	}()

	deps = &Dependencies{}

	for _, opt := range opts {
		if err := opt(ctx, deps); err != nil {
			return nil, err
		}
	}

	return deps, nil
}

func WithRedis(addr string, db int) Option {
	return func(ctx context.Context, d *Dependencies) error {
		client := redis.NewClient(&redis.Options{
			Addr: addr,
			DB:   db,
		})

		if err := client.Ping(ctx).Err(); err != nil {
			return err
		}

		d.Redis = client
		return nil
	}
}

// WithHTTPClient installs the shared upstream HTTP client. Every provider
// call goes through it, so the timeout bounds all upstream round-trips.
func WithHTTPClient(timeout time.Duration) Option {
	return func(_ context.Context, d *Dependencies) error {
		d.HTTPClient = &http.Client{Timeout: timeout}
		return nil
	}
}

const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

func WithLogger(level string) Option {
	return func(_ context.Context, d *Dependencies) error {
		var logger *slog.Logger

		switch level {
		case EnvProd:
			logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}))
		default:
			logger = slog.New(tint.NewHandler(os.Stdout, &tint.Options{
				Level:      slog.LevelDebug,
				TimeFormat: time.Kitchen,
			}))
		}

		slog.SetDefault(logger)
		d.Logger = logger
		return nil
	}
}
