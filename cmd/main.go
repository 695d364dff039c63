package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/joho/godotenv"

	"github.com/nalmatov/ltc-backend/config"
	rediscache "github.com/nalmatov/ltc-backend/internal/adapters/cache/redis"
	"github.com/nalmatov/ltc-backend/internal/adapters/exchange"
	httpserver "github.com/nalmatov/ltc-backend/internal/adapters/handlers/http"
	"github.com/nalmatov/ltc-backend/internal/adapters/handlers/http/handler"
	"github.com/nalmatov/ltc-backend/internal/adapters/repository/memory"
	"github.com/nalmatov/ltc-backend/internal/core/port"
	"github.com/nalmatov/ltc-backend/internal/core/service"
	pkgconfig "github.com/nalmatov/ltc-backend/pkg/config"
)

func init() {
	initialLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(initialLogger)
}

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", slog.Any("error", err))
	}

	cfg := config.LoadConfig()

	deps, err := pkgconfig.NewDependencies(
		ctx,
		pkgconfig.WithLogger(cfg.Server.LogLvl),
		pkgconfig.WithRedis(cfg.Redis.Addr, cfg.Redis.DB),
		pkgconfig.WithHTTPClient(cfg.Market.ClientTimeout),
	)
	if err != nil {
		slog.Error("failed to load dependencies", slog.Any("error", err))
		os.Exit(1)
	}
	defer deps.Close()

	logger := deps.Logger

	cache := rediscache.NewRedisCache(deps.Redis, logger)
	store := memory.NewSyntheticStore()

	coinGecko := exchange.NewCoinGecko(
		cfg.Market.CoinGeckoURL,
		cfg.Market.CoinID,
		cfg.Market.QuoteCurrency,
		cfg.Market.Pair,
		deps.HTTPClient,
		logger,
	)
	binance := exchange.NewBinance(
		cfg.Market.BinanceURL,
		cfg.Market.Symbol+cfg.Market.QuoteCurrency,
		deps.HTTPClient,
		logger,
	)
	coinMarketCap := exchange.NewCoinMarketCap(
		cfg.Market.CMCURL,
		cfg.Market.CMCAPIKey,
		cfg.Market.Symbol,
		cfg.Market.QuoteCurrency,
		cfg.Market.Pair,
		deps.HTTPClient,
		logger,
	)

	listingService := service.NewListingService(cache, coinGecko, coinMarketCap, binance, store, cfg.Market.Pair, logger)
	historyService := service.NewHistoryService(cache, coinGecko, cfg.Market.CoinID, logger)
	depthService := service.NewDepthService(coinGecko, map[string]port.OrderBookPort{
		"binance": binance,
	})

	srv := httpserver.NewServer(
		handler.NewListingHandler(logger, listingService),
		handler.NewHistoryHandler(logger, historyService),
		handler.NewDepthHandler(logger, depthService),
	)

	run(ctx, cfg, srv)
}

func run(ctx context.Context, cfg *config.Config, srv http.Handler) {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	httpServer := &http.Server{
		Addr:    net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler: srv,
	}

	go func() {
		slog.Info("server listening", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Info("error listening and serving", "error", err)
		}
	}()

	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		shutdownCtx := context.Background()
		shutdownCtx, cancel := context.WithTimeout(shutdownCtx, 10*time.Second)
		defer cancel()
		slog.Info("Gracefully shutting down...")

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Info("error shutting down http server", "error", err)
		}
	}()
	wg.Wait()
}
