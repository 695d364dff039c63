package config

import (
	"os"
	"strconv"
	"time"
)

type (
	Redis struct {
		Addr string
		DB   int
	}

	ServerConfig struct {
		Port   string
		Host   string
		LogLvl string
	}

	// Market describes the target pair and the upstream providers.
	Market struct {
		CoinID        string // CoinGecko coin identifier, e.g. "litecoin"
		Symbol        string // base asset symbol, e.g. "LTC"
		QuoteCurrency string // quote asset symbol, e.g. "USDT"
		Pair          string // display pair, e.g. "LTC/USDT"

		CoinGeckoURL  string
		BinanceURL    string
		CMCURL        string
		CMCAPIKey     string
		ClientTimeout time.Duration
	}

	Config struct {
		Redis  Redis
		Server ServerConfig
		Market Market
	}
)

func LoadConfig() *Config {
	cfg := &Config{}

	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.DB, _ = strconv.Atoi(getEnv("REDIS_DB", "0"))

	cfg.Server.LogLvl = getEnv("LOG_LVL", "dev")
	cfg.Server.Port = getEnv("PORT", "8000")
	cfg.Server.Host = getEnv("HOST", "0.0.0.0")

	cfg.Market.CoinID = getEnv("COIN_ID", "litecoin")
	cfg.Market.Symbol = getEnv("COIN_SYMBOL", "LTC")
	cfg.Market.QuoteCurrency = getEnv("QUOTE_CURRENCY", "USDT")
	cfg.Market.Pair = cfg.Market.Symbol + "/" + cfg.Market.QuoteCurrency

	cfg.Market.CoinGeckoURL = getEnv("COINGECKO_URL", "https://api.coingecko.com")
	cfg.Market.BinanceURL = getEnv("BINANCE_URL", "https://api.binance.com")
	cfg.Market.CMCURL = getEnv("CMC_URL", "https://pro-api.coinmarketcap.com")
	cfg.Market.CMCAPIKey = getEnv("CMC_API_KEY", "")

	timeoutSec, _ := strconv.Atoi(getEnv("UPSTREAM_TIMEOUT_SEC", "10"))
	cfg.Market.ClientTimeout = time.Duration(timeoutSec) * time.Second

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}

	return defaultValue
}
