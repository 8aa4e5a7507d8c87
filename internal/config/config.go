// File: internal/config/config.go
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config 服務啟動所需的環境變數
type Config struct {
	DatabaseURL   string `env:"DATABASE_URL,required"`
	RedisAddr     string `env:"REDIS_ADDR,required"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	WorkerCount   int    `env:"WORKER_COUNT" envDefault:"1"`
	ListenAddr    string `env:"LISTEN_ADDR" envDefault:":8080"`
}

// Load 解析環境變數並回傳設定
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	if cfg.WorkerCount <= 0 {
		return nil, fmt.Errorf("config.Load: WORKER_COUNT must be positive")
	}
	return cfg, nil
}
