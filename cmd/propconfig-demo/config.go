package main

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/fieldguard/propconfig/internal/logging"
)

// Config is the demo command's own configuration. It is validated with
// go-playground/validator struct tags — ordinary static struct validation,
// orthogonal to the dynamic property-schema engine this repository
// implements for callers' configuration.
type Config struct {
	ListenAddr    string        `json:"listenAddr" validate:"required"`
	CacheMaxSize  int           `json:"cacheMaxSize" validate:"required,min=1"`
	CacheTTL      time.Duration `json:"cacheTtl" validate:"required"`
	EvictionEvery time.Duration `json:"evictionEvery" validate:"required"`
	LogConfig     logging.Conf  `json:"log" validate:"required"`
}

// DefaultConfig is a complete, valid Config, used when the demo is run
// without a config file.
var DefaultConfig = Config{
	ListenAddr:    ":8080",
	CacheMaxSize:  256,
	CacheTTL:      5 * time.Minute,
	EvictionEvery: time.Minute,
	LogConfig: logging.Conf{
		Format: "text",
		Level:  "info",
	},
}

// Validate runs struct-tag validation over cfg.
func Validate(cfg Config) error {
	return validator.New().Struct(cfg)
}
