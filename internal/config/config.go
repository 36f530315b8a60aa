/*
Copyright (C) 2026 Arena Works

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Database backend selection.
type DatabaseBackend string

const (
	DatabasePostgres DatabaseBackend = "postgres"
	DatabaseMySQL    DatabaseBackend = "mysql"
	DatabaseSQLite   DatabaseBackend = "sqlite"
)

// Config covers process level configuration read from environment variables.
type Config struct {
	Environment string
	HTTPBind    string
	HTTPPort    int
	MetricsBind string

	DBBackend DatabaseBackend
	DBDSN     string

	// Event publishing (fire-and-forget); empty NATSURL keeps events
	// in-process only.
	NATSURL string

	// Published-schedule cache
	CacheEnabled  bool
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Load reads environment variables, applies defaults, and validates the
// result.
func Load() (*Config, error) {
	cfg := &Config{
		Environment: getEnv("ARENA_ENV", "development"),
		HTTPBind:    getEnv("ARENA_HTTP_BIND", "0.0.0.0"),
		HTTPPort:    getEnvInt("ARENA_HTTP_PORT", 8080),
		MetricsBind: getEnv("ARENA_METRICS_BIND", "127.0.0.1:9000"),

		DBBackend: DatabaseBackend(getEnv("ARENA_DB_BACKEND", string(DatabasePostgres))),
		DBDSN:     getEnv("ARENA_DB_DSN", ""),

		NATSURL: getEnv("ARENA_NATS_URL", ""),

		CacheEnabled:  getEnvBool("ARENA_CACHE_ENABLED", false),
		RedisAddr:     getEnv("ARENA_REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("ARENA_REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("ARENA_REDIS_DB", 0),
	}

	if cfg.DBBackend != DatabasePostgres && cfg.DBBackend != DatabaseMySQL && cfg.DBBackend != DatabaseSQLite {
		return nil, fmt.Errorf("unsupported database backend %q", cfg.DBBackend)
	}

	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("ARENA_DB_DSN must be provided")
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if val := os.Getenv(key); val != "" {
		val = strings.ToLower(strings.TrimSpace(val))
		if val == "true" || val == "1" || val == "yes" {
			return true
		}
		if val == "false" || val == "0" || val == "no" {
			return false
		}
	}
	return def
}
