// Copyright (C) 2025 infratrack-dev
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.
package database

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

// PoolConfig describes the Postgres connection. URL wins over the
// individual connection fields when set.
type PoolConfig struct {
	URL      string
	User     string
	Password string
	Host     string
	Port     string
	DBName   string
	SSLMode  string

	MaxOpenConns    int32
	MinConns        int32
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

func (cfg PoolConfig) DSN() string {
	if cfg.URL != "" {
		return cfg.URL
	}
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     cfg.Host + ":" + cfg.Port,
		Path:     "/" + cfg.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(cfg.SSLMode),
	}
	return dsn.String()
}

func (cfg PoolConfig) String() string {
	if cfg.URL != "" {
		return "DATABASE_URL"
	}
	return fmt.Sprintf("%s@%s:%s/%s", cfg.User, cfg.Host, cfg.Port, cfg.DBName)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt32(key string, fallback int32, min int) int32 {
	val, err := strconv.Atoi(os.Getenv(key))
	if err != nil || val < min {
		return fallback
	}
	return int32(val)
}

func envDuration(key string, fallback time.Duration) time.Duration {
	val, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return val
}

func GetPoolConfigFromEnv() PoolConfig {
	return PoolConfig{
		URL:      os.Getenv("DATABASE_URL"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		Host:     envOr("POSTGRES_HOST", "localhost"),
		Port:     envOr("POSTGRES_PORT", "5432"),
		DBName:   envOr("POSTGRES_DB", "infratrack"),
		SSLMode:  envOr("POSTGRES_SSLMODE", "disable"),

		MaxOpenConns:    envInt32("DB_MAX_OPEN_CONNS", 20, 1),
		MinConns:        envInt32("DB_MIN_CONNS", 2, 0),
		ConnMaxLifetime: envDuration("DB_CONN_MAX_LIFETIME", time.Hour),
		ConnMaxIdleTime: envDuration("DB_CONN_MAX_IDLE_TIME", 15*time.Minute),
	}
}
