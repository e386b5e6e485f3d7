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

package shared

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultJWTExpiresIn  = 24 * time.Hour
	defaultUploadMaxSize = 10 * 1024 * 1024
)

// Version is set at build time.
var Version = "dev"

type Config struct {
	Port        string
	JWTSecret   string
	JWTExpiry   time.Duration
	CorsOrigins []string

	UploadMaxSize int64
	UploadDir     string
	S3Bucket      string

	RedisAddr     string
	RedisPassword string

	DisableAutoMigrate bool
	PublicStatsTTL     time.Duration

	DisableDaemons        bool
	DaemonInterval        time.Duration
	MilestoneReminderDays int
	NotificationRetention time.Duration
}

// GetConfig reads the runtime configuration from the environment.
// LoadConfig has to be called before to pick up a .env file.
func GetConfig() Config {
	cfg := Config{
		Port:               getEnvOrDefault("PORT", "8080"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		JWTExpiry:          defaultJWTExpiresIn,
		CorsOrigins:        []string{"*"},
		UploadMaxSize:      defaultUploadMaxSize,
		UploadDir:          getEnvOrDefault("UPLOAD_DIR", "uploads"),
		S3Bucket:           os.Getenv("S3_BUCKET"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		DisableAutoMigrate: os.Getenv("DISABLE_AUTOMIGRATE") == "true",
		PublicStatsTTL:     time.Minute,

		DisableDaemons:        os.Getenv("DISABLE_DAEMONS") == "true",
		DaemonInterval:        24 * time.Hour,
		MilestoneReminderDays: 3,
		NotificationRetention: 90 * 24 * time.Hour,
	}

	if expiresIn := os.Getenv("JWT_EXPIRES_IN"); expiresIn != "" {
		if val, err := time.ParseDuration(expiresIn); err == nil && val > 0 {
			cfg.JWTExpiry = val
		}
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CorsOrigins = nil
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CorsOrigins = append(cfg.CorsOrigins, o)
			}
		}
	}

	if maxSize := os.Getenv("UPLOAD_MAX_SIZE"); maxSize != "" {
		if val, err := strconv.ParseInt(maxSize, 10, 64); err == nil && val > 0 {
			cfg.UploadMaxSize = val
		}
	}

	if ttl := os.Getenv("PUBLIC_STATS_TTL"); ttl != "" {
		if val, err := time.ParseDuration(ttl); err == nil && val > 0 {
			cfg.PublicStatsTTL = val
		}
	}

	if interval := os.Getenv("DAEMON_INTERVAL"); interval != "" {
		if val, err := time.ParseDuration(interval); err == nil && val > 0 {
			cfg.DaemonInterval = val
		}
	}

	if days := os.Getenv("MILESTONE_REMINDER_DAYS"); days != "" {
		if val, err := strconv.Atoi(days); err == nil && val > 0 {
			cfg.MilestoneReminderDays = val
		}
	}

	if days := os.Getenv("NOTIFICATION_RETENTION_DAYS"); days != "" {
		if val, err := strconv.Atoi(days); err == nil && val > 0 {
			cfg.NotificationRetention = time.Duration(val) * 24 * time.Hour
		}
	}

	return cfg
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
