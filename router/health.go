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

package router

import (
	"os"
	"runtime"
	"time"

	"github.com/infratrack-dev/infratrack/database"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

var startedAt = time.Now()

// HealthResponse is returned by /api/health.
type HealthResponse struct {
	Status        string       `json:"status"`
	Version       string       `json:"version"`
	Hostname      string       `json:"hostname,omitempty"`
	UptimeSeconds int          `json:"uptimeSeconds"`
	GoVersion     string       `json:"goVersion"`
	NumGoroutines int          `json:"numGoroutines"`
	Database      DatabaseInfo `json:"database"`
}

// PoolInfo exposes the non-sensitive part of the pool configuration and
// the live pgxpool statistics.
type PoolInfo struct {
	DBName          string `json:"dbName,omitempty"`
	MaxOpenConns    int32  `json:"maxOpenConns,omitempty"`
	ConnMaxLifetime string `json:"connMaxLifetime,omitempty"`

	TotalConns    int `json:"totalConns"`
	IdleConns     int `json:"idleConns"`
	AcquiredConns int `json:"acquiredConns"`
}

type DatabaseInfo struct {
	Status string  `json:"status"`
	Error  *string `json:"error,omitempty"`

	MigrationVersion *uint   `json:"migrationVersion,omitempty"`
	MigrationDirty   *bool   `json:"migrationDirty,omitempty"`
	MigrationError   *string `json:"migrationError,omitempty"`

	Pool *PoolInfo `json:"pool,omitempty"`
}

func unhealthy(info *DatabaseInfo, msg string) {
	info.Status = "unhealthy"
	info.Error = &msg
}

func checkDatabase(db shared.DB, pool *pgxpool.Pool) DatabaseInfo {
	info := DatabaseInfo{Status: "healthy"}

	sqlDB, err := db.DB()
	if err != nil {
		unhealthy(&info, "failed to get database instance")
		return info
	}
	if err := sqlDB.Ping(); err != nil {
		unhealthy(&info, "database ping failed")
		return info
	}

	if ver, dirty, err := database.GetMigrationVersionWithDB(db); err == nil {
		info.MigrationVersion = &ver
		info.MigrationDirty = &dirty
	} else {
		msg := err.Error()
		info.MigrationError = &msg
	}

	if pool != nil {
		poolCfg := pool.Config()
		stats := pool.Stat()
		info.Pool = &PoolInfo{
			DBName:          poolCfg.ConnConfig.Database,
			MaxOpenConns:    poolCfg.MaxConns,
			ConnMaxLifetime: poolCfg.MaxConnLifetime.String(),
			TotalConns:      int(stats.TotalConns()),
			IdleConns:       int(stats.IdleConns()),
			AcquiredConns:   int(stats.AcquiredConns()),
		}
	}
	return info
}

func health(db shared.DB, pool *pgxpool.Pool) echo.HandlerFunc {
	return func(ctx shared.Context) error {
		resp := HealthResponse{
			Status:        "healthy",
			Version:       shared.Version,
			UptimeSeconds: int(time.Since(startedAt).Seconds()),
			GoVersion:     runtime.Version(),
			NumGoroutines: runtime.NumGoroutine(),
			Database:      checkDatabase(db, pool),
		}
		resp.Hostname, _ = os.Hostname()

		if resp.Database.Status != "healthy" {
			resp.Status = "unhealthy"
			return ctx.JSON(503, shared.Envelope{Success: false, Message: "service unavailable", Data: resp})
		}
		return ctx.JSON(200, shared.OK(resp))
	}
}
