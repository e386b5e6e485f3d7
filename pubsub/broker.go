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

package pubsub

import (
	"context"
	"log/slog"
	"time"

	"github.com/infratrack-dev/infratrack/database"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewBroker prefers redis when REDIS_ADDR is configured and falls back to
// postgres LISTEN/NOTIFY otherwise.
func NewBroker(cfg shared.Config, pool *pgxpool.Pool) shared.PubSubBroker {
	if cfg.RedisAddr != "" {
		broker := NewRedisBroker(NewRedisClient(cfg.RedisAddr, cfg.RedisPassword))
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := broker.Ping(ctx)
		if err == nil {
			slog.Info("using redis broker", "addr", cfg.RedisAddr)
			return broker
		}
		slog.Warn("redis not reachable, falling back to postgres broker", "err", err)
	}
	return database.NewPostgreSQLBroker(pool)
}
