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
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/redis/go-redis/v9"
)

type redisMessage struct {
	ID        string         `json:"id"`
	Payload   map[string]any `json:"payload"`
	Timestamp time.Time      `json:"timestamp"`
	SenderID  string         `json:"sender_id"`
}

// RedisBroker distributes messages through redis pub/sub. Each Subscribe
// call holds its own redis subscription.
type RedisBroker struct {
	client *redis.Client
	ID     string
}

var _ shared.PubSubBroker = (*RedisBroker)(nil)

func NewRedisBroker(client *redis.Client) *RedisBroker {
	return &RedisBroker{
		client: client,
		ID:     uuid.New().String(),
	}
}

func NewRedisClient(addr, password string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
}

func (b *RedisBroker) Publish(ctx context.Context, message shared.PubSubMessage) error {
	payload, err := json.Marshal(redisMessage{
		ID:        uuid.New().String(),
		Payload:   message.GetPayload(),
		Timestamp: time.Now(),
		SenderID:  b.ID,
	})
	if err != nil {
		return fmt.Errorf("could not marshal message: %w", err)
	}
	if err := b.client.Publish(ctx, string(message.GetChannel()), payload).Err(); err != nil {
		return fmt.Errorf("could not publish message: %w", err)
	}
	return nil
}

func (b *RedisBroker) Subscribe(ctx context.Context, topic shared.PubSubChannel) (<-chan map[string]any, error) {
	sub := b.client.Subscribe(ctx, string(topic))
	// wait for the subscription confirmation
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("could not subscribe to %s: %w", topic, err)
	}

	ch := make(chan map[string]any, 100)
	go func() {
		defer close(ch)
		defer sub.Close()

		messages := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				var m redisMessage
				if err := json.Unmarshal([]byte(msg.Payload), &m); err != nil {
					slog.Error("could not unmarshal redis message", "err", err, "topic", topic)
					continue
				}
				select {
				case ch <- m.Payload:
				default:
					slog.Warn("subscriber channel full, dropping message", "topic", topic, "messageID", m.ID)
				}
			}
		}
	}()

	return ch, nil
}

func (b *RedisBroker) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}
