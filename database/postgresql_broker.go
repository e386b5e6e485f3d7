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
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/infratrack-dev/infratrack/monitoring"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type PostgreSQLMessage struct {
	ID        string               `json:"id"`
	Channel   shared.PubSubChannel `json:"topic"`
	Payload   map[string]any       `json:"payload"`
	Timestamp time.Time            `json:"timestamp"`
	SenderID  string               `json:"sender_id,omitempty"`
}

type listeningConnection struct {
	conn        *pgxpool.Conn
	cancel      context.CancelFunc
	subscribers []chan map[string]any
}

// PostgreSQLBroker distributes messages between api instances using
// LISTEN/NOTIFY. Every topic holds exactly one dedicated connection.
type PostgreSQLBroker struct {
	db                       *pgxpool.Pool
	subscribers              map[shared.PubSubChannel]*listeningConnection
	subscribeMux             sync.RWMutex
	wg                       sync.WaitGroup
	ID                       string
	shouldReceiveOwnMessages bool
}

var _ shared.PubSubBroker = (*PostgreSQLBroker)(nil)

func NewPostgreSQLBroker(db *pgxpool.Pool) *PostgreSQLBroker {
	return &PostgreSQLBroker{
		db:                       db,
		subscribers:              make(map[shared.PubSubChannel]*listeningConnection),
		ID:                       uuid.New().String(),
		shouldReceiveOwnMessages: true,
	}
}

func (b *PostgreSQLBroker) SetShouldReceiveOwnMessages(should bool) {
	b.shouldReceiveOwnMessages = should
}

func (b *PostgreSQLBroker) Publish(ctx context.Context, message shared.PubSubMessage) error {
	topic := message.GetChannel()

	pgMessage := PostgreSQLMessage{
		ID:        uuid.New().String(),
		Channel:   topic,
		Payload:   message.GetPayload(),
		Timestamp: time.Now(),
		SenderID:  b.ID,
	}

	messageJSON, err := json.Marshal(pgMessage)
	if err != nil {
		return fmt.Errorf("failed to marshal PostgreSQL message: %w", err)
	}

	if _, err = b.db.Exec(ctx, "SELECT pg_notify($1, $2)", string(topic), string(messageJSON)); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	slog.Debug("message published", "topic", topic, "messageID", pgMessage.ID)
	return nil
}

func (b *PostgreSQLBroker) Subscribe(ctx context.Context, topic shared.PubSubChannel) (<-chan map[string]any, error) {
	b.subscribeMux.Lock()
	defer b.subscribeMux.Unlock()

	ch := make(chan map[string]any, 100)

	listening, exists := b.subscribers[topic]
	if !exists {
		acquireCtx, cancelAcquire := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancelAcquire()
		conn, err := b.db.Acquire(acquireCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to acquire connection for listening: %w", err)
		}
		if _, err = conn.Exec(acquireCtx, "LISTEN "+pq.QuoteIdentifier(string(topic))); err != nil {
			conn.Release()
			return nil, fmt.Errorf("failed to listen on topic %s: %w", topic, err)
		}

		listenCtx, cancel := context.WithCancel(context.Background())
		listening = &listeningConnection{conn: conn, cancel: cancel}
		b.subscribers[topic] = listening
		b.wg.Go(func() {
			b.processMessages(listenCtx, topic, conn)
		})
	}
	listening.subscribers = append(listening.subscribers, ch)

	go func() {
		<-ctx.Done()
		b.unsubscribe(topic, ch)
	}()

	return ch, nil
}

func (b *PostgreSQLBroker) unsubscribe(topic shared.PubSubChannel, ch chan map[string]any) {
	b.subscribeMux.Lock()
	defer b.subscribeMux.Unlock()

	listening, exists := b.subscribers[topic]
	if !exists {
		return
	}
	idx := slices.Index(listening.subscribers, ch)
	if idx < 0 {
		return
	}
	listening.subscribers = slices.Delete(listening.subscribers, idx, idx+1)
	close(ch)

	if len(listening.subscribers) == 0 {
		// the listening goroutine releases the connection
		listening.cancel()
		delete(b.subscribers, topic)
	}
}

func (b *PostgreSQLBroker) processMessages(ctx context.Context, topic shared.PubSubChannel, conn *pgxpool.Conn) {
	defer conn.Release()
	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				// connection is in an undefined state after the cancelled wait
				_ = conn.Conn().PgConn().Close(context.Background())
				return
			}
			monitoring.Alert("could not listen for notifications from PostgreSQL broker", err)
			b.dropTopic(topic)
			return
		}
		if notification == nil || notification.Channel != string(topic) {
			continue
		}

		var message PostgreSQLMessage
		if err := json.Unmarshal([]byte(notification.Payload), &message); err != nil {
			slog.Error("failed to unmarshal message", "err", err, "payload", notification.Payload)
			continue
		}

		if message.SenderID == b.ID && !b.shouldReceiveOwnMessages {
			continue
		}

		b.distribute(topic, message)
	}
}

func (b *PostgreSQLBroker) distribute(topic shared.PubSubChannel, message PostgreSQLMessage) {
	b.subscribeMux.RLock()
	defer b.subscribeMux.RUnlock()

	listening, exists := b.subscribers[topic]
	if !exists {
		return
	}
	for _, subscriber := range listening.subscribers {
		select {
		case subscriber <- message.Payload:
		default:
			slog.Warn("subscriber channel full, dropping message", "topic", topic, "messageID", message.ID)
		}
	}
}

// dropTopic closes all subscribers of a topic whose connection broke.
// Subscribers have to subscribe again.
func (b *PostgreSQLBroker) dropTopic(topic shared.PubSubChannel) {
	b.subscribeMux.Lock()
	defer b.subscribeMux.Unlock()

	listening, exists := b.subscribers[topic]
	if !exists {
		return
	}
	for _, ch := range listening.subscribers {
		close(ch)
	}
	listening.cancel()
	delete(b.subscribers, topic)
}

func (b *PostgreSQLBroker) IsHealthy(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return b.db.Ping(ctx) == nil
}

func (b *PostgreSQLBroker) GetActiveTopics() []shared.PubSubChannel {
	b.subscribeMux.RLock()
	defer b.subscribeMux.RUnlock()

	topics := make([]shared.PubSubChannel, 0, len(b.subscribers))
	for topic := range b.subscribers {
		topics = append(topics, topic)
	}
	return topics
}

// Close stops all listening goroutines.
func (b *PostgreSQLBroker) Close() {
	b.subscribeMux.Lock()
	for topic, listening := range b.subscribers {
		for _, ch := range listening.subscribers {
			close(ch)
		}
		listening.cancel()
		delete(b.subscribers, topic)
	}
	b.subscribeMux.Unlock()
	b.wg.Wait()
}
