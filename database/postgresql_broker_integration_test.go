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

//go:build integration

package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/infratrack-dev/infratrack/database"
	"github.com/infratrack-dev/infratrack/integrationtestutil"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan map[string]any) map[string]any {
	t.Helper()
	select {
	case payload := <-ch:
		return payload
	case <-time.After(2 * time.Second):
		t.Fatal("message not received within timeout")
		return nil
	}
}

func TestPostgreSQLBroker(t *testing.T) {
	_, pool, terminate := integrationtestutil.InitDatabaseContainer()
	defer terminate()

	t.Run("should deliver published messages to subscribers", func(t *testing.T) {
		broker := database.NewPostgreSQLBroker(pool)
		defer broker.Close()

		messages, err := broker.Subscribe(context.Background(), shared.SubmissionCreatedChannel)
		require.NoError(t, err)
		time.Sleep(100 * time.Millisecond)

		err = broker.Publish(context.Background(), shared.NewSimplePubSubMessage(shared.SubmissionCreatedChannel, map[string]any{
			"submissionId": "a7d4",
			"progress":     40,
		}))
		require.NoError(t, err)

		payload := receive(t, messages)
		assert.Equal(t, "a7d4", payload["submissionId"])
		assert.Equal(t, float64(40), payload["progress"])
	})

	t.Run("should fan out to multiple subscribers of the same topic", func(t *testing.T) {
		broker := database.NewPostgreSQLBroker(pool)
		defer broker.Close()

		first, err := broker.Subscribe(context.Background(), shared.NotificationChannel)
		require.NoError(t, err)
		second, err := broker.Subscribe(context.Background(), shared.NotificationChannel)
		require.NoError(t, err)
		time.Sleep(100 * time.Millisecond)

		require.NoError(t, broker.Publish(context.Background(), shared.NewSimplePubSubMessage(shared.NotificationChannel, map[string]any{"userId": "u1"})))

		assert.Equal(t, "u1", receive(t, first)["userId"])
		assert.Equal(t, "u1", receive(t, second)["userId"])
	})

	t.Run("should deliver messages between broker instances", func(t *testing.T) {
		publisher := database.NewPostgreSQLBroker(pool)
		defer publisher.Close()
		subscriber := database.NewPostgreSQLBroker(pool)
		subscriber.SetShouldReceiveOwnMessages(false)
		defer subscriber.Close()

		messages, err := subscriber.Subscribe(context.Background(), shared.SubmissionReviewedChannel)
		require.NoError(t, err)
		time.Sleep(100 * time.Millisecond)

		require.NoError(t, publisher.Publish(context.Background(), shared.NewSimplePubSubMessage(shared.SubmissionReviewedChannel, map[string]any{"status": "APPROVED"})))

		assert.Equal(t, "APPROVED", receive(t, messages)["status"])
	})

	t.Run("should track active topics and drop them when the subscription ends", func(t *testing.T) {
		broker := database.NewPostgreSQLBroker(pool)
		defer broker.Close()
		assert.Empty(t, broker.GetActiveTopics())

		ctx, cancel := context.WithCancel(context.Background())
		messages, err := broker.Subscribe(ctx, shared.PubSubChannel("topic-1"))
		require.NoError(t, err)
		_, err = broker.Subscribe(context.Background(), shared.PubSubChannel("topic-2"))
		require.NoError(t, err)

		assert.ElementsMatch(t, []shared.PubSubChannel{"topic-1", "topic-2"}, broker.GetActiveTopics())

		cancel()
		select {
		case _, ok := <-messages:
			assert.False(t, ok)
		case <-time.After(2 * time.Second):
			t.Fatal("subscription was not closed")
		}
		assert.Equal(t, []shared.PubSubChannel{"topic-2"}, broker.GetActiveTopics())
	})

	t.Run("should close all subscriptions on close", func(t *testing.T) {
		broker := database.NewPostgreSQLBroker(pool)

		messages, err := broker.Subscribe(context.Background(), shared.PubSubChannel("closing"))
		require.NoError(t, err)

		broker.Close()

		_, ok := <-messages
		assert.False(t, ok)
		assert.True(t, broker.IsHealthy(context.Background()))
	})
}
