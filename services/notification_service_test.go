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

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/mocks"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotify(t *testing.T) {
	t.Run("should persist the notifications even if publishing fails", func(t *testing.T) {
		repo := mocks.NewNotificationRepository(t)
		broker := mocks.NewPubSubBroker(t)
		repo.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)
		broker.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))

		s := NewNotificationService(repo, mocks.NewUserRepository(t), broker)
		err := s.Notify(context.Background(), []models.Notification{{UserID: uuid.New(), Title: "hi"}})
		assert.NoError(t, err)
		repo.AssertNumberOfCalls(t, "CreateBatch", 1)
	})

	t.Run("should do nothing without notifications", func(t *testing.T) {
		s := NewNotificationService(mocks.NewNotificationRepository(t), mocks.NewUserRepository(t), mocks.NewPubSubBroker(t))
		assert.NoError(t, s.Notify(context.Background(), nil))
	})
}

func TestNotifyRoles(t *testing.T) {
	t.Run("should notify every active user with one of the roles", func(t *testing.T) {
		repo := mocks.NewNotificationRepository(t)
		users := mocks.NewUserRepository(t)
		broker := mocks.NewPubSubBroker(t)
		active := models.User{Model: models.Model{ID: uuid.New()}, IsActive: true}
		inactive := models.User{Model: models.Model{ID: uuid.New()}, IsActive: false}

		roles := []models.UserRole{models.RoleMEOfficer}
		users.On("ListByRoles", roles).Return([]models.User{active, inactive}, nil)
		repo.On("CreateBatch", mock.Anything, mock.MatchedBy(func(n []models.Notification) bool {
			return len(n) == 1 && n[0].UserID == active.ID && n[0].Title == "New submission"
		})).Return(nil)
		broker.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

		s := NewNotificationService(repo, users, broker)
		require.NoError(t, s.NotifyRoles(context.Background(), roles, models.Notification{Title: "New submission"}))
	})
}

func TestStream(t *testing.T) {
	t.Run("should only forward notifications of the user", func(t *testing.T) {
		broker := mocks.NewPubSubBroker(t)
		userID := uuid.New()
		in := make(chan map[string]any, 2)
		in <- map[string]any{"userId": uuid.NewString(), "title": "not mine"}
		in <- map[string]any{"userId": userID.String(), "title": "mine"}
		broker.On("Subscribe", mock.Anything, shared.NotificationChannel).Return((<-chan map[string]any)(in), nil)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		s := NewNotificationService(mocks.NewNotificationRepository(t), mocks.NewUserRepository(t), broker)
		out, err := s.Stream(ctx, userID)
		require.NoError(t, err)

		select {
		case msg := <-out:
			assert.Equal(t, "mine", msg["title"])
		case <-time.After(time.Second):
			t.Fatal("expected a notification")
		}

		cancel()
		for range out {
		}
	})
}
