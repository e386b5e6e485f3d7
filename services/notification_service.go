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
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/monitoring"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/labstack/echo/v4"
)

type notificationService struct {
	notificationRepository shared.NotificationRepository
	userRepository         shared.UserRepository
	broker                 shared.PubSubBroker
}

var _ shared.NotificationService = &notificationService{}

func NewNotificationService(notificationRepository shared.NotificationRepository, userRepository shared.UserRepository, broker shared.PubSubBroker) *notificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
		userRepository:         userRepository,
		broker:                 broker,
	}
}

// Notify persists the notifications and announces them on the broker.
// A broker failure is logged but does not fail the call since the rows
// are already stored.
func (s *notificationService) Notify(ctx context.Context, notifications []models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	if err := s.notificationRepository.CreateBatch(nil, notifications); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not store notifications").WithInternal(err)
	}

	for _, n := range notifications {
		if err := s.broker.Publish(ctx, shared.NewNotificationMessage(n)); err != nil {
			monitoring.NotificationPublishFailedAmount.Inc()
			slog.Warn("could not publish notification", "userID", n.UserID, "err", err)
		}
	}
	return nil
}

func (s *notificationService) NotifyRoles(ctx context.Context, roles []models.UserRole, template models.Notification) error {
	users, err := s.userRepository.ListByRoles(roles)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not fetch recipients").WithInternal(err)
	}

	notifications := make([]models.Notification, 0, len(users))
	for _, u := range users {
		if !u.IsActive {
			continue
		}
		n := template
		n.ID = uuid.Nil
		n.UserID = u.ID
		notifications = append(notifications, n)
	}
	return s.Notify(ctx, notifications)
}

// Stream forwards the notifications of a single user until ctx is done.
func (s *notificationService) Stream(ctx context.Context, userID uuid.UUID) (<-chan map[string]any, error) {
	in, err := s.broker.Subscribe(ctx, shared.NotificationChannel)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "could not subscribe to notifications").WithInternal(err)
	}

	out := make(chan map[string]any)
	target := userID.String()
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case payload, ok := <-in:
				if !ok {
					return
				}
				if payload["userId"] != target {
					continue
				}
				select {
				case out <- payload:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
