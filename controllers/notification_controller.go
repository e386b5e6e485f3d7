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

package controllers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/labstack/echo/v4"
)

const streamKeepAlive = 30 * time.Second

type NotificationController struct {
	notificationRepository shared.NotificationRepository
	notificationService    shared.NotificationService
}

func NewNotificationController(notificationRepository shared.NotificationRepository, notificationService shared.NotificationService) *NotificationController {
	return &NotificationController{
		notificationRepository: notificationRepository,
		notificationService:    notificationService,
	}
}

type notificationPage struct {
	shared.Paged[models.Notification]
	UnreadCount int64 `json:"unreadCount"`
}

func (c *NotificationController) List(ctx shared.Context) error {
	userID := shared.GetSession(ctx).GetUserID()
	unreadOnly := shared.GetBoolQuery(ctx, "unread")

	page, err := c.notificationRepository.ListByUser(userID, shared.GetPageInfo(ctx), unreadOnly != nil && *unreadOnly)
	if err != nil {
		return echo.NewHTTPError(500, "could not fetch notifications").WithInternal(err)
	}

	unread, err := c.notificationRepository.UnreadCount(userID)
	if err != nil {
		return echo.NewHTTPError(500, "could not count unread notifications").WithInternal(err)
	}

	return ctx.JSON(200, shared.OK(notificationPage{Paged: page, UnreadCount: unread}))
}

func (c *NotificationController) MarkRead(ctx shared.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	found, err := c.notificationRepository.MarkRead(shared.GetSession(ctx).GetUserID(), id)
	if err != nil {
		return echo.NewHTTPError(500, "could not update notification").WithInternal(err)
	}
	if !found {
		return echo.NewHTTPError(404, "notification not found")
	}
	return ctx.JSON(200, shared.OKWithMessage("notification marked as read", nil))
}

func (c *NotificationController) MarkAllRead(ctx shared.Context) error {
	updated, err := c.notificationRepository.MarkAllRead(shared.GetSession(ctx).GetUserID())
	if err != nil {
		return echo.NewHTTPError(500, "could not update notifications").WithInternal(err)
	}
	return ctx.JSON(200, shared.OKWithMessage("all notifications marked as read", map[string]int64{"updated": updated}))
}

// Stream pushes new notifications of the current user as server sent events
// until the client disconnects.
func (c *NotificationController) Stream(ctx shared.Context) error {
	reqCtx := ctx.Request().Context()
	userID := shared.GetSession(ctx).GetUserID()

	messages, err := c.notificationService.Stream(reqCtx, userID)
	if err != nil {
		return echo.NewHTTPError(500, "could not subscribe to notifications").WithInternal(err)
	}

	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(200)
	res.Flush()

	ticker := time.NewTicker(streamKeepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-reqCtx.Done():
			return nil
		case <-ticker.C:
			if _, err := fmt.Fprint(res, ": keep-alive\n\n"); err != nil {
				return nil
			}
			res.Flush()
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			data, err := json.Marshal(msg)
			if err != nil {
				slog.Warn("could not encode notification", "err", err)
				continue
			}
			if _, err := fmt.Fprintf(res, "event: notification\ndata: %s\n\n", data); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
