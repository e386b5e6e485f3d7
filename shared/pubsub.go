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
	"context"

	"github.com/infratrack-dev/infratrack/database/models"
)

type PubSubChannel string

const (
	SubmissionCreatedChannel  PubSubChannel = "submissionCreated"
	SubmissionReviewedChannel PubSubChannel = "submissionReviewed"
	NotificationChannel       PubSubChannel = "notificationCreated"
)

type PubSubMessage interface {
	GetChannel() PubSubChannel
	GetPayload() map[string]any
}

// PubSubBroker fans messages out between api instances.
// The returned channel is closed once ctx is done.
type PubSubBroker interface {
	Publish(ctx context.Context, message PubSubMessage) error
	Subscribe(ctx context.Context, topic PubSubChannel) (<-chan map[string]any, error)
}

type SimpleMessage struct {
	Channel PubSubChannel
	Payload map[string]any
}

func (m SimpleMessage) GetChannel() PubSubChannel {
	return m.Channel
}

func (m SimpleMessage) GetPayload() map[string]any {
	return m.Payload
}

func NewSimplePubSubMessage(channel PubSubChannel, payload map[string]any) *SimpleMessage {
	return &SimpleMessage{
		Channel: channel,
		Payload: payload,
	}
}

// NewSubmissionEventMessage carries the ids and the status of a submission,
// never its content.
func NewSubmissionEventMessage(channel PubSubChannel, submission models.Submission) *SimpleMessage {
	return NewSimplePubSubMessage(channel, map[string]any{
		"submissionId": submission.ID.String(),
		"projectId":    submission.ProjectID.String(),
		"contractorId": submission.ContractorID.String(),
		"status":       string(submission.Status),
	})
}

func NewNotificationMessage(n models.Notification) *SimpleMessage {
	return NewSimplePubSubMessage(NotificationChannel, map[string]any{
		"id":        n.ID.String(),
		"userId":    n.UserID.String(),
		"title":     n.Title,
		"message":   n.Message,
		"type":      string(n.Type),
		"link":      n.Link,
		"createdAt": n.CreatedAt,
	})
}
