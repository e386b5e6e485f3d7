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

package daemons

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/mocks"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/infratrack-dev/infratrack/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type runnerMocks struct {
	milestones    *mocks.MilestoneRepository
	projects      *mocks.ProjectRepository
	contractors   *mocks.ContractorRepository
	notifications *mocks.NotificationRepository
	notifier      *mocks.NotificationService
}

func newRunnerUnderTest(t *testing.T, now time.Time) (*DaemonRunner, runnerMocks) {
	m := runnerMocks{
		milestones:    mocks.NewMilestoneRepository(t),
		projects:      mocks.NewProjectRepository(t),
		contractors:   mocks.NewContractorRepository(t),
		notifications: mocks.NewNotificationRepository(t),
		notifier:      mocks.NewNotificationService(t),
	}
	runner := NewDaemonRunner(shared.Config{
		DaemonInterval:        time.Hour,
		MilestoneReminderDays: 3,
		NotificationRetention: 90 * 24 * time.Hour,
	}, m.milestones, m.projects, m.contractors, m.notifications, m.notifier)
	runner.now = func() time.Time { return now }
	return runner, m
}

func TestSendMilestoneReminders(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	t.Run("should notify the user of the assigned contractor", func(t *testing.T) {
		runner, m := newRunnerUnderTest(t, now)

		contractorID := uuid.New()
		userID := uuid.New()
		project := models.Project{Model: models.Model{ID: uuid.New()}, Name: "Ring Road", ContractorID: &contractorID}
		due := now.AddDate(0, 0, 2)
		milestone := models.Milestone{ProjectID: project.ID, Title: "Asphalt", DueDate: &due}

		m.milestones.On("ListDueBetween", now, now.AddDate(0, 0, 3)).Return([]models.Milestone{milestone}, nil)
		m.projects.On("List", []uuid.UUID{project.ID}).Return([]models.Project{project}, nil)
		m.contractors.On("List", []uuid.UUID{contractorID}).Return([]models.ContractorProfile{{Model: models.Model{ID: contractorID}, UserID: userID}}, nil)
		m.notifier.On("Notify", mock.Anything, mock.MatchedBy(func(n []models.Notification) bool {
			return len(n) == 1 &&
				n[0].UserID == userID &&
				n[0].Type == models.NotificationGeneral &&
				n[0].Message == "\"Asphalt\" of Ring Road is due on 2026-03-12" &&
				utils.SafeDereference(n[0].Link) == "/projects/"+project.ID.String()
		})).Return(nil)

		assert.NoError(t, runner.SendMilestoneReminders(context.Background()))
	})

	t.Run("should skip milestones of projects without contractor", func(t *testing.T) {
		runner, m := newRunnerUnderTest(t, now)

		project := models.Project{Model: models.Model{ID: uuid.New()}}
		due := now.AddDate(0, 0, 1)

		m.milestones.On("ListDueBetween", mock.Anything, mock.Anything).Return([]models.Milestone{{ProjectID: project.ID, DueDate: &due}}, nil)
		m.projects.On("List", []uuid.UUID{project.ID}).Return([]models.Project{project}, nil)

		assert.NoError(t, runner.SendMilestoneReminders(context.Background()))
		m.notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	})

	t.Run("should do nothing if no milestone is due", func(t *testing.T) {
		runner, m := newRunnerUnderTest(t, now)
		m.milestones.On("ListDueBetween", mock.Anything, mock.Anything).Return(nil, nil)

		assert.NoError(t, runner.SendMilestoneReminders(context.Background()))
		m.projects.AssertNotCalled(t, "List", mock.Anything)
	})

	t.Run("should return an error if the milestones cannot be fetched", func(t *testing.T) {
		runner, m := newRunnerUnderTest(t, now)
		m.milestones.On("ListDueBetween", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

		assert.Error(t, runner.SendMilestoneReminders(context.Background()))
	})
}

func TestDeleteOldNotifications(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	t.Run("should delete read notifications older than the retention", func(t *testing.T) {
		runner, m := newRunnerUnderTest(t, now)
		m.notifications.On("DeleteReadBefore", now.Add(-90*24*time.Hour)).Return(int64(4), nil)

		assert.NoError(t, runner.DeleteOldNotifications(context.Background()))
	})

	t.Run("should wrap repository errors", func(t *testing.T) {
		runner, m := newRunnerUnderTest(t, now)
		m.notifications.On("DeleteReadBefore", mock.Anything).Return(int64(0), errors.New("timeout"))

		err := runner.DeleteOldNotifications(context.Background())
		assert.ErrorContains(t, err, "could not delete old notifications")
	})
}

func TestTick(t *testing.T) {
	t.Run("should keep running the remaining jobs if one fails", func(t *testing.T) {
		runner, m := newRunnerUnderTest(t, time.Now())
		m.milestones.On("ListDueBetween", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
		m.notifications.On("DeleteReadBefore", mock.Anything).Return(int64(0), nil)

		runner.tick(context.Background())

		m.notifications.AssertCalled(t, "DeleteReadBefore", mock.Anything)
	})

	t.Run("should stop when the context is cancelled", func(t *testing.T) {
		runner, m := newRunnerUnderTest(t, time.Now())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		runner.tick(ctx)

		m.milestones.AssertNotCalled(t, "ListDueBetween", mock.Anything, mock.Anything)
	})
}
