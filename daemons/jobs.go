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
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/monitoring"
	"github.com/infratrack-dev/infratrack/utils"
)

// SendMilestoneReminders notifies the assigned contractor of every open
// milestone which is due within the reminder window.
func (runner *DaemonRunner) SendMilestoneReminders(ctx context.Context) error {
	now := runner.now()
	milestones, err := runner.milestoneRepository.ListDueBetween(now, now.AddDate(0, 0, runner.reminderDays))
	if err != nil {
		return fmt.Errorf("could not fetch due milestones: %w", err)
	}
	if len(milestones) == 0 {
		return nil
	}

	projectIDs := utils.DeduplicateSlice(utils.Map(milestones, func(m models.Milestone) uuid.UUID { return m.ProjectID }), uuid.UUID.String)
	projects, err := runner.projectRepository.List(projectIDs)
	if err != nil {
		return fmt.Errorf("could not fetch projects: %w", err)
	}
	projectByID := make(map[uuid.UUID]models.Project, len(projects))
	var contractorIDs []uuid.UUID
	for _, p := range projects {
		projectByID[p.ID] = p
		if p.ContractorID != nil {
			contractorIDs = append(contractorIDs, *p.ContractorID)
		}
	}
	if len(contractorIDs) == 0 {
		return nil
	}

	contractors, err := runner.contractorRepository.List(utils.DeduplicateSlice(contractorIDs, uuid.UUID.String))
	if err != nil {
		return fmt.Errorf("could not fetch contractors: %w", err)
	}
	userByContractor := make(map[uuid.UUID]uuid.UUID, len(contractors))
	for _, c := range contractors {
		userByContractor[c.ID] = c.UserID
	}

	var notifications []models.Notification
	for _, m := range milestones {
		project, ok := projectByID[m.ProjectID]
		if !ok || project.ContractorID == nil || m.DueDate == nil {
			continue
		}
		userID, ok := userByContractor[*project.ContractorID]
		if !ok {
			continue
		}
		notifications = append(notifications, models.Notification{
			UserID:  userID,
			Title:   "Milestone due soon",
			Message: fmt.Sprintf("\"%s\" of %s is due on %s", m.Title, project.Name, m.DueDate.Format(time.DateOnly)),
			Type:    models.NotificationGeneral,
			Link:    utils.Ptr("/projects/" + project.ID.String()),
		})
	}
	if len(notifications) == 0 {
		return nil
	}

	if err := runner.notificationService.Notify(ctx, notifications); err != nil {
		return fmt.Errorf("could not send reminders: %w", err)
	}
	monitoring.MilestoneReminderAmount.Add(float64(len(notifications)))
	slog.Info("milestone reminders sent", "amount", len(notifications))
	return nil
}

// DeleteOldNotifications removes read notifications past the retention.
func (runner *DaemonRunner) DeleteOldNotifications(ctx context.Context) error {
	deleted, err := runner.notificationRepository.DeleteReadBefore(runner.now().Add(-runner.retention))
	if err != nil {
		return fmt.Errorf("could not delete old notifications: %w", err)
	}
	if deleted > 0 {
		slog.Info("old notifications deleted", "amount", deleted)
	}
	return nil
}
