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
	"log/slog"
	"sync"
	"time"

	"github.com/infratrack-dev/infratrack/monitoring"
	"github.com/infratrack-dev/infratrack/shared"
)

type job struct {
	name string
	run  func(ctx context.Context) error
}

type DaemonRunner struct {
	milestoneRepository    shared.MilestoneRepository
	projectRepository      shared.ProjectRepository
	contractorRepository   shared.ContractorRepository
	notificationRepository shared.NotificationRepository
	notificationService    shared.NotificationService

	interval     time.Duration
	reminderDays int
	retention    time.Duration
	now          func() time.Time

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewDaemonRunner(
	cfg shared.Config,
	milestoneRepository shared.MilestoneRepository,
	projectRepository shared.ProjectRepository,
	contractorRepository shared.ContractorRepository,
	notificationRepository shared.NotificationRepository,
	notificationService shared.NotificationService,
) *DaemonRunner {
	return &DaemonRunner{
		milestoneRepository:    milestoneRepository,
		projectRepository:      projectRepository,
		contractorRepository:   contractorRepository,
		notificationRepository: notificationRepository,
		notificationService:    notificationService,
		interval:               cfg.DaemonInterval,
		reminderDays:           cfg.MilestoneReminderDays,
		retention:              cfg.NotificationRetention,
		now:                    time.Now,
	}
}

func (runner *DaemonRunner) jobs() []job {
	return []job{
		{name: "milestone-reminders", run: runner.SendMilestoneReminders},
		{name: "notification-cleanup", run: runner.DeleteOldNotifications},
	}
}

// Start runs all jobs once and then on every tick until Stop is called.
func (runner *DaemonRunner) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	runner.cancel = cancel

	runner.wg.Add(1)
	go func() {
		defer runner.wg.Done()
		runner.tick(ctx)

		ticker := time.NewTicker(runner.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runner.tick(ctx)
			}
		}
	}()
}

func (runner *DaemonRunner) Stop() {
	if runner.cancel != nil {
		runner.cancel()
	}
	runner.wg.Wait()
}

func (runner *DaemonRunner) tick(ctx context.Context) {
	daemonStart := time.Now()
	slog.Info("starting background jobs")

	for _, j := range runner.jobs() {
		if ctx.Err() != nil {
			return
		}
		start := time.Now()
		if err := j.run(ctx); err != nil {
			// a failing job must not block the others
			monitoring.DaemonJobFailedAmount.WithLabelValues(j.name).Inc()
			slog.Error("background job failed", "job", j.name, "err", err)
			continue
		}
		monitoring.DaemonJobDuration.WithLabelValues(j.name).Observe(time.Since(start).Seconds())
	}

	slog.Info("background jobs finished", "duration", time.Since(daemonStart))
}
