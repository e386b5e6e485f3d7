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

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var DaemonJobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "infratrack_daemon_job_duration_seconds",
	Help:    "Duration of background jobs in seconds",
	Buckets: prometheus.DefBuckets,
}, []string{"job"})

var DaemonJobFailedAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "infratrack_daemon_job_failed_amount",
	Help: "The total number of failed background job runs",
}, []string{"job"})

var MilestoneReminderAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "infratrack_milestone_reminder_amount",
	Help: "The total number of milestone reminders sent to contractors",
})
