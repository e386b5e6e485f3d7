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

var SubmissionCreatedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "infratrack_submission_created_amount",
	Help: "The total number of submissions created by contractors",
})

var SubmissionReviewedAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "infratrack_submission_reviewed_amount",
	Help: "The total number of submission reviews by resulting status",
}, []string{"status"})

var ApprovalAppendedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "infratrack_approval_appended_amount",
	Help: "The total number of approval records appended to the audit trail",
})

var NotificationPublishFailedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "infratrack_notification_publish_failed_amount",
	Help: "The total number of notifications which could not be fanned out through the broker",
})
