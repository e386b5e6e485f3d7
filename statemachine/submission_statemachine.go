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

package statemachine

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/dtos"
)

var (
	ErrNotSubmissionOwner = errors.New("not allowed to modify this submission")
	ErrAlreadyReviewed    = errors.New("submission already reviewed")
)

// ReviewOutcome maps a reviewer action to the resulting submission status.
// Actions are matched exactly; everything unknown asks for clarification.
func ReviewOutcome(action string) models.SubmissionStatus {
	switch models.SubmissionStatus(action) {
	case models.SubmissionStatusApproved, models.SubmissionStatusRejected, models.SubmissionStatusFlagged:
		return models.SubmissionStatus(action)
	default:
		return models.SubmissionStatusRequiresClarification
	}
}

// CanEdit decides whether an actor may update or delete a submission.
// contractorID is the contractor profile of the actor, if any.
func CanEdit(submission models.Submission, role models.UserRole, contractorID *uuid.UUID) error {
	if role.IsReviewer() {
		return nil
	}
	if role != models.RoleContractor || contractorID == nil || *contractorID != submission.ContractorID {
		return ErrNotSubmissionOwner
	}
	if submission.Status != models.SubmissionStatusPending {
		return ErrAlreadyReviewed
	}
	return nil
}

// ApplyReview moves the submission into the status derived from the
// review action and returns the audit record for it. The submission is
// mutated in place. The caller persists both.
func ApplyReview(submission *models.Submission, reviewerID uuid.UUID, req dtos.ReviewRequest, now time.Time) models.Approval {
	status := ReviewOutcome(req.Action)

	submission.Status = status
	submission.ReviewedAt = &now
	submission.ReviewedBy = &reviewerID
	submission.ReviewComments = req.Comments
	if req.QualityScore != nil {
		submission.QualityScore = req.QualityScore
	}
	if req.SafetyCompliance != nil {
		submission.SafetyCompliance = req.SafetyCompliance
	}

	return models.Approval{
		SubmissionID: submission.ID,
		ReviewerID:   reviewerID,
		Action:       req.Action,
		Status:       status,
		Comments:     req.Comments,
		QualityScore: req.QualityScore,
		CreatedAt:    now,
	}
}
