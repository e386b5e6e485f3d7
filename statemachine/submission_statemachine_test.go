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
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/dtos"
	"github.com/infratrack-dev/infratrack/utils"
	"github.com/stretchr/testify/assert"
)

func TestReviewOutcome(t *testing.T) {
	t.Run("should map the terminal actions onto themselves", func(t *testing.T) {
		assert.Equal(t, models.SubmissionStatusApproved, ReviewOutcome("APPROVED"))
		assert.Equal(t, models.SubmissionStatusRejected, ReviewOutcome("REJECTED"))
		assert.Equal(t, models.SubmissionStatusFlagged, ReviewOutcome("FLAGGED"))
	})

	t.Run("should ask for clarification on anything else", func(t *testing.T) {
		for _, action := range []string{"REQUIRES_CLARIFICATION", "PENDING", "UNDER_REVIEW", "approved", "", "MAYBE"} {
			assert.Equal(t, models.SubmissionStatusRequiresClarification, ReviewOutcome(action), action)
		}
	})
}

func TestCanEdit(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	pending := models.Submission{ContractorID: owner, Status: models.SubmissionStatusPending}

	t.Run("should allow the owning contractor while pending", func(t *testing.T) {
		assert.NoError(t, CanEdit(pending, models.RoleContractor, &owner))
	})

	t.Run("should reject another contractor", func(t *testing.T) {
		assert.ErrorIs(t, CanEdit(pending, models.RoleContractor, &other), ErrNotSubmissionOwner)
		assert.ErrorIs(t, CanEdit(pending, models.RoleContractor, nil), ErrNotSubmissionOwner)
	})

	t.Run("should reject the owner once the submission left pending", func(t *testing.T) {
		for _, status := range models.AllSubmissionStatuses {
			if status == models.SubmissionStatusPending {
				continue
			}
			s := models.Submission{ContractorID: owner, Status: status}
			assert.ErrorIs(t, CanEdit(s, models.RoleContractor, &owner), ErrAlreadyReviewed, status)
		}
	})

	t.Run("should always allow reviewers", func(t *testing.T) {
		reviewed := models.Submission{ContractorID: owner, Status: models.SubmissionStatusApproved}
		assert.NoError(t, CanEdit(reviewed, models.RoleMEOfficer, nil))
		assert.NoError(t, CanEdit(reviewed, models.RoleGovernmentAdmin, nil))
	})

	t.Run("should reject government officers", func(t *testing.T) {
		assert.ErrorIs(t, CanEdit(pending, models.RoleGovernmentOfficer, nil), ErrNotSubmissionOwner)
	})
}

func TestApplyReview(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	reviewer := uuid.New()

	t.Run("should set the review fields and build one matching approval", func(t *testing.T) {
		submission := models.Submission{Status: models.SubmissionStatusPending, Progress: utils.Ptr(50)}
		submission.ID = uuid.New()

		approval := ApplyReview(&submission, reviewer, dtos.ReviewRequest{
			Action:       "APPROVED",
			Comments:     utils.Ptr("looks good"),
			QualityScore: utils.Ptr(80),
		}, now)

		assert.Equal(t, models.SubmissionStatusApproved, submission.Status)
		assert.Equal(t, now, *submission.ReviewedAt)
		assert.Equal(t, reviewer, *submission.ReviewedBy)
		assert.Equal(t, "looks good", *submission.ReviewComments)
		assert.Equal(t, 80, *submission.QualityScore)
		assert.Equal(t, 50, *submission.Progress)

		assert.Equal(t, submission.ID, approval.SubmissionID)
		assert.Equal(t, reviewer, approval.ReviewerID)
		assert.Equal(t, "APPROVED", approval.Action)
		assert.Equal(t, models.SubmissionStatusApproved, approval.Status)
		assert.Equal(t, now, approval.CreatedAt)
	})

	t.Run("should keep existing scores if the review does not carry any", func(t *testing.T) {
		submission := models.Submission{QualityScore: utils.Ptr(40), SafetyCompliance: utils.Ptr(true)}
		approval := ApplyReview(&submission, reviewer, dtos.ReviewRequest{Action: "whatever"}, now)

		assert.Equal(t, models.SubmissionStatusRequiresClarification, submission.Status)
		assert.Equal(t, 40, *submission.QualityScore)
		assert.True(t, *submission.SafetyCompliance)
		assert.Equal(t, "whatever", approval.Action)
		assert.Nil(t, approval.QualityScore)
	})
}
