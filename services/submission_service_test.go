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
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/infratrack-dev/infratrack/accesscontrol"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/dtos"
	"github.com/infratrack-dev/infratrack/mocks"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/infratrack-dev/infratrack/utils"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	return httpErr.Code
}

func runInTransaction(fn func(*gorm.DB) error) error {
	return fn(nil)
}

type submissionServiceMocks struct {
	submissions   *mocks.SubmissionRepository
	approvals     *mocks.ApprovalRepository
	projects      *mocks.ProjectRepository
	milestones    *mocks.MilestoneRepository
	contractors   *mocks.ContractorRepository
	notifications *mocks.NotificationService
	broker        *mocks.PubSubBroker
}

func newSubmissionServiceUnderTest(t *testing.T, now time.Time) (*submissionService, submissionServiceMocks) {
	m := submissionServiceMocks{
		submissions:   mocks.NewSubmissionRepository(t),
		approvals:     mocks.NewApprovalRepository(t),
		projects:      mocks.NewProjectRepository(t),
		milestones:    mocks.NewMilestoneRepository(t),
		contractors:   mocks.NewContractorRepository(t),
		notifications: mocks.NewNotificationService(t),
		broker:        mocks.NewPubSubBroker(t),
	}
	s := NewSubmissionService(m.submissions, m.approvals, m.projects, m.milestones, m.contractors, m.notifications, m.broker, utils.NewSyncFireAndForgetSynchronizer())
	s.now = func() time.Time { return now }
	return s, m
}

func TestSubmissionReview(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	reviewer := accesscontrol.NewSession(uuid.New(), "me@gov.ng", models.RoleMEOfficer)

	t.Run("should return 400 if the action is missing", func(t *testing.T) {
		s, _ := newSubmissionServiceUnderTest(t, now)

		_, err := s.Review(context.Background(), uuid.New(), reviewer, dtos.ReviewRequest{})
		assert.Equal(t, 400, httpStatus(t, err))
	})

	t.Run("should return 404 if the submission does not exist", func(t *testing.T) {
		s, m := newSubmissionServiceUnderTest(t, now)
		id := uuid.New()
		m.submissions.On("Read", id).Return(models.Submission{}, gorm.ErrRecordNotFound)

		_, err := s.Review(context.Background(), id, reviewer, dtos.ReviewRequest{Action: "APPROVED"})
		assert.Equal(t, 404, httpStatus(t, err))
	})

	t.Run("should update the submission and append exactly one approval in one transaction", func(t *testing.T) {
		s, m := newSubmissionServiceUnderTest(t, now)
		submitter := uuid.New()
		submission := models.Submission{
			Model:       models.Model{ID: uuid.New()},
			ProjectID:   uuid.New(),
			SubmittedBy: submitter,
			Status:      models.SubmissionStatusPending,
			Title:       "Foundation done",
		}

		m.submissions.On("Read", submission.ID).Return(submission, nil)
		m.submissions.On("Transaction", mock.Anything).Return(runInTransaction)
		m.submissions.On("UpdateReview", mock.Anything, mock.MatchedBy(func(s *models.Submission) bool {
			return s.Status == models.SubmissionStatusApproved && s.ReviewedBy != nil && *s.ReviewedBy == reviewer.GetUserID()
		})).Return(nil).Once()
		m.approvals.On("Create", mock.Anything, mock.MatchedBy(func(a *models.Approval) bool {
			return a.SubmissionID == submission.ID && a.Action == "APPROVED" && a.Status == models.SubmissionStatusApproved
		})).Return(nil).Once()
		m.notifications.On("Notify", mock.Anything, mock.MatchedBy(func(n []models.Notification) bool {
			return len(n) == 1 && n[0].UserID == submitter && n[0].Type == models.NotificationSubmissionReviewed
		})).Return(nil)
		m.broker.On("Publish", mock.Anything, mock.MatchedBy(func(msg shared.PubSubMessage) bool {
			return msg.GetChannel() == shared.SubmissionReviewedChannel
		})).Return(nil)

		res, err := s.Review(context.Background(), submission.ID, reviewer, dtos.ReviewRequest{
			Action:       "APPROVED",
			Comments:     utils.Ptr("looks good"),
			QualityScore: utils.Ptr(87),
		})
		require.NoError(t, err)

		assert.Equal(t, models.SubmissionStatusApproved, res.Submission.Status)
		assert.Equal(t, now, *res.Submission.ReviewedAt)
		assert.Equal(t, "looks good", *res.Submission.ReviewComments)
		assert.Equal(t, 87, *res.Submission.QualityScore)
		assert.Equal(t, "APPROVED", res.Approval.Action)
		m.approvals.AssertNumberOfCalls(t, "Create", 1)
	})

	t.Run("should map an unknown action to requires clarification", func(t *testing.T) {
		s, m := newSubmissionServiceUnderTest(t, now)
		submission := models.Submission{Model: models.Model{ID: uuid.New()}, Status: models.SubmissionStatusPending}

		m.submissions.On("Read", submission.ID).Return(submission, nil)
		m.submissions.On("Transaction", mock.Anything).Return(runInTransaction)
		m.submissions.On("UpdateReview", mock.Anything, mock.Anything).Return(nil)
		m.approvals.On("Create", mock.Anything, mock.Anything).Return(nil)
		m.notifications.On("Notify", mock.Anything, mock.Anything).Return(nil)
		m.broker.On("Publish", mock.Anything, mock.Anything).Return(nil)

		res, err := s.Review(context.Background(), submission.ID, reviewer, dtos.ReviewRequest{Action: "approve"})
		require.NoError(t, err)
		assert.Equal(t, models.SubmissionStatusRequiresClarification, res.Submission.Status)
		assert.Equal(t, "approve", res.Approval.Action)
	})

	t.Run("should not append an approval if the status update fails", func(t *testing.T) {
		s, m := newSubmissionServiceUnderTest(t, now)
		submission := models.Submission{Model: models.Model{ID: uuid.New()}, Status: models.SubmissionStatusPending}

		m.submissions.On("Read", submission.ID).Return(submission, nil)
		m.submissions.On("Transaction", mock.Anything).Return(runInTransaction)
		m.submissions.On("UpdateReview", mock.Anything, mock.Anything).Return(gorm.ErrInvalidTransaction)

		_, err := s.Review(context.Background(), submission.ID, reviewer, dtos.ReviewRequest{Action: "REJECTED"})
		assert.Equal(t, 500, httpStatus(t, err))
		m.approvals.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestSubmissionCreate(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	userID := uuid.New()
	contractor := models.ContractorProfile{Model: models.Model{ID: uuid.New()}, UserID: userID, CompanyName: "Buildit Ltd"}
	actor := accesscontrol.NewSession(userID, "c@buildit.ng", models.RoleContractor)

	t.Run("should reject contractors which are not assigned to the project", func(t *testing.T) {
		s, m := newSubmissionServiceUnderTest(t, now)
		project := models.Project{Model: models.Model{ID: uuid.New()}, ContractorID: utils.Ptr(uuid.New())}

		m.contractors.On("FindByUserID", userID).Return(contractor, nil)
		m.projects.On("Read", project.ID).Return(project, nil)

		_, err := s.Create(context.Background(), actor, dtos.SubmissionCreateRequest{ProjectID: project.ID, Type: models.SubmissionTypeProgress, Title: "week 3"})
		assert.Equal(t, 403, httpStatus(t, err))
	})

	t.Run("should reject users without a contractor profile", func(t *testing.T) {
		s, _ := newSubmissionServiceUnderTest(t, now)
		officer := accesscontrol.NewSession(uuid.New(), "o@gov.ng", models.RoleGovernmentOfficer)

		_, err := s.Create(context.Background(), officer, dtos.SubmissionCreateRequest{ProjectID: uuid.New()})
		assert.Equal(t, 403, httpStatus(t, err))
	})

	t.Run("should create a pending submission and notify the reviewers", func(t *testing.T) {
		s, m := newSubmissionServiceUnderTest(t, now)
		project := models.Project{Model: models.Model{ID: uuid.New()}, Name: "Lekki Bridge", ContractorID: &contractor.ID}

		m.contractors.On("FindByUserID", userID).Return(contractor, nil)
		m.projects.On("Read", project.ID).Return(project, nil)
		m.submissions.On("Create", mock.Anything, mock.MatchedBy(func(sub *models.Submission) bool {
			return sub.Status == models.SubmissionStatusPending && sub.ContractorID == contractor.ID && sub.SubmittedBy == userID && sub.SubmittedAt.Equal(now)
		})).Return(nil)
		m.notifications.On("NotifyRoles", mock.Anything, []models.UserRole{models.RoleMEOfficer, models.RoleGovernmentAdmin}, mock.Anything).Return(nil)
		m.broker.On("Publish", mock.Anything, mock.MatchedBy(func(msg shared.PubSubMessage) bool {
			return msg.GetChannel() == shared.SubmissionCreatedChannel
		})).Return(nil)

		sub, err := s.Create(context.Background(), actor, dtos.SubmissionCreateRequest{ProjectID: project.ID, Type: models.SubmissionTypeProgress, Title: "week 3"})
		require.NoError(t, err)
		assert.Equal(t, models.SubmissionStatusPending, sub.Status)
	})

	t.Run("should reject a milestone of another project", func(t *testing.T) {
		s, m := newSubmissionServiceUnderTest(t, now)
		project := models.Project{Model: models.Model{ID: uuid.New()}, ContractorID: &contractor.ID}
		milestone := models.Milestone{Model: models.Model{ID: uuid.New()}, ProjectID: uuid.New()}

		m.contractors.On("FindByUserID", userID).Return(contractor, nil)
		m.projects.On("Read", project.ID).Return(project, nil)
		m.milestones.On("Read", milestone.ID).Return(milestone, nil)

		_, err := s.Create(context.Background(), actor, dtos.SubmissionCreateRequest{ProjectID: project.ID, MilestoneID: &milestone.ID, Type: models.SubmissionTypeMilestone, Title: "done"})
		assert.Equal(t, 400, httpStatus(t, err))
	})
}

func TestSubmissionUpdateAndDelete(t *testing.T) {
	now := time.Now()
	userID := uuid.New()
	contractor := models.ContractorProfile{Model: models.Model{ID: uuid.New()}, UserID: userID}
	owner := accesscontrol.NewSession(userID, "c@buildit.ng", models.RoleContractor)

	t.Run("should let the owner edit a pending submission", func(t *testing.T) {
		s, m := newSubmissionServiceUnderTest(t, now)
		submission := models.Submission{Model: models.Model{ID: uuid.New()}, ContractorID: contractor.ID, Status: models.SubmissionStatusPending, Title: "old"}

		m.submissions.On("Read", submission.ID).Return(submission, nil)
		m.contractors.On("FindByUserID", userID).Return(contractor, nil)
		m.submissions.On("Save", mock.Anything, mock.Anything).Return(nil)

		updated, err := s.Update(owner, submission.ID, dtos.SubmissionPatchRequest{Title: utils.Ptr("new")})
		require.NoError(t, err)
		assert.Equal(t, "new", updated.Title)
		assert.Equal(t, models.SubmissionStatusPending, updated.Status)
	})

	t.Run("should return 403 if the owner edits a reviewed submission", func(t *testing.T) {
		s, m := newSubmissionServiceUnderTest(t, now)
		submission := models.Submission{Model: models.Model{ID: uuid.New()}, ContractorID: contractor.ID, Status: models.SubmissionStatusApproved}

		m.submissions.On("Read", submission.ID).Return(submission, nil)
		m.contractors.On("FindByUserID", userID).Return(contractor, nil)

		_, err := s.Update(owner, submission.ID, dtos.SubmissionPatchRequest{Title: utils.Ptr("new")})
		assert.Equal(t, 403, httpStatus(t, err))

		err = s.Delete(owner, submission.ID)
		assert.Equal(t, 403, httpStatus(t, err))
		m.submissions.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("should return 403 for another contractor", func(t *testing.T) {
		s, m := newSubmissionServiceUnderTest(t, now)
		submission := models.Submission{Model: models.Model{ID: uuid.New()}, ContractorID: uuid.New(), Status: models.SubmissionStatusPending}

		m.submissions.On("Read", submission.ID).Return(submission, nil)
		m.contractors.On("FindByUserID", userID).Return(contractor, nil)

		err := s.Delete(owner, submission.ID)
		assert.Equal(t, 403, httpStatus(t, err))
	})

	t.Run("should let a reviewer delete a reviewed submission", func(t *testing.T) {
		s, m := newSubmissionServiceUnderTest(t, now)
		admin := accesscontrol.NewSession(uuid.New(), "a@gov.ng", models.RoleGovernmentAdmin)
		submission := models.Submission{Model: models.Model{ID: uuid.New()}, Status: models.SubmissionStatusFlagged}

		m.submissions.On("Read", submission.ID).Return(submission, nil)
		m.submissions.On("Delete", mock.Anything, submission.ID).Return(nil)

		assert.NoError(t, s.Delete(admin, submission.ID))
	})
}

func TestSubmissionListPaged(t *testing.T) {
	t.Run("should keep the database total when the search narrows the page", func(t *testing.T) {
		s, m := newSubmissionServiceUnderTest(t, time.Now())
		pageInfo := shared.PageInfo{Page: 1, Limit: 2}
		page := shared.NewPaged(pageInfo, 25, []models.Submission{
			{Title: "Drainage works"},
			{Title: "Asphalt layer"},
		})
		m.submissions.On("ListPaged", pageInfo, shared.SubmissionFilter{}).Return(page, nil)

		res, err := s.ListPaged(pageInfo, shared.SubmissionFilter{}, shared.InMemoryFilter{Search: "drain"})
		require.NoError(t, err)
		assert.Len(t, res.Items, 1)
		assert.Equal(t, int64(25), res.Pagination.Total)
		assert.Equal(t, 13, res.Pagination.Pages)
	})
}
