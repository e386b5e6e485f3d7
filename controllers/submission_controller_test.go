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
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/infratrack-dev/infratrack/accesscontrol"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/mocks"
	"github.com/infratrack-dev/infratrack/services"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/infratrack-dev/infratrack/utils"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newJSONContext(method, target, body string, session shared.AuthSession) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	if session != nil {
		shared.SetSession(ctx, session)
	}
	return ctx, rec
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	return he.Code
}

func runInTransaction(fn func(*gorm.DB) error) error {
	return fn(nil)
}

type submissionControllerMocks struct {
	submissions *mocks.SubmissionRepository
	approvals   *mocks.ApprovalRepository
	contractors *mocks.ContractorRepository
	notifier    *mocks.NotificationService
	broker      *mocks.PubSubBroker
}

// the controller runs against the real service so the status codes of the
// whole review flow are covered
func newSubmissionControllerUnderTest(t *testing.T) (*SubmissionController, submissionControllerMocks) {
	m := submissionControllerMocks{
		submissions: mocks.NewSubmissionRepository(t),
		approvals:   mocks.NewApprovalRepository(t),
		contractors: mocks.NewContractorRepository(t),
		notifier:    mocks.NewNotificationService(t),
		broker:      mocks.NewPubSubBroker(t),
	}
	service := services.NewSubmissionService(
		m.submissions,
		m.approvals,
		mocks.NewProjectRepository(t),
		mocks.NewMilestoneRepository(t),
		m.contractors,
		m.notifier,
		m.broker,
		utils.NewSyncFireAndForgetSynchronizer(),
	)
	return NewSubmissionController(service, m.submissions, m.approvals, m.contractors), m
}

func TestSubmissionControllerReview(t *testing.T) {
	reviewer := accesscontrol.NewSession(uuid.New(), "me@infratrack.test", models.RoleMEOfficer)

	t.Run("should return 400 if no action is provided", func(t *testing.T) {
		controller, _ := newSubmissionControllerUnderTest(t)
		ctx, _ := newJSONContext("PUT", "/", `{"comments":"looks fine"}`, reviewer)
		ctx.SetParamNames("id")
		ctx.SetParamValues(uuid.NewString())

		err := controller.Review(ctx)
		assert.Equal(t, 400, httpStatus(t, err))
	})

	t.Run("should return 400 for a malformed id", func(t *testing.T) {
		controller, _ := newSubmissionControllerUnderTest(t)
		ctx, _ := newJSONContext("PUT", "/", `{"action":"APPROVED"}`, reviewer)
		ctx.SetParamNames("id")
		ctx.SetParamValues("not-a-uuid")

		err := controller.Review(ctx)
		assert.Equal(t, 400, httpStatus(t, err))
	})

	t.Run("should respond with the reviewed submission and the approval", func(t *testing.T) {
		controller, m := newSubmissionControllerUnderTest(t)
		submission := models.Submission{
			Model:       models.Model{ID: uuid.New()},
			ProjectID:   uuid.New(),
			SubmittedBy: uuid.New(),
			Status:      models.SubmissionStatusPending,
			Title:       "Drainage installed",
		}

		m.submissions.On("Read", submission.ID).Return(submission, nil)
		m.submissions.On("Transaction", mock.Anything).Return(runInTransaction)
		m.submissions.On("UpdateReview", mock.Anything, mock.Anything).Return(nil)
		m.approvals.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		m.notifier.On("Notify", mock.Anything, mock.Anything).Return(nil)
		m.broker.On("Publish", mock.Anything, mock.Anything).Return(nil)

		ctx, rec := newJSONContext("PUT", "/", `{"action":"something-else","comments":"which culvert?"}`, reviewer)
		ctx.SetParamNames("id")
		ctx.SetParamValues(submission.ID.String())

		require.NoError(t, controller.Review(ctx))
		assert.Equal(t, 200, rec.Code)

		var body struct {
			Success bool `json:"success"`
			Data    struct {
				Submission models.Submission `json:"submission"`
				Approval   models.Approval   `json:"approval"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, models.SubmissionStatusRequiresClarification, body.Data.Submission.Status)
		assert.Equal(t, "something-else", body.Data.Approval.Action)
	})
}

func TestSubmissionControllerEdit(t *testing.T) {
	contractorUser := uuid.New()
	contractor := models.ContractorProfile{Model: models.Model{ID: uuid.New()}, UserID: contractorUser}
	session := accesscontrol.NewSession(contractorUser, "c@infratrack.test", models.RoleContractor)

	t.Run("should forbid the owning contractor to edit a reviewed submission", func(t *testing.T) {
		controller, m := newSubmissionControllerUnderTest(t)
		submission := models.Submission{
			Model:        models.Model{ID: uuid.New()},
			ContractorID: contractor.ID,
			Status:       models.SubmissionStatusApproved,
		}
		m.submissions.On("Read", submission.ID).Return(submission, nil)
		m.contractors.On("FindByUserID", contractorUser).Return(contractor, nil)

		ctx, _ := newJSONContext("PUT", "/", `{"title":"changed after approval"}`, session)
		ctx.SetParamNames("id")
		ctx.SetParamValues(submission.ID.String())

		err := controller.Update(ctx)
		assert.Equal(t, 403, httpStatus(t, err))
		m.submissions.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("should let the owning contractor edit a pending submission", func(t *testing.T) {
		controller, m := newSubmissionControllerUnderTest(t)
		submission := models.Submission{
			Model:        models.Model{ID: uuid.New()},
			ContractorID: contractor.ID,
			Status:       models.SubmissionStatusPending,
			Title:        "before",
		}
		m.submissions.On("Read", submission.ID).Return(submission, nil)
		m.submissions.On("Save", mock.Anything, mock.MatchedBy(func(s *models.Submission) bool {
			return s.Title == "after" && s.Status == models.SubmissionStatusPending
		})).Return(nil)
		m.contractors.On("FindByUserID", contractorUser).Return(contractor, nil)

		ctx, rec := newJSONContext("PUT", "/", `{"title":"after"}`, session)
		ctx.SetParamNames("id")
		ctx.SetParamValues(submission.ID.String())

		require.NoError(t, controller.Update(ctx))
		assert.Equal(t, 200, rec.Code)
	})

	t.Run("should hide submissions of other contractors", func(t *testing.T) {
		controller, m := newSubmissionControllerUnderTest(t)
		submission := models.Submission{
			Model:        models.Model{ID: uuid.New()},
			ContractorID: uuid.New(),
		}
		m.submissions.On("ReadWithApprovals", submission.ID).Return(submission, nil)
		m.contractors.On("FindByUserID", contractorUser).Return(contractor, nil)

		ctx, _ := newJSONContext("GET", "/", "", session)
		ctx.SetParamNames("id")
		ctx.SetParamValues(submission.ID.String())

		err := controller.Read(ctx)
		assert.Equal(t, 403, httpStatus(t, err))
	})
}

func TestSubmissionControllerList(t *testing.T) {
	t.Run("should restrict contractors to their own submissions", func(t *testing.T) {
		contractorUser := uuid.New()
		contractor := models.ContractorProfile{Model: models.Model{ID: uuid.New()}, UserID: contractorUser}

		service := mocks.NewSubmissionService(t)
		contractors := mocks.NewContractorRepository(t)
		contractors.On("FindByUserID", contractorUser).Return(contractor, nil)
		service.On("ListPaged", shared.PageInfo{Page: 2, Limit: 5}, mock.MatchedBy(func(f shared.SubmissionFilter) bool {
			return f.ContractorID != nil && *f.ContractorID == contractor.ID && f.Status != nil && *f.Status == models.SubmissionStatusPending
		}), mock.Anything).Return(shared.NewPaged[models.Submission](shared.PageInfo{Page: 2, Limit: 5}, 0, nil), nil)

		controller := NewSubmissionController(service, mocks.NewSubmissionRepository(t), mocks.NewApprovalRepository(t), contractors)

		ctx, rec := newJSONContext("GET", "/submissions?page=2&limit=5&status=PENDING&contractorId="+uuid.NewString(), "", accesscontrol.NewSession(contractorUser, "c@infratrack.test", models.RoleContractor))
		require.NoError(t, controller.List(ctx))
		assert.Equal(t, 200, rec.Code)
	})

	t.Run("should reject unknown status values", func(t *testing.T) {
		controller := NewSubmissionController(mocks.NewSubmissionService(t), mocks.NewSubmissionRepository(t), mocks.NewApprovalRepository(t), mocks.NewContractorRepository(t))

		ctx, _ := newJSONContext("GET", "/submissions?status=DONE", "", accesscontrol.NewSession(uuid.New(), "me@infratrack.test", models.RoleMEOfficer))
		err := controller.List(ctx)
		assert.Equal(t, 400, httpStatus(t, err))
	})
}
