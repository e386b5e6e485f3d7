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
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/infratrack-dev/infratrack/database"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/database/repositories"
	"github.com/infratrack-dev/infratrack/dtos"
	"github.com/infratrack-dev/infratrack/monitoring"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/infratrack-dev/infratrack/statemachine"
	"github.com/infratrack-dev/infratrack/transformer"
	"github.com/infratrack-dev/infratrack/utils"
	"github.com/labstack/echo/v4"
)

type submissionService struct {
	submissionRepository shared.SubmissionRepository
	approvalRepository   shared.ApprovalRepository
	projectRepository    shared.ProjectRepository
	milestoneRepository  shared.MilestoneRepository
	contractorRepository shared.ContractorRepository
	notificationService  shared.NotificationService
	broker               shared.PubSubBroker
	utils.FireAndForgetSynchronizer
	now func() time.Time
}

var _ shared.SubmissionService = &submissionService{}

func NewSubmissionService(
	submissionRepository shared.SubmissionRepository,
	approvalRepository shared.ApprovalRepository,
	projectRepository shared.ProjectRepository,
	milestoneRepository shared.MilestoneRepository,
	contractorRepository shared.ContractorRepository,
	notificationService shared.NotificationService,
	broker shared.PubSubBroker,
	synchronizer utils.FireAndForgetSynchronizer,
) *submissionService {
	return &submissionService{
		submissionRepository:      submissionRepository,
		approvalRepository:        approvalRepository,
		projectRepository:         projectRepository,
		milestoneRepository:       milestoneRepository,
		contractorRepository:      contractorRepository,
		notificationService:       notificationService,
		broker:                    broker,
		FireAndForgetSynchronizer: synchronizer,
		now:                       time.Now,
	}
}

func MatchesSubmission(submission models.Submission, filter shared.InMemoryFilter) bool {
	if !filter.MatchesSearch(submission.Title, submission.Description) {
		return false
	}
	if len(filter.LGAs) > 0 && submission.Project == nil {
		return false
	}
	return submission.Project == nil || filter.MatchesLGA(submission.Project.LGA)
}

func (s *submissionService) ListPaged(pageInfo shared.PageInfo, filter shared.SubmissionFilter, inMemory shared.InMemoryFilter) (shared.Paged[models.Submission], error) {
	page, err := s.submissionRepository.ListPaged(pageInfo, filter)
	if err != nil {
		return page, echo.NewHTTPError(http.StatusInternalServerError, "could not fetch submissions").WithInternal(err)
	}
	if inMemory.IsEmpty() {
		return page, nil
	}
	return page.Filter(func(sub models.Submission) bool {
		return MatchesSubmission(sub, inMemory)
	}), nil
}

// contractorOf resolves the contractor profile of the actor. Actors
// without a profile get nil.
func (s *submissionService) contractorOf(actor shared.AuthSession) (*models.ContractorProfile, error) {
	if actor.GetRole() != models.RoleContractor {
		return nil, nil
	}
	profile, err := s.contractorRepository.FindByUserID(actor.GetUserID())
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, nil
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "could not fetch contractor profile").WithInternal(err)
	}
	return &profile, nil
}

func (s *submissionService) Create(ctx context.Context, actor shared.AuthSession, req dtos.SubmissionCreateRequest) (models.Submission, error) {
	contractor, err := s.contractorOf(actor)
	if err != nil {
		return models.Submission{}, err
	}
	if contractor == nil {
		return models.Submission{}, echo.NewHTTPError(http.StatusForbidden, "only contractors can create submissions")
	}

	project, err := s.projectRepository.Read(req.ProjectID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return models.Submission{}, echo.NewHTTPError(http.StatusNotFound, "project not found")
		}
		return models.Submission{}, echo.NewHTTPError(http.StatusInternalServerError, "could not fetch project").WithInternal(err)
	}

	if !project.IsAssignedTo(contractor.ID) {
		return models.Submission{}, echo.NewHTTPError(http.StatusForbidden, "you are not assigned to this project")
	}

	if req.MilestoneID != nil {
		milestone, err := s.milestoneRepository.Read(*req.MilestoneID)
		if err != nil || milestone.ProjectID != project.ID {
			return models.Submission{}, echo.NewHTTPError(http.StatusBadRequest, "milestone does not belong to the project")
		}
	}

	submission := transformer.SubmissionCreateRequestToModel(req, contractor.ID, actor.GetUserID(), s.now())
	if err := s.submissionRepository.Create(nil, &submission); err != nil {
		return models.Submission{}, echo.NewHTTPError(http.StatusInternalServerError, "could not create submission").WithInternal(err)
	}
	monitoring.SubmissionCreatedAmount.Inc()

	ctx = context.WithoutCancel(ctx)
	s.FireAndForget(func() {
		err := s.notificationService.NotifyRoles(ctx, []models.UserRole{models.RoleMEOfficer, models.RoleGovernmentAdmin}, models.Notification{
			Title:   "New submission",
			Message: contractor.CompanyName + " submitted \"" + submission.Title + "\" for " + project.Name,
			Type:    models.NotificationSubmissionCreated,
			Link:    utils.Ptr("/submissions/" + submission.ID.String()),
		})
		if err != nil {
			slog.Error("could not notify reviewers", "submissionID", submission.ID, "err", err)
		}
		s.publish(ctx, shared.SubmissionCreatedChannel, submission)
	})

	return submission, nil
}

func (s *submissionService) readForEdit(actor shared.AuthSession, id uuid.UUID) (models.Submission, error) {
	submission, err := s.submissionRepository.Read(id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return models.Submission{}, echo.NewHTTPError(http.StatusNotFound, "submission not found")
		}
		return models.Submission{}, echo.NewHTTPError(http.StatusInternalServerError, "could not fetch submission").WithInternal(err)
	}

	contractor, err := s.contractorOf(actor)
	if err != nil {
		return models.Submission{}, err
	}
	var contractorID *uuid.UUID
	if contractor != nil {
		contractorID = &contractor.ID
	}

	if err := statemachine.CanEdit(submission, actor.GetRole(), contractorID); err != nil {
		if errors.Is(err, statemachine.ErrAlreadyReviewed) {
			return models.Submission{}, echo.NewHTTPError(http.StatusForbidden, "cannot modify a submission after it has been reviewed").WithInternal(err)
		}
		return models.Submission{}, echo.NewHTTPError(http.StatusForbidden, "you are not allowed to modify this submission").WithInternal(err)
	}
	return submission, nil
}

func (s *submissionService) Update(actor shared.AuthSession, id uuid.UUID, req dtos.SubmissionPatchRequest) (models.Submission, error) {
	submission, err := s.readForEdit(actor, id)
	if err != nil {
		return models.Submission{}, err
	}

	if !transformer.ApplySubmissionPatchRequestToModel(req, &submission) {
		return submission, nil
	}

	if err := s.submissionRepository.Save(nil, &submission); err != nil {
		return models.Submission{}, echo.NewHTTPError(http.StatusInternalServerError, "could not update submission").WithInternal(err)
	}
	return submission, nil
}

func (s *submissionService) Delete(actor shared.AuthSession, id uuid.UUID) error {
	if _, err := s.readForEdit(actor, id); err != nil {
		return err
	}

	if err := s.submissionRepository.Delete(nil, id); err != nil {
		if database.IsForeignKeyError(err) {
			return echo.NewHTTPError(http.StatusConflict, "submission has review history and cannot be deleted").WithInternal(err)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not delete submission").WithInternal(err)
	}
	return nil
}

// Review records a decision on the submission. The status change and the
// approval entry are written in one transaction so every review leaves
// exactly one audit record.
func (s *submissionService) Review(ctx context.Context, id uuid.UUID, reviewer shared.AuthSession, req dtos.ReviewRequest) (dtos.ReviewResponse, error) {
	if req.Action == "" {
		return dtos.ReviewResponse{}, echo.NewHTTPError(http.StatusBadRequest, "action is required")
	}

	submission, err := s.submissionRepository.Read(id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return dtos.ReviewResponse{}, echo.NewHTTPError(http.StatusNotFound, "submission not found")
		}
		return dtos.ReviewResponse{}, echo.NewHTTPError(http.StatusInternalServerError, "could not fetch submission").WithInternal(err)
	}

	approval := statemachine.ApplyReview(&submission, reviewer.GetUserID(), req, s.now())

	err = s.submissionRepository.Transaction(func(tx shared.DB) error {
		if err := s.submissionRepository.UpdateReview(tx, &submission); err != nil {
			return err
		}
		return s.approvalRepository.Create(tx, &approval)
	})
	if err != nil {
		return dtos.ReviewResponse{}, echo.NewHTTPError(http.StatusInternalServerError, "could not record review").WithInternal(err)
	}

	monitoring.SubmissionReviewedAmount.WithLabelValues(string(submission.Status)).Inc()
	monitoring.ApprovalAppendedAmount.Inc()

	ctx = context.WithoutCancel(ctx)
	s.FireAndForget(func() {
		err := s.notificationService.Notify(ctx, []models.Notification{{
			UserID:  submission.SubmittedBy,
			Title:   "Submission reviewed",
			Message: "\"" + submission.Title + "\" is now " + string(submission.Status),
			Type:    models.NotificationSubmissionReviewed,
			Link:    utils.Ptr("/submissions/" + submission.ID.String()),
		}})
		if err != nil {
			slog.Error("could not notify submitter", "submissionID", submission.ID, "err", err)
		}
		s.publish(ctx, shared.SubmissionReviewedChannel, submission)
	})

	return dtos.ReviewResponse{
		Submission: submission,
		Approval:   approval,
	}, nil
}

func (s *submissionService) publish(ctx context.Context, channel shared.PubSubChannel, submission models.Submission) {
	if err := s.broker.Publish(ctx, shared.NewSubmissionEventMessage(channel, submission)); err != nil {
		slog.Warn("could not publish submission event", "channel", channel, "err", err)
	}
}
