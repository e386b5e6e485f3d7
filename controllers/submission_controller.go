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
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/dtos"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/labstack/echo/v4"
)

type SubmissionController struct {
	submissionService    shared.SubmissionService
	submissionRepository shared.SubmissionRepository
	approvalRepository   shared.ApprovalRepository
	contractorRepository shared.ContractorRepository
}

func NewSubmissionController(submissionService shared.SubmissionService, submissionRepository shared.SubmissionRepository, approvalRepository shared.ApprovalRepository, contractorRepository shared.ContractorRepository) *SubmissionController {
	return &SubmissionController{
		submissionService:    submissionService,
		submissionRepository: submissionRepository,
		approvalRepository:   approvalRepository,
		contractorRepository: contractorRepository,
	}
}

func (c *SubmissionController) List(ctx shared.Context) error {
	status, err := enumQuery(ctx, "status", models.AllSubmissionStatuses)
	if err != nil {
		return err
	}
	submissionType, err := enumQuery(ctx, "type", models.AllSubmissionTypes)
	if err != nil {
		return err
	}
	projectID, err := uuidQuery(ctx, "projectId")
	if err != nil {
		return err
	}
	contractorID, err := uuidQuery(ctx, "contractorId")
	if err != nil {
		return err
	}

	own, err := contractorScope(ctx, c.contractorRepository)
	if err != nil {
		return err
	}
	if own != nil {
		contractorID = own
	}

	page, err := c.submissionService.ListPaged(shared.GetPageInfo(ctx), shared.SubmissionFilter{
		Status:       status,
		Type:         submissionType,
		ProjectID:    projectID,
		ContractorID: contractorID,
	}, shared.GetInMemoryFilter(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(200, shared.OK(page))
}

func (c *SubmissionController) Read(ctx shared.Context) error {
	submission, err := c.readVisible(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(200, shared.OK(submission))
}

func (c *SubmissionController) Approvals(ctx shared.Context) error {
	submission, err := c.readVisible(ctx)
	if err != nil {
		return err
	}

	approvals, err := c.approvalRepository.ListBySubmission(submission.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not fetch approvals").WithInternal(err)
	}
	return ctx.JSON(200, shared.OK(approvals))
}

// @Summary Create a submission for an assigned project
// @Param body body dtos.SubmissionCreateRequest true "Request body"
// @Success 201 {object} models.Submission
// @Router /submissions [post]
func (c *SubmissionController) Create(ctx shared.Context) error {
	var req dtos.SubmissionCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	submission, err := c.submissionService.Create(ctx.Request().Context(), shared.GetSession(ctx), req)
	if err != nil {
		return err
	}
	return ctx.JSON(201, shared.OKWithMessage("submission created successfully", submission))
}

func (c *SubmissionController) Update(ctx shared.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dtos.SubmissionPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	submission, err := c.submissionService.Update(shared.GetSession(ctx), id, req)
	if err != nil {
		return err
	}
	return ctx.JSON(200, shared.OKWithMessage("submission updated successfully", submission))
}

func (c *SubmissionController) Delete(ctx shared.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.submissionService.Delete(shared.GetSession(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(200, shared.OKWithMessage("submission deleted successfully", nil))
}

// @Summary Review a submission
// @Param id path string true "Submission id"
// @Param body body dtos.ReviewRequest true "Request body"
// @Success 200 {object} dtos.ReviewResponse
// @Router /submissions/{id}/review [put]
func (c *SubmissionController) Review(ctx shared.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dtos.ReviewRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	// a missing action is reported by the service with its own message
	if req.Action != "" {
		if err := shared.V.Struct(req); err != nil {
			return echo.NewHTTPError(400, "could not validate request: "+err.Error())
		}
	}

	resp, err := c.submissionService.Review(ctx.Request().Context(), id, shared.GetSession(ctx), req)
	if err != nil {
		return err
	}
	return ctx.JSON(200, shared.OKWithMessage("submission reviewed successfully", resp))
}

func (c *SubmissionController) readVisible(ctx shared.Context) (models.Submission, error) {
	id, err := idParam(ctx, "id")
	if err != nil {
		return models.Submission{}, err
	}

	submission, err := c.submissionRepository.ReadWithApprovals(id)
	if err != nil {
		return models.Submission{}, readError(err, "submission")
	}

	own, err := contractorScope(ctx, c.contractorRepository)
	if err != nil {
		return models.Submission{}, err
	}
	if own != nil && submission.ContractorID != *own {
		return models.Submission{}, echo.NewHTTPError(403, "you can only access your own submissions")
	}
	return submission, nil
}
