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
	"time"

	"github.com/google/uuid"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/database/repositories"
	"github.com/infratrack-dev/infratrack/dtos"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/infratrack-dev/infratrack/transformer"
	"github.com/labstack/echo/v4"
)

type ProjectController struct {
	projectService       shared.ProjectService
	projectRepository    shared.ProjectRepository
	milestoneRepository  shared.MilestoneRepository
	contractorRepository shared.ContractorRepository
}

func NewProjectController(projectService shared.ProjectService, projectRepository shared.ProjectRepository, milestoneRepository shared.MilestoneRepository, contractorRepository shared.ContractorRepository) *ProjectController {
	return &ProjectController{
		projectService:       projectService,
		projectRepository:    projectRepository,
		milestoneRepository:  milestoneRepository,
		contractorRepository: contractorRepository,
	}
}

// contractorScope returns the profile id of a contractor session and nil
// for everybody else.
func contractorScope(ctx shared.Context, contractorRepository shared.ContractorRepository) (*uuid.UUID, error) {
	session := shared.GetSession(ctx)
	if session.GetRole() != models.RoleContractor {
		return nil, nil
	}

	profile, err := contractorRepository.FindByUserID(session.GetUserID())
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, echo.NewHTTPError(403, "contractor profile not found").WithInternal(err)
		}
		return nil, echo.NewHTTPError(500, "could not fetch contractor profile").WithInternal(err)
	}
	return &profile.ID, nil
}

// @Summary List projects
// @Param status query string false "Project status"
// @Param category query string false "Project category"
// @Param priority query string false "Project priority"
// @Param contractorId query string false "Contractor id"
// @Param lga query string false "Comma separated local government areas"
// @Param search query string false "Search in name and description"
// @Success 200 {object} shared.Paged[models.Project]
// @Router /projects [get]
func (c *ProjectController) List(ctx shared.Context) error {
	status, err := enumQuery(ctx, "status", models.AllProjectStatuses)
	if err != nil {
		return err
	}
	category, err := enumQuery(ctx, "category", models.AllProjectCategories)
	if err != nil {
		return err
	}
	priority, err := enumQuery(ctx, "priority", models.AllProjectPriorities)
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

	page, err := c.projectService.ListPaged(shared.GetPageInfo(ctx), shared.ProjectFilter{
		Status:       status,
		Category:     category,
		Priority:     priority,
		ContractorID: contractorID,
		IsPublic:     shared.GetBoolQuery(ctx, "isPublic"),
	}, shared.GetInMemoryFilter(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(200, shared.OK(page))
}

func (c *ProjectController) Read(ctx shared.Context) error {
	project, err := c.readVisible(ctx, true)
	if err != nil {
		return err
	}
	return ctx.JSON(200, shared.OK(project))
}

func (c *ProjectController) Create(ctx shared.Context) error {
	var req dtos.ProjectCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	project, err := c.projectService.Create(ctx.Request().Context(), shared.GetSession(ctx).GetUserID(), req)
	if err != nil {
		return err
	}
	return ctx.JSON(201, shared.OKWithMessage("project created successfully", project))
}

func (c *ProjectController) Update(ctx shared.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dtos.ProjectPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	project, err := c.projectService.Update(ctx.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return ctx.JSON(200, shared.OKWithMessage("project updated successfully", project))
}

func (c *ProjectController) Delete(ctx shared.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.projectRepository.Delete(nil, id); err != nil {
		return deleteError(err, "project")
	}
	return ctx.JSON(200, shared.OKWithMessage("project deleted successfully", nil))
}

func (c *ProjectController) AssignContractor(ctx shared.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dtos.AssignContractorRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	project, err := c.projectService.AssignContractor(ctx.Request().Context(), id, req.ContractorID)
	if err != nil {
		return err
	}
	return ctx.JSON(200, shared.OKWithMessage("contractor assigned successfully", project))
}

func (c *ProjectController) ListMilestones(ctx shared.Context) error {
	project, err := c.readVisible(ctx, false)
	if err != nil {
		return err
	}

	milestones, err := c.milestoneRepository.ListByProject(project.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not fetch milestones").WithInternal(err)
	}
	return ctx.JSON(200, shared.OK(milestones))
}

func (c *ProjectController) CreateMilestone(ctx shared.Context) error {
	project, err := c.readVisible(ctx, false)
	if err != nil {
		return err
	}

	var req dtos.MilestoneCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	milestone := transformer.MilestoneCreateRequestToModel(req, project)
	if err := c.milestoneRepository.Create(nil, &milestone); err != nil {
		return echo.NewHTTPError(500, "could not create milestone").WithInternal(err)
	}
	return ctx.JSON(201, shared.OKWithMessage("milestone created successfully", milestone))
}

func (c *ProjectController) UpdateMilestone(ctx shared.Context) error {
	milestone, err := c.readMilestone(ctx)
	if err != nil {
		return err
	}

	var req dtos.MilestonePatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	if transformer.ApplyMilestonePatchRequestToModel(req, &milestone, time.Now()) {
		if err := c.milestoneRepository.Save(nil, &milestone); err != nil {
			return echo.NewHTTPError(500, "could not update milestone").WithInternal(err)
		}
	}
	return ctx.JSON(200, shared.OKWithMessage("milestone updated successfully", milestone))
}

func (c *ProjectController) DeleteMilestone(ctx shared.Context) error {
	milestone, err := c.readMilestone(ctx)
	if err != nil {
		return err
	}

	if err := c.milestoneRepository.Delete(nil, milestone.ID); err != nil {
		return deleteError(err, "milestone")
	}
	return ctx.JSON(200, shared.OKWithMessage("milestone deleted successfully", nil))
}

// readVisible loads the project from the path. Contractors only see the
// projects they are assigned to.
func (c *ProjectController) readVisible(ctx shared.Context, withRelations bool) (models.Project, error) {
	id, err := idParam(ctx, "id")
	if err != nil {
		return models.Project{}, err
	}

	var project models.Project
	if withRelations {
		project, err = c.projectRepository.ReadWithRelations(id)
	} else {
		project, err = c.projectRepository.Read(id)
	}
	if err != nil {
		return models.Project{}, readError(err, "project")
	}

	own, err := contractorScope(ctx, c.contractorRepository)
	if err != nil {
		return models.Project{}, err
	}
	if own != nil && !project.IsAssignedTo(*own) {
		return models.Project{}, echo.NewHTTPError(403, "you are not assigned to this project")
	}
	return project, nil
}

func (c *ProjectController) readMilestone(ctx shared.Context) (models.Milestone, error) {
	projectID, err := idParam(ctx, "id")
	if err != nil {
		return models.Milestone{}, err
	}
	milestoneID, err := idParam(ctx, "milestoneId")
	if err != nil {
		return models.Milestone{}, err
	}

	milestone, err := c.milestoneRepository.Read(milestoneID)
	if err != nil {
		return models.Milestone{}, readError(err, "milestone")
	}
	if milestone.ProjectID != projectID {
		return models.Milestone{}, echo.NewHTTPError(404, "milestone not found")
	}
	return milestone, nil
}
