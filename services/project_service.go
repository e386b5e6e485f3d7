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
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/database/repositories"
	"github.com/infratrack-dev/infratrack/dtos"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/infratrack-dev/infratrack/transformer"
	"github.com/infratrack-dev/infratrack/utils"
	"github.com/labstack/echo/v4"
)

type projectService struct {
	projectRepository    shared.ProjectRepository
	contractorRepository shared.ContractorRepository
	notificationService  shared.NotificationService
	utils.FireAndForgetSynchronizer
}

var _ shared.ProjectService = &projectService{}

func NewProjectService(projectRepository shared.ProjectRepository, contractorRepository shared.ContractorRepository, notificationService shared.NotificationService, synchronizer utils.FireAndForgetSynchronizer) *projectService {
	return &projectService{
		projectRepository:         projectRepository,
		contractorRepository:      contractorRepository,
		notificationService:       notificationService,
		FireAndForgetSynchronizer: synchronizer,
	}
}

// MatchesProject applies the search and lga filters which are not pushed
// down to the database.
func MatchesProject(project models.Project, filter shared.InMemoryFilter) bool {
	return filter.MatchesSearch(project.Name, project.Description) && filter.MatchesLGA(project.LGA)
}

// ListPaged returns one page of projects. The in-memory filters only see
// that page, so the pagination metadata still describes the unfiltered set.
func (s *projectService) ListPaged(pageInfo shared.PageInfo, filter shared.ProjectFilter, inMemory shared.InMemoryFilter) (shared.Paged[models.Project], error) {
	page, err := s.projectRepository.ListPaged(pageInfo, filter)
	if err != nil {
		return page, echo.NewHTTPError(http.StatusInternalServerError, "could not fetch projects").WithInternal(err)
	}
	if inMemory.IsEmpty() {
		return page, nil
	}
	return page.Filter(func(p models.Project) bool {
		return MatchesProject(p, inMemory)
	}), nil
}

// blank entries are dropped before the check
var errMissingLGA = echo.NewHTTPError(http.StatusBadRequest, "at least one lga is required")

func (s *projectService) Create(ctx context.Context, creator uuid.UUID, req dtos.ProjectCreateRequest) (models.Project, error) {
	project := transformer.ProjectCreateRequestToModel(req)
	project.CreatedBy = creator
	if len(project.LGA) == 0 {
		return models.Project{}, errMissingLGA
	}

	var contractor *models.ContractorProfile
	if project.ContractorID != nil {
		c, err := s.contractorRepository.Read(*project.ContractorID)
		if err != nil {
			if repositories.IsNotFound(err) {
				return models.Project{}, echo.NewHTTPError(http.StatusBadRequest, "contractor does not exist")
			}
			return models.Project{}, echo.NewHTTPError(http.StatusInternalServerError, "could not fetch contractor").WithInternal(err)
		}
		contractor = &c
	}

	if err := s.projectRepository.Create(nil, &project); err != nil {
		return models.Project{}, echo.NewHTTPError(http.StatusInternalServerError, "could not create project").WithInternal(err)
	}

	if contractor != nil {
		s.notifyAssignment(ctx, project, *contractor)
	}
	return project, nil
}

func (s *projectService) Update(ctx context.Context, id uuid.UUID, req dtos.ProjectPatchRequest) (models.Project, error) {
	if req.LGA != nil && len(models.NewStringSet(*req.LGA...)) == 0 {
		return models.Project{}, errMissingLGA
	}

	project, err := s.projectRepository.Read(id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return models.Project{}, echo.NewHTTPError(http.StatusNotFound, "project not found")
		}
		return models.Project{}, echo.NewHTTPError(http.StatusInternalServerError, "could not fetch project").WithInternal(err)
	}

	if !transformer.ApplyProjectPatchRequestToModel(req, &project) {
		return project, nil
	}

	if err := s.projectRepository.Save(nil, &project); err != nil {
		return models.Project{}, echo.NewHTTPError(http.StatusInternalServerError, "could not update project").WithInternal(err)
	}
	return project, nil
}

func (s *projectService) AssignContractor(ctx context.Context, projectID, contractorID uuid.UUID) (models.Project, error) {
	project, err := s.projectRepository.Read(projectID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return models.Project{}, echo.NewHTTPError(http.StatusNotFound, "project not found")
		}
		return models.Project{}, echo.NewHTTPError(http.StatusInternalServerError, "could not fetch project").WithInternal(err)
	}

	contractor, err := s.contractorRepository.Read(contractorID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return models.Project{}, echo.NewHTTPError(http.StatusNotFound, "contractor not found")
		}
		return models.Project{}, echo.NewHTTPError(http.StatusInternalServerError, "could not fetch contractor").WithInternal(err)
	}

	project.ContractorID = &contractor.ID
	project.Contractor = nil
	if err := s.projectRepository.Save(nil, &project); err != nil {
		return models.Project{}, echo.NewHTTPError(http.StatusInternalServerError, "could not assign contractor").WithInternal(err)
	}
	project.Contractor = &contractor

	s.notifyAssignment(ctx, project, contractor)
	return project, nil
}

func (s *projectService) notifyAssignment(ctx context.Context, project models.Project, contractor models.ContractorProfile) {
	ctx = context.WithoutCancel(ctx)
	s.FireAndForget(func() {
		err := s.notificationService.Notify(ctx, []models.Notification{{
			UserID:  contractor.UserID,
			Title:   "New project assigned",
			Message: "You have been assigned to " + project.Name,
			Type:    models.NotificationProjectAssigned,
			Link:    utils.Ptr("/projects/" + project.ID.String()),
		}})
		if err != nil {
			slog.Error("could not notify contractor about assignment", "projectID", project.ID, "err", err)
		}
	})
}
