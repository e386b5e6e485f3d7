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

package transformer

import (
	"time"

	"github.com/gosimple/slug"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/dtos"
	"github.com/infratrack-dev/infratrack/utils"
)

func ProjectCreateRequestToModel(req dtos.ProjectCreateRequest) models.Project {
	status := req.Status
	if status == "" {
		status = models.ProjectStatusNotStarted
	}
	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	return models.Project{
		Name:            req.Name,
		Slug:            slug.Make(req.Name),
		Description:     req.Description,
		Category:        req.Category,
		LGA:             models.NewStringSet(req.LGA...),
		Location:        req.Location,
		Status:          status,
		Priority:        priority,
		Progress:        req.Progress,
		Budget:          req.Budget,
		AllocatedBudget: req.AllocatedBudget,
		SpentBudget:     req.SpentBudget,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		ContractorID:    req.ContractorID,
		IsPublic:        req.IsPublic,
	}
}

// ApplyProjectPatchRequestToModel applies the whitelisted fields. Budgets
// are not cross checked against each other.
func ApplyProjectPatchRequestToModel(patch dtos.ProjectPatchRequest, project *models.Project) bool {
	updated := false
	if patch.Name != nil {
		project.Name = *patch.Name
		project.Slug = slug.Make(*patch.Name)
		updated = true
	}
	if patch.Description != nil {
		project.Description = *patch.Description
		updated = true
	}
	if patch.Category != nil {
		project.Category = *patch.Category
		updated = true
	}
	if patch.LGA != nil {
		project.LGA = models.NewStringSet(*patch.LGA...)
		updated = true
	}
	if patch.Location != nil {
		project.Location = patch.Location
		updated = true
	}
	if patch.Status != nil {
		project.Status = *patch.Status
		updated = true
	}
	if patch.Priority != nil {
		project.Priority = *patch.Priority
		updated = true
	}
	if patch.Progress != nil {
		project.Progress = *patch.Progress
		updated = true
	}
	if patch.Budget != nil {
		project.Budget = *patch.Budget
		updated = true
	}
	if patch.AllocatedBudget != nil {
		project.AllocatedBudget = *patch.AllocatedBudget
		updated = true
	}
	if patch.SpentBudget != nil {
		project.SpentBudget = *patch.SpentBudget
		updated = true
	}
	if patch.StartDate != nil {
		project.StartDate = patch.StartDate
		updated = true
	}
	if patch.EndDate != nil {
		project.EndDate = patch.EndDate
		updated = true
	}
	if patch.IsPublic != nil {
		project.IsPublic = *patch.IsPublic
		updated = true
	}
	return updated
}

func ProjectToPublicDTO(project models.Project) dtos.PublicProjectDTO {
	dto := dtos.PublicProjectDTO{
		ID:          project.ID,
		Name:        project.Name,
		Slug:        project.Slug,
		Description: project.Description,
		Category:    project.Category,
		LGA:         []string(project.LGA),
		Location:    project.Location,
		Status:      project.Status,
		Progress:    project.Progress,
		Budget:      project.Budget,
		StartDate:   project.StartDate,
		EndDate:     project.EndDate,
		Milestones:  project.Milestones,
		UpdatedAt:   project.UpdatedAt,
	}
	if dto.LGA == nil {
		dto.LGA = []string{}
	}
	if project.Contractor != nil {
		dto.Contractor = utils.Ptr(project.Contractor.CompanyName)
	}
	return dto
}

func MilestoneCreateRequestToModel(req dtos.MilestoneCreateRequest, project models.Project) models.Milestone {
	status := req.Status
	if status == "" {
		status = models.MilestoneStatusPending
	}
	m := models.Milestone{
		ProjectID:   project.ID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      status,
		Progress:    req.Progress,
	}
	if status == models.MilestoneStatusCompleted {
		m.CompletedAt = utils.Ptr(time.Now())
	}
	return m
}

func ApplyMilestonePatchRequestToModel(patch dtos.MilestonePatchRequest, milestone *models.Milestone, now time.Time) bool {
	updated := false
	if patch.Title != nil {
		milestone.Title = *patch.Title
		updated = true
	}
	if patch.Description != nil {
		milestone.Description = *patch.Description
		updated = true
	}
	if patch.DueDate != nil {
		milestone.DueDate = patch.DueDate
		updated = true
	}
	if patch.Progress != nil {
		milestone.Progress = *patch.Progress
		updated = true
	}
	if patch.Status != nil {
		if *patch.Status == models.MilestoneStatusCompleted && milestone.Status != models.MilestoneStatusCompleted {
			milestone.CompletedAt = &now
		} else if *patch.Status != models.MilestoneStatusCompleted {
			milestone.CompletedAt = nil
		}
		milestone.Status = *patch.Status
		updated = true
	}
	return updated
}
