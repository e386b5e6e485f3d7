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

	"github.com/google/uuid"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/dtos"
	"github.com/infratrack-dev/infratrack/mocks"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/infratrack-dev/infratrack/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestProjectListPaged(t *testing.T) {
	pageInfo := shared.PageInfo{Page: 2, Limit: 3}
	page := shared.NewPaged(pageInfo, 7, []models.Project{
		{Name: "Ikeja Road", LGA: models.NewStringSet("Ikeja")},
		{Name: "Epe Clinic", Description: "primary health care", LGA: models.NewStringSet("Epe")},
		{Name: "Badagry Bridge", LGA: models.NewStringSet("Badagry", "Epe")},
	})

	t.Run("should filter the fetched page by lga but keep the database pagination", func(t *testing.T) {
		projects := mocks.NewProjectRepository(t)
		projects.On("ListPaged", pageInfo, shared.ProjectFilter{}).Return(page, nil)
		s := NewProjectService(projects, mocks.NewContractorRepository(t), mocks.NewNotificationService(t), utils.NewSyncFireAndForgetSynchronizer())

		res, err := s.ListPaged(pageInfo, shared.ProjectFilter{}, shared.InMemoryFilter{LGAs: []string{"epe"}})
		require.NoError(t, err)
		assert.Len(t, res.Items, 2)
		assert.Equal(t, int64(7), res.Pagination.Total)
		assert.Equal(t, 3, res.Pagination.Pages)
		assert.Equal(t, 2, res.Pagination.Page)
	})

	t.Run("should search name and description case insensitively", func(t *testing.T) {
		projects := mocks.NewProjectRepository(t)
		projects.On("ListPaged", pageInfo, shared.ProjectFilter{}).Return(page, nil)
		s := NewProjectService(projects, mocks.NewContractorRepository(t), mocks.NewNotificationService(t), utils.NewSyncFireAndForgetSynchronizer())

		res, err := s.ListPaged(pageInfo, shared.ProjectFilter{}, shared.InMemoryFilter{Search: "HEALTH"})
		require.NoError(t, err)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "Epe Clinic", res.Items[0].Name)
	})
}

func TestProjectCreate(t *testing.T) {
	t.Run("should return 400 if the contractor does not exist", func(t *testing.T) {
		contractors := mocks.NewContractorRepository(t)
		contractorID := uuid.New()
		contractors.On("Read", contractorID).Return(models.ContractorProfile{}, gorm.ErrRecordNotFound)
		s := NewProjectService(mocks.NewProjectRepository(t), contractors, mocks.NewNotificationService(t), utils.NewSyncFireAndForgetSynchronizer())

		_, err := s.Create(context.Background(), uuid.New(), dtos.ProjectCreateRequest{Name: "x", LGA: dtos.StringOrSlice{"Epe"}, ContractorID: &contractorID})
		assert.Equal(t, 400, httpStatus(t, err))
	})

	t.Run("should set defaults, the slug and the creator", func(t *testing.T) {
		projects := mocks.NewProjectRepository(t)
		creator := uuid.New()
		projects.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Project) bool {
			return p.Slug == "lekki-coastal-road" && p.CreatedBy == creator &&
				p.Status == models.ProjectStatusNotStarted && p.Priority == models.PriorityMedium
		})).Return(nil)
		s := NewProjectService(projects, mocks.NewContractorRepository(t), mocks.NewNotificationService(t), utils.NewSyncFireAndForgetSynchronizer())

		project, err := s.Create(context.Background(), creator, dtos.ProjectCreateRequest{
			Name:     "Lekki Coastal Road",
			Category: models.CategoryRoads,
			LGA:      dtos.StringOrSlice{"Eti-Osa"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Eti-Osa"}, []string(project.LGA))
	})
	t.Run("should return 400 if only blank lgas are given", func(t *testing.T) {
		s := NewProjectService(mocks.NewProjectRepository(t), mocks.NewContractorRepository(t), mocks.NewNotificationService(t), utils.NewSyncFireAndForgetSynchronizer())

		_, err := s.Create(context.Background(), uuid.New(), dtos.ProjectCreateRequest{
			Name:     "Lekki Coastal Road",
			Category: models.CategoryRoads,
			LGA:      dtos.StringOrSlice{" ", ""},
		})
		assert.Equal(t, 400, httpStatus(t, err))
	})
}

func TestAssignContractor(t *testing.T) {
	t.Run("should return 404 if the project does not exist", func(t *testing.T) {
		projects := mocks.NewProjectRepository(t)
		id := uuid.New()
		projects.On("Read", id).Return(models.Project{}, gorm.ErrRecordNotFound)
		s := NewProjectService(projects, mocks.NewContractorRepository(t), mocks.NewNotificationService(t), utils.NewSyncFireAndForgetSynchronizer())

		_, err := s.AssignContractor(context.Background(), id, uuid.New())
		assert.Equal(t, 404, httpStatus(t, err))
	})

	t.Run("should assign the contractor and notify its user", func(t *testing.T) {
		projects := mocks.NewProjectRepository(t)
		contractors := mocks.NewContractorRepository(t)
		notifications := mocks.NewNotificationService(t)
		project := models.Project{Model: models.Model{ID: uuid.New()}, Name: "School"}
		contractor := models.ContractorProfile{Model: models.Model{ID: uuid.New()}, UserID: uuid.New()}

		projects.On("Read", project.ID).Return(project, nil)
		contractors.On("Read", contractor.ID).Return(contractor, nil)
		projects.On("Save", mock.Anything, mock.MatchedBy(func(p *models.Project) bool {
			return p.IsAssignedTo(contractor.ID)
		})).Return(nil)
		notifications.On("Notify", mock.Anything, mock.MatchedBy(func(n []models.Notification) bool {
			return len(n) == 1 && n[0].UserID == contractor.UserID && n[0].Type == models.NotificationProjectAssigned
		})).Return(nil)

		s := NewProjectService(projects, contractors, notifications, utils.NewSyncFireAndForgetSynchronizer())
		res, err := s.AssignContractor(context.Background(), project.ID, contractor.ID)
		require.NoError(t, err)
		assert.True(t, res.IsAssignedTo(contractor.ID))
	})
}

func TestProjectUpdate(t *testing.T) {
	t.Run("should only touch the whitelisted fields which are set", func(t *testing.T) {
		projects := mocks.NewProjectRepository(t)
		creator := uuid.New()
		project := models.Project{Model: models.Model{ID: uuid.New()}, Name: "Old", Progress: 10, CreatedBy: creator, SpentBudget: decimal.NewFromInt(99)}
		projects.On("Read", project.ID).Return(project, nil)
		projects.On("Save", mock.Anything, mock.Anything).Return(nil)
		s := NewProjectService(projects, mocks.NewContractorRepository(t), mocks.NewNotificationService(t), utils.NewSyncFireAndForgetSynchronizer())

		updated, err := s.Update(context.Background(), project.ID, dtos.ProjectPatchRequest{Progress: utils.Ptr(60)})
		require.NoError(t, err)
		assert.Equal(t, 60, updated.Progress)
		assert.Equal(t, "Old", updated.Name)
		assert.Equal(t, creator, updated.CreatedBy)
		assert.Equal(t, "99", updated.SpentBudget.String())
	})

	t.Run("should return 400 if the patch clears the lgas", func(t *testing.T) {
		s := NewProjectService(mocks.NewProjectRepository(t), mocks.NewContractorRepository(t), mocks.NewNotificationService(t), utils.NewSyncFireAndForgetSynchronizer())

		for _, lga := range []dtos.StringOrSlice{{}, {"  "}} {
			_, err := s.Update(context.Background(), uuid.New(), dtos.ProjectPatchRequest{LGA: &lga})
			assert.Equal(t, 400, httpStatus(t, err))
		}
	})

	t.Run("should replace the lgas without blanks", func(t *testing.T) {
		projects := mocks.NewProjectRepository(t)
		project := models.Project{Model: models.Model{ID: uuid.New()}, LGA: models.NewStringSet("Epe")}
		projects.On("Read", project.ID).Return(project, nil)
		projects.On("Save", mock.Anything, mock.Anything).Return(nil)
		s := NewProjectService(projects, mocks.NewContractorRepository(t), mocks.NewNotificationService(t), utils.NewSyncFireAndForgetSynchronizer())

		updated, err := s.Update(context.Background(), project.ID, dtos.ProjectPatchRequest{LGA: &dtos.StringOrSlice{"Ikeja", " "}})
		require.NoError(t, err)
		assert.Equal(t, []string{"Ikeja"}, []string(updated.LGA))
	})
}
