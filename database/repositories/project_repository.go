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

package repositories

import (
	"github.com/google/uuid"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/infratrack-dev/infratrack/utils"
	"gorm.io/gorm"
)

type projectRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Project, *gorm.DB]
}

func NewProjectRepository(db *gorm.DB) *projectRepository {
	return &projectRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Project](db),
	}
}

func (r *projectRepository) ReadWithRelations(id uuid.UUID) (models.Project, error) {
	var project models.Project
	err := r.db.Preload("Contractor").Preload("Milestones", func(db *gorm.DB) *gorm.DB {
		return db.Order("due_date ASC NULLS LAST, created_at ASC")
	}).First(&project, "id = ?", id).Error
	return project, err
}

// ListPaged only pushes the equality filters to the database.
func (r *projectRepository) ListPaged(pageInfo shared.PageInfo, filter shared.ProjectFilter) (shared.Paged[models.Project], error) {
	return paginate[models.Project](r.db, pageInfo, func(q *gorm.DB) *gorm.DB {
		if filter.Status != nil {
			q = q.Where("status = ?", *filter.Status)
		}
		if filter.Category != nil {
			q = q.Where("category = ?", *filter.Category)
		}
		if filter.Priority != nil {
			q = q.Where("priority = ?", *filter.Priority)
		}
		if filter.ContractorID != nil {
			q = q.Where("contractor_id = ?", *filter.ContractorID)
		}
		if filter.IsPublic != nil {
			q = q.Where("is_public = ?", *filter.IsPublic)
		}
		return q
	}, "created_at DESC", "Contractor")
}

func (r *projectRepository) ListPublic() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("is_public = ?", true).Order("created_at DESC").Find(&projects).Error
	return projects, err
}

func (r *projectRepository) ListByContractor(contractorID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("contractor_id = ?", contractorID).Order("created_at DESC").Find(&projects).Error
	return projects, err
}
