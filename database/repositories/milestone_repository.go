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
	"time"

	"github.com/google/uuid"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/utils"
	"gorm.io/gorm"
)

type milestoneRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Milestone, *gorm.DB]
}

func NewMilestoneRepository(db *gorm.DB) *milestoneRepository {
	return &milestoneRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Milestone](db),
	}
}

func (r *milestoneRepository) ListByProject(projectID uuid.UUID) ([]models.Milestone, error) {
	var milestones []models.Milestone
	err := r.db.Where("project_id = ?", projectID).Order("due_date ASC NULLS LAST, created_at ASC").Find(&milestones).Error
	return milestones, err
}

func (r *milestoneRepository) ListDueBetween(from, to time.Time) ([]models.Milestone, error) {
	var milestones []models.Milestone
	err := r.db.Where("due_date >= ? AND due_date < ? AND status <> ?", from, to, models.MilestoneStatusCompleted).
		Order("due_date ASC").Find(&milestones).Error
	return milestones, err
}
