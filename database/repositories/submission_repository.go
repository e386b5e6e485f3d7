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

type submissionRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Submission, *gorm.DB]
}

func NewSubmissionRepository(db *gorm.DB) *submissionRepository {
	return &submissionRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Submission](db),
	}
}

func (r *submissionRepository) ReadWithApprovals(id uuid.UUID) (models.Submission, error) {
	var submission models.Submission
	err := r.db.Preload("Project").Preload("Approvals", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).First(&submission, "id = ?", id).Error
	return submission, err
}

func (r *submissionRepository) ListPaged(pageInfo shared.PageInfo, filter shared.SubmissionFilter) (shared.Paged[models.Submission], error) {
	return paginate[models.Submission](r.db, pageInfo, func(q *gorm.DB) *gorm.DB {
		if filter.Status != nil {
			q = q.Where("status = ?", *filter.Status)
		}
		if filter.Type != nil {
			q = q.Where("type = ?", *filter.Type)
		}
		if filter.ProjectID != nil {
			q = q.Where("project_id = ?", *filter.ProjectID)
		}
		if filter.ContractorID != nil {
			q = q.Where("contractor_id = ?", *filter.ContractorID)
		}
		return q
	}, "submitted_at DESC", "Project")
}

func (r *submissionRepository) ListByContractor(contractorID uuid.UUID) ([]models.Submission, error) {
	var submissions []models.Submission
	err := r.db.Where("contractor_id = ?", contractorID).Order("submitted_at DESC").Find(&submissions).Error
	return submissions, err
}

func (r *submissionRepository) ListByProject(projectID uuid.UUID) ([]models.Submission, error) {
	var submissions []models.Submission
	err := r.db.Where("project_id = ?", projectID).Order("submitted_at DESC").Find(&submissions).Error
	return submissions, err
}

func (r *submissionRepository) Recent(limit int) ([]models.Submission, error) {
	var submissions []models.Submission
	err := r.db.Preload("Project").Order("submitted_at DESC").Limit(limit).Find(&submissions).Error
	return submissions, err
}

// UpdateReview writes the review columns only. Associations are not touched.
func (r *submissionRepository) UpdateReview(tx *gorm.DB, submission *models.Submission) error {
	return r.GetDB(tx).Model(submission).Omit(clauseAssociations).Select(
		"status",
		"reviewed_at",
		"reviewed_by",
		"review_comments",
		"quality_score",
		"safety_compliance",
		"updated_at",
	).Updates(submission).Error
}
