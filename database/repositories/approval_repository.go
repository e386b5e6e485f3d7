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
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const clauseAssociations = clause.Associations

type approvalRepository struct {
	db *gorm.DB
}

func NewApprovalRepository(db *gorm.DB) *approvalRepository {
	return &approvalRepository{db: db}
}

func (r *approvalRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *approvalRepository) Create(tx *gorm.DB, approval *models.Approval) error {
	return r.getDB(tx).Omit(clause.Associations).Create(approval).Error
}

func (r *approvalRepository) ListBySubmission(submissionID uuid.UUID) ([]models.Approval, error) {
	var approvals []models.Approval
	err := r.db.Preload("Reviewer").Where("submission_id = ?", submissionID).Order("created_at ASC").Find(&approvals).Error
	return approvals, err
}

func (r *approvalRepository) Recent(limit int) ([]models.Approval, error) {
	var approvals []models.Approval
	err := r.db.Order("created_at DESC").Limit(limit).Find(&approvals).Error
	return approvals, err
}
