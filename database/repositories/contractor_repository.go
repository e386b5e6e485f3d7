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

type contractorRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.ContractorProfile, *gorm.DB]
}

func NewContractorRepository(db *gorm.DB) *contractorRepository {
	return &contractorRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.ContractorProfile](db),
	}
}

func (r *contractorRepository) ReadWithUser(id uuid.UUID) (models.ContractorProfile, error) {
	var contractor models.ContractorProfile
	err := r.db.Preload("User").First(&contractor, "id = ?", id).Error
	return contractor, err
}

func (r *contractorRepository) FindByUserID(userID uuid.UUID) (models.ContractorProfile, error) {
	var contractor models.ContractorProfile
	err := r.db.Where("user_id = ?", userID).First(&contractor).Error
	return contractor, err
}

func (r *contractorRepository) FindByRegistrationNo(registrationNo string) (models.ContractorProfile, error) {
	var contractor models.ContractorProfile
	err := r.db.Where("registration_no = ?", registrationNo).First(&contractor).Error
	return contractor, err
}

func (r *contractorRepository) ListPaged(pageInfo shared.PageInfo, filter shared.ContractorFilter) (shared.Paged[models.ContractorProfile], error) {
	return paginate[models.ContractorProfile](r.db, pageInfo, func(q *gorm.DB) *gorm.DB {
		if filter.IsVerified != nil {
			q = q.Where("is_verified = ?", *filter.IsVerified)
		}
		if filter.IsCertified != nil {
			q = q.Where("is_certified = ?", *filter.IsCertified)
		}
		return q
	}, "created_at DESC", "User")
}
