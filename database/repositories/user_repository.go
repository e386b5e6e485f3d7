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
	"strings"

	"github.com/google/uuid"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/infratrack-dev/infratrack/utils"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.User, *gorm.DB]
}

func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.User](db),
	}
}

func (r *userRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	err := r.db.Where("lower(email) = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	return user, err
}

func (r *userRepository) ReadWithProfile(id uuid.UUID) (models.User, error) {
	var user models.User
	err := r.db.Preload("ContractorProfile").First(&user, "id = ?", id).Error
	return user, err
}

func (r *userRepository) ListPaged(pageInfo shared.PageInfo, filter shared.UserFilter) (shared.Paged[models.User], error) {
	return paginate[models.User](r.db, pageInfo, func(q *gorm.DB) *gorm.DB {
		if filter.Role != nil {
			q = q.Where("role = ?", *filter.Role)
		}
		if filter.IsActive != nil {
			q = q.Where("is_active = ?", *filter.IsActive)
		}
		return q
	}, "created_at DESC")
}

func (r *userRepository) ListByRoles(roles []models.UserRole) ([]models.User, error) {
	var users []models.User
	if len(roles) == 0 {
		return users, nil
	}
	err := r.db.Where("role IN ? AND is_active = ?", roles, true).Find(&users).Error
	return users, err
}
