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

type documentRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Document, *gorm.DB]
}

func NewDocumentRepository(db *gorm.DB) *documentRepository {
	return &documentRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Document](db),
	}
}

func (r *documentRepository) ListPaged(pageInfo shared.PageInfo, filter shared.DocumentFilter) (shared.Paged[models.Document], error) {
	return paginate[models.Document](r.db, pageInfo, func(q *gorm.DB) *gorm.DB {
		if filter.ProjectID != nil {
			q = q.Where("project_id = ?", *filter.ProjectID)
		}
		if filter.SubmissionID != nil {
			q = q.Where("submission_id = ?", *filter.SubmissionID)
		}
		if filter.Category != nil {
			q = q.Where("category = ?", *filter.Category)
		}
		if filter.UploadedBy != nil {
			q = q.Where("uploaded_by = ?", *filter.UploadedBy)
		}
		return q
	}, "created_at DESC")
}
