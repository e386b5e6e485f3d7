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

package controllers

import (
	"testing"

	"github.com/google/uuid"
	"github.com/infratrack-dev/infratrack/accesscontrol"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/mocks"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserControllerDelete(t *testing.T) {
	admin := accesscontrol.NewSession(uuid.New(), "admin@infratrack.test", models.RoleGovernmentAdmin)

	t.Run("should not allow admins to delete themselves", func(t *testing.T) {
		users := mocks.NewUserRepository(t)
		controller := NewUserController(users)

		ctx, _ := newJSONContext("DELETE", "/", "", admin)
		ctx.SetParamNames("id")
		ctx.SetParamValues(admin.GetUserID().String())

		err := controller.Delete(ctx)
		assert.Equal(t, 400, httpStatus(t, err))
		users.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("should return 404 for unknown users", func(t *testing.T) {
		users := mocks.NewUserRepository(t)
		controller := NewUserController(users)
		id := uuid.New()
		users.On("Delete", mock.Anything, id).Return(gorm.ErrRecordNotFound)

		ctx, _ := newJSONContext("DELETE", "/", "", admin)
		ctx.SetParamNames("id")
		ctx.SetParamValues(id.String())

		err := controller.Delete(ctx)
		assert.Equal(t, 404, httpStatus(t, err))
	})

	t.Run("should return 409 if the user is still referenced", func(t *testing.T) {
		users := mocks.NewUserRepository(t)
		controller := NewUserController(users)
		id := uuid.New()
		users.On("Delete", mock.Anything, id).Return(&pgconn.PgError{Code: "23503"})

		ctx, _ := newJSONContext("DELETE", "/", "", admin)
		ctx.SetParamNames("id")
		ctx.SetParamValues(id.String())

		err := controller.Delete(ctx)
		assert.Equal(t, 409, httpStatus(t, err))
	})

	t.Run("should delete other users", func(t *testing.T) {
		users := mocks.NewUserRepository(t)
		controller := NewUserController(users)
		id := uuid.New()
		users.On("Delete", mock.Anything, id).Return(nil)

		ctx, rec := newJSONContext("DELETE", "/", "", admin)
		ctx.SetParamNames("id")
		ctx.SetParamValues(id.String())

		require.NoError(t, controller.Delete(ctx))
		assert.Equal(t, 200, rec.Code)
	})
}

func TestUserControllerCreate(t *testing.T) {
	admin := accesscontrol.NewSession(uuid.New(), "admin@infratrack.test", models.RoleGovernmentAdmin)

	t.Run("should return 400 if the payload does not validate", func(t *testing.T) {
		controller := NewUserController(mocks.NewUserRepository(t))

		ctx, _ := newJSONContext("POST", "/", `{"email":"not-an-email"}`, admin)
		err := controller.Create(ctx)
		assert.Equal(t, 400, httpStatus(t, err))
	})
}
