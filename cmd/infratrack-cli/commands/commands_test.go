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

package commands

import (
	"bytes"
	"errors"
	"testing"

	"github.com/infratrack-dev/infratrack/accesscontrol"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/dtos"
	"github.com/infratrack-dev/infratrack/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateAdmin(t *testing.T) {
	t.Run("should create an active admin with a hashed password", func(t *testing.T) {
		users := mocks.NewUserRepository(t)
		users.On("FindByEmail", "root@infratrack.test").Return(models.User{}, gorm.ErrRecordNotFound)
		users.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.Role == models.RoleGovernmentAdmin && u.IsActive &&
				accesscontrol.CheckPassword(u.PasswordHash, "supersecret")
		})).Return(nil)

		user, err := createAdmin(users, adminOptions{Email: " Root@Infratrack.test ", Password: "supersecret", FirstName: "Ada"})
		require.NoError(t, err)
		assert.Equal(t, "root@infratrack.test", user.Email)
		assert.Equal(t, "Ada", user.FirstName)
	})

	t.Run("should refuse an existing email", func(t *testing.T) {
		users := mocks.NewUserRepository(t)
		users.On("FindByEmail", "root@infratrack.test").Return(models.User{Email: "root@infratrack.test"}, nil)

		_, err := createAdmin(users, adminOptions{Email: "root@infratrack.test", Password: "supersecret"})
		assert.ErrorIs(t, err, errAdminExists)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should refuse short passwords before touching the database", func(t *testing.T) {
		users := mocks.NewUserRepository(t)

		_, err := createAdmin(users, adminOptions{Email: "root@infratrack.test", Password: "short"})
		assert.ErrorIs(t, err, accesscontrol.ErrPasswordTooShort)
	})

	t.Run("should report lookup failures", func(t *testing.T) {
		users := mocks.NewUserRepository(t)
		users.On("FindByEmail", "root@infratrack.test").Return(models.User{}, errors.New("connection refused"))

		_, err := createAdmin(users, adminOptions{Email: "root@infratrack.test", Password: "supersecret"})
		assert.ErrorContains(t, err, "connection refused")
	})
}

func TestRenderStats(t *testing.T) {
	t.Run("should print the dashboard numbers", func(t *testing.T) {
		var out bytes.Buffer
		renderDashboardStats(&out, dtos.DashboardStats{
			Projects: dtos.ProjectStats{
				Total:    12,
				ByStatus: map[string]int{"COMPLETED": 4, "IN_PROGRESS": 8},
			},
			Budget: dtos.BudgetStats{TotalBudget: decimal.NewFromInt(1500000)},
		})

		assert.Contains(t, out.String(), "12")
		assert.Contains(t, out.String(), "1500000.00")
		assert.Contains(t, out.String(), "COMPLETED")
	})

	t.Run("should print one row per lga", func(t *testing.T) {
		var out bytes.Buffer
		renderLGAStats(&out, []dtos.LGAStats{{LGA: "Ikeja", Projects: 3}, {LGA: "Epe", Projects: 1}})

		assert.Contains(t, out.String(), "Ikeja")
		assert.Contains(t, out.String(), "Epe")
	})
}

func TestMigrateCommand(t *testing.T) {
	t.Run("should migrate up by default", func(t *testing.T) {
		cmd := NewMigrateCommand()
		down, err := cmd.Flags().GetInt("down")
		require.NoError(t, err)
		assert.Equal(t, 0, down)
	})

	t.Run("should not accept positional arguments", func(t *testing.T) {
		cmd := NewMigrateCommand()
		assert.Error(t, cmd.Args(cmd, []string{"up"}))
	})
}
