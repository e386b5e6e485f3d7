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
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/infratrack-dev/infratrack/accesscontrol"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/dtos"
	"github.com/infratrack-dev/infratrack/mocks"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthServiceUnderTest(t *testing.T) (*authService, *mocks.UserRepository, *mocks.ContractorRepository, *accesscontrol.JWTManager) {
	users := mocks.NewUserRepository(t)
	contractors := mocks.NewContractorRepository(t)
	jwtManager := accesscontrol.NewJWTManager("test-secret", time.Hour)
	return NewAuthService(users, contractors, jwtManager), users, contractors, jwtManager
}

func registerRequest() dtos.RegisterRequest {
	return dtos.RegisterRequest{
		Email:          " New@Contractor.ng ",
		Password:       "supersecret",
		FirstName:      "Ada",
		LastName:       "Obi",
		CompanyName:    "Obi Works",
		RegistrationNo: "RC-1234",
		Specialization: dtos.StringOrSlice{"ROADS"},
	}
}

func TestRegister(t *testing.T) {
	t.Run("should return 409 if the email is taken", func(t *testing.T) {
		s, users, _, _ := newAuthServiceUnderTest(t)
		users.On("FindByEmail", "new@contractor.ng").Return(models.User{}, nil)

		_, err := s.Register(registerRequest())
		assert.Equal(t, 409, httpStatus(t, err))
	})

	t.Run("should return 409 if the registration number is taken", func(t *testing.T) {
		s, users, contractors, _ := newAuthServiceUnderTest(t)
		users.On("FindByEmail", "new@contractor.ng").Return(models.User{}, gorm.ErrRecordNotFound)
		contractors.On("FindByRegistrationNo", "RC-1234").Return(models.ContractorProfile{}, nil)

		_, err := s.Register(registerRequest())
		assert.Equal(t, 409, httpStatus(t, err))
	})

	t.Run("should map a unique violation raised by the database to 409", func(t *testing.T) {
		s, users, contractors, _ := newAuthServiceUnderTest(t)
		users.On("FindByEmail", mock.Anything).Return(models.User{}, gorm.ErrRecordNotFound)
		contractors.On("FindByRegistrationNo", mock.Anything).Return(models.ContractorProfile{}, gorm.ErrRecordNotFound)
		users.On("Transaction", mock.Anything).Return(runInTransaction)
		users.On("Create", mock.Anything, mock.Anything).Return(&pgconn.PgError{Code: "23505"})

		_, err := s.Register(registerRequest())
		assert.Equal(t, 409, httpStatus(t, err))
	})

	t.Run("should create a contractor with its profile and return a token", func(t *testing.T) {
		s, users, contractors, jwtManager := newAuthServiceUnderTest(t)
		userID := uuid.New()
		users.On("FindByEmail", mock.Anything).Return(models.User{}, gorm.ErrRecordNotFound)
		contractors.On("FindByRegistrationNo", mock.Anything).Return(models.ContractorProfile{}, gorm.ErrRecordNotFound)
		users.On("Transaction", mock.Anything).Return(runInTransaction)
		users.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.Email == "new@contractor.ng" && u.Role == models.RoleContractor && accesscontrol.CheckPassword(u.PasswordHash, "supersecret")
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.User).ID = userID
		}).Return(nil)
		contractors.On("Create", mock.Anything, mock.MatchedBy(func(p *models.ContractorProfile) bool {
			return p.UserID == userID && p.RegistrationNo == "RC-1234"
		})).Return(nil)

		res, err := s.Register(registerRequest())
		require.NoError(t, err)
		assert.Equal(t, models.RoleContractor, res.User.Role)
		require.NotNil(t, res.User.ContractorProfile)

		claims, err := jwtManager.VerifyToken(res.Token)
		require.NoError(t, err)
		assert.Equal(t, userID.String(), claims.UserID)
	})
}

func TestLogin(t *testing.T) {
	hash, err := accesscontrol.HashPassword("correct-horse")
	require.NoError(t, err)

	t.Run("should return 401 for an unknown email", func(t *testing.T) {
		s, users, _, _ := newAuthServiceUnderTest(t)
		users.On("FindByEmail", "ghost@gov.ng").Return(models.User{}, gorm.ErrRecordNotFound)

		_, err := s.Login("ghost@gov.ng", "whatever")
		assert.Equal(t, 401, httpStatus(t, err))
	})

	t.Run("should return 401 for a wrong password", func(t *testing.T) {
		s, users, _, _ := newAuthServiceUnderTest(t)
		users.On("FindByEmail", "a@gov.ng").Return(models.User{PasswordHash: hash, IsActive: true}, nil)

		_, err := s.Login("a@gov.ng", "wrong-password")
		assert.Equal(t, 401, httpStatus(t, err))
	})

	t.Run("should return 403 for a deactivated account", func(t *testing.T) {
		s, users, _, _ := newAuthServiceUnderTest(t)
		users.On("FindByEmail", "a@gov.ng").Return(models.User{PasswordHash: hash, IsActive: false}, nil)

		_, err := s.Login("a@gov.ng", "correct-horse")
		assert.Equal(t, 403, httpStatus(t, err))
	})

	t.Run("should update the last login and return a token", func(t *testing.T) {
		s, users, _, _ := newAuthServiceUnderTest(t)
		now := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
		s.now = func() time.Time { return now }
		user := models.User{Model: models.Model{ID: uuid.New()}, Email: "a@gov.ng", PasswordHash: hash, IsActive: true, Role: models.RoleGovernmentAdmin}
		users.On("FindByEmail", "a@gov.ng").Return(user, nil)
		users.On("Save", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.LastLoginAt != nil && u.LastLoginAt.Equal(now)
		})).Return(nil)

		res, err := s.Login("A@gov.ng", "correct-horse")
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
		assert.Equal(t, user.ID, res.User.ID)
	})
}

func TestChangePassword(t *testing.T) {
	hash, err := accesscontrol.HashPassword("old-password")
	require.NoError(t, err)

	t.Run("should return 400 if the current password does not match", func(t *testing.T) {
		s, users, _, _ := newAuthServiceUnderTest(t)
		id := uuid.New()
		users.On("Read", id).Return(models.User{PasswordHash: hash}, nil)

		err := s.ChangePassword(id, "nope-nope", "new-password")
		assert.Equal(t, 400, httpStatus(t, err))
	})

	t.Run("should return 400 if the new password is too short", func(t *testing.T) {
		s, users, _, _ := newAuthServiceUnderTest(t)
		id := uuid.New()
		users.On("Read", id).Return(models.User{PasswordHash: hash}, nil)

		err := s.ChangePassword(id, "old-password", "short")
		assert.Equal(t, 400, httpStatus(t, err))
	})

	t.Run("should store the new hash", func(t *testing.T) {
		s, users, _, _ := newAuthServiceUnderTest(t)
		id := uuid.New()
		users.On("Read", id).Return(models.User{PasswordHash: hash}, nil)
		users.On("Save", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return accesscontrol.CheckPassword(u.PasswordHash, "new-password")
		})).Return(nil)

		assert.NoError(t, s.ChangePassword(id, "old-password", "new-password"))
	})
}
