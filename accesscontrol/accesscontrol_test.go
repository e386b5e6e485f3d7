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

package accesscontrol

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager(t *testing.T) {
	user := models.User{Email: "officer@infratrack.gov", Role: models.RoleMEOfficer}
	user.ID = uuid.New()

	t.Run("should round trip the claims", func(t *testing.T) {
		manager := NewJWTManager("secret", time.Hour)
		token, err := manager.GenerateToken(user)
		require.NoError(t, err)

		claims, err := manager.VerifyToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
		assert.Equal(t, user.Email, claims.Email)
		assert.Equal(t, models.RoleMEOfficer, claims.Role)

		s := SessionFromClaims(claims)
		assert.Equal(t, user.ID, s.GetUserID())
		assert.Equal(t, models.RoleMEOfficer, s.GetRole())
	})

	t.Run("should report an expired token", func(t *testing.T) {
		manager := NewJWTManager("secret", time.Hour)
		manager.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := manager.GenerateToken(user)
		require.NoError(t, err)

		manager.now = time.Now
		_, err = manager.VerifyToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("should reject a token signed with another secret", func(t *testing.T) {
		token, err := NewJWTManager("other", time.Hour).GenerateToken(user)
		require.NoError(t, err)

		_, err = NewJWTManager("secret", time.Hour).VerifyToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := NewJWTManager("secret", time.Hour).VerifyToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("should reject the none algorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
			UserID: user.ID.String(),
			Role:   models.RoleGovernmentAdmin,
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = NewJWTManager("secret", time.Hour).VerifyToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("should reject an unknown role", func(t *testing.T) {
		manager := NewJWTManager("secret", time.Hour)
		token, err := manager.GenerateToken(models.User{Model: models.Model{ID: uuid.New()}, Role: "SUPERUSER"})
		require.NoError(t, err)

		_, err = manager.VerifyToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestPassword(t *testing.T) {
	_, err := HashPassword("short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "correct horse"))
	assert.False(t, CheckPassword(hash, "wrong horse"))
}

func TestCasbinRBAC(t *testing.T) {
	rbac, err := NewCasbinRBAC()
	require.NoError(t, err)

	cases := []struct {
		role    models.UserRole
		object  string
		action  string
		allowed bool
	}{
		{models.RoleGovernmentAdmin, "user", "delete", true},
		{models.RoleGovernmentOfficer, "user", "read", false},
		{models.RoleMEOfficer, "submission", "review", true},
		{models.RoleGovernmentOfficer, "submission", "review", false},
		{models.RoleContractor, "submission", "review", false},
		{models.RoleContractor, "submission", "create", true},
		{models.RoleContractor, "project", "create", false},
		{models.RoleGovernmentOfficer, "project", "delete", false},
		{models.RoleGovernmentAdmin, "project", "delete", true},
		{models.RoleContractor, "report", "read", false},
		{models.RoleMEOfficer, "report", "create", true},
	}

	for _, c := range cases {
		allowed, err := rbac.IsAllowed(c.role, shared.Object(c.object), shared.Action(c.action))
		require.NoError(t, err)
		assert.Equal(t, c.allowed, allowed, "%s %s %s", c.role, c.action, c.object)
	}

	actions, err := rbac.GetAllowedActions(models.RoleGovernmentOfficer, "project")
	require.NoError(t, err)
	assert.ElementsMatch(t, []shared.Action{shared.ActionCreate, shared.ActionRead, shared.ActionUpdate, shared.ActionAssign}, actions)
}
