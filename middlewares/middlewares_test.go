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

package middlewares

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/infratrack-dev/infratrack/accesscontrol"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/mocks"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(role models.UserRole) models.User {
	return models.User{
		Model: models.Model{ID: uuid.New()},
		Email: "officer@infratrack.test",
		Role:  role,
	}
}

func requestWithToken(token string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func assertHTTPError(t *testing.T, err error, code int, message string) {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, code, he.Code)
	assert.Equal(t, message, he.Message)
}

func TestSessionMiddleware(t *testing.T) {
	jwtManager := accesscontrol.NewJWTManager("test-secret", time.Hour)

	t.Run("should set the session from a valid token", func(t *testing.T) {
		user := newUser(models.RoleMEOfficer)
		token, err := jwtManager.GenerateToken(user)
		require.NoError(t, err)

		ctx, _ := requestWithToken(token)

		var called bool
		err = SessionMiddleware(jwtManager)(func(ctx echo.Context) error {
			called = true
			session := shared.GetSession(ctx)
			assert.Equal(t, user.ID, session.GetUserID())
			assert.Equal(t, user.Email, session.GetEmail())
			assert.Equal(t, models.RoleMEOfficer, session.GetRole())
			return nil
		})(ctx)

		assert.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("should require a token", func(t *testing.T) {
		ctx, _ := requestWithToken("")
		err := SessionMiddleware(jwtManager)(func(ctx echo.Context) error {
			t.Fatal("next must not be called")
			return nil
		})(ctx)

		assertHTTPError(t, err, 401, "access token required")
	})

	t.Run("should ignore authorization headers without the bearer scheme", func(t *testing.T) {
		ctx, _ := requestWithToken("")
		ctx.Request().Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwYXNz")

		err := SessionMiddleware(jwtManager)(func(ctx echo.Context) error { return nil })(ctx)
		assertHTTPError(t, err, 401, "access token required")
	})

	t.Run("should report expired tokens", func(t *testing.T) {
		expired := accesscontrol.NewJWTManager("test-secret", -time.Minute)
		token, err := expired.GenerateToken(newUser(models.RoleContractor))
		require.NoError(t, err)

		ctx, _ := requestWithToken(token)
		err = SessionMiddleware(jwtManager)(func(ctx echo.Context) error { return nil })(ctx)

		assertHTTPError(t, err, 401, "token expired")
	})

	t.Run("should reject tokens signed with another secret", func(t *testing.T) {
		other := accesscontrol.NewJWTManager("another-secret", time.Hour)
		token, err := other.GenerateToken(newUser(models.RoleContractor))
		require.NoError(t, err)

		ctx, _ := requestWithToken(token)
		err = SessionMiddleware(jwtManager)(func(ctx echo.Context) error { return nil })(ctx)

		assertHTTPError(t, err, 401, "invalid token")
	})

	t.Run("should reject garbage", func(t *testing.T) {
		ctx, _ := requestWithToken("not-a-jwt")
		err := SessionMiddleware(jwtManager)(func(ctx echo.Context) error { return nil })(ctx)

		assertHTTPError(t, err, 401, "invalid token")
	})
}

func TestRoleMiddleware(t *testing.T) {
	t.Run("should let allowed roles pass", func(t *testing.T) {
		ctx, _ := requestWithToken("")
		shared.SetSession(ctx, accesscontrol.NewSession(uuid.New(), "me@infratrack.test", models.RoleMEOfficer))

		var called bool
		err := RoleMiddleware(models.RoleMEOfficer, models.RoleGovernmentAdmin)(func(ctx echo.Context) error {
			called = true
			return nil
		})(ctx)

		assert.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("should return 403 for other roles", func(t *testing.T) {
		ctx, _ := requestWithToken("")
		shared.SetSession(ctx, accesscontrol.NewSession(uuid.New(), "c@infratrack.test", models.RoleContractor))

		err := RoleMiddleware(models.RoleMEOfficer, models.RoleGovernmentAdmin)(func(ctx echo.Context) error {
			t.Fatal("next must not be called")
			return nil
		})(ctx)

		assertHTTPError(t, err, 403, "insufficient permissions")
	})

	t.Run("should return 401 without a session", func(t *testing.T) {
		ctx, _ := requestWithToken("")
		err := RoleMiddleware(models.RoleGovernmentAdmin)(func(ctx echo.Context) error { return nil })(ctx)

		assertHTTPError(t, err, 401, "access token required")
	})
}

func TestNeedsPermission(t *testing.T) {
	t.Run("should ask the access control for the session role", func(t *testing.T) {
		rbac := mocks.NewAccessControl(t)
		rbac.On("IsAllowed", models.RoleContractor, shared.ObjectSubmission, shared.ActionReview).Return(false, nil)

		ctx, _ := requestWithToken("")
		shared.SetSession(ctx, accesscontrol.NewSession(uuid.New(), "c@infratrack.test", models.RoleContractor))

		err := NeedsPermission(rbac)(shared.ObjectSubmission, shared.ActionReview)(func(ctx echo.Context) error { return nil })(ctx)
		assertHTTPError(t, err, 403, "insufficient permissions")
	})

	t.Run("should pass when the matrix allows it", func(t *testing.T) {
		rbac, err := accesscontrol.NewCasbinRBAC()
		require.NoError(t, err)

		ctx, _ := requestWithToken("")
		shared.SetSession(ctx, accesscontrol.NewSession(uuid.New(), "me@infratrack.test", models.RoleMEOfficer))

		var called bool
		err = NeedsPermission(rbac)(shared.ObjectSubmission, shared.ActionReview)(func(ctx echo.Context) error {
			called = true
			return nil
		})(ctx)

		assert.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("should return 500 if the enforcer fails", func(t *testing.T) {
		rbac := mocks.NewAccessControl(t)
		rbac.On("IsAllowed", models.RoleMEOfficer, shared.ObjectReport, shared.ActionCreate).Return(false, errors.New("boom"))

		ctx, _ := requestWithToken("")
		shared.SetSession(ctx, accesscontrol.NewSession(uuid.New(), "me@infratrack.test", models.RoleMEOfficer))

		err := NeedsPermission(rbac)(shared.ObjectReport, shared.ActionCreate)(func(ctx echo.Context) error { return nil })(ctx)
		assertHTTPError(t, err, 500, "could not determine if the user has access")
	})
}

func TestErrorHandler(t *testing.T) {
	t.Run("should render http errors as a failed envelope", func(t *testing.T) {
		ctx, rec := requestWithToken("")

		ErrorHandler(echo.NewHTTPError(404, "project not found"), ctx)

		assert.Equal(t, 404, rec.Code)
		var body shared.Envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, "project not found", body.Message)
		assert.Nil(t, body.Data)
	})

	t.Run("should hide internal error details", func(t *testing.T) {
		ctx, rec := requestWithToken("")

		ErrorHandler(errors.New("pq: relation \"users\" does not exist"), ctx)

		assert.Equal(t, 500, rec.Code)
		var body shared.Envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "internal server error", body.Message)
	})

	t.Run("should turn panics into a 500", func(t *testing.T) {
		e := Server(shared.Config{CorsOrigins: []string{"*"}, UploadMaxSize: 1024})
		e.GET("/panic", func(ctx echo.Context) error {
			panic("kaboom")
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

		assert.Equal(t, 500, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":false`)
	})
}

func TestRateLimiter(t *testing.T) {
	t.Run("should reject requests above the burst", func(t *testing.T) {
		e := echo.New()
		e.HTTPErrorHandler = ErrorHandler
		e.POST("/login", func(ctx echo.Context) error {
			return ctx.NoContent(200)
		}, RateLimiter(0.0001, 2))

		codes := make([]int, 0, 3)
		for range 3 {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/login", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			e.ServeHTTP(rec, req)
			codes = append(codes, rec.Code)
		}

		assert.Equal(t, []int{200, 200, 429}, codes)
	})
}
