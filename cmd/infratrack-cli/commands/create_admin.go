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
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/infratrack-dev/infratrack/accesscontrol"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/database/repositories"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/spf13/cobra"
)

var errAdminExists = errors.New("a user with this email already exists")

type adminOptions struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

func createAdmin(userRepository shared.UserRepository, opts adminOptions) (models.User, error) {
	email := strings.ToLower(strings.TrimSpace(opts.Email))
	if email == "" {
		return models.User{}, errors.New("--email is required")
	}
	if err := accesscontrol.ValidatePassword(opts.Password); err != nil {
		return models.User{}, err
	}

	if _, err := userRepository.FindByEmail(email); err == nil {
		return models.User{}, errAdminExists
	} else if !repositories.IsNotFound(err) {
		return models.User{}, fmt.Errorf("could not check email: %w", err)
	}

	hash, err := accesscontrol.HashPassword(opts.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    opts.FirstName,
		LastName:     opts.LastName,
		Role:         models.RoleGovernmentAdmin,
		IsActive:     true,
	}
	if err := userRepository.Create(nil, &user); err != nil {
		return models.User{}, fmt.Errorf("could not create user: %w", err)
	}
	return user, nil
}

func NewCreateAdminCommand() *cobra.Command {
	var opts adminOptions

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Creates a GOVERNMENT_ADMIN user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := createAdmin(repositories.NewUserRepository(openDatabase()), opts)
			if err != nil {
				return err
			}
			slog.Info("admin created", "id", user.ID, "email", user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Email, "email", "", "email of the admin")
	cmd.Flags().StringVar(&opts.Password, "password", "", "password of the admin, at least 8 characters")
	cmd.Flags().StringVar(&opts.FirstName, "first-name", "System", "first name")
	cmd.Flags().StringVar(&opts.LastName, "last-name", "Administrator", "last name")
	return cmd
}
