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
	"log/slog"

	"github.com/infratrack-dev/infratrack/database"
	"github.com/spf13/cobra"
)

func NewMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Runs all pending database migrations",
		Long:  "Runs all pending database migrations. With --down the given number of migrations is reverted instead.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			down, _ := cmd.Flags().GetInt("down")

			db := openDatabase()
			if down > 0 {
				if err := database.RollbackMigrationsWithDB(db, down); err != nil {
					return err
				}
			} else if err := database.RunMigrationsWithDB(db); err != nil {
				return err
			}

			version, dirty, err := database.GetMigrationVersionWithDB(db)
			if errors.Is(err, database.ErrNoMigrationApplied) {
				slog.Info("all migrations reverted")
				return nil
			} else if err != nil {
				return err
			}
			slog.Info("database migrated", "version", version, "dirty", dirty)
			return nil
		},
	}
	cmd.Flags().Int("down", 0, "number of migrations to revert")
	return cmd
}
