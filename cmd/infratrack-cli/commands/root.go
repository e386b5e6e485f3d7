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
	"fmt"
	"log/slog"
	"strings"

	"github.com/infratrack-dev/infratrack/database"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "infratrack-cli",
	Short: "Management cli",
	Long:  `The infratrack cli manages the database of an infratrack installation.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		shared.LoadConfig() // nolint: errcheck
		return initializeConfig(cmd)
	},
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}

// initializeConfig lets every flag be set through an INFRATRACK_ prefixed
// environment variable, e.g. --first-name via INFRATRACK_FIRST_NAME.
func initializeConfig(cmd *cobra.Command) error {
	viper.SetEnvPrefix("INFRATRACK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	return bindFlags(cmd)
}

func bindFlags(cmd *cobra.Command) error {
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && viper.IsSet(f.Name) {
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", viper.Get(f.Name))); err != nil {
				bindErr = fmt.Errorf("invalid value for --%s: %w", f.Name, err)
			}
		}
		if err := viper.BindPFlag(f.Name, f); err != nil {
			slog.Error("could not bind flag to viper", "flag", f.Name, "err", err)
		}
	})
	return bindErr
}

func openDatabase() shared.DB {
	return database.NewGormDB(database.NewPgxConnPool(database.GetPoolConfigFromEnv()))
}
