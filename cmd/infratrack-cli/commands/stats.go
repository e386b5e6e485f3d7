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
	"io"
	"maps"
	"slices"

	"github.com/infratrack-dev/infratrack/database/repositories"
	"github.com/infratrack-dev/infratrack/dtos"
	"github.com/infratrack-dev/infratrack/services"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

func renderDashboardStats(w io.Writer, stats dtos.DashboardStats) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetTitle("Dashboard")
	tw.AppendHeader(table.Row{"Metric", "Value"})

	tw.AppendRow(table.Row{"Projects", stats.Projects.Total})
	tw.AppendRow(table.Row{"Completed", stats.Projects.Completed})
	tw.AppendRow(table.Row{"In progress", stats.Projects.InProgress})
	tw.AppendRow(table.Row{"Delayed", text.FgRed.Sprint(stats.Projects.Delayed)})
	tw.AppendRow(table.Row{"Average progress", fmt.Sprintf("%.1f%%", stats.Projects.AverageProgress)})
	tw.AppendSeparator()
	tw.AppendRow(table.Row{"Total budget", stats.Budget.TotalBudget.StringFixed(2)})
	tw.AppendRow(table.Row{"Spent budget", stats.Budget.SpentBudget.StringFixed(2)})
	tw.AppendRow(table.Row{"Utilization", fmt.Sprintf("%.1f%%", stats.Budget.UtilizationRate)})
	tw.AppendSeparator()
	tw.AppendRow(table.Row{"Submissions", stats.Submissions.Total})
	tw.AppendRow(table.Row{"Pending review", text.FgYellow.Sprint(stats.Submissions.Pending)})
	tw.AppendRow(table.Row{"Flagged", stats.Submissions.Flagged})
	tw.AppendSeparator()
	tw.AppendRow(table.Row{"Contractors", stats.Contractors.Total})
	tw.AppendRow(table.Row{"Verified", stats.Contractors.Verified})

	for _, status := range slices.Sorted(maps.Keys(stats.Projects.ByStatus)) {
		tw.AppendFooter(table.Row{status, stats.Projects.ByStatus[status]})
	}
	tw.Render()
}

func renderLGAStats(w io.Writer, lgas []dtos.LGAStats) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetTitle("Local government areas")
	tw.AppendHeader(table.Row{"LGA", "Projects", "Completed", "In progress", "Budget", "Spent", "Avg progress"})
	for _, l := range lgas {
		tw.AppendRow(table.Row{l.LGA, l.Projects, l.Completed, l.InProgress, l.TotalBudget.StringFixed(2), l.SpentBudget.StringFixed(2), fmt.Sprintf("%.1f%%", l.AverageProgress)})
	}
	tw.Render()
}

func NewStatsCommand() *cobra.Command {
	var withLGAs bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Prints the dashboard statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db := openDatabase()
			statisticsService := services.NewStatisticsService(
				repositories.NewProjectRepository(db),
				repositories.NewSubmissionRepository(db),
				repositories.NewContractorRepository(db),
				repositories.NewApprovalRepository(db),
			)

			stats, err := statisticsService.GetDashboardStats(cmd.Context())
			if err != nil {
				return err
			}
			renderDashboardStats(cmd.OutOrStdout(), stats)

			if !withLGAs {
				return nil
			}
			lgas, err := statisticsService.GetLGAStats(cmd.Context())
			if err != nil {
				return err
			}
			renderLGAStats(cmd.OutOrStdout(), lgas)
			return nil
		},
	}

	cmd.Flags().BoolVar(&withLGAs, "lga", false, "also print the statistics per local government area")
	return cmd
}
