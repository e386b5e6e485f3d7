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

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var DashboardComputationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "infratrack_dashboard_computation_duration_seconds",
	Help:    "Duration of in-memory dashboard aggregations in seconds",
	Buckets: prometheus.DefBuckets,
}, []string{"view"})

var DashboardProjectsAggregated = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "infratrack_dashboard_projects_aggregated",
	Help: "Number of projects included in the last dashboard aggregation",
})

var PublicStatsCacheHit = promauto.NewCounter(prometheus.CounterOpts{
	Name: "infratrack_public_stats_cache_hit_amount",
	Help: "The total number of public statistic requests served from cache",
})

var PublicStatsCacheMiss = promauto.NewCounter(prometheus.CounterOpts{
	Name: "infratrack_public_stats_cache_miss_amount",
	Help: "The total number of public statistic requests which had to be computed",
})

var ReportGeneratedAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "infratrack_report_generated_amount",
	Help: "The total number of generated reports by type",
}, []string{"type"})
