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

package repositories

import (
	"github.com/infratrack-dev/infratrack/shared"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(fx.Annotate(NewUserRepository, fx.As(new(shared.UserRepository)))),
	fx.Provide(fx.Annotate(NewContractorRepository, fx.As(new(shared.ContractorRepository)))),
	fx.Provide(fx.Annotate(NewProjectRepository, fx.As(new(shared.ProjectRepository)))),
	fx.Provide(fx.Annotate(NewMilestoneRepository, fx.As(new(shared.MilestoneRepository)))),
	fx.Provide(fx.Annotate(NewSubmissionRepository, fx.As(new(shared.SubmissionRepository)))),
	fx.Provide(fx.Annotate(NewApprovalRepository, fx.As(new(shared.ApprovalRepository)))),
	fx.Provide(fx.Annotate(NewDocumentRepository, fx.As(new(shared.DocumentRepository)))),
	fx.Provide(fx.Annotate(NewReportRepository, fx.As(new(shared.ReportRepository)))),
	fx.Provide(fx.Annotate(NewNotificationRepository, fx.As(new(shared.NotificationRepository)))),
)
