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
	"fmt"
	"slices"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/infratrack-dev/infratrack/utils"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

var _ shared.AccessControl = &casbinRBAC{}

type casbinRBAC struct {
	enforcer *casbin.SyncedEnforcer
}

// NewCasbinRBAC builds an enforcer holding the static role permission matrix.
func NewCasbinRBAC() (*casbinRBAC, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("could not parse rbac model: %w", err)
	}
	e, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("could not create enforcer: %w", err)
	}
	e.EnableLog(false)

	rbac := &casbinRBAC{enforcer: e}
	if err := BootstrapPolicies(rbac); err != nil {
		return nil, err
	}
	return rbac, nil
}

func roleSubject(role models.UserRole) string {
	return "role::" + string(role)
}

func (c *casbinRBAC) AllowRole(role models.UserRole, object shared.Object, actions []shared.Action) error {
	policies := make([][]string, len(actions))
	for i, ac := range actions {
		policies[i] = []string{roleSubject(role), "obj::" + string(object), "act::" + string(ac)}
	}
	_, err := c.enforcer.AddPolicies(policies)
	return err
}

func (c *casbinRBAC) IsAllowed(role models.UserRole, object shared.Object, action shared.Action) (bool, error) {
	return c.enforcer.Enforce(roleSubject(role), "obj::"+string(object), "act::"+string(action))
}

func (c *casbinRBAC) GetAllowedActions(role models.UserRole, object shared.Object) ([]shared.Action, error) {
	policies, err := c.enforcer.GetFilteredPolicy(0, roleSubject(role), "obj::"+string(object))
	if err != nil {
		return nil, err
	}
	return utils.Map(policies, func(p []string) shared.Action {
		return shared.Action(strings.TrimPrefix(p[2], "act::"))
	}), nil
}

var allObjects = []shared.Object{
	shared.ObjectUser,
	shared.ObjectContractor,
	shared.ObjectProject,
	shared.ObjectMilestone,
	shared.ObjectSubmission,
	shared.ObjectDashboard,
	shared.ObjectDocument,
	shared.ObjectReport,
}

var crud = []shared.Action{shared.ActionCreate, shared.ActionRead, shared.ActionUpdate, shared.ActionDelete}

// BootstrapPolicies grants the permission matrix. Ownership checks
// (own contractor profile, own submission, own upload) happen in the
// services on top of it.
func BootstrapPolicies(rbac shared.AccessControl) error {
	grants := []struct {
		role    models.UserRole
		object  shared.Object
		actions []shared.Action
	}{
		{models.RoleGovernmentOfficer, shared.ObjectContractor, []shared.Action{shared.ActionRead}},
		{models.RoleGovernmentOfficer, shared.ObjectProject, []shared.Action{shared.ActionCreate, shared.ActionRead, shared.ActionUpdate, shared.ActionAssign}},
		{models.RoleGovernmentOfficer, shared.ObjectMilestone, crud},
		{models.RoleGovernmentOfficer, shared.ObjectSubmission, []shared.Action{shared.ActionRead}},
		{models.RoleGovernmentOfficer, shared.ObjectDashboard, []shared.Action{shared.ActionRead}},
		{models.RoleGovernmentOfficer, shared.ObjectDocument, []shared.Action{shared.ActionCreate, shared.ActionRead, shared.ActionDelete}},
		{models.RoleGovernmentOfficer, shared.ObjectReport, []shared.Action{shared.ActionCreate, shared.ActionRead, shared.ActionDelete}},

		{models.RoleMEOfficer, shared.ObjectContractor, []shared.Action{shared.ActionRead}},
		{models.RoleMEOfficer, shared.ObjectProject, []shared.Action{shared.ActionRead}},
		{models.RoleMEOfficer, shared.ObjectMilestone, []shared.Action{shared.ActionRead}},
		{models.RoleMEOfficer, shared.ObjectSubmission, []shared.Action{shared.ActionRead, shared.ActionUpdate, shared.ActionDelete, shared.ActionReview}},
		{models.RoleMEOfficer, shared.ObjectDashboard, []shared.Action{shared.ActionRead}},
		{models.RoleMEOfficer, shared.ObjectDocument, []shared.Action{shared.ActionCreate, shared.ActionRead, shared.ActionDelete}},
		{models.RoleMEOfficer, shared.ObjectReport, []shared.Action{shared.ActionCreate, shared.ActionRead, shared.ActionDelete}},

		{models.RoleContractor, shared.ObjectContractor, []shared.Action{shared.ActionRead, shared.ActionUpdate}},
		{models.RoleContractor, shared.ObjectProject, []shared.Action{shared.ActionRead}},
		{models.RoleContractor, shared.ObjectMilestone, []shared.Action{shared.ActionRead}},
		{models.RoleContractor, shared.ObjectSubmission, crud},
		{models.RoleContractor, shared.ObjectDocument, []shared.Action{shared.ActionCreate, shared.ActionRead, shared.ActionDelete}},
	}

	for _, object := range allObjects {
		grants = append(grants, struct {
			role    models.UserRole
			object  shared.Object
			actions []shared.Action
		}{models.RoleGovernmentAdmin, object, slices.Concat(crud, []shared.Action{shared.ActionReview, shared.ActionVerify, shared.ActionAssign})})
	}

	for _, g := range grants {
		if err := rbac.AllowRole(g.role, g.object, g.actions); err != nil {
			return fmt.Errorf("could not allow %s on %s: %w", g.role, g.object, err)
		}
	}
	return nil
}
