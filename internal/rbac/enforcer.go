package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Resources and actions gated per route. The policy is static: this is a
// single-company product with exactly two roles.
const (
	ResourceEmployee   = "employee"
	ResourceCompany    = "company"
	ResourcePayroll    = "payroll"
	ResourceAttendance = "attendance"
	ResourceDashboard  = "dashboard"
	ResourceReport     = "report"
	ResourceUser       = "user"

	ActionCreate       = "create"
	ActionRead         = "read"
	ActionReadSelf     = "read_self"
	ActionUpdate       = "update"
	ActionDelete       = "delete"
	ActionGenerate     = "generate"
	ActionGenerateAll  = "generate_all"
	ActionGenerateSelf = "generate_self"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// NewEnforcer builds the access gate: admin can do everything the HTTP
// surface exposes, employee is limited to reading its own data and
// generating its own Form 16.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	policies := [][]string{
		{RoleAdmin, ResourceEmployee, ActionCreate},
		{RoleAdmin, ResourceEmployee, ActionRead},
		{RoleAdmin, ResourceEmployee, ActionUpdate},
		{RoleAdmin, ResourceCompany, ActionRead},
		{RoleAdmin, ResourceCompany, ActionUpdate},
		{RoleAdmin, ResourcePayroll, ActionCreate},
		{RoleAdmin, ResourcePayroll, ActionRead},
		{RoleAdmin, ResourcePayroll, ActionReadSelf},
		{RoleAdmin, ResourcePayroll, ActionDelete},
		{RoleAdmin, ResourceAttendance, ActionRead},
		{RoleAdmin, ResourceAttendance, ActionReadSelf},
		{RoleAdmin, ResourceAttendance, ActionUpdate},
		{RoleAdmin, ResourceDashboard, ActionRead},
		{RoleAdmin, ResourceReport, ActionGenerateSelf},
		{RoleAdmin, ResourceReport, ActionGenerateAll},
		{RoleAdmin, ResourceUser, ActionCreate},
		{RoleAdmin, ResourceUser, ActionRead},

		{RoleEmployee, ResourceEmployee, ActionRead},
		{RoleEmployee, ResourcePayroll, ActionReadSelf},
		{RoleEmployee, ResourceAttendance, ActionReadSelf},
		{RoleEmployee, ResourceReport, ActionGenerateSelf},
	}

	for _, p := range policies {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return e, nil
}
