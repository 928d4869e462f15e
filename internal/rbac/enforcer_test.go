package rbac_test

import (
	"testing"

	"go-payroll/internal/rbac"

	"github.com/stretchr/testify/assert"
)

func TestEnforcer_AdminAllowedEverywhere(t *testing.T) {
	e, err := rbac.NewEnforcer()
	assert.NoError(t, err)

	cases := [][2]string{
		{rbac.ResourceEmployee, rbac.ActionCreate},
		{rbac.ResourceEmployee, rbac.ActionRead},
		{rbac.ResourceEmployee, rbac.ActionUpdate},
		{rbac.ResourceCompany, rbac.ActionUpdate},
		{rbac.ResourcePayroll, rbac.ActionCreate},
		{rbac.ResourcePayroll, rbac.ActionReadSelf},
		{rbac.ResourcePayroll, rbac.ActionDelete},
		{rbac.ResourceAttendance, rbac.ActionUpdate},
		{rbac.ResourceDashboard, rbac.ActionRead},
		{rbac.ResourceReport, rbac.ActionGenerateAll},
		{rbac.ResourceUser, rbac.ActionCreate},
	}

	for _, c := range cases {
		ok, err := e.Enforce(rbac.RoleAdmin, c[0], c[1])
		assert.NoError(t, err)
		assert.True(t, ok, "admin should be allowed %s:%s", c[0], c[1])
	}
}

func TestEnforcer_EmployeeScope(t *testing.T) {
	e, err := rbac.NewEnforcer()
	assert.NoError(t, err)

	allowed := [][2]string{
		{rbac.ResourceEmployee, rbac.ActionRead},
		{rbac.ResourcePayroll, rbac.ActionReadSelf},
		{rbac.ResourceAttendance, rbac.ActionReadSelf},
		{rbac.ResourceReport, rbac.ActionGenerateSelf},
	}
	for _, c := range allowed {
		ok, err := e.Enforce(rbac.RoleEmployee, c[0], c[1])
		assert.NoError(t, err)
		assert.True(t, ok, "employee should be allowed %s:%s", c[0], c[1])
	}

	denied := [][2]string{
		{rbac.ResourceEmployee, rbac.ActionCreate},
		{rbac.ResourcePayroll, rbac.ActionCreate},
		{rbac.ResourcePayroll, rbac.ActionRead},
		{rbac.ResourcePayroll, rbac.ActionDelete},
		{rbac.ResourceAttendance, rbac.ActionUpdate},
		{rbac.ResourceDashboard, rbac.ActionRead},
		{rbac.ResourceReport, rbac.ActionGenerateAll},
		{rbac.ResourceUser, rbac.ActionCreate},
		{rbac.ResourceCompany, rbac.ActionUpdate},
	}
	for _, c := range denied {
		ok, err := e.Enforce(rbac.RoleEmployee, c[0], c[1])
		assert.NoError(t, err)
		assert.False(t, ok, "employee must be denied %s:%s", c[0], c[1])
	}
}

func TestEnforcer_UnknownRoleDenied(t *testing.T) {
	e, err := rbac.NewEnforcer()
	assert.NoError(t, err)

	ok, err := e.Enforce("manager", rbac.ResourcePayroll, rbac.ActionRead)
	assert.NoError(t, err)
	assert.False(t, ok)
}
