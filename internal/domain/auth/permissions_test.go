package auth

import "testing"

func TestRolePermissions(t *testing.T) {
	cases := []struct {
		role       string
		permission string
		want       bool
	}{
		{RoleAdmin, PermManageEmployees, true},
		{RoleAdmin, PermGenerateReports, true},
		{RoleAdmin, PermRegisterAttendance, false},
		{RoleEmployee, PermRegisterAttendance, true},
		{RoleEmployee, PermManageRequests, false},
		{RoleSupervisor, PermManageRequests, true},
		{RoleSupervisor, PermCalculateSalaries, true},
		{RoleSupervisor, PermManageEmployees, false},
		{"UNKNOWN", PermConsultSector, false},
	}

	for _, tc := range cases {
		if got := RoleHas(tc.role, tc.permission); got != tc.want {
			t.Errorf("RoleHas(%s, %s) = %v, want %v", tc.role, tc.permission, got, tc.want)
		}
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{RoleAdmin, RoleEmployee, RoleSupervisor} {
		if !ValidRole(role) {
			t.Errorf("expected %s to be valid", role)
		}
	}
	if ValidRole("MANAGER") {
		t.Error("expected MANAGER to be invalid")
	}
}
