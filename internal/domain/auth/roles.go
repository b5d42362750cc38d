package auth

const (
	RoleAdmin      = "ADMIN"
	RoleEmployee   = "EMPLOYEE"
	RoleSupervisor = "SUPERVISOR"
)

const (
	PermManageEmployees    = "employees.manage"
	PermManagePositions    = "positions.manage"
	PermAssignSupervisors  = "supervisors.assign"
	PermConsultSector      = "sectors.consult"
	PermRegisterAttendance = "attendance.register"
	PermCreateRequest      = "requests.create"
	PermManageRequests     = "requests.manage"
	PermCalculateSalaries  = "salaries.calculate"
	PermGenerateReports    = "reports.generate"
)

// RolePermissions fixes what each role may do. Supervisors are regular
// employees with extra duties, so they keep the employee permissions for
// their own attendance and sector.
var RolePermissions = map[string][]string{
	RoleAdmin: {
		PermManageEmployees,
		PermManagePositions,
		PermAssignSupervisors,
		PermCalculateSalaries,
		PermGenerateReports,
	},
	RoleEmployee: {
		PermConsultSector,
		PermRegisterAttendance,
		PermCreateRequest,
	},
	RoleSupervisor: {
		PermConsultSector,
		PermRegisterAttendance,
		PermManageRequests,
		PermCalculateSalaries,
	},
}

func ValidRole(role string) bool {
	_, ok := RolePermissions[role]
	return ok
}

func RoleHas(role, permission string) bool {
	for _, p := range RolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
