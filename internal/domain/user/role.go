package user

// Role mirrors the role claim issued by the identity provider.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleHRManager  Role = "hr_manager"
	RoleManager    Role = "manager"
	RoleUser       Role = "user"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleHRManager, RoleManager, RoleUser:
		return true
	}
	return false
}

// Permission names a guarded action on a resource.
type Permission string

const (
	PermEmployeeRead    Permission = "employee:read"
	PermEmployeeWrite   Permission = "employee:write"
	PermPayrollRead     Permission = "payroll:read"
	PermPayrollWrite    Permission = "payroll:write"
	PermLeaveRead       Permission = "leave:read"
	PermLeaveDecide     Permission = "leave:decide"
	PermAttendanceRead  Permission = "attendance:read"
	PermAttendanceWrite Permission = "attendance:write"
	PermScheduleWrite   Permission = "schedule:write"
	PermTaskWrite       Permission = "task:write"
	PermKPIWrite        Permission = "kpi:write"
	PermKPIReview       Permission = "kpi:review"
	PermLearningWrite   Permission = "learning:write"
	PermInventoryRead   Permission = "inventory:read"
	PermInventoryWrite  Permission = "inventory:write"
	PermSalesWrite      Permission = "sales:write"
	PermReportRead      Permission = "report:read"
)

// rolePermissions is the explicit allowlist table; routes and services check
// against it instead of ad hoc role comparisons.
var rolePermissions = map[Role]map[Permission]bool{
	RoleSuperAdmin: allPermissions(),
	RoleHRManager: {
		PermEmployeeRead:    true,
		PermEmployeeWrite:   true,
		PermPayrollRead:     true,
		PermPayrollWrite:    true,
		PermLeaveRead:       true,
		PermLeaveDecide:     true,
		PermAttendanceRead:  true,
		PermAttendanceWrite: true,
		PermScheduleWrite:   true,
		PermTaskWrite:       true,
		PermKPIWrite:        true,
		PermKPIReview:       true,
		PermLearningWrite:   true,
		PermReportRead:      true,
	},
	RoleManager: {
		PermEmployeeRead:   true,
		PermLeaveRead:      true,
		PermLeaveDecide:    true,
		PermAttendanceRead: true,
		PermTaskWrite:      true,
		PermKPIReview:      true,
		PermInventoryRead:  true,
		PermInventoryWrite: true,
		PermSalesWrite:     true,
		PermReportRead:     true,
	},
	RoleUser: {
		PermLeaveRead:      true,
		PermAttendanceRead: true,
		PermInventoryRead:  true,
	},
}

func allPermissions() map[Permission]bool {
	perms := []Permission{
		PermEmployeeRead, PermEmployeeWrite,
		PermPayrollRead, PermPayrollWrite,
		PermLeaveRead, PermLeaveDecide,
		PermAttendanceRead, PermAttendanceWrite,
		PermScheduleWrite, PermTaskWrite,
		PermKPIWrite, PermKPIReview, PermLearningWrite,
		PermInventoryRead, PermInventoryWrite,
		PermSalesWrite, PermReportRead,
	}
	m := make(map[Permission]bool, len(perms))
	for _, p := range perms {
		m[p] = true
	}
	return m
}

// HasPermission checks whether a role is allowed a permission.
func HasPermission(role Role, permission Permission) bool {
	perms, ok := rolePermissions[role]
	if !ok {
		return false
	}
	return perms[permission]
}
