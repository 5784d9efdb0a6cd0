package entity

import "slices"

// DataAccessLevel is the scope of other users' data a role may see. Each level
// contains everything visible at the levels before it.
type DataAccessLevel string

const (
	AccessOwnData        DataAccessLevel = "own_data"
	AccessCounselleeData DataAccessLevel = "counsellee_data"
	AccessDepartmentData DataAccessLevel = "department_data"
	AccessAllData        DataAccessLevel = "all_data"
)

var roleAccessLevels = map[Role]DataAccessLevel{
	RoleDevotee:         AccessOwnData,
	RoleInmate:          AccessOwnData,
	RoleCounsellor:      AccessCounselleeData,
	RoleHOD:             AccessDepartmentData,
	RoleTemplePresident: AccessAllData,
}

// DataAccessLevelOf never grants more than AccessOwnData to a role it does not know.
func DataAccessLevelOf(r Role) DataAccessLevel {
	level, ok := roleAccessLevels[r]
	if !ok {
		return AccessOwnData
	}

	return level
}

// CanViewUserData reports whether a viewer with viewerRole may see data owned by
// targetUserID. assignedCounsellees is only consulted for counsellors; nil is fine.
func CanViewUserData(viewerRole Role, targetUserID, viewerID string, assignedCounsellees []string) bool {
	switch DataAccessLevelOf(viewerRole) {
	case AccessOwnData:
		return targetUserID == viewerID
	case AccessCounselleeData:
		return targetUserID == viewerID || slices.Contains(assignedCounsellees, targetUserID)
	case AccessDepartmentData:
		// Department scoping is not modelled yet, so a HOD currently sees every user,
		// the temple president included.
		return true
	case AccessAllData:
		return true
	default:
		return false
	}
}

// CanSeeDepartment is true for levels that span more than one counsellor's group.
func (l DataAccessLevel) CanSeeDepartment() bool {
	return l == AccessDepartmentData || l == AccessAllData
}
