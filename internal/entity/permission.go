package entity

type Permission string

const (
	PermissionAdminAccess              Permission = "admin_access"
	PermissionManageServices           Permission = "manage_services"
	PermissionCreateAvailabilitySheets Permission = "create_availability_sheets"
	PermissionTransferAdminRights      Permission = "transfer_admin_rights"
	PermissionViewUserData             Permission = "view_user_data"
)

var adminRoles = map[Role]struct{}{
	RoleCounsellor:      {},
	RoleHOD:             {},
	RoleTemplePresident: {},
}

// Kept apart from adminRoles so transfer can later be narrowed on its own.
var transferRoles = map[Role]struct{}{
	RoleCounsellor:      {},
	RoleHOD:             {},
	RoleTemplePresident: {},
}

func HasAdminAccess(r Role) bool {
	_, ok := adminRoles[r]
	return ok
}

// CanManageServices gates creating, editing, deleting and assigning seva records.
func CanManageServices(r Role) bool {
	return HasAdminAccess(r)
}

func CanCreateAvailabilitySheets(r Role) bool {
	return HasAdminAccess(r)
}

func CanTransferAdminRights(r Role) bool {
	_, ok := transferRoles[r]
	return ok
}

// PermissionsByRole lists the role-only permissions r holds. Every role may view its own
// data, so PermissionViewUserData is always present; whether it extends to a particular
// user is decided by CanViewUserData.
func PermissionsByRole(r Role) []Permission {
	permissions := []Permission{PermissionViewUserData}

	if HasAdminAccess(r) {
		permissions = append(permissions, PermissionAdminAccess)
	}

	if CanManageServices(r) {
		permissions = append(permissions, PermissionManageServices)
	}

	if CanCreateAvailabilitySheets(r) {
		permissions = append(permissions, PermissionCreateAvailabilitySheets)
	}

	if CanTransferAdminRights(r) {
		permissions = append(permissions, PermissionTransferAdminRights)
	}

	return permissions
}

func HasPermission(r Role, permission Permission) bool {
	for _, p := range PermissionsByRole(r) {
		if p == permission {
			return true
		}
	}

	return false
}

func (p Permission) IsValid() bool {
	switch p {
	case PermissionAdminAccess,
		PermissionManageServices,
		PermissionCreateAvailabilitySheets,
		PermissionTransferAdminRights,
		PermissionViewUserData:
		return true
	}

	return false
}

type RoleInfo struct {
	Role                        Role            `json:"role"`
	DisplayName                 string          `json:"display_name"`
	BadgeVariant                BadgeVariant    `json:"badge_variant"`
	DataAccessLevel             DataAccessLevel `json:"data_access_level"`
	HasAdminAccess              bool            `json:"has_admin_access"`
	CanManageServices           bool            `json:"can_manage_services"`
	CanCreateAvailabilitySheets bool            `json:"can_create_availability_sheets"`
	CanTransferAdminRights      bool            `json:"can_transfer_admin_rights"`
}

func RoleInfoOf(r Role) RoleInfo {
	return RoleInfo{
		Role:                        r,
		DisplayName:                 RoleDisplayName(r),
		BadgeVariant:                RoleBadgeVariant(r),
		DataAccessLevel:             DataAccessLevelOf(r),
		HasAdminAccess:              HasAdminAccess(r),
		CanManageServices:           CanManageServices(r),
		CanCreateAvailabilitySheets: CanCreateAvailabilitySheets(r),
		CanTransferAdminRights:      CanTransferAdminRights(r),
	}
}
