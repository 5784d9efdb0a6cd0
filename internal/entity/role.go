package entity

// Role is the organizational identity of a user. The set is closed, but any string is
// accepted: values outside the set resolve to the most restrictive answers.
type Role string

const (
	RoleUnknown         Role = ""
	RoleDevotee         Role = "devotee"
	RoleInmate          Role = "inmate"
	RoleCounsellor      Role = "counsellor"
	RoleHOD             Role = "hod"
	RoleTemplePresident Role = "temple_president"
)

// DefaultRole is given to users whose upstream role is missing or unrecognized.
const DefaultRole = RoleDevotee

type BadgeVariant string

const (
	BadgeDefault     BadgeVariant = "default"
	BadgeSecondary   BadgeVariant = "secondary"
	BadgeSuccess     BadgeVariant = "success"
	BadgeWarning     BadgeVariant = "warning"
	BadgeDestructive BadgeVariant = "destructive"
)

const UnknownRoleDisplayName = "Unknown Role"

var knownRoles = []Role{
	RoleDevotee,
	RoleInmate,
	RoleCounsellor,
	RoleHOD,
	RoleTemplePresident,
}

var roleDisplayNames = map[Role]string{
	RoleDevotee:         "Devotee",
	RoleInmate:          "Inmate",
	RoleCounsellor:      "Counsellor",
	RoleHOD:             "HOD",
	RoleTemplePresident: "Temple President",
}

var roleBadgeVariants = map[Role]BadgeVariant{
	RoleDevotee:         BadgeDefault,
	RoleInmate:          BadgeSecondary,
	RoleCounsellor:      BadgeSuccess,
	RoleHOD:             BadgeWarning,
	RoleTemplePresident: BadgeDestructive,
}

// Roles returns the known roles ordered by increasing authority.
func Roles() []Role {
	roles := make([]Role, len(knownRoles))
	copy(roles, knownRoles)

	return roles
}

// ParseRole matches s exactly against the known roles. Anything else, including a
// differently cased spelling, yields RoleUnknown.
func ParseRole(s string) Role {
	r := Role(s)
	if r.IsValid() {
		return r
	}

	return RoleUnknown
}

func (r Role) IsValid() bool {
	_, ok := roleDisplayNames[r]
	return ok
}

func (r Role) String() string {
	return string(r)
}

func RoleDisplayName(r Role) string {
	name, ok := roleDisplayNames[r]
	if !ok {
		return UnknownRoleDisplayName
	}

	return name
}

func RoleBadgeVariant(r Role) BadgeVariant {
	variant, ok := roleBadgeVariants[r]
	if !ok {
		return BadgeDefault
	}

	return variant
}

// Rank orders roles by authority. Unknown roles rank below every known role.
func (r Role) Rank() int {
	for i, known := range knownRoles {
		if known == r {
			return i
		}
	}

	return -1
}
