package user

// Role is the closed set of organizational roles.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleManager    Role = "MANAGER"
	RoleTeamLeader Role = "TEAM_LEADER"
	RoleMember     Role = "MEMBER"
)

// Roles lists every role, highest rank first.
var Roles = []Role{RoleAdmin, RoleManager, RoleTeamLeader, RoleMember}

// IsValid returns true if the role is one of the defined constants.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleTeamLeader, RoleMember:
		return true
	default:
		return false
	}
}

// Rank orders roles by privilege. Higher is more privileged; unknown roles
// rank below MEMBER.
func (r Role) Rank() int {
	switch r {
	case RoleAdmin:
		return 4
	case RoleManager:
		return 3
	case RoleTeamLeader:
		return 2
	case RoleMember:
		return 1
	default:
		return 0
	}
}

// Outranks reports whether r is strictly more privileged than other.
func (r Role) Outranks(other Role) bool {
	return r.Rank() > other.Rank()
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}
