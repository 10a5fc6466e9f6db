package staff

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role of an authenticated caller. Identities are issued elsewhere; this
// service only reads the role claim.
type Role string

const (
	RoleParent     Role = "parent"
	RoleTherapist  Role = "therapist"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

var hierarchy = map[Role]int{
	RoleParent:     1,
	RoleTherapist:  2,
	RoleAdmin:      3,
	RoleSuperAdmin: 4,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := hierarchy[r]
	return ok
}

func (r Role) AtLeast(min Role) bool {
	level, ok := hierarchy[r]
	minLevel, minOK := hierarchy[min]
	return ok && minOK && level >= minLevel
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
