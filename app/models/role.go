package models

import "fmt"

// Role classifies a signed-in user. The set is closed: anything outside it
// is rejected at parse time so downstream dispatch can switch exhaustively
// instead of comparing raw strings.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleTeacher   Role = "teacher"
	RolePrincipal Role = "principal"
	RoleDonor     Role = "donor"
	RoleParent    Role = "parent"
)

// AllRoles lists every role, in a stable order.
var AllRoles = []Role{RoleAdmin, RoleTeacher, RolePrincipal, RoleDonor, RoleParent}

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleTeacher, RolePrincipal, RoleDonor, RoleParent:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}
