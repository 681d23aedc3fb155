// Package models defines client-side data models used by the recondesk CLI.
package models

// Role is the coarse authorization role attached to a principal.
type Role string

const (
	RoleStandard Role = "standard"
	RoleAdmin    Role = "admin"
)

// adminUsername is the distinguished identifier the backend historically used
// to mark the administrator account. It is only consulted when the profile
// payload carries no explicit role claim.
const adminUsername = "admin"

// Principal is the authenticated identity and its tier/role attributes.
// It is created on successful login or registration, replaced wholesale on
// re-login, and destroyed on logout.
type Principal struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	MobileNo  string `json:"mobile_no"`

	// IsPaid is the subscription tier: paid principals may use paid tools
	// and generate paid keys.
	IsPaid bool `json:"is_paid"`

	// Role is the explicit role claim from the auth service, when present.
	Role Role `json:"role,omitempty"`
}

// EffectiveRole resolves the principal's role. An explicit claim wins;
// otherwise the distinguished admin username is honored for compatibility
// with backends that predate the role claim.
func (p *Principal) EffectiveRole() Role {
	if p == nil {
		return RoleStandard
	}
	if p.Role != "" {
		return p.Role
	}
	if p.Username == adminUsername {
		return RoleAdmin
	}
	return RoleStandard
}

// IsAdmin reports whether the principal resolves to the admin role.
func (p *Principal) IsAdmin() bool {
	return p.EffectiveRole() == RoleAdmin
}

// FullName is a display helper for the profile screen.
func (p *Principal) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}
