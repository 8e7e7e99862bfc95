package domain

import "time"

// ID is used across domain entities.
type ID int64

// Role names the access level of a dashboard user.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleFinance  Role = "financeiro"
	RoleOperator Role = "operador"
	RoleViewer   Role = "visualizador"
)

// Roles lists every known role.
var Roles = []Role{RoleAdmin, RoleFinance, RoleOperator, RoleViewer}

// ParseRole returns the role named by s, or false when it is unknown.
func ParseRole(s string) (Role, bool) {
	for _, r := range Roles {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

// Period is an inclusive date range. Zero bounds are open.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the period.
func (p Period) Contains(t time.Time) bool {
	if !p.Start.IsZero() && t.Before(p.Start) {
		return false
	}
	if !p.End.IsZero() && t.After(p.End) {
		return false
	}
	return true
}

// RequestContext carries authenticated user info when available.
type RequestContext struct {
	UserID ID   `json:"userId"`
	Role   Role `json:"role"`
}
