// Package access decides which dashboard roles may call which API routes.
package access

import (
	"net/http"
	"strings"

	"ibrac/internal/domain"
)

// Rule grants read (GET/HEAD) and write access on every route under Prefix.
type Rule struct {
	Prefix string
	Read   []domain.Role
	Write  []domain.Role
}

var (
	everyone  = []domain.Role{domain.RoleAdmin, domain.RoleFinance, domain.RoleOperator, domain.RoleViewer}
	yardStaff = []domain.Role{domain.RoleAdmin, domain.RoleOperator}
	adminOnly = []domain.Role{domain.RoleAdmin}
)

// Rules is the route table. The longest matching prefix decides.
var Rules = []Rule{
	{Prefix: "/api", Read: adminOnly, Write: adminOnly},
	{Prefix: "/api/entradas", Read: everyone, Write: yardStaff},
	{Prefix: "/api/saidas", Read: everyone, Write: yardStaff},
	{Prefix: "/api/beneficiamentos", Read: everyone, Write: yardStaff},
	{Prefix: "/api/estoque", Read: everyone},
	{Prefix: "/api/financeiro", Read: []domain.Role{domain.RoleAdmin, domain.RoleFinance}},
	{Prefix: "/api/users", Read: adminOnly, Write: adminOnly},
	{Prefix: "/api/auth", Read: everyone},
}

// Public routes need no session at all.
var Public = []string{"/api/health", "/api/auth/login"}

func matches(prefix, path string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '/'
}

// IsPublic reports whether path is reachable without a token.
func IsPublic(path string) bool {
	for _, p := range Public {
		if matches(p, path) {
			return true
		}
	}
	return false
}

// RuleFor returns the most specific rule covering path.
func RuleFor(path string) (Rule, bool) {
	var (
		best  Rule
		found bool
	)
	for _, r := range Rules {
		if matches(r.Prefix, path) && (!found || len(r.Prefix) > len(best.Prefix)) {
			best, found = r, true
		}
	}
	return best, found
}

func isRead(method string) bool {
	return method == http.MethodGet || method == http.MethodHead
}

// CanAccess reports whether role may call method on path. Admin may always act;
// paths outside every rule are denied to everyone else.
func CanAccess(role domain.Role, method, path string) bool {
	if role == domain.RoleAdmin {
		return true
	}
	r, ok := RuleFor(path)
	if !ok {
		return false
	}
	allowed := r.Write
	if isRead(method) {
		allowed = r.Read
	}
	for _, a := range allowed {
		if a == role {
			return true
		}
	}
	return false
}
