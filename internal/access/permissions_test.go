package access

import (
	"net/http"
	"testing"

	"ibrac/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCanAccess(t *testing.T) {
	cases := []struct {
		role   domain.Role
		method string
		path   string
		want   bool
	}{
		{domain.RoleViewer, http.MethodGet, "/api/entradas", true},
		{domain.RoleViewer, http.MethodPost, "/api/entradas", false},
		{domain.RoleOperator, http.MethodPost, "/api/saidas", true},
		{domain.RoleOperator, http.MethodPut, "/api/beneficiamentos/4/retorno", true},
		{domain.RoleOperator, http.MethodGet, "/api/financeiro/resumo", false},
		{domain.RoleFinance, http.MethodGet, "/api/financeiro/resumo", true},
		{domain.RoleFinance, http.MethodDelete, "/api/entradas/3", false},
		{domain.RoleFinance, http.MethodGet, "/api/estoque/export", true},
		{domain.RoleOperator, http.MethodGet, "/api/users", false},
		{domain.RoleOperator, http.MethodGet, "/api/db-check", false},
		{domain.RoleAdmin, http.MethodDelete, "/api/users/2", true},
		{domain.RoleViewer, http.MethodGet, "/api/entradasx", false},
		{domain.RoleViewer, http.MethodGet, "/api/auth/me", true},
		{domain.Role("gerente"), http.MethodGet, "/api/entradas", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CanAccess(c.role, c.method, c.path), "%s %s %s", c.role, c.method, c.path)
	}
}

func TestRuleForLongestPrefix(t *testing.T) {
	r, ok := RuleFor("/api/financeiro/resumo")
	assert.True(t, ok)
	assert.Equal(t, "/api/financeiro", r.Prefix)

	r, ok = RuleFor("/api/algo")
	assert.True(t, ok)
	assert.Equal(t, "/api", r.Prefix)

	_, ok = RuleFor("/metrics")
	assert.False(t, ok)
}

func TestIsPublic(t *testing.T) {
	assert.True(t, IsPublic("/api/health"))
	assert.True(t, IsPublic("/api/auth/login"))
	assert.False(t, IsPublic("/api/healthz"))
	assert.False(t, IsPublic("/api/entradas"))
}
