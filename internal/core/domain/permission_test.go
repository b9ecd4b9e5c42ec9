package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oficinadev/oficina_backend/internal/core/domain"
)

func TestCanAccessCashFlow(t *testing.T) {
	member := func(role domain.MemberRole, extra ...string) *domain.Member {
		return &domain.Member{Role: role, ExtraRoles: extra}
	}

	tests := []struct {
		name       string
		globalRole domain.UserRole
		membership *domain.Member
		want       bool
	}{
		{"global admin without membership", domain.UserRoleAdmin, nil, true},
		{"global admin overrides plain member", domain.UserRoleAdmin, member(domain.MemberRoleMember), true},
		{"no membership", domain.UserRoleUser, nil, false},
		{"owner", domain.UserRoleUser, member(domain.MemberRoleOwner), true},
		{"org admin", domain.UserRoleUser, member(domain.MemberRoleAdmin), true},
		{"plain member", domain.UserRoleUser, member(domain.MemberRoleMember), false},
		{"member with financeiro", domain.UserRoleUser, member(domain.MemberRoleMember, domain.ExtraRoleFinanceiro), true},
		{"member with unrelated extra role", domain.UserRoleUser, member(domain.MemberRoleMember, "estoque"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CanAccessCashFlow(tt.globalRole, tt.membership))
		})
	}
}

// Granting the financeiro extra role never removes access anyone already had.
func TestFinanceiroIsAdditive(t *testing.T) {
	for _, role := range []domain.MemberRole{domain.MemberRoleOwner, domain.MemberRoleAdmin, domain.MemberRoleMember} {
		without := domain.CanAccessCashFlow(domain.UserRoleUser, &domain.Member{Role: role})
		with := domain.CanAccessCashFlow(domain.UserRoleUser, &domain.Member{
			Role:       role,
			ExtraRoles: []string{domain.ExtraRoleFinanceiro},
		})
		assert.True(t, with || !without, "extra role must never revoke access for %s", role)
		assert.True(t, with, "financeiro grants access for %s", role)
	}
}
