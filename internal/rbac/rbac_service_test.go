package rbac_test

import (
	"testing"

	"hr-backoffice/internal/rbac"

	"github.com/stretchr/testify/assert"
)

func TestEnforce(t *testing.T) {
	svc, err := rbac.NewService()
	assert.NoError(t, err)

	cases := []struct {
		name     string
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{"admin can resolve leaves", rbac.RoleAdmin, "leave", "resolve", true},
		{"admin can create salary slips", rbac.RoleAdmin, "salary-slip", "create", true},
		{"admin can read login activities", rbac.RoleAdmin, "login-activity", "read", true},
		{"employee can submit leaves", rbac.RoleEmployee, "leave", "create", true},
		{"employee can read own slips", rbac.RoleEmployee, "salary-slip", "read", true},
		{"employee cannot resolve leaves", rbac.RoleEmployee, "leave", "resolve", false},
		{"employee cannot create slips", rbac.RoleEmployee, "salary-slip", "create", false},
		{"employee cannot read login activities", rbac.RoleEmployee, "login-activity", "read", false},
		{"unknown role gets nothing", "intern", "leave", "read", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := svc.Enforce(tc.role, tc.resource, tc.action)
			assert.NoError(t, err)
			assert.Equal(t, tc.allowed, ok)
		})
	}
}
