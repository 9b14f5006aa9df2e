package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscribable(t *testing.T) {
	cases := []struct {
		name string
		user User
		want bool
	}{
		{"approved active trainer", User{Role: RoleTrainer, IsApproved: true, IsActive: true}, true},
		{"unapproved trainer", User{Role: RoleTrainer, IsApproved: false, IsActive: true}, false},
		{"deactivated trainer", User{Role: RoleTrainer, IsApproved: true, IsActive: false}, false},
		{"member", User{Role: RoleUser, IsApproved: true, IsActive: true}, false},
		{"admin", User{Role: RoleAdmin, IsApproved: true, IsActive: true}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.user.Subscribable())
		})
	}
}

func TestValidPlanType(t *testing.T) {
	assert.True(t, ValidPlanType(PlanTypeBasic))
	assert.True(t, ValidPlanType(PlanTypeCustom))
	assert.False(t, ValidPlanType("platinum"))
	assert.False(t, ValidPlanType(""))
}
