package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrincipal_EffectiveRole(t *testing.T) {
	tests := []struct {
		name      string
		principal *Principal
		want      Role
	}{
		{name: "nil principal", principal: nil, want: RoleStandard},
		{name: "no claim, ordinary user", principal: &Principal{Username: "alice"}, want: RoleStandard},
		{name: "no claim, distinguished username", principal: &Principal{Username: "admin"}, want: RoleAdmin},
		{name: "explicit admin claim", principal: &Principal{Username: "root", Role: RoleAdmin}, want: RoleAdmin},
		{
			// An explicit claim always wins, even over the distinguished name.
			name:      "explicit standard claim on admin username",
			principal: &Principal{Username: "admin", Role: RoleStandard},
			want:      RoleStandard,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.principal.EffectiveRole())
			assert.Equal(t, tc.want == RoleAdmin, tc.principal.IsAdmin())
		})
	}
}

func TestPrincipal_FullName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", (&Principal{FirstName: "Ada", LastName: "Lovelace"}).FullName())
	assert.Equal(t, "Ada", (&Principal{FirstName: "Ada"}).FullName())
	assert.Equal(t, "Lovelace", (&Principal{LastName: "Lovelace"}).FullName())
}
