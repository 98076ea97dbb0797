package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_IsAdmin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		role Role
		want bool
	}{
		{name: "admin role", role: RoleAdmin, want: true},
		{name: "user role", role: RoleUser, want: false},
		{name: "empty role", role: Role(""), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := Session{Role: tt.role}
			assert.Equal(t, tt.want, s.IsAdmin())
		})
	}
}
