package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/access/internal/entity"
)

func TestDataAccessLevelOf(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		role entity.Role
		want entity.DataAccessLevel
	}{
		{role: entity.RoleDevotee, want: entity.AccessOwnData},
		{role: entity.RoleInmate, want: entity.AccessOwnData},
		{role: entity.RoleCounsellor, want: entity.AccessCounselleeData},
		{role: entity.RoleHOD, want: entity.AccessDepartmentData},
		{role: entity.RoleTemplePresident, want: entity.AccessAllData},
	} {
		require.Equal(t, tt.want, entity.DataAccessLevelOf(tt.role))
	}

	for _, r := range unknownRoles {
		require.Equal(t, entity.AccessOwnData, entity.DataAccessLevelOf(r), "role %q", r)
	}
}

func TestCanViewUserData(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name     string
		role     entity.Role
		target   string
		viewer   string
		assigned []string
		want     bool
	}{
		{name: "devotee self", role: entity.RoleDevotee, target: "u1", viewer: "u1", want: true},
		{name: "devotee other", role: entity.RoleDevotee, target: "u2", viewer: "u1", want: false},
		{name: "inmate other", role: entity.RoleInmate, target: "u2", viewer: "u1", want: false},
		{
			name:     "counsellor assigned",
			role:     entity.RoleCounsellor,
			target:   "u5",
			viewer:   "c1",
			assigned: []string{"u5", "u9"},
			want:     true,
		},
		{
			name:     "counsellor not assigned",
			role:     entity.RoleCounsellor,
			target:   "u7",
			viewer:   "c1",
			assigned: []string{"u5", "u9"},
			want:     false,
		},
		{name: "counsellor nil list", role: entity.RoleCounsellor, target: "u7", viewer: "c1", want: false},
		{name: "counsellor self nil list", role: entity.RoleCounsellor, target: "c1", viewer: "c1", want: true},
		{name: "hod anyone", role: entity.RoleHOD, target: "tp", viewer: "h1", want: true},
		{name: "temple president anyone", role: entity.RoleTemplePresident, target: "x", viewer: "y", want: true},
		{name: "unknown self", role: "bogus-role", target: "u1", viewer: "u1", want: true},
		{name: "unknown other", role: "bogus-role", target: "u2", viewer: "u1", want: false},
		{
			name:     "unknown ignores assignments",
			role:     "",
			target:   "u5",
			viewer:   "c1",
			assigned: []string{"u5"},
			want:     false,
		},
	} {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := entity.CanViewUserData(tt.role, tt.target, tt.viewer, tt.assigned)
			require.Equal(t, tt.want, got)
			require.Equal(t, got, entity.CanViewUserData(tt.role, tt.target, tt.viewer, tt.assigned))
		})
	}
}

func TestDataAccessLevel_CanSeeDepartment(t *testing.T) {
	t.Parallel()

	require.False(t, entity.AccessOwnData.CanSeeDepartment())
	require.False(t, entity.AccessCounselleeData.CanSeeDepartment())
	require.True(t, entity.AccessDepartmentData.CanSeeDepartment())
	require.True(t, entity.AccessAllData.CanSeeDepartment())
}
