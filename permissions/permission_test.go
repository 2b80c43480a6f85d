package permissions_test

import (
	"net/http"
	"testing"

	"hotelpos/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := permissions.Get()

	require.NotNil(t, data)
	assert.False(t, data.Skip)
	assert.NotEmpty(t, data.Endpoints)
}

func TestLookup(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name     string
		path     string
		method   string
		wantSkip bool
		wantRole []string
	}{
		{
			name:     "login is public",
			path:     "/v1/auth/login",
			method:   http.MethodPost,
			wantSkip: true,
			wantRole: []string{},
		},
		{
			name:     "report is admin only",
			path:     "/v1/reports/sales",
			method:   http.MethodGet,
			wantRole: []string{"admin"},
		},
		{
			name:     "collection pattern with trailing slash",
			path:     "/v1/stays/",
			method:   http.MethodPost,
			wantRole: []string{"admin", "receptionist"},
		},
		{
			name:     "orders open to every role",
			path:     "/v1/orders/",
			method:   http.MethodPost,
			wantRole: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission, found := data.Lookup(tt.path, tt.method)
			require.True(t, found)

			assert.Equal(t, tt.wantSkip, permission.Skip)
			assert.Equal(t, tt.wantRole, permission.Permissions)
		})
	}

	t.Run("unknown route", func(t *testing.T) {
		permission, found := data.Lookup("/v1/unknown", http.MethodGet)

		assert.False(t, found)
		assert.Empty(t, permission.Path)
		assert.False(t, permission.Skip)
	})
}

func TestEveryRoleIsKnown(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	for _, endpoint := range data.Endpoints {
		for _, role := range endpoint.Permissions {
			assert.Contains(t, []string{"admin", "receptionist", "cashier"}, role, "%s %s", endpoint.Method, endpoint.Path)
		}
	}
}

func TestPermission_Allows(t *testing.T) {
	adminOnly := permissions.Permission{Permissions: []string{"admin"}}
	anyRole := permissions.Permission{Permissions: []string{}}
	public := permissions.Permission{Skip: true, Permissions: []string{"admin"}}

	assert.True(t, adminOnly.Allows("admin"))
	assert.False(t, adminOnly.Allows("cashier"))
	assert.True(t, anyRole.Allows("cashier"))
	assert.True(t, public.Allows(""))
}
