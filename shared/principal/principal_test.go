package principal_test

import (
	"context"
	"testing"

	"hotelpos/shared/constant"
	"hotelpos/shared/principal"

	"github.com/stretchr/testify/assert"
)

func TestRoundTrip(t *testing.T) {
	want := principal.Principal{UserID: "u-1", Username: "maria", Role: constant.RoleCashier}

	got := principal.FromContext(principal.WithPrincipal(context.Background(), want))

	assert.Equal(t, want, got)
	assert.False(t, got.IsZero())
	assert.True(t, got.HasRole(constant.RoleAdmin, constant.RoleCashier))
	assert.False(t, got.HasRole(constant.RoleReceptionist))
}

func TestFromContext_Empty(t *testing.T) {
	assert.True(t, principal.FromContext(context.Background()).IsZero())
}
