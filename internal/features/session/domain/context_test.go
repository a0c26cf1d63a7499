package domain

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_Lifecycle(t *testing.T) {
	c := New()
	require.NotEmpty(t, c.ID)
	assert.False(t, c.Authenticated())
	assert.Equal(t, Role(""), c.Role())

	exp := time.Now().Add(time.Hour)
	c.Authenticate("tok", exp)
	assert.False(t, c.Authenticated(), "token alone is not enough")

	c.Populate(User{ID: "u1", Role: RoleDriver})
	assert.True(t, c.Authenticated())
	assert.Equal(t, RoleDriver, c.Role())
	assert.True(t, c.HasRole(RoleCustomer, RoleDriver))
	assert.False(t, c.HasRole(Admins...))

	c.Clear()
	assert.False(t, c.Authenticated())
	assert.Empty(t, c.Token)
	assert.True(t, c.ExpiresAt.IsZero())
}

func TestContext_IsolatedInstances(t *testing.T) {
	a, b := New(), New()
	a.Authenticate("a", time.Time{})
	a.Populate(User{ID: "a", Role: RoleCustomer})

	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, b.Authenticated())
}

func TestContext_Expired(t *testing.T) {
	now := time.Now()
	c := &Context{ExpiresAt: now}
	assert.True(t, c.Expired(now))
	assert.False(t, c.Expired(now.Add(-time.Second)))
	assert.False(t, (&Context{}).Expired(now))
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("backend-secret"))
	require.NoError(t, err)

	got, ok := TokenExpiry(signed)
	require.True(t, ok)
	assert.True(t, exp.Equal(got))

	_, ok = TokenExpiry("opaque-token")
	assert.False(t, ok)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1"}).SignedString([]byte("k"))
	require.NoError(t, err)
	_, ok = TokenExpiry(noExp)
	assert.False(t, ok)
}

func TestUser_CompanyID(t *testing.T) {
	assert.Empty(t, User{}.CompanyID())
	assert.Equal(t, "c1", User{Companies: []CompanyMembership{{CompanyID: "c1"}, {CompanyID: "c2"}}}.CompanyID())
}
