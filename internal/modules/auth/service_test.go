package auth

import (
	"testing"
	"time"

	jwtsvc "radioreg/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, adminPassword, viewerPassword string) *Service {
	t.Helper()
	svc, err := NewService(adminPassword, viewerPassword, jwtsvc.New("test-secret", time.Hour))
	require.NoError(t, err)
	return svc
}

func TestService_LoginAdmin(t *testing.T) {
	svc := newTestService(t, "admin-pass", "viewer-pass")

	token, role, err := svc.Login("admin-pass")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)
	assert.NotEmpty(t, token)

	claims, err := jwtsvc.New("test-secret", time.Hour).ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, LabelAdmin, claims.UserLabel)
}

func TestService_LoginViewer(t *testing.T) {
	svc := newTestService(t, "admin-pass", "viewer-pass")

	token, role, err := svc.Login("viewer-pass")
	require.NoError(t, err)
	assert.Equal(t, RoleViewer, role)
	assert.NotEmpty(t, token)
}

func TestService_LoginWrongPassword(t *testing.T) {
	svc := newTestService(t, "admin-pass", "viewer-pass")

	_, _, err := svc.Login("nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_SamePasswordGrantsAdmin(t *testing.T) {
	svc := newTestService(t, "1234", "1234")

	_, role, err := svc.Login("1234")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)
}
