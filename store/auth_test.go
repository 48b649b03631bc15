package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DevZuhaib/luxe3d-api/models"
)

func TestAuthenticateAdminPair(t *testing.T) {
	s, _ := newTestStore(t)

	// Empty registry: the fixed pair must still work.
	user, view, err := s.Authenticate(testAdminEmail, testAdminPassword)
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, user.Role)
	require.Equal(t, models.ViewAdmin, view)

	session, ok := s.Session()
	require.True(t, ok)
	require.Equal(t, models.RoleAdmin, session.Role)

	// The admin is never appended to the registry.
	require.Empty(t, s.Users())
}

func TestAuthenticateRegistryUser(t *testing.T) {
	s, _ := newTestStore(t)
	registered := signupTestUser(t, s)
	s.Logout()

	user, view, err := s.Authenticate(registered.Email, "hunter2-long")
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)
	require.Equal(t, models.ViewStore, view)
}

func TestAuthenticateMismatch(t *testing.T) {
	s, _ := newTestStore(t)
	signupTestUser(t, s)
	s.Logout()

	_, _, err := s.Authenticate("ayesha@example.com", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, ok := s.Session()
	require.False(t, ok)

	n := s.Notification()
	require.NotNil(t, n)
	require.Equal(t, NoticeError, n.Type)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s, _ := newTestStore(t)
	signupTestUser(t, s)

	_, _, err := s.Register("Bilal", "ayesha@example.com", "another-pass", "3007654321")
	require.ErrorIs(t, err, ErrEmailTaken)
	require.Len(t, s.Users(), 1, "failed signup must not mutate the registry")
}

func TestRegisterNormalizesPhone(t *testing.T) {
	s, _ := newTestStore(t)
	user := signupTestUser(t, s)
	require.Equal(t, "+92 3001234567", user.PhoneNumber)
	require.Equal(t, models.RoleUser, user.Role)
	require.NotEmpty(t, user.ID)

	// Registration signs the new user in.
	session, ok := s.Session()
	require.True(t, ok)
	require.Equal(t, user.ID, session.ID)
}
