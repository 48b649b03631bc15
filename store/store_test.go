package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DevZuhaib/luxe3d-api/models"
	"github.com/DevZuhaib/luxe3d-api/storage"
)

const (
	testAdminEmail    = "admin@luxe3d.com"
	testAdminPassword = "admin123"
)

func newTestStore(t *testing.T) (*Store, *storage.Memory) {
	t.Helper()
	snap := storage.NewMemory()
	s, err := New(snap, testAdminEmail, testAdminPassword)
	require.NoError(t, err)
	return s, snap
}

func signupTestUser(t *testing.T, s *Store) models.User {
	t.Helper()
	user, _, err := s.Register("Ayesha", "ayesha@example.com", "hunter2-long", "3001234567")
	require.NoError(t, err)
	return user
}

func TestNewSeedsCatalogOnce(t *testing.T) {
	s, snap := newTestStore(t)
	require.Equal(t, models.SeedProducts, s.Products())

	// The seed must have been written through.
	var persisted []models.Product
	found, err := snap.Load(context.Background(), storage.KeyProducts, &persisted)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, persisted, 2)

	// A second store over the same snapshots must not reseed.
	require.NoError(t, s.DeleteProduct("p1"))
	s2, err := New(snap, testAdminEmail, testAdminPassword)
	require.NoError(t, err)
	require.Len(t, s2.Products(), 1)
}

func TestSessionSurvivesRestart(t *testing.T) {
	s, snap := newTestStore(t)
	user := signupTestUser(t, s)

	s2, err := New(snap, testAdminEmail, testAdminPassword)
	require.NoError(t, err)
	restored, ok := s2.Session()
	require.True(t, ok)
	require.Equal(t, user.ID, restored.ID)
}

func TestLogoutClearsPersistedSession(t *testing.T) {
	s, snap := newTestStore(t)
	signupTestUser(t, s)

	view := s.Logout()
	require.Equal(t, models.ViewStore, view)
	_, ok := s.Session()
	require.False(t, ok)

	var session models.User
	found, err := snap.Load(context.Background(), storage.KeySession, &session)
	require.NoError(t, err)
	require.False(t, found)
}

func TestRegistrySurvivesRestart(t *testing.T) {
	s, snap := newTestStore(t)
	user := signupTestUser(t, s)

	s2, err := New(snap, testAdminEmail, testAdminPassword)
	require.NoError(t, err)
	users := s2.Users()
	require.Len(t, users, 1)
	require.Equal(t, user.Email, users[0].Email)
}
