package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/DevZuhaib/luxe3d-api/models"
	"github.com/DevZuhaib/luxe3d-api/storage"
)

const adminID = "ADMIN-CORE-001"

// Authenticate checks the fixed admin credential pair first, then scans
// the registry for an email+password match. Comparison is plaintext;
// this is a demo storefront with no real security (see README). On a
// match the session is set and persisted and the destination view is
// returned: admin console for the admin, store front for everyone else.
func (s *Store) Authenticate(email, password string) (models.User, models.AppView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if email == s.adminEmail && password == s.adminPassword {
		// The admin is ephemeral configuration, never a registry record.
		admin := models.User{
			ID:           adminID,
			Email:        email,
			Role:         models.RoleAdmin,
			Name:         "Root Administrator",
			RegisteredAt: now(),
		}
		s.session = &admin
		s.persist(storage.KeySession, admin)
		s.notify.Emit("Link Established: Administrator", NoticeSuccess)
		logrus.Info("admin session established")
		return admin, models.ViewAdmin, nil
	}

	for _, u := range s.users {
		if u.Email == email && u.Password == password {
			user := u
			s.session = &user
			s.persist(storage.KeySession, user)
			s.notify.Emit("Welcome back, "+user.Name, NoticeSuccess)
			return user, models.ViewStore, nil
		}
	}

	s.notify.Emit("Credential Mismatch Detected", NoticeError)
	return models.User{}, "", ErrInvalidCredentials
}

// Register appends a new user to the registry and signs them in. The
// email must not already be registered. The phone number is stored with
// the fixed country-code prefix applied; format validation is the
// caller's job.
func (s *Store) Register(name, email, password, phone string) (models.User, models.AppView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			s.notify.Emit("Email identifier active", NoticeError)
			return models.User{}, "", ErrEmailTaken
		}
	}

	user := models.User{
		ID:           "USR-" + uuid.NewString()[:8],
		Name:         name,
		Email:        email,
		Password:     password,
		PhoneNumber:  "+92 " + phone,
		Role:         models.RoleUser,
		RegisteredAt: now(),
	}
	s.users = append(s.users, user)
	s.persist(storage.KeyRegistry, s.users)

	s.session = &user
	s.persist(storage.KeySession, user)
	s.notify.Emit("Identity Registered Successfully!", NoticeSuccess)
	logrus.WithField("user_id", user.ID).Info("new user registered")
	return user, models.ViewStore, nil
}

// Logout clears the session and points the client back at the store
// front. It never fails.
func (s *Store) Logout() models.AppView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	if err := s.snap.Delete(context.Background(), storage.KeySession); err != nil {
		logrus.WithError(err).Warn("failed to clear persisted session")
	}
	s.notify.Emit("Link Terminated", NoticeSuccess)
	return models.ViewStore
}
