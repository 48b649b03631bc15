package store

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/DevZuhaib/luxe3d-api/models"
	"github.com/DevZuhaib/luxe3d-api/storage"
)

// Store is the domain state container. It owns the five state slices
// (registry, catalog, ledger, cart, session) and exposes the mutation
// operations; every mutation is serialized by one mutex and followed by
// a whole-slice write-through to the snapshot store before it returns.
type Store struct {
	mu   sync.RWMutex
	snap storage.Snapshots

	users    []models.User
	products []models.Product
	orders   []models.Order
	cart     []models.CartItem
	session  *models.User

	notify *notifier

	adminEmail    string
	adminPassword string
}

// New builds a Store backed by snap, restoring persisted slices. The
// catalog is seeded with the default products when no catalog has ever
// been saved. The cart always starts empty.
func New(snap storage.Snapshots, adminEmail, adminPassword string) (*Store, error) {
	s := &Store{
		snap:          snap,
		notify:        newNotifier(notificationTTL),
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
	}

	ctx := context.Background()
	found, err := snap.Load(ctx, storage.KeyProducts, &s.products)
	if err != nil {
		return nil, err
	}
	if !found {
		s.products = append([]models.Product(nil), models.SeedProducts...)
		if err := snap.Save(ctx, storage.KeyProducts, s.products); err != nil {
			return nil, err
		}
		logrus.Infof("seeded catalog with %d default products", len(s.products))
	}
	if _, err := snap.Load(ctx, storage.KeyOrders, &s.orders); err != nil {
		return nil, err
	}
	if _, err := snap.Load(ctx, storage.KeyRegistry, &s.users); err != nil {
		return nil, err
	}
	var session models.User
	if found, err := snap.Load(ctx, storage.KeySession, &session); err != nil {
		return nil, err
	} else if found {
		s.session = &session
	}
	return s, nil
}

// Notification returns the current transient notification, if any.
func (s *Store) Notification() *Notification {
	return s.notify.Current()
}

// Session returns the currently authenticated user, or false.
func (s *Store) Session() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return models.User{}, false
	}
	return *s.session, true
}

// Users returns a copy of the registry.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User(nil), s.users...)
}

// UserByID resolves a registry user, or the ephemeral admin when id
// matches the current admin session.
func (s *Store) UserByID(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session != nil && s.session.ID == id {
		return *s.session, true
	}
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func now() int64 {
	return time.Now().UnixMilli()
}

// persist writes one slice through to the snapshot store. Write
// failures are logged, not propagated: the in-memory mutation has
// already happened and the next successful write replaces the blob
// wholesale anyway.
func (s *Store) persist(key string, value any) {
	if err := s.snap.Save(context.Background(), key, value); err != nil {
		logrus.WithError(err).Warnf("failed to persist %s", key)
	}
}
