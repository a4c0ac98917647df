// Package internaldb implements InternalStore using BadgerHold.
// It manages user accounts and system-level KV.
package internaldb

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/timshannon/badgerhold/v4"

	"github.com/fizenhive/fizen/internal/common"
	"github.com/fizenhive/fizen/internal/models"
)

// Store implements interfaces.InternalStore using BadgerHold.
type Store struct {
	db     *badgerhold.Store
	logger *common.Logger
}

// systemPrefix namespaces system-level key-value pairs away from any
// domain record key.
const systemPrefix = "__system__\x00"

// systemKV is the stored shape for system key-value pairs.
type systemKV struct {
	Key      string
	Value    string
	Modified time.Time
}

// NewStore creates a new InternalStore backed by BadgerHold.
func NewStore(logger *common.Logger, path string) (*Store, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create internal db path %s: %w", path, err)
	}
	opts := badgerhold.DefaultOptions
	opts.Dir = path
	opts.ValueDir = path
	opts.Logger = nil
	db, err := badgerhold.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open internal db at %s: %w", path, err)
	}
	logger.Info().Str("path", path).Msg("InternalDB opened")
	return &Store{db: db, logger: logger}, nil
}

// --- User accounts ---

func (s *Store) GetUser(_ context.Context, userID string) (*models.User, error) {
	var user models.User
	if err := s.db.Get(userID, &user); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("%w: user %s", common.ErrNotFound, userID)
		}
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	return &user, nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	var users []models.User
	if err := s.db.Find(&users, badgerhold.Where("Email").Eq(email)); err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("%w: no user with email %s", common.ErrNotFound, email)
	}
	return &users[0], nil
}

func (s *Store) SaveUser(_ context.Context, user *models.User) error {
	if user.ID == "" {
		return fmt.Errorf("user ID is required")
	}
	var existing models.User
	if err := s.db.Get(user.ID, &existing); err == nil {
		user.Created = existing.Created
	} else if user.Created.IsZero() {
		user.Created = time.Now()
	}

	if err := s.db.Upsert(user.ID, user); err != nil {
		return fmt.Errorf("failed to save user %s: %w", user.ID, err)
	}
	s.logger.Debug().Str("user_id", user.ID).Msg("User saved")
	return nil
}

func (s *Store) DeleteUser(_ context.Context, userID string) error {
	if err := s.db.Delete(userID, models.User{}); err != nil && err != badgerhold.ErrNotFound {
		return fmt.Errorf("failed to delete user %s: %w", userID, err)
	}
	return nil
}

// --- System KV ---

func (s *Store) GetSystemKV(_ context.Context, key string) (string, error) {
	var kv systemKV
	if err := s.db.Get(systemPrefix+key, &kv); err != nil {
		if err == badgerhold.ErrNotFound {
			return "", fmt.Errorf("%w: system key %s", common.ErrNotFound, key)
		}
		return "", fmt.Errorf("failed to get system key %s: %w", key, err)
	}
	return kv.Value, nil
}

func (s *Store) SetSystemKV(_ context.Context, key, value string) error {
	kv := systemKV{Key: key, Value: value, Modified: time.Now()}
	if err := s.db.Upsert(systemPrefix+key, &kv); err != nil {
		return fmt.Errorf("failed to set system key %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying store.
func (s *Store) Close() error {
	return s.db.Close()
}
