// Package userdb implements UserDataStore using BadgerHold.
// It stores per-user holdings and saved insight bookmarks.
package userdb

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/timshannon/badgerhold/v4"

	"github.com/fizenhive/fizen/internal/common"
	"github.com/fizenhive/fizen/internal/models"
)

// Store implements interfaces.UserDataStore using BadgerHold.
type Store struct {
	db     *badgerhold.Store
	logger *common.Logger
}

// NewStore creates a new UserDataStore backed by BadgerHold.
func NewStore(logger *common.Logger, path string) (*Store, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create userdb path %s: %w", path, err)
	}
	opts := badgerhold.DefaultOptions
	opts.Dir = path
	opts.ValueDir = path
	opts.Logger = nil
	db, err := badgerhold.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open userdb at %s: %w", path, err)
	}
	logger.Info().Str("path", path).Msg("UserDB opened")
	return &Store{db: db, logger: logger}, nil
}

// keySep is the composite key separator. Using a null byte prevents
// collisions when userID or entity keys contain ":" characters.
const keySep = "\x00"

func holdingKey(userID, id string) string {
	return userID + keySep + "holding" + keySep + id
}

func insightKey(userID, ticker string) string {
	return userID + keySep + "insight" + keySep + ticker
}

// --- Holdings ---

func (s *Store) GetHolding(_ context.Context, userID, id string) (*models.Holding, error) {
	var h models.Holding
	if err := s.db.Get(holdingKey(userID, id), &h); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("%w: holding %s for user %s", common.ErrNotFound, id, userID)
		}
		return nil, fmt.Errorf("failed to get holding %s: %w", id, err)
	}
	return &h, nil
}

func (s *Store) PutHolding(_ context.Context, holding *models.Holding) error {
	if holding.UserID == "" || holding.ID == "" {
		return fmt.Errorf("holding user ID and ID are required")
	}
	if holding.Created.IsZero() {
		holding.Created = time.Now()
	}
	if err := s.db.Upsert(holdingKey(holding.UserID, holding.ID), holding); err != nil {
		return fmt.Errorf("failed to put holding %s: %w", holding.ID, err)
	}
	s.logger.Debug().Str("user_id", holding.UserID).Str("ticker", holding.Ticker).Msg("Holding saved")
	return nil
}

func (s *Store) DeleteHolding(_ context.Context, userID, id string) error {
	if err := s.db.Delete(holdingKey(userID, id), models.Holding{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return fmt.Errorf("%w: holding %s for user %s", common.ErrNotFound, id, userID)
		}
		return fmt.Errorf("failed to delete holding %s: %w", id, err)
	}
	return nil
}

func (s *Store) ListHoldings(_ context.Context, userID string) ([]models.Holding, error) {
	var holdings []models.Holding
	if err := s.db.Find(&holdings, badgerhold.Where("UserID").Eq(userID)); err != nil {
		return nil, fmt.Errorf("failed to list holdings for user %s: %w", userID, err)
	}
	sort.Slice(holdings, func(i, j int) bool {
		return holdings[i].Created.Before(holdings[j].Created)
	})
	return holdings, nil
}

// --- Saved insights ---

func (s *Store) PutSavedInsight(_ context.Context, saved *models.SavedInsight) error {
	if saved.UserID == "" || saved.Ticker == "" {
		return fmt.Errorf("saved insight user ID and ticker are required")
	}
	if saved.Saved.IsZero() {
		saved.Saved = time.Now()
	}
	if err := s.db.Upsert(insightKey(saved.UserID, saved.Ticker), saved); err != nil {
		return fmt.Errorf("failed to save insight for %s: %w", saved.Ticker, err)
	}
	return nil
}

func (s *Store) DeleteSavedInsight(_ context.Context, userID, ticker string) error {
	if err := s.db.Delete(insightKey(userID, ticker), models.SavedInsight{}); err != nil && err != badgerhold.ErrNotFound {
		return fmt.Errorf("failed to delete saved insight %s: %w", ticker, err)
	}
	return nil
}

func (s *Store) ListSavedInsights(_ context.Context, userID string) ([]models.SavedInsight, error) {
	var saved []models.SavedInsight
	if err := s.db.Find(&saved, badgerhold.Where("UserID").Eq(userID)); err != nil {
		return nil, fmt.Errorf("failed to list saved insights for user %s: %w", userID, err)
	}
	sort.Slice(saved, func(i, j int) bool {
		return saved[i].Saved.After(saved[j].Saved)
	})
	return saved, nil
}

// Close closes the underlying store.
func (s *Store) Close() error {
	return s.db.Close()
}
