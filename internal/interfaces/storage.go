// Package interfaces defines service contracts for Fizen
package interfaces

import (
	"context"

	"github.com/fizenhive/fizen/internal/models"
)

// StorageManager coordinates the storage backends.
type StorageManager interface {
	InternalStore() InternalStore
	UserDataStore() UserDataStore
	Close() error
}

// InternalStore manages user accounts and system-level KV.
type InternalStore interface {
	GetUser(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	SaveUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, userID string) error

	GetSystemKV(ctx context.Context, key string) (string, error)
	SetSystemKV(ctx context.Context, key, value string) error

	Close() error
}

// UserDataStore manages per-user domain data: holdings and saved insights.
type UserDataStore interface {
	GetHolding(ctx context.Context, userID, id string) (*models.Holding, error)
	PutHolding(ctx context.Context, holding *models.Holding) error
	DeleteHolding(ctx context.Context, userID, id string) error
	ListHoldings(ctx context.Context, userID string) ([]models.Holding, error)

	PutSavedInsight(ctx context.Context, saved *models.SavedInsight) error
	DeleteSavedInsight(ctx context.Context, userID, ticker string) error
	ListSavedInsights(ctx context.Context, userID string) ([]models.SavedInsight, error)

	Close() error
}
