package portfolio

import (
	"context"
	"fmt"
	"strings"

	"github.com/fizenhive/fizen/internal/common"
	"github.com/fizenhive/fizen/internal/interfaces"
	"github.com/fizenhive/fizen/internal/models"
)

// Vault implements InsightVault: per-user bookmarks of scored insights.
type Vault struct {
	storage interfaces.StorageManager
	logger  *common.Logger
}

// NewVault creates the insight vault.
func NewVault(storage interfaces.StorageManager, logger *common.Logger) *Vault {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Vault{storage: storage, logger: logger}
}

// Save bookmarks an insight under its ticker, replacing any earlier copy.
func (v *Vault) Save(ctx context.Context, userID string, insight *models.ScoredInsight) error {
	if userID == "" || insight == nil || insight.Ticker == "" {
		return fmt.Errorf("%w: user ID and insight ticker are required", common.ErrInvalidRequest)
	}
	return v.storage.UserDataStore().PutSavedInsight(ctx, &models.SavedInsight{
		UserID:  userID,
		Ticker:  strings.ToUpper(insight.Ticker),
		Insight: *insight,
	})
}

// List returns the user's bookmarks, newest first.
func (v *Vault) List(ctx context.Context, userID string) ([]models.SavedInsight, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user ID is required", common.ErrInvalidRequest)
	}
	return v.storage.UserDataStore().ListSavedInsights(ctx, userID)
}

// Delete removes one bookmark.
func (v *Vault) Delete(ctx context.Context, userID, ticker string) error {
	if userID == "" || ticker == "" {
		return fmt.Errorf("%w: user ID and ticker are required", common.ErrInvalidRequest)
	}
	return v.storage.UserDataStore().DeleteSavedInsight(ctx, userID, strings.ToUpper(ticker))
}

// Ensure Vault implements InsightVault
var _ interfaces.InsightVault = (*Vault)(nil)
