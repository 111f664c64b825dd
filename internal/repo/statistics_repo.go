package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/wow-auctions/internal/domain"
)

// FindStatisticsByRealmsAndItem returns the statistics rows of itemID on any
// of realmIDs, ordered by timestamp, then id. An empty realmIDs yields an
// empty result without querying.
func FindStatisticsByRealmsAndItem(ctx context.Context, db *gorm.DB, realmIDs []int64, itemID int64) ([]domain.AuctionItemStatistics, error) {
	out := []domain.AuctionItemStatistics{}
	if len(realmIDs) == 0 {
		return out, nil
	}
	err := db.WithContext(ctx).
		Where("realm_id IN ? AND item_id = ?", realmIDs, itemID).
		Order("timestamp, id").
		Find(&out).Error
	return out, err
}
