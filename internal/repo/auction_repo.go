package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/wow-auctions/internal/domain"
)

// DefaultAuctionBatchSize is the insert batch size used by CreateAuctions
// when none is given.
const DefaultAuctionBatchSize = 500

// FindAuctionsByRealm returns a page of realmID's auctions in stable
// (auction_file_id, id) order. The caller validates offset and limit.
func FindAuctionsByRealm(ctx context.Context, db *gorm.DB, realmID int64, offset, limit int) ([]domain.Auction, error) {
	var out []domain.Auction
	err := db.WithContext(ctx).
		Where("realm_id = ?", realmID).
		Order("auction_file_id, id").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// CreateAuctions bulk-inserts auctions in batches of batchSize
// (DefaultAuctionBatchSize when <= 0).
func CreateAuctions(ctx context.Context, db *gorm.DB, auctions []domain.Auction, batchSize int) error {
	if len(auctions) == 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = DefaultAuctionBatchSize
	}
	return classify(db.WithContext(ctx).Omit(clause.Associations).CreateInBatches(auctions, batchSize).Error)
}

// DeleteAuctionsByFile removes every auction parsed from fileID and returns
// the number of rows removed.
func DeleteAuctionsByFile(ctx context.Context, db *gorm.DB, fileID int64) (int64, error) {
	res := db.WithContext(ctx).
		Where("auction_file_id = ?", fileID).
		Delete(&domain.Auction{})
	return res.RowsAffected, res.Error
}
