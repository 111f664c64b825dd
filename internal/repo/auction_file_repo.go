package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/wow-auctions/internal/domain"
)

// CountAuctionFilesByURLAndLastModified counts files sharing the natural key
// (url, lastModified). Callers normalize lastModified with
// domain.NormalizeTimestamp.
func CountAuctionFilesByURLAndLastModified(ctx context.Context, db *gorm.DB, url string, lastModified time.Time) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.AuctionFile{}).
		Where("url = ? AND last_modified = ?", url, lastModified).
		Count(&total).Error
	return total, err
}

// CreateAuctionFile inserts f and sets f.ID.
func CreateAuctionFile(ctx context.Context, db *gorm.DB, f *domain.AuctionFile) error {
	return classify(db.WithContext(ctx).Omit(clause.Associations).Create(f).Error)
}

// SaveAuctionFile overwrites every column of the file identified by f.ID.
// It returns ErrNotFound when no such file exists.
func SaveAuctionFile(ctx context.Context, db *gorm.DB, f *domain.AuctionFile) error {
	if _, err := GetAuctionFile(ctx, db, f.ID); err != nil {
		return err
	}
	err := db.WithContext(ctx).
		Model(&domain.AuctionFile{ID: f.ID}).
		Updates(map[string]any{
			"url":           f.URL,
			"last_modified": f.LastModified,
			"file_name":     f.FileName,
			"file_status":   string(f.FileStatus),
			"realm_id":      f.RealmID,
		}).Error
	return classify(err)
}

// GetAuctionFile fetches a file by id, or returns ErrNotFound.
func GetAuctionFile(ctx context.Context, db *gorm.DB, id int64) (*domain.AuctionFile, error) {
	var f domain.AuctionFile
	if err := db.WithContext(ctx).First(&f, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// FindAuctionFilesByRealmAndStatus returns the files of realmID in status,
// oldest snapshot first (last_modified, then id).
func FindAuctionFilesByRealmAndStatus(ctx context.Context, db *gorm.DB, realmID int64, status domain.FileStatus) ([]domain.AuctionFile, error) {
	var out []domain.AuctionFile
	err := db.WithContext(ctx).
		Where("realm_id = ? AND file_status = ?", realmID, string(status)).
		Order("last_modified, id").
		Find(&out).Error
	return out, err
}
