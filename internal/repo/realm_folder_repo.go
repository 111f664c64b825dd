package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/wow-auctions/internal/domain"
)

// CreateRealmFolder inserts f. A second folder of the same type for the same
// realm, or an unknown realm, yields ErrConstraintViolation.
func CreateRealmFolder(ctx context.Context, db *gorm.DB, f *domain.RealmFolder) error {
	return classify(db.WithContext(ctx).Omit(clause.Associations).Create(f).Error)
}

// GetRealmFolder fetches the folder keyed by (realmID, folderType), or
// returns ErrNotFound.
func GetRealmFolder(ctx context.Context, db *gorm.DB, realmID int64, folderType domain.FolderType) (*domain.RealmFolder, error) {
	var f domain.RealmFolder
	err := db.WithContext(ctx).
		Where("realm_id = ? AND folder_type = ?", realmID, string(folderType)).
		First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}
