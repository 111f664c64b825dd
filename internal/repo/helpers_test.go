package repo

import (
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/wow-auctions/internal/domain"
)

// newRepoDB opens a fresh file-backed SQLite database under t.TempDir with
// foreign keys enforced. When migrate is true the full schema is created.
func newRepoDB(t *testing.T, migrate bool) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "repo_test.db")
	db, err := gorm.Open(sqlite.Open(sqliteDSN(path)), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// Ensure the file handle is released before TempDir cleanup (Windows needs this).
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if migrate {
		if err := AutoMigrate(db); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

func seedRealm(t *testing.T, db *gorm.DB, name string, region domain.Region) *domain.Realm {
	t.Helper()
	r := &domain.Realm{Name: name, Slug: domain.Slugify(name), Region: region}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("seed realm %s/%s: %v", region, name, err)
	}
	return r
}

func seedAuctionFile(t *testing.T, db *gorm.DB, realmID int64, url string, lastModified time.Time, status domain.FileStatus) *domain.AuctionFile {
	t.Helper()
	f := &domain.AuctionFile{
		URL:          url,
		LastModified: domain.NormalizeTimestamp(lastModified),
		FileName:     "auctions.json",
		FileStatus:   status,
		RealmID:      realmID,
	}
	if err := db.Create(f).Error; err != nil {
		t.Fatalf("seed auction file: %v", err)
	}
	return f
}
