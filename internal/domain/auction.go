package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FileStatus is the processing state of an auction file. Transitions are
// driven by the batch pipeline; the gateway only stores the value.
type FileStatus string

const (
	FileStatusPending   FileStatus = "PENDING"
	FileStatusLoaded    FileStatus = "LOADED"
	FileStatusProcessed FileStatus = "PROCESSED"
)

// Valid reports whether s is a known status.
func (s FileStatus) Valid() bool {
	switch s {
	case FileStatusPending, FileStatusLoaded, FileStatusProcessed:
		return true
	}
	return false
}

// AuctionFile is a downloaded snapshot of a realm's auction house.
// (URL, LastModified) is the natural key used for de-duplication.
type AuctionFile struct {
	ID           int64      `json:"id"            gorm:"primaryKey;autoIncrement"`
	URL          string     `json:"url"           gorm:"type:varchar(512);not null;index:idx_auction_file_url_modified,priority:1"`
	LastModified time.Time  `json:"last_modified" gorm:"not null;index:idx_auction_file_url_modified,priority:2"`
	FileName     string     `json:"file_name"     gorm:"type:varchar(255)"`
	FileStatus   FileStatus `json:"file_status"   gorm:"type:varchar(16);not null;default:'PENDING';index:idx_auction_file_realm_status,priority:2"`
	RealmID      int64      `json:"realm_id"      gorm:"not null;index:idx_auction_file_realm_status,priority:1"`

	Realm Realm `json:"-" gorm:"foreignKey:RealmID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for AuctionFile.
func (AuctionFile) TableName() string { return "auction_files" }

// NormalizeTimestamp truncates t to millisecond precision in UTC, the
// resolution every supported store keeps for DATETIME columns. Natural-key
// comparisons on LastModified rely on it.
func NormalizeTimestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// Auction is one listing parsed from an auction file. The upstream auction
// id repeats across snapshots, so the key is (ID, AuctionFileID). Prices are
// copper amounts.
type Auction struct {
	ID            int64  `json:"id"              gorm:"primaryKey;autoIncrement:false"`
	AuctionFileID int64  `json:"auction_file_id" gorm:"primaryKey;autoIncrement:false;index"`
	RealmID       int64  `json:"realm_id"        gorm:"not null;index:idx_auction_realm"`
	ItemID        int64  `json:"item_id"         gorm:"not null;index"`
	Owner         string `json:"owner"           gorm:"type:varchar(64)"`
	OwnerRealm    string `json:"owner_realm"     gorm:"type:varchar(100)"`
	Bid           int64  `json:"bid"`
	Buyout        int64  `json:"buyout"`
	Quantity      int    `json:"quantity"        gorm:"not null;default:1"`
	TimeLeft      string `json:"time_left"       gorm:"type:varchar(16)"`

	AuctionFile AuctionFile `json:"-" gorm:"foreignKey:AuctionFileID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Realm       Realm       `json:"-" gorm:"foreignKey:RealmID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Auction.
func (Auction) TableName() string { return "auctions" }

// AuctionItemStatistics is a pre-aggregated price summary of one item on one
// realm at a point in time. Rows are materialized outside the gateway and
// only read here.
type AuctionItemStatistics struct {
	ID        int64           `json:"id"         gorm:"primaryKey;autoIncrement"`
	RealmID   int64           `json:"realm_id"   gorm:"not null;index:idx_stats_realm_item,priority:1"`
	ItemID    int64           `json:"item_id"    gorm:"not null;index:idx_stats_realm_item,priority:2"`
	Quantity  int64           `json:"quantity"`
	Bid       int64           `json:"bid"`
	MinBid    int64           `json:"min_bid"`
	MaxBid    int64           `json:"max_bid"`
	Buyout    int64           `json:"buyout"`
	MinBuyout int64           `json:"min_buyout"`
	MaxBuyout int64           `json:"max_buyout"`
	AvgBid    decimal.Decimal `json:"avg_bid"    gorm:"type:decimal(20,4)"`
	AvgBuyout decimal.Decimal `json:"avg_buyout" gorm:"type:decimal(20,4)"`
	StdDev    decimal.Decimal `json:"std_dev"    gorm:"type:decimal(20,4)"`
	Timestamp time.Time       `json:"timestamp"  gorm:"not null;index"`
}

// TableName returns the database table name for AuctionItemStatistics.
func (AuctionItemStatistics) TableName() string { return "auction_item_statistics" }
