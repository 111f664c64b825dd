// Package domain defines the persistence models of the auction data
// gateway. These types are mapped with GORM and shared by the repository,
// service and HTTP layers.
package domain

import (
	"fmt"
	"strings"
)

// Region is the geographic region a realm belongs to.
type Region string

const (
	RegionUS Region = "US"
	RegionEU Region = "EU"
	RegionKR Region = "KR"
	RegionTW Region = "TW"
	RegionCN Region = "CN"
)

// Regions lists every supported region in a stable order.
var Regions = []Region{RegionUS, RegionEU, RegionKR, RegionTW, RegionCN}

// Valid reports whether r is one of the supported regions.
func (r Region) Valid() bool {
	for _, v := range Regions {
		if r == v {
			return true
		}
	}
	return false
}

// ParseRegion converts s (case-insensitive, surrounding spaces ignored)
// into a Region.
func ParseRegion(s string) (Region, error) {
	r := Region(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("unknown region %q", s)
	}
	return r, nil
}

// Realm is a single game server. Realms sharing one auction house form a
// connected-realm cluster; the connections are stored in realm_connections
// and loaded explicitly by the repository.
//
// Fields:
//   - ID: auto-increment primary key.
//   - Name / Slug: unique per region.
//   - Region: one of Regions.
//   - ConnectedRealms: direct neighbours in the cluster (not a column).
type Realm struct {
	ID     int64  `json:"id"     gorm:"primaryKey;autoIncrement"`
	Name   string `json:"name"   gorm:"type:varchar(100);not null;uniqueIndex:ux_realm_region_name,priority:2"`
	Slug   string `json:"slug"   gorm:"type:varchar(100);not null;uniqueIndex:ux_realm_region_slug,priority:2"`
	Region Region `json:"region" gorm:"type:varchar(2);not null;uniqueIndex:ux_realm_region_name,priority:1;uniqueIndex:ux_realm_region_slug,priority:1"`

	ConnectedRealms []*Realm `json:"connected_realms,omitempty" gorm:"-"`
}

// TableName returns the database table name for Realm.
func (Realm) TableName() string { return "realms" }

// ConnectedRealmIDs returns the ids of the realm's connected realms, skipping
// nil entries and the realm itself.
func (r *Realm) ConnectedRealmIDs() []int64 {
	ids := make([]int64, 0, len(r.ConnectedRealms))
	seen := make(map[int64]struct{}, len(r.ConnectedRealms))
	for _, c := range r.ConnectedRealms {
		if c == nil || c.ID == r.ID {
			continue
		}
		if _, dup := seen[c.ID]; dup {
			continue
		}
		seen[c.ID] = struct{}{}
		ids = append(ids, c.ID)
	}
	return ids
}

// RealmConnection is one edge of a connected-realm cluster. An edge is
// stored once, owned by RealmID; readers treat it as symmetric.
type RealmConnection struct {
	RealmID          int64 `gorm:"primaryKey;autoIncrement:false"`
	ConnectedRealmID int64 `gorm:"primaryKey;autoIncrement:false;index"`

	Realm          Realm `gorm:"foreignKey:RealmID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	ConnectedRealm Realm `gorm:"foreignKey:ConnectedRealmID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for RealmConnection.
func (RealmConnection) TableName() string { return "realm_connections" }

// FolderType classifies a storage location of a realm's auction snapshots.
type FolderType string

const (
	FolderTypeInputTmp FolderType = "FI_TMP"
	FolderTypeInput    FolderType = "FI"
	FolderTypeOutput   FolderType = "FO"
)

// ParseFolderType converts s (case-insensitive) into a FolderType.
func ParseFolderType(s string) (FolderType, error) {
	switch ft := FolderType(strings.ToUpper(strings.TrimSpace(s))); ft {
	case FolderTypeInputTmp, FolderTypeInput, FolderTypeOutput:
		return ft, nil
	}
	return "", fmt.Errorf("unknown folder type %q", s)
}

// RealmFolder is identified by (RealmID, FolderType) and is immutable once
// created.
type RealmFolder struct {
	RealmID    int64      `json:"realm_id"    gorm:"primaryKey;autoIncrement:false"`
	FolderType FolderType `json:"folder_type" gorm:"primaryKey;type:varchar(8)"`
	Path       string     `json:"path"        gorm:"type:varchar(512);not null"`

	Realm Realm `json:"-" gorm:"foreignKey:RealmID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for RealmFolder.
func (RealmFolder) TableName() string { return "realm_folders" }
