// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Realm model
// and its connected-realm edges.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only
// persistence and query composition.
//
// Error semantics:
//   - When a realm is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound).
//   - Unique and foreign-key failures are wrapped with ErrConstraintViolation.
//   - Other DB errors are propagated unchanged.
//
// Connections are stored as one row per edge in realm_connections. Readers
// treat an edge as symmetric: realm A is connected to B when either (A, B)
// or (B, A) is present.
package repo

import (
	"context"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/wow-auctions/internal/domain"
)

// CreateRealm inserts r and sets r.ID. Connections are not written; use
// ReplaceConnectedRealms.
func CreateRealm(ctx context.Context, db *gorm.DB, r *domain.Realm) error {
	return classify(db.WithContext(ctx).Omit(clause.Associations).Create(r).Error)
}

// SaveRealm overwrites name, slug and region of the realm identified by
// r.ID. It returns ErrNotFound when no such realm exists.
func SaveRealm(ctx context.Context, db *gorm.DB, r *domain.Realm) error {
	if _, err := GetRealm(ctx, db, r.ID); err != nil {
		return err
	}
	err := db.WithContext(ctx).
		Model(&domain.Realm{ID: r.ID}).
		Updates(map[string]any{
			"name":   r.Name,
			"slug":   r.Slug,
			"region": string(r.Region),
		}).Error
	return classify(err)
}

// ReplaceConnectedRealms makes ids the complete set of realms connected to
// realmID. Edges in both directions are removed first. Self references and
// duplicates in ids are ignored; an unknown id yields ErrConstraintViolation.
func ReplaceConnectedRealms(ctx context.Context, db *gorm.DB, realmID int64, ids []int64) error {
	db = db.WithContext(ctx)

	if err := db.
		Where("realm_id = ? OR connected_realm_id = ?", realmID, realmID).
		Delete(&domain.RealmConnection{}).Error; err != nil {
		return err
	}

	ids = uniqueIDs(ids, realmID)
	if len(ids) == 0 {
		return nil
	}

	var known int64
	if err := db.Model(&domain.Realm{}).Where("id IN ?", ids).Count(&known).Error; err != nil {
		return err
	}
	if known != int64(len(ids)) {
		return ErrConstraintViolation
	}

	edges := make([]domain.RealmConnection, 0, len(ids))
	for _, id := range ids {
		edges = append(edges, domain.RealmConnection{RealmID: realmID, ConnectedRealmID: id})
	}
	return classify(db.Omit(clause.Associations).Create(&edges).Error)
}

// ListRealms returns every realm ordered by name, then id.
func ListRealms(ctx context.Context, db *gorm.DB) ([]domain.Realm, error) {
	var out []domain.Realm
	err := db.WithContext(ctx).Order("name, id").Find(&out).Error
	return out, err
}

// GetRealm fetches a realm by id without its connections.
func GetRealm(ctx context.Context, db *gorm.DB, id int64) (*domain.Realm, error) {
	var r domain.Realm
	if err := db.WithContext(ctx).First(&r, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// GetRealmWithConnections fetches a realm by id and loads its direct
// connected realms, ordered by name, then id.
func GetRealmWithConnections(ctx context.Context, db *gorm.DB, id int64) (*domain.Realm, error) {
	r, err := GetRealm(ctx, db, id)
	if err != nil {
		return nil, err
	}
	ids, err := ConnectedRealmIDs(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return r, nil
	}

	var connected []domain.Realm
	if err := db.WithContext(ctx).Where("id IN ?", ids).Order("name, id").Find(&connected).Error; err != nil {
		return nil, err
	}
	r.ConnectedRealms = make([]*domain.Realm, len(connected))
	for i := range connected {
		r.ConnectedRealms[i] = &connected[i]
	}
	return r, nil
}

// FindRealmByNameOrSlugInRegion returns the realm of region whose name or
// slug equals nameOrSlug. The lowest id wins if both a name and a different
// realm's slug match. Returns ErrNotFound when nothing matches.
func FindRealmByNameOrSlugInRegion(ctx context.Context, db *gorm.DB, nameOrSlug string, region domain.Region) (*domain.Realm, error) {
	var r domain.Realm
	err := db.WithContext(ctx).
		Where("(name = ? OR slug = ?) AND region = ?", nameOrSlug, nameOrSlug, string(region)).
		Order("id").
		First(&r).Error
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// FindRealmsByRegion returns the realms of region ordered by name, then id.
func FindRealmsByRegion(ctx context.Context, db *gorm.DB, region domain.Region) ([]domain.Realm, error) {
	var out []domain.Realm
	err := db.WithContext(ctx).
		Where("region = ?", string(region)).
		Order("name, id").
		Find(&out).Error
	return out, err
}

// CountRealmsByNameAndRegion counts realms with exactly this name in region.
func CountRealmsByNameAndRegion(ctx context.Context, db *gorm.DB, name string, region domain.Region) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Realm{}).
		Where("name = ? AND region = ?", name, string(region)).
		Count(&total).Error
	return total, err
}

// ConnectedRealmIDs returns the ids directly connected to realmID in either
// direction, ascending, without realmID itself.
func ConnectedRealmIDs(ctx context.Context, db *gorm.DB, realmID int64) ([]int64, error) {
	db = db.WithContext(ctx)

	var outgoing, incoming []int64
	if err := db.Model(&domain.RealmConnection{}).
		Where("realm_id = ?", realmID).
		Pluck("connected_realm_id", &outgoing).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.RealmConnection{}).
		Where("connected_realm_id = ?", realmID).
		Pluck("realm_id", &incoming).Error; err != nil {
		return nil, err
	}

	ids := uniqueIDs(append(outgoing, incoming...), realmID)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// uniqueIDs drops duplicates and skip, keeping first-seen order.
func uniqueIDs(ids []int64, skip int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id == skip {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
