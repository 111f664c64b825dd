// Package services – Gateway
//
// This file implements Gateway, the single access point to the relational
// store for realms, realm folders, auction files, auctions and per-item
// auction statistics. Every operation maps to one repository query or one
// mutation; mutations run inside a scoped transaction (inTx) that commits on
// success and rolls back on any error.
//
// Absent point lookups return found=false rather than an error. Repository
// errors are translated into the sentinels of errors.go so handlers can map
// them to HTTP results consistently.
//
// Observability: each public method opens an OpenTelemetry span and records
// gateway_operations_total / gateway_operation_duration_seconds. Mutations
// are logged through the request-scoped zerolog logger carried by ctx.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/tbourn/wow-auctions/internal/domain"
	"github.com/tbourn/wow-auctions/internal/repo"

	// OpenTelemetry
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Gateway mediates every read and write of auction data.
// It is stateless apart from the DB handle and safe for concurrent use.
type Gateway struct {
	DB *gorm.DB
}

// NewGateway returns a Gateway over db.
func NewGateway(db *gorm.DB) *Gateway {
	return &Gateway{DB: db}
}

// inTx runs fn in a transaction bound to ctx: commit when fn returns nil,
// rollback and return fn's error otherwise.
func (g *Gateway) inTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return g.DB.WithContext(ctx).Transaction(fn)
}

// begin opens the span of op and returns a completion func that records the
// outcome on the span and in the operation metrics.
func begin(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := otel.Tracer("services/Gateway").Start(ctx, op, trace.WithAttributes(attrs...))
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, outcome(err))
		}
		span.End()
		observe(op, start, err)
	}
}

// ---------- Realms ----------

// CreateRealm persists a new realm and its connections and sets r.ID.
// An empty slug is derived from the name.
func (g *Gateway) CreateRealm(ctx context.Context, r *domain.Realm) (err error) {
	if r == nil {
		return invalid("realm is required")
	}
	ctx, done := begin(ctx, "createRealm",
		attribute.String("realm.name", r.Name),
		attribute.String("realm.region", string(r.Region)),
	)
	defer func() { done(err) }()

	if err = prepareRealm(r); err != nil {
		return err
	}

	err = g.inTx(ctx, func(tx *gorm.DB) error {
		if err := repo.CreateRealm(ctx, tx, r); err != nil {
			return err
		}
		if ids := r.ConnectedRealmIDs(); len(ids) > 0 {
			return repo.ReplaceConnectedRealms(ctx, tx, r.ID, ids)
		}
		return nil
	})
	if err != nil {
		r.ID = 0
		return mapRealmErr(err)
	}

	zerolog.Ctx(ctx).Info().
		Int64("realm_id", r.ID).
		Str("realm", r.Name).
		Str("region", string(r.Region)).
		Msg("realm created")
	return nil
}

// UpdateRealm overwrites the realm identified by r.ID and returns the stored
// state including connections. A nil ConnectedRealms leaves the existing
// connections untouched; a non-nil (possibly empty) one replaces them.
func (g *Gateway) UpdateRealm(ctx context.Context, r *domain.Realm) (out *domain.Realm, err error) {
	if r == nil {
		return nil, invalid("realm is required")
	}
	ctx, done := begin(ctx, "updateRealm", attribute.Int64("realm.id", r.ID))
	defer func() { done(err) }()

	if err = prepareRealm(r); err != nil {
		return nil, err
	}

	err = g.inTx(ctx, func(tx *gorm.DB) error {
		if err := repo.SaveRealm(ctx, tx, r); err != nil {
			return err
		}
		if r.ConnectedRealms != nil {
			if err := repo.ReplaceConnectedRealms(ctx, tx, r.ID, r.ConnectedRealmIDs()); err != nil {
				return err
			}
		}
		var rerr error
		out, rerr = repo.GetRealmWithConnections(ctx, tx, r.ID)
		return rerr
	})
	if err != nil {
		return nil, mapRealmErr(err)
	}

	zerolog.Ctx(ctx).Info().Int64("realm_id", out.ID).Str("realm", out.Name).Msg("realm updated")
	return out, nil
}

// ListRealms returns every realm ordered by name.
func (g *Gateway) ListRealms(ctx context.Context) (out []domain.Realm, err error) {
	ctx, done := begin(ctx, "listRealms")
	defer func() { done(err) }()

	out, err = repo.ListRealms(ctx, g.DB)
	if err != nil {
		return nil, fmt.Errorf("list realms: %w", err)
	}
	return nonNil(out), nil
}

// FindRealmByID returns the realm with its direct connected realms.
func (g *Gateway) FindRealmByID(ctx context.Context, id int64) (r *domain.Realm, found bool, err error) {
	ctx, done := begin(ctx, "findRealmById", attribute.Int64("realm.id", id))
	defer func() { done(err) }()

	r, err = repo.GetRealmWithConnections(ctx, g.DB, id)
	return optional(r, err, "find realm")
}

// FindRealmByNameOrSlug returns the realm of region whose name or slug
// equals name. No match is reported as found=false.
func (g *Gateway) FindRealmByNameOrSlug(ctx context.Context, name string, region domain.Region) (r *domain.Realm, found bool, err error) {
	ctx, done := begin(ctx, "findRealmByNameOrSlug",
		attribute.String("realm.name", name),
		attribute.String("realm.region", string(region)),
	)
	defer func() { done(err) }()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, nil
	}
	if region, err = parseRegion(region); err != nil {
		return nil, false, err
	}
	r, err = repo.FindRealmByNameOrSlugInRegion(ctx, g.DB, name, region)
	return optional(r, err, "find realm by name or slug")
}

// FindRealmsByRegion returns the realms of region ordered by name.
func (g *Gateway) FindRealmsByRegion(ctx context.Context, region domain.Region) (out []domain.Realm, err error) {
	ctx, done := begin(ctx, "findRealmsByRegion", attribute.String("realm.region", string(region)))
	defer func() { done(err) }()

	if region, err = parseRegion(region); err != nil {
		return nil, err
	}
	out, err = repo.FindRealmsByRegion(ctx, g.DB, region)
	if err != nil {
		return nil, fmt.Errorf("find realms by region: %w", err)
	}
	return nonNil(out), nil
}

// CheckIfRealmExists reports whether a realm with r's name exists in r's
// region. Other fields of r are ignored.
func (g *Gateway) CheckIfRealmExists(ctx context.Context, r domain.Realm) (exists bool, err error) {
	ctx, done := begin(ctx, "checkIfRealmExists",
		attribute.String("realm.name", r.Name),
		attribute.String("realm.region", string(r.Region)),
	)
	defer func() { done(err) }()

	name := strings.TrimSpace(r.Name)
	if name == "" {
		return false, nil
	}
	region, err := parseRegion(r.Region)
	if err != nil {
		return false, err
	}
	n, err := repo.CountRealmsByNameAndRegion(ctx, g.DB, name, region)
	if err != nil {
		return false, fmt.Errorf("check realm exists: %w", err)
	}
	return n > 0, nil
}

// ---------- Realm folders ----------

// CreateRealmFolder persists f. A folder of the same type for the same realm,
// or an unknown realm, yields ErrConstraintViolation.
func (g *Gateway) CreateRealmFolder(ctx context.Context, f *domain.RealmFolder) (err error) {
	if f == nil {
		return invalid("realm folder is required")
	}
	ctx, done := begin(ctx, "createRealmFolder",
		attribute.Int64("realm.id", f.RealmID),
		attribute.String("folder.type", string(f.FolderType)),
	)
	defer func() { done(err) }()

	ft, perr := domain.ParseFolderType(string(f.FolderType))
	if perr != nil {
		return invalid("%v", perr)
	}
	f.FolderType = ft
	f.Path = strings.TrimSpace(f.Path)
	if f.Path == "" {
		return invalid("folder path is required")
	}

	err = g.inTx(ctx, func(tx *gorm.DB) error {
		return repo.CreateRealmFolder(ctx, tx, f)
	})
	if err != nil {
		return mapRealmErr(err)
	}

	zerolog.Ctx(ctx).Info().
		Int64("realm_id", f.RealmID).
		Str("folder_type", string(f.FolderType)).
		Str("path", f.Path).
		Msg("realm folder created")
	return nil
}

// FindRealmFolderByID returns the folder keyed by (realmID, folderType).
func (g *Gateway) FindRealmFolderByID(ctx context.Context, realmID int64, folderType domain.FolderType) (f *domain.RealmFolder, found bool, err error) {
	ctx, done := begin(ctx, "findRealmFolderById",
		attribute.Int64("realm.id", realmID),
		attribute.String("folder.type", string(folderType)),
	)
	defer func() { done(err) }()

	f, err = repo.GetRealmFolder(ctx, g.DB, realmID, folderType)
	return optional(f, err, "find realm folder")
}

// ---------- Auction files ----------

// CheckIfAuctionFileExists reports whether a file with f's (URL,
// LastModified) natural key is stored.
func (g *Gateway) CheckIfAuctionFileExists(ctx context.Context, f domain.AuctionFile) (exists bool, err error) {
	ctx, done := begin(ctx, "checkIfAuctionFileExists", attribute.String("file.url", f.URL))
	defer func() { done(err) }()

	url, lastModified := fileKey(f)
	if url == "" {
		return false, nil
	}
	n, err := repo.CountAuctionFilesByURLAndLastModified(ctx, g.DB, url, lastModified)
	if err != nil {
		return false, fmt.Errorf("check auction file exists: %w", err)
	}
	return n > 0, nil
}

// CreateAuctionFile persists f and sets f.ID. An empty status defaults to
// PENDING.
func (g *Gateway) CreateAuctionFile(ctx context.Context, f *domain.AuctionFile) (err error) {
	if f == nil {
		return invalid("auction file is required")
	}
	ctx, done := begin(ctx, "createAuctionFile",
		attribute.Int64("realm.id", f.RealmID),
		attribute.String("file.url", f.URL),
	)
	defer func() { done(err) }()

	if err = prepareAuctionFile(f); err != nil {
		return err
	}

	err = g.inTx(ctx, func(tx *gorm.DB) error {
		return repo.CreateAuctionFile(ctx, tx, f)
	})
	if err != nil {
		f.ID = 0
		return mapFileErr(err)
	}

	zerolog.Ctx(ctx).Info().
		Int64("file_id", f.ID).
		Int64("realm_id", f.RealmID).
		Str("status", string(f.FileStatus)).
		Msg("auction file created")
	return nil
}

// UpdateAuctionFile overwrites the file identified by f.ID and returns the
// stored state. Status transitions are not restricted.
func (g *Gateway) UpdateAuctionFile(ctx context.Context, f *domain.AuctionFile) (out *domain.AuctionFile, err error) {
	if f == nil {
		return nil, invalid("auction file is required")
	}
	ctx, done := begin(ctx, "updateAuctionFile", attribute.Int64("file.id", f.ID))
	defer func() { done(err) }()

	if err = prepareAuctionFile(f); err != nil {
		return nil, err
	}

	err = g.inTx(ctx, func(tx *gorm.DB) error {
		if err := repo.SaveAuctionFile(ctx, tx, f); err != nil {
			return err
		}
		var rerr error
		out, rerr = repo.GetAuctionFile(ctx, tx, f.ID)
		return rerr
	})
	if err != nil {
		return nil, mapFileErr(err)
	}

	zerolog.Ctx(ctx).Info().
		Int64("file_id", out.ID).
		Str("status", string(out.FileStatus)).
		Msg("auction file updated")
	return out, nil
}

// FindAuctionFilesByRealmToProcess returns realmID's LOADED files, oldest
// snapshot first.
func (g *Gateway) FindAuctionFilesByRealmToProcess(ctx context.Context, realmID int64) (out []domain.AuctionFile, err error) {
	ctx, done := begin(ctx, "findAuctionFilesByRealmToProcess", attribute.Int64("realm.id", realmID))
	defer func() { done(err) }()

	out, err = repo.FindAuctionFilesByRealmAndStatus(ctx, g.DB, realmID, domain.FileStatusLoaded)
	if err != nil {
		return nil, fmt.Errorf("find auction files to process: %w", err)
	}
	return nonNil(out), nil
}

// FindAuctionFileByID returns the auction file with id.
func (g *Gateway) FindAuctionFileByID(ctx context.Context, id int64) (f *domain.AuctionFile, found bool, err error) {
	ctx, done := begin(ctx, "findAuctionFileById", attribute.Int64("file.id", id))
	defer func() { done(err) }()

	f, err = repo.GetAuctionFile(ctx, g.DB, id)
	return optional(f, err, "find auction file")
}

// ---------- Auctions ----------

// FindAuctionsByRealm returns up to maxResults of realmID's auctions starting
// at offset start, in (auction file, auction id) order. A negative start is
// treated as 0; a non-positive maxResults yields an empty page.
func (g *Gateway) FindAuctionsByRealm(ctx context.Context, realmID int64, start, maxResults int) (out []domain.Auction, err error) {
	ctx, done := begin(ctx, "findAuctionsByRealm",
		attribute.Int64("realm.id", realmID),
		attribute.Int("page.start", start),
		attribute.Int("page.max", maxResults),
	)
	defer func() { done(err) }()

	if start < 0 {
		start = 0
	}
	if maxResults <= 0 {
		return []domain.Auction{}, nil
	}

	out, err = repo.FindAuctionsByRealm(ctx, g.DB, realmID, start, maxResults)
	if err != nil {
		return nil, fmt.Errorf("find auctions by realm: %w", err)
	}
	return nonNil(out), nil
}

// StoreAuctions attaches auctions to the file fileID (and the file's realm)
// and inserts them in one transaction. It returns the number stored.
func (g *Gateway) StoreAuctions(ctx context.Context, fileID int64, auctions []domain.Auction) (n int, err error) {
	ctx, done := begin(ctx, "storeAuctions",
		attribute.Int64("file.id", fileID),
		attribute.Int("auctions", len(auctions)),
	)
	defer func() { done(err) }()

	err = g.inTx(ctx, func(tx *gorm.DB) error {
		f, err := repo.GetAuctionFile(ctx, tx, fileID)
		if err != nil {
			return err
		}
		for i := range auctions {
			auctions[i].AuctionFileID = f.ID
			auctions[i].RealmID = f.RealmID
			if auctions[i].Quantity <= 0 {
				auctions[i].Quantity = 1
			}
		}
		return repo.CreateAuctions(ctx, tx, auctions, repo.DefaultAuctionBatchSize)
	})
	if err != nil {
		return 0, mapFileErr(err)
	}

	zerolog.Ctx(ctx).Info().Int64("file_id", fileID).Int("count", len(auctions)).Msg("auctions stored")
	return len(auctions), nil
}

// DeleteAuctionDataByFile removes every auction parsed from fileID and
// returns the number removed (0 when none match).
func (g *Gateway) DeleteAuctionDataByFile(ctx context.Context, fileID int64) (n int64, err error) {
	ctx, done := begin(ctx, "deleteAuctionDataByFile", attribute.Int64("file.id", fileID))
	defer func() { done(err) }()

	err = g.inTx(ctx, func(tx *gorm.DB) error {
		var derr error
		n, derr = repo.DeleteAuctionsByFile(ctx, tx, fileID)
		return derr
	})
	if err != nil {
		return 0, fmt.Errorf("delete auctions by file: %w", err)
	}

	zerolog.Ctx(ctx).Info().Int64("file_id", fileID).Int64("deleted", n).Msg("auction data deleted")
	return n, nil
}

// ---------- Statistics ----------

// FindAuctionItemStatisticsByRealmAndItem returns itemID's statistics for
// realmID and its directly connected realms (one hop), ordered by
// timestamp. It returns ErrRealmNotFound when realmID does not exist.
func (g *Gateway) FindAuctionItemStatisticsByRealmAndItem(ctx context.Context, realmID, itemID int64) (out []domain.AuctionItemStatistics, err error) {
	ctx, done := begin(ctx, "findAuctionItemStatisticsByRealmAndItem",
		attribute.Int64("realm.id", realmID),
		attribute.Int64("item.id", itemID),
	)
	defer func() { done(err) }()

	if _, err = repo.GetRealm(ctx, g.DB, realmID); err != nil {
		return nil, mapRealmErr(err)
	}
	connected, err := repo.ConnectedRealmIDs(ctx, g.DB, realmID)
	if err != nil {
		return nil, fmt.Errorf("connected realms: %w", err)
	}

	ids := append([]int64{realmID}, connected...)
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int("realm.cluster_size", len(ids)))

	out, err = repo.FindStatisticsByRealmsAndItem(ctx, g.DB, ids, itemID)
	if err != nil {
		return nil, fmt.Errorf("find item statistics: %w", err)
	}
	return nonNil(out), nil
}

// ---------- helpers ----------

// prepareRealm trims and validates r and derives an empty slug.
func prepareRealm(r *domain.Realm) error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return invalid("realm name is required")
	}
	region, err := parseRegion(r.Region)
	if err != nil {
		return err
	}
	r.Region = region

	r.Slug = strings.TrimSpace(r.Slug)
	if r.Slug == "" {
		r.Slug = domain.Slugify(r.Name)
	}
	if r.Slug == "" {
		return invalid("cannot derive a slug from %q", r.Name)
	}
	return nil
}

// prepareAuctionFile validates f, defaults its status and normalizes the
// timestamp used by the natural key.
func prepareAuctionFile(f *domain.AuctionFile) error {
	f.URL, f.LastModified = fileKey(*f)
	if f.URL == "" {
		return invalid("auction file url is required")
	}
	if f.FileStatus == "" {
		f.FileStatus = domain.FileStatusPending
	}
	if !f.FileStatus.Valid() {
		return invalid("unknown file status %q", f.FileStatus)
	}
	return nil
}

// fileKey returns the (URL, LastModified) natural key of f in the form it is
// stored, so existence checks and inserts compare the same values.
func fileKey(f domain.AuctionFile) (string, time.Time) {
	return strings.TrimSpace(f.URL), domain.NormalizeTimestamp(f.LastModified)
}

// parseRegion canonicalizes region the way realms are stored.
func parseRegion(region domain.Region) (domain.Region, error) {
	r, err := domain.ParseRegion(string(region))
	if err != nil {
		return "", invalid("%v", err)
	}
	return r, nil
}

// optional turns a point lookup result into (value, found, err).
func optional[T any](v *T, err error, what string) (*T, bool, error) {
	if errors.Is(err, repo.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", what, err)
	}
	return v, true, nil
}

func mapRealmErr(err error) error {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return ErrRealmNotFound
	case errors.Is(err, ErrConstraintViolation):
		return err
	}
	return fmt.Errorf("realm: %w", err)
}

func mapFileErr(err error) error {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return ErrAuctionFileNotFound
	case errors.Is(err, ErrConstraintViolation):
		return err
	}
	return fmt.Errorf("auction file: %w", err)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
