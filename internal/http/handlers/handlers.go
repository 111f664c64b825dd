// Package handlers exposes the auction data gateway over HTTP.
//
// Handlers are transport-thin: they parse and validate input, call the
// Gateway, and translate results into HTTP responses.
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/wow-auctions/internal/domain"
	"github.com/tbourn/wow-auctions/internal/utils"
)

// Gateway is the persistence contract consumed by the handlers. It is
// implemented by *services.Gateway.
//
// Implementations must be safe for concurrent use and honor ctx.
type Gateway interface {
	CreateRealm(ctx context.Context, r *domain.Realm) error
	UpdateRealm(ctx context.Context, r *domain.Realm) (*domain.Realm, error)
	ListRealms(ctx context.Context) ([]domain.Realm, error)
	FindRealmByID(ctx context.Context, id int64) (*domain.Realm, bool, error)
	FindRealmByNameOrSlug(ctx context.Context, name string, region domain.Region) (*domain.Realm, bool, error)
	FindRealmsByRegion(ctx context.Context, region domain.Region) ([]domain.Realm, error)
	CheckIfRealmExists(ctx context.Context, r domain.Realm) (bool, error)

	CreateRealmFolder(ctx context.Context, f *domain.RealmFolder) error
	FindRealmFolderByID(ctx context.Context, realmID int64, folderType domain.FolderType) (*domain.RealmFolder, bool, error)

	CheckIfAuctionFileExists(ctx context.Context, f domain.AuctionFile) (bool, error)
	CreateAuctionFile(ctx context.Context, f *domain.AuctionFile) error
	UpdateAuctionFile(ctx context.Context, f *domain.AuctionFile) (*domain.AuctionFile, error)
	FindAuctionFilesByRealmToProcess(ctx context.Context, realmID int64) ([]domain.AuctionFile, error)
	FindAuctionFileByID(ctx context.Context, id int64) (*domain.AuctionFile, bool, error)

	FindAuctionsByRealm(ctx context.Context, realmID int64, start, maxResults int) ([]domain.Auction, error)
	StoreAuctions(ctx context.Context, fileID int64, auctions []domain.Auction) (int, error)
	DeleteAuctionDataByFile(ctx context.Context, fileID int64) (int64, error)

	FindAuctionItemStatisticsByRealmAndItem(ctx context.Context, realmID, itemID int64) ([]domain.AuctionItemStatistics, error)
}

// Handlers groups the HTTP endpoints of the gateway.
type Handlers struct {
	gw Gateway
}

// New returns Handlers bound to gw.
func New(gw Gateway) *Handlers {
	return &Handlers{gw: gw}
}

// ExistsResponse answers the existence checks.
type ExistsResponse struct {
	Exists bool `json:"exists" example:"true"`
}

// pathID parses the named path parameter as a positive id. On failure it
// writes a 400 and returns false.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := utils.ParseID(c.Param(name))
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, name+" must be a positive integer")
		return 0, false
	}
	return id, true
}

// queryID parses a required positive id from the query string.
func queryID(c *gin.Context, name string) (int64, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, name+" is required")
		return 0, false
	}
	id, err := utils.ParseID(raw)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, name+" must be a positive integer")
		return 0, false
	}
	return id, true
}

// queryRegion parses the required region query parameter.
func queryRegion(c *gin.Context) (domain.Region, bool) {
	region, err := domain.ParseRegion(c.Query("region"))
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return "", false
	}
	return region, true
}
