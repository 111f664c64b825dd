// Auction HTTP handlers.
//
// This file exposes REST endpoints for auction files, auctions and item
// statistics:
//   - GET    /realms/{id}/auction-files/to-process
//   - GET    /realms/{id}/auctions?start=&max=
//   - POST   /auction-files
//   - GET    /auction-files/exists?url=&last_modified=
//   - GET    /auction-files/{id}
//   - PUT    /auction-files/{id}
//   - POST   /auction-files/{id}/auctions
//   - DELETE /auction-files/{id}/auctions
//   - GET    /items?realmId=&itemId=
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/wow-auctions/internal/domain"
	"github.com/tbourn/wow-auctions/internal/utils"
)

const (
	defaultAuctionPage = 100
	maxAuctionPage     = 1000
)

// Timestamp decodes either Unix epoch milliseconds (JSON number or string)
// or an RFC 3339 string.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	s := string(bytes.Trim(b, `"`))
	if s == "null" || s == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := utils.ParseTimestamp(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time)
}

// AuctionFileRequest is the JSON payload for creating or updating an
// auction file.
type AuctionFileRequest struct {
	// URL is the dump location; with LastModified it identifies the snapshot.
	URL string `json:"url" binding:"required,max=512" example:"https://eu.api.blizzard.com/data/wow/connected-realm/1305/auctions"`
	// LastModified accepts epoch milliseconds or RFC 3339.
	LastModified Timestamp `json:"last_modified" swaggertype:"integer" example:"1700000000000"`
	FileName     string    `json:"file_name" binding:"max=255" example:"auctions-1700000000000.json"`
	// FileStatus defaults to PENDING.
	FileStatus string `json:"file_status" example:"LOADED"`
	RealmID    int64  `json:"realm_id" binding:"required,min=1" example:"1"`
}

func (req AuctionFileRequest) file(id int64) *domain.AuctionFile {
	return &domain.AuctionFile{
		ID:           id,
		URL:          req.URL,
		LastModified: req.LastModified.Time,
		FileName:     req.FileName,
		FileStatus:   domain.FileStatus(strings.ToUpper(strings.TrimSpace(req.FileStatus))),
		RealmID:      req.RealmID,
	}
}

// StoreAuctionsRequest carries the auctions parsed from one auction file.
// auction_file_id and realm_id of the entries are ignored.
type StoreAuctionsRequest struct {
	Auctions []domain.Auction `json:"auctions" binding:"required"`
}

// StoreAuctionsResponse reports how many auctions were stored.
type StoreAuctionsResponse struct {
	Stored int `json:"stored" example:"1250"`
}

// DeleteAuctionsResponse reports how many auctions were removed.
type DeleteAuctionsResponse struct {
	Deleted int64 `json:"deleted" example:"1250"`
}

// ListAuctionFilesToProcess godoc
// @ID          listAuctionFilesToProcess
// @Summary     List the realm's auction files awaiting processing
// @Description Returns the LOADED files of the realm, oldest snapshot first.
// @Tags        AuctionFiles
// @Produce     json
// @Param       id   path     int  true  "Realm ID"  minimum(1)
// @Success     200  {array}  domain.AuctionFile
// @Failure     400  {object} handlers.ErrorResponse  "Bad request"
// @Failure     500  {object} handlers.ErrorResponse  "Internal error"
// @Router      /realms/{id}/auction-files/to-process [get]
func (h *Handlers) ListAuctionFilesToProcess(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	files, err := h.gw.FindAuctionFilesByRealmToProcess(c.Request.Context(), id)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, files)
}

// ListRealmAuctions godoc
// @ID          listRealmAuctions
// @Summary     Page through a realm's auctions
// @Tags        Auctions
// @Produce     json
// @Param       id     path   int  true   "Realm ID"                 minimum(1)
// @Param       start  query  int  false  "Zero-based offset"        minimum(0) default(0)
// @Param       max    query  int  false  "Maximum number of items"  minimum(1) maximum(1000) default(100)
// @Success     200  {array}  domain.Auction
// @Failure     400  {object} handlers.ErrorResponse  "Bad request"
// @Failure     500  {object} handlers.ErrorResponse  "Internal error"
// @Router      /realms/{id}/auctions [get]
func (h *Handlers) ListRealmAuctions(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	start, size := utils.ClampWindow(
		utils.AtoiDefault(c.Query("start"), 0),
		utils.AtoiDefault(c.Query("max"), defaultAuctionPage),
		defaultAuctionPage, maxAuctionPage,
	)

	auctions, err := h.gw.FindAuctionsByRealm(c.Request.Context(), id, start, size)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, auctions)
}

// CreateAuctionFile godoc
// @ID          createAuctionFile
// @Summary     Register an auction file
// @Description Persists an auction snapshot descriptor. A file with the same url and last_modified yields 409.
// @Tags        AuctionFiles
// @Accept      json
// @Produce     json
// @Param       body  body      handlers.AuctionFileRequest  true  "Auction file"
// @Success     201   {object}  domain.AuctionFile
// @Failure     400   {object}  handlers.ErrorResponse  "Bad request"
// @Failure     409   {object}  handlers.ErrorResponse  "Already registered or realm unknown"
// @Failure     500   {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auction-files [post]
func (h *Handlers) CreateAuctionFile(c *gin.Context) {
	var req AuctionFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if req.LastModified.IsZero() {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "last_modified is required")
		return
	}

	ctx := c.Request.Context()
	f := req.file(0)
	exists, err := h.gw.CheckIfAuctionFileExists(ctx, *f)
	if err != nil {
		failErr(c, err)
		return
	}
	if exists {
		fail(c, http.StatusConflict, ErrCodeConflict, "auction file already registered")
		return
	}

	if err := h.gw.CreateAuctionFile(ctx, f); err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, f)
}

// AuctionFileExists godoc
// @ID          auctionFileExists
// @Summary     Check whether an auction snapshot is registered
// @Tags        AuctionFiles
// @Produce     json
// @Param       url            query  string  true  "Dump URL"
// @Param       last_modified  query  string  true  "Epoch milliseconds or RFC 3339"  example(1700000000000)
// @Success     200  {object}  handlers.ExistsResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auction-files/exists [get]
func (h *Handlers) AuctionFileExists(c *gin.Context) {
	url := strings.TrimSpace(c.Query("url"))
	if url == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "url is required")
		return
	}
	lm, err := utils.ParseTimestamp(c.Query("last_modified"))
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "last_modified must be epoch milliseconds or RFC 3339")
		return
	}

	exists, err := h.gw.CheckIfAuctionFileExists(c.Request.Context(), domain.AuctionFile{URL: url, LastModified: lm})
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, ExistsResponse{Exists: exists})
}

// GetAuctionFile godoc
// @ID          getAuctionFile
// @Summary     Get an auction file
// @Tags        AuctionFiles
// @Produce     json
// @Param       id   path      int  true  "Auction file ID"  minimum(1)
// @Success     200  {object}  domain.AuctionFile
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Auction file not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auction-files/{id} [get]
func (h *Handlers) GetAuctionFile(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	f, found, err := h.gw.FindAuctionFileByID(c.Request.Context(), id)
	if err != nil {
		failErr(c, err)
		return
	}
	if !found {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "auction file not found")
		return
	}
	ok(c, http.StatusOK, f)
}

// UpdateAuctionFile godoc
// @ID          updateAuctionFile
// @Summary     Update an auction file
// @Description Overwrites the stored file, typically to advance file_status.
// @Tags        AuctionFiles
// @Accept      json
// @Produce     json
// @Param       id    path      int                          true  "Auction file ID"  minimum(1)
// @Param       body  body      handlers.AuctionFileRequest  true  "Auction file"
// @Success     200   {object}  domain.AuctionFile
// @Failure     400   {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404   {object}  handlers.ErrorResponse  "Auction file not found"
// @Failure     409   {object}  handlers.ErrorResponse  "Constraint violation"
// @Failure     500   {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auction-files/{id} [put]
func (h *Handlers) UpdateAuctionFile(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	var req AuctionFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if req.LastModified.IsZero() {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "last_modified is required")
		return
	}

	out, err := h.gw.UpdateAuctionFile(c.Request.Context(), req.file(id))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, out)
}

// StoreAuctions godoc
// @ID          storeAuctions
// @Summary     Store the auctions parsed from a file
// @Description Inserts the auctions in one transaction, attached to the file and its realm.
// @Tags        Auctions
// @Accept      json
// @Produce     json
// @Param       id    path      int                            true  "Auction file ID"  minimum(1)
// @Param       body  body      handlers.StoreAuctionsRequest  true  "Auctions"
// @Success     201   {object}  handlers.StoreAuctionsResponse
// @Failure     400   {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404   {object}  handlers.ErrorResponse  "Auction file not found"
// @Failure     409   {object}  handlers.ErrorResponse  "Duplicate auction id"
// @Failure     500   {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auction-files/{id}/auctions [post]
func (h *Handlers) StoreAuctions(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	var req StoreAuctionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "auctions array is required")
		return
	}
	for i, a := range req.Auctions {
		if a.ID <= 0 || a.ItemID <= 0 {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "auction "+strconv.Itoa(i)+" needs positive id and item_id")
			return
		}
	}

	n, err := h.gw.StoreAuctions(c.Request.Context(), id, req.Auctions)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, StoreAuctionsResponse{Stored: n})
}

// DeleteAuctionData godoc
// @ID          deleteAuctionData
// @Summary     Delete the auctions parsed from a file
// @Tags        Auctions
// @Produce     json
// @Param       id   path      int  true  "Auction file ID"  minimum(1)
// @Success     200  {object}  handlers.DeleteAuctionsResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auction-files/{id}/auctions [delete]
func (h *Handlers) DeleteAuctionData(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	n, err := h.gw.DeleteAuctionDataByFile(c.Request.Context(), id)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, DeleteAuctionsResponse{Deleted: n})
}

// ItemStatistics godoc
// @ID          itemStatistics
// @Summary     Item statistics for a realm and its connected realms
// @Description Returns the statistics of itemId computed for realmId and every directly connected realm, ordered by timestamp.
// @Tags        Statistics
// @Produce     json
// @Param       realmId  query  int  true  "Realm ID"  minimum(1)
// @Param       itemId   query  int  true  "Item ID"   minimum(1)
// @Success     200  {array}   domain.AuctionItemStatistics
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Realm not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /items [get]
func (h *Handlers) ItemStatistics(c *gin.Context) {
	realmID, valid := queryID(c, "realmId")
	if !valid {
		return
	}
	itemID, valid := queryID(c, "itemId")
	if !valid {
		return
	}

	stats, err := h.gw.FindAuctionItemStatisticsByRealmAndItem(c.Request.Context(), realmID, itemID)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, stats)
}
