// Realm HTTP handlers.
//
// This file exposes REST endpoints for realms and realm folders:
//   - GET    /realms                               (list, optional ?region=)
//   - POST   /realms                               (create)
//   - GET    /realms/lookup?name=&region=          (by name or slug)
//   - GET    /realms/exists?name=&region=          (existence check)
//   - GET    /realms/{id}                          (with connected realms)
//   - PUT    /realms/{id}                          (update)
//   - POST   /realms/{id}/folders                  (create folder)
//   - GET    /realms/{id}/folders/{type}           (folder lookup)
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/wow-auctions/internal/domain"
)

// RealmRequest is the JSON payload for creating or updating a realm.
type RealmRequest struct {
	// Name is unique per region.
	Name string `json:"name" binding:"required,max=100" example:"Aggra (Português)"`
	// Slug is derived from the name when empty.
	Slug string `json:"slug" binding:"max=100" example:"aggra-portugues"`
	// Region is one of US, EU, KR, TW, CN (case-insensitive).
	Region string `json:"region" binding:"required" example:"EU"`
	// ConnectedRealms lists the ids of the realms sharing this realm's
	// auction house. On update, omitting the field keeps the current
	// connections and an empty list clears them.
	ConnectedRealms *[]int64 `json:"connected_realms" example:"2,3"`
}

// realm converts the payload into a domain.Realm with the given id.
func (req RealmRequest) realm(id int64) *domain.Realm {
	r := &domain.Realm{
		ID:     id,
		Name:   req.Name,
		Slug:   req.Slug,
		Region: domain.Region(req.Region),
	}
	if req.ConnectedRealms != nil {
		r.ConnectedRealms = make([]*domain.Realm, 0, len(*req.ConnectedRealms))
		for _, cid := range *req.ConnectedRealms {
			r.ConnectedRealms = append(r.ConnectedRealms, &domain.Realm{ID: cid})
		}
	}
	return r
}

// RealmFolderRequest is the JSON payload for creating a realm folder.
type RealmFolderRequest struct {
	// FolderType is one of FI_TMP, FI, FO.
	FolderType string `json:"folder_type" binding:"required" example:"FI"`
	// Path is the storage location of the folder.
	Path string `json:"path" binding:"required,max=512" example:"/data/eu/aggra/in"`
}

// ListRealms godoc
// @ID          listRealms
// @Summary     List realms
// @Description Returns every realm ordered by name, or only the realms of one region.
// @Tags        Realms
// @Produce     json
// @Param       region  query  string  false  "Region filter"  Enums(US, EU, KR, TW, CN)
// @Success     200  {array}   domain.Realm
// @Failure     400  {object}  handlers.ErrorResponse  "Unknown region"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /realms [get]
func (h *Handlers) ListRealms(c *gin.Context) {
	ctx := c.Request.Context()

	if strings.TrimSpace(c.Query("region")) == "" {
		realms, err := h.gw.ListRealms(ctx)
		if err != nil {
			failErr(c, err)
			return
		}
		ok(c, http.StatusOK, realms)
		return
	}

	region, valid := queryRegion(c)
	if !valid {
		return
	}
	realms, err := h.gw.FindRealmsByRegion(ctx, region)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, realms)
}

// CreateRealm godoc
// @ID          createRealm
// @Summary     Create a realm
// @Description Persists a realm and its connections. The slug is derived from the name when omitted.
// @Tags        Realms
// @Accept      json
// @Produce     json
// @Param       body  body      handlers.RealmRequest  true  "Realm"
// @Success     201   {object}  domain.Realm
// @Failure     400   {object}  handlers.ErrorResponse  "Bad request"
// @Failure     409   {object}  handlers.ErrorResponse  "Duplicate name/slug or unknown connected realm"
// @Failure     500   {object}  handlers.ErrorResponse  "Internal error"
// @Router      /realms [post]
func (h *Handlers) CreateRealm(c *gin.Context) {
	var req RealmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	r := req.realm(0)
	if err := h.gw.CreateRealm(c.Request.Context(), r); err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, r)
}

// LookupRealm godoc
// @ID          lookupRealm
// @Summary     Find a realm by name or slug
// @Tags        Realms
// @Produce     json
// @Param       name    query  string  true  "Realm name or slug"  example(aggra-portugues)
// @Param       region  query  string  true  "Region"              Enums(US, EU, KR, TW, CN)
// @Success     200  {object}  domain.Realm
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Realm not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /realms/lookup [get]
func (h *Handlers) LookupRealm(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name is required")
		return
	}
	region, valid := queryRegion(c)
	if !valid {
		return
	}

	r, found, err := h.gw.FindRealmByNameOrSlug(c.Request.Context(), name, region)
	if err != nil {
		failErr(c, err)
		return
	}
	if !found {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "realm not found")
		return
	}
	ok(c, http.StatusOK, r)
}

// RealmExists godoc
// @ID          realmExists
// @Summary     Check whether a realm name is taken in a region
// @Tags        Realms
// @Produce     json
// @Param       name    query  string  true  "Realm name"  example(Aggra (Português))
// @Param       region  query  string  true  "Region"      Enums(US, EU, KR, TW, CN)
// @Success     200  {object}  handlers.ExistsResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /realms/exists [get]
func (h *Handlers) RealmExists(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name is required")
		return
	}
	region, valid := queryRegion(c)
	if !valid {
		return
	}

	exists, err := h.gw.CheckIfRealmExists(c.Request.Context(), domain.Realm{Name: name, Region: region})
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, ExistsResponse{Exists: exists})
}

// GetRealm godoc
// @ID          getRealm
// @Summary     Get a realm
// @Description Returns the realm with its directly connected realms.
// @Tags        Realms
// @Produce     json
// @Param       id   path      int  true  "Realm ID"  minimum(1)
// @Success     200  {object}  domain.Realm
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Realm not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /realms/{id} [get]
func (h *Handlers) GetRealm(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}

	r, found, err := h.gw.FindRealmByID(c.Request.Context(), id)
	if err != nil {
		failErr(c, err)
		return
	}
	if !found {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "realm not found")
		return
	}
	ok(c, http.StatusOK, r)
}

// UpdateRealm godoc
// @ID          updateRealm
// @Summary     Update a realm
// @Description Overwrites name, slug and region. connected_realms replaces the connections when present.
// @Tags        Realms
// @Accept      json
// @Produce     json
// @Param       id    path      int                    true  "Realm ID"  minimum(1)
// @Param       body  body      handlers.RealmRequest  true  "Realm"
// @Success     200   {object}  domain.Realm
// @Failure     400   {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404   {object}  handlers.ErrorResponse  "Realm not found"
// @Failure     409   {object}  handlers.ErrorResponse  "Constraint violation"
// @Failure     500   {object}  handlers.ErrorResponse  "Internal error"
// @Router      /realms/{id} [put]
func (h *Handlers) UpdateRealm(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	var req RealmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	out, err := h.gw.UpdateRealm(c.Request.Context(), req.realm(id))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, out)
}

// CreateRealmFolder godoc
// @ID          createRealmFolder
// @Summary     Create a realm folder
// @Tags        Realms
// @Accept      json
// @Produce     json
// @Param       id    path      int                          true  "Realm ID"  minimum(1)
// @Param       body  body      handlers.RealmFolderRequest  true  "Folder"
// @Success     201   {object}  domain.RealmFolder
// @Failure     400   {object}  handlers.ErrorResponse  "Bad request"
// @Failure     409   {object}  handlers.ErrorResponse  "Folder exists or realm unknown"
// @Failure     500   {object}  handlers.ErrorResponse  "Internal error"
// @Router      /realms/{id}/folders [post]
func (h *Handlers) CreateRealmFolder(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	var req RealmFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "folder_type and path are required")
		return
	}

	f := &domain.RealmFolder{
		RealmID:    id,
		FolderType: domain.FolderType(req.FolderType),
		Path:       req.Path,
	}
	if err := h.gw.CreateRealmFolder(c.Request.Context(), f); err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, f)
}

// GetRealmFolder godoc
// @ID          getRealmFolder
// @Summary     Get a realm folder
// @Tags        Realms
// @Produce     json
// @Param       id    path      int     true  "Realm ID"     minimum(1)
// @Param       type  path      string  true  "Folder type"  Enums(FI_TMP, FI, FO)
// @Success     200   {object}  domain.RealmFolder
// @Failure     400   {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404   {object}  handlers.ErrorResponse  "Folder not found"
// @Failure     500   {object}  handlers.ErrorResponse  "Internal error"
// @Router      /realms/{id}/folders/{type} [get]
func (h *Handlers) GetRealmFolder(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	ft, err := domain.ParseFolderType(c.Param("type"))
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}

	f, found, err := h.gw.FindRealmFolderByID(c.Request.Context(), id, ft)
	if err != nil {
		failErr(c, err)
		return
	}
	if !found {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "realm folder not found")
		return
	}
	ok(c, http.StatusOK, f)
}
