package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/wow-auctions/internal/domain"
)

// fakeGateway implements Gateway; unset funcs return zero values.
type fakeGateway struct {
	createRealm          func(context.Context, *domain.Realm) error
	updateRealm          func(context.Context, *domain.Realm) (*domain.Realm, error)
	listRealms           func(context.Context) ([]domain.Realm, error)
	findRealmByID        func(context.Context, int64) (*domain.Realm, bool, error)
	findRealmByNameSlug  func(context.Context, string, domain.Region) (*domain.Realm, bool, error)
	findRealmsByRegion   func(context.Context, domain.Region) ([]domain.Realm, error)
	checkRealmExists     func(context.Context, domain.Realm) (bool, error)
	createRealmFolder    func(context.Context, *domain.RealmFolder) error
	findRealmFolder      func(context.Context, int64, domain.FolderType) (*domain.RealmFolder, bool, error)
	checkFileExists      func(context.Context, domain.AuctionFile) (bool, error)
	createAuctionFile    func(context.Context, *domain.AuctionFile) error
	updateAuctionFile    func(context.Context, *domain.AuctionFile) (*domain.AuctionFile, error)
	filesToProcess       func(context.Context, int64) ([]domain.AuctionFile, error)
	findAuctionFile      func(context.Context, int64) (*domain.AuctionFile, bool, error)
	findAuctionsByRealm  func(context.Context, int64, int, int) ([]domain.Auction, error)
	storeAuctions        func(context.Context, int64, []domain.Auction) (int, error)
	deleteAuctionsByFile func(context.Context, int64) (int64, error)
	itemStatistics       func(context.Context, int64, int64) ([]domain.AuctionItemStatistics, error)
}

func (f *fakeGateway) CreateRealm(ctx context.Context, r *domain.Realm) error {
	if f.createRealm != nil {
		return f.createRealm(ctx, r)
	}
	return nil
}

func (f *fakeGateway) UpdateRealm(ctx context.Context, r *domain.Realm) (*domain.Realm, error) {
	if f.updateRealm != nil {
		return f.updateRealm(ctx, r)
	}
	return r, nil
}

func (f *fakeGateway) ListRealms(ctx context.Context) ([]domain.Realm, error) {
	if f.listRealms != nil {
		return f.listRealms(ctx)
	}
	return []domain.Realm{}, nil
}

func (f *fakeGateway) FindRealmByID(ctx context.Context, id int64) (*domain.Realm, bool, error) {
	if f.findRealmByID != nil {
		return f.findRealmByID(ctx, id)
	}
	return nil, false, nil
}

func (f *fakeGateway) FindRealmByNameOrSlug(ctx context.Context, name string, region domain.Region) (*domain.Realm, bool, error) {
	if f.findRealmByNameSlug != nil {
		return f.findRealmByNameSlug(ctx, name, region)
	}
	return nil, false, nil
}

func (f *fakeGateway) FindRealmsByRegion(ctx context.Context, region domain.Region) ([]domain.Realm, error) {
	if f.findRealmsByRegion != nil {
		return f.findRealmsByRegion(ctx, region)
	}
	return []domain.Realm{}, nil
}

func (f *fakeGateway) CheckIfRealmExists(ctx context.Context, r domain.Realm) (bool, error) {
	if f.checkRealmExists != nil {
		return f.checkRealmExists(ctx, r)
	}
	return false, nil
}

func (f *fakeGateway) CreateRealmFolder(ctx context.Context, rf *domain.RealmFolder) error {
	if f.createRealmFolder != nil {
		return f.createRealmFolder(ctx, rf)
	}
	return nil
}

func (f *fakeGateway) FindRealmFolderByID(ctx context.Context, realmID int64, ft domain.FolderType) (*domain.RealmFolder, bool, error) {
	if f.findRealmFolder != nil {
		return f.findRealmFolder(ctx, realmID, ft)
	}
	return nil, false, nil
}

func (f *fakeGateway) CheckIfAuctionFileExists(ctx context.Context, af domain.AuctionFile) (bool, error) {
	if f.checkFileExists != nil {
		return f.checkFileExists(ctx, af)
	}
	return false, nil
}

func (f *fakeGateway) CreateAuctionFile(ctx context.Context, af *domain.AuctionFile) error {
	if f.createAuctionFile != nil {
		return f.createAuctionFile(ctx, af)
	}
	return nil
}

func (f *fakeGateway) UpdateAuctionFile(ctx context.Context, af *domain.AuctionFile) (*domain.AuctionFile, error) {
	if f.updateAuctionFile != nil {
		return f.updateAuctionFile(ctx, af)
	}
	return af, nil
}

func (f *fakeGateway) FindAuctionFilesByRealmToProcess(ctx context.Context, realmID int64) ([]domain.AuctionFile, error) {
	if f.filesToProcess != nil {
		return f.filesToProcess(ctx, realmID)
	}
	return []domain.AuctionFile{}, nil
}

func (f *fakeGateway) FindAuctionFileByID(ctx context.Context, id int64) (*domain.AuctionFile, bool, error) {
	if f.findAuctionFile != nil {
		return f.findAuctionFile(ctx, id)
	}
	return nil, false, nil
}

func (f *fakeGateway) FindAuctionsByRealm(ctx context.Context, realmID int64, start, maxResults int) ([]domain.Auction, error) {
	if f.findAuctionsByRealm != nil {
		return f.findAuctionsByRealm(ctx, realmID, start, maxResults)
	}
	return []domain.Auction{}, nil
}

func (f *fakeGateway) StoreAuctions(ctx context.Context, fileID int64, auctions []domain.Auction) (int, error) {
	if f.storeAuctions != nil {
		return f.storeAuctions(ctx, fileID, auctions)
	}
	return len(auctions), nil
}

func (f *fakeGateway) DeleteAuctionDataByFile(ctx context.Context, fileID int64) (int64, error) {
	if f.deleteAuctionsByFile != nil {
		return f.deleteAuctionsByFile(ctx, fileID)
	}
	return 0, nil
}

func (f *fakeGateway) FindAuctionItemStatisticsByRealmAndItem(ctx context.Context, realmID, itemID int64) ([]domain.AuctionItemStatistics, error) {
	if f.itemStatistics != nil {
		return f.itemStatistics(ctx, realmID, itemID)
	}
	return []domain.AuctionItemStatistics{}, nil
}

// newTestRouter mounts every handler the way the API router does.
func newTestRouter(gw Gateway) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(gw)

	r.GET("/realms", h.ListRealms)
	r.POST("/realms", h.CreateRealm)
	r.GET("/realms/lookup", h.LookupRealm)
	r.GET("/realms/exists", h.RealmExists)
	r.GET("/realms/:id", h.GetRealm)
	r.PUT("/realms/:id", h.UpdateRealm)
	r.POST("/realms/:id/folders", h.CreateRealmFolder)
	r.GET("/realms/:id/folders/:type", h.GetRealmFolder)
	r.GET("/realms/:id/auction-files/to-process", h.ListAuctionFilesToProcess)
	r.GET("/realms/:id/auctions", h.ListRealmAuctions)
	r.POST("/auction-files", h.CreateAuctionFile)
	r.GET("/auction-files/exists", h.AuctionFileExists)
	r.GET("/auction-files/:id", h.GetAuctionFile)
	r.PUT("/auction-files/:id", h.UpdateAuctionFile)
	r.POST("/auction-files/:id/auctions", h.StoreAuctions)
	r.DELETE("/auction-files/:id/auctions", h.DeleteAuctionData)
	r.GET("/items", h.ItemStatistics)
	return r
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rdr *bytes.Reader
	switch b := body.(type) {
	case nil:
		rdr = bytes.NewReader(nil)
	case string:
		rdr = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		rdr = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return v
}

func wantError(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("status = %d; want %d (body %s)", w.Code, status, w.Body.String())
	}
	if er := decode[ErrorResponse](t, w); er.Code != code {
		t.Fatalf("code = %q; want %q", er.Code, code)
	}
}
