package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/tbourn/wow-auctions/internal/domain"
)

func TestCreateRealmFolder_AndGet(t *testing.T) {
	db := newRepoDB(t, true)
	ctx := context.Background()
	r := seedRealm(t, db, "Stormrage", domain.RegionUS)

	in := &domain.RealmFolder{RealmID: r.ID, FolderType: domain.FolderTypeInput, Path: "/data/us/stormrage/in"}
	if err := CreateRealmFolder(ctx, db, in); err != nil {
		t.Fatalf("CreateRealmFolder: %v", err)
	}

	got, err := GetRealmFolder(ctx, db, r.ID, domain.FolderTypeInput)
	if err != nil || got.Path != in.Path {
		t.Fatalf("GetRealmFolder: got=%+v err=%v", got, err)
	}
	if _, err := GetRealmFolder(ctx, db, r.ID, domain.FolderTypeOutput); !errors.Is(err, ErrNotFound) {
		t.Fatalf("other type: want ErrNotFound, got %v", err)
	}

	dup := &domain.RealmFolder{RealmID: r.ID, FolderType: domain.FolderTypeInput, Path: "/elsewhere"}
	if err := CreateRealmFolder(ctx, db, dup); !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("duplicate key: want ErrConstraintViolation, got %v", err)
	}
}

func TestGetRealmFolder_Error_NoTable(t *testing.T) {
	db := newRepoDB(t, false)
	_, err := GetRealmFolder(context.Background(), db, 1, domain.FolderTypeInput)
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected a store error, got %v", err)
	}
}
