package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/storefront-backend/internal/data/repos/testutil"
	types "github.com/yungbote/storefront-backend/internal/domain"
	"github.com/yungbote/storefront-backend/internal/platform/dbctx"
)

func TestProductRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewProductRepo(db, testutil.Logger(t))
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	saved, err := repo.Save(dbc, &types.Product{
		Name:       "Kettle",
		Price:      24.5,
		Attributes: datatypes.JSON([]byte(`{"color":"steel"}`)),
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID == uuid.Nil {
		t.Fatalf("Save: expected generated id")
	}
	if saved.CreatedAt.IsZero() {
		t.Fatalf("Save: expected created_at to be set")
	}

	got, ok, err := repo.FindByID(dbc, saved.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if !ok || got.Name != "Kettle" || got.Price != 24.5 {
		t.Fatalf("FindByID: unexpected result: %+v (found=%v)", got, ok)
	}

	_, ok, err = repo.FindByID(dbc, uuid.New())
	if err != nil {
		t.Fatalf("FindByID (missing): %v", err)
	}
	if ok {
		t.Fatalf("FindByID (missing): expected not found")
	}

	_, ok, err = repo.FindByID(dbc, uuid.Nil)
	if err != nil || ok {
		t.Fatalf("FindByID (nil id): found=%v err=%v", ok, err)
	}
}

func TestProductRepoFindAll(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewProductRepo(db, testutil.Logger(t))
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	want := map[uuid.UUID]bool{}
	for _, name := range []string{"A", "B", "C"} {
		p := testutil.SeedProduct(t, ctx, tx, name, 1)
		want[p.ID] = true
	}

	all, err := repo.FindAll(dbc)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	seen := map[uuid.UUID]bool{}
	for _, p := range all {
		if seen[p.ID] {
			t.Fatalf("FindAll: duplicate %s", p.ID)
		}
		seen[p.ID] = true
	}
	for id := range want {
		if !seen[id] {
			t.Fatalf("FindAll: missing %s", id)
		}
	}
}

func TestProductRepoSaveWithExistingID(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewProductRepo(db, testutil.Logger(t))
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	p := testutil.SeedProduct(t, ctx, tx, "Lamp", 10)
	p.Price = 12
	if _, err := repo.Save(dbc, p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, ok, err := repo.FindByID(dbc, p.ID)
	if err != nil || !ok {
		t.Fatalf("FindByID: found=%v err=%v", ok, err)
	}
	if got.Price != 12 {
		t.Fatalf("expected updated price, got %v", got.Price)
	}
}
