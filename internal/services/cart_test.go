package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/storefront-backend/internal/data/repos"
	types "github.com/yungbote/storefront-backend/internal/domain"
	"github.com/yungbote/storefront-backend/internal/platform/dbctx"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
)

type fixture struct {
	carts    CartService
	products ProductService
	cartRepo repos.CartRepo
	dbc      dbctx.Context
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	productRepo, cartRepo := repos.NewMemoryRepos()
	log := logger.Nop()
	return fixture{
		carts:    NewCartService(log, cartRepo, productRepo),
		products: NewProductService(log, productRepo),
		cartRepo: cartRepo,
		dbc:      dbctx.Context{Ctx: context.Background()},
	}
}

func (f fixture) addProduct(t *testing.T, name string) *types.Product {
	t.Helper()
	p, err := f.products.Add(f.dbc, &types.Product{Name: name, Price: 1})
	if err != nil {
		t.Fatalf("Add product: %v", err)
	}
	return p
}

func (f fixture) newCart(t *testing.T, products ...*types.Product) *types.Cart {
	t.Helper()
	c, err := f.cartRepo.Save(f.dbc, &types.Cart{Products: products})
	if err != nil {
		t.Fatalf("save cart: %v", err)
	}
	return c
}

func ids(c *types.Cart) []uuid.UUID { return c.ProductIDs() }

func TestAddProductScenario(t *testing.T) {
	f := newFixture(t)
	p := f.addProduct(t, "A")
	requested := uuid.New()

	first, err := f.carts.AddProduct(f.dbc, requested, p.ID)
	if err != nil {
		t.Fatalf("AddProduct: %v", err)
	}
	if first.ID == requested || first.ID == uuid.Nil {
		t.Fatalf("expected a freshly generated cart id, got %s", first.ID)
	}
	if got := ids(first); len(got) != 1 || got[0] != p.ID {
		t.Fatalf("unexpected products after first add: %v", got)
	}

	second, err := f.carts.AddProduct(f.dbc, first.ID, p.ID)
	if err != nil {
		t.Fatalf("AddProduct (again): %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected same cart, got %s", second.ID)
	}
	if got := ids(second); len(got) != 1 || got[0] != p.ID {
		t.Fatalf("duplicate after second add: %v", got)
	}

	stored, found, err := f.carts.GetDetails(f.dbc, first.ID)
	if err != nil || !found {
		t.Fatalf("GetDetails: found=%v err=%v", found, err)
	}
	if got := ids(stored); len(got) != 1 {
		t.Fatalf("persisted products: %v", got)
	}
}

func TestAddProductUnknownProductIsNoop(t *testing.T) {
	f := newFixture(t)
	p := f.addProduct(t, "A")
	cart := f.newCart(t, p)

	got, err := f.carts.AddProduct(f.dbc, cart.ID, uuid.New())
	if err != nil {
		t.Fatalf("AddProduct: %v", err)
	}
	if got.ID != cart.ID {
		t.Fatalf("expected existing cart, got %s", got.ID)
	}
	if list := ids(got); len(list) != 1 || list[0] != p.ID {
		t.Fatalf("product list changed: %v", list)
	}
}

func TestAddProductUnknownCartAndProductStillProvisionsCart(t *testing.T) {
	f := newFixture(t)
	requested := uuid.New()

	got, err := f.carts.AddProduct(f.dbc, requested, uuid.New())
	if err != nil {
		t.Fatalf("AddProduct: %v", err)
	}
	if got.ID == requested {
		t.Fatal("requested id must not be reused")
	}
	if got.Products == nil || len(got.Products) != 0 {
		t.Fatalf("expected empty initialized list, got %#v", got.Products)
	}
	if _, found, _ := f.carts.GetDetails(f.dbc, got.ID); !found {
		t.Fatal("provisioned cart was not persisted")
	}
	if _, found, _ := f.carts.GetDetails(f.dbc, requested); found {
		t.Fatal("no cart should exist under the requested id")
	}
}

func TestAddProductAppendsInOrder(t *testing.T) {
	f := newFixture(t)
	p1, p2 := f.addProduct(t, "A"), f.addProduct(t, "B")
	cart := f.newCart(t)

	if _, err := f.carts.AddProduct(f.dbc, cart.ID, p2.ID); err != nil {
		t.Fatalf("AddProduct: %v", err)
	}
	got, err := f.carts.AddProduct(f.dbc, cart.ID, p1.ID)
	if err != nil {
		t.Fatalf("AddProduct: %v", err)
	}
	if list := ids(got); len(list) != 2 || list[0] != p2.ID || list[1] != p1.ID {
		t.Fatalf("unexpected order: %v", list)
	}
}

func TestRemoveProduct(t *testing.T) {
	f := newFixture(t)
	p1, p2 := f.addProduct(t, "A"), f.addProduct(t, "B")
	cart := f.newCart(t, p1, p2)

	got, found, err := f.carts.RemoveProduct(f.dbc, cart.ID, p2.ID)
	if err != nil || !found {
		t.Fatalf("RemoveProduct: found=%v err=%v", found, err)
	}
	if list := ids(got); len(list) != 1 || list[0] != p1.ID {
		t.Fatalf("unexpected products: %v", list)
	}

	stored, _, _ := f.carts.GetDetails(f.dbc, cart.ID)
	if list := ids(stored); len(list) != 1 || list[0] != p1.ID {
		t.Fatalf("removal not persisted: %v", list)
	}
}

func TestRemoveProductNotInCart(t *testing.T) {
	f := newFixture(t)
	p1 := f.addProduct(t, "A")
	cart := f.newCart(t, p1)

	got, found, err := f.carts.RemoveProduct(f.dbc, cart.ID, uuid.New())
	if err != nil || !found {
		t.Fatalf("RemoveProduct: found=%v err=%v", found, err)
	}
	if list := ids(got); len(list) != 1 {
		t.Fatalf("unexpected products: %v", list)
	}
}

func TestRemoveProductUnknownCart(t *testing.T) {
	f := newFixture(t)

	got, found, err := f.carts.RemoveProduct(f.dbc, uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("RemoveProduct: %v", err)
	}
	if found || got != nil {
		t.Fatalf("expected absent, got found=%v cart=%+v", found, got)
	}
}

func TestUpdateCartUnknownID(t *testing.T) {
	f := newFixture(t)

	_, err := f.carts.UpdateCart(f.dbc, &types.Cart{ID: uuid.New()})
	if !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound, got %v", err)
	}
	if _, err := f.carts.UpdateCart(f.dbc, nil); !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("nil cart: expected ErrCartNotFound, got %v", err)
	}
}

func TestUpdateCartOverwritesProducts(t *testing.T) {
	f := newFixture(t)
	p1, p2, p3 := f.addProduct(t, "A"), f.addProduct(t, "B"), f.addProduct(t, "C")
	cart := f.newCart(t, p1, p2)

	got, err := f.carts.UpdateCart(f.dbc, &types.Cart{ID: cart.ID, Products: []*types.Product{p3, p1, p3}})
	if err != nil {
		t.Fatalf("UpdateCart: %v", err)
	}
	if list := ids(got); len(list) != 2 || list[0] != p3.ID || list[1] != p1.ID {
		t.Fatalf("unexpected products: %v", list)
	}
}

func TestUpdateCartNilProductsBecomesEmpty(t *testing.T) {
	f := newFixture(t)
	p1 := f.addProduct(t, "A")
	cart := f.newCart(t, p1)

	got, err := f.carts.UpdateCart(f.dbc, &types.Cart{ID: cart.ID})
	if err != nil {
		t.Fatalf("UpdateCart: %v", err)
	}
	if got.Products == nil || len(got.Products) != 0 {
		t.Fatalf("expected empty list, got %#v", got.Products)
	}
}

func TestGetDetails(t *testing.T) {
	f := newFixture(t)
	p1 := f.addProduct(t, "A")
	cart := f.newCart(t, p1)

	got, found, err := f.carts.GetDetails(f.dbc, cart.ID)
	if err != nil || !found {
		t.Fatalf("GetDetails: found=%v err=%v", found, err)
	}
	if got.ID != cart.ID || len(got.Products) != 1 || got.Products[0].Name != "A" {
		t.Fatalf("unexpected cart: %+v", got)
	}

	got, found, err = f.carts.GetDetails(f.dbc, uuid.New())
	if err != nil || found || got != nil {
		t.Fatalf("GetDetails (missing): cart=%+v found=%v err=%v", got, found, err)
	}
}

type failingCartRepo struct{ err error }

func (r failingCartRepo) FindByID(dbctx.Context, uuid.UUID) (*types.Cart, bool, error) {
	return nil, false, r.err
}
func (r failingCartRepo) Save(dbctx.Context, *types.Cart) (*types.Cart, error) {
	return nil, r.err
}

func TestCartServicePropagatesStoreErrors(t *testing.T) {
	boom := errors.New("db down")
	productRepo, _ := repos.NewMemoryRepos()
	svc := NewCartService(logger.Nop(), failingCartRepo{err: boom}, productRepo)
	dbc := dbctx.Context{Ctx: context.Background()}

	if _, err := svc.AddProduct(dbc, uuid.New(), uuid.New()); !errors.Is(err, boom) {
		t.Fatalf("AddProduct: expected wrapped store error, got %v", err)
	}
	if _, _, err := svc.RemoveProduct(dbc, uuid.New(), uuid.New()); !errors.Is(err, boom) {
		t.Fatalf("RemoveProduct: expected wrapped store error, got %v", err)
	}
	if _, err := svc.UpdateCart(dbc, &types.Cart{ID: uuid.New()}); !errors.Is(err, boom) || errors.Is(err, ErrCartNotFound) {
		t.Fatalf("UpdateCart: expected wrapped store error, got %v", err)
	}
	if _, _, err := svc.GetDetails(dbc, uuid.New()); !errors.Is(err, boom) {
		t.Fatalf("GetDetails: expected wrapped store error, got %v", err)
	}
}
