package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/yungbote/storefront-backend/internal/data/repos"
	types "github.com/yungbote/storefront-backend/internal/domain"
	"github.com/yungbote/storefront-backend/internal/platform/dbctx"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
)

// ErrCartNotFound is returned by UpdateCart when the cart id does not resolve.
var ErrCartNotFound = errors.New("cart not found")

type CartService interface {
	// AddProduct never fails on a missing cart or product: an unknown cart id
	// is replaced by a freshly created cart and an unknown product is ignored.
	AddProduct(dbc dbctx.Context, cartID, productID uuid.UUID) (*types.Cart, error)
	RemoveProduct(dbc dbctx.Context, cartID, productID uuid.UUID) (*types.Cart, bool, error)
	UpdateCart(dbc dbctx.Context, cart *types.Cart) (*types.Cart, error)
	GetDetails(dbc dbctx.Context, cartID uuid.UUID) (*types.Cart, bool, error)
}

type cartService struct {
	log         *logger.Logger
	cartRepo    repos.CartRepo
	productRepo repos.ProductRepo
}

func NewCartService(log *logger.Logger, cartRepo repos.CartRepo, productRepo repos.ProductRepo) CartService {
	serviceLog := log.With("service", "CartService")
	return &cartService{
		log:         serviceLog,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func (s *cartService) AddProduct(dbc dbctx.Context, cartID, productID uuid.UUID) (*types.Cart, error) {
	cart, found, err := s.cartRepo.FindByID(dbc, cartID)
	if err != nil {
		s.log.Warn("AddProduct: load cart failed", "error", err, "cart_id", cartID)
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if !found {
		// The requested id is dropped; the new cart gets a store-assigned id.
		cart, err = s.cartRepo.Save(dbc, &types.Cart{})
		if err != nil {
			s.log.Warn("AddProduct: create cart failed", "error", err, "requested_cart_id", cartID)
			return nil, fmt.Errorf("create cart: %w", err)
		}
		s.log.Debug("AddProduct: provisioned cart", "requested_cart_id", cartID, "cart_id", cart.ID)
	}
	cart.EnsureProducts()

	product, found, err := s.productRepo.FindByID(dbc, productID)
	if err != nil {
		s.log.Warn("AddProduct: load product failed", "error", err, "product_id", productID)
		return nil, fmt.Errorf("load product: %w", err)
	}
	if !found {
		return cart, nil
	}
	if !cart.AddProduct(product) {
		return cart, nil
	}

	saved, err := s.cartRepo.Save(dbc, cart)
	if err != nil {
		s.log.Warn("AddProduct: save cart failed", "error", err, "cart_id", cart.ID, "product_id", productID)
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return saved, nil
}

func (s *cartService) RemoveProduct(dbc dbctx.Context, cartID, productID uuid.UUID) (*types.Cart, bool, error) {
	cart, found, err := s.cartRepo.FindByID(dbc, cartID)
	if err != nil {
		s.log.Warn("RemoveProduct: load cart failed", "error", err, "cart_id", cartID)
		return nil, false, fmt.Errorf("load cart: %w", err)
	}
	if !found {
		return nil, false, nil
	}
	cart.EnsureProducts()
	cart.RemoveProduct(productID)

	saved, err := s.cartRepo.Save(dbc, cart)
	if err != nil {
		s.log.Warn("RemoveProduct: save cart failed", "error", err, "cart_id", cartID, "product_id", productID)
		return nil, false, fmt.Errorf("save cart: %w", err)
	}
	return saved, true, nil
}

func (s *cartService) UpdateCart(dbc dbctx.Context, cart *types.Cart) (*types.Cart, error) {
	if cart == nil {
		return nil, ErrCartNotFound
	}
	_, found, err := s.cartRepo.FindByID(dbc, cart.ID)
	if err != nil {
		s.log.Warn("UpdateCart: load cart failed", "error", err, "cart_id", cart.ID)
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if !found {
		return nil, ErrCartNotFound
	}
	cart.EnsureProducts()
	cart.Dedupe()

	saved, err := s.cartRepo.Save(dbc, cart)
	if err != nil {
		s.log.Warn("UpdateCart: save cart failed", "error", err, "cart_id", cart.ID)
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return saved, nil
}

func (s *cartService) GetDetails(dbc dbctx.Context, cartID uuid.UUID) (*types.Cart, bool, error) {
	cart, found, err := s.cartRepo.FindByID(dbc, cartID)
	if err != nil {
		s.log.Warn("GetDetails: load cart failed", "error", err, "cart_id", cartID)
		return nil, false, fmt.Errorf("load cart: %w", err)
	}
	return cart, found, nil
}
