package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/storefront-backend/internal/domain"
	"github.com/yungbote/storefront-backend/internal/http/response"
	"github.com/yungbote/storefront-backend/internal/platform/apierr"
	"github.com/yungbote/storefront-backend/internal/platform/dbctx"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
	"github.com/yungbote/storefront-backend/internal/services"
)

type CartHandler struct {
	log         *logger.Logger
	cartService services.CartService
}

func NewCartHandler(log *logger.Logger, cartService services.CartService) *CartHandler {
	return &CartHandler{
		log:         log.With("handler", "CartHandler"),
		cartService: cartService,
	}
}

// POST /api/cart/add?cartId=...&productId=...
func (h *CartHandler) AddProduct(c *gin.Context) {
	cartID, err := queryUUID(c, "cartId")
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	productID, err := queryUUID(c, "productId")
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}

	cart, err := h.cartService.AddProduct(dbctx.Context{Ctx: c.Request.Context()}, cartID, productID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, cart)
}

// DELETE /api/cart/remove?cartId=...&productId=...
// Unknown carts answer 200 with a null body.
func (h *CartHandler) RemoveProduct(c *gin.Context) {
	cartID, err := queryUUID(c, "cartId")
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	productID, err := queryUUID(c, "productId")
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}

	cart, found, err := h.cartService.RemoveProduct(dbctx.Context{Ctx: c.Request.Context()}, cartID, productID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOptional(c, cart, found)
}

// PUT /api/cart/update
// body: Cart JSON. A missing cart is a server fault (500, code cart_not_found).
func (h *CartHandler) UpdateCart(c *gin.Context) {
	var req types.Cart
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	cart, err := h.cartService.UpdateCart(dbctx.Context{Ctx: c.Request.Context()}, &req)
	if err != nil {
		if errors.Is(err, services.ErrCartNotFound) {
			h.log.Warn("UpdateCart: cart not found", "cart_id", req.ID)
			err = apierr.New(http.StatusInternalServerError, "cart_not_found", err)
		}
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, cart)
}

// GET /api/cart/details?cartId=...
func (h *CartHandler) GetDetails(c *gin.Context) {
	cartID, err := queryUUID(c, "cartId")
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}

	cart, found, err := h.cartService.GetDetails(dbctx.Context{Ctx: c.Request.Context()}, cartID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOptional(c, cart, found)
}
