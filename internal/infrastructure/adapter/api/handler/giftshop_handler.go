package handler

import (
	"net/http"
	"strings"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/fanattics-portal/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// IdempotencyKeyHeader lets clients retry a redemption safely
const IdempotencyKeyHeader = "Idempotency-Key"

// GiftShopHandler handles product and redemption requests
type GiftShopHandler struct {
	redemption usecase.RedemptionUseCase
	logger     coreport.Logger
}

// NewGiftShopHandler creates a new gift-shop handler instance
func NewGiftShopHandler(redemption usecase.RedemptionUseCase, logger coreport.Logger) *GiftShopHandler {
	return &GiftShopHandler{
		redemption: redemption,
		logger:     logger,
	}
}

// ListProducts handles GET /api/giftshop/products
func (h *GiftShopHandler) ListProducts(c *gin.Context) {
	userID, ok := mustUser(c)
	if !ok {
		return
	}

	products, err := h.redemption.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Failed to load products")
		return
	}

	resp := make([]dto.ProductResponse, len(products))
	for i, p := range products {
		resp[i] = dto.NewProductResponse(p, userID)
	}
	c.JSON(http.StatusOK, resp)
}

// Redeem handles POST /api/giftshop/products/:productId/redeem. Price and
// title are taken from the stored product, never from the client.
func (h *GiftShopHandler) Redeem(c *gin.Context) {
	userID, ok := mustUser(c)
	if !ok {
		return
	}
	productID, ok := parseIDParam(c, "productId", domainerr.ErrInvalidInput)
	if !ok {
		return
	}

	product, err := h.redemption.GetProduct(c.Request.Context(), productID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to load product")
		return
	}
	if !product.IsActive {
		c.JSON(http.StatusConflict, usecase.RedeemResult{
			Success: false,
			Error:   domainerr.ErrProductUnavailable.Error(),
		})
		return
	}

	result := h.redemption.Redeem(c.Request.Context(), usecase.RedeemRequest{
		ProductID:      product.ID,
		UserID:         userID,
		Points:         product.Price,
		ProductTitle:   product.Title,
		IdempotencyKey: strings.TrimSpace(c.GetHeader(IdempotencyKeyHeader)),
	})
	c.JSON(redeemStatus(result), result)
}

func redeemStatus(result usecase.RedeemResult) int {
	if result.Success {
		return http.StatusOK
	}
	switch result.Error {
	case usecase.RedeemErrInvalidInput:
		return http.StatusBadRequest
	case usecase.RedeemErrInProgress, usecase.RedeemErrUserBusy:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ListTransactions handles GET /api/giftshop/transactions
func (h *GiftShopHandler) ListTransactions(c *gin.Context) {
	userID, ok := mustUser(c)
	if !ok {
		return
	}

	txns, err := h.redemption.ListTransactions(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to load transactions")
		return
	}

	resp := make([]dto.GiftShopTransactionResponse, len(txns))
	for i, t := range txns {
		resp[i] = dto.NewGiftShopTransactionResponse(t)
	}
	c.JSON(http.StatusOK, resp)
}

// SetShipping handles PUT /api/giftshop/transactions/:id/shipping
func (h *GiftShopHandler) SetShipping(c *gin.Context) {
	userID, ok := mustUser(c)
	if !ok {
		return
	}
	txID, ok := parseIDParam(c, "id", domainerr.ErrInvalidInput)
	if !ok {
		return
	}

	var req dto.ShippingRequest
	if !bindJSON(c, &req) {
		return
	}

	txn, err := h.redemption.SetShippingAddress(c.Request.Context(), userID, txID, req.Address)
	if err != nil {
		respondError(c, h.logger, err, "Failed to set shipping address")
		return
	}
	c.JSON(http.StatusOK, dto.NewGiftShopTransactionResponse(txn))
}

// UpdateStatus handles PATCH /api/admin/giftshop/transactions/:id
func (h *GiftShopHandler) UpdateStatus(c *gin.Context) {
	txID, ok := parseIDParam(c, "id", domainerr.ErrInvalidInput)
	if !ok {
		return
	}

	var req dto.StatusRequest
	if !bindJSON(c, &req) {
		return
	}

	txn, err := h.redemption.UpdateStatus(c.Request.Context(), txID, entity.GiftShopStatus(req.Status))
	if err != nil {
		respondError(c, h.logger, err, "Failed to update transaction status")
		return
	}

	h.logger.Info("Gift-shop transaction status changed", map[string]any{
		"transaction_id": txn.ID,
		"status":         string(txn.Status),
	})
	c.JSON(http.StatusOK, dto.NewGiftShopTransactionResponse(txn))
}
