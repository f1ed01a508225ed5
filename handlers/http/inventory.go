package httpHandler

import (
	"net/http"
	"strconv"

	"cafe-ledger/apperrors"
	"cafe-ledger/entities"
	"cafe-ledger/usecases"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type InventoryHandler struct {
	useCase *usecases.CafeUseCase
}

func NewInventoryHandler(useCase *usecases.CafeUseCase) *InventoryHandler {
	return &InventoryHandler{useCase: useCase}
}

type inventoryRequest struct {
	ItemName string          `json:"item_name"`
	Quantity int             `json:"quantity"`
	Cost     decimal.Decimal `json:"cost"`
}

type PurchaseRequest struct {
	Quantity         int  `json:"quantity"`
	PaymentConfirmed bool `json:"payment_confirmed"`
}

// AddItem handles POST /api/v1/inventory
func (h *InventoryHandler) AddItem(c *gin.Context) {
	var req inventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	item, err := h.useCase.AddInventoryItem(c.Request.Context(), req.ItemName, req.Quantity, req.Cost)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Inventory item added successfully",
		"data":    item,
	})
}

// ListItems handles GET /api/v1/inventory
func (h *InventoryHandler) ListItems(c *gin.Context) {
	items, err := h.useCase.ListInventory(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  items,
		"count": len(items),
	})
}

// UpdateItem handles PUT /api/v1/inventory/:id
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var patch entities.InventoryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err.Error())
		return
	}

	item, err := h.useCase.UpdateInventoryItem(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Inventory item updated successfully",
		"data":    item,
	})
}

// DeleteItem handles DELETE /api/v1/inventory/:id
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.useCase.DeleteInventoryItem(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Inventory item deleted successfully",
	})
}

// Quote handles GET /api/v1/inventory/:id/quote?quantity=n
func (h *InventoryHandler) Quote(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	quantity, err := strconv.Atoi(c.Query("quantity"))
	if err != nil {
		respondError(c, apperrors.New(apperrors.InvalidAmount, "quantity must be a whole number"))
		return
	}

	quote, err := h.useCase.QuotePurchase(c.Request.Context(), id, quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": quote,
	})
}

// Purchase handles POST /api/v1/inventory/:id/purchase
func (h *InventoryHandler) Purchase(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	receipt, err := h.useCase.PurchaseItem(c.Request.Context(), id, req.Quantity, req.PaymentConfirmed)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Purchase successful",
		"data":    receipt,
	})
}
