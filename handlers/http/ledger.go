package httpHandler

import (
	"net/http"

	"cafe-ledger/usecases"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// LedgerHandler serves expenses and manually entered sales.
type LedgerHandler struct {
	useCase *usecases.CafeUseCase
}

func NewLedgerHandler(useCase *usecases.CafeUseCase) *LedgerHandler {
	return &LedgerHandler{useCase: useCase}
}

type expenseRequest struct {
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description *string         `json:"description"`
}

type saleRequest struct {
	Date      string          `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	ItemsSold string          `json:"items_sold"`
}

// RecordExpense handles POST /api/v1/expenses
func (h *LedgerHandler) RecordExpense(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	expense, err := h.useCase.RecordExpense(c.Request.Context(), req.Date, req.Amount, req.Category, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Expense recorded successfully",
		"data":    expense,
	})
}

// ExpenseHistory handles GET /api/v1/expenses
func (h *LedgerHandler) ExpenseHistory(c *gin.Context) {
	expenses, err := h.useCase.ExpenseHistory(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  expenses,
		"count": len(expenses),
	})
}

// RecordSale handles POST /api/v1/sales
func (h *LedgerHandler) RecordSale(c *gin.Context) {
	var req saleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	sale, err := h.useCase.RecordSale(c.Request.Context(), req.Date, req.Amount, req.ItemsSold)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Sale recorded successfully",
		"data":    sale,
	})
}

// SalesHistory handles GET /api/v1/sales
func (h *LedgerHandler) SalesHistory(c *gin.Context) {
	sales, err := h.useCase.SalesHistory(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  sales,
		"count": len(sales),
	})
}
