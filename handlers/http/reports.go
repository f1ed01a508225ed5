package httpHandler

import (
	"net/http"

	"cafe-ledger/reports"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	builder *reports.Builder
}

func NewReportHandler(builder *reports.Builder) *ReportHandler {
	return &ReportHandler{builder: builder}
}

// All handles GET /api/v1/reports
func (h *ReportHandler) All(c *gin.Context) {
	report, err := h.builder.Generate(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": report,
	})
}

// Expenses handles GET /api/v1/reports/expenses
func (h *ReportHandler) Expenses(c *gin.Context) {
	rows, err := h.builder.ExpenseReport(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  rows,
		"count": len(rows),
	})
}

// Inventory handles GET /api/v1/reports/inventory
func (h *ReportHandler) Inventory(c *gin.Context) {
	rows, err := h.builder.InventoryReport(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  rows,
		"count": len(rows),
	})
}

// Sales handles GET /api/v1/reports/sales
func (h *ReportHandler) Sales(c *gin.Context) {
	rows, err := h.builder.SalesReport(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  rows,
		"count": len(rows),
	})
}
