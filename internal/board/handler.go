package board

import (
	"net/http"

	"qrserve-be/internal/order"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	orders order.Service
}

func NewHandler(orders order.Service) *Handler {
	return &Handler{orders: orders}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/board", h.Board)
}

// Board serves the grouped admin view. Query params: status (a status
// name or All) and table (partial decimal table number).
func (h *Handler) Board(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching orders"})
		return
	}

	statusFilter := c.DefaultQuery("status", FilterAll)
	tableQuery := c.Query("table")

	c.JSON(http.StatusOK, gin.H{
		"tables": Build(Filter(orders, statusFilter, tableQuery)),
	})
}
