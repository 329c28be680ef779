package order

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/by-table/:tableNumber", h.ListByTable)
	rg.PUT("/:id/status", h.UpdateStatus)
	rg.DELETE("/:id", h.Delete)
	rg.GET("/status/:tableNumber", h.LatestStatus)
}

type CreateOrderRequest struct {
	TableNumber int    `json:"tableNumber"`
	Items       []Item `json:"items"`
}

type UpdateStatusRequest struct {
	Status Status `json:"status"`
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order data"})
		return
	}

	o, err := h.svc.Create(c.Request.Context(), req.TableNumber, req.Items)
	if errors.Is(err, ErrInvalidTable) || errors.Is(err, ErrEmptyItems) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order data"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		return
	}

	c.JSON(http.StatusCreated, o)
}

func (h *Handler) List(c *gin.Context) {
	orders, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching orders"})
		return
	}
	if orders == nil {
		orders = []*Order{}
	}

	c.JSON(http.StatusOK, orders)
}

func (h *Handler) ListByTable(c *gin.Context) {
	tableNumber, err := strconv.Atoi(c.Param("tableNumber"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid table number"})
		return
	}

	orders, err := h.svc.ListForTable(c.Request.Context(), tableNumber)
	if errors.Is(err, ErrNoOrdersForTable) {
		c.JSON(http.StatusNotFound, gin.H{"message": "No orders found for this table"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
		return
	}

	o, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	switch {
	case errors.Is(err, ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
	case errors.Is(err, ErrInvalidOrderID):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
	case errors.Is(err, ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	default:
		c.JSON(http.StatusOK, o)
	}
}

func (h *Handler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, ErrInvalidOrderID):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
	case errors.Is(err, ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Order Cancelled Successfully"})
	}
}

func (h *Handler) LatestStatus(c *gin.Context) {
	tableNumber, err := strconv.Atoi(c.Param("tableNumber"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid table number"})
		return
	}

	status, err := h.svc.LatestStatusForTable(c.Request.Context(), tableNumber)
	if errors.Is(err, ErrNoOrdersForTable) {
		c.JSON(http.StatusNotFound, gin.H{"message": "No orders found for this table."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": status})
}
