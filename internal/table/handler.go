package table

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	frontendBaseURL string
}

func NewHandler(frontendBaseURL string) *Handler {
	return &Handler{frontendBaseURL: frontendBaseURL}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/:tableNumber/qr", h.QR)
}

// QR returns the payload URL to encode into a table's QR code.
func (h *Handler) QR(c *gin.Context) {
	n, err := strconv.Atoi(c.Param("tableNumber"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid table number"})
		return
	}

	payload, err := QRPayload(h.frontendBaseURL, n)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Enter a valid table number (1-29)"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"table": n, "url": payload})
}
