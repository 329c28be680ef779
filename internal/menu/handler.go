package menu

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
}

func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, List(
		c.DefaultQuery("category", CategoryAll),
		c.DefaultQuery("sort", SortDefault),
	))
}
