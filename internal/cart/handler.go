package cart

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rimss/internal/domain/cart"
	"rimss/internal/products"
)

type Handler struct {
	store   *Store
	catalog *products.Repo
}

func NewHandler(store *Store, catalog *products.Repo) *Handler {
	return &Handler{store: store, catalog: catalog}
}

func (h *Handler) GetCart(c *gin.Context) {
	items := h.store.Items()
	if items == nil {
		items = []cart.Item{}
	}
	c.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total_items": h.store.TotalItems(),
		"total_price": h.store.TotalPrice(),
	})
}

type addItemReq struct {
	ProductID string `json:"product_id" binding:"required"`
	Qty       int    `json:"qty" binding:"required,gt=0"`
	Color     string `json:"color"`
	Size      string `json:"size"`
}

func (h *Handler) AddItem(c *gin.Context) {
	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	p, err := h.catalog.GetByID(c.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, products.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product"})
		return
	}

	if err := h.store.AddToCart(c.Request.Context(), p, req.Qty, req.Color, req.Size); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to add item"})
		return
	}
	h.GetCart(c)
}

type updateQtyReq struct {
	ItemID string `json:"item_id" binding:"required"`
	// Pointer so an explicit zero survives binding; zero or less removes the
	// line.
	Qty *int `json:"qty" binding:"required"`
}

func (h *Handler) UpdateQuantity(c *gin.Context) {
	var req updateQtyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.store.UpdateQuantity(c.Request.Context(), req.ItemID, *req.Qty); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to update quantity"})
		return
	}
	h.GetCart(c)
}

type removeItemReq struct {
	ItemID string `json:"item_id" binding:"required"`
}

func (h *Handler) RemoveItem(c *gin.Context) {
	var req removeItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.store.RemoveFromCart(c.Request.Context(), req.ItemID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to remove item"})
		return
	}
	h.GetCart(c)
}

func (h *Handler) Clear(c *gin.Context) {
	if err := h.store.ClearCart(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
