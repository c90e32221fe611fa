package products

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rimss/internal/domain/product"
)

type Handler struct {
	repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{repo: repo}
}

// List serves the catalog. ?featured=true short-circuits to the featured
// subset; otherwise query params map onto catalog filters.
func (h *Handler) List(c *gin.Context) {
	if v, _ := strconv.ParseBool(c.Query("featured")); v {
		items, err := h.repo.GetFeatured(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
		return
	}

	f := product.Filters{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Color:    c.Query("color"),
	}
	f.IsDiscounted, _ = strconv.ParseBool(c.Query("discounted"))
	f.MinPrice, _ = strconv.ParseFloat(c.Query("min_price"), 64)
	f.MaxPrice, _ = strconv.ParseFloat(c.Query("max_price"), 64)

	items, err := h.repo.GetAll(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) Get(c *gin.Context) {
	p, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) Categories(c *gin.Context) {
	cats, err := h.repo.GetCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": cats})
}
