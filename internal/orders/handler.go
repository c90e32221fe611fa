package orders

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rimss/internal/cart"
	"rimss/internal/domain/user"
	"rimss/internal/payment"
	"rimss/internal/session"
)

type Dependencies struct {
	Repo     *Repo
	Payments *payment.Service
	Cart     *cart.Store
}

type Handler struct {
	deps Dependencies
}

func NewHandler(d Dependencies) *Handler {
	return &Handler{deps: d}
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.deps.Repo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type checkoutReq struct {
	ShippingAddress user.Address `json:"shipping_address" binding:"required"`
	PaymentMethod   string       `json:"payment_method" binding:"required"`
}

// Checkout runs the storefront purchase flow: price the cart, create and
// confirm a payment intent, place the order, then reset the cart state.
func (h *Handler) Checkout(c *gin.Context) {
	uAny, _ := c.Get(session.CtxUserKey)
	u, _ := uAny.(user.User)

	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if h.deps.Cart.TotalItems() == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		return
	}

	total := h.deps.Cart.TotalPrice()

	intent, err := h.deps.Payments.CreateIntent(c.Request.Context(), total)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "payment intent failed"})
		return
	}
	ok, err := h.deps.Payments.Confirm(c.Request.Context(), intent.ID)
	if err != nil || !ok {
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "payment not confirmed"})
		return
	}

	o, err := h.deps.Repo.Create(c.Request.Context(), u, CreateInput{
		TotalAmount:     total,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create order"})
		return
	}

	// Order creation drained the backend cart; bring the store in line.
	_ = h.deps.Cart.ClearCart(c.Request.Context())

	c.JSON(http.StatusCreated, o)
}
