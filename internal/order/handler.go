package order

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type webhookPayload struct {
	Call WebhookCall `json:"call"`
}

// --------------------------------------------------
// Telephony provider delivers a finished call
// --------------------------------------------------
func (h *Handler) HandleWebhook(c *gin.Context) {
	var payload webhookPayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "invalid payload",
		})
		return
	}

	payload.Call.Transcript = strings.TrimSpace(payload.Call.Transcript)
	if payload.Call.Transcript == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "no transcript",
		})
		return
	}

	result, err := h.service.ProcessCall(c.Request.Context(), payload.Call)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	if result.Duplicate {
		c.JSON(http.StatusOK, gin.H{
			"status":  "duplicate",
			"call_id": result.CallID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"order_id":     result.OrderID,
		"total":        result.Total,
		"delivery_fee": result.DeliveryFee,
	})
}

// --------------------------------------------------
// Dashboard polls all orders
// --------------------------------------------------
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.service.ListOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// --------------------------------------------------
// Kitchen updates an order status
// --------------------------------------------------
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "invalid payload",
		})
		return
	}

	err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "order not found",
			})
			return
		}
		if errors.Is(err, ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
