package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/codewithdark-git/khanana/pkg/models"
	"github.com/codewithdark-git/khanana/pkg/repository"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// listOrders returns every order newest-first together with the live
// count of orders still in "new", which drives the dashboard badge.
func (s *Server) listOrders(c *gin.Context) {
	ctx := c.Request.Context()

	orders, err := s.stores.Orders.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list orders", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	newCount, err := s.stores.Orders.NewCount(ctx)
	if err != nil {
		s.logger.Error("Failed to count new orders", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": orders, "newOrdersCount": newCount})
}

// createOrder is the storefront checkout action. The order is
// persisted first; notification delivery happens off the request path
// and its outcome never changes the response.
func (s *Server) createOrder(c *gin.Context) {
	var draft models.OrderDraft
	if err := c.BindJSON(&draft); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if draft.Quantity == 0 {
		draft.Quantity = 1
	}
	if errs := draft.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing required fields", "data": errs})
		return
	}

	order := draft.ToOrder()
	if err := s.stores.Orders.Create(c.Request.Context(), order); err != nil {
		s.logger.Error("Failed to create order", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to create order")
		return
	}

	if s.notifier != nil {
		s.notifier.OrderCreated(order)
	}

	respondMessage(c, http.StatusOK, order, "Order placed successfully")
}

func (s *Server) getOrder(c *gin.Context) {
	order, err := s.stores.Orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Order not found")
			return
		}
		s.logger.Error("Failed to get order", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to fetch order")
		return
	}
	respondData(c, http.StatusOK, order)
}

type updateOrderRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// updateOrderStatus moves the order to any of the six statuses. The
// dashboard may set any status from any other status, including out of
// a terminal one.
func (s *Server) updateOrderStatus(c *gin.Context) {
	var req updateOrderRequest
	if err := c.BindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !models.ValidStatus(req.Status) {
		respondError(c, http.StatusBadRequest, "Invalid status")
		return
	}

	order, err := s.stores.Orders.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, req.Notes)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Order not found")
			return
		}
		s.logger.Error("Failed to update order", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to update order")
		return
	}

	s.auditAction("update_order_status", order.ID, map[string]interface{}{"status": req.Status})

	respondData(c, http.StatusOK, order)
}

func (s *Server) deleteOrder(c *gin.Context) {
	id := c.Param("id")
	if err := s.stores.Orders.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Order not found")
			return
		}
		s.logger.Error("Failed to delete order", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to delete order")
		return
	}

	s.auditAction("delete_order", id, nil)

	respondMessage(c, http.StatusOK, nil, "Order deleted")
}

// notifyAdmin re-sends the admin notification for an order, used when
// the original delivery landed in the fallback log.
func (s *Server) notifyAdmin(c *gin.Context) {
	var req struct {
		OrderID string `json:"orderId"`
	}
	if err := c.BindJSON(&req); err != nil || req.OrderID == "" {
		respondError(c, http.StatusBadRequest, "Order id required")
		return
	}

	order, err := s.stores.Orders.Get(c.Request.Context(), req.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Order not found")
			return
		}
		s.logger.Error("Failed to get order", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to send notification")
		return
	}

	if s.notifier != nil {
		s.notifier.OrderCreated(order)
	}

	respondMessage(c, http.StatusOK, nil, "Admin notification queued")
}

// listNotifications returns fallback notification records newest-first,
// optionally filtered by order id, so the dashboard can show deliveries
// that never reached the inbox.
func (s *Server) listNotifications(c *gin.Context) {
	if s.audit == nil {
		respondData(c, http.StatusOK, []*repository.NotificationRecord{})
		return
	}

	limit := int64(50)
	if v, err := strconv.ParseInt(c.Query("limit"), 10, 64); err == nil && v > 0 {
		limit = v
	}

	recs, err := s.audit.GetNotifications(c.Request.Context(), c.Query("orderId"), limit)
	if err != nil {
		s.logger.Error("Failed to list notifications", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to fetch notifications")
		return
	}
	if recs == nil {
		recs = []*repository.NotificationRecord{}
	}
	respondData(c, http.StatusOK, recs)
}
