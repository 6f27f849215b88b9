package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"topzone/helpers"
	"topzone/services"
	"topzone/storage"
	"topzone/utils/logger"
)

// PaymentCallback is the gateway-facing trigger for order status
// transitions. Unknown transaction states are acknowledged with 200 so
// the gateway stops retrying, but the order is left untouched.
func (ctl *Controller) PaymentCallback(c *fiber.Ctx) error {
	var req struct {
		OrderID           string `json:"order_id"`
		TransactionStatus string `json:"transaction_status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.OrderID == "" || req.TransactionStatus == "" {
		return helpers.JSONError(c, "ORDER_ID_AND_STATUS_REQUIRED")
	}

	status, ok := services.GatewayStatus(req.TransactionStatus)
	if !ok {
		logger.Infof("Callback for %s ignored: transaction_status=%s", req.OrderID, req.TransactionStatus)
		return helpers.JSONSuccess(c, "Callback acknowledged", nil)
	}

	order, err := ctl.orders.UpdateStatus(req.OrderID, status)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return helpers.JSONNotFound(c, "ORDER_NOT_FOUND")
		}
		logger.Errorf("callback %s: %v", req.OrderID, err)
		return helpers.JSONError(c, "FAILED_TO_UPDATE_STATUS")
	}

	logger.Infof("Order %s moved to %s by payment callback", order.OrderID, order.Status)
	return helpers.JSONSuccess(c, "Callback processed", order)
}
