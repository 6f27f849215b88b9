package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"topzone/helpers"
	"topzone/models"
	"topzone/services"
	"topzone/storage"
	"topzone/utils/logger"
)

func (ctl *Controller) CreateOrder(c *fiber.Ctx) error {
	var req services.CreateOrderInput
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.UserID == "" {
		return helpers.JSONError(c, "USER_ID_REQUIRED")
	}
	if req.GameID == "" {
		return helpers.JSONError(c, "GAME_ID_REQUIRED")
	}
	if req.PackageID == "" {
		return helpers.JSONError(c, "PACKAGE_ID_REQUIRED")
	}
	if req.PaymentMethod == "" {
		return helpers.JSONError(c, "PAYMENT_METHOD_REQUIRED")
	}
	if req.TotalAmount < 0 {
		return helpers.JSONError(c, "INVALID_TOTAL_AMOUNT")
	}

	order, err := ctl.orders.CreateOrder(req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrGameNotFound):
			return helpers.JSONError(c, "GAME_NOT_FOUND")
		case errors.Is(err, services.ErrPackageNotFound):
			return helpers.JSONError(c, "PACKAGE_NOT_FOUND")
		case errors.Is(err, services.ErrAmountMismatch):
			return helpers.JSONError(c, "AMOUNT_MISMATCH")
		}
		logger.Errorf("create order: %v", err)
		return helpers.JSONError(c, "FAILED_TO_CREATE_ORDER")
	}

	logger.Infof("Order %s created: %s via %s", order.OrderID, helpers.FormatIDR(order.TotalAmount), order.PaymentMethod)

	return helpers.JSONCreated(c, "Order created", fiber.Map{
		"order":                order,
		"total_formatted":      helpers.FormatIDR(order.TotalAmount),
		"payment_instructions": paymentInstructions(order.PaymentMethod, order.TotalAmount),
	})
}

// GetOrder is the status/detail view: the order plus its game and
// package, joined here. A dangling game or package reference comes
// back null rather than failing the whole lookup.
func (ctl *Controller) GetOrder(c *fiber.Ctx) error {
	orderID := c.Params("orderId")
	if orderID == "" {
		return helpers.JSONError(c, "ORDER_ID_REQUIRED")
	}

	order, err := ctl.orders.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return helpers.JSONNotFound(c, "ORDER_NOT_FOUND")
		}
		return helpers.JSONError(c, "FAILED_TO_GET_ORDER")
	}

	var game *models.Game
	if g, err := ctl.store.GetGameByID(order.GameID); err == nil {
		game = &g
	}
	var pkg *models.Package
	if p, err := ctl.store.GetPackageByID(order.PackageID); err == nil {
		pkg = &p
	}

	return helpers.JSONSuccess(c, "Order retrieved", fiber.Map{
		"order":           order,
		"game":            game,
		"package":         pkg,
		"total_formatted": helpers.FormatIDR(order.TotalAmount),
	})
}

// UpdateOrderStatus is the manual trigger for status transitions,
// behind admin HMAC auth. The store overwrites unconditionally; only
// the status vocabulary is enforced here.
func (ctl *Controller) UpdateOrderStatus(c *fiber.Ctx) error {
	orderID := c.Params("orderId")
	if orderID == "" {
		return helpers.JSONError(c, "ORDER_ID_REQUIRED")
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.Status == "" {
		return helpers.JSONError(c, "STATUS_REQUIRED")
	}

	order, err := ctl.orders.UpdateStatus(orderID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			return helpers.JSONError(c, "INVALID_STATUS")
		case errors.Is(err, storage.ErrNotFound):
			return helpers.JSONNotFound(c, "ORDER_NOT_FOUND")
		}
		return helpers.JSONError(c, "FAILED_TO_UPDATE_STATUS")
	}

	logger.Infof("Order %s status set to %s", order.OrderID, order.Status)
	return helpers.JSONSuccess(c, "Order status updated", order)
}
