package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"topzone/helpers"
)

// PaymentMethod is a supported checkout option. Instructions are
// static display text; no gateway is called during checkout.
type PaymentMethod struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

var paymentMethods = []PaymentMethod{
	{ID: "qris", Name: "QRIS", Icon: "💳"},
	{ID: "dana", Name: "DANA", Icon: "💰"},
	{ID: "ovo", Name: "OVO", Icon: "📱"},
	{ID: "bank_transfer", Name: "Bank Transfer", Icon: "🏦"},
}

func (ctl *Controller) ListPaymentMethods(c *fiber.Ctx) error {
	return helpers.JSONSuccess(c, "Payment methods retrieved", paymentMethods)
}

func paymentMethodName(id string) string {
	for _, m := range paymentMethods {
		if m.ID == id {
			return m.Name
		}
	}
	return id
}

func paymentInstructions(method string, total int64) []string {
	amount := helpers.FormatIDR(total)

	switch method {
	case "bank_transfer":
		return []string{
			"Bank Transfer Details:",
			"Bank: Bank Mandiri",
			"Account: 123-456-789-0",
			"Name: TopZoneID",
			"Amount: " + amount,
		}
	case "qris":
		return []string{
			"QRIS Payment:",
			"Scan the QR code with your banking app or e-wallet",
			"Amount: " + amount,
		}
	case "dana", "ovo":
		name := paymentMethodName(method)
		return []string{
			name + " Payment:",
			fmt.Sprintf("You will receive a payment notification in your %s app", name),
			"Amount: " + amount,
		}
	}
	return []string{"Amount: " + amount}
}
