package middlewares

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"os"

	"github.com/gofiber/fiber/v2"
)

func sign(secret, data string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

// AdminAuth protects the manual status-update route. The caller signs
// the order reference from the path with ADMIN_API_SECRET and sends
// the hex digest in X-Admin-Signature.
func AdminAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		secret := os.Getenv("ADMIN_API_SECRET")
		if secret == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "ADMIN_AUTH_NOT_CONFIGURED",
			})
		}

		given := c.Get("X-Admin-Signature")
		expected := sign(secret, c.Params("orderId"))

		if !hmac.Equal([]byte(given), []byte(expected)) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "INVALID_SIGNATURE",
			})
		}

		return c.Next()
	}
}

// CallbackAuth protects the payment-gateway callback. The gateway
// signs order_id + transaction_status with the shared
// PAYMENT_CALLBACK_SECRET and carries the digest in the body.
func CallbackAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			OrderID           string `json:"order_id"`
			TransactionStatus string `json:"transaction_status"`
			Signature         string `json:"signature"`
		}

		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "INVALID_JSON",
			})
		}

		secret := os.Getenv("PAYMENT_CALLBACK_SECRET")
		if secret == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "CALLBACK_AUTH_NOT_CONFIGURED",
			})
		}

		expected := sign(secret, body.OrderID+body.TransactionStatus)
		if !hmac.Equal([]byte(body.Signature), []byte(expected)) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "INVALID_SIGNATURE",
			})
		}

		return c.Next()
	}
}
