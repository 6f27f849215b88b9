package routes

import (
	"github.com/gofiber/fiber/v2"

	"topzone/controllers"
	"topzone/middlewares"
)

func Setup(app *fiber.App, ctl *controllers.Controller) {
	api := app.Group("/api")

	api.Get("/games", ctl.ListGames)
	api.Get("/games/:slug", ctl.GetGame)
	api.Get("/games/:id/packages", ctl.ListGamePackages)
	api.Get("/packages/:id", ctl.GetPackage)

	api.Post("/orders", ctl.CreateOrder)
	api.Get("/orders/:orderId", ctl.GetOrder)
	api.Patch("/orders/:orderId/status", middlewares.AdminAuth(), ctl.UpdateOrderStatus)

	api.Get("/payment-methods", ctl.ListPaymentMethods)
	api.Get("/testimonials", ctl.ListTestimonials)
	api.Get("/faqs", ctl.ListFaqs)

	// payment gateway callback
	app.Post("/callback/payment", middlewares.CallbackAuth(), ctl.PaymentCallback)
}
