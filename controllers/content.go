package controllers

import (
	"github.com/gofiber/fiber/v2"

	"topzone/helpers"
)

func (ctl *Controller) ListTestimonials(c *fiber.Ctx) error {
	reviews, err := ctl.store.GetTestimonials()
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_LIST_TESTIMONIALS")
	}
	return helpers.JSONSuccess(c, "Testimonials retrieved", reviews)
}

func (ctl *Controller) ListFaqs(c *fiber.Ctx) error {
	faqs, err := ctl.store.GetFaqs()
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_LIST_FAQS")
	}
	return helpers.JSONSuccess(c, "FAQs retrieved", faqs)
}
