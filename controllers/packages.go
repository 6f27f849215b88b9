package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"topzone/helpers"
	"topzone/storage"
)

// ListGamePackages returns the credit bundles for one game, in the
// order they were seeded. An unknown game id yields an empty list, not
// an error; the game itself is fetched separately.
func (ctl *Controller) ListGamePackages(c *fiber.Ctx) error {
	gameID := c.Params("id")
	if gameID == "" {
		return helpers.JSONError(c, "GAME_ID_REQUIRED")
	}

	packages, err := ctl.store.GetPackagesByGameID(gameID)
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_LIST_PACKAGES")
	}
	return helpers.JSONSuccess(c, "Packages retrieved", packages)
}

func (ctl *Controller) GetPackage(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helpers.JSONError(c, "PACKAGE_ID_REQUIRED")
	}

	pkg, err := ctl.store.GetPackageByID(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return helpers.JSONNotFound(c, "PACKAGE_NOT_FOUND")
		}
		return helpers.JSONError(c, "FAILED_TO_GET_PACKAGE")
	}
	return helpers.JSONSuccess(c, "Package retrieved", pkg)
}
