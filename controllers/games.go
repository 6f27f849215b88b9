package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"topzone/helpers"
	"topzone/storage"
)

func (ctl *Controller) ListGames(c *fiber.Ctx) error {
	games, err := ctl.store.GetGames()
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_LIST_GAMES")
	}
	return helpers.JSONSuccess(c, "Games retrieved", games)
}

// GetGame resolves one game. The storefront looks games up by slug on
// the catalog pages and by internal id on the checkout page, both
// against the same path, so slug is tried first and id second.
func (ctl *Controller) GetGame(c *fiber.Ctx) error {
	key := c.Params("slug")
	if key == "" {
		return helpers.JSONError(c, "SLUG_REQUIRED")
	}

	game, err := ctl.store.GetGameBySlug(key)
	if errors.Is(err, storage.ErrNotFound) {
		game, err = ctl.store.GetGameByID(key)
	}
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return helpers.JSONNotFound(c, "GAME_NOT_FOUND")
		}
		return helpers.JSONError(c, "FAILED_TO_GET_GAME")
	}
	return helpers.JSONSuccess(c, "Game retrieved", game)
}
