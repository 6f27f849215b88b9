package controllers

import (
	"topzone/services"
	"topzone/storage"
)

// Controller holds the injected store and order workflow. Handlers
// hang off it so the storage backend is swappable without package
// globals.
type Controller struct {
	store  storage.Storage
	orders *services.OrderService
}

func New(store storage.Storage, orders *services.OrderService) *Controller {
	return &Controller{store: store, orders: orders}
}
