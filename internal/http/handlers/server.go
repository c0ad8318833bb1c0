package handlers

import (
	"github.com/rogerio-castellano/storefront/internal/catalog"
	"github.com/rogerio-castellano/storefront/internal/promo"
	"github.com/rogerio-castellano/storefront/internal/session"
)

var (
	cat               *catalog.Catalog
	promos            promo.Table
	sessions          *session.Manager
	adminPasswordHash string
)

func SetCatalog(c *catalog.Catalog) {
	cat = c
}

func SetPromoTable(t promo.Table) {
	promos = t
}

func SetSessionManager(m *session.Manager) {
	sessions = m
}

func SetAdminPasswordHash(hash string) {
	adminPasswordHash = hash
}
