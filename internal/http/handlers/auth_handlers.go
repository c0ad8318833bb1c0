package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/storefront/internal/auth"
	"github.com/rogerio-castellano/storefront/internal/models"
)

// LoginHandler godoc
// @Summary Exchange the admin password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "Admin password"
// @Success 200 {object} LoginResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Unauthorized"
// @Router /auth/login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var credentials CredentialsRequest
	if err := readJSON(w, r, &credentials); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if !auth.CheckPassword(adminPasswordHash, credentials.Password) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateAdminToken()
	if err != nil {
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, LoginResult{Token: token})
}

// GetAllOrdersHandler godoc
// @Summary Orders across every active session
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} SessionOrders
// @Router /admin/orders [get]
func GetAllOrdersHandler(w http.ResponseWriter, r *http.Request) {
	resp := []SessionOrders{}
	for _, s := range sessions.All() {
		var orders []OrderResponse
		s.View(func(state *models.AppState) {
			orders = orderResponses(state.Orders)
		})
		if len(orders) > 0 {
			resp = append(resp, SessionOrders{SessionID: s.ID, Orders: orders})
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
