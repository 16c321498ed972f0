package api

import (
	"encoding/json"
	"net/http"

	httperrors "officina/internal/errors"
	"officina/internal/service"
)

type AdminAuthHandler struct {
	service service.AdminAuthService
}

func NewAdminAuthHandler(svc service.AdminAuthService) *AdminAuthHandler {
	return &AdminAuthHandler{service: svc}
}

// Login handles POST /admin/login.
func (h *AdminAuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	token, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		httperrors.ErrUnauthorized("Invalid credentials").WriteJSON(w)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Token: token})
}
