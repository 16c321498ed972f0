package api

import (
	"net/http"

	"github.com/rs/zerolog"

	httperrors "officina/internal/errors"
	"officina/internal/logger"
	"officina/internal/service"
)

// AdminHandler exposes the protected catalog endpoints.
type AdminHandler struct {
	Provider service.CatalogReloader
	log      zerolog.Logger
}

func NewAdminHandler(provider service.CatalogReloader) *AdminHandler {
	return &AdminHandler{
		Provider: provider,
		log:      logger.New("admin"),
	}
}

// GetCatalog handles GET /admin/catalog.
func (h *AdminHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Provider.Catalog())
}

// ReloadCatalog handles POST /admin/catalog/reload: force a re-read from the
// configured source. The cached catalog stays in service when the source
// fails.
func (h *AdminHandler) ReloadCatalog(w http.ResponseWriter, r *http.Request) {
	if err := h.Provider.Reload(); err != nil {
		h.log.Error().Err(err).Msg("catalog reload failed")
		httperrors.ErrBadGateway("Could not reload catalog: " + err.Error()).WriteJSON(w)
		return
	}
	c := h.Provider.Catalog()
	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "Catalog reloaded",
		"services":  len(c.Services),
		"repairs":   len(c.Repairs),
		"workshops": len(c.Workshops),
	})
}
