package get_platforms

import (
	"net/http"

	"github.com/avdm/GameClub-BookingService/internal/api/handlers"
)

type Handler struct {
	catalog PlatformCatalog
	logger  Logger
}

func NewHandler(catalog PlatformCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/platforms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	platforms := h.catalog.Platforms()
	addons := h.catalog.Addons()

	h.logger.Info("GET /platforms - Catalog retrieved: platforms=%d, addons=%d",
		len(platforms), len(addons))
	handlers.RespondJSON(w, http.StatusOK, FromDomainCatalog(platforms, addons))
}
