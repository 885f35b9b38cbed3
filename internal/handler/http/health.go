package http

import (
	"net/http"

	"github.com/MKhiriev/go-task-manager/internal/auth"
	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/internal/utils"
	"github.com/MKhiriev/go-task-manager/models"
)

// health is the liveness check. It touches nothing downstream and always
// answers 200.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	report := models.HealthReport{
		Status:      models.HealthStatusHealthy,
		Timestamp:   h.now().UTC(),
		Environment: h.environment,
	}

	if _, err := utils.WriteJSON(w, report, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing health report")
	}
}

// currentPrincipal returns the authenticated caller.
func (h *Handler) currentPrincipal(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		h.writeError(w, ErrPrincipalRequired)
		return
	}

	if _, err := utils.WriteJSON(w, principal, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing principal")
	}
}
