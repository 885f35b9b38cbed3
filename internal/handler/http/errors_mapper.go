package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-task-manager/internal/app"
	"github.com/MKhiriev/go-task-manager/internal/utils"
	"github.com/MKhiriev/go-task-manager/models"
)

var errorStatusMap = map[error]int{
	ErrCrossOriginRejected: http.StatusForbidden,
	ErrPrincipalRequired:   http.StatusUnauthorized,
	ErrRouteNotFound:       http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
}

// statusFromError maps err to a status code and the message safe to show
// to the client. Anything unknown is a 500 with a generic message.
func statusFromError(err error) (int, string) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target.Error()
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError writes the pipeline's JSON error body for err.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status, message := statusFromError(err)
	body := models.ErrorResponse{
		Status:  status,
		Message: message,
		TraceID: w.Header().Get(traceIDHeader),
	}
	if _, writeErr := utils.WriteJSON(w, body, status); writeErr != nil {
		h.logger.Err(writeErr).Msg("error writing error response")
	}
}
