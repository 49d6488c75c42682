package http

import (
	"net/http"

	"github.com/MKhiriev/eye-test-server/internal/utils"
	"github.com/MKhiriev/eye-test-server/models"
)

// ping is a liveness probe. It carries no authentication and touches no
// storage, so load balancers can poll it cheaply.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: "pong"}, http.StatusOK)
}
