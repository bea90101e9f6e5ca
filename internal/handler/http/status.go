package http

import (
	"net/http"

	"github.com/MKhiriev/fastm8/internal/app"
	"github.com/MKhiriev/fastm8/internal/utils"
	"github.com/MKhiriev/fastm8/models"
)

func (h *Handler) status(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteJSON(w, models.StatusResponse{Status: app.MsgStatusActive}, http.StatusOK)
}
