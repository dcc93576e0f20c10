package handler

import (
	"net/http"

	"github.com/mcoot/mtarp-portal/internal/api/response"
)

// Health reports that the server is up
func Health(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
