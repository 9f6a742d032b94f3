package handlers

import (
	"log"
	"net/http"

	"github.com/IamDalemark/energy-consumption-frontend/services"
	"github.com/gin-gonic/gin"
)

type DatasetHandler struct {
	backend *services.BackendClient
}

func NewDatasetHandler(backend *services.BackendClient) *DatasetHandler {
	return &DatasetHandler{backend: backend}
}

// GetDataset proxies one dataset page to the backend and relays its JSON body
// unchanged.
func (h *DatasetHandler) GetDataset(c *gin.Context) {
	p := ParsePagination(c)

	body, err := h.backend.DatasetRaw(c.Request.Context(), p.Page, p.Limit)
	if err != nil {
		proxyFailures.WithLabelValues("dataset").Inc()
		log.Printf("dataset proxy failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch dataset"})
		return
	}

	proxyRequests.WithLabelValues("dataset").Inc()
	c.Data(http.StatusOK, "application/json", body)
}
