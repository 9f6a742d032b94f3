package handlers

import (
	"log"
	"net/http"

	"github.com/IamDalemark/energy-consumption-frontend/models"
	"github.com/IamDalemark/energy-consumption-frontend/services"
	"github.com/gin-gonic/gin"
)

type PredictHandler struct {
	backend *services.BackendClient
}

func NewPredictHandler(backend *services.BackendClient) *PredictHandler {
	return &PredictHandler{backend: backend}
}

// Predict validates presence of the four input fields, forwards them to the
// backend and returns the normalized result.
func (h *PredictHandler) Predict(c *gin.Context) {
	var req models.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if req.Missing() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	result, err := h.backend.Predict(c.Request.Context(), req.Input())
	if err != nil {
		proxyFailures.WithLabelValues("predict").Inc()
		log.Printf("predict proxy failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate prediction"})
		return
	}

	proxyRequests.WithLabelValues("predict").Inc()
	c.JSON(http.StatusOK, result)
}
