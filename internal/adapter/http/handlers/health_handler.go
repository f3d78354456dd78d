package handlers

import (
	"context"
	"net/http"

	response "protese_lab/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports whether the gateway is backed by a remote store.
// The flag drives a UI indicator only; the API works either way.

type HealthHandler struct {
	storage string
	probe   func(ctx context.Context) error
}

// NewHealthHandler takes the storage mode label ("dynamodb" or "memory") and
// an optional connectivity probe for the remote store.
func NewHealthHandler(storage string, probe func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{storage: storage, probe: probe}
}

func (h *HealthHandler) GetHealth(c *gin.Context) {
	remote := false
	if h.probe != nil {
		remote = h.probe(c.Request.Context()) == nil
	}
	c.JSON(http.StatusOK, response.HealthResponse{
		Status:  "ok",
		Remote:  remote,
		Storage: h.storage,
	})
}
