package v1

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rifaapp/rifa-api/internal/api/handler/v1/response"
	"github.com/rifaapp/rifa-api/internal/config"
)

// Pinger reports whether the database is reachable.
type Pinger func(ctx context.Context) error

type HealthHandler struct {
	conf *config.APIConfig
	ping Pinger
}

func NewHealthHandler(conf *config.APIConfig, ping Pinger) *HealthHandler {
	return &HealthHandler{
		conf: conf,
		ping: ping,
	}
}

// HandleRoot godoc
// @Summary  Service banner
// @Tags     health
// @Produce  json
// @Success  200  {object}  response.ServiceResponse
// @Router   / [get]
func (h *HealthHandler) HandleRoot(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.ServiceResponse{OK: true, Service: h.conf.ServiceName})
}

// HandleHealth godoc
// @Summary  Liveness and database check
// @Tags     health
// @Produce  json
// @Success  200  {object}  response.HealthResponse
// @Failure  500  {object}  response.Err
// @Router   /health [get]
func (h *HealthHandler) HandleHealth(ctx *gin.Context) {
	if h.ping != nil {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		if err := h.ping(pingCtx); err != nil {
			response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("HandleHealth -> h.ping -> %w", err)))
			return
		}
	}

	ctx.JSON(http.StatusOK, response.HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleVersion godoc
// @Summary  Running version
// @Tags     health
// @Produce  json
// @Success  200  {object}  response.VersionResponse
// @Router   /version [get]
func (h *HealthHandler) HandleVersion(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.VersionResponse{Version: h.conf.Version})
}
