package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PingResponse es la respuesta del healthcheck.
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}

// addPingRoutes registers the healthcheck endpoint.
//
// @Summary      Healthcheck
// @Description  Returns pong when the service is up.
// @Tags         health
// @Produce      json
// @Success      200 {object} PingResponse
// @Router       /ping [get]
func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	})
}
