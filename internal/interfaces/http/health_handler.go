package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
)

// PingFunc comprueba la conexión a la base de datos.
type PingFunc func(ctx context.Context) error

const healthTimeout = 2 * time.Second

// Health godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Failure      503  {object}  dto.HealthResponse
// @Router       /health [get]
func Health(appName string, ping PingFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out := dto.HealthResponse{Status: "ok", App: appName, DB: "up"}
		if ping == nil {
			return c.JSON(out)
		}
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()
		if err := ping(ctx); err != nil {
			log.Warn().Err(err).Msg("health: base de datos no disponible")
			out.Status, out.DB = "degraded", "down"
			return c.Status(fiber.StatusServiceUnavailable).JSON(out)
		}
		return c.JSON(out)
	}
}
