package http

import (
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"
)

// ServerConfig parámetros de la app Fiber.
type ServerConfig struct {
	AppName     string
	CORSOrigins string
	// DocsPath swagger.json servido en /docs; vacío o inexistente desactiva la UI.
	DocsPath string
}

// NewApp crea la app Fiber con el manejador de errores y los middlewares comunes.
func NewApp(cfg ServerConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ErrorHandler: ErrorHandler,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(RequestLogger())
	app.Use(recover.New())

	if cfg.CORSOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: cfg.CORSOrigins,
			AllowMethods: "GET,POST,PATCH,OPTIONS",
			AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
		}))
	}

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.DocsPath != "" {
		if _, err := os.Stat(cfg.DocsPath); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.DocsPath,
				Path:     "docs",
				Title:    cfg.AppName,
			}))
		} else {
			log.Warn().Str("path", cfg.DocsPath).Msg("swagger: archivo no encontrado, /docs desactivado")
		}
	}
	return app
}
