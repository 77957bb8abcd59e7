package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/room-relay/internal/config"
	"github.com/vovakirdan/room-relay/internal/core"
	"github.com/vovakirdan/room-relay/internal/metrics"
)

// NewServer builds the HTTP server: the WebSocket bridge, health and stats
// endpoints, Prometheus metrics, and optionally the static browser client.
func NewServer(hub *core.Hub, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(logger))

	router.GET("/health", healthHandler)
	router.GET("/ws", gin.WrapH(NewWSHandler(hub, cfg.MaxMsgsPerSec, cfg.MsgBurst, logger)))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	stats := NewStatsHandlers(hub, logger)
	api := router.Group("/api")
	api.GET("/stats", stats.Stats)

	if cfg.PublicDir != "" {
		// Browser client at the root, without shadowing the routes above.
		router.NoRoute(gin.WrapH(stdhttp.FileServer(stdhttp.Dir(cfg.PublicDir))))
	}

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}
