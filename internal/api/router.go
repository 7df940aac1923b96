package api

import (
	"github.com/gin-gonic/gin"
	"katechon/internal/commands"
	"katechon/internal/config"
)

func SetupRouter(cfg *config.Config, registry *commands.Registry) *gin.Engine {
	r := gin.Default()
	subpath := cfg.Server.Subpath // "" or a prefix starting with '/'

	group := r.Group(subpath)
	{
		group.GET("/health", healthHandler)
		group.GET("/config", configHandler(cfg))
		group.GET("/feeds", feedsHandler(cfg))

		// --- Commands ---
		group.GET("/commands", listCommandsHandler(registry))
		group.POST("/invoke/:command", InvokeHandler(registry))

		// --- WebSocket invoke channel ---
		group.GET("/ws", WSInvokeHandler(registry))
	}
	return r
}
