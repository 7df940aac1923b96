package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"katechon/internal/commands"
	"katechon/internal/config"
)

// GET /health
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// GET /config
func configHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"server": gin.H{
				"host":    cfg.Server.Host,
				"port":    cfg.Server.Port,
				"subpath": cfg.Server.Subpath,
			},
			"ollama": cfg.Ollama,
		})
	}
}

// GET /feeds
func feedsHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		feeds := cfg.Feeds
		if feeds == nil {
			feeds = []config.FeedSource{}
		}
		c.JSON(http.StatusOK, gin.H{"feeds": feeds})
	}
}

// GET /commands
func listCommandsHandler(registry *commands.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"commands": registry.Names()})
	}
}
