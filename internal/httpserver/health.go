package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// root describes the service and its endpoints.
// @Summary Service description
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (srv *HTTPServer) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "repo-mirror: GitHub push webhooks keep local mirrors in sync",
		"endpoints": gin.H{
			"POST /webhook": "GitHub push event delivery",
			"GET /health":   "liveness",
			"GET /ssh-key":  "deploy key for the git host",
		},
		"reposDir": srv.reposDir,
	})
}

// healthCheck handles liveness requests.
// @Summary Health Check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"reposDir":  srv.reposDir,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// sshKey returns the public half of the deploy key so an operator can
// register it with the git host.
// @Summary Deploy key
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /ssh-key [get]
func (srv *HTTPServer) sshKey(c *gin.Context) {
	if srv.deployKey == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "deploy key management is disabled"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"publicKey":   srv.deployKey.PublicKey,
		"fingerprint": srv.deployKey.Fingerprint,
	})
}
