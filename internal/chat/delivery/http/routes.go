package http

import (
	"github.com/gin-gonic/gin"

	"ess-chatbot/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Chat turns are rate limited per session; the catalog listing is cheap and
// stays open.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("", mw.RateLimit(), h.Process)
	rg.GET("/intents", h.Intents)
}
