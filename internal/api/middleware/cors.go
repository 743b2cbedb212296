package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ConfigCORS allows the configured comma-separated origins, or everything
// when the list is "*" or empty.
func ConfigCORS(allowedDomains string) gin.HandlerFunc {
	conf := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if allowedDomains == "" || allowedDomains == "*" {
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = strings.Split(allowedDomains, ",")
	}

	return cors.New(conf)
}
