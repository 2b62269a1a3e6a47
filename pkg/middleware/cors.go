package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the listed origins; "*" allows any origin.
func CORSMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", "X-Requested-With", "X-Trace-ID"},
		ExposeHeaders: []string{"X-Trace-ID"},
	}

	allowed := trimOrigins(origins)
	if len(allowed) == 0 || contains(allowed, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowed
		cfg.AllowCredentials = true
	}

	return cors.New(cfg)
}

func trimOrigins(origins []string) []string {
	var out []string
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func contains(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}
