package middleware

import (
	"net"

	"bookstore-catalog/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ClientIPKey is where ClientIP stores the resolved address.
const ClientIPKey = "client_ip"

// TrustProxies tells the engine which peers may set X-Forwarded-For and
// X-Real-IP. With none trusted the peer address is the client, so a caller
// cannot pick its own rate limit bucket. A bad list trusts nobody.
func TrustProxies(router *gin.Engine, proxies []string) {
	if err := router.SetTrustedProxies(proxies); err != nil {
		logger.Warn("Invalid trusted proxy list, forwarding headers ignored", err)
		_ = router.SetTrustedProxies(nil)
	}
}

// ClientIP resolves the caller's address once per request so the logger
// and the rate limiter agree on who the client is.
//
// Usage:
//
//	middleware.TrustProxies(router, cfg.HTTP.TrustedProxies)
//	router.Use(middleware.ClientIP())
func ClientIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ClientIPKey, ExtractClientIP(c))
		c.Next()
	}
}

// ExtractClientIP returns the client address. Forwarding headers are only
// read when the peer is a trusted proxy; X-Forwarded-For is then walked
// from the right, skipping trusted hops.
func ExtractClientIP(c *gin.Context) string {
	if ip := c.ClientIP(); isValidIP(ip) {
		return ip
	}
	return "127.0.0.1"
}

// clientIPOf returns the address stored by ClientIP, or resolves it when
// the middleware is not installed.
func clientIPOf(c *gin.Context) string {
	if ip := c.GetString(ClientIPKey); ip != "" {
		return ip
	}
	return ExtractClientIP(c)
}

func isValidIP(ip string) bool {
	return ip != "" && net.ParseIP(ip) != nil
}
