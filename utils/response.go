package utils

import "github.com/gin-gonic/gin"

// Error writes a client-facing failure as {"detail": msg} with the given
// HTTP status.
func Error(c *gin.Context, status int, detail string) {
	c.JSON(status, gin.H{"detail": detail})
}

// AbortError is Error for middleware, stopping the handler chain.
func AbortError(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": detail})
}
