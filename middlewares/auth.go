package middlewares

import (
	"ecoloop/database"
	"ecoloop/models"
	"ecoloop/utils"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const CurrentUserKey = "current_user"

// JWTAuthMiddleware resolves the bearer token to an existing user and puts
// it on the context. A token whose user has since been deleted is rejected
// the same as a bad token.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			utils.AbortError(c, http.StatusUnauthorized, "Not authenticated")
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			utils.AbortError(c, http.StatusUnauthorized, "Invalid authorization header")
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			utils.AbortError(c, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		var user models.User
		if err := database.DB.Where("username = ?", claims.Username).First(&user).Error; err != nil {
			utils.AbortError(c, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		c.Set(CurrentUserKey, &user)
		c.Next()
	}
}

// CurrentUser returns the user set by JWTAuthMiddleware.
func CurrentUser(c *gin.Context) *models.User {
	return c.MustGet(CurrentUserKey).(*models.User)
}
