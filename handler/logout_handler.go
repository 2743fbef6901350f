package handler

import (
	"log"
	"strings"

	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// LogoutHandler revokes the caller's access token. The session itself lives
// with the identity provider; all we do is make sure this token stops
// working before its natural expiry.
func LogoutHandler(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	if err := services.BlacklistToken(tokenString); err != nil {
		log.Printf("Failed to blacklist token on logout: %v", err)
		utils.InternalError(c, "Failed to log out")
		return
	}

	utils.Success(c, gin.H{"message": "Logged out successfully"})
}
