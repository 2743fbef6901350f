package handler

import (
	"main/dto"
	"main/model"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// GetUserProfileHandler returns the current user as the identity provider
// sees them. Identity lives in the verified token claims; there is no local
// users table to consult.
func GetUserProfileHandler(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Unauthorized")
		return
	}

	profile := &model.UserProfile{
		ID:        userID.(string),
		Email:     c.GetString("user_email"),
		AvatarURL: c.GetString("user_avatar_url"),
	}

	utils.Success(c, dto.ToUserProfileResponse(profile))
}
