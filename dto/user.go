package dto

import (
	"main/model"
)

type UserProfileResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

func ToUserProfileResponse(profile *model.UserProfile) UserProfileResponse {
	return UserProfileResponse{
		ID:        profile.ID,
		Email:     profile.Email,
		AvatarURL: profile.AvatarURL,
	}
}
