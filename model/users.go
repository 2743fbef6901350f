package model

// UserProfile mirrors the identity provider's view of the current user.
// Identity is managed externally; this codebase only reads it from verified
// token claims to render user chrome and scope queries.
type UserProfile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
}
