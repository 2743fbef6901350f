package utils

import (
	"log"
	"os"
)

var JWTSecretKey string

// InitJWT loads the shared secret used to verify tokens minted by the
// identity provider. This service never issues tokens itself.
func InitJWT() {
	// For tests, use a default value if the environment variable isn't set
	if os.Getenv("GO_ENV") == "test" {
		if os.Getenv("JWT_SECRET_KEY") == "" {
			os.Setenv("JWT_SECRET_KEY", "test_secret_key")
		}
	}

	JWTSecretKey = os.Getenv("JWT_SECRET_KEY")
	if JWTSecretKey == "" {
		log.Fatal("JWT Secret Key not set")
	}
}
