package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"edukasi.ai/edu-api-gateway/config/environment_variables"
)

const RefreshTokenKey = "edu_refresh_token"
const OAuthStateKey = "edu_oauth_state"

type UserClaim struct {
	Email string
	Name  string
	jwt.RegisteredClaims
}

func CreateJwtSignedString(u UserClaim) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, u)
	return token.SignedString(environment_variables.EnvironmentVariables.JWT_SECRET)
}
