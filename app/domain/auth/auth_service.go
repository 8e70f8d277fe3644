package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"edukasi.ai/edu-api-gateway/app/domain/user"
	"edukasi.ai/edu-api-gateway/app/interfaces/http/requests"
	"edukasi.ai/edu-api-gateway/app/interfaces/http/responses"
	"edukasi.ai/edu-api-gateway/config/environment_variables"
)

type AuthService struct {
	userService *user.UserService
}

func NewAuthService(userService *user.UserService) *AuthService {
	return &AuthService{
		userService,
	}
}

type UserContextKey string

const (
	UserContextKeyEntity UserContextKey = "UserContextKeyEntity"
	UserContextKeyEmail  UserContextKey = "UserContextKeyEmail"
)

func (s *AuthService) JWTAuthMiddleware() gin.HandlerFunc {
	return func(reqCtx *gin.Context) {
		email, ok := s.getUserEmailFromJWT(reqCtx)
		if !ok {
			reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
				Code: "c51e0ae2-3e0a-4c36-b16d-0c18f0fbbf2f",
			})
			return
		}

		SetUserEmailToContext(reqCtx, email)
		reqCtx.Next()
	}
}

// Resolve the authenticated user entity from the claim's email.
func (s *AuthService) RegisteredUserMiddleware() gin.HandlerFunc {
	return func(reqCtx *gin.Context) {
		ctx := reqCtx.Request.Context()
		email, ok := GetUserEmailFromContext(reqCtx)
		if !ok || email == "" {
			reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
				Code: "3a9f2c61-92d1-4f80-9a55-7e5cf3d41b08",
			})
			return
		}
		userEntity, err := s.userService.FindByEmail(ctx, email)
		if err != nil {
			reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
				Code: "6d5c94a7-1be3-4f2f-8a0f-4e61e9d2c713",
			})
			return
		}
		if userEntity == nil || !userEntity.Enabled {
			reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
				Code: "f3b8a6de-57c0-4b19-9d8e-2a14f6c0d5e9",
			})
			return
		}
		reqCtx.Set(string(UserContextKeyEntity), userEntity)
		reqCtx.Next()
	}
}

func (s *AuthService) getUserEmailFromJWT(reqCtx *gin.Context) (string, bool) {
	tokenString, ok := requests.GetTokenFromBearer(reqCtx)
	if !ok {
		return "", false
	}
	token, err := jwt.ParseWithClaims(tokenString, &UserClaim{}, func(token *jwt.Token) (interface{}, error) {
		return environment_variables.EnvironmentVariables.JWT_SECRET, nil
	})
	if err != nil || !token.Valid {
		return "", false
	}
	claims, ok := token.Claims.(*UserClaim)
	if !ok {
		return "", false
	}
	return claims.Email, true
}

func GetUserFromContext(reqCtx *gin.Context) (*user.User, bool) {
	v, ok := reqCtx.Get(string(UserContextKeyEntity))
	if !ok {
		return nil, false
	}
	return v.(*user.User), true
}

func SetUserToContext(reqCtx *gin.Context, user *user.User) {
	reqCtx.Set(string(UserContextKeyEntity), user)
}

func GetUserEmailFromContext(reqCtx *gin.Context) (string, bool) {
	email, ok := reqCtx.Get(string(UserContextKeyEmail))
	if !ok {
		return "", false
	}
	v, ok := email.(string)
	if !ok {
		return "", false
	}
	return v, true
}

func SetUserEmailToContext(reqCtx *gin.Context, v string) {
	reqCtx.Set(string(UserContextKeyEmail), v)
}
