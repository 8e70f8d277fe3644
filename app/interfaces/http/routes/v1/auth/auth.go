package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"edukasi.ai/edu-api-gateway/app/domain/auth"
	"edukasi.ai/edu-api-gateway/app/domain/user"
	"edukasi.ai/edu-api-gateway/app/interfaces/http/responses"
	"edukasi.ai/edu-api-gateway/app/interfaces/http/routes/v1/auth/google"
	"edukasi.ai/edu-api-gateway/config/environment_variables"
)

type AuthRoute struct {
	google      *google.GoogleAuthAPI
	authService *auth.AuthService
	userService *user.UserService
}

func NewAuthRoute(google *google.GoogleAuthAPI, authService *auth.AuthService, userService *user.UserService) *AuthRoute {
	return &AuthRoute{
		google,
		authService,
		userService,
	}
}

func (authRoute *AuthRoute) RegisterRouter(router gin.IRouter) {
	authRouter := router.Group("/auth")
	authRouter.GET("/refresh-token", authRoute.RefreshToken)
	authRouter.GET("/me",
		authRoute.authService.JWTAuthMiddleware(),
		authRoute.authService.RegisteredUserMiddleware(),
		authRoute.GetMe,
	)
	authRouter.PUT("/grade-level",
		authRoute.authService.JWTAuthMiddleware(),
		authRoute.authService.RegisteredUserMiddleware(),
		authRoute.SetGradeLevel,
	)
	authRoute.google.RegisterRouter(authRouter)
}

type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type GetMeResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	GradeLevel string `json:"grade_level"`
}

func (authRoute *AuthRoute) GetMe(reqCtx *gin.Context) {
	userEntity, _ := auth.GetUserFromContext(reqCtx)
	reqCtx.JSON(http.StatusOK, GetMeResponse{
		ID:         userEntity.PublicID,
		Email:      userEntity.Email,
		Name:       userEntity.Name,
		GradeLevel: userEntity.GradeLevel,
	})
}

type SetGradeLevelRequest struct {
	GradeLevel string `json:"grade_level" binding:"required"`
}

func (authRoute *AuthRoute) SetGradeLevel(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()
	userEntity, _ := auth.GetUserFromContext(reqCtx)

	var req SetGradeLevelRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code: "2c9be015-73df-4a68-b1f4-0e58da72c693",
		})
		return
	}
	if !user.ValidGradeLevel(req.GradeLevel) {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "b60f4e2a-8d17-4c95-a3e0-75c1f9d8246b",
			Error: "grade level must be one of SD, SMP, SMA",
		})
		return
	}
	if err := authRoute.userService.SetGradeLevel(ctx, userEntity.ID, req.GradeLevel); err != nil {
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "4a8e26d0-cf91-4573-b8a6-1d30e7f5c924",
			Error: err.Error(),
		})
		return
	}
	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[string]{
		Status: responses.ResponseCodeOk,
		Result: req.GradeLevel,
	})
}

func (authRoute *AuthRoute) RefreshToken(reqCtx *gin.Context) {
	refreshTokenString, err := reqCtx.Cookie(auth.RefreshTokenKey)
	if err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
			Code:  "d17f5a83-40be-4c2d-96a1-8f30c6e2b795",
			Error: err.Error(),
		})
		return
	}

	token, err := jwt.ParseWithClaims(refreshTokenString, &auth.UserClaim{}, func(token *jwt.Token) (interface{}, error) {
		return environment_variables.EnvironmentVariables.JWT_SECRET, nil
	})
	if err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
			Code:  "9b34e6c1-57df-48a0-bc29-e105f7a3d862",
			Error: err.Error(),
		})
		return
	}

	if !token.Valid {
		reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
			Code: "0ce82f47-a1b9-4d53-8670-24d9c6f1e5a8",
		})
		return
	}

	userClaim, ok := token.Claims.(*auth.UserClaim)
	if !ok {
		reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
			Code: "61d0b8f5-3c72-4e94-a5d1-f8427e60c3b9",
		})
		return
	}

	accessTokenExp := time.Now().Add(15 * time.Minute)
	accessTokenString, err := auth.CreateJwtSignedString(auth.UserClaim{
		Email: userClaim.Email,
		Name:  userClaim.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userClaim.Subject,
			ExpiresAt: jwt.NewNumericDate(accessTokenExp),
		},
	})
	if err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "e82a47d6-90cf-4b15-a638-27f5d0c9e1b4",
			Error: err.Error(),
		})
		return
	}

	reqCtx.JSON(http.StatusOK, AccessTokenResponse{
		AccessToken: accessTokenString,
		ExpiresIn:   int(time.Until(accessTokenExp).Seconds()),
	})
}
