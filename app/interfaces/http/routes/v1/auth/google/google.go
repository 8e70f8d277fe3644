package google

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"time"

	oidc "github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/golang-jwt/jwt/v5"
	"edukasi.ai/edu-api-gateway/app/domain/auth"
	"edukasi.ai/edu-api-gateway/app/domain/user"
	"edukasi.ai/edu-api-gateway/app/interfaces/http/responses"
	"edukasi.ai/edu-api-gateway/config/environment_variables"
)

type GoogleAuthAPI struct {
	oAuth2Config *oauth2.Config
	oidcProvider *oidc.Provider
	userService  *user.UserService
}

func NewGoogleAuthAPI(userService *user.UserService) *GoogleAuthAPI {
	oauth2Config := &oauth2.Config{
		ClientID:     environment_variables.EnvironmentVariables.OAUTH2_GOOGLE_CLIENT_ID,
		ClientSecret: environment_variables.EnvironmentVariables.OAUTH2_GOOGLE_CLIENT_SECRET,
		RedirectURL:  environment_variables.EnvironmentVariables.OAUTH2_GOOGLE_REDIRECT_URL,
		Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		Endpoint:     google.Endpoint,
	}

	provider, err := oidc.NewProvider(context.Background(), "https://accounts.google.com")
	if err != nil {
		panic(err)
	}
	return &GoogleAuthAPI{
		oauth2Config,
		provider,
		userService,
	}
}

func (googleAuthAPI *GoogleAuthAPI) RegisterRouter(router *gin.RouterGroup) {
	googleRouter := router.Group("/google")
	googleRouter.POST("/callback", googleAuthAPI.HandleGoogleCallback)
	googleRouter.GET("/login", googleAuthAPI.GetGoogleLogin)
}

type GoogleCallbackRequest struct {
	Code  string `json:"code" binding:"required"`
	State string `json:"state"`
}

type GoogleCallbackResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	GradeLevel  string `json:"grade_level"`
}

func generateState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

func (googleAuthAPI *GoogleAuthAPI) HandleGoogleCallback(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()
	var req GoogleCallbackRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code: "e6b02a4d-91c8-4f5e-8d37-a2c50f4b16e9",
		})
		return
	}

	storedState, err := reqCtx.Cookie(auth.OAuthStateKey)
	if storedState != req.State {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code: "9f3c81e5-2db6-4a04-b7f9-58a1e6d2c430",
		})
		return
	}
	if err != nil {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "1de84f27-6a95-4c3b-8e02-b47d90f5a361",
			Error: err.Error(),
		})
		return
	}

	token, err := googleAuthAPI.oAuth2Config.Exchange(reqCtx, req.Code)
	if err != nil {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code: "72c5a9e8-04bf-4d16-9a83-fe61d27c08b4",
		})
		return
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code: "ab47e1f0-398d-4c62-b5a9-07d3f8e6c215",
		})
		return
	}
	verifier := googleAuthAPI.oidcProvider.Verifier(&oidc.Config{ClientID: googleAuthAPI.oAuth2Config.ClientID})
	idToken, err := verifier.Verify(reqCtx, rawIDToken)
	if err != nil {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "c8f2d634-7ae1-4905-bd28-3e96a05f17cd",
			Error: err.Error(),
		})
		return
	}

	var claims struct {
		Email string `json:"email"`
		Name  string `json:"name"`
		Sub   string `json:"sub"`
	}
	if err := idToken.Claims(&claims); err != nil {
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "5b09e7a2-c143-48d6-9f70-82de64a1c5b3",
			Error: err.Error(),
		})
		return
	}

	userEntity, err := googleAuthAPI.userService.FindOrRegisterByGoogle(ctx, claims.Email, claims.Name)
	if err != nil {
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "07c3f5d9-6e82-4ba1-95cd-d410e8b72f6a",
			Error: err.Error(),
		})
		return
	}

	accessTokenExp := time.Now().Add(15 * time.Minute)
	accessTokenString, err := auth.CreateJwtSignedString(auth.UserClaim{
		Email: claims.Email,
		Name:  claims.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.Sub,
			ExpiresAt: jwt.NewNumericDate(accessTokenExp),
		},
	})
	if err != nil {
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "3ea67d01-58cf-4b92-a3d4-16f08c5e29b7",
			Error: err.Error(),
		})
		return
	}

	refreshTokenExp := time.Now().Add(7 * 24 * time.Hour)
	refreshTokenString, err := auth.CreateJwtSignedString(auth.UserClaim{
		Email: claims.Email,
		Name:  claims.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.Sub,
			ExpiresAt: jwt.NewNumericDate(refreshTokenExp),
		},
	})
	if err != nil {
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "64f81b3c-92ad-47e5-b016-c7a2d95e30f8",
			Error: err.Error(),
		})
		return
	}
	reqCtx.SetCookie(auth.RefreshTokenKey, refreshTokenString, int(7*24*time.Hour.Seconds()), "/", "", true, true)
	reqCtx.JSON(http.StatusOK, &responses.GeneralResponse[GoogleCallbackResponse]{
		Status: responses.ResponseCodeOk,
		Result: GoogleCallbackResponse{
			AccessToken: accessTokenString,
			ExpiresIn:   int(time.Until(accessTokenExp).Seconds()),
			Email:       userEntity.Email,
			Name:        userEntity.Name,
			GradeLevel:  userEntity.GradeLevel,
		},
	})
}

func (googleAuthAPI *GoogleAuthAPI) GetGoogleLogin(reqCtx *gin.Context) {
	state, err := generateState()
	if err != nil {
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "8d25c0fa-41b7-4693-ae58-9f06e3d1b724",
			Error: err.Error(),
		})
		return
	}

	// 5 minutes csrf token
	reqCtx.SetCookie(auth.OAuthStateKey, state, 300, "/", "", true, true)
	authURL := googleAuthAPI.oAuth2Config.AuthCodeURL(state, oauth2.AccessTypeOffline)
	reqCtx.Redirect(http.StatusTemporaryRedirect, authURL)
}
