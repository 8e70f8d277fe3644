package requests

import (
	"strings"

	"github.com/gin-gonic/gin"
)

func GetTokenFromBearer(reqCtx *gin.Context) (string, bool) {
	authHeader := reqCtx.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}
