package ideas

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"edukasi.ai/edu-api-gateway/app/domain/auth"
	"edukasi.ai/edu-api-gateway/app/domain/tutor"
	"edukasi.ai/edu-api-gateway/app/interfaces/http/responses"
)

type IdeasRoute struct {
	authService  *auth.AuthService
	tutorUseCase *tutor.TutorUseCase
}

func NewIdeasRoute(
	authService *auth.AuthService,
	tutorUseCase *tutor.TutorUseCase,
) *IdeasRoute {
	return &IdeasRoute{
		authService:  authService,
		tutorUseCase: tutorUseCase,
	}
}

func (ideasRoute *IdeasRoute) RegisterRouter(router gin.IRouter) {
	ideasRouter := router.Group("/ideas",
		ideasRoute.authService.JWTAuthMiddleware(),
		ideasRoute.authService.RegisteredUserMiddleware(),
	)
	ideasRouter.POST("/validate", ideasRoute.ValidateIdea)
}

type ValidateIdeaRequest struct {
	Idea string `json:"idea" binding:"required"`
}

type ValidateIdeaResponse struct {
	Idea string `json:"idea"`
	POC  string `json:"poc"`
}

func (ideasRoute *IdeasRoute) ValidateIdea(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	var req ValidateIdeaRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code: "c6e41a9d-3f72-45b8-90c5-2d8f7e0a6b14",
		})
		return
	}

	poc, err := ideasRoute.tutorUseCase.ValidateIdea(ctx, req.Idea)
	if err != nil {
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "9b25d0f7-84ce-4613-a92b-f51e7c3d8a06",
			Error: err.Error(),
		})
		return
	}
	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[ValidateIdeaResponse]{
		Status: responses.ResponseCodeOk,
		Result: ValidateIdeaResponse{
			Idea: req.Idea,
			POC:  poc,
		},
	})
}
