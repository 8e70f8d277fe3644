package reflections

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"edukasi.ai/edu-api-gateway/app/domain/auth"
	"edukasi.ai/edu-api-gateway/app/domain/reflection"
	"edukasi.ai/edu-api-gateway/app/domain/subjects"
	"edukasi.ai/edu-api-gateway/app/domain/tutor"
	"edukasi.ai/edu-api-gateway/app/interfaces/http/responses"
)

type ReflectionsRoute struct {
	authService       *auth.AuthService
	tutorUseCase      *tutor.TutorUseCase
	reflectionService *reflection.ReflectionService
}

func NewReflectionsRoute(
	authService *auth.AuthService,
	tutorUseCase *tutor.TutorUseCase,
	reflectionService *reflection.ReflectionService,
) *ReflectionsRoute {
	return &ReflectionsRoute{
		authService:       authService,
		tutorUseCase:      tutorUseCase,
		reflectionService: reflectionService,
	}
}

func (reflectionsRoute *ReflectionsRoute) RegisterRouter(router gin.IRouter) {
	reflectionsRouter := router.Group("/reflections",
		reflectionsRoute.authService.JWTAuthMiddleware(),
		reflectionsRoute.authService.RegisteredUserMiddleware(),
	)
	reflectionsRouter.GET("/story", reflectionsRoute.GetStory)
	reflectionsRouter.POST("", reflectionsRoute.SubmitReflection)
	reflectionsRouter.GET("", reflectionsRoute.ListReflections)
}

type StoryResponse struct {
	Subject string `json:"subject"`
	Story   string `json:"story"`
}

func (reflectionsRoute *ReflectionsRoute) GetStory(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()
	userEntity, _ := auth.GetUserFromContext(reqCtx)

	subject := reqCtx.Query("subject")
	if !subjects.IsValid(userEntity.GradeLevel, subject) {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "42b9e7d5-1a60-4c83-bf27-96d0e4a5c138",
			Error: "unknown subject for grade level",
		})
		return
	}

	story, err := reflectionsRoute.tutorUseCase.GenerateReflectionStory(ctx, subject, userEntity.GradeLevel)
	if err != nil {
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "75cde4a0-93f6-4287-a1b5-04e8f6d23c97",
			Error: err.Error(),
		})
		return
	}
	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[StoryResponse]{
		Status: responses.ResponseCodeOk,
		Result: StoryResponse{
			Subject: subject,
			Story:   story,
		},
	})
}

type SubmitReflectionRequest struct {
	Subject string `json:"subject" binding:"required"`
	Text    string `json:"text" binding:"required"`
}

type ReflectionResponse struct {
	Subject    string  `json:"subject"`
	Text       string  `json:"text"`
	Correction string  `json:"correction"`
	Feedback   string  `json:"feedback"`
	Score      float64 `json:"score"`
}

func (reflectionsRoute *ReflectionsRoute) SubmitReflection(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()
	userEntity, _ := auth.GetUserFromContext(reqCtx)

	var req SubmitReflectionRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code: "86f2c0d9-5ab4-4731-9de6-c05b8e1f47a2",
		})
		return
	}
	if !subjects.IsValid(userEntity.GradeLevel, req.Subject) {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "d9a05b3e-62c8-4f17-80b4-37e1f6a2d5c0",
			Error: "unknown subject for grade level",
		})
		return
	}

	grade, err := reflectionsRoute.tutorUseCase.GradeReflection(ctx, req.Text, req.Subject, userEntity.GradeLevel)
	if err != nil {
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "b17e369f-c4d0-45a2-8be5-69f0d2c8a143",
			Error: err.Error(),
		})
		return
	}

	entity := &reflection.Reflection{
		UserID:     userEntity.ID,
		Subject:    req.Subject,
		Text:       req.Text,
		Correction: grade.Correction,
		Feedback:   grade.Feedback,
		Score:      grade.Score,
	}
	if err := reflectionsRoute.reflectionService.Save(ctx, entity); err != nil {
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "3f80c6b2-e951-4da7-92c4-17a5e0d8f6b3",
			Error: err.Error(),
		})
		return
	}

	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[ReflectionResponse]{
		Status: responses.ResponseCodeOk,
		Result: ReflectionResponse{
			Subject:    entity.Subject,
			Text:       entity.Text,
			Correction: entity.Correction,
			Feedback:   entity.Feedback,
			Score:      entity.Score,
		},
	})
}

func (reflectionsRoute *ReflectionsRoute) ListReflections(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()
	userEntity, _ := auth.GetUserFromContext(reqCtx)

	reflections, err := reflectionsRoute.reflectionService.ListByUser(ctx, userEntity.ID)
	if err != nil {
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "a4d17f5c-0b82-4e96-bd30-58c6f2e9a071",
			Error: err.Error(),
		})
		return
	}

	results := make([]ReflectionResponse, len(reflections))
	for i, r := range reflections {
		results[i] = ReflectionResponse{
			Subject:    r.Subject,
			Text:       r.Text,
			Correction: r.Correction,
			Feedback:   r.Feedback,
			Score:      r.Score,
		}
	}
	reqCtx.JSON(http.StatusOK, responses.ListResponse[ReflectionResponse]{
		Status:  responses.ResponseCodeOk,
		Total:   int64(len(results)),
		Results: results,
	})
}
