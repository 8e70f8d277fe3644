package progress

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"edukasi.ai/edu-api-gateway/app/domain/auth"
	"edukasi.ai/edu-api-gateway/app/domain/progress"
	"edukasi.ai/edu-api-gateway/app/domain/tutor"
	"edukasi.ai/edu-api-gateway/app/interfaces/http/responses"
)

type ProgressRoute struct {
	authService     *auth.AuthService
	progressService *progress.ProgressService
	tutorUseCase    *tutor.TutorUseCase
}

func NewProgressRoute(
	authService *auth.AuthService,
	progressService *progress.ProgressService,
	tutorUseCase *tutor.TutorUseCase,
) *ProgressRoute {
	return &ProgressRoute{
		authService:     authService,
		progressService: progressService,
		tutorUseCase:    tutorUseCase,
	}
}

func (progressRoute *ProgressRoute) RegisterRouter(router gin.IRouter) {
	progressRouter := router.Group("/progress",
		progressRoute.authService.JWTAuthMiddleware(),
		progressRoute.authService.RegisteredUserMiddleware(),
	)
	progressRouter.GET("", progressRoute.GetSummary)
	progressRouter.GET("/feedback", progressRoute.GetFeedback)
}

type SummaryResponse struct {
	AverageScore      float64 `json:"average_score"`
	Level             string  `json:"level"`
	ReflectionCount   int     `json:"reflection_count"`
	ReflectionAverage float64 `json:"reflection_average"`
	ExamCount         int     `json:"exam_count"`
	ExamAverage       float64 `json:"exam_average"`
	HasData           bool    `json:"has_data"`
}

func (progressRoute *ProgressRoute) GetSummary(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()
	userEntity, _ := auth.GetUserFromContext(reqCtx)

	summary, err := progressRoute.progressService.Summarize(ctx, userEntity.ID)
	if err != nil {
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "08d5f2c7-b631-4a98-be40-59e7a1d6f023",
			Error: err.Error(),
		})
		return
	}
	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[SummaryResponse]{
		Status: responses.ResponseCodeOk,
		Result: SummaryResponse{
			AverageScore:      summary.AverageScore,
			Level:             summary.Level,
			ReflectionCount:   summary.ReflectionCount,
			ReflectionAverage: summary.ReflectionAverage,
			ExamCount:         summary.ExamCount,
			ExamAverage:       summary.ExamAverage,
			HasData:           summary.HasData,
		},
	})
}

type FeedbackResponse struct {
	Level    string `json:"level"`
	Feedback string `json:"feedback"`
}

func (progressRoute *ProgressRoute) GetFeedback(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()
	userEntity, _ := auth.GetUserFromContext(reqCtx)

	summary, err := progressRoute.progressService.Summarize(ctx, userEntity.ID)
	if err != nil {
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "c3e61a90-5f27-4db8-82c4-f09b7d5e3a16",
			Error: err.Error(),
		})
		return
	}
	if !summary.HasData {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "57a2f8d1-0c64-4be3-95d7-e81c0f326b49",
			Error: "no reflections or exams yet",
		})
		return
	}

	feedback, err := progressRoute.tutorUseCase.KnowledgeFeedback(
		ctx,
		summary.AverageScore,
		summary.Level,
		userEntity.GradeLevel,
		summary.ReflectionCount,
		summary.ExamCount,
	)
	if err != nil {
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "960d4c7e-3a85-4f12-b0d6-28e5c9f7a301",
			Error: err.Error(),
		})
		return
	}
	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[FeedbackResponse]{
		Status: responses.ResponseCodeOk,
		Result: FeedbackResponse{
			Level:    summary.Level,
			Feedback: feedback,
		},
	})
}
