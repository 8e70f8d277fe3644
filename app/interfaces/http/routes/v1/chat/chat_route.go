package chat

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"edukasi.ai/edu-api-gateway/app/domain/auth"
	"edukasi.ai/edu-api-gateway/app/domain/chatlog"
	"edukasi.ai/edu-api-gateway/app/domain/ratelimit"
	"edukasi.ai/edu-api-gateway/app/domain/subjects"
	"edukasi.ai/edu-api-gateway/app/domain/tutor"
	"edukasi.ai/edu-api-gateway/app/interfaces/http/responses"
)

type ChatRoute struct {
	authService    *auth.AuthService
	tutorUseCase   *tutor.TutorUseCase
	chatlogService *chatlog.ChatLogService
}

func NewChatRoute(
	authService *auth.AuthService,
	tutorUseCase *tutor.TutorUseCase,
	chatlogService *chatlog.ChatLogService,
) *ChatRoute {
	return &ChatRoute{
		authService:    authService,
		tutorUseCase:   tutorUseCase,
		chatlogService: chatlogService,
	}
}

func (chatRoute *ChatRoute) RegisterRouter(router gin.IRouter) {
	chatRouter := router.Group("/chat",
		chatRoute.authService.JWTAuthMiddleware(),
		chatRoute.authService.RegisteredUserMiddleware(),
	)
	chatRouter.POST("", chatRoute.PostChat)
	chatRouter.GET("/history", chatRoute.GetHistory)
}

type ChatRequest struct {
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type ChatResponse struct {
	Answer  string `json:"answer"`
	Subject string `json:"subject"`
}

func (chatRoute *ChatRoute) PostChat(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()
	userEntity, _ := auth.GetUserFromContext(reqCtx)

	var req ChatRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code: "a3f07c51-28de-46b9-90a4-c6e2d58f13b7",
		})
		return
	}
	if userEntity.GradeLevel == "" {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "57e92d0b-cf64-4a38-b215-80a1f3c6d9e4",
			Error: "grade level not set",
		})
		return
	}
	if !subjects.IsValid(userEntity.GradeLevel, req.Subject) {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "c04b71f8-5e26-4d93-a8c7-29f6e0d1b345",
			Error: "unknown subject for grade level",
		})
		return
	}

	answer, err := chatRoute.tutorUseCase.Chat(ctx, userEntity.ID, req.Subject, userEntity.GradeLevel, req.Message)
	if err != nil {
		var cooldown *ratelimit.CooldownError
		if errors.As(err, &cooldown) {
			reqCtx.Header("Retry-After", strconv.Itoa(int(math.Ceil(cooldown.RetryAfter.Seconds()))))
			reqCtx.JSON(http.StatusTooManyRequests, responses.ErrorResponse{
				Code:  "f61d30a9-84c2-47eb-b5d8-03e9a7f2c516",
				Error: cooldown.Error(),
			})
			return
		}
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "28b9f4e7-d053-4c61-a927-64c1e8d0f5a3",
			Error: err.Error(),
		})
		return
	}

	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[ChatResponse]{
		Status: responses.ResponseCodeOk,
		Result: ChatResponse{
			Answer:  answer,
			Subject: req.Subject,
		},
	})
}

type ChatLogResponse struct {
	Subject     string `json:"subject"`
	GradeLevel  string `json:"grade_level"`
	UserMessage string `json:"user_message"`
	AIResponse  string `json:"ai_response"`
	AIProvider  string `json:"ai_provider"`
	CreatedAt   string `json:"created_at"`
}

func (chatRoute *ChatRoute) GetHistory(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()
	userEntity, _ := auth.GetUserFromContext(reqCtx)

	var subject *string
	if s := reqCtx.Query("subject"); s != "" {
		subject = &s
	}
	logs, err := chatRoute.chatlogService.History(ctx, userEntity.ID, subject)
	if err != nil {
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "90e5c2a7-1fb4-4d08-b6e3-d72f08a4c196",
			Error: err.Error(),
		})
		return
	}

	results := make([]ChatLogResponse, len(logs))
	for i, log := range logs {
		results[i] = ChatLogResponse{
			Subject:     log.Subject,
			GradeLevel:  log.GradeLevel,
			UserMessage: log.UserMessage,
			AIResponse:  log.AIResponse,
			AIProvider:  log.AIProvider,
			CreatedAt:   log.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}
	reqCtx.JSON(http.StatusOK, responses.ListResponse[ChatLogResponse]{
		Status:  responses.ResponseCodeOk,
		Total:   int64(len(results)),
		Results: results,
	})
}
