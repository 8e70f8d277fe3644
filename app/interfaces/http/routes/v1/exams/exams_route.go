package exams

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"edukasi.ai/edu-api-gateway/app/domain/auth"
	"edukasi.ai/edu-api-gateway/app/domain/exam"
	"edukasi.ai/edu-api-gateway/app/domain/subjects"
	"edukasi.ai/edu-api-gateway/app/domain/tutor"
	"edukasi.ai/edu-api-gateway/app/interfaces/http/responses"
)

type ExamsRoute struct {
	authService  *auth.AuthService
	tutorUseCase *tutor.TutorUseCase
	examService  *exam.ExamService
}

func NewExamsRoute(
	authService *auth.AuthService,
	tutorUseCase *tutor.TutorUseCase,
	examService *exam.ExamService,
) *ExamsRoute {
	return &ExamsRoute{
		authService:  authService,
		tutorUseCase: tutorUseCase,
		examService:  examService,
	}
}

func (examsRoute *ExamsRoute) RegisterRouter(router gin.IRouter) {
	examsRouter := router.Group("/exams",
		examsRoute.authService.JWTAuthMiddleware(),
		examsRoute.authService.RegisteredUserMiddleware(),
	)
	examsRouter.GET("/generate", examsRoute.GenerateExam)
	examsRouter.POST("/submit", examsRoute.SubmitExam)
	examsRouter.GET("", examsRoute.ListExams)
}

type GenerateExamResponse struct {
	ExamID    uint            `json:"exam_id"`
	Subject   string          `json:"subject"`
	Questions *exam.Questions `json:"questions"`
}

// GenerateExam stores the generated paper before handing it out. The response
// never carries the answer key; grading later reads the stored paper.
func (examsRoute *ExamsRoute) GenerateExam(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()
	userEntity, _ := auth.GetUserFromContext(reqCtx)

	subject := reqCtx.Query("subject")
	if !subjects.IsValid(userEntity.GradeLevel, subject) {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "e0c84b27-1f96-4da3-85e0-69b2d4f7c810",
			Error: "unknown subject for grade level",
		})
		return
	}

	questions, err := examsRoute.tutorUseCase.GenerateExam(ctx, subject, userEntity.GradeLevel)
	if err != nil {
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "f5a31c80-d264-49be-a7f1-208c6e5d9b43",
			Error: err.Error(),
		})
		return
	}

	examData, err := json.Marshal(questions)
	if err != nil {
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "1b63f9d7-a042-4c85-bd16-380e5c7f2a94",
			Error: err.Error(),
		})
		return
	}
	attempt := &exam.Exam{
		UserID:   userEntity.ID,
		Subject:  subject,
		ExamData: string(examData),
	}
	if err := examsRoute.examService.Save(ctx, attempt); err != nil {
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "5fd29b01-c847-4e63-a0b5-92c4f7e6d018",
			Error: err.Error(),
		})
		return
	}

	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[GenerateExamResponse]{
		Status: responses.ResponseCodeOk,
		Result: GenerateExamResponse{
			ExamID:    attempt.ID,
			Subject:   subject,
			Questions: questions.WithoutAnswerKey(),
		},
	})
}

type SubmitExamRequest struct {
	ExamID  uint         `json:"exam_id" binding:"required"`
	Answers exam.Answers `json:"answers" binding:"required"`
}

type SubmitExamResponse struct {
	Subject string       `json:"subject"`
	Result  *exam.Result `json:"result"`
}

// SubmitExam grades the answers against the stored paper for the attempt, so
// the client never supplies the questions or the answer key.
func (examsRoute *ExamsRoute) SubmitExam(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()
	userEntity, _ := auth.GetUserFromContext(reqCtx)

	var req SubmitExamRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code: "06de52b8-c3a7-4f91-be04-d18f5a26c073",
		})
		return
	}

	attempt, err := examsRoute.examService.FindOwned(ctx, req.ExamID, userEntity.ID)
	if err != nil {
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "74a0d2c6-e5b8-4913-8f27-c69e1d0b5f38",
			Error: err.Error(),
		})
		return
	}
	if attempt == nil {
		reqCtx.JSON(http.StatusNotFound, responses.ErrorResponse{
			Code:  "208a6f3d-91c5-4be7-a4d0-6f2e8c51b790",
			Error: "exam not found",
		})
		return
	}
	if attempt.Submitted() {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "63e09d4b-7a28-4fc1-b5e6-d90c2a84f517",
			Error: "exam already submitted",
		})
		return
	}

	var questions exam.Questions
	if err := json.Unmarshal([]byte(attempt.ExamData), &questions); err != nil {
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "1b63f9d7-a042-4c85-bd16-380e5c7f2a94",
			Error: err.Error(),
		})
		return
	}
	if !questions.Complete(req.Answers) {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "91c0f7e4-2d58-4ab6-83f9-e5d70b4a1c26",
			Error: "every question must be answered",
		})
		return
	}

	result, err := examsRoute.tutorUseCase.GradeExam(ctx, &questions, req.Answers)
	if err != nil {
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "ce47a1d3-85f2-40b9-96ae-71f3c8e0d524",
			Error: err.Error(),
		})
		return
	}

	answers, err := json.Marshal(req.Answers)
	if err != nil {
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "0d7f1e52-3c98-46ab-82e4-b61f0a59d7c3",
			Error: err.Error(),
		})
		return
	}
	if err := examsRoute.examService.RecordSubmission(ctx, attempt.ID, string(answers), result.TotalScore); err != nil {
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "5fd29b01-c847-4e63-a0b5-92c4f7e6d018",
			Error: err.Error(),
		})
		return
	}

	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[SubmitExamResponse]{
		Status: responses.ResponseCodeOk,
		Result: SubmitExamResponse{
			Subject: attempt.Subject,
			Result:  result,
		},
	})
}

type ExamSummaryResponse struct {
	Subject   string  `json:"subject"`
	Score     float64 `json:"score"`
	CreatedAt string  `json:"created_at"`
}

func (examsRoute *ExamsRoute) ListExams(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()
	userEntity, _ := auth.GetUserFromContext(reqCtx)

	exams, err := examsRoute.examService.ListByUser(ctx, userEntity.ID)
	if err != nil {
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "bd05e8f1-6c93-4a27-85d0-f41c2b7e9a60",
			Error: err.Error(),
		})
		return
	}

	results := make([]ExamSummaryResponse, len(exams))
	for i, e := range exams {
		results[i] = ExamSummaryResponse{
			Subject:   e.Subject,
			Score:     e.Score,
			CreatedAt: e.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}
	reqCtx.JSON(http.StatusOK, responses.ListResponse[ExamSummaryResponse]{
		Status:  responses.ResponseCodeOk,
		Total:   int64(len(results)),
		Results: results,
	})
}
