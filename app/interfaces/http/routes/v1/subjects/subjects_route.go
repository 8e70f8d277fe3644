package subjects

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"edukasi.ai/edu-api-gateway/app/domain/auth"
	"edukasi.ai/edu-api-gateway/app/domain/subjects"
	"edukasi.ai/edu-api-gateway/app/interfaces/http/responses"
)

type SubjectsRoute struct {
	authService *auth.AuthService
}

func NewSubjectsRoute(authService *auth.AuthService) *SubjectsRoute {
	return &SubjectsRoute{
		authService: authService,
	}
}

func (subjectsRoute *SubjectsRoute) RegisterRouter(router gin.IRouter) {
	subjectsRouter := router.Group("/subjects",
		subjectsRoute.authService.JWTAuthMiddleware(),
		subjectsRoute.authService.RegisteredUserMiddleware(),
	)
	subjectsRouter.GET("", subjectsRoute.GetSubjects)
}

type SubjectsResponse struct {
	GradeLevel string   `json:"grade_level"`
	Subjects   []string `json:"subjects"`
}

// GetSubjects lists the subject catalog for the student's grade level, with
// the religion variants expanded.
func (subjectsRoute *SubjectsRoute) GetSubjects(reqCtx *gin.Context) {
	userEntity, _ := auth.GetUserFromContext(reqCtx)
	if userEntity.GradeLevel == "" {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "17d8a4c2-0e95-4f6b-ba31-d59c2e6f08a7",
			Error: "grade level not set",
		})
		return
	}
	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[SubjectsResponse]{
		Status: responses.ResponseCodeOk,
		Result: SubjectsResponse{
			GradeLevel: userEntity.GradeLevel,
			Subjects:   subjects.WithReligions(userEntity.GradeLevel),
		},
	})
}
