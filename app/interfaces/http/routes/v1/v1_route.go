package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"edukasi.ai/edu-api-gateway/app/interfaces/http/routes/v1/auth"
	"edukasi.ai/edu-api-gateway/app/interfaces/http/routes/v1/chat"
	"edukasi.ai/edu-api-gateway/app/interfaces/http/routes/v1/exams"
	"edukasi.ai/edu-api-gateway/app/interfaces/http/routes/v1/ideas"
	"edukasi.ai/edu-api-gateway/app/interfaces/http/routes/v1/progress"
	"edukasi.ai/edu-api-gateway/app/interfaces/http/routes/v1/reflections"
	"edukasi.ai/edu-api-gateway/app/interfaces/http/routes/v1/reminders"
	"edukasi.ai/edu-api-gateway/app/interfaces/http/routes/v1/subjects"
	"edukasi.ai/edu-api-gateway/config"
)

type V1Route struct {
	authRoute        *auth.AuthRoute
	chatRoute        *chat.ChatRoute
	subjectsRoute    *subjects.SubjectsRoute
	reflectionsRoute *reflections.ReflectionsRoute
	examsRoute       *exams.ExamsRoute
	ideasRoute       *ideas.IdeasRoute
	remindersRoute   *reminders.RemindersRoute
	progressRoute    *progress.ProgressRoute
}

func NewV1Route(
	authRoute *auth.AuthRoute,
	chatRoute *chat.ChatRoute,
	subjectsRoute *subjects.SubjectsRoute,
	reflectionsRoute *reflections.ReflectionsRoute,
	examsRoute *exams.ExamsRoute,
	ideasRoute *ideas.IdeasRoute,
	remindersRoute *reminders.RemindersRoute,
	progressRoute *progress.ProgressRoute,
) *V1Route {
	return &V1Route{
		authRoute,
		chatRoute,
		subjectsRoute,
		reflectionsRoute,
		examsRoute,
		ideasRoute,
		remindersRoute,
		progressRoute,
	}
}

func (v1Route *V1Route) RegisterRouter(router gin.IRouter) {
	v1Router := router.Group("/v1")
	v1Router.GET("/version", GetVersion)
	v1Route.authRoute.RegisterRouter(v1Router)
	v1Route.chatRoute.RegisterRouter(v1Router)
	v1Route.subjectsRoute.RegisterRouter(v1Router)
	v1Route.reflectionsRoute.RegisterRouter(v1Router)
	v1Route.examsRoute.RegisterRouter(v1Router)
	v1Route.ideasRoute.RegisterRouter(v1Router)
	v1Route.remindersRoute.RegisterRouter(v1Router)
	v1Route.progressRoute.RegisterRouter(v1Router)
}

func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": config.Version,
	})
}
