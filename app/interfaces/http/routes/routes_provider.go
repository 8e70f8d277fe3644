package routes

import (
	"github.com/google/wire"
	v1 "edukasi.ai/edu-api-gateway/app/interfaces/http/routes/v1"
	"edukasi.ai/edu-api-gateway/app/interfaces/http/routes/v1/auth"
	"edukasi.ai/edu-api-gateway/app/interfaces/http/routes/v1/auth/google"
	"edukasi.ai/edu-api-gateway/app/interfaces/http/routes/v1/chat"
	"edukasi.ai/edu-api-gateway/app/interfaces/http/routes/v1/exams"
	"edukasi.ai/edu-api-gateway/app/interfaces/http/routes/v1/ideas"
	"edukasi.ai/edu-api-gateway/app/interfaces/http/routes/v1/progress"
	"edukasi.ai/edu-api-gateway/app/interfaces/http/routes/v1/reflections"
	"edukasi.ai/edu-api-gateway/app/interfaces/http/routes/v1/reminders"
	"edukasi.ai/edu-api-gateway/app/interfaces/http/routes/v1/subjects"
)

var RouteProvider = wire.NewSet(
	google.NewGoogleAuthAPI,
	auth.NewAuthRoute,
	chat.NewChatRoute,
	subjects.NewSubjectsRoute,
	reflections.NewReflectionsRoute,
	exams.NewExamsRoute,
	ideas.NewIdeasRoute,
	reminders.NewRemindersRoute,
	progress.NewProgressRoute,
	v1.NewV1Route,
)
