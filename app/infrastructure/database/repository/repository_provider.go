package repository

import (
	"github.com/google/wire"
	"edukasi.ai/edu-api-gateway/app/infrastructure/database/repository/chatlogrepo"
	"edukasi.ai/edu-api-gateway/app/infrastructure/database/repository/examrepo"
	"edukasi.ai/edu-api-gateway/app/infrastructure/database/repository/promptcacherepo"
	"edukasi.ai/edu-api-gateway/app/infrastructure/database/repository/reflectionrepo"
	"edukasi.ai/edu-api-gateway/app/infrastructure/database/repository/reminderrepo"
	"edukasi.ai/edu-api-gateway/app/infrastructure/database/repository/userrepo"
)

var RepositoryProvider = wire.NewSet(
	userrepo.NewUserGormRepository,
	chatlogrepo.NewChatLogGormRepository,
	reflectionrepo.NewReflectionGormRepository,
	examrepo.NewExamGormRepository,
	reminderrepo.NewReminderGormRepository,
	promptcacherepo.NewPromptCacheGormRepository,
)
