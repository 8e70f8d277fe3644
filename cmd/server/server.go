package main

import (
	"context"

	"github.com/mileusna/crontab"
	"edukasi.ai/edu-api-gateway/app/domain/reminder"
	"edukasi.ai/edu-api-gateway/app/interfaces/http"
	"edukasi.ai/edu-api-gateway/app/utils/httpclients/gemini"
	"edukasi.ai/edu-api-gateway/config/environment_variables"
)

type Application struct {
	HttpServer      *http.HttpServer
	ReminderService *reminder.ReminderService
}

func (application *Application) Start() {
	if err := application.HttpServer.Run(); err != nil {
		panic(err)
	}
}

func init() {
	environment_variables.EnvironmentVariables.LoadFromEnv()
	gemini.Init()
}

func main() {
	application, err := CreateApplication()
	if err != nil {
		panic(err)
	}

	cron := crontab.New()
	crontabContext := context.Background()
	application.ReminderService.Start(crontabContext, cron)

	application.Start()
}
