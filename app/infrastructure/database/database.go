package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
	"edukasi.ai/edu-api-gateway/app/utils/logger"
	"edukasi.ai/edu-api-gateway/config/environment_variables"
)

var SchemaRegistry []interface{}

func RegisterSchemaForAutoMigrate(models ...interface{}) {
	SchemaRegistry = append(SchemaRegistry, models...)
}

var DB *gorm.DB

func NewDB() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(environment_variables.EnvironmentVariables.DB_POSTGRESQL_DSN), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
	})
	if err != nil {
		logger.GetLogger().
			WithField("error_code", "0d2a7c1e-65f4-4a8e-b639-1c3f47e2ab90").
			Fatalf("unable to connect to database: %v", err)
		return nil, err
	}
	for _, model := range SchemaRegistry {
		if err := db.AutoMigrate(model); err != nil {
			logger.GetLogger().
				WithField("error_code", "8e14b0af-2c7d-4d5a-9f63-6b9a0c4d71e5").
				Fatalf("failed to auto migrate schema: %T, error: %v", model, err)
			return nil, err
		}
	}

	DB = db
	return DB, nil
}
