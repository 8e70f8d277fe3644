package dbschema

import (
	"edukasi.ai/edu-api-gateway/app/domain/user"
	"edukasi.ai/edu-api-gateway/app/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(User{})
}

type User struct {
	BaseModel
	PublicID   string `gorm:"uniqueIndex"`
	Name       string
	Email      string `gorm:"uniqueIndex"`
	GradeLevel string
	Enabled    bool
}

func NewSchemaUser(u *user.User) *User {
	return &User{
		BaseModel: BaseModel{
			ID: u.ID,
		},
		PublicID:   u.PublicID,
		Name:       u.Name,
		Email:      u.Email,
		GradeLevel: u.GradeLevel,
		Enabled:    u.Enabled,
	}
}

func (u *User) EtoD() *user.User {
	return &user.User{
		ID:         u.ID,
		PublicID:   u.PublicID,
		Name:       u.Name,
		Email:      u.Email,
		GradeLevel: u.GradeLevel,
		Enabled:    u.Enabled,
	}
}
