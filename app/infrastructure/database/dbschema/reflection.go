package dbschema

import (
	"edukasi.ai/edu-api-gateway/app/domain/reflection"
	"edukasi.ai/edu-api-gateway/app/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Reflection{})
}

type Reflection struct {
	BaseModel
	UserID     uint `gorm:"index"`
	Subject    string
	Text       string `gorm:"type:text"`
	Correction string `gorm:"type:text"`
	Feedback   string `gorm:"type:text"`
	Score      float64
}

func NewSchemaReflection(r *reflection.Reflection) *Reflection {
	return &Reflection{
		BaseModel: BaseModel{
			ID: r.ID,
		},
		UserID:     r.UserID,
		Subject:    r.Subject,
		Text:       r.Text,
		Correction: r.Correction,
		Feedback:   r.Feedback,
		Score:      r.Score,
	}
}

func (r *Reflection) EtoD() *reflection.Reflection {
	return &reflection.Reflection{
		ID:         r.ID,
		UserID:     r.UserID,
		Subject:    r.Subject,
		Text:       r.Text,
		Correction: r.Correction,
		Feedback:   r.Feedback,
		Score:      r.Score,
		CreatedAt:  r.CreatedAt,
	}
}
