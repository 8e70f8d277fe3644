package dbschema

import (
	"edukasi.ai/edu-api-gateway/app/domain/exam"
	"edukasi.ai/edu-api-gateway/app/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Exam{})
}

type Exam struct {
	BaseModel
	UserID   uint `gorm:"index"`
	Subject  string
	ExamData string `gorm:"type:text"`
	Answers  string `gorm:"type:text"`
	Score    float64
}

func NewSchemaExam(e *exam.Exam) *Exam {
	return &Exam{
		BaseModel: BaseModel{
			ID: e.ID,
		},
		UserID:   e.UserID,
		Subject:  e.Subject,
		ExamData: e.ExamData,
		Answers:  e.Answers,
		Score:    e.Score,
	}
}

func (e *Exam) EtoD() *exam.Exam {
	return &exam.Exam{
		ID:        e.ID,
		UserID:    e.UserID,
		Subject:   e.Subject,
		ExamData:  e.ExamData,
		Answers:   e.Answers,
		Score:     e.Score,
		CreatedAt: e.CreatedAt,
	}
}
