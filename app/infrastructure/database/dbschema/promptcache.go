package dbschema

import (
	"time"

	"edukasi.ai/edu-api-gateway/app/domain/promptcache"
	"edukasi.ai/edu-api-gateway/app/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(PromptCacheEntry{})
}

type PromptCacheEntry struct {
	BaseModel
	Fingerprint string `gorm:"index"`
	Query       string `gorm:"type:text"`
	Response    string `gorm:"type:text"`
	Subject     string
	GradeLevel  string
	ExpiresAt   time.Time `gorm:"index"`
}

func NewSchemaPromptCacheEntry(e *promptcache.Entry) *PromptCacheEntry {
	return &PromptCacheEntry{
		BaseModel: BaseModel{
			ID: e.ID,
		},
		Fingerprint: e.Fingerprint,
		Query:       e.Query,
		Response:    e.Response,
		Subject:     e.Subject,
		GradeLevel:  e.GradeLevel,
		ExpiresAt:   e.ExpiresAt,
	}
}

func (e *PromptCacheEntry) EtoD() *promptcache.Entry {
	return &promptcache.Entry{
		ID:          e.ID,
		Fingerprint: e.Fingerprint,
		Query:       e.Query,
		Response:    e.Response,
		Subject:     e.Subject,
		GradeLevel:  e.GradeLevel,
		CreatedAt:   e.CreatedAt,
		ExpiresAt:   e.ExpiresAt,
	}
}
