package promptcache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"time"
)

// Entry is one cached AI response. Entries are write-once: they are inserted
// after a successful provider call and skipped once expires_at has passed.
// Stale rows are never actively purged.
type Entry struct {
	ID          uint
	Fingerprint string
	Query       string
	Response    string
	Subject     string
	GradeLevel  string
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

type EntryRepository interface {
	Insert(ctx context.Context, entry *Entry) error
	// FindLive returns the most recent entry for the fingerprint whose
	// expires_at is after now, or nil when there is none.
	FindLive(ctx context.Context, fingerprint string, now time.Time) (*Entry, error)
}

// Fingerprint derives the cache key for a tutor query. The JSON encoding of a
// map sorts its keys, so equal triples always serialize identically.
func Fingerprint(query, subject, gradeLevel string) string {
	payload, _ := json.Marshal(map[string]string{
		"query":       query,
		"subject":     subject,
		"grade_level": gradeLevel,
	})
	sum := md5.Sum(payload)
	return hex.EncodeToString(sum[:])
}

type CacheService struct {
	repo    EntryRepository
	ttl     time.Duration
	nowFunc func() time.Time
}

func NewService(repo EntryRepository, ttl time.Duration) *CacheService {
	return &CacheService{
		repo:    repo,
		ttl:     ttl,
		nowFunc: time.Now,
	}
}

// Lookup returns the cached response for the triple, if a live entry exists.
// A miss is a normal negative result, not an error.
func (s *CacheService) Lookup(ctx context.Context, query, subject, gradeLevel string) (string, bool, error) {
	entry, err := s.repo.FindLive(ctx, Fingerprint(query, subject, gradeLevel), s.nowFunc())
	if err != nil {
		return "", false, err
	}
	if entry == nil {
		return "", false, nil
	}
	return entry.Response, true, nil
}

// Store inserts a new entry expiring after the configured TTL. Duplicate
// fingerprints may coexist; Lookup prefers the most recent live one.
func (s *CacheService) Store(ctx context.Context, query, response, subject, gradeLevel string) error {
	now := s.nowFunc()
	return s.repo.Insert(ctx, &Entry{
		Fingerprint: Fingerprint(query, subject, gradeLevel),
		Query:       query,
		Response:    response,
		Subject:     subject,
		GradeLevel:  gradeLevel,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.ttl),
	})
}
