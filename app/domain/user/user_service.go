package user

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"edukasi.ai/edu-api-gateway/app/utils/idgen"
	"edukasi.ai/edu-api-gateway/app/utils/logger"
)

const userCacheTTL = 5 * time.Minute

// UserCache is a read-through cache for user lookups; misses return an error
// from Get and are simply absorbed.
type UserCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}

type UserService struct {
	userrepo UserRepository
	cache    UserCache
}

func NewService(userrepo UserRepository, cache UserCache) *UserService {
	return &UserService{
		userrepo: userrepo,
		cache:    cache,
	}
}

func userCacheKey(email string) string {
	return fmt.Sprintf("v1:user:email:%s", email)
}

// FindOrRegisterByGoogle returns the user for a verified Google identity,
// creating it on first login.
func (s *UserService) FindOrRegisterByGoogle(ctx context.Context, email, name string) (*User, error) {
	existing, err := s.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	publicID, err := idgen.GenerateSecureID("user", 16)
	if err != nil {
		return nil, err
	}
	u := &User{
		PublicID: publicID,
		Name:     name,
		Email:    email,
		Enabled:  true,
	}
	if err := s.userrepo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*User, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, userCacheKey(email)); err == nil {
			var u User
			if err := json.Unmarshal([]byte(cached), &u); err == nil {
				return &u, nil
			}
		}
	}

	u, err := s.userrepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}

	if s.cache != nil {
		if payload, err := json.Marshal(u); err == nil {
			if err := s.cache.Set(ctx, userCacheKey(email), string(payload), userCacheTTL); err != nil {
				logger.GetLogger().Warnf("user service: failed to cache user: %v", err)
			}
		}
	}
	return u, nil
}

func (s *UserService) FindByID(ctx context.Context, id uint) (*User, error) {
	return s.userrepo.FindByID(ctx, id)
}

// SetGradeLevel updates the user's grade level (SD, SMP, SMA).
func (s *UserService) SetGradeLevel(ctx context.Context, id uint, gradeLevel string) error {
	if !ValidGradeLevel(gradeLevel) {
		return fmt.Errorf("invalid grade level: %s", gradeLevel)
	}
	u, err := s.userrepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.userrepo.UpdateGradeLevel(ctx, id, gradeLevel); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.Delete(ctx, userCacheKey(u.Email)); err != nil {
			logger.GetLogger().Warnf("user service: failed to invalidate user cache: %v", err)
		}
	}
	return nil
}
