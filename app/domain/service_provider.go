package domain

import (
	"time"

	"github.com/google/wire"
	"edukasi.ai/edu-api-gateway/app/domain/auth"
	"edukasi.ai/edu-api-gateway/app/domain/chatlog"
	"edukasi.ai/edu-api-gateway/app/domain/exam"
	"edukasi.ai/edu-api-gateway/app/domain/otp"
	"edukasi.ai/edu-api-gateway/app/domain/progress"
	"edukasi.ai/edu-api-gateway/app/domain/promptcache"
	"edukasi.ai/edu-api-gateway/app/domain/ratelimit"
	"edukasi.ai/edu-api-gateway/app/domain/reflection"
	"edukasi.ai/edu-api-gateway/app/domain/reminder"
	"edukasi.ai/edu-api-gateway/app/domain/tutor"
	"edukasi.ai/edu-api-gateway/app/domain/user"
	"edukasi.ai/edu-api-gateway/app/utils/emailservice"
	"edukasi.ai/edu-api-gateway/config/environment_variables"
)

func NewLimiter() *ratelimit.Limiter {
	env := environment_variables.EnvironmentVariables
	return ratelimit.NewLimiter(
		time.Duration(env.CHAT_COOLDOWN_SECONDS)*time.Second,
		time.Duration(env.OTP_COOLDOWN_SECONDS)*time.Second,
	)
}

func NewCacheService(repo promptcache.EntryRepository) *promptcache.CacheService {
	env := environment_variables.EnvironmentVariables
	return promptcache.NewService(repo, time.Duration(env.CACHE_TTL_SECONDS)*time.Second)
}

func NewOTPVerifier(mailer otp.Mailer) *otp.Verifier {
	env := environment_variables.EnvironmentVariables
	return otp.NewVerifier(mailer, time.Duration(env.OTP_EXPIRY_MINUTES)*time.Minute)
}

var ServiceProvider = wire.NewSet(
	auth.NewAuthService,
	user.NewService,
	chatlog.NewService,
	reflection.NewService,
	exam.NewService,
	progress.NewService,
	reminder.NewService,
	tutor.NewTutorUseCase,
	NewLimiter,
	NewCacheService,
	NewOTPVerifier,
	emailservice.NewSMTPMailer,
	wire.Bind(new(otp.Mailer), new(*emailservice.SMTPMailer)),
	wire.Bind(new(reminder.ReminderMailer), new(*emailservice.SMTPMailer)),
)
