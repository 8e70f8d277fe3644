package environment_variables

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

type EnvironmentVariable struct {
	DB_POSTGRESQL_DSN string
	REDIS_URL         string
	REDIS_PASSWORD    string
	REDIS_DB          string

	GEMINI_API_KEY   string
	GEMINI_API_KEY_2 string
	GEMINI_API_KEY_3 string
	GEMINI_BASE_URL  string
	OPENAI_API_KEY   string

	SMTP_HOST     string
	SMTP_PORT     string
	SMTP_USERNAME string
	SMTP_PASSWORD string

	OAUTH2_GOOGLE_CLIENT_ID     string
	OAUTH2_GOOGLE_CLIENT_SECRET string
	OAUTH2_GOOGLE_REDIRECT_URL  string

	JWT_SECRET         []byte
	ALLOWED_CORS_HOSTS []string

	CACHE_TTL_SECONDS     int
	CHAT_COOLDOWN_SECONDS int
	OTP_COOLDOWN_SECONDS  int
	OTP_EXPIRY_MINUTES    int
	OTP_BLOCK_MINUTES     int
}

func (ev *EnvironmentVariable) LoadFromEnv() {
	v := reflect.ValueOf(ev).Elem()
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		envKey := field.Name
		envValue := os.Getenv(envKey)
		if envValue == "" {
			fmt.Printf("Missing SYSENV: %s\n", envKey)
			continue
		}
		switch v.Field(i).Interface().(type) {
		case string:
			v.Field(i).SetString(envValue)
		case []byte:
			v.Field(i).SetBytes([]byte(envValue))
		case []string:
			parts := strings.Split(envValue, ",")
			for j := range parts {
				parts[j] = strings.TrimSpace(parts[j])
			}
			v.Field(i).Set(reflect.ValueOf(parts))
		case int:
			if n, err := strconv.Atoi(envValue); err == nil {
				v.Field(i).SetInt(int64(n))
			}
		}
	}
	ev.applyDefaults()
}

func (ev *EnvironmentVariable) applyDefaults() {
	if ev.CACHE_TTL_SECONDS == 0 {
		ev.CACHE_TTL_SECONDS = 86400
	}
	if ev.CHAT_COOLDOWN_SECONDS == 0 {
		ev.CHAT_COOLDOWN_SECONDS = 15
	}
	if ev.OTP_COOLDOWN_SECONDS == 0 {
		ev.OTP_COOLDOWN_SECONDS = 60
	}
	if ev.OTP_EXPIRY_MINUTES == 0 {
		ev.OTP_EXPIRY_MINUTES = 3
	}
	if ev.OTP_BLOCK_MINUTES == 0 {
		ev.OTP_BLOCK_MINUTES = 30
	}
}

// Singleton
var EnvironmentVariables = EnvironmentVariable{}
