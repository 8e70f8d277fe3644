package tutor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"edukasi.ai/edu-api-gateway/app/domain/chatlog"
	"edukasi.ai/edu-api-gateway/app/domain/exam"
	"edukasi.ai/edu-api-gateway/app/domain/promptcache"
	"edukasi.ai/edu-api-gateway/app/domain/ratelimit"
)

type scriptedProvider struct {
	responses []string
	calls     int
	err       error
}

func (p *scriptedProvider) Name() string { return "scripted" }

func (p *scriptedProvider) CreateCompletion(ctx context.Context, request openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error) {
	if p.err != nil {
		return nil, p.err
	}
	content := "jawaban"
	if p.calls < len(p.responses) {
		content = p.responses[p.calls]
	}
	p.calls++
	return &openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content}},
		},
	}, nil
}

type memCacheRepo struct{ entries []*promptcache.Entry }

func (r *memCacheRepo) Insert(ctx context.Context, entry *promptcache.Entry) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *memCacheRepo) FindLive(ctx context.Context, fingerprint string, now time.Time) (*promptcache.Entry, error) {
	var found *promptcache.Entry
	for _, e := range r.entries {
		if e.Fingerprint == fingerprint && e.ExpiresAt.After(now) {
			if found == nil || e.CreatedAt.After(found.CreatedAt) {
				found = e
			}
		}
	}
	return found, nil
}

type memChatLogRepo struct{ logs []*chatlog.ChatLog }

func (r *memChatLogRepo) Create(ctx context.Context, log *chatlog.ChatLog) error {
	r.logs = append(r.logs, log)
	return nil
}

func (r *memChatLogRepo) FindByFilter(ctx context.Context, filter chatlog.ChatLogFilter) ([]*chatlog.ChatLog, error) {
	return r.logs, nil
}

func newTestUseCase(provider *scriptedProvider, chatCooldown time.Duration) (*TutorUseCase, *memChatLogRepo) {
	cacheRepo := &memCacheRepo{}
	logRepo := &memChatLogRepo{}
	uc := NewTutorUseCase(
		provider,
		promptcache.NewService(cacheRepo, 24*time.Hour),
		ratelimit.NewLimiter(chatCooldown, 60*time.Second),
		chatlog.NewService(logRepo),
	)
	return uc, logRepo
}

func TestChatCachesAndLogs(t *testing.T) {
	ctx := context.Background()
	provider := &scriptedProvider{responses: []string{"gravitasi adalah gaya tarik bumi"}}
	uc, logRepo := newTestUseCase(provider, 0) // no cooldown so the second call goes through

	first, err := uc.Chat(ctx, 1, "IPA", "SD", "apa itu gravitasi")
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if provider.calls != 1 {
		t.Fatalf("provider calls = %d, want 1", provider.calls)
	}

	// identical question is answered from the cache
	second, err := uc.Chat(ctx, 2, "IPA", "SD", "apa itu gravitasi")
	if err != nil {
		t.Fatalf("second Chat() error = %v", err)
	}
	if provider.calls != 1 {
		t.Errorf("provider calls = %d after cached chat, want 1", provider.calls)
	}
	if first != second {
		t.Errorf("cached answer %q differs from original %q", second, first)
	}

	if len(logRepo.logs) != 2 {
		t.Fatalf("chat logs = %d, want 2", len(logRepo.logs))
	}
	if logRepo.logs[0].AIProvider != "scripted" || logRepo.logs[1].AIProvider != "cache" {
		t.Errorf("providers logged = %s, %s", logRepo.logs[0].AIProvider, logRepo.logs[1].AIProvider)
	}
}

func TestChatRateLimited(t *testing.T) {
	ctx := context.Background()
	provider := &scriptedProvider{}
	uc, _ := newTestUseCase(provider, 15*time.Second)

	if _, err := uc.Chat(ctx, 1, "IPA", "SD", "pertama"); err != nil {
		t.Fatalf("Chat() error = %v", err)
	}

	_, err := uc.Chat(ctx, 1, "IPA", "SD", "kedua")
	var cooldown *ratelimit.CooldownError
	if !errors.As(err, &cooldown) {
		t.Fatalf("Chat() error = %v, want CooldownError", err)
	}
	if cooldown.RetryAfter <= 0 || cooldown.RetryAfter > 15*time.Second {
		t.Errorf("RetryAfter = %v", cooldown.RetryAfter)
	}

	// another user is unaffected
	if _, err := uc.Chat(ctx, 2, "IPA", "SD", "kedua"); err != nil {
		t.Errorf("Chat() for another user error = %v", err)
	}
}

func TestChatProviderFailureDoesNotRecordStamp(t *testing.T) {
	ctx := context.Background()
	provider := &scriptedProvider{err: errors.New("quota exceeded")}
	uc, logRepo := newTestUseCase(provider, 15*time.Second)

	if _, err := uc.Chat(ctx, 1, "IPA", "SD", "halo"); err == nil {
		t.Fatal("Chat() error = nil with a failing provider")
	}
	if len(logRepo.logs) != 0 {
		t.Errorf("chat logs = %d after failure, want 0", len(logRepo.logs))
	}

	// the failed attempt must not consume the cooldown
	provider.err = nil
	if _, err := uc.Chat(ctx, 1, "IPA", "SD", "halo"); err != nil {
		t.Errorf("Chat() after provider recovery error = %v", err)
	}
}

func TestGradeReflectionParsesVerdict(t *testing.T) {
	ctx := context.Background()
	provider := &scriptedProvider{responses: []string{
		"```json\n{\"score\": 85, \"correction\": \"perbaiki ejaan\", \"feedback\": \"bagus\"}\n```",
	}}
	uc, _ := newTestUseCase(provider, 0)

	grade, err := uc.GradeReflection(ctx, "refleksi saya", "IPA", "SMP")
	if err != nil {
		t.Fatalf("GradeReflection() error = %v", err)
	}
	if grade.Score != 85 || grade.Correction != "perbaiki ejaan" || grade.Feedback != "bagus" {
		t.Errorf("grade = %+v", grade)
	}
}

func TestGenerateExamParsesPaper(t *testing.T) {
	ctx := context.Background()

	var mc []string
	for i := 0; i < 10; i++ {
		mc = append(mc, fmt.Sprintf(`{"question": "soal %d", "options": ["A. x", "B. y", "C. z", "D. w"], "answer": "A"}`, i+1))
	}
	var essays []string
	for i := 0; i < 5; i++ {
		essays = append(essays, fmt.Sprintf(`{"question": "esai %d"}`, i+1))
	}
	paper := fmt.Sprintf(`{"multiple_choice": [%s], "essay_questions": [%s]}`,
		strings.Join(mc, ","), strings.Join(essays, ","))

	provider := &scriptedProvider{responses: []string{paper, paper}}
	uc, _ := newTestUseCase(provider, 0)

	questions, err := uc.GenerateExam(ctx, "MATEMATIKA", "SMA")
	if err != nil {
		t.Fatalf("GenerateExam() error = %v", err)
	}
	if len(questions.MultipleChoice) != 10 || len(questions.EssayQuestions) != 5 {
		t.Fatalf("paper = %d MC / %d essays", len(questions.MultipleChoice), len(questions.EssayQuestions))
	}

	// exam generation is never served from the cache
	if _, err := uc.GenerateExam(ctx, "MATEMATIKA", "SMA"); err != nil {
		t.Fatalf("second GenerateExam() error = %v", err)
	}
	if provider.calls != 2 {
		t.Errorf("provider calls = %d, want 2", provider.calls)
	}
}

func TestGradeExam(t *testing.T) {
	ctx := context.Background()

	questions := &exam.Questions{}
	for i := 0; i < 10; i++ {
		questions.MultipleChoice = append(questions.MultipleChoice, exam.MultipleChoiceQuestion{
			Question: fmt.Sprintf("soal %d", i+1),
			Options:  []string{"A. x", "B. y", "C. z", "D. w"},
			Answer:   "A",
		})
	}
	for i := 0; i < 2; i++ {
		questions.EssayQuestions = append(questions.EssayQuestions, exam.EssayQuestion{Question: fmt.Sprintf("esai %d", i+1)})
	}

	answers := exam.Answers{}
	for i := 0; i < 10; i++ {
		answers[fmt.Sprintf("mc_%d", i)] = "A"
	}
	answers["essay_0"] = "jawaban satu"
	answers["essay_1"] = "jawaban dua"

	provider := &scriptedProvider{responses: []string{
		`[{"score": 8, "feedback": "cukup"}, {"score": 10, "feedback": "lengkap"}]`,
	}}
	uc, _ := newTestUseCase(provider, 0)

	result, err := uc.GradeExam(ctx, questions, answers)
	if err != nil {
		t.Fatalf("GradeExam() error = %v", err)
	}
	if result.MultipleChoiceScore != 20 || result.EssayScore != 18 {
		t.Errorf("scores = %d/%d, want 20/18", result.MultipleChoiceScore, result.EssayScore)
	}
	// 38 of 40 possible points
	if result.TotalScore != 95 {
		t.Errorf("TotalScore = %v, want 95", result.TotalScore)
	}
}

func TestGradeExamVerdictCountMismatch(t *testing.T) {
	ctx := context.Background()
	questions := &exam.Questions{
		EssayQuestions: []exam.EssayQuestion{{Question: "esai 1"}, {Question: "esai 2"}},
	}
	provider := &scriptedProvider{responses: []string{`[{"score": 8, "feedback": "ok"}]`}}
	uc, _ := newTestUseCase(provider, 0)

	if _, err := uc.GradeExam(ctx, questions, exam.Answers{"essay_0": "a", "essay_1": "b"}); err == nil {
		t.Fatal("GradeExam() error = nil with a short verdict list")
	}
}

func TestValidateIdeaCachesPlan(t *testing.T) {
	ctx := context.Background()
	provider := &scriptedProvider{responses: []string{"1. Komponen: Arduino Uno, sensor kelembaban"}}
	uc, _ := newTestUseCase(provider, 0)

	first, err := uc.ValidateIdea(ctx, "penyiraman tanaman otomatis")
	if err != nil {
		t.Fatalf("ValidateIdea() error = %v", err)
	}
	if !strings.Contains(first, "Arduino") {
		t.Errorf("ValidateIdea() = %q", first)
	}

	// same idea is answered from the cache
	second, err := uc.ValidateIdea(ctx, "penyiraman tanaman otomatis")
	if err != nil {
		t.Fatalf("second ValidateIdea() error = %v", err)
	}
	if second != first {
		t.Errorf("cached ValidateIdea() = %q, want %q", second, first)
	}
	if provider.calls != 1 {
		t.Errorf("provider calls = %d, want 1", provider.calls)
	}
}
