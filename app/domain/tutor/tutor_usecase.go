package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"edukasi.ai/edu-api-gateway/app/domain/chatlog"
	"edukasi.ai/edu-api-gateway/app/domain/exam"
	"edukasi.ai/edu-api-gateway/app/domain/inference"
	"edukasi.ai/edu-api-gateway/app/domain/promptcache"
	"edukasi.ai/edu-api-gateway/app/domain/ratelimit"
	"edukasi.ai/edu-api-gateway/app/utils/logger"
)

// TutorUseCase routes every AI interaction of the platform: chat with the
// subject tutor, reflection stories and grading, exam generation and grading,
// and the knowledge-level feedback note.
type TutorUseCase struct {
	provider       inference.Provider
	cache          *promptcache.CacheService
	limiter        *ratelimit.Limiter
	chatlogService *chatlog.ChatLogService
}

func NewTutorUseCase(provider inference.Provider, cache *promptcache.CacheService, limiter *ratelimit.Limiter, chatlogService *chatlog.ChatLogService) *TutorUseCase {
	return &TutorUseCase{
		provider:       provider,
		cache:          cache,
		limiter:        limiter,
		chatlogService: chatlogService,
	}
}

// ReflectionGrade is the parsed grading verdict for one reflection.
type ReflectionGrade struct {
	Score      float64 `json:"score"`
	Correction string  `json:"correction"`
	Feedback   string  `json:"feedback"`
}

func rateKey(userID uint) string {
	return strconv.FormatUint(uint64(userID), 10)
}

// complete runs one completion against the configured provider and returns
// the first choice's content.
func (uc *TutorUseCase) complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	messages := []openai.ChatCompletionMessage{}
	if systemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userMessage,
	})

	resp, err := uc.provider.CreateCompletion(ctx, openai.ChatCompletionRequest{
		Messages: messages,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("tutor: provider returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// cachedCompletion answers from the fingerprint cache when possible and
// otherwise asks the provider and stores the result.
func (uc *TutorUseCase) cachedCompletion(ctx context.Context, query, subject, gradeLevel, systemPrompt string) (response string, fromCache bool, err error) {
	cached, ok, err := uc.cache.Lookup(ctx, query, subject, gradeLevel)
	if err != nil {
		// a broken cache must not block the tutor
		logger.GetLogger().Warnf("tutor: cache lookup failed: %v", err)
	}
	if ok {
		return cached, true, nil
	}

	answer, err := uc.complete(ctx, systemPrompt, query)
	if err != nil {
		return "", false, err
	}
	if err := uc.cache.Store(ctx, query, answer, subject, gradeLevel); err != nil {
		logger.GetLogger().Warnf("tutor: cache store failed: %v", err)
	}
	return answer, false, nil
}

// Chat answers one student message in the subject tutor persona. The call is
// rate-gated per user; the stamp is recorded only after the exchange succeeds.
func (uc *TutorUseCase) Chat(ctx context.Context, userID uint, subject, gradeLevel, message string) (string, error) {
	key := rateKey(userID)
	if !uc.limiter.Allow(key, ratelimit.ActionChat) {
		return "", &ratelimit.CooldownError{
			Action:     ratelimit.ActionChat,
			RetryAfter: uc.limiter.RetryAfter(key, ratelimit.ActionChat),
		}
	}

	sanitized := SanitizeInput(message)
	answer, fromCache, err := uc.cachedCompletion(ctx, sanitized, subject, gradeLevel, subjectSystemPrompt(subject, gradeLevel))
	if err != nil {
		return "", err
	}

	providerName := uc.provider.Name()
	if fromCache {
		providerName = "cache"
	}
	if err := uc.chatlogService.Record(ctx, &chatlog.ChatLog{
		UserID:      userID,
		Subject:     subject,
		GradeLevel:  gradeLevel,
		UserMessage: sanitized,
		AIResponse:  answer,
		AIProvider:  providerName,
	}); err != nil {
		return "", err
	}

	uc.limiter.Record(key, ratelimit.ActionChat)
	return answer, nil
}

// GenerateReflectionStory builds the short scenario a student reflects on.
func (uc *TutorUseCase) GenerateReflectionStory(ctx context.Context, subject, gradeLevel string) (string, error) {
	story, _, err := uc.cachedCompletion(ctx, reflectionStoryPrompt(subject, gradeLevel), subject, gradeLevel, "")
	return story, err
}

// GradeReflection has the model grade a reflection and parses its verdict.
func (uc *TutorUseCase) GradeReflection(ctx context.Context, text, subject, gradeLevel string) (*ReflectionGrade, error) {
	raw, err := uc.complete(ctx, "", gradeReflectionPrompt(SanitizeInput(text), subject, gradeLevel))
	if err != nil {
		return nil, err
	}
	var grade ReflectionGrade
	if err := json.Unmarshal([]byte(extractJSON(raw)), &grade); err != nil {
		return nil, fmt.Errorf("tutor: unparseable grading response: %w", err)
	}
	return &grade, nil
}

// GenerateExam builds a fresh exam paper. Exams are deliberately not cached so
// repeated attempts get different questions.
func (uc *TutorUseCase) GenerateExam(ctx context.Context, subject, gradeLevel string) (*exam.Questions, error) {
	raw, err := uc.complete(ctx, "", generateExamPrompt(subject, gradeLevel))
	if err != nil {
		return nil, err
	}
	var questions exam.Questions
	if err := json.Unmarshal([]byte(extractJSON(raw)), &questions); err != nil {
		return nil, fmt.Errorf("tutor: unparseable exam response: %w", err)
	}
	if len(questions.MultipleChoice) == 0 || len(questions.EssayQuestions) == 0 {
		return nil, fmt.Errorf("tutor: incomplete exam generated")
	}
	return &questions, nil
}

// GradeExam scores the multiple-choice answers locally and sends the essays to
// the model in a single grading call.
func (uc *TutorUseCase) GradeExam(ctx context.Context, questions *exam.Questions, answers exam.Answers) (*exam.Result, error) {
	mcScore := questions.ScoreMultipleChoice(answers)

	var pairs strings.Builder
	for i, q := range questions.EssayQuestions {
		fmt.Fprintf(&pairs, "Esai %d\nSoal: %s\nJawaban: %s\n\n", i+1, q.Question, SanitizeInput(answers[fmt.Sprintf("essay_%d", i)]))
	}
	raw, err := uc.complete(ctx, "", gradeEssaysPrompt(pairs.String()))
	if err != nil {
		return nil, err
	}

	var verdicts []struct {
		Score    int    `json:"score"`
		Feedback string `json:"feedback"`
	}
	if err := json.Unmarshal([]byte(extractJSON(raw)), &verdicts); err != nil {
		return nil, fmt.Errorf("tutor: unparseable essay grades: %w", err)
	}
	if len(verdicts) != len(questions.EssayQuestions) {
		return nil, fmt.Errorf("tutor: got %d essay grades, want %d", len(verdicts), len(questions.EssayQuestions))
	}

	grades := make([]exam.EssayGrade, len(verdicts))
	for i, v := range verdicts {
		score := v.Score
		if score < 0 {
			score = 0
		}
		if score > 10 {
			score = 10
		}
		grades[i] = exam.EssayGrade{
			Question: questions.EssayQuestions[i].Question,
			Answer:   answers[fmt.Sprintf("essay_%d", i)],
			Score:    score,
			Feedback: v.Feedback,
		}
	}

	result := questions.Tally(mcScore, grades)
	return &result, nil
}

// ValidateIdea turns a student's project idea into a simple proof-of-concept
// plan. Ideas are not tied to a subject, so the cache files them under the
// fixed "Teknologi"/"Umum" pair.
func (uc *TutorUseCase) ValidateIdea(ctx context.Context, idea string) (string, error) {
	prompt := validateIdeaPrompt(SanitizeInput(idea))
	plan, _, err := uc.cachedCompletion(ctx, prompt, "Teknologi", "Umum", "")
	return plan, err
}

// KnowledgeFeedback writes the study-advice note for the progress report.
func (uc *TutorUseCase) KnowledgeFeedback(ctx context.Context, average float64, level, gradeLevel string, reflections, exams int) (string, error) {
	prompt := knowledgeFeedbackPrompt(average, level, gradeLevel, reflections, exams)
	feedback, _, err := uc.cachedCompletion(ctx, prompt, "Evaluasi", gradeLevel, "")
	return feedback, err
}

// extractJSON strips markdown code fences models like to wrap JSON in.
func extractJSON(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}
