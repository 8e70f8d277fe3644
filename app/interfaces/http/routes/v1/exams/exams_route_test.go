package exams

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	openai "github.com/sashabaranov/go-openai"

	"edukasi.ai/edu-api-gateway/app/domain/auth"
	"edukasi.ai/edu-api-gateway/app/domain/chatlog"
	"edukasi.ai/edu-api-gateway/app/domain/exam"
	"edukasi.ai/edu-api-gateway/app/domain/promptcache"
	"edukasi.ai/edu-api-gateway/app/domain/ratelimit"
	"edukasi.ai/edu-api-gateway/app/domain/tutor"
	"edukasi.ai/edu-api-gateway/app/domain/user"
	"edukasi.ai/edu-api-gateway/app/interfaces/http/responses"
)

type scriptedProvider struct {
	responses []string
	calls     int
}

func (p *scriptedProvider) Name() string { return "scripted" }

func (p *scriptedProvider) CreateCompletion(ctx context.Context, request openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error) {
	content := ""
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
	return nil, nil
}

type memChatLogRepo struct{ logs []*chatlog.ChatLog }

func (r *memChatLogRepo) Create(ctx context.Context, log *chatlog.ChatLog) error {
	r.logs = append(r.logs, log)
	return nil
}

func (r *memChatLogRepo) FindByFilter(ctx context.Context, filter chatlog.ChatLogFilter) ([]*chatlog.ChatLog, error) {
	return r.logs, nil
}

type memExamRepo struct {
	exams  []*exam.Exam
	nextID uint
}

func (r *memExamRepo) Create(ctx context.Context, e *exam.Exam) error {
	r.nextID++
	e.ID = r.nextID
	r.exams = append(r.exams, e)
	return nil
}

func (r *memExamRepo) FindByID(ctx context.Context, id uint) (*exam.Exam, error) {
	for _, e := range r.exams {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *memExamRepo) FindByUserID(ctx context.Context, userID uint) ([]*exam.Exam, error) {
	var out []*exam.Exam
	for _, e := range r.exams {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memExamRepo) RecordSubmission(ctx context.Context, id uint, answers string, score float64) error {
	for _, e := range r.exams {
		if e.ID == id {
			e.Answers = answers
			e.Score = score
			return nil
		}
	}
	return fmt.Errorf("exam %d not found", id)
}

func examPaperJSON() string {
	paper := exam.Questions{}
	for i := 0; i < exam.MultipleChoiceCount; i++ {
		paper.MultipleChoice = append(paper.MultipleChoice, exam.MultipleChoiceQuestion{
			Question: fmt.Sprintf("soal %d", i+1),
			Options:  []string{"A. satu", "B. dua", "C. tiga", "D. empat"},
			Answer:   "B",
		})
	}
	for i := 0; i < exam.EssayCount; i++ {
		paper.EssayQuestions = append(paper.EssayQuestions, exam.EssayQuestion{
			Question: fmt.Sprintf("esai %d", i+1),
		})
	}
	data, _ := json.Marshal(paper)
	return string(data)
}

func newTestRouter(provider *scriptedProvider, userID uint) (*gin.Engine, *memExamRepo) {
	gin.SetMode(gin.TestMode)

	examRepo := &memExamRepo{}
	examService := exam.NewService(examRepo)
	uc := tutor.NewTutorUseCase(
		provider,
		promptcache.NewService(&memCacheRepo{}, 24*time.Hour),
		ratelimit.NewLimiter(0, 60*time.Second),
		chatlog.NewService(&memChatLogRepo{}),
	)
	route := NewExamsRoute(nil, uc, examService)

	engine := gin.New()
	engine.Use(func(reqCtx *gin.Context) {
		auth.SetUserToContext(reqCtx, &user.User{ID: userID, Email: "a@b.com", GradeLevel: user.GradeLevelSD, Enabled: true})
	})
	engine.GET("/exams/generate", route.GenerateExam)
	engine.POST("/exams/submit", route.SubmitExam)
	engine.GET("/exams", route.ListExams)
	return engine, examRepo
}

func doRequest(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)
	return rec
}

func TestGenerateExamStoresPaperAndHidesAnswerKey(t *testing.T) {
	provider := &scriptedProvider{responses: []string{examPaperJSON()}}
	engine, repo := newTestRouter(provider, 1)

	rec := doRequest(engine, http.MethodGet, "/exams/generate?subject=IPA", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("generate status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp responses.GeneralResponse[GenerateExamResponse]
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Result.ExamID == 0 {
		t.Fatal("generate returned no exam id")
	}
	for i, mc := range resp.Result.Questions.MultipleChoice {
		if mc.Answer != "" {
			t.Errorf("question %d in response carries answer %q", i, mc.Answer)
		}
	}

	// the stored paper keeps the key for grading
	stored, _ := repo.FindByID(context.Background(), resp.Result.ExamID)
	if stored == nil || !strings.Contains(stored.ExamData, `"answer":"B"`) {
		t.Fatalf("stored paper = %+v, want the answer key persisted", stored)
	}
	if stored.Submitted() {
		t.Error("fresh paper is already marked submitted")
	}
}

func TestSubmitExamGradesAgainstStoredPaper(t *testing.T) {
	essayVerdicts := `[{"score":8,"feedback":"baik"},{"score":8,"feedback":"baik"},{"score":8,"feedback":"baik"},{"score":8,"feedback":"baik"},{"score":8,"feedback":"baik"}]`
	provider := &scriptedProvider{responses: []string{examPaperJSON(), essayVerdicts}}
	engine, repo := newTestRouter(provider, 1)

	rec := doRequest(engine, http.MethodGet, "/exams/generate?subject=IPA", "")
	var generated responses.GeneralResponse[GenerateExamResponse]
	if err := json.Unmarshal(rec.Body.Bytes(), &generated); err != nil {
		t.Fatalf("unmarshal generate response: %v", err)
	}

	answers := exam.Answers{}
	for i := 0; i < exam.MultipleChoiceCount; i++ {
		answers[fmt.Sprintf("mc_%d", i)] = "B"
	}
	for i := 0; i < exam.EssayCount; i++ {
		answers[fmt.Sprintf("essay_%d", i)] = "jawaban esai"
	}
	body, _ := json.Marshal(SubmitExamRequest{ExamID: generated.Result.ExamID, Answers: answers})

	rec = doRequest(engine, http.MethodPost, "/exams/submit", string(body))
	if rec.Code != http.StatusOK {
		t.Fatalf("submit status = %d, body %s", rec.Code, rec.Body.String())
	}
	var submitted responses.GeneralResponse[SubmitExamResponse]
	if err := json.Unmarshal(rec.Body.Bytes(), &submitted); err != nil {
		t.Fatalf("unmarshal submit response: %v", err)
	}
	// 10 correct MC (20) + 5 essays at 8 (40) out of 70
	if submitted.Result.Result.MultipleChoiceScore != 20 || submitted.Result.Result.EssayScore != 40 {
		t.Errorf("scores = %d mc, %d essay", submitted.Result.Result.MultipleChoiceScore, submitted.Result.Result.EssayScore)
	}

	stored, _ := repo.FindByID(context.Background(), generated.Result.ExamID)
	if !stored.Submitted() || stored.Score != submitted.Result.Result.TotalScore {
		t.Errorf("stored attempt = %+v", stored)
	}

	// a second submission is rejected
	rec = doRequest(engine, http.MethodPost, "/exams/submit", string(body))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("resubmit status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestSubmitExamRejectsForeignAttempt(t *testing.T) {
	provider := &scriptedProvider{}
	engine, repo := newTestRouter(provider, 2)

	_ = repo.Create(context.Background(), &exam.Exam{UserID: 1, Subject: "IPA", ExamData: examPaperJSON()})

	answers := exam.Answers{}
	for i := 0; i < exam.MultipleChoiceCount; i++ {
		answers[fmt.Sprintf("mc_%d", i)] = "B"
	}
	for i := 0; i < exam.EssayCount; i++ {
		answers[fmt.Sprintf("essay_%d", i)] = "jawaban"
	}
	body, _ := json.Marshal(SubmitExamRequest{ExamID: 1, Answers: answers})

	rec := doRequest(engine, http.MethodPost, "/exams/submit", string(body))
	if rec.Code != http.StatusNotFound {
		t.Errorf("foreign submit status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
