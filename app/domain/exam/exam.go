package exam

import (
	"context"
	"fmt"
	"math"
	"time"
)

const (
	MultipleChoiceCount = 10
	EssayCount          = 5

	pointsPerMultipleChoice = 2
	pointsPerEssay          = 10
)

// MultipleChoiceQuestion has options rendered as "A. ..." through "D. ..." and
// Answer holding the correct letter.
type MultipleChoiceQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

type EssayQuestion struct {
	Question string `json:"question"`
}

// Questions is the generated exam paper. It is stored alongside the student's
// answers as JSON.
type Questions struct {
	MultipleChoice []MultipleChoiceQuestion `json:"multiple_choice"`
	EssayQuestions []EssayQuestion          `json:"essay_questions"`
}

// Answers maps question keys ("mc_0".."mc_9", "essay_0".."essay_4") to the
// student's answer: a letter for multiple choice, free text for essays.
type Answers map[string]string

// WithoutAnswerKey returns a copy of the paper safe to hand to the student:
// the multiple-choice answer letters are blanked.
func (q *Questions) WithoutAnswerKey() *Questions {
	out := Questions{
		MultipleChoice: make([]MultipleChoiceQuestion, len(q.MultipleChoice)),
		EssayQuestions: append([]EssayQuestion(nil), q.EssayQuestions...),
	}
	for i, mc := range q.MultipleChoice {
		mc.Answer = ""
		out.MultipleChoice[i] = mc
	}
	return &out
}

// Complete reports whether every question has an answer.
func (q *Questions) Complete(answers Answers) bool {
	for i := range q.MultipleChoice {
		if answers[fmt.Sprintf("mc_%d", i)] == "" {
			return false
		}
	}
	for i := range q.EssayQuestions {
		if answers[fmt.Sprintf("essay_%d", i)] == "" {
			return false
		}
	}
	return true
}

// Result is the graded outcome. MultipleChoiceScore is out of 2 points per
// question, EssayScore out of 10 per essay, TotalScore normalized to 0..100.
type Result struct {
	TotalScore          float64      `json:"total_score"`
	MultipleChoiceScore int          `json:"multiple_choice_score"`
	EssayScore          int          `json:"essay_score"`
	EssayDetails        []EssayGrade `json:"essay_details"`
}

type EssayGrade struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// ScoreMultipleChoice compares the student's letters against the answer key.
func (q *Questions) ScoreMultipleChoice(answers Answers) int {
	score := 0
	for i, mc := range q.MultipleChoice {
		if answers[fmt.Sprintf("mc_%d", i)] == mc.Answer {
			score += pointsPerMultipleChoice
		}
	}
	return score
}

// Tally combines the local multiple-choice score with the AI essay grades and
// normalizes the total to 0..100.
func (q *Questions) Tally(mcScore int, essayGrades []EssayGrade) Result {
	essayScore := 0
	for _, g := range essayGrades {
		essayScore += g.Score
	}
	maxScore := len(q.MultipleChoice)*pointsPerMultipleChoice + len(q.EssayQuestions)*pointsPerEssay
	total := 0.0
	if maxScore > 0 {
		total = math.Round(float64(mcScore+essayScore)/float64(maxScore)*10000) / 100
	}
	return Result{
		TotalScore:          total,
		MultipleChoiceScore: mcScore,
		EssayScore:          essayScore,
		EssayDetails:        essayGrades,
	}
}

// Exam is a persisted exam attempt. The paper is stored at generation time
// with empty Answers; a submission fills in Answers and Score. Grading always
// reads the stored paper, never a client-supplied one, so the answer key can
// not be tampered with between generation and submission.
type Exam struct {
	ID        uint
	UserID    uint
	Subject   string
	ExamData  string // JSON of Questions
	Answers   string // JSON of Answers, empty until submitted
	Score     float64
	CreatedAt time.Time
}

// Submitted reports whether the attempt has been graded already.
func (e *Exam) Submitted() bool {
	return e.Answers != ""
}

type ExamRepository interface {
	Create(ctx context.Context, e *Exam) error
	// FindByID returns (nil, nil) when no attempt exists.
	FindByID(ctx context.Context, id uint) (*Exam, error)
	FindByUserID(ctx context.Context, userID uint) ([]*Exam, error)
	// RecordSubmission stores the student's answers and the final score.
	RecordSubmission(ctx context.Context, id uint, answers string, score float64) error
}

type ExamService struct {
	repo ExamRepository
}

func NewService(repo ExamRepository) *ExamService {
	return &ExamService{repo: repo}
}

func (s *ExamService) Save(ctx context.Context, e *Exam) error {
	return s.repo.Create(ctx, e)
}

// FindOwned returns the user's attempt, or nil when it does not exist or
// belongs to someone else.
func (s *ExamService) FindOwned(ctx context.Context, id, userID uint) (*Exam, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil || e.UserID != userID {
		return nil, nil
	}
	return e, nil
}

func (s *ExamService) RecordSubmission(ctx context.Context, id uint, answers string, score float64) error {
	return s.repo.RecordSubmission(ctx, id, answers, score)
}

// ListByUser returns the user's graded attempts. Papers that were generated
// but never submitted stay out of history and progress averages.
func (s *ExamService) ListByUser(ctx context.Context, userID uint) ([]*Exam, error) {
	all, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	graded := make([]*Exam, 0, len(all))
	for _, e := range all {
		if e.Submitted() {
			graded = append(graded, e)
		}
	}
	return graded, nil
}
