package progress

import (
	"context"

	"edukasi.ai/edu-api-gateway/app/domain/exam"
	"edukasi.ai/edu-api-gateway/app/domain/reflection"
)

// Level bands for the knowledge-level report.
const (
	LevelSangatTinggi = "Sangat Tinggi"
	LevelTinggi       = "Tinggi"
	LevelSedang       = "Sedang"
	LevelRendah       = "Rendah"
	LevelSangatRendah = "Sangat Rendah"
)

// Summary aggregates every graded artifact of one student.
type Summary struct {
	AverageScore      float64
	Level             string
	ReflectionCount   int
	ReflectionAverage float64
	ExamCount         int
	ExamAverage       float64
	HasData           bool
}

type ProgressService struct {
	reflectionService *reflection.ReflectionService
	examService       *exam.ExamService
}

func NewService(reflectionService *reflection.ReflectionService, examService *exam.ExamService) *ProgressService {
	return &ProgressService{
		reflectionService: reflectionService,
		examService:       examService,
	}
}

// LevelForScore maps an average score to its knowledge-level band.
func LevelForScore(score float64) string {
	switch {
	case score >= 90:
		return LevelSangatTinggi
	case score >= 75:
		return LevelTinggi
	case score >= 60:
		return LevelSedang
	case score >= 40:
		return LevelRendah
	default:
		return LevelSangatRendah
	}
}

// Summarize computes the student's averages across reflections and exams.
func (s *ProgressService) Summarize(ctx context.Context, userID uint) (*Summary, error) {
	reflections, err := s.reflectionService.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	exams, err := s.examService.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		ReflectionCount: len(reflections),
		ExamCount:       len(exams),
	}

	var reflectionSum, examSum, totalSum float64
	var scored int
	for _, r := range reflections {
		reflectionSum += r.Score
		totalSum += r.Score
		scored++
	}
	for _, e := range exams {
		examSum += e.Score
		totalSum += e.Score
		scored++
	}
	if scored == 0 {
		return summary, nil
	}

	summary.HasData = true
	summary.AverageScore = totalSum / float64(scored)
	summary.Level = LevelForScore(summary.AverageScore)
	if len(reflections) > 0 {
		summary.ReflectionAverage = reflectionSum / float64(len(reflections))
	}
	if len(exams) > 0 {
		summary.ExamAverage = examSum / float64(len(exams))
	}
	return summary, nil
}
