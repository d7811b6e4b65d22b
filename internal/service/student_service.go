package service

import (
	"context"
	"fmt"

	"github.com/coursehub/coursehub-backend/internal/model"
	"github.com/rs/zerolog"
)

// StudentService maintains the student register.
type StudentService struct {
	students StudentStore
	log      zerolog.Logger
}

// NewStudentService creates a new StudentService.
func NewStudentService(students StudentStore, log zerolog.Logger) *StudentService {
	return &StudentService{
		students: students,
		log:      log.With().Str("component", "student_service").Logger(),
	}
}

// Import upserts students by index number and returns how many were written.
// It stops at the first storage error.
func (s *StudentService) Import(ctx context.Context, students []model.Student) (int, error) {
	written := 0
	for i := range students {
		if err := s.students.Upsert(ctx, &students[i]); err != nil {
			return written, fmt.Errorf("student %s: %w", students[i].IndexNumber, err)
		}
		written++
	}
	s.log.Info().Int("count", written).Msg("Students imported")
	return written, nil
}
