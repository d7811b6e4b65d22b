// Package grading decides whether exam scores pass and tallies course outcomes.
package grading

import (
	"errors"
	"fmt"

	"github.com/coursehub/coursehub-backend/internal/model"
)

// ErrInvalidArgument is returned when a score cannot be evaluated.
var ErrInvalidArgument = errors.New("invalid argument")

// Evaluate reports whether scored/totalPoints reaches passingThreshold.
func Evaluate(scored, totalPoints, passingThreshold float64) (bool, error) {
	// Comparisons are negated so NaN is rejected too.
	if !(totalPoints > 0) {
		return false, fmt.Errorf("%w: total points must be positive, got %g", ErrInvalidArgument, totalPoints)
	}
	if !(passingThreshold >= 0 && passingThreshold <= 1) {
		return false, fmt.Errorf("%w: passing threshold %g outside [0, 1]", ErrInvalidArgument, passingThreshold)
	}
	return scored/totalPoints >= passingThreshold, nil
}

// Tally counts passed and failed students of a course.
type Tally struct {
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// Evaluator applies one fixed passing threshold.
type Evaluator struct {
	threshold float64
}

// NewEvaluator creates an Evaluator using threshold as the passing policy.
func NewEvaluator(threshold float64) *Evaluator {
	return &Evaluator{threshold: threshold}
}

// Threshold returns the passing policy value.
func (e *Evaluator) Threshold() float64 {
	return e.threshold
}

// Evaluate applies the evaluator's threshold to one score.
func (e *Evaluator) Evaluate(scored, totalPoints float64) (bool, error) {
	return Evaluate(scored, totalPoints, e.threshold)
}

// Tally counts how many summaries passed overall.
func (e *Evaluator) Tally(summaries []model.StudentSummary) Tally {
	var t Tally
	for _, s := range summaries {
		if s.IsPassedOverall {
			t.Passed++
		} else {
			t.Failed++
		}
	}
	return t
}
