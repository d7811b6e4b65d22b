// Package notification forwards recorded exam results to at most one observer.
package notification

import (
	"context"

	"github.com/coursehub/coursehub-backend/internal/model"
)

// Observer is notified after an exam result has been recorded or changed.
type Observer interface {
	OnExamResultRecorded(ctx context.Context, result model.ExamResult) error
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx context.Context, result model.ExamResult) error

func (f ObserverFunc) OnExamResultRecorded(ctx context.Context, result model.ExamResult) error {
	return f(ctx, result)
}

// Relay holds a single observer slot. It is meant to live for one result write
// and is not safe for concurrent use.
type Relay struct {
	observer Observer
}

// NewRelay returns a relay attached to observer, or an unattached relay when
// observer is nil.
func NewRelay(observer Observer) *Relay {
	return &Relay{observer: observer}
}

// Attach replaces the current observer.
func (r *Relay) Attach(observer Observer) {
	r.observer = observer
}

// Detach clears the observer slot.
func (r *Relay) Detach() {
	r.observer = nil
}

// Attached reports whether an observer is set.
func (r *Relay) Attached() bool {
	return r.observer != nil
}

// Notify forwards result to the attached observer. Without an observer it does nothing.
func (r *Relay) Notify(ctx context.Context, result model.ExamResult) error {
	if r.observer == nil {
		return nil
	}
	return r.observer.OnExamResultRecorded(ctx, result)
}
