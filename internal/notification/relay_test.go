package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/coursehub/coursehub-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	got []model.ExamResult
	err error
}

func (o *recordingObserver) OnExamResultRecorded(_ context.Context, result model.ExamResult) error {
	o.got = append(o.got, result)
	return o.err
}

func TestNotifyWithoutObserverIsNoop(t *testing.T) {
	r := NewRelay(nil)

	assert.False(t, r.Attached())
	assert.NoError(t, r.Notify(context.Background(), model.ExamResult{ID: 1}))
}

func TestNotifyForwardsToObserverGivenAtConstruction(t *testing.T) {
	obs := &recordingObserver{}
	r := NewRelay(obs)

	require.True(t, r.Attached())
	require.NoError(t, r.Notify(context.Background(), model.ExamResult{ID: 7, PointsScored: 42}))

	require.Len(t, obs.got, 1)
	assert.Equal(t, 7, obs.got[0].ID)
	assert.Equal(t, 42.0, obs.got[0].PointsScored)
}

func TestAttachOverwritesPreviousObserver(t *testing.T) {
	first := &recordingObserver{}
	second := &recordingObserver{}
	r := NewRelay(first)

	r.Attach(second)
	require.NoError(t, r.Notify(context.Background(), model.ExamResult{ID: 3}))

	assert.Empty(t, first.got)
	assert.Len(t, second.got, 1)
}

func TestDetachStopsForwarding(t *testing.T) {
	obs := &recordingObserver{}
	r := NewRelay(obs)

	r.Detach()
	require.NoError(t, r.Notify(context.Background(), model.ExamResult{ID: 3}))

	assert.False(t, r.Attached())
	assert.Empty(t, obs.got)

	r.Attach(obs)
	require.NoError(t, r.Notify(context.Background(), model.ExamResult{ID: 4}))
	assert.Len(t, obs.got, 1)
}

func TestNotifyReturnsObserverError(t *testing.T) {
	boom := errors.New("queue down")
	r := NewRelay(ObserverFunc(func(context.Context, model.ExamResult) error { return boom }))

	assert.ErrorIs(t, r.Notify(context.Background(), model.ExamResult{}), boom)
}

func TestNewAlertRequiresBackReferences(t *testing.T) {
	_, err := NewAlert(model.ExamResult{ID: 1}, timeZero)
	assert.ErrorIs(t, err, ErrIncompleteResult)
}
