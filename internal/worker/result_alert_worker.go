package worker

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/coursehub/coursehub-backend/internal/config"
	"github.com/coursehub/coursehub-backend/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	AlertBatchSize    = 50
	AlertBatchTimeout = 2 * time.Second
	AlertPollTimeout  = 1 * time.Second
)

// AlertStore persists drained alerts.
type AlertStore interface {
	BulkInsert(ctx context.Context, alerts []model.ExamResultAlert) error
	Insert(ctx context.Context, a *model.ExamResultAlert) error
}

// ResultAlertWorker drains the exam result alert queue, stores the alerts and
// republishes them on each course's results channel.
type ResultAlertWorker struct {
	store AlertStore
	rdb   redis.Cmdable
	queue string
	log   zerolog.Logger
}

func NewResultAlertWorker(store AlertStore, rdb redis.Cmdable, log zerolog.Logger) *ResultAlertWorker {
	return &ResultAlertWorker{
		store: store,
		rdb:   rdb,
		queue: config.WorkerKey.ExamResultAlertsQueue,
		log:   log.With().Str("component", "result_alert_worker").Logger(),
	}
}

// ----------------------------------------------------------------
// Worker loop with batching
// ----------------------------------------------------------------

func (w *ResultAlertWorker) Start(ctx context.Context) {
	w.log.Info().Msg("ResultAlertWorker started")

	batch := make([]model.ExamResultAlert, 0, AlertBatchSize)
	lastFlush := time.Now()

	for {
		if len(batch) > 0 &&
			(len(batch) >= AlertBatchSize || time.Since(lastFlush) >= AlertBatchTimeout) {

			w.flushSafe(ctx, batch)
			batch = batch[:0]
			lastFlush = time.Now()
		}

		select {
		case <-ctx.Done():
			w.log.Info().Int("pending", len(batch)).Msg("Shutdown requested. Flushing remaining batch...")
			w.flushSafe(context.Background(), batch)
			return

		default:
			if alert, ok := w.poll(ctx); ok {
				batch = append(batch, alert)
			}
		}
	}
}

// poll waits up to AlertPollTimeout for one queued alert.
func (w *ResultAlertWorker) poll(ctx context.Context) (model.ExamResultAlert, bool) {
	item, err := w.rdb.BLPop(ctx, AlertPollTimeout, w.queue).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) && ctx.Err() == nil {
			w.log.Error().Err(err).Msg("BLPop error")
		}
		return model.ExamResultAlert{}, false
	}
	if len(item) < 2 {
		return model.ExamResultAlert{}, false
	}

	var a model.ExamResultAlert
	if err := json.Unmarshal([]byte(item[1]), &a); err != nil {
		w.log.Error().Err(err).Msg("Invalid alert payload")
		return model.ExamResultAlert{}, false
	}
	return a, true
}

// ----------------------------------------------------------------
// Persist, then publish what was stored
// ----------------------------------------------------------------

func (w *ResultAlertWorker) flushSafe(ctx context.Context, batch []model.ExamResultAlert) {
	if len(batch) == 0 {
		return
	}

	err := w.store.BulkInsert(ctx, batch)
	if err == nil {
		w.publish(ctx, batch)
		return
	}
	w.log.Warn().Err(err).Int("size", len(batch)).Msg("bulk alert insert failed, using fallback")

	stored := make([]model.ExamResultAlert, 0, len(batch))
	for i := range batch {
		a := batch[i]
		if err := w.store.Insert(ctx, &a); err != nil {
			w.log.Error().Err(err).Int("result_id", a.ResultID).Msg("alert insert failed, requeueing")
			w.requeue(ctx, a)
			continue
		}
		stored = append(stored, a)
	}
	w.publish(ctx, stored)
}

func (w *ResultAlertWorker) requeue(ctx context.Context, a model.ExamResultAlert) {
	raw, err := json.Marshal(a)
	if err != nil {
		return
	}
	if err := w.rdb.RPush(ctx, w.queue, raw).Err(); err != nil {
		w.log.Error().Err(err).Int("result_id", a.ResultID).Msg("requeue failed, alert dropped")
	}
}

func (w *ResultAlertWorker) publish(ctx context.Context, alerts []model.ExamResultAlert) {
	for _, a := range alerts {
		raw, err := json.Marshal(a)
		if err != nil {
			continue
		}
		channel := config.CacheKey.CourseResultsChannel(a.CourseID)
		if err := w.rdb.Publish(ctx, channel, raw).Err(); err != nil {
			w.log.Warn().Err(err).Str("channel", channel).Msg("publish alert failed")
		}
	}
}
