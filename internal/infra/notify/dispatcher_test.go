//go:build unit

package notify_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"resort-engine/internal/infra/notify"
	"resort-engine/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu   sync.Mutex
	got  []shared.Notification
	fail bool
}

func (r *recorder) Send(_ context.Context, n shared.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, n)
	if r.fail {
		return assert.AnError
	}
	return nil
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.got)
}

func TestDispatcherDeliversAll(t *testing.T) {
	rec := &recorder{}
	d := notify.NewDispatcher(rec, 3, 32, nil)
	d.Start()

	for range 20 {
		d.Notify(context.Background(), shared.Notification{Recipient: "guest@example.com", Template: shared.TemplateReservationCreated})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, d.Stop(ctx))
	assert.Equal(t, 20, rec.count())
}

func TestDispatcherSwallowsSinkFailures(t *testing.T) {
	rec := &recorder{fail: true}
	d := notify.NewDispatcher(rec, 1, 4, nil)
	d.Start()

	d.Notify(context.Background(), shared.Notification{Template: shared.TemplatePaymentReceived})

	require.NoError(t, d.Stop(context.Background()))
	assert.Equal(t, 1, rec.count())
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	release := make(chan struct{})
	var sent int
	var mu sync.Mutex
	sink := notify.SinkFunc(func(context.Context, shared.Notification) error {
		<-release
		mu.Lock()
		sent++
		mu.Unlock()
		return nil
	})
	d := notify.NewDispatcher(sink, 1, 1, nil)

	// no workers yet: the first fills the queue, the rest are dropped
	for range 5 {
		d.Notify(context.Background(), shared.Notification{Template: shared.TemplateVerificationCode})
	}
	d.Start()
	close(release)
	require.NoError(t, d.Stop(context.Background()))

	assert.Equal(t, 1, sent)
}

func TestDispatcherIgnoresNotifyAfterStop(t *testing.T) {
	rec := &recorder{}
	d := notify.NewDispatcher(rec, 1, 4, nil)
	d.Start()
	require.NoError(t, d.Stop(context.Background()))

	assert.NotPanics(t, func() {
		d.Notify(context.Background(), shared.Notification{Template: shared.TemplateReservationUpdated})
	})
	assert.Zero(t, rec.count())
}

func TestLogSink(t *testing.T) {
	assert.NoError(t, notify.NewLogSink(nil).Send(context.Background(), shared.Notification{Template: "x"}))
}
