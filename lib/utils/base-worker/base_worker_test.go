package baseworker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBaseWorker(t *testing.T) {
	t.Run(`panic recover check`, func(t *testing.T) {
		w := NewInstance("test", 0, time.Millisecond)
		require.NotPanics(t, func() {
			w.RunOnce(context.TODO(), func(ctx context.Context) {
				panic("boom")
			})
		})
	})

	t.Run(`run until context done check`, func(t *testing.T) {
		w := NewInstance("test", 0, time.Millisecond)
		ctx, cancel := context.WithCancel(context.Background())
		var runs atomic.Int32
		done := make(chan struct{})
		go func() {
			w.Run(ctx, func(ctx context.Context) {
				if runs.Add(1) == 3 {
					cancel()
				}
			})
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("задача не остановилась")
		}
		require.GreaterOrEqual(t, runs.Load(), int32(3))
	})
}
