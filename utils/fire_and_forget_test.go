package utils

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFireAndForgetSynchronizer(t *testing.T) {
	t.Run("wait blocks until all functions finished", func(t *testing.T) {
		s := NewFireAndForgetSynchronizer(2, nil)
		var done atomic.Int32
		for range 5 {
			s.FireAndForget(func() {
				time.Sleep(5 * time.Millisecond)
				done.Add(1)
			})
		}
		s.Wait()
		assert.Equal(t, int32(5), done.Load())
	})

	t.Run("never runs more functions than the concurrency limit", func(t *testing.T) {
		s := NewFireAndForgetSynchronizer(2, nil)
		var running, maxRunning atomic.Int32
		for range 10 {
			s.FireAndForget(func() {
				n := running.Add(1)
				for {
					m := maxRunning.Load()
					if n <= m || maxRunning.CompareAndSwap(m, n) {
						break
					}
				}
				time.Sleep(2 * time.Millisecond)
				running.Add(-1)
			})
		}
		s.Wait()
		assert.LessOrEqual(t, maxRunning.Load(), int32(2))
	})

	t.Run("a panic is reported and does not crash", func(t *testing.T) {
		var reported atomic.Bool
		s := NewFireAndForgetSynchronizer(1, func(msg string, err error) {
			reported.Store(true)
		})
		s.FireAndForget(func() { panic("boom") })
		s.Wait()
		assert.True(t, reported.Load())
	})

	t.Run("sync synchronizer runs inline", func(t *testing.T) {
		s := NewSyncFireAndForgetSynchronizer()
		ran := false
		s.FireAndForget(func() { ran = true })
		assert.True(t, ran)
	})
}

func TestKeyedMutexWithSynchronizer(t *testing.T) {
	k := NewKeyedMutex()
	var counter int
	var inside atomic.Int32
	var overlap atomic.Bool

	s := NewFireAndForgetSynchronizer(8, nil)
	for range 20 {
		s.FireAndForget(func() {
			unlock := k.Lock("GLOBAL.Open Source.npm.left_pad")
			defer unlock()
			if inside.Add(1) > 1 {
				overlap.Store(true)
			}
			counter++
			inside.Add(-1)
		})
	}
	s.Wait()

	assert.False(t, overlap.Load())
	assert.Equal(t, 20, counter)
	assert.Empty(t, k.locks)
}
