package database

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsTransientError(t *testing.T) {
	assert.True(t, IsTransientError(driver.ErrBadConn))
	assert.True(t, IsTransientError(&net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}))
	assert.True(t, IsTransientError(&pgconn.PgError{Code: "08006"}))
	assert.True(t, IsTransientError(&pgconn.PgError{Code: "57P01"}))

	assert.False(t, IsTransientError(nil))
	assert.False(t, IsTransientError(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsTransientError(errors.New("syntax error")))
}

func TestWithRetry(t *testing.T) {
	policy := RetryPolicy{Attempts: 3, Backoff: 5 * time.Millisecond}

	t.Run("two transient failures and then success commits with three attempts", func(t *testing.T) {
		calls := 0
		err := WithRetry(context.Background(), policy, "test", func(ctx context.Context) error {
			calls++
			if calls < 3 {
				return driver.ErrBadConn
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after the configured attempts", func(t *testing.T) {
		calls := 0
		err := WithRetry(context.Background(), policy, "test", func(ctx context.Context) error {
			calls++
			return &pgconn.PgError{Code: "08006"}
		})

		assert.Error(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("does not retry permanent errors", func(t *testing.T) {
		calls := 0
		permanent := &pgconn.PgError{Code: "42601"}
		err := WithRetry(context.Background(), policy, "test", func(ctx context.Context) error {
			calls++
			return permanent
		})

		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("stops when the context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		err := WithRetry(ctx, RetryPolicy{Attempts: 10, Backoff: time.Second}, "test", func(ctx context.Context) error {
			calls++
			cancel()
			return driver.ErrBadConn
		})

		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("default policy matches three attempts with 200ms backoff", func(t *testing.T) {
		p := DefaultRetryPolicy()
		assert.Equal(t, 3, p.Attempts)
		assert.Equal(t, 200*time.Millisecond, p.Backoff)
		assert.Equal(t, 5, NewRetryPolicy(5).Attempts)
		assert.Equal(t, 3, NewRetryPolicy(0).Attempts)
	})
}
