package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestValidateCronSchedule(t *testing.T) {
	assert.NoError(t, ValidateCronSchedule("0 3 * * *"))
	assert.NoError(t, ValidateCronSchedule("*/15 * * * *"))
	assert.Error(t, ValidateCronSchedule("0 0 3 * * *"))
	assert.Error(t, ValidateCronSchedule("every night"))
}

func TestAuditCleanupScheduler_StartStop(t *testing.T) {
	s := NewAuditCleanupScheduler("* * * * *", 30, func(int) error { return nil }, zap.NewNop())

	assert.Nil(t, s.GetNextRunTime())
	require.NoError(t, s.Start(context.Background()))
	assert.True(t, s.IsRunning())

	next := s.GetNextRunTime()
	require.NotNil(t, next)
	assert.WithinDuration(t, time.Now(), *next, time.Minute+time.Second)

	require.NoError(t, s.Start(context.Background()), "second start is a no-op")

	s.Stop()
	assert.False(t, s.IsRunning())
	assert.Nil(t, s.GetNextRunTime())

	s.Stop()
}

func TestAuditCleanupScheduler_InvalidSchedule(t *testing.T) {
	s := NewAuditCleanupScheduler("not a schedule", 30, func(int) error { return nil }, zap.NewNop())

	err := s.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a schedule")
	assert.False(t, s.IsRunning())
}

func TestAuditCleanupScheduler_StopsOnContextCancel(t *testing.T) {
	s := NewAuditCleanupScheduler("0 3 * * *", 30, func(int) error { return nil }, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Start(ctx))
	cancel()

	assert.Eventually(t, func() bool { return !s.IsRunning() }, time.Second, 10*time.Millisecond)
}

func TestAuditCleanupScheduler_RunPassesRetention(t *testing.T) {
	var got int
	s := NewAuditCleanupScheduler("0 3 * * *", 14, func(days int) error {
		got = days
		return nil
	}, zap.NewNop())

	s.run()
	assert.Equal(t, 14, got)
}

func TestAuditCleanupScheduler_RunLogsFailure(t *testing.T) {
	calls := 0
	s := NewAuditCleanupScheduler("0 3 * * *", 14, func(int) error {
		calls++
		return errors.New("queue closed")
	}, zap.NewNop())

	assert.NotPanics(t, s.run)
	assert.Equal(t, 1, calls)
}
