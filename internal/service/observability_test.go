package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogUseCaseObserver_Success(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	NewLogUseCaseObserver(logger).ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "snapshot.build",
		Duration: 12 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"run_id": "abc"},
	})

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, "service_use_case", entry.Message)
	assert.Equal(t, "snapshot.build", entry.Data["use_case"])
	assert.Equal(t, int64(12), entry.Data["duration_ms"])
	assert.Equal(t, "abc", entry.Data["run_id"])
}

func TestLogUseCaseObserver_Failure(t *testing.T) {
	logger, hook := test.NewNullLogger()

	NewLogUseCaseObserver(logger).ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "snapshot.build",
		Err:  errors.New("boom"),
	})

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.EqualError(t, entry.Data[logrus.ErrorKey].(error), "boom")
}

func TestNewLogUseCaseObserver_NilLogger(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}
