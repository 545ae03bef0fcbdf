package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ib-77/outcome/pkg/outcome"
)

func observed() (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return Wrap(zap.New(core)), logs
}

func TestResultFields_Success(t *testing.T) {
	t.Parallel()
	log, logs := observed()
	res := outcome.Succeed(42)

	log.Info("loaded", Result(res)...)

	require.Equal(t, 1, logs.Len())
	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, res.Id().String(), ctx["result_id"])
	assert.Equal(t, true, ctx["success"])
	assert.EqualValues(t, 42, ctx["value"])
	assert.NotContains(t, ctx, "message")
}

func TestResultFields_Failure(t *testing.T) {
	t.Parallel()
	log, logs := observed()
	res := outcome.Fail[int]("no data found")

	log.Warn("load failed", Result[int](res)...)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	ctx := entry.ContextMap()
	assert.Equal(t, false, ctx["success"])
	assert.Equal(t, "no data found", ctx["message"])
	assert.NotContains(t, ctx, "value")
}

func TestResultFields_ZeroResultDoesNotPanic(t *testing.T) {
	t.Parallel()
	var res outcome.Result[string]
	assert.NotPanics(t, func() { _ = Result(res) })
}

func TestFromContext(t *testing.T) {
	t.Parallel()
	log, logs := observed()
	ctx := log.GetContext(context.Background())

	FromContext(ctx).With(Int("run", 3)).Debug("hello")

	require.Equal(t, 1, logs.Len())
	assert.EqualValues(t, 3, logs.All()[0].ContextMap()["run"])
}
