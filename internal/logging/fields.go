package logging

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/constraints"

	"github.com/ib-77/outcome/pkg/outcome"
)

func Time[S ~string](s S, t time.Time) Field {
	return zap.Time(string(s), t)
}

func Any[S ~string](s S, v any) Field {
	return zap.Any(string(s), v)
}

func Int[S ~string, T constraints.Signed](s S, v T) Field {
	return zap.Int64(string(s), int64(v))
}

func Bool[S ~string](s S, v bool) Field {
	return zap.Bool(string(s), v)
}

func String[U, V ~string](s U, v V) Field {
	return zap.String(string(s), string(v))
}

// Result describes r as fields: its id, creation time, state and either the
// value or the failure message.
func Result[T any](r outcome.Inspectable[T]) []Field {
	fields := []Field{
		String("result_id", r.Id().String()),
		Time("created_at", r.CreatedAt()),
		Bool("success", r.IsSuccess()),
	}

	if v, ok := r.TryValue(); ok {
		return append(fields, Any("value", v))
	}

	msg, _ := r.TryErrorMessage()
	return append(fields, String("message", msg))
}
