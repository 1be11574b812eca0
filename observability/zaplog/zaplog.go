// Package zaplog adapts go.uber.org/zap to the observability.Logger facade.
package zaplog

import (
	"go.uber.org/zap"

	"posterlib/observability"
)

type logger struct {
	z *zap.Logger
}

// New wraps a zap logger. A nil argument yields a no-op logger.
func New(z *zap.Logger) observability.Logger {
	if z == nil {
		return observability.NopLogger{}
	}
	return &logger{z: z}
}

// NewDevelopment returns a logger backed by zap's development config.
func NewDevelopment() (observability.Logger, error) {
	z, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return New(z), nil
}

func (l *logger) Debug(msg string, fields ...observability.Field) {
	l.z.Debug(msg, zapFields(fields)...)
}

func (l *logger) Info(msg string, fields ...observability.Field) {
	l.z.Info(msg, zapFields(fields)...)
}

func (l *logger) Warn(msg string, fields ...observability.Field) {
	l.z.Warn(msg, zapFields(fields)...)
}

func (l *logger) Error(msg string, fields ...observability.Field) {
	l.z.Error(msg, zapFields(fields)...)
}

func (l *logger) With(fields ...observability.Field) observability.Logger {
	return &logger{z: l.z.With(zapFields(fields)...)}
}

func zapFields(fields []observability.Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		switch v := f.Value().(type) {
		case string:
			out = append(out, zap.String(f.Key(), v))
		case int:
			out = append(out, zap.Int(f.Key(), v))
		case float64:
			out = append(out, zap.Float64(f.Key(), v))
		case error:
			out = append(out, zap.NamedError(f.Key(), v))
		default:
			out = append(out, zap.Any(f.Key(), v))
		}
	}
	return out
}
