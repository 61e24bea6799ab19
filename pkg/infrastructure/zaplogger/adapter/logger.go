package adapter

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/viajabus/booking/pkg/application"
)

type zapAppLogger struct {
	zapLogger *zap.Logger
}

// NewZapAppLogger builds the production AppLogger backed by zap.
func NewZapAppLogger() (application.AppLogger, error) {
	config := zap.NewProductionConfig()
	config.InitialFields = map[string]interface{}{"app": "viajabus-booking"}
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zapLogger, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}

	return &zapAppLogger{zapLogger: zapLogger}, nil
}

// NewNopAppLogger returns an AppLogger that discards everything. Meant for tests.
func NewNopAppLogger() application.AppLogger {
	return &zapAppLogger{zapLogger: zap.NewNop()}
}

func (l *zapAppLogger) Info(ctx context.Context, msg string, fields map[string]interface{}) {
	l.zapLogger.With(convertFields(ctx, fields)...).Info(msg)
}

func (l *zapAppLogger) Debug(ctx context.Context, msg string, fields map[string]interface{}) {
	l.zapLogger.With(convertFields(ctx, fields)...).Debug(msg)
}

func (l *zapAppLogger) Error(ctx context.Context, msg string, fields map[string]interface{}) {
	l.zapLogger.With(convertFields(ctx, fields)...).Error(msg)
}

func (l *zapAppLogger) Trace(ctx context.Context, msg string, fields map[string]interface{}) {
	// zap has no trace level; debug is the closest.
	l.zapLogger.With(convertFields(ctx, fields)...).Debug(msg)
}

type requestIDKey struct{}

// WithRequestID stores a request identifier that the logger picks up on every line.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func convertFields(ctx context.Context, fields map[string]interface{}) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields)+1)

	if requestID, ok := ctx.Value(requestIDKey{}).(string); ok {
		zapFields = append(zapFields, zap.String("request_id", requestID))
	}

	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return zapFields
}
