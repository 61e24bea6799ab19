package application

import "context"

// AppLogger is the logging port used across the application. Adapters decide
// the backend; callers pass structured fields as a map.
type AppLogger interface {
	Info(ctx context.Context, msg string, fields map[string]interface{})
	Debug(ctx context.Context, msg string, fields map[string]interface{})
	Error(ctx context.Context, msg string, fields map[string]interface{})
	Trace(ctx context.Context, msg string, fields map[string]interface{})
}

// LogError logs msg with the given fields plus the error itself.
func LogError(ctx context.Context, logger AppLogger, msg string, err error, fields map[string]interface{}) {
	logData := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		logData[k] = v
	}
	if err != nil {
		logData["error"] = err
	}
	logger.Error(ctx, msg, logData)
}

// LogInfo logs msg with the given fields.
func LogInfo(ctx context.Context, logger AppLogger, msg string, fields map[string]interface{}) {
	logger.Info(ctx, msg, fields)
}

// LogDebug logs msg with the given fields at debug level.
func LogDebug(ctx context.Context, logger AppLogger, msg string, fields map[string]interface{}) {
	logger.Debug(ctx, msg, fields)
}
