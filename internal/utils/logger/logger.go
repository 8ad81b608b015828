package logger

import (
	"go.uber.org/zap"

	"github.com/tronwatch/usdt-backend/internal/types/environments"
)

// Logger wraps zap behind a string-map field API so call sites stay flat:
// logger.Error("msg", map[string]string{"error": err.Error()}).
type Logger struct {
	zap *zap.Logger
}

func New(env environments.Environment) *Logger {
	var cfg zap.Config

	switch env {
	case environments.Development:
		cfg = newDevelopmentLoggerConfig()
	case environments.Test:
		cfg = newTestLoggerConfig()
	case environments.Staging:
		cfg = newStagingLoggerConfig()
	default:
		cfg = newProductionLoggerConfig()
	}

	zapLogger, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return &Logger{zap: zapLogger}
}

func (l *Logger) Debug(msg string, fields ...map[string]string) {
	l.zap.Debug(msg, toZapFields(fields)...)
}

func (l *Logger) Info(msg string, fields ...map[string]string) {
	l.zap.Info(msg, toZapFields(fields)...)
}

func (l *Logger) Error(msg string, fields ...map[string]string) {
	l.zap.Error(msg, toZapFields(fields)...)
}

func (l *Logger) Fatal(msg string, fields ...map[string]string) {
	l.zap.Fatal(msg, toZapFields(fields)...)
}

// only the first map is used; the variadic form exists so bare calls need
// no nil argument
func toZapFields(maps []map[string]string) []zap.Field {
	if len(maps) == 0 {
		return nil
	}

	fields := make([]zap.Field, 0, len(maps[0]))
	for k, v := range maps[0] {
		fields = append(fields, zap.String(k, v))
	}
	return fields
}
