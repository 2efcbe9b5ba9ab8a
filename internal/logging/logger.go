package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LoggerService interface {
	Log(value string)
	LogError(value string, err error)
	LogWarning(value string)
	LogSuccess(value string)
}

type zapLogger struct {
	logger   *zap.SugaredLogger
	notifier *TelegramNotifier
}

// NewLogger builds the process logger. The Telegram notifier is optional;
// when present, warnings and errors are also pushed to the operator chat.
func NewLogger(levelStr string, notifier *TelegramNotifier) (LoggerService, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		level = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return &zapLogger{
		logger:   logger.Sugar(),
		notifier: notifier,
	}, nil
}

func (z *zapLogger) Log(value string) {
	z.logger.Info(value)
}

func (z *zapLogger) LogError(value string, err error) {
	z.logger.Errorw(value, "error", err)
	z.notifier.Send(iconError, "ERROR", notifierText(value, err))
}

func (z *zapLogger) LogWarning(value string) {
	z.logger.Warn(value)
	z.notifier.Send(iconWarning, "WARNING", value)
}

func (z *zapLogger) LogSuccess(value string) {
	z.logger.Infow(value, "status", "success")
}

func notifierText(value string, err error) string {
	if err == nil {
		return value
	}
	return value + ": " + err.Error()
}
