package common

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger структура логгера
type Logger struct {
	*zap.Logger
}

// NewLogger функция-конструктор логгера
func NewLogger(cfg Config) *Logger {
	var encoderCfg = zapcore.EncoderConfig{
		TimeKey:          "timestamp",
		LevelKey:         "level",
		NameKey:          "logger",
		CallerKey:        "caller",
		FunctionKey:      zapcore.OmitKey,
		MessageKey:       "msg",
		StacktraceKey:    "stacktrace",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      zapcore.LowercaseLevelEncoder,
		EncodeTime:       zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000000"),
		EncodeDuration:   zapcore.MillisDurationEncoder,
		EncodeCaller:     zapcore.ShortCallerEncoder,
		ConsoleSeparator: "  ",
	}
	var zapCfg = zap.Config{
		Level:       zap.NewAtomicLevelAt(parseLogLevel(cfg.LogLevel)),
		Development: cfg.LogDevelopMode,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		// пишем записи в формате JSON
		Encoding:         "json",
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stdout"},
	}
	var logger = zap.Must(zapCfg.Build()).With(zap.String("app", cfg.AppName))
	logger.Info("logger construction succeeded")
	var created = &Logger{logger}
	log.SetLogger(fiberzap.NewLogger(fiberzap.LoggerConfig{
		SetLogger: created.Logger,
	}))
	return created
}

// ParseRequestBody парсит тело запроса и возвращает поля для логирования
func ParseRequestBody(bodyData []byte) []zap.Field {
	var requestData map[string]any
	if err := json.Unmarshal(bodyData, &requestData); err != nil {
		return []zap.Field{zap.String("body", string(bodyData))}
	}

	var fields []zap.Field
	for _, key := range []string{"first_name", "last_name", "email", "name", "title", "username"} {
		if value, ok := requestData[key].(string); ok {
			fields = append(fields, zap.String(key, value))
		}
	}
	for _, key := range []string{"job_id", "department_id", "manager_id", "location_id"} {
		if value, ok := requestData[key].(float64); ok {
			fields = append(fields, zap.Int64(key, int64(value)))
		}
	}
	// пароль никогда не попадает в лог
	return fields
}

func parseLogLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "panic":
		return zapcore.PanicLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// withRequestID добавляет request_id из контекста fiber к полям записи
func withRequestID(ctx *fiber.Ctx, fields []zap.Field) []zap.Field {
	requestID := ctx.Get(fiber.HeaderXRequestID)
	if requestID == "" {
		if id, ok := ctx.Locals("requestid").(string); ok {
			requestID = id
		}
	}
	if requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}
	return fields
}

func (l *Logger) InfoCtx(ctx *fiber.Ctx, msg string, fields ...zap.Field) {
	l.Info(msg, withRequestID(ctx, fields)...)
}

func (l *Logger) DebugCtx(ctx *fiber.Ctx, msg string, fields ...zap.Field) {
	l.Debug(msg, withRequestID(ctx, fields)...)
}

func (l *Logger) WarnCtx(ctx *fiber.Ctx, msg string, fields ...zap.Field) {
	l.Warn(msg, withRequestID(ctx, fields)...)
}

func (l *Logger) ErrorCtx(ctx *fiber.Ctx, msg string, fields ...zap.Field) {
	l.Error(msg, withRequestID(ctx, fields)...)
}
