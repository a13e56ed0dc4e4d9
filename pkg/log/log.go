package log

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Fields logrus.Fields

type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger

	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
}

type contextKey string

const (
	CorrelationIDKey contextKey = "correlation_id"
	userIDKey        contextKey = "user_id"

	correlationIDField = "correlation_id"
	userIDField        = "user_id"
)

// verboseFields só aparecem fora do ambiente de desenvolvimento
var verboseFields = map[string]struct{}{
	"remote_addr":    {},
	"user_agent":     {},
	"referer":        {},
	"content_type":   {},
	"content_length": {},
	"query":          {},
}

type logger struct {
	entry *logrus.Entry
	quiet bool
}

// L é o logger global; ForContext deriva dele
var L Logger = newLogger()

func newLogger() *logger {
	return &logger{
		entry: logrus.NewEntry(logrus.StandardLogger()),
		quiet: IsDevelopment(),
	}
}

func IsDevelopment() bool {
	env := os.Getenv("APP_ENV")
	return env == "" || env == "development" || env == "dev"
}

// SetupTestLogger deixa a saída compacta e em nível debug
func SetupTestLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetReportCaller(false)

	L = newLogger()
}

func (l *logger) WithField(key string, value any) Logger {
	if l.skip(key) {
		return l
	}
	return &logger{entry: l.entry.WithField(key, value), quiet: l.quiet}
}

func (l *logger) WithFields(fields Fields) Logger {
	kept := make(logrus.Fields, len(fields))
	for k, v := range fields {
		if !l.skip(k) {
			kept[k] = v
		}
	}
	if len(kept) == 0 {
		return l
	}
	return &logger{entry: l.entry.WithFields(kept), quiet: l.quiet}
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err), quiet: l.quiet}
}

func (l *logger) skip(key string) bool {
	if !l.quiet {
		return false
	}
	_, verbose := verboseFields[key]
	return verbose
}

func (l *logger) Debug(args ...any) { l.entry.Debug(args...) }
func (l *logger) Info(args ...any)  { l.entry.Info(args...) }
func (l *logger) Warn(args ...any)  { l.entry.Warn(args...) }
func (l *logger) Error(args ...any) { l.entry.Error(args...) }

func (l *logger) Warnf(format string, args ...any) {
	l.entry.Warnf(format, args...)
}

func (l *logger) Errorf(format string, args ...any) {
	l.entry.Errorf(format, args...)
}

// WithCorrelationID reaproveita requestID quando o cliente enviou um; senão gera um uuid
func WithCorrelationID(ctx context.Context, requestID string) (context.Context, string) {
	if requestID == "" {
		requestID = uuid.New().String()
	}
	return context.WithValue(ctx, CorrelationIDKey, requestID), requestID
}

func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// WithUserID marca o contexto com o usuário autenticado que dispara importações e relatórios
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// ForContext devolve um logger com correlation_id e user_id do contexto, quando existirem
func ForContext(ctx context.Context) Logger {
	if ctx == nil {
		return L
	}

	fields := Fields{}
	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		fields[correlationIDField] = correlationID
	}
	if userID, ok := ctx.Value(userIDKey).(int); ok {
		fields[userIDField] = userID
	}

	return L.WithFields(fields)
}
