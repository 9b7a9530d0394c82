// Package log encapsula o logrus com o ID de correlação das requisições.
package log

import (
	"context"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Fields logrus.Fields

// Logger expõe o subconjunto do logrus usado pela aplicação
type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

type contextKey string

// CorrelationIDKey guarda o ID de correlação no contexto da requisição
const CorrelationIDKey contextKey = "correlation_id"

const (
	correlationIDField     = "correlation_id"
	maxCorrelationIDLength = 128
)

// Campos mantidos nos logs de desenvolvimento; os demais só aparecem em produção
var devFields = map[string]bool{
	correlationIDField: true,
	"method":           true,
	"path":             true,
	"status_code":      true,
	"duration_ms":      true,
	"error":            true,
	"project_id":       true,
	"job":              true,
}

// logger reaproveita os métodos de nível do *logrus.Entry
type logger struct {
	*logrus.Entry
}

var root Logger = newLogger()

func newLogger() *logger {
	return &logger{Entry: logrus.NewEntry(logrus.StandardLogger())}
}

func IsDevelopment() bool {
	switch os.Getenv("APP_ENV") {
	case "", "development", "dev":
		return true
	}
	return false
}

// Setup configura formato e nível do logger global. Fora de desenvolvimento os logs saem em JSON.
func Setup(level string) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	var formatter logrus.Formatter = &logrus.JSONFormatter{}
	if IsDevelopment() {
		formatter = &logrus.TextFormatter{FullTimestamp: true}
	}
	logrus.SetFormatter(formatter)
	logrus.SetLevel(parsed)

	root = newLogger()
	return nil
}

func isRelevantField(key string) bool {
	return devFields[key] || strings.HasPrefix(key, "user_")
}

func (l *logger) WithField(key string, value interface{}) Logger {
	return l.WithFields(Fields{key: value})
}

func (l *logger) WithFields(fields Fields) Logger {
	kept := logrus.Fields(fields)
	if IsDevelopment() {
		kept = make(logrus.Fields, len(fields))
		for k, v := range fields {
			if isRelevantField(k) {
				kept[k] = v
			}
		}
		if len(kept) == 0 {
			return l
		}
	}
	return &logger{Entry: l.Entry.WithFields(kept)}
}

func (l *logger) WithError(err error) Logger {
	return &logger{Entry: l.Entry.WithError(err)}
}

// WithCorrelationID grava um ID de correlação no contexto. Um ID vindo do cliente é reaproveitado
// quando não é vazio nem longo demais.
func WithCorrelationID(ctx context.Context, incoming ...string) (context.Context, string) {
	var id string
	if len(incoming) > 0 {
		id = strings.TrimSpace(incoming[0])
	}
	if id == "" || len(id) > maxCorrelationIDLength {
		id = uuid.NewString()
	}
	return context.WithValue(ctx, CorrelationIDKey, id), id
}

func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(CorrelationIDKey).(string)
	return id
}

// ForContext devolve o logger global com o ID de correlação do contexto, se houver
func ForContext(ctx context.Context) Logger {
	if id := GetCorrelationID(ctx); id != "" {
		return root.WithField(correlationIDField, id)
	}
	return root
}
