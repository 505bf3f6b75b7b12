package logging

import (
	"net/http"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	String   = zap.String
	Int      = zap.Int
	Duration = zap.Duration
	Bool     = zap.Bool
	Error    = zap.Error
	Any      = zap.Any
)

type Field = zap.Field

var current atomic.Pointer[zap.Logger]

func init() {
	current.Store(zap.NewNop())
}

// Init builds the process logger. Output goes to stdout so the platform captures it.
func Init(level string, asJSON bool) error {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	if !asJSON {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stdout"}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder

	l, err := cfg.Build()
	if err != nil {
		return err
	}
	current.Store(l)
	return nil
}

// Replace swaps the process logger and returns a func restoring the previous one
func Replace(l *zap.Logger) func() {
	prev := current.Swap(l)
	return func() { current.Store(prev) }
}

// L returns the process logger
func L() *zap.Logger {
	return current.Load()
}

// Sync flushes buffered entries
func Sync() {
	_ = L().Sync()
}

// LogKV logs a structured line with a level, message, and arbitrary fields.
func LogKV(level, msg string, fields map[string]interface{}) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	zf := make([]Field, 0, len(keys))
	for _, k := range keys {
		zf = append(zf, zap.Any(k, fields[k]))
	}

	switch strings.ToLower(level) {
	case "debug":
		L().Debug(msg, zf...)
	case "warn":
		L().Warn(msg, zf...)
	case "error":
		L().Error(msg, zf...)
	default:
		L().Info(msg, zf...)
	}
}

// JSONLogger returns a Gin middleware that logs each request as a single structured line.
func JSONLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		fields := []Field{
			String("method", c.Request.Method),
			String("path", path),
			String("query", query),
			Int("status", status),
			zap.Float64("latency_ms", float64(latency.Microseconds())/1000.0),
			String("client_ip", c.ClientIP()),
			String("user_agent", c.Request.UserAgent()),
			zap.Int64("bytes_in", c.Request.ContentLength),
			Int("bytes_out", c.Writer.Size()),
		}
		if sid, ok := c.Get("session_id"); ok {
			fields = append(fields, Any("session_id", sid))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, String("error", c.Errors.String()))
		}

		if status >= http.StatusInternalServerError || len(c.Errors) > 0 {
			L().Error("request", fields...)
			return
		}
		L().Info("request", fields...)
	}
}
