package logging

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	restore := Replace(zap.New(core))
	t.Cleanup(restore)
	return logs
}

func TestLogKV_LevelsAndFields(t *testing.T) {
	logs := observe(t)

	LogKV("warn", "catalog fallback", map[string]interface{}{"reason": "db down", "attempts": 3})
	LogKV("unknown", "defaults to info", nil)

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "catalog fallback", entries[0].Message)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "db down", ctx["reason"])
	assert.EqualValues(t, 3, ctx["attempts"])
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
}

func TestJSONLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logs := observe(t)

	r := gin.New()
	r.Use(JSONLogger())
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, path := range []string{"/ok?x=1", "/boom"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	entries := logs.FilterMessage("request").AllUntimed()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "/ok", entries[0].ContextMap()["path"])
	assert.Equal(t, "x=1", entries[0].ContextMap()["query"])
	assert.EqualValues(t, http.StatusOK, entries[0].ContextMap()["status"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

func TestInit_InvalidLevelFallsBackToInfo(t *testing.T) {
	prev := L()
	t.Cleanup(func() { Replace(prev) })

	require.NoError(t, Init("not-a-level", true))
	assert.True(t, L().Core().Enabled(zapcore.InfoLevel))
	assert.False(t, L().Core().Enabled(zapcore.DebugLevel))
}

func TestFieldAliases(t *testing.T) {
	logs := observe(t)

	L().Warn("catalog load failed", Error(assert.AnError), String("source", "postgres"))

	entries := logs.AllUntimed()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, assert.AnError.Error(), ctx["error"])
	assert.Equal(t, "postgres", ctx["source"])
}
