package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"prestadores/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return e.NewContext(req, httptest.NewRecorder())
}

func TestRequestID_EchoContext(t *testing.T) {
	c := newEchoContext()
	assert.Empty(t, GetRequestID(c))

	c.Response().Header().Set(HeaderXRequestID, "from-header")
	assert.Equal(t, "from-header", GetRequestID(c))

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))
}

func TestRequestID_StdContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetRequestIDFromContext(ctx))

	ctx = WithRequestID(ctx, "req-2")
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
}

func TestLoggerOrDefault(t *testing.T) {
	var buf bytes.Buffer
	fallback := slog.New(slog.NewTextHandler(&buf, nil))
	scoped := fallback.With(slog.String("request_id", "req-3"))

	ctx := context.Background()
	assert.Nil(t, GetLogger(ctx))
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))

	ctx = WithLogger(ctx, scoped)
	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
}

func TestCurrentUser(t *testing.T) {
	c := newEchoContext()

	_, ok := GetCurrentUser(c)
	assert.False(t, ok)

	user := &entity.User{ID: uuid.New(), Name: "Ana"}
	SetCurrentUser(c, user)

	got, ok := GetCurrentUser(c)
	require.True(t, ok)
	assert.Same(t, user, got)
}
