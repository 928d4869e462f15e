package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func setupIdempotencyRouter(t *testing.T, handler gin.HandlerFunc) (*gin.Engine, redismock.ClientMock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rdb, mock := redismock.NewClientMock()

	router := gin.New()
	router.POST("/payroll/generate", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Next()
	}, middleware.Idempotency(rdb), handler)

	return router, mock
}

func TestIdempotency_ReplaysCachedResponse(t *testing.T) {
	router, mock := setupIdempotencyRouter(t, func(c *gin.Context) {
		t.Fatal("handler must not run on a replayed key")
	})

	cacheKey := "idemp:/payroll/generate:user-1:key-1"
	mock.ExpectGet(cacheKey).SetVal(`{"status":201,"body":{"ok":true,"data":{"id":"pay-1"}}}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payroll/generate", strings.NewReader(`{}`))
	req.Header.Set("Idempotency-Key", "key-1")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"ok":true,"data":{"id":"pay-1"}}`, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_RejectsInFlightKey(t *testing.T) {
	router, mock := setupIdempotencyRouter(t, func(c *gin.Context) {
		t.Fatal("handler must not run while the key is locked")
	})

	cacheKey := "idemp:/payroll/generate:user-1:key-1"
	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payroll/generate", strings.NewReader(`{}`))
	req.Header.Set("Idempotency-Key", "key-1")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "PROCESSING")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_FirstHitLocksAndForwards(t *testing.T) {
	var cacheKey, lockKey string
	router, mock := setupIdempotencyRouter(t, func(c *gin.Context) {
		cacheKey = c.GetString("idempotency_cache_key")
		lockKey = c.GetString("idempotency_lock_key")
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})

	mock.ExpectGet("idemp:/payroll/generate:user-1:key-1").RedisNil()
	mock.ExpectSetNX("idemp:/payroll/generate:user-1:key-1:lock", "locked", 30*time.Second).SetVal(true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payroll/generate", strings.NewReader(`{}`))
	req.Header.Set("Idempotency-Key", "key-1")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "idemp:/payroll/generate:user-1:key-1", cacheKey)
	assert.Equal(t, "idemp:/payroll/generate:user-1:key-1:lock", lockKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_SkipsWithoutKey(t *testing.T) {
	handlerRan := false
	router, mock := setupIdempotencyRouter(t, func(c *gin.Context) {
		handlerRan = true
		assert.Empty(t, c.GetString("idempotency_cache_key"))
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payroll/generate", strings.NewReader(`{}`))
	router.ServeHTTP(w, req)

	assert.True(t, handlerRan)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
