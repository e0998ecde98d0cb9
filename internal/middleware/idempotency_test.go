package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hr-backoffice/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestIdempotency(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(handler gin.HandlerFunc) (*gin.Engine, redismock.ClientMock) {
		db, mock := redismock.NewClientMock()
		r := gin.New()
		r.POST("/salary-slips", middleware.Idempotency(db), handler)
		return r, mock
	}

	t.Run("no key passes through untouched", func(t *testing.T) {
		r, mock := newRouter(func(c *gin.Context) {
			c.JSON(http.StatusCreated, gin.H{"ok": true})
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/salary-slips", strings.NewReader(`{}`))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cached key replays the stored response", func(t *testing.T) {
		r, mock := newRouter(func(c *gin.Context) {
			t.Fatal("handler must not run on cache hit")
		})

		cacheKey := "idemp:/salary-slips::abc123"
		mock.ExpectGet(cacheKey).SetVal(`{"id":"slip-1"}`)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/salary-slips", strings.NewReader(`{}`))
		req.Header.Set("Idempotency-Key", "abc123")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "slip-1")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("in-flight key is rejected", func(t *testing.T) {
		r, mock := newRouter(func(c *gin.Context) {
			t.Fatal("handler must not run while the key is locked")
		})

		cacheKey := "idemp:/salary-slips::abc123"
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/salary-slips", strings.NewReader(`{}`))
		req.Header.Set("Idempotency-Key", "abc123")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("fresh key locks and exposes cache keys", func(t *testing.T) {
		var gotCacheKey, gotLockKey string
		r, mock := newRouter(func(c *gin.Context) {
			gotCacheKey = c.GetString("idempotency_cache_key")
			gotLockKey = c.GetString("idempotency_lock_key")
			c.JSON(http.StatusCreated, gin.H{"ok": true})
		})

		cacheKey := "idemp:/salary-slips::abc123"
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/salary-slips", strings.NewReader(`{}`))
		req.Header.Set("Idempotency-Key", "abc123")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, cacheKey, gotCacheKey)
		assert.Equal(t, cacheKey+":lock", gotLockKey)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
