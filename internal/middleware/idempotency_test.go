package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-paydesk/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

const (
	idempCacheKey = "idemp:/pay::retry-1"
	idempLockKey  = idempCacheKey + ":lock"
)

func newIdempRouter(t *testing.T) (*gin.Engine, redismock.ClientMock, *int) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rdb, mock := redismock.NewClientMock()
	calls := 0

	r := gin.New()
	r.POST("/pay", middleware.Idempotency(rdb), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})
	return r, mock, &calls
}

func doPay(r *gin.Engine, key string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/pay", nil)
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency(t *testing.T) {
	t.Run("first request caches status and body", func(t *testing.T) {
		r, mock, calls := newIdempRouter(t)

		mock.ExpectGet(idempCacheKey).RedisNil()
		mock.ExpectSetNX(idempLockKey, "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(idempCacheKey, []byte(`{"status":201,"body":{"ok":true}}`), 24*time.Hour).SetVal("OK")
		mock.ExpectDel(idempLockKey).SetVal(1)

		w := doPay(r, "retry-1")
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, `{"ok":true}`, w.Body.String())
		assert.Equal(t, 1, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replay returns the original response verbatim", func(t *testing.T) {
		r, mock, calls := newIdempRouter(t)

		mock.ExpectGet(idempCacheKey).SetVal(`{"status":201,"body":{"ok":true}}`)

		w := doPay(r, "retry-1")
		// Same status, same body shape, handler not invoked again.
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, `{"ok":true}`, w.Body.String())
		assert.Equal(t, 0, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative duplicate while first is in flight", func(t *testing.T) {
		r, mock, calls := newIdempRouter(t)

		mock.ExpectGet(idempCacheKey).RedisNil()
		mock.ExpectSetNX(idempLockKey, "locked", 30*time.Second).SetVal(false)

		w := doPay(r, "retry-1")
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "PROCESSING")
		assert.Equal(t, 0, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no key passes straight through", func(t *testing.T) {
		r, _, calls := newIdempRouter(t)

		w := doPay(r, "")
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, *calls)
	})
}
