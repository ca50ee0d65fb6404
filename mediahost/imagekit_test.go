package mediahost

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pinora-app/pinora-backend/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{Endpoint: srv.URL + "/", PrivateKey: "private_test", Timeout: time.Second})
}

func TestDeleteFile(t *testing.T) {
	t.Run("sends authenticated delete", func(t *testing.T) {
		var gotPath, gotUser string
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			gotPath = r.URL.EscapedPath()
			gotUser, _, _ = r.BasicAuth()
			w.WriteHeader(http.StatusNoContent)
		})

		require.NoError(t, c.DeleteFile(context.Background(), "file 1"))
		assert.Equal(t, "/files/file%201", gotPath)
		assert.Equal(t, "private_test", gotUser)
	})

	t.Run("already gone counts as deleted", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		assert.NoError(t, c.DeleteFile(context.Background(), "file_1"))
	})

	t.Run("upstream error is internal", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message":"boom"}`, http.StatusBadGateway)
		})

		err := c.DeleteFile(context.Background(), "file_1")
		assert.ErrorIs(t, err, domain.ErrInternal)
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("empty id", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		})

		assert.ErrorIs(t, c.DeleteFile(context.Background(), " "), domain.ErrInvalidArgument)
	})
}

func TestDeleteFileOpensCircuit(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	for i := 0; i < 5; i++ {
		assert.ErrorIs(t, c.DeleteFile(context.Background(), "file_1"), domain.ErrInternal)
	}
	err := c.DeleteFile(context.Background(), "file_1")

	assert.ErrorIs(t, err, domain.ErrInternal)
	assert.Contains(t, err.Error(), "unavailable")
	assert.Equal(t, int32(5), calls.Load())
}

func TestNewWithoutKeyIsNoop(t *testing.T) {
	host := New(Config{})
	assert.IsType(t, Noop{}, host)
	assert.NoError(t, host.DeleteFile(context.Background(), "anything"))
}
