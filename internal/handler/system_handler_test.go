package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSystemHandlerEndpoints(t *testing.T) {
	h := NewSystemHandler(nil, nil)

	w := performRequest(h.Root, http.MethodGet, "/", nil, nil)
	assert.JSONEq(t, `{"message":"Executive consultation API is running"}`, w.Body.String())

	w = performRequest(h.Ready, http.MethodGet, "/ready", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(h.Prometheus, http.MethodGet, "/metrics", nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

type pingerStub struct{ err error }

func (p pingerStub) Ping(ctx context.Context) error { return p.err }

func TestSystemHandlerReadyFailsWhenStoreDown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewSystemHandler(nil, pingerStub{err: errors.New("no primary")})
	w := performRequest(h.Ready, http.MethodGet, "/ready", nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "no primary")
}
