package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestReadinessHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	healthy := ReadinessCheck{Name: "database", Ping: func(context.Context) error { return nil }}
	down := ReadinessCheck{Name: "redis", Ping: func(context.Context) error { return errors.New("connection refused") }}

	serve := func(checks ...ReadinessCheck) *httptest.ResponseRecorder {
		r := gin.New()
		r.GET("/ready", readinessHandler(checks))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		return w
	}

	w := serve(healthy)
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(healthy, down)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body struct {
		Ready  bool              `json:"ready"`
		Checks map[string]string `json:"checks"`
		Error  string            `json:"error"`
	}
	decode(t, w, &body)
	require.False(t, body.Ready)
	require.Equal(t, "healthy", body.Checks["database"])
	require.Equal(t, "unhealthy", body.Checks["redis"])
	require.Equal(t, "redis not ready", body.Error)
}
