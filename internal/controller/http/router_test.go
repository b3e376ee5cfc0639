package httpv1_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpv1 "github.com/Egor213/LogiGraph/internal/controller/http"
	servicemocks "github.com/Egor213/LogiGraph/internal/mocks/service"
	"github.com/Egor213/LogiGraph/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T, health service.Health) *echo.Echo {
	t.Helper()

	// echoprometheus registers its collectors on the default registry.
	registry := prometheus.NewRegistry()
	prevRegisterer := prometheus.DefaultRegisterer
	prometheus.DefaultRegisterer = registry
	t.Cleanup(func() { prometheus.DefaultRegisterer = prevRegisterer })

	graphqlHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"ping":{"response":"pong"}}}`))
	})

	e := echo.New()
	httpv1.ConfigureRouter(e, &service.Services{Health: health}, graphqlHandler)
	return e
}

func TestRouter_Healthz(t *testing.T) {
	testCases := []struct {
		name       string
		checkErr   error
		wantStatus int
		wantBody   string
	}{
		{name: "healthy", wantStatus: http.StatusOK, wantBody: "ok"},
		{name: "database down", checkErr: errors.New("down"), wantStatus: http.StatusServiceUnavailable, wantBody: "unavailable"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockHealth := servicemocks.NewMockHealth(ctrl)
			mockHealth.EXPECT().Check(gomock.Any()).Return(tc.checkErr)

			e := newRouter(t, mockHealth)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantBody, rec.Body.String())
		})
	}
}

func TestRouter_GraphQL(t *testing.T) {
	ctrl := gomock.NewController(t)
	e := newRouter(t, servicemocks.NewMockHealth(ctrl))

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(method, "/graphql", nil))

		assert.Equal(t, http.StatusOK, rec.Code, method)
		assert.JSONEq(t, `{"data":{"ping":{"response":"pong"}}}`, rec.Body.String())
	}
}
