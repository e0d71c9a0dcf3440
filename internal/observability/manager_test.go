package observability

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"

	"github.com/Additional-Code/order-service/internal/config"
)

func TestNewManager(t *testing.T) {
	testCases := map[string]struct {
		obs             config.Observability
		expectedMetrics bool
		expectedHandler bool
	}{
		"should expose prometheus handler": {
			obs:             config.Observability{ServiceName: "order-service", EnableMetrics: true, MetricsExporter: "prometheus", PrometheusPath: "/metrics"},
			expectedMetrics: true,
			expectedHandler: true,
		},
		"should disable metrics for unknown exporter": {
			obs: config.Observability{ServiceName: "order-service", EnableMetrics: true, MetricsExporter: "statsd"},
		},
		"should stay quiet when everything is off": {
			obs: config.Observability{ServiceName: "order-service"},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			mgr, err := NewManager(lc, config.Config{Observability: tc.obs}, zap.NewNop())
			require.NoError(t, err)

			assert.Equal(t, tc.expectedMetrics, mgr.MetricsEnabled())
			assert.False(t, mgr.TracingEnabled())
			assert.Equal(t, tc.expectedHandler, mgr.MetricsHandler() != nil)
			assert.NotNil(t, mgr.Meter("test"))
		})
	}
}

func TestManager_PrometheusExportsCounters(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	mgr, err := NewManager(lc, config.Config{Observability: config.Observability{
		ServiceName:     "order-service",
		EnableMetrics:   true,
		MetricsExporter: "prometheus",
	}}, zap.NewNop())
	require.NoError(t, err)

	counter, err := mgr.Meter("orders").Int64Counter("orders.placed")
	require.NoError(t, err)
	counter.Add(context.Background(), 3)

	rec := httptest.NewRecorder()
	mgr.MetricsHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "orders_placed_total")
}
