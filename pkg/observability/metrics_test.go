package observability_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/stategate/pkg/domain"
	"github.com/aretw0/stategate/pkg/dsl"
	"github.com/aretw0/stategate/pkg/observability"
	"github.com/aretw0/stategate/pkg/registry"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T, m *observability.Metrics) *registry.Registry {
	t.Helper()
	b := dsl.New()
	b.State("pending").To("active")
	b.State("active").To("archived")
	b.State("archived")

	r := registry.New(registry.WithObserver(m))
	_, err := r.Define("User", "status", b.Script())
	require.NoError(t, err)
	return r
}

func TestResult(t *testing.T) {
	tests := []struct {
		name string
		to   string
		err  error
		want string
	}{
		{name: "allowed", to: "active", want: observability.ResultAllowed},
		{name: "forced", to: "force_active", want: observability.ResultForced},
		{name: "denied", to: "active", err: &domain.InvalidTransitionError{}, want: observability.ResultDenied},
		{name: "invalid state", to: "dummy", err: &domain.InvalidStateError{}, want: observability.ResultInvalid},
		{name: "other", to: "active", err: errors.New("boom"), want: observability.ResultInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, observability.Result(tt.to, tt.err))
		})
	}
}

func TestMetrics_Authorize(t *testing.T) {
	m := observability.New()
	r := newRegistry(t, m)
	g, err := r.Get("User", "status")
	require.NoError(t, err)

	require.NoError(t, m.Authorize(g, "pending", "active"))
	require.NoError(t, m.Authorize(g, "pending", "force_archived"))
	assert.ErrorIs(t, m.Authorize(g, "pending", "archived"), domain.ErrInvalidTransition)
	assert.ErrorIs(t, m.Authorize(g, "pending", "dummy"), domain.ErrInvalidState)

	n, err := testutil.GatherAndCount(m.Registry(), "stategate_authorizations_total")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	expected := `
# HELP stategate_gates_defined Number of gates defined in the registry
# TYPE stategate_gates_defined gauge
stategate_gates_defined 1
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "stategate_gates_defined"))
}

func TestMetrics_Handler(t *testing.T) {
	m := observability.New()
	r := newRegistry(t, m)
	g, _ := r.Get("User", "status")
	_ = m.Authorize(g, "pending", "active")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `stategate_authorizations_total{attribute="status",entity="User",result="allowed"} 1`)
}
