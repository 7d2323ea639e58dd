package provisioning

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveStep(t *testing.T) {
	t.Parallel()
	m := NewMetrics()

	m.ObserveStep("network", "nsg", nil, 2*time.Second)
	m.ObserveStep("network", "nsg", nil, time.Second)
	m.ObserveStep("network", "vnet", errors.New("boom"), time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.stepTotal.WithLabelValues("network", "nsg", ResultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.stepTotal.WithLabelValues("network", "vnet", ResultError)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.stepDuration))
}

func TestMetrics_ObserveRollback(t *testing.T) {
	t.Parallel()
	m := NewMetrics()

	m.ObserveRollback("network", "workspace", errors.New("boom"))
	m.ObserveRollback("network", "nsg", nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.rollbackTotal.WithLabelValues("network", "workspace", ResultError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rollbackTotal.WithLabelValues("network", "nsg", ResultSuccess)))
}

func TestMetrics_NilSafe(t *testing.T) {
	t.Parallel()
	var m *Metrics

	m.ObserveStep("p", "s", nil, time.Second)
	m.ObserveRollback("p", "s", nil)
	assert.NoError(t, m.WriteTextfile("/nonexistent/never-written.prom"))
}

func TestMetrics_WriteTextfile(t *testing.T) {
	t.Parallel()
	m := NewMetrics()
	m.ObserveStep("storage", "role-assignment", nil, time.Second)

	path := filepath.Join(t.TempDir(), "adbvnet.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `adbvnet_step_total{pipeline="storage",result="success",step="role-assignment"} 1`)
	assert.Contains(t, string(data), "adbvnet_step_duration_seconds_bucket")
}
