package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestServe_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, Serve(ctx, "127.0.0.1:0"))
}

func TestServe_InvalidAddress(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Error(t, Serve(ctx, "127.0.0.1:99999"))
}

func TestCounters(t *testing.T) {
	counter := ToolCalls.WithLabelValues("metrics_test", OutcomeSuccess)
	before := testutil.ToFloat64(counter)
	counter.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
