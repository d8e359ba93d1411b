package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/chainguard-dev/clog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "coding_agent_issue"

var (
	// GraphQLRequests counts GitHub GraphQL round trips by operation and outcome
	GraphQLRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "graphql_requests_total",
		Help:      "GitHub GraphQL requests by operation and outcome.",
	}, []string{"operation", "outcome"})

	// ToolCalls counts agent tool invocations by tool and outcome
	ToolCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tool_calls_total",
		Help:      "Agent tool calls by tool name and outcome.",
	}, []string{"tool", "outcome"})
)

// Outcome labels
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Serve exposes /metrics on addr until ctx is done
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	clog.FromContext(ctx).With("addr", addr).Info("Serving metrics")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
