// Package metrics emits the storefront's StatsD metrics with consistent names and tags.
package metrics

import (
	"strconv"
	"sync/atomic"
	"time"

	obserrors "github.com/target/storefront-ui/internal/observability/errors"
	"github.com/target/storefront-ui/internal/observability/statsd"
)

// Result constants for metric tagging.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Guard outcomes.
const (
	GuardAllowed      = "allowed"
	GuardRedirected   = "redirected"
	GuardForbidden    = "forbidden"
	GuardUnauthorized = "api_unauthorized"
)

// EmitGuardDecision counts one session guard decision for a region.
func EmitGuardDecision(sink statsd.Sink, region, outcome string) {
	if sink == nil {
		return
	}
	sink.Count("guard.decision", 1, map[string]string{
		"region":  region,
		"outcome": outcome,
	})
}

// EmitSelectionRead counts a selection slot read as a hit or miss.
func EmitSelectionRead(sink statsd.Sink, slot string, hit bool) {
	if sink == nil {
		return
	}
	sink.Count("selection.read", 1, map[string]string{
		"slot": slot,
		"hit":  strconv.FormatBool(hit),
	})
}

// EmitSelectionFallback counts a detail view that had to fetch because the slot did not match.
func EmitSelectionFallback(sink statsd.Sink, slot string) {
	if sink == nil {
		return
	}
	sink.Count("selection.fallback_fetch", 1, map[string]string{"slot": slot})
}

// APICallMetric captures one call to the store API.
type APICallMetric struct {
	Op       string
	Duration time.Duration
	Err      error
}

// EmitAPICall records a store API call count and latency.
func EmitAPICall(sink statsd.Sink, in APICallMetric) {
	if sink == nil {
		return
	}

	tags := map[string]string{
		"op":     in.Op,
		"result": ResultSuccess,
	}
	if in.Err != nil {
		tags["result"] = ResultError
		if class := obserrors.Classify(in.Err); class != "" {
			tags["error_class"] = class
		}
	}

	sink.Count("storeapi.call", 1, tags)
	if in.Duration > 0 {
		sink.Timing("storeapi.duration", in.Duration, CloneTags(tags))
	}
}

// openStreams counts the cart summary streams this process is serving.
var openStreams atomic.Int64

// EmitSSEStream moves the open stream count by delta and reports the new level as a gauge.
func EmitSSEStream(sink statsd.Sink, delta int64) {
	n := openStreams.Add(delta)
	if sink == nil {
		return
	}
	sink.Gauge("cart.summary_streams_open", float64(n), nil)
}

// OpenStreams returns the number of cart summary streams currently open.
func OpenStreams() int64 {
	return openStreams.Load()
}

// CloneTags creates a shallow copy of a tag map, filtering out empty keys.
func CloneTags(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		if k == "" {
			continue
		}
		out[k] = v
	}
	return out
}
