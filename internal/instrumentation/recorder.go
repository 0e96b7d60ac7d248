package instrumentation

import (
	"context"
	"time"
)

// EngineRecorder bridges the gather engine's instrumentation callbacks to
// metrics and tracing. It satisfies the engine's Recorder interface without
// the engine importing this package.
type EngineRecorder struct {
	provider *Provider
}

// StartGather opens a gather span and returns a finish function that
// records the invocation outcome.
func (r *EngineRecorder) StartGather(ctx context.Context, requestID string) (context.Context, func(err error)) {
	if r == nil || r.provider == nil || !r.provider.Enabled() {
		return ctx, func(error) {}
	}

	start := time.Now()
	ctx, span := StartGatherSpan(ctx, requestID)

	return ctx, func(err error) {
		status := StatusSuccess
		if err != nil {
			status = StatusError
			SetSpanError(span, err)
		} else {
			SetSpanSuccess(span)
		}
		span.End()
		r.provider.Metrics().RecordGather(ctx, status, time.Since(start))
	}
}

// StartFetch opens a per-category span and returns a finish function that
// records the fetch outcome.
func (r *EngineRecorder) StartFetch(ctx context.Context, category string) (context.Context, func(err error)) {
	if r == nil || r.provider == nil || !r.provider.Enabled() {
		return ctx, func(error) {}
	}

	start := time.Now()
	ctx, span := StartFetchSpan(ctx, category)

	return ctx, func(err error) {
		status := StatusSuccess
		if err != nil {
			status = StatusError
			SetSpanError(span, err)
		} else {
			SetSpanSuccess(span)
		}
		span.End()
		r.provider.Metrics().RecordCategoryFetch(ctx, category, status, time.Since(start))
	}
}
