package info

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/giantswarm/mcp-powerscale/internal/logging"
	"github.com/giantswarm/mcp-powerscale/internal/onefs"
)

// Recorder receives instrumentation callbacks from the engine. The returned
// finish function must be called exactly once with the operation outcome.
type Recorder interface {
	// StartGather marks the beginning of a gather invocation.
	StartGather(ctx context.Context, requestID string) (context.Context, func(err error))

	// StartFetch marks the beginning of a single category fetch.
	StartFetch(ctx context.Context, category string) (context.Context, func(err error))
}

// Engine is the category dispatch-and-aggregation core. It holds the
// injected OneFS client and observability capabilities and is safe for
// reuse across invocations; all per-invocation state lives in the
// RequestContext and the Report.
type Engine struct {
	client   onefs.Client
	logger   *slog.Logger
	recorder Recorder
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithRecorder sets the instrumentation recorder.
func WithRecorder(recorder Recorder) EngineOption {
	return func(e *Engine) {
		e.recorder = recorder
	}
}

// NewEngine creates an engine around the given OneFS client.
func NewEngine(client onefs.Client, opts ...EngineOption) *Engine {
	e := &Engine{
		client: client,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Gather validates the parameters, fetches every requested category in
// registry order and returns the consolidated report. The first failure
// aborts the invocation: no later category is fetched and no partial report
// is returned. Repeated invocations with identical parameters are idempotent
// as long as the cluster state does not change.
func (e *Engine) Gather(ctx context.Context, params Params) (Report, error) {
	requestID := uuid.NewString()
	logger := e.logger.With(
		slog.String(logging.KeyRequestID, requestID),
		logging.Host(e.client.Host()),
	)

	rc, err := NewRequestContext(params)
	if err != nil {
		logger.Warn("gather request rejected", logging.Err(err))
		return nil, err
	}

	finishGather := func(error) {}
	if e.recorder != nil {
		ctx, finishGather = e.recorder.StartGather(ctx, requestID)
	}

	start := time.Now()
	categories := rc.RequestedCategories()
	logger.Info("starting gather",
		slog.Int("categories", len(categories)),
		logging.Zone(rc.AccessZone()),
	)

	report := newReport()
	for _, category := range categories {
		d := lookup(category)
		if d == nil {
			// The validator only admits registry members, so this means the
			// caller-facing schema and the registry have drifted.
			err := &InternalError{Msg: "category " + category.String() + " has no registry entry"}
			finishGather(err)
			return nil, err
		}

		value, err := e.fetchCategory(ctx, logger, d, rc)
		if err != nil {
			finishGather(err)
			return nil, err
		}
		report.set(category, value)
	}

	finishGather(nil)
	logger.Info("gather complete",
		logging.Duration(time.Since(start)),
		logging.Status(logging.StatusSuccess),
	)
	return report, nil
}

// fetchCategory runs one category's fetch-and-normalize operation with
// per-category logging and instrumentation around it.
func (e *Engine) fetchCategory(ctx context.Context, logger *slog.Logger, d *descriptor, rc *RequestContext) (any, error) {
	categoryLogger := logger.With(logging.Category(d.id.String()))
	categoryLogger.Debug("fetching category")

	finishFetch := func(error) {}
	if e.recorder != nil {
		ctx, finishFetch = e.recorder.StartFetch(ctx, d.id.String())
	}

	start := time.Now()
	value, err := d.fetch(ctx, e.client, rc)
	finishFetch(err)
	if err != nil {
		categoryLogger.Error("category fetch failed",
			logging.Duration(time.Since(start)),
			logging.Status(logging.StatusError),
			logging.SanitizedErr(err),
		)
		return nil, err
	}

	categoryLogger.Debug("category fetched",
		logging.Duration(time.Since(start)),
		logging.Status(logging.StatusSuccess),
	)
	return value, nil
}
