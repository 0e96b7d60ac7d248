// Package instrumentation provides OpenTelemetry metrics and tracing for
// the server and the gather engine.
//
// Instrumentation is disabled by default and enabled via
// INSTRUMENTATION_ENABLED=true; a disabled Provider costs nothing at
// runtime. Metrics export through Prometheus (default), OTLP, or stdout,
// traces through OTLP or stdout. The EngineRecorder adapts the provider to
// the gather engine's recorder callbacks so the engine stays free of any
// OpenTelemetry dependency.
//
// Usage:
//
//	provider, err := instrumentation.NewProvider(ctx, instrumentation.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	defer provider.Shutdown(ctx)
//
//	engine := info.NewEngine(client, info.WithRecorder(provider.Recorder()))
package instrumentation
