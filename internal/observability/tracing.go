package observability

import (
	"context"
	"os"
	"path/filepath"

	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/riskibarqy/content-brain/internal/config"
	"github.com/riskibarqy/content-brain/internal/platform/logging"
)

// InitTracing installs a global tracer provider that appends finished spans
// as JSON lines to cfg.TraceFile. With no trace file it does nothing.
func InitTracing(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	logger = logging.OrDefault(logger)
	noop := func(context.Context) error { return nil }

	if cfg.TraceFile == "" {
		logger.Debug("tracing disabled", "reason", "CONTENTBRAIN_TRACE_FILE empty")
		return noop, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.TraceFile), 0o700); err != nil {
		return noop, crerr.Wrap(err, "create trace directory")
	}
	f, err := os.OpenFile(cfg.TraceFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return noop, crerr.Wrapf(err, "open trace file %s", cfg.TraceFile)
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(f))
	if err != nil {
		_ = f.Close()
		return noop, crerr.Wrap(err, "create span exporter")
	}

	res := resource.NewWithAttributes("",
		attribute.String("service.name", cfg.ServiceName),
		attribute.String("service.version", cfg.ServiceVersion),
		attribute.String("deployment.environment", cfg.AppEnv),
	)
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)

	logger.Info("tracing enabled", "trace_file", cfg.TraceFile, "service_name", cfg.ServiceName)

	return func(ctx context.Context) error {
		err := provider.Shutdown(ctx)
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
		return err
	}, nil
}
