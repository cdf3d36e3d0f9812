package tracing

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	tcr "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const DefaultSamplingRatio = 0.1

var (
	once        sync.Once
	initialized = false
	tp          *trace.TracerProvider
)

// Config selects the OTLP collector spans are exported to
type Config struct {
	Enabled       bool
	ServiceName   string
	Endpoint      string
	SamplingRatio float64
}

// Init installs a batching OTLP/gRPC tracer provider. With tracing disabled every tracer
// is a noop and nothing is exported.
func Init(config Config) {
	if !config.Enabled {
		log.Info().Msg("Tracing is not enabled!")
		return
	}
	if initialized {
		log.Warn().Msgf("Tracing already initialized!")
		return
	}
	once.Do(func() {
		if config.ServiceName == "" {
			log.Fatal().Msg("APP_NAME cannot be empty!!!")
		}
		if config.Endpoint == "" {
			log.Fatal().Msg("OTEL_EXPORTER_OTLP_ENDPOINT is not set!!!")
		}
		ctx := context.Background()

		exporter, err := otlptrace.New(ctx,
			otlptracegrpc.NewClient(
				otlptracegrpc.WithInsecure(),
				otlptracegrpc.WithEndpoint(config.Endpoint),
			),
		)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create OTLP trace exporter")
		}

		resources, err := resource.New(ctx,
			resource.WithAttributes(
				attribute.String("service.name", config.ServiceName),
				attribute.String("telemetry.sdk.language", "go"),
			),
		)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create OTLP resource")
		}

		tp = trace.NewTracerProvider(
			trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(samplingRatio(config.SamplingRatio)))),
			trace.WithBatcher(exporter),
			trace.WithResource(resources),
		)
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
		log.Info().
			Str("collectorURL", config.Endpoint).
			Str("serviceName", config.ServiceName).
			Float64("samplingRatio", samplingRatio(config.SamplingRatio)).
			Msg("Tracer initialized!")
		initialized = true
	})
}

// GetTracer returns the tracer for the named package, or a noop tracer before Init
func GetTracer(name string) tcr.Tracer {
	if tp == nil {
		return noop.NewTracerProvider().Tracer(name)
	}
	return tp.Tracer(name)
}

// Shutdown flushes buffered spans
func Shutdown(ctx context.Context) {
	if tp == nil {
		return
	}
	log.Info().Msg("Tracer shutting down...")
	if err := tp.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("Tracer shutdown failed")
		return
	}
	log.Info().Msg("Tracer shutdown complete!!!")
}

func samplingRatio(ratio float64) float64 {
	if ratio <= 0 || ratio > 1 {
		return DefaultSamplingRatio
	}
	return ratio
}
